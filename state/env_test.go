package state

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"animc/config"
	"animc/units"
)

func TestContextWithEnv(t *testing.T) {
	ctx := ContextWithEnv(context.Background())
	env := EnvFromContext(ctx)
	if env == nil {
		t.Fatal("EnvFromContext() returned nil")
	}
	if env.start.IsZero() {
		t.Error("Environment start time not set")
	}
}

func TestEnvFromContext_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when env not in context")
		}
	}()
	EnvFromContext(context.Background())
}

func TestLocalEnv_Uptime(t *testing.T) {
	env := EnvFromContext(ContextWithEnv(context.Background()))

	time.Sleep(10 * time.Millisecond)
	uptime := env.Uptime()
	if uptime < 10*time.Millisecond {
		t.Errorf("Uptime() = %v, expected at least 10ms", uptime)
	}
	if uptime > time.Minute {
		t.Errorf("Uptime() = %v, unexpectedly large", uptime)
	}
}

func TestLocalEnv_RedirectStdLog(t *testing.T) {
	t.Run("with logger", func(t *testing.T) {
		env := &LocalEnv{
			Log: zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1))),
		}
		for i := range 3 {
			env.RedirectStdLog()
			if env.restoreStdLog == nil {
				t.Fatalf("Iteration %d: restoreStdLog not set", i)
			}
			env.RestoreStdLog()
		}
	})

	t.Run("without logger", func(t *testing.T) {
		env := &LocalEnv{}
		env.RedirectStdLog()
		if env.restoreStdLog != nil {
			t.Error("Expected restoreStdLog to remain nil")
		}
		env.RestoreStdLog()
	})
}

func TestLocalEnv_Units(t *testing.T) {
	env := &LocalEnv{}
	if got := env.Units(); got != units.NewState(units.TimeFilm, units.LinearCm, units.AngularDeg) {
		t.Errorf("Units() without configuration = %+v", got)
	}

	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	cfg.Host.Units.Time = units.TimeNtsc
	cfg.Host.Units.Linear = units.LinearM
	env.Cfg = cfg
	if got := env.Units(); got != units.NewState(units.TimeNtsc, units.LinearM, units.AngularDeg) {
		t.Errorf("Units() = %+v", got)
	}
}

func TestLocalEnv_Scene(t *testing.T) {
	env := &LocalEnv{}
	if env.Scene() != "" {
		t.Errorf("Scene() without configuration = %q", env.Scene())
	}

	env.Cfg = &config.Config{Version: 1, Host: config.HostConfig{SceneFile: "from-config.yaml"}}
	if got := env.Scene(); got != "from-config.yaml" {
		t.Errorf("Scene() = %q, want configured file", got)
	}

	env.ScenePath = "from-flag.yaml"
	if got := env.Scene(); got != "from-flag.yaml" {
		t.Errorf("Scene() = %q, want command line file", got)
	}
}

func TestLocalEnv_Prepare(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "animc.yaml")
	data := []byte(`version: 1
logging:
  console:
    level: none
  file:
    level: none
    destination: ` + filepath.Join(dir, "animc.log") + `
reporting:
  destination: ` + filepath.Join(dir, "report.zip") + `
`)
	if err := os.WriteFile(cfgPath, data, 0644); err != nil {
		t.Fatal(err)
	}

	env := EnvFromContext(ContextWithEnv(context.Background()))
	if err := env.Prepare(cfgPath, true); err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	defer env.RestoreStdLog()

	if env.Cfg == nil || env.Log == nil || env.Rpt == nil {
		t.Fatal("Environment not properly initialized")
	}
	if err := env.Rpt.Close(); err != nil {
		t.Errorf("report Close() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "report.zip")); err != nil {
		t.Errorf("report not written: %v", err)
	}
}

func TestLocalEnv_PrepareBadConfig(t *testing.T) {
	env := EnvFromContext(ContextWithEnv(context.Background()))
	if err := env.Prepare(filepath.Join(t.TempDir(), "missing.yaml"), false); err == nil {
		t.Error("Prepare() with missing file succeeded")
	}
}
