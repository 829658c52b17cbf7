// Package state defines shared program state.
package state

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"

	"animc/config"
	"animc/units"
)

type envKey struct{}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	// ScenePath is scene snapshot both subcommands work on, empty means
	// host.scene_file from configuration
	ScenePath string

	// used by import subcommand
	CodePage encoding.Encoding

	// used by export subcommand
	Overwrite bool
	Nodes     []string

	start         time.Time
	restoreStdLog func()
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

// Units returns scene units new scenes are created with.
func (e *LocalEnv) Units() units.State {
	if e.Cfg == nil {
		return units.NewState(units.TimeFilm, units.LinearCm, units.AngularDeg)
	}
	return e.Cfg.Host.UnitState()
}

// Scene returns path of the scene snapshot to work on.
func (e *LocalEnv) Scene() string {
	if e.ScenePath != "" || e.Cfg == nil {
		return e.ScenePath
	}
	return e.Cfg.Host.SceneFile
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}
