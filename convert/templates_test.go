package convert

import (
	"strings"
	"testing"
	"time"

	"animc/config"
)

func testValues() Values {
	return Values{
		Context:     string(config.OutputNameTemplateFieldName),
		Scene:       "shot010",
		SceneFile:   "/proj/scenes/shot010.ma",
		Nodes:       []string{"ball", "cube"},
		Layers:      []string{"BaseAnimation", "fix"},
		HostVersion: "2016",
		TimeUnit:    "film",
		LinearUnit:  "cm",
		AngularUnit: "deg",
		Date:        "2026-01-02",
	}
}

func TestExpandTemplate(t *testing.T) {
	tests := []struct {
		name  string
		field string
		want  string
	}{
		{"plain text", "animation", "animation"},
		{"scene", "{{ .Scene }}", "shot010"},
		{"default with nodes", `{{ .Scene }}{{ if .Nodes }}-{{ join "-" .Nodes }}{{ end }}`, "shot010-ball-cube"},
		{"units", "{{ .TimeUnit }}_{{ .LinearUnit }}_{{ .AngularUnit }}", "film_cm_deg"},
		{"sprig", "{{ .Scene | upper }}-{{ last .Layers }}", "SHOT010-fix"},
		{"subdirs", "{{ .HostVersion }}/{{ .Date }}/{{ .Scene }}", "2016/2026-01-02/shot010"},
		{"context", "{{ .Context }}", string(config.OutputNameTemplateFieldName)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandTemplate(config.OutputNameTemplateFieldName, tt.field, testValues())
			if err != nil {
				t.Fatalf("expandTemplate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("expandTemplate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExpandTemplate_NoNodes(t *testing.T) {
	v := testValues()
	v.Nodes = nil
	got, err := expandTemplate(config.OutputNameTemplateFieldName, `{{ .Scene }}{{ if .Nodes }}-{{ join "-" .Nodes }}{{ end }}`, v)
	if err != nil || got != "shot010" {
		t.Errorf("expandTemplate() = %q, %v", got, err)
	}
}

func TestExpandTemplate_Errors(t *testing.T) {
	if _, err := expandTemplate(config.OutputNameTemplateFieldName, "{{ .Scene ", testValues()); err == nil {
		t.Error("unterminated action accepted")
	} else if !strings.Contains(err.Error(), string(config.OutputNameTemplateFieldName)) {
		t.Errorf("error does not name the field: %v", err)
	}
	if _, err := expandTemplate(config.OutputNameTemplateFieldName, "{{ .Title }}", testValues()); err == nil {
		t.Error("unknown field accepted")
	}
}

func TestBuildValues(t *testing.T) {
	_, env := setupTestEnv(t)
	env.Nodes = []string{"ball"}
	sc := ballScene(t, nil)
	sc.SetSceneFile("/proj/shot.ma")
	if err := sc.CreateLayer("fix", ""); err != nil {
		t.Fatal(err)
	}

	v := buildValues(config.OutputNameTemplateFieldName, "/tmp/snapshots/shot020.yaml", sc, env)
	if v.Scene != "shot020" || v.SceneFile != "/proj/shot.ma" {
		t.Errorf("names: %+v", v)
	}
	if len(v.Nodes) != 1 || len(v.Layers) != 2 {
		t.Errorf("nodes %v layers %v", v.Nodes, v.Layers)
	}
	if v.TimeUnit != "film" || v.HostVersion != "2016" {
		t.Errorf("units/version: %+v", v)
	}
	if _, err := time.Parse("2006-01-02", v.Date); err != nil {
		t.Errorf("Date = %q: %v", v.Date, err)
	}

	if v := buildValues(config.OutputNameTemplateFieldName, "", sc, env); v.Scene != "" {
		t.Errorf("Scene without path = %q", v.Scene)
	}
}
