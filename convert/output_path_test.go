package convert

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"animc/state"
)

func outputEnv(t *testing.T, transliterate bool, template string) *state.LocalEnv {
	t.Helper()
	_, env := setupTestEnv(t)
	env.Cfg.Export.FileNameTransliterate = transliterate
	env.Cfg.Export.OutputNameTemplate = template
	return env
}

func TestBuildOutputPath(t *testing.T) {
	dir := t.TempDir()
	defaultTemplate := `{{ .Scene }}{{ if .Nodes }}-{{ join "-" .Nodes }}{{ end }}`

	tests := []struct {
		name          string
		dst           string
		scene         string
		nodes         []string
		template      string
		transliterate bool
		want          string
	}{
		{"explicit file", filepath.Join(dir, "out", "result.anim"), "shot010", nil, defaultTemplate, true, filepath.Join(dir, "out", "result.anim")},
		{"no template", dir, "shot010", nil, "", false, filepath.Join(dir, "shot010.anim")},
		{"default template", dir, "shot010", []string{"ball", "cube"}, defaultTemplate, false, filepath.Join(dir, "shot010-ball-cube.anim")},
		{"transliterate", dir, "Shot 010", nil, defaultTemplate, true, filepath.Join(dir, "shot-010.anim")},
		{"subdirs", dir, "shot010", nil, "{{ .TimeUnit }}/{{ .Scene }}", false, filepath.Join(dir, "film", "shot010.anim")},
		{"extension in template", dir, "shot010", nil, "{{ .Scene }}.anim", false, filepath.Join(dir, "shot010.anim")},
		{"escaping segments dropped", dir, "shot010", nil, "../{{ .Scene }}", false, filepath.Join(dir, "shot010.anim")},
		{"broken template", dir, "shot010", nil, "{{ .Nope }}", false, filepath.Join(dir, "shot010.anim")},
		{"empty expansion", dir, "shot010", nil, "{{ if false }}x{{ end }}", false, filepath.Join(dir, "shot010.anim")},
		{"no scene name", dir, "", nil, "", false, filepath.Join(dir, "untitled.anim")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := outputEnv(t, tt.transliterate, tt.template)
			v := testValues()
			v.Scene, v.Nodes = tt.scene, tt.nodes
			if got := buildOutputPath(v, tt.dst, env); got != tt.want {
				t.Errorf("buildOutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildOutputPath_DirectoryWithExtension(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports.v2")
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatal(err)
	}
	env := outputEnv(t, false, "")
	v := testValues()
	if got, want := buildOutputPath(v, dir, env), filepath.Join(dir, "shot010.anim"); got != want {
		t.Errorf("buildOutputPath() = %q, want %q", got, want)
	}
}

func TestSplitAndCleanPath(t *testing.T) {
	sep := string(filepath.Separator)
	tests := []struct {
		in   string
		want []string
	}{
		{"shot010", []string{"shot010"}},
		{"a" + sep + "b" + sep + "c", []string{"a", "b", "c"}},
		{"a" + sep + "b" + sep, []string{"a", "b"}},
		{"." + sep + "a" + sep + ".." + sep + "b", []string{"a", "b"}},
		{"", []string{}},
	}
	for _, tt := range tests {
		if got := splitAndCleanPath(tt.in); !slices.Equal(got, tt.want) {
			t.Errorf("splitAndCleanPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
