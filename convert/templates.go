package convert

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	sprig "github.com/go-task/slim-sprig/v3"

	"animc/config"
	"animc/memscene"
	"animc/state"
)

// Values is a struct that holds variables we make available for template expansion
type Values struct {
	Context string
	// Scene is base name of the scene snapshot without extension.
	Scene string
	// SceneFile is host scene recorded in the snapshot.
	SceneFile   string
	Nodes       []string
	Layers      []string
	HostVersion string
	TimeUnit    string
	LinearUnit  string
	AngularUnit string
	Date        string
}

func buildValues(name config.TemplateFieldName, scenePath string, sc *memscene.Scene, env *state.LocalEnv) Values {
	v := Values{
		Context:     string(name),
		Scene:       strings.TrimSuffix(filepath.Base(scenePath), filepath.Ext(scenePath)),
		SceneFile:   sc.SceneFile(),
		Nodes:       env.Nodes,
		Layers:      sc.OrderedLayerNames(),
		HostVersion: env.Cfg.Host.Version,
		TimeUnit:    sc.Units.Time.ShortName(),
		LinearUnit:  sc.Units.Linear.ShortName(),
		AngularUnit: sc.Units.Angular.ShortName(),
		Date:        time.Now().Format("2006-01-02"),
	}
	if scenePath == "" {
		v.Scene = ""
	}
	return v
}

func expandTemplate(name config.TemplateFieldName, field string, values Values) (string, error) {
	tmpl, err := template.New(string(name)).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
