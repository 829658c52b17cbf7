package convert

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"animc/codec"
	"animc/config"
	"animc/memscene"
	"animc/state"
	"animc/units"
)

// Export writes selection of the scene snapshot into an animation file.
func Export(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("export")

	env.ScenePath, env.Overwrite, env.Nodes = cmd.String("scene"), cmd.Bool("overwrite"), cmd.StringSlice("nodes")
	scenePath := env.Scene()
	if len(scenePath) == 0 {
		return errors.New("no scene snapshot has been specified")
	}

	dst := cmd.Args().Get(0)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Mailformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	log.Info("Processing starting", zap.String("scene", scenePath), zap.String("destination", dst), zap.Strings("nodes", env.Nodes))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return exportScene(ctx, scenePath, dst, env, log)
}

func exportOptions(cfg *config.Config, st units.State) (codec.ExportOptions, error) {
	ec := &cfg.Export
	opts := codec.ExportOptions{
		HostVersion:       cfg.Host.Version,
		Units:             st,
		Statics:           ec.Statics,
		Cached:            ec.Cached,
		SetDrivenKeys:     ec.SetDrivenKeys,
		Constraints:       ec.Constraints,
		Layers:            ec.Layers,
		ExportEdits:       ec.ExportEdits,
		VerboseUnits:      ec.VerboseUnits,
		IncludeChildren:   ec.IncludeChildren,
		UseSpecifiedRange: ec.UseSpecifiedRange,
		Start:             units.TimeToInternal(ec.Start, st.Time),
		End:               units.TimeToInternal(ec.End, st.Time),
		Step:              units.TimeToInternal(ec.Step, st.Time),
	}
	if len(ec.EmbeddedFile) > 0 {
		data, err := os.ReadFile(ec.EmbeddedFile)
		if err != nil {
			return opts, fmt.Errorf("unable to read embedded file: %w", err)
		}
		opts.Embedded = data
	}
	return opts, nil
}

// prepareOutput makes sure output file can be created. Existing file is left in
// place until new one is complete.
func prepareOutput(name string, overwrite bool, log *zap.Logger) error {
	if _, err := os.Stat(name); err == nil {
		if !overwrite {
			return fmt.Errorf("output file already exists: %s", name)
		}
		log.Warn("Overwriting existing file", zap.String("file", name))
	} else if !os.IsNotExist(err) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	return nil
}

func exportScene(ctx context.Context, scenePath, dst string, env *state.LocalEnv, log *zap.Logger) (rerr error) {
	sc := memscene.New(log)
	if err := sc.Load(scenePath); err != nil {
		return err
	}
	env.Rpt.Store("scene/"+filepath.Base(scenePath), scenePath)

	if len(env.Nodes) > 0 {
		for _, n := range env.Nodes {
			if !sc.NodeExists(n) {
				return fmt.Errorf("node %q is not in the scene", n)
			}
		}
		sc.Select(env.Nodes...)
	}

	filter, err := loadTemplate(&env.Cfg.Export.Template, log)
	if err != nil {
		return err
	}
	opts, err := exportOptions(env.Cfg, sc.Units)
	if err != nil {
		return err
	}

	outputName := buildOutputPath(buildValues(config.OutputNameTemplateFieldName, scenePath, sc, env), dst, env)
	if err := prepareOutput(outputName, env.Overwrite, log); err != nil {
		return err
	}

	out, err := os.CreateTemp(filepath.Dir(outputName), "."+filepath.Base(outputName)+".*.tmp")
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}
	defer func() {
		if rerr != nil {
			// partial output is useless
			_ = os.Remove(out.Name())
		}
	}()

	ex := codec.NewExporter(sc, filter, opts, log)
	if err := ex.Export(ctx, out); err != nil {
		out.Close()
		if codec.IsNothingToExport(err) {
			return fmt.Errorf("selection of (%s) has no animation: %w", scenePath, err)
		}
		return fmt.Errorf("unable to export (%s): %w", scenePath, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("unable to write output file: %w", err)
	}
	if err := os.Rename(out.Name(), outputName); err != nil {
		return fmt.Errorf("unable to write output file: %w", err)
	}

	log.Info("Animation written", zap.String("to", outputName))
	env.Rpt.Store("result/"+filepath.Base(outputName), outputName)
	env.Rpt.StoreData("clipboard/export.txt", []byte(ex.Clipboard().String()))
	return nil
}
