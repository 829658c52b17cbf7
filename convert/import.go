package convert

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/ianaindex"

	"animc/archive"
	"animc/codec"
	"animc/config"
	"animc/memscene"
	"animc/replace"
	"animc/scene"
	"animc/state"
	"animc/template"
	"animc/units"
)

// Import reads animation files into the scene snapshot.
func Import(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("import")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Mailformed command line, too many sources", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	env.ScenePath = cmd.String("scene")
	out := cmd.String("out")
	if len(out) == 0 {
		out = env.Scene()
	}
	if len(out) == 0 {
		return errors.New("no scene snapshot to save result to has been specified")
	}

	// Since zip "standard" does not define file name encoding we may need to
	// force archaic code page for old archives
	if cp := cmd.String("force-zip-cp"); len(cp) > 0 {
		env.CodePage, err = ianaindex.IANA.Encoding(cp)
		if err != nil || env.CodePage == nil {
			log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cp), zap.Error(err))
			env.CodePage = nil
		} else {
			n, _ := ianaindex.IANA.Name(env.CodePage)
			log.Debug("Forcefully converting all non UTF-8 file names in archives", zap.String("charset", n))
		}
	}

	im, err := newImporter(env, log)
	if err != nil {
		return err
	}
	if err := im.openScene(env.Scene()); err != nil {
		return err
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("scene", env.Scene()), zap.String("destination", out))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)),
			zap.Int("files", im.count), zap.Int("failed", im.failed), zap.Int("warnings", im.warnings))
	}(time.Now())

	if err := process(ctx, src, im); err != nil {
		return err
	}
	if im.count == 0 {
		return fmt.Errorf("nothing was imported from (%s)", src)
	}
	return im.saveScene(out)
}

// importer applies every file it is given to the same scene.
type importer struct {
	env    *state.LocalEnv
	log    *zap.Logger
	scene  *memscene.Scene
	filter scene.TemplateFilter
	names  replace.Options
	opts   codec.ReadOptions
	paste  config.PasteMode

	count    int
	failed   int
	warnings int
}

func newImporter(env *state.LocalEnv, log *zap.Logger) (*importer, error) {
	cfg := &env.Cfg.Import
	im := &importer{
		env: env,
		log: log,
		names: replace.Options{
			Mode:    cfg.Match,
			Search:  cfg.Search,
			Replace: cfg.Replace,
			Prefix:  cfg.Prefix,
			Suffix:  cfg.Suffix,
			MapFile: cfg.MapFile,
		},
		opts: codec.ReadOptions{
			HostVersion:   env.Cfg.Host.Version,
			ReplaceLayers: cfg.ReplaceLayers,
		},
		paste: cfg.Paste,
	}

	filter, err := loadTemplate(&cfg.Template, log)
	if err != nil {
		return nil, err
	}
	im.filter = filter
	return im, nil
}

// loadTemplate returns nil when no template was configured.
func loadTemplate(cfg *config.TemplateConfig, log *zap.Logger) (scene.TemplateFilter, error) {
	if cfg.Path == "" {
		return nil, nil
	}
	f, err := template.LoadFile(cfg.Path, cfg.Name, cfg.View, log)
	if err != nil {
		return nil, fmt.Errorf("unable to use template (%s): %w", cfg.Path, err)
	}
	log.Debug("Template loaded", zap.String("file", cfg.Path), zap.Strings("nodes", f.Nodes()))
	return f, nil
}

// openScene loads snapshot to import into, missing snapshot means new
// empty scene in configured units.
func (im *importer) openScene(path string) error {
	im.scene = memscene.New(im.log)
	im.scene.Units = im.env.Units()

	if len(path) > 0 {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			if err := im.scene.Load(path); err != nil {
				return err
			}
			if err := im.env.Rpt.StoreCopy("scene/before.yaml", path); err != nil {
				im.log.Debug("Unable to store scene in report", zap.Error(err))
			}
		case os.IsNotExist(err):
			im.log.Info("Scene snapshot does not exist, starting with empty scene", zap.String("scene", path))
		default:
			return err
		}
	}

	im.opts.Units = im.scene.Units
	if fr := im.env.Cfg.Import.FrameRange; fr.Enable {
		im.opts.Clip = true
		im.opts.ClipStart = units.TimeToInternal(fr.Start, im.scene.Units.Time)
		im.opts.ClipEnd = units.TimeToInternal(fr.End, im.scene.Units.Time)
	}
	return nil
}

func (im *importer) saveScene(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("unable to create scene directory: %w", err)
		}
	}
	if err := im.scene.Save(path); err != nil {
		return err
	}
	if err := im.env.Rpt.StoreCopy("scene/after.yaml", path); err != nil {
		im.log.Debug("Unable to store scene in report", zap.Error(err))
	}
	return nil
}

// process determines the input type (directory, archive, or single file) and
// processes accordingly. Path which does not exist is checked for being a
// path inside an archive.
func process(ctx context.Context, src string, im *importer) error {
	var head, tail string
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return err
		}

		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exists - probably path in archive
			continue
		}

		if fi.Mode().IsDir() {
			if len(tail) != 0 {
				// directory cannot have tail - it would be simple file
				return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
			}
			if err := processDir(ctx, head, im); err != nil {
				return fmt.Errorf("unable to process directory: %w", err)
			}
			break
		}

		if !fi.Mode().IsRegular() {
			return fmt.Errorf("unexpected path mode for (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}

		isArchive, err := isArchiveFile(head)
		if err != nil {
			return fmt.Errorf("unable to check archive type: %w", err)
		}
		if isArchive {
			// we need to look inside to see if path makes sense
			tail = filepath.ToSlash(strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator)))
			if err := processArchive(ctx, head, tail, im); err != nil {
				return fmt.Errorf("unable to process archive: %w", err)
			}
			break
		}

		isAnim, enc, err := isAnimFile(head)
		if err != nil {
			return fmt.Errorf("unable to check file type: %w", err)
		}
		if isAnim && len(tail) == 0 {
			// single file is the whole request, its failure is ours
			return im.processLocal(ctx, head, filepath.Base(head), enc)
		}
		return fmt.Errorf("input was not recognized as animation file (%s)", head)
	}
	if len(head) == 0 {
		return fmt.Errorf("input source was not found (%s)", src)
	}
	return nil
}

// processDir walks directory tree finding animation files and archives.
func processDir(ctx context.Context, dir string, im *importer) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			im.log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		isArchive, err := isArchiveFile(path)
		if err != nil {
			im.log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		}
		if isArchive {
			if err := processArchive(ctx, path, "", im); err != nil {
				if ctx.Err() != nil {
					return err
				}
				im.log.Error("Unable to process archive", zap.String("file", path), zap.Error(err))
			}
			return nil
		}

		isAnim, enc, err := isAnimFile(path)
		if err != nil {
			im.log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		}
		if !isAnim {
			im.log.Debug("Skipping file, not recognized as animation or archive", zap.String("file", path))
			return nil
		}

		name := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))
		if err := im.processLocal(ctx, path, name, enc); err != nil {
			if ctx.Err() != nil {
				return err
			}
			im.log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
		}
		return nil
	})
}

// processArchive reads animation files inside archive located under pathIn.
func processArchive(ctx context.Context, path, pathIn string, im *importer) error {
	if err := im.env.Rpt.StoreCopy("source/"+filepath.Base(path), path); err != nil {
		im.log.Debug("Unable to store archive in report", zap.Error(err))
	}

	return archive.Walk(path, pathIn, im.env.CodePage, func(arc, name string, f *zip.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		isAnim, enc, err := isAnimInArchive(f)
		if err != nil {
			im.log.Warn("Skipping file in archive", zap.String("archive", arc), zap.String("path", name), zap.Error(err))
			return nil
		}
		if !isAnim {
			im.log.Debug("Skipping file, not recognized as animation", zap.String("archive", arc), zap.String("file", name))
			return nil
		}

		r, err := f.Open()
		if err != nil {
			im.failed++
			im.log.Error("Unable to process file in archive", zap.String("archive", arc), zap.String("file", name), zap.Error(err))
			return nil
		}
		defer r.Close()

		if err := im.processFile(ctx, selectReader(r, enc), name); err != nil {
			if ctx.Err() != nil {
				return err
			}
			im.log.Error("Unable to process file in archive", zap.String("archive", arc), zap.String("file", name), zap.Error(err))
		}
		return nil
	})
}

func (im *importer) processLocal(ctx context.Context, path, name string, enc srcEncoding) error {
	file, err := os.Open(path)
	if err != nil {
		im.failed++
		return err
	}
	defer file.Close()

	if err := im.env.Rpt.StoreCopy("source/"+filepath.ToSlash(name), path); err != nil {
		im.log.Debug("Unable to store file in report", zap.Error(err))
	}
	return im.processFile(ctx, selectReader(file, enc), name)
}

// processFile reads single animation file and pastes its curves into the
// scene. "name" is path relative to the source given on command line.
func (im *importer) processFile(ctx context.Context, r io.Reader, name string) (rerr error) {
	log := im.log.With(zap.String("from", name))

	warnings := 0
	log.Info("Reading starting")
	defer func(start time.Time) {
		if r := recover(); r != nil {
			log.Error("Reading ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("reading panic: %v", r)
		}
		if rerr != nil {
			im.failed++
			return
		}
		im.count++
		im.warnings += warnings
		log.Info("Reading completed", zap.Duration("elapsed", time.Since(start)), zap.Int("warnings", warnings))
	}(time.Now())

	names := replace.New(im.names, im.scene, im.scene.Selection(true), im.log)
	rd := codec.NewReader(im.scene, im.scene, im.filter, names, im.opts, im.log)
	res, err := rd.Read(ctx, r)
	if err != nil {
		return fmt.Errorf("unable to read animation (%s): %w", name, err)
	}
	warnings = len(multierr.Errors(res.Warnings))

	if err := im.scene.Paste(res.Clipboard, im.paste.Replace()); err != nil {
		return fmt.Errorf("unable to paste animation (%s): %w", name, err)
	}

	if len(res.DeletedLayers) > 0 {
		log.Info("Empty layers deleted", zap.Strings("layers", res.DeletedLayers))
	}
	if res.EmbeddedPresent {
		log.Debug("File carries embedded edits", zap.String("name", res.EmbeddedName), zap.Int("size", len(res.Embedded)))
		if res.Embedded != nil {
			im.env.Rpt.StoreData("embedded/"+filepath.ToSlash(name), res.Embedded)
		}
	}
	im.env.Rpt.StoreData("clipboard/"+filepath.ToSlash(name)+".txt", []byte(res.Clipboard.String()))
	return nil
}
