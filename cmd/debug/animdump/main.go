// animdump prints scene snapshot content as a tree, optionally reads an
// animation file against the snapshot and shows what the file would paste.
//
// With -sqlite every curve and key of the snapshot is written into a SQLite
// database so curves from different shots can be compared with plain SQL.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"animc/cmd/debug/internal/dumputil"
	"animc/codec"
	"animc/memscene"
	"animc/utils/debug"
)

func main() {
	all := flag.Bool("all", false, "enable all dump flags (-dump, -sqlite)")
	dump := flag.Bool("dump", false, "dump snapshot tree into <file>-dump.txt")
	writeSqlite := flag.Bool("sqlite", false, "write curves and keys to <file>.sqlite")
	animFile := flag.String("anim", "", "read animation `FILE` against snapshot and dump its clipboard into <file>-clipboard.txt")
	overwrite := flag.Bool("overwrite", false, "overwrite existing output")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: animdump [-all] [-dump] [-sqlite] [-anim file.anim] [-overwrite] <scene.yaml> [outdir]\n\n")
		fmt.Fprintf(os.Stderr, "Dumps scene snapshot content for troubleshooting.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 || flag.NArg() > 2 {
		flag.Usage()
		os.Exit(2)
	}

	if *all {
		*dump = true
		*writeSqlite = true
	}

	if !*dump && !*writeSqlite && *animFile == "" {
		flag.Usage()
		os.Exit(2)
	}

	defer func(startedAt time.Time) {
		fmt.Fprintf(os.Stderr, "\nExecution time: %s\n", time.Since(startedAt))
	}(time.Now())

	inPath := flag.Arg(0)
	outDir := ""
	if flag.NArg() == 2 {
		outDir = flag.Arg(1)
	}

	sc := memscene.New(nil)
	if err := sc.Load(inPath); err != nil {
		fmt.Fprintf(os.Stderr, "load %s: %v\n", inPath, err)
		os.Exit(1)
	}

	if *dump {
		if err := dumputil.WriteOutput(inPath, outDir, "-dump.txt", []byte(dumpScene(sc)), *overwrite); err != nil {
			fmt.Fprintf(os.Stderr, "dump: %v\n", err)
			os.Exit(1)
		}
	}

	if *writeSqlite {
		outPath, err := dumputil.OutputPath(inPath, outDir, ".sqlite", *overwrite)
		if err != nil {
			fmt.Fprintf(os.Stderr, "write sqlite: %v\n", err)
			os.Exit(1)
		}
		curves, keys, err := writeDatabase(sc, outPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "write sqlite: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "wrote %d curve(s), %d key(s) into %s\n", curves, keys, outPath)
	}

	if *animFile != "" {
		if err := dumpAnimation(sc, *animFile, outDir, *overwrite); err != nil {
			fmt.Fprintf(os.Stderr, "anim: %v\n", err)
			os.Exit(1)
		}
	}
}

// dumpScene walks selection depth first and lists attributes with their
// values and curves.
func dumpScene(sc *memscene.Scene) string {
	tw := debug.NewTreeWriter()

	start, end := sc.PlaybackRange()
	tw.Line(0, "scene %q units=%s/%s/%s playback=[%g, %g]", sc.SceneFile(),
		sc.Units.Time.ShortName(), sc.Units.Linear.ShortName(), sc.Units.Angular.ShortName(), start, end)

	layerNames := sc.OrderedLayerNames()
	for _, info := range sc.Selection(true) {
		tw.Line(info.Depth+1, "%s %s (children=%d)", info.Kind, info.Name, info.ChildCount)
		for _, p := range sc.Attributes(info.Name) {
			a, _ := sc.Attribute(info.Name, p.Leaf)
			label := fmt.Sprintf("%s [%s] %s", p.Leaf, p.Attr, p.Type)
			if a.Driver != memscene.DriverNone {
				label += " driver=" + a.Driver.String()
			}
			tw.Values(info.Depth+2, label, a.Value, 8)
			if c := sc.Curve(p, ""); c != nil {
				tw.Line(info.Depth+3, "curve input=%s output=%s keys=%d", c.Input, c.Output, c.Len())
			}
			for _, l := range layerNames {
				if c := sc.Curve(p, l); c != nil {
					tw.Line(info.Depth+3, "layer %s curve keys=%d", l, c.Len())
				}
			}
		}
	}

	if len(layerNames) > 0 {
		tw.Line(0, "layers")
		for _, l := range layerNames {
			tw.Line(1, "%s: %v", l, sc.LayerAttributes(l))
		}
	}
	return tw.String()
}

// dumpAnimation reads file without touching the snapshot on disk, writes
// clipboard dump and embedded secondary file when present.
func dumpAnimation(sc *memscene.Scene, path, outDir string, overwrite bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r := codec.NewReader(sc, sc, nil, nil, codec.ReadOptions{Units: sc.Units}, nil)
	res, err := r.Read(context.Background(), f)
	if err != nil {
		return err
	}

	tw := debug.NewTreeWriter()
	h := res.Header
	tw.Line(0, "header version=%q host=%q source=%q", h.FormatVersion, h.HostVersion, h.SourceFile)
	tw.Line(1, "units %s/%s/%s", h.Time.ShortName(), h.Linear.ShortName(), h.Angular.ShortName())
	if h.HasTimeSpan {
		tw.Line(1, "time [%g, %g]", h.StartTime, h.EndTime)
	}
	if h.HasUnitlessSpan {
		tw.Line(1, "unitless [%g, %g]", h.StartUnitless, h.EndUnitless)
	}
	if res.Warnings != nil {
		tw.TextBlock(1, "warnings", res.Warnings.Error())
	}
	out := tw.String() + res.Clipboard.String()

	if err := dumputil.WriteOutput(path, outDir, "-clipboard.txt", []byte(out), overwrite); err != nil {
		return err
	}
	if len(res.Embedded) > 0 {
		name := dumputil.SanitizeFileComponent(filepath.Base(res.EmbeddedName))
		suffix := "-" + name
		if filepath.Ext(name) == "" {
			suffix += dumputil.ExtFromFiletype(res.Embedded)
		}
		return dumputil.WriteOutput(path, outDir, suffix, res.Embedded, overwrite)
	}
	return nil
}
