package convert

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"animc/config"
	"animc/state"
)

const (
	outputExt   = ".anim"
	defaultName = "untitled"
)

// buildOutputPath returns export destination. Destination naming a file
// (having an extension and not being an existing directory) is used as is,
// otherwise it is a directory and the file name comes from the output name
// template or the scene name. Names are cleaned and, if requested,
// transliterated.
func buildOutputPath(v Values, dst string, env *state.LocalEnv) string {
	if filepath.Ext(dst) != "" {
		if fi, err := os.Stat(dst); err != nil || !fi.IsDir() {
			return dst
		}
	}

	defaultFile := buildDefaultFileName(v.Scene, env)
	if env.Cfg.Export.OutputNameTemplate == "" {
		return filepath.Join(dst, defaultFile)
	}

	expandedName := expandOutputNameTemplate(v, env)
	if expandedName == "" {
		// fallback to default name if template expansion failed
		return filepath.Join(dst, defaultFile)
	}
	return assemblePathWithSubdirs(dst, expandedName, env)
}

func buildDefaultFileName(baseName string, env *state.LocalEnv) string {
	if baseName == "" {
		baseName = defaultName
	}
	return cleanPathSegment(baseName, env) + outputExt
}

func expandOutputNameTemplate(v Values, env *state.LocalEnv) string {
	expandedName, err := expandTemplate(config.OutputNameTemplateFieldName, env.Cfg.Export.OutputNameTemplate, v)
	if err != nil {
		env.Log.Warn("Unable to prepare output filename", zap.Error(err))
		return ""
	}
	return filepath.FromSlash(strings.TrimSpace(expandedName))
}

// assemblePathWithSubdirs takes an expanded template name (which may contain
// path separators for subdirectories) and assembles it into a full output path,
// cleaning and transliterating segments as needed
func assemblePathWithSubdirs(outDir, expandedName string, env *state.LocalEnv) string {
	pathSegments := splitAndCleanPath(expandedName)
	if len(pathSegments) == 0 {
		return filepath.Join(outDir, defaultName+outputExt)
	}

	fileName := strings.TrimSuffix(pathSegments[len(pathSegments)-1], outputExt)
	dirParts := make([]string, 0, len(pathSegments)+1)
	dirParts = append(dirParts, outDir)
	for _, segment := range pathSegments[:len(pathSegments)-1] {
		dirParts = append(dirParts, cleanPathSegment(segment, env))
	}
	dirParts = append(dirParts, cleanPathSegment(fileName, env)+outputExt)
	return filepath.Join(dirParts...)
}

func splitAndCleanPath(path string) []string {
	path = strings.TrimSuffix(path, string(os.PathSeparator))
	segments := make([]string, 0, 8)

	for head, tail := filepath.Split(path); tail != ""; head, tail = filepath.Split(head) {
		if tail != "." && tail != ".." {
			segments = slices.Insert(segments, 0, tail)
		}
		head = strings.TrimSuffix(head, string(os.PathSeparator))
		if head == "" {
			break
		}
	}
	return segments
}

func cleanPathSegment(segment string, env *state.LocalEnv) string {
	if env.Cfg.Export.FileNameTransliterate {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(segment)
}
