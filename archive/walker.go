// Package archive walks animation files stored in zip archives.
package archive

import (
	"archive/zip"
	"fmt"
	"path"
	"strings"

	"golang.org/x/text/encoding"
)

// WalkFunc is called for each file in archive visited by Walk. The archive
// argument is the path passed to Walk, name is the file path inside archive
// (decoded when code page was forced) and file is the matching entry. If an
// error is returned, processing stops.
type WalkFunc func(archive, name string, file *zip.File) error

// DecodeName returns entry name. Since zip does not define name encoding,
// names not flagged as UTF-8 are converted from cp when it is not nil.
func DecodeName(f *zip.File, cp encoding.Encoding) (string, error) {
	name := f.FileHeader.Name
	if cp == nil || !f.FileHeader.NonUTF8 {
		return name, nil
	}
	decoded, err := cp.NewDecoder().String(name)
	if err != nil {
		return name, fmt.Errorf("unable to decode entry name %q: %w", name, err)
	}
	return decoded, nil
}

// Walk calls walkFn for every file in the archive whose decoded name starts
// with prefix. Entries with absolute paths or ".." components stop the walk
// with an error (Zip Slip). Names which cannot be decoded are matched raw.
func Walk(archive, prefix string, cp encoding.Encoding, walkFn WalkFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		name, _ := DecodeName(f, cp)
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if f.FileInfo().IsDir() || !strings.HasPrefix(name, prefix) {
			continue
		}
		if err := walkFn(archive, name, f); err != nil {
			return err
		}
	}
	return nil
}

func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	for _, part := range strings.FieldsFunc(name, func(r rune) bool { return r == '/' || r == '\\' }) {
		if part == ".." {
			return false
		}
	}
	return true
}
