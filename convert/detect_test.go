package convert

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

func TestDetectUTF(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		want srcEncoding
	}{
		{"UTF-8 BOM", []byte{0xEF, 0xBB, 0xBF, 'f'}, encUTF8},
		{"UTF-16 BE BOM", []byte{0xFE, 0xFF, 0x00, 'f'}, encUTF16BigEndian},
		{"UTF-16 LE BOM", []byte{0xFF, 0xFE, 'f', 0x00}, encUTF16LittleEndian},
		{"UTF-32 BE BOM", []byte{0x00, 0x00, 0xFE, 0xFF}, encUTF32BigEndian},
		{"UTF-32 LE BOM", []byte{0xFF, 0xFE, 0x00, 0x00}, encUTF32LittleEndian},
		{"no BOM", []byte("formatVersion 1.0;"), encUnknown},
		{"short", []byte{0xEF}, encUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectUTF(tt.buf); got != tt.want {
				t.Errorf("detectUTF() = %v, want %v", got, tt.want)
			}
		})
	}
}

func encode(t *testing.T, text string, enc srcEncoding) []byte {
	t.Helper()
	var (
		out string
		err error
	)
	switch enc {
	case encUnknown:
		return []byte(text)
	case encUTF8:
		out, err = unicode.UTF8BOM.NewEncoder().String(text)
	case encUTF16BigEndian:
		out, err = unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder().String(text)
	case encUTF16LittleEndian:
		out, err = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String(text)
	case encUTF32BigEndian:
		out, err = utf32.UTF32(utf32.BigEndian, utf32.UseBOM).NewEncoder().String(text)
	case encUTF32LittleEndian:
		out, err = utf32.UTF32(utf32.LittleEndian, utf32.UseBOM).NewEncoder().String(text)
	}
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	return []byte(out)
}

func TestSniff(t *testing.T) {
	for _, enc := range []srcEncoding{encUnknown, encUTF8, encUTF16BigEndian, encUTF16LittleEndian, encUTF32BigEndian, encUTF32LittleEndian} {
		data := encode(t, ballAnim, enc)
		ok, got := sniff(data[:min(len(data), headSize)])
		if !ok || got != enc {
			t.Errorf("encoding %d: sniff() = %v, %v", enc, ok, got)
		}

		decoded, err := io.ReadAll(selectReader(bytes.NewReader(data), got))
		if err != nil {
			t.Fatalf("encoding %d: read: %v", enc, err)
		}
		if string(decoded) != ballAnim {
			t.Errorf("encoding %d: decoded text differs", enc)
		}
	}

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"leading blanks", "\n\n  formatVersion 1.0;", true},
		{"tab separated", "formatVersion\t1.0;", true},
		{"longer keyword", "formatVersions 1.0;", false},
		{"keyword only", "formatVersion", false},
		{"other keyword first", "timeUnit film;\nformatVersion 1.0;", false},
		{"xml", `<?xml version="1.0"?><template/>`, false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, _ := sniff([]byte(tt.text)); got != tt.want {
				t.Errorf("sniff(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestSelectReader_Panic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for invalid encoding")
		}
	}()
	selectReader(bytes.NewReader(nil), srcEncoding(999))
}

func TestIsArchiveFile(t *testing.T) {
	dir := t.TempDir()

	txt := writeFile(t, filepath.Join(dir, "notes.txt"), "not a zip")
	fake := writeFile(t, filepath.Join(dir, "fake.zip"), "not a real zip file")
	good := writeZip(t, filepath.Join(dir, "shots.ZIP"), map[string]string{"ball.anim": ballAnim})

	tests := []struct {
		path string
		want bool
	}{
		{txt, false},
		{fake, false},
		{good, true},
	}
	for _, tt := range tests {
		got, err := isArchiveFile(tt.path)
		if err != nil {
			t.Errorf("isArchiveFile(%s) error = %v", tt.path, err)
		}
		if got != tt.want {
			t.Errorf("isArchiveFile(%s) = %v, want %v", tt.path, got, tt.want)
		}
	}

	if _, err := isArchiveFile(filepath.Join(dir, "missing.zip")); err == nil {
		t.Error("isArchiveFile() on missing file succeeded")
	}
}

func TestIsAnimFile(t *testing.T) {
	dir := t.TempDir()
	animPath := filepath.Join(dir, "ball.anim")
	if err := os.WriteFile(animPath, encode(t, ballAnim, encUTF16LittleEndian), 0644); err != nil {
		t.Fatal(err)
	}
	ok, enc, err := isAnimFile(animPath)
	if err != nil || !ok || enc != encUTF16LittleEndian {
		t.Errorf("isAnimFile() = %v, %v, %v", ok, enc, err)
	}

	other := writeFile(t, filepath.Join(dir, "ball.ma"), "//Maya ASCII 2016 scene\n")
	if ok, _, err := isAnimFile(other); err != nil || ok {
		t.Errorf("isAnimFile(other) = %v, %v", ok, err)
	}
	if _, _, err := isAnimFile(filepath.Join(dir, "missing.anim")); err == nil {
		t.Error("isAnimFile() on missing file succeeded")
	}
}
