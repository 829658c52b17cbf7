package dumputil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitizeFileComponent(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "unknown"},
		{"  ", "unknown"},
		{"ball.anim", "ball.anim"},
		{"a b/c:d", "a_b_c_d"},
		{"pSphere1|ctrl", "pSphere1_ctrl"},
	}
	for _, tt := range tests {
		if got := SanitizeFileComponent(tt.in); got != tt.want {
			t.Errorf("SanitizeFileComponent(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtFromFiletype(t *testing.T) {
	if got := ExtFromFiletype([]byte("plain text")); got != ".bin" {
		t.Errorf("ExtFromFiletype(text) = %q", got)
	}
	if got := ExtFromFiletype([]byte("PK\x03\x04\x14\x00\x00\x00")); got != ".zip" {
		t.Errorf("ExtFromFiletype(zip) = %q", got)
	}
}

func TestWriteOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "shot.yaml")

	if err := WriteOutput(in, "", "-dump.txt", []byte("one"), false); err != nil {
		t.Fatalf("WriteOutput() error = %v", err)
	}
	err := WriteOutput(in, "", "-dump.txt", []byte("two"), false)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("WriteOutput() without overwrite error = %v", err)
	}
	if err := WriteOutput(in, "", "-dump.txt", []byte("two"), true); err != nil {
		t.Fatalf("WriteOutput() overwrite error = %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "shot-dump.txt"))
	if err != nil || string(data) != "two" {
		t.Errorf("content = %q, %v", data, err)
	}

	out := t.TempDir()
	p, err := OutputPath(in, out, ".sqlite", false)
	if err != nil || p != filepath.Join(out, "shot.sqlite") {
		t.Errorf("OutputPath() = %q, %v", p, err)
	}
}
