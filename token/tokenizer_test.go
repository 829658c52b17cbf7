package token

import (
	"errors"
	"strings"
	"testing"
)

func TestNextWord(t *testing.T) {
	tk := NewBytes([]byte("  word1 ;; word2\t# comment { not a token\n\"quoted name\" {inner} last;"))

	want := []string{"word1", "word2", "quoted name", "{", "inner}", "last", ""}
	for i, w := range want {
		if got := tk.NextWord(); got != w {
			t.Fatalf("token %d = %q, want %q", i, got, w)
		}
	}
	if !tk.EOF() {
		t.Error("EOF() = false after last token")
	}
	if err := tk.Err(); err != nil {
		t.Errorf("Err() = %v", err)
	}
}

func TestNextWordWS(t *testing.T) {
	tk := New(strings.NewReader("hostVersion 2016 Extension 2 SP1;\nnext"))
	if got := tk.NextWord(); got != "hostVersion" {
		t.Fatalf("got %q", got)
	}
	if got := tk.NextWordWS(); got != "2016 Extension 2 SP1" {
		t.Errorf("NextWordWS() = %q", got)
	}
	if got := tk.NextWord(); got != "next" {
		t.Errorf("after NextWordWS got %q", got)
	}
}

func TestTokensAreOwned(t *testing.T) {
	tk := NewBytes([]byte("first second"))
	a := tk.NextWord()
	b := tk.NextWord()
	if a != "first" || b != "second" {
		t.Errorf("tokens changed: %q %q", a, b)
	}
}

func TestNumbers(t *testing.T) {
	tk := NewBytes([]byte("1.5 -2e-3;\n 42 7 -3 12.0 abc"))

	if v, err := tk.NextDouble(); err != nil || v != 1.5 {
		t.Errorf("NextDouble() = %v, %v", v, err)
	}
	if v, err := tk.NextDouble(); err != nil || v != -2e-3 {
		t.Errorf("NextDouble() = %v, %v", v, err)
	}
	if v, err := tk.NextInt(); err != nil || v != 42 {
		t.Errorf("NextInt() = %v, %v", v, err)
	}
	if v, err := tk.NextShort(); err != nil || v != 7 {
		t.Errorf("NextShort() = %v, %v", v, err)
	}
	if v, err := tk.NextChar(); err != nil || v != -3 {
		t.Errorf("NextChar() = %v, %v", v, err)
	}
	if v, err := tk.NextInt(); err != nil || v != 12 {
		t.Errorf("NextInt() on float literal = %v, %v", v, err)
	}
	if tk.PeekIsNumeric() {
		t.Error("PeekIsNumeric() = true before word")
	}
	if _, err := tk.NextDouble(); !errors.Is(err, ErrNotNumeric) {
		t.Errorf("NextDouble() on word: err = %v", err)
	}
	if got := tk.NextWord(); got != "abc" {
		t.Errorf("failed numeric read consumed word, got %q", got)
	}
}

func TestPeekIsNumeric(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want bool
	}{
		{"  1", true},
		{"-x", true},
		{".5", true},
		{"; # c\n 9", true},
		{"tx", false},
		{"", false},
		{"{", false},
	} {
		if got := NewBytes([]byte(tc.in)).PeekIsNumeric(); got != tc.want {
			t.Errorf("PeekIsNumeric(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestAtTerminator(t *testing.T) {
	tk := NewBytes([]byte("anim tx 0 layer1;\nanim ty 1;\n"))
	tk.NextWord()
	tk.NextWord()
	tk.NextInt()
	if tk.AtTerminator() {
		t.Fatal("AtTerminator() = true before layer name")
	}
	if got := tk.NextWord(); got != "layer1" {
		t.Fatalf("layer = %q", got)
	}
	tk.NextWord()
	tk.NextWord()
	tk.NextInt()
	if !tk.AtTerminator() {
		t.Error("AtTerminator() = false at ';'")
	}
}

func TestSkipLine(t *testing.T) {
	tk := NewBytes([]byte("bogus stuff here;\nkeep"))
	tk.NextWord()
	if got := tk.SkipLine(); got != " stuff here;\n" {
		t.Errorf("SkipLine() = %q", got)
	}
	if got := tk.NextWord(); got != "keep" {
		t.Errorf("after SkipLine got %q", got)
	}
}

func TestRest(t *testing.T) {
	tk := NewBytes([]byte("offlineFileData   line 1\n# not a comment here\n;\n"))
	tk.NextWord()
	if got := string(tk.Rest()); got != "  line 1\n# not a comment here\n;\n" {
		t.Errorf("Rest() = %q", got)
	}
	if !tk.EOF() {
		t.Error("Rest() did not consume input")
	}
}

func TestSkipBlock(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		depth int
		want  string
	}{
		{
			name:  "node body",
			in:    "pCube1 0 1; anim tx 0; animData { keys { 0 1; } } } dagNode",
			depth: 1,
			want:  "dagNode",
		},
		{
			name:  "entry with data",
			in:    "tx tx 0; animData { input time; keys { 0 1 linear linear 1 1 0; } } static",
			depth: 0,
			want:  "static",
		},
		{
			name:  "entry without data stops at enclosing brace",
			in:    "tx tx 0; }",
			depth: 0,
			want:  "}",
		},
		{
			name:  "unterminated",
			in:    "tx { 1 2",
			depth: 0,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := NewBytes([]byte(tt.in))
			if got := tk.SkipBlock(tk.NextWord(), tt.depth); got != tt.want {
				t.Errorf("SkipBlock() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSkipper(t *testing.T) {
	s := NewSkipper(0)
	for _, w := range []string{"a", "{", "b", "{", "}"} {
		if done, _ := s.Feed(w); done {
			t.Fatalf("done too early at %q", w)
		}
	}
	if done, unbalanced := s.Feed("}"); !done || unbalanced {
		t.Errorf("Feed() = %v, %v at balancing brace", done, unbalanced)
	}

	s = NewSkipper(0)
	if done, unbalanced := s.Feed("}"); !done || !unbalanced {
		t.Errorf("stray brace: Feed() = %v, %v", done, unbalanced)
	}
}

func TestPeek(t *testing.T) {
	tk := NewBytes([]byte("  ; # note\n} x"))
	if got := tk.Peek(); got != '}' {
		t.Fatalf("Peek() = %q", got)
	}
	if got := tk.NextWord(); got != "}" {
		t.Fatalf("NextWord() after Peek = %q", got)
	}
	tk.NextWord()
	if got := tk.Peek(); got != 0 {
		t.Errorf("Peek() at end = %q", got)
	}
}
