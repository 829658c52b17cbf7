package token

// Skipper tracks brace nesting while tokens of an unwanted region are thrown
// away.
type Skipper struct {
	depth int
	armed bool
}

// NewSkipper returns skipper for a region. With depth 0 skipper waits for the
// region to open, otherwise it assumes caller is already that deep inside.
func NewSkipper(depth int) *Skipper {
	return &Skipper{depth: depth, armed: depth > 0}
}

// Feed accounts for a single token and reports whether region is complete.
// Stray closing brace seen before region opened is reported as unbalanced so
// it could be given back to the caller.
func (s *Skipper) Feed(word string) (done, unbalanced bool) {
	switch word {
	case OpenBrace:
		s.depth++
		s.armed = true
	case CloseBrace:
		if !s.armed {
			return true, true
		}
		s.depth--
	}
	return s.armed && s.depth == 0, false
}

// SkipBlock throws away tokens starting with current until brace region is
// balanced (see NewSkipper for meaning of depth) and returns the token
// following the region. Closing brace belonging to the enclosing block, met
// before region opened, is returned untouched.
func (t *Tokenizer) SkipBlock(current string, depth int) string {
	s := NewSkipper(depth)
	word := current
	for {
		done, unbalanced := s.Feed(word)
		if unbalanced {
			return word
		}
		if done {
			return t.NextWord()
		}
		if word == "" && t.EOF() {
			return ""
		}
		word = t.NextWord()
	}
}
