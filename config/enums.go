package config

// How curves read from file are applied to already animated attributes.
// ENUM(merge, replace)
type PasteMode int

// Replace reports whether pasted curves substitute existing ones.
func (p PasteMode) Replace() bool {
	return p == PasteModeReplace
}
