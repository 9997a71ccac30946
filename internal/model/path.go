// Package model defines the in-memory object model of a compiled module and
// the records produced while obfuscating it.
package model

// Path represents a file system path.
type Path string

// String returns the path as a plain string.
func (p Path) String() string {
	return string(p)
}
