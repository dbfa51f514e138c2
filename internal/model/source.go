// Package model defines the data structures for test generation.
package model

// Path represents a file system path.
type Path string

// SourceFile represents a source code file handed to the generator.
// The file itself belongs to the user's project; this tool only reads it.
type SourceFile struct {
	Path    Path
	Content string
}
