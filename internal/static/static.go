// Package static resolves request targets against a directory of static
// content and guesses content types from file names.
//
// Names are joined to the root without sanitization: a name containing
// ".." segments can reach files outside the root. Callers that serve
// untrusted clients must not rely on this package for confinement.
package static

import (
	"mime"
	"os"
	"path"
	"path/filepath"
)

// Dir is a static content root on the local file system.
type Dir struct {
	root string
}

// NewDir returns a Dir rooted at root.
func NewDir(root string) *Dir {
	return &Dir{root: root}
}

// Root returns the directory names are resolved against.
func (d *Dir) Root() string {
	return d.root
}

// Exists reports whether name is a regular file under the root.
// Directories do not count.
func (d *Dir) Exists(name string) bool {
	fi, err := os.Stat(d.path(name))
	if err != nil {
		return false
	}
	return fi.Mode().IsRegular()
}

// ReadFile returns the contents of name.
func (d *Dir) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(d.path(name))
}

func (d *Dir) path(name string) string {
	return filepath.Join(d.root, filepath.FromSlash(name))
}

// GuessType returns the media type for name's extension without
// parameters, or "" when the extension is unknown.
func GuessType(name string) string {
	t := mime.TypeByExtension(path.Ext(name))
	if t == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(t)
	if err != nil {
		return t
	}
	return mediaType
}
