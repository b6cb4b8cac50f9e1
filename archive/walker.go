// Package archive selects document models stored in zip archives.
package archive

import (
	"archive/zip"
	"fmt"
	"path"
	"strings"
)

// WalkFunc is called by Walk for every selected entry. The archive argument
// is the path passed to Walk. If an error is returned, walking stops and Walk
// returns it.
type WalkFunc func(archive string, file *zip.File) error

// Walk calls walkFn for every regular file in archive selected by prefix (see
// Selected), in the order entries are stored. Archive with any entry which
// would escape extraction directory (Zip Slip) is refused before walkFn is
// ever called.
func Walk(archive, prefix string, walkFn WalkFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		if !isSafePath(f.FileHeader.Name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", f.FileHeader.Name)
		}
	}

	for _, f := range r.File {
		if f.FileInfo().IsDir() || !Selected(f.FileHeader.Name, prefix) {
			continue
		}
		if err := walkFn(archive, f); err != nil {
			return err
		}
	}
	return nil
}

// Selected reports whether entry name is selected by prefix. Prefix names
// either the entry itself or a directory inside archive, so "docs" selects
// "docs/a.yaml" but not "docs2/a.yaml". Empty prefix selects everything.
func Selected(name, prefix string) bool {
	prefix = strings.TrimSuffix(prefix, "/")
	if prefix == "" {
		return true
	}
	return name == prefix || strings.HasPrefix(name, prefix+"/")
}

// isSafePath returns false for absolute names and names with ".."
// components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) || (len(name) > 1 && name[1] == ':') {
		return false
	}
	for _, part := range strings.FieldsFunc(name, func(r rune) bool { return r == '/' || r == '\\' }) {
		if part == ".." {
			return false
		}
	}
	return true
}
