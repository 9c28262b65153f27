// Package archive walks zip archives with styling scripts.
package archive

import (
	"archive/zip"
	"fmt"
	"path"
	"strings"
)

// WalkFunc is called for every file Walk visits. The archive argument is the
// path passed to Walk. If an error is returned, processing stops.
type WalkFunc func(archive string, file *zip.File) error

// Walk visits regular files of the archive located under dir, in archive
// order. Empty dir means the whole archive, dir may also name a single file.
// Matching is done by whole path segments: "q1" never matches "q10/a.yaml".
//
// Entries with absolute names or ".." components make the archive unusable,
// it is rejected before any file is visited.
func Walk(archive, dir string, walkFn WalkFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		if !isSafePath(f.Name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", f.Name)
		}
	}

	dir = cleanDir(dir)
	for _, f := range r.File {
		if f.FileInfo().IsDir() || !isUnder(f.Name, dir) {
			continue
		}
		if err := walkFn(archive, f); err != nil {
			return err
		}
	}
	return nil
}

func cleanDir(dir string) string {
	dir = strings.ReplaceAll(dir, `\`, "/")
	return strings.Trim(path.Clean("/"+dir), "/")
}

func isUnder(name, dir string) bool {
	return dir == "" || name == dir || strings.HasPrefix(name, dir+"/")
}

func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	// drive letters
	if len(name) > 1 && name[1] == ':' {
		return false
	}
	for part := range strings.SplitSeq(strings.ReplaceAll(name, `\`, "/"), "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
