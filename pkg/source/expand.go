package source

import (
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Expand resolves a path argument into an ordered list of files:
// a regular file resolves to itself, a directory to its contained files
// (recursively, lexicographic order), and anything else is treated as a
// glob pattern. multi reports whether the argument named more than a
// single explicit file, in which case per-file read errors should not
// abort the scan.
func Expand(path string) (files []string, multi bool, err error) {
	info, statErr := os.Stat(path)

	switch {
	case statErr == nil && info.IsDir():
		matches, err := doublestar.FilepathGlob(path + "/**")
		if err != nil {
			return nil, false, &FileError{Path: path, Err: err}
		}
		return regularFiles(matches), true, nil

	case statErr == nil:
		return []string{path}, false, nil

	default:
		// Not a file or directory: try it as a glob pattern.
		matches, globErr := doublestar.FilepathGlob(path)
		if globErr != nil || len(matches) == 0 {
			return nil, false, &FileError{Path: path, Err: statErr}
		}
		return regularFiles(matches), true, nil
	}
}

// regularFiles filters matches down to regular files, sorted for
// deterministic processing order.
func regularFiles(matches []string) []string {
	var files []string
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, m)
	}
	sort.Strings(files)
	return files
}
