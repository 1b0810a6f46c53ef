package diagfmt

import (
	"path/filepath"

	"dandiya/internal/source"
)

func formatPath(path string, mode PathMode, baseDir string) string {
	if path == "" || path == source.AnonymousName {
		return source.AnonymousName
	}
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return filepath.ToSlash(abs)
		}
	case PathModeRelative:
		base := baseDir
		if base == "" {
			base = "."
		}
		absBase, errBase := filepath.Abs(base)
		absPath, errPath := filepath.Abs(path)
		if errBase == nil && errPath == nil {
			if rel, err := filepath.Rel(absBase, absPath); err == nil {
				return filepath.ToSlash(rel)
			}
		}
	case PathModeBasename:
		return filepath.Base(path)
	}
	return path
}
