package source

import (
	"crypto/sha256"
	"fmt"
	"os"

	"fortio.org/safecast"
)

// NewFile builds a virtual file from memory. An empty path makes the file anonymous.
func NewFile(path string, content []byte) *File {
	return newFile(path, content, FileVirtual)
}

// Load reads a file from disk, strips a UTF-8 BOM and normalizes CRLF line endings.
func Load(path string) (*File, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)

	flags := FileFlags(0)
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return newFile(path, content, flags), nil
}

func newFile(path string, content []byte, flags FileFlags) *File {
	if _, err := safecast.Conv[uint32](len(content)); err != nil {
		panic(fmt.Errorf("source %q is too large: %w", path, err))
	}
	return &File{
		Path:    normalizePath(path),
		Content: content,
		LineIdx: buildLineIndex(content),
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	}
}

// Name returns the path used in diagnostics, or AnonymousName.
func (f *File) Name() string {
	if f.Path == "" {
		return AnonymousName
	}
	return f.Path
}

// Len returns the content length in bytes.
func (f *File) Len() uint32 {
	n, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return n
}

// Resolve converts a byte offset into a line/column pair.
func (f *File) Resolve(off uint32) LineCol {
	return toLineCol(f.LineIdx, off)
}

// Line returns the text of line lineNum (1-based) without its terminating newline.
// Missing lines yield an empty string.
func (f *File) Line(lineNum uint32) string {
	if lineNum == 0 {
		return ""
	}

	lenLineIdx, err := safecast.Conv[uint32](len(f.LineIdx))
	if err != nil {
		panic(fmt.Errorf("line index length overflow: %w", err))
	}
	lenContent := f.Len()

	var start, end uint32
	switch {
	case lineNum == 1:
		start = 0
	case lineNum-2 < lenLineIdx:
		start = f.LineIdx[lineNum-2] + 1
	default:
		return ""
	}

	if lineNum-1 < lenLineIdx {
		end = f.LineIdx[lineNum-1]
	} else {
		end = lenContent
	}

	if start > lenContent {
		return ""
	}
	return string(f.Content[start:end])
}

// LineCount returns the number of lines, counting a final unterminated line.
func (f *File) LineCount() uint32 {
	n, err := safecast.Conv[uint32](len(f.LineIdx))
	if err != nil {
		panic(fmt.Errorf("line index length overflow: %w", err))
	}
	if len(f.Content) == 0 || f.Content[len(f.Content)-1] != '\n' {
		n++
	}
	return n
}
