package source

// FileFlags encodes metadata about a source file.
type FileFlags uint8

const (
	// FileVirtual indicates the file was created from memory (test, stdin, generated).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// AnonymousName is reported in diagnostics for sources that have no name.
const AnonymousName = "<anonymous>"

// File captures the content of a single .dy source and its line index.
type File struct {
	Path    string
	Content []byte
	LineIdx []uint32 // byte offsets of every '\n'
	Hash    [32]byte
	Flags   FileFlags
}

// Pos is a resolved position inside a file.
type Pos struct {
	Offset uint32 // byte offset
	Line   uint32 // 1-based
	Col    uint32 // 1-based, in bytes
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
