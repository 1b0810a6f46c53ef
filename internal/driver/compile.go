package driver

import (
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"dandiya/internal/ast"
	"dandiya/internal/emit"
	"dandiya/internal/lexer"
	"dandiya/internal/observ"
	"dandiya/internal/parser"
	"dandiya/internal/source"
	"dandiya/internal/token"
)

type TokenizeResult struct {
	File   *source.File
	Runs   []token.Run // Runs[i] is the trivia in front of Tokens[i]
	Tokens []token.Token
}

type ParseResult struct {
	File *source.File
	Unit *ast.Unit
}

// LoadSource reads path from disk. Read failures and invalid UTF-8 are
// marked with ErrLoad.
func LoadSource(path string) (*source.File, error) {
	file, err := source.Load(path)
	if err != nil {
		return nil, loadError(err, path)
	}
	if !utf8.Valid(file.Content) {
		return nil, loadError(errors.WithStack(ErrNotUTF8), path)
	}
	Logger().Debug("loaded source",
		zap.String("path", path),
		zap.Uint32("bytes", file.Len()),
		zap.Uint32("lines", file.LineCount()))
	return file, nil
}

// Tokenize loads path and lexes it to the end. A lexical failure is
// returned as a *diag.Error.
func Tokenize(path string, timer *observ.Timer) (*TokenizeResult, error) {
	file, err := timed(timer, "load", func() (*source.File, error) { return LoadSource(path) })
	if err != nil {
		return nil, err
	}
	end := track(timer, "lex")
	runs, toks, err := lexer.New(file).All()
	end()
	if err != nil {
		return nil, err
	}
	return &TokenizeResult{File: file, Runs: runs, Tokens: toks}, nil
}

// Parse loads and parses path.
func Parse(path string, timer *observ.Timer) (*ParseResult, error) {
	file, err := timed(timer, "load", func() (*source.File, error) { return LoadSource(path) })
	if err != nil {
		return nil, err
	}
	unit, err := timed(timer, "parse", func() (*ast.Unit, error) { return parser.Parse(file) })
	if err != nil {
		return nil, err
	}
	Logger().Debug("parsed unit",
		zap.String("path", file.Name()),
		zap.Int("decls", unit.Len()),
		zap.Int("versioned", len(unit.BaseNames())))
	return &ParseResult{File: file, Unit: unit}, nil
}

// Compile parses path and renders it for lang.
func Compile(path string, lang emit.Language, opts emit.Options, timer *observ.Timer) (string, error) {
	res, err := Parse(path, timer)
	if err != nil {
		return "", err
	}
	return timed(timer, "emit "+lang.String(), func() (string, error) {
		return emit.Emit(res.Unit, lang, opts)
	})
}

func track(timer *observ.Timer, name string) func() {
	if timer == nil {
		return func() {}
	}
	return timer.Track(name)
}

func timed[T any](timer *observ.Timer, name string, fn func() (T, error)) (T, error) {
	end := track(timer, name)
	defer end()
	return fn()
}
