package driver

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"dandiya/internal/buildpipeline"
	"dandiya/internal/diag"
	"dandiya/internal/emit"
	"dandiya/internal/parser"
)

type recordingSink struct {
	mu     sync.Mutex
	events []buildpipeline.Event
}

func (s *recordingSink) OnEvent(e buildpipeline.Event) {
	s.mu.Lock()
	s.events = append(s.events, e)
	s.mu.Unlock()
}

func (s *recordingSink) final(file string) buildpipeline.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	var last buildpipeline.Status
	for _, e := range s.events {
		if e.File == file {
			last = e.Status
		}
	}
	return last
}

const (
	apiSrc  = "struct point { x: i32, y: i32 }\nfn(v1) move(p: *point);\n"
	nestSrc = "opaque handle;\nconst N = 3;\n"
	badSrc  = "fn(v1) f() -> [u8; 4];\n"
)

func setupTree(t *testing.T) (src, out string) {
	t.Helper()
	root := t.TempDir()
	src = filepath.Join(root, "api")
	out = filepath.Join(root, "gen")
	writeSource(t, src, "api.dy", apiSrc)
	writeSource(t, src, "nested/handle.dy", nestSrc)
	writeSource(t, src, "notes.txt", "ignored")
	return src, out
}

func TestListSources(t *testing.T) {
	src, _ := setupTree(t)
	files, err := ListSources(src)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 || filepath.Base(files[0]) != "api.dy" || filepath.Base(files[1]) != "handle.dy" {
		t.Fatalf("files = %v", files)
	}
}

func TestGenerateDir(t *testing.T) {
	src, out := setupTree(t)
	cache, err := NewDiskCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}
	sink := &recordingSink{}
	req := GenerateRequest{
		Dir:       src,
		OutDir:    out,
		Languages: []emit.Language{emit.C, emit.Rust},
		Options:   emit.DefaultOptions(),
		Jobs:      2,
		Cache:     cache,
		Progress:  sink,
	}

	res, err := GenerateDir(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Files) != 2 || len(res.Failed()) != 0 {
		t.Fatalf("results = %+v", res.Files)
	}
	if res.Files[0].Rel != "api.dy" || res.Files[1].Rel != "nested/handle.dy" {
		t.Fatalf("unexpected order: %s, %s", res.Files[0].Rel, res.Files[1].Rel)
	}

	unit, err := parser.ParseString(apiSrc, filepath.Join(src, "api.dy"))
	if err != nil {
		t.Fatal(err)
	}
	opts := emit.DefaultOptions()
	opts.HeaderGuard = "API_H"
	got, err := os.ReadFile(filepath.Join(out, "api.h"))
	if err != nil {
		t.Fatal(err)
	}
	if want := emit.CHeader(unit, opts); string(got) != want {
		t.Fatalf("api.h differs:\nwant %q\ngot  %q", want, got)
	}
	if _, err := os.Stat(filepath.Join(out, "nested", "handle.rs")); err != nil {
		t.Fatalf("nested output missing: %v", err)
	}
	if s := sink.final("api.dy"); s != buildpipeline.StatusDone {
		t.Fatalf("final status = %s", s)
	}

	sink2 := &recordingSink{}
	req.Progress = sink2
	res, err = GenerateDir(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range res.Files {
		if !f.Cached {
			t.Fatalf("%s was not served from the cache", f.Rel)
		}
	}
	if s := sink2.final("nested/handle.dy"); s != buildpipeline.StatusCached {
		t.Fatalf("final status = %s", s)
	}
}

func TestGenerateDirRecordsFailures(t *testing.T) {
	src, out := setupTree(t)
	writeSource(t, src, "bad.dy", badSrc)
	writeSource(t, src, "nested/worse.dy", "struct s {}\nstruct s {}\n")
	sink := &recordingSink{}
	bag := diag.NewBag(0)

	res, err := GenerateDir(context.Background(), GenerateRequest{
		Dir:      src,
		OutDir:   out,
		Progress: sink,
		Jobs:     4,
		Reporter: &diag.BagReporter{Bag: bag},
	})
	if err != nil {
		t.Fatal(err)
	}
	failed := res.Failed()
	if len(failed) != 2 || failed[0].Rel != "bad.dy" || failed[1].Rel != "nested/worse.dy" {
		t.Fatalf("failed = %+v", failed)
	}
	if bag.Len() != 2 || !bag.HasErrors() {
		t.Fatalf("reported %d diagnostics", bag.Len())
	}
	if got := bag.Items(); got[0].Code != diag.SynInvalidReturn || got[1].Code != diag.SemaDuplicateSymbol {
		t.Fatalf("diagnostics out of source order: %v, %v", got[0].Code, got[1].Code)
	}
	if CodeOf(failed[0].Err) != diag.SynInvalidReturn {
		t.Fatalf("code = %v", CodeOf(failed[0].Err))
	}
	if sink.final("bad.dy") != buildpipeline.StatusError {
		t.Fatal("bad.dy should end in error")
	}
	if _, err := os.Stat(filepath.Join(out, "bad.h")); !os.IsNotExist(err) {
		t.Fatalf("no output expected for bad.dy, stat err = %v", err)
	}
	if len(res.Files[0].Outputs) != 2 {
		t.Fatalf("default languages not applied: %+v", res.Files[0].Outputs)
	}
}

func TestGenerateDirCancelled(t *testing.T) {
	src, out := setupTree(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := GenerateDir(ctx, GenerateRequest{Dir: src, OutDir: out}); err == nil {
		t.Fatal("expected cancellation error")
	}
}

func TestGenerateDirEmpty(t *testing.T) {
	res, err := GenerateDir(context.Background(), GenerateRequest{Dir: t.TempDir(), OutDir: t.TempDir()})
	if err != nil || len(res.Files) != 0 {
		t.Fatalf("res = %+v, err = %v", res, err)
	}
}
