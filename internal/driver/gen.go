package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"dandiya/internal/buildpipeline"
	"dandiya/internal/diag"
	"dandiya/internal/emit"
	"dandiya/internal/observ"
	"dandiya/internal/parser"
	"dandiya/internal/project"
	"dandiya/internal/source"
	"dandiya/internal/version"
)

type GenerateRequest struct {
	Dir       string // scanned recursively for .dy files
	OutDir    string
	Languages []emit.Language
	// Options apply to every file; HeaderGuard is derived per file.
	Options  emit.Options
	Jobs     int // <= 0 means GOMAXPROCS
	Cache    *DiskCache
	Progress buildpipeline.ProgressSink
	Timer    *observ.Timer
	// Reporter receives the diagnostic of every failed file in source order.
	Reporter diag.Reporter
}

// Output is one generated file.
type Output struct {
	Lang emit.Language
	Path string
}

type FileResult struct {
	Path    string
	Rel     string // slash path relative to GenerateRequest.Dir
	Outputs []Output
	Cached  bool
	Elapsed time.Duration
	Err     error
}

type GenerateResult struct {
	Files   []FileResult // sorted by Rel
	Timings buildpipeline.Timings
}

// Failed returns the results carrying an error.
func (r *GenerateResult) Failed() []FileResult {
	var out []FileResult
	for _, f := range r.Files {
		if f.Err != nil {
			out = append(out, f)
		}
	}
	return out
}

// ListSources returns every .dy file below dir in lexical order.
func ListSources(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, loadError(err, dir)
	}
	slices.Sort(files)
	return files, nil
}

// GenerateDir compiles every .dy file below req.Dir in parallel and writes
// one output per language into req.OutDir, mirroring the source layout.
// Per-file failures are recorded in the result; the returned error is
// reserved for failures to enumerate sources and for cancellation. Once ctx
// is cancelled no further file is started and none is written.
func GenerateDir(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	if len(req.Languages) == 0 {
		req.Languages = emit.Languages
	}
	if req.Reporter == nil {
		req.Reporter = diag.NopReporter{}
	}
	files, err := ListSources(req.Dir)
	if err != nil {
		return nil, err
	}
	res := &GenerateResult{Files: make([]FileResult, len(files))}
	if len(files) == 0 {
		return res, nil
	}

	rels := make([]string, len(files))
	for i, path := range files {
		rels[i] = relPath(req.Dir, path)
	}
	buildpipeline.Queue(req.Progress, rels)

	jobs := req.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	Logger().Debug("generating",
		zap.String("dir", req.Dir),
		zap.Int("files", len(files)),
		zap.Int("jobs", jobs),
		zap.Stringers("languages", req.Languages))

	timings := make([]buildpipeline.Timings, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res.Files[i] = generateOne(gctx, req, path, rels[i], &timings[i])
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return res, err
	}
	for _, f := range res.Files {
		if d, ok := AsDiagnostic(f.Err); ok {
			req.Reporter.Report(d)
		}
	}
	for _, t := range timings {
		for _, stage := range []buildpipeline.Stage{buildpipeline.StageParse, buildpipeline.StageEmit, buildpipeline.StageWrite} {
			res.Timings.Add(stage, t.Duration(stage))
		}
	}
	return res, nil
}

func generateOne(ctx context.Context, req GenerateRequest, path, rel string, timings *buildpipeline.Timings) FileResult {
	start := time.Now()
	res := FileResult{Path: path, Rel: rel}
	fail := func(stage buildpipeline.Stage, err error) FileResult {
		res.Err = err
		res.Elapsed = time.Since(start)
		buildpipeline.Report(req.Progress, rel, stage, buildpipeline.StatusError, err, res.Elapsed)
		Logger().Debug("generation failed", zap.String("file", rel), zap.Error(err))
		return res
	}

	buildpipeline.Report(req.Progress, rel, buildpipeline.StageParse, buildpipeline.StatusWorking, nil, 0)
	stageStart := time.Now()
	endPhase := track(req.Timer, "gen "+rel)
	defer endPhase()

	file, err := LoadSource(path)
	if err != nil {
		return fail(buildpipeline.StageParse, err)
	}

	opts := req.Options
	opts.HeaderGuard = emit.GuardName(rel)
	key := cacheKey(file, req.Languages, opts)

	var payload DiskPayload
	hit, err := req.Cache.Get(key, &payload)
	if err != nil {
		Logger().Warn("cache read failed", zap.String("file", rel), zap.Error(err))
		hit = false
	}
	if hit && payload.ContentHash == project.Digest(file.Hash) {
		res.Cached = true
		timings.Add(buildpipeline.StageParse, time.Since(stageStart))
	} else {
		unit, err := parser.Parse(file)
		timings.Add(buildpipeline.StageParse, time.Since(stageStart))
		if err != nil {
			return fail(buildpipeline.StageParse, err)
		}

		buildpipeline.Report(req.Progress, rel, buildpipeline.StageEmit, buildpipeline.StatusWorking, nil, time.Since(start))
		stageStart = time.Now()
		payload = DiskPayload{
			Source:      rel,
			ContentHash: project.Digest(file.Hash),
			Outputs:     make(map[string]string, len(req.Languages)),
		}
		for _, lang := range req.Languages {
			text, err := emit.Emit(unit, lang, opts)
			if err != nil {
				return fail(buildpipeline.StageEmit, err)
			}
			payload.Outputs[lang.String()] = text
		}
		timings.Add(buildpipeline.StageEmit, time.Since(stageStart))
		if err := req.Cache.Put(key, &payload); err != nil {
			Logger().Warn("cache write failed", zap.String("file", rel), zap.Error(err))
		}
	}

	if err := ctx.Err(); err != nil {
		return fail(buildpipeline.StageWrite, err)
	}
	buildpipeline.Report(req.Progress, rel, buildpipeline.StageWrite, buildpipeline.StatusWorking, nil, time.Since(start))
	stageStart = time.Now()
	stem := strings.TrimSuffix(filepath.FromSlash(rel), SourceExt)
	for _, lang := range req.Languages {
		out := filepath.Join(req.OutDir, stem+lang.Ext())
		if err := WriteOutput(out, payload.Outputs[lang.String()]); err != nil {
			return fail(buildpipeline.StageWrite, err)
		}
		res.Outputs = append(res.Outputs, Output{Lang: lang, Path: out})
	}
	timings.Add(buildpipeline.StageWrite, time.Since(stageStart))

	res.Elapsed = time.Since(start)
	status := buildpipeline.StatusDone
	if res.Cached {
		status = buildpipeline.StatusCached
	}
	buildpipeline.Report(req.Progress, rel, buildpipeline.StageWrite, status, nil, res.Elapsed)
	Logger().Debug("generated",
		zap.String("file", rel),
		zap.Bool("cached", res.Cached),
		zap.Duration("elapsed", res.Elapsed))
	return res
}

// WriteOutput stores text at path, creating parent directories. Failures are
// marked with ErrWrite.
func WriteOutput(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return writeError(err, path)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return writeError(err, path)
	}
	return nil
}

// cacheKey covers everything that influences the generated text.
func cacheKey(file *source.File, langs []emit.Language, opts emit.Options) project.Digest {
	names := make([]string, len(langs))
	for i, l := range langs {
		names[i] = l.String()
	}
	desc := fmt.Sprintf("dandiya=%s schema=%d langs=%s forward=%t export=%t guard=%s trivia=%t",
		version.Version, diskCacheSchemaVersion, strings.Join(names, ","),
		opts.ForwardLatestVersionAPI, opts.ExportSymbols, opts.HeaderGuard, opts.PreserveTrivia)
	return project.Combine(project.Digest(file.Hash), project.StringDigest(desc))
}

func relPath(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
