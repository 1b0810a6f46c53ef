package project

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"

	"dandiya/internal/emit"
)

// ManifestName is the file looked up by Find.
const ManifestName = "dandiya.toml"

var (
	// ErrNoManifest is returned by Load when no manifest exists above the start directory.
	ErrNoManifest = errors.New("no " + ManifestName + " found")
	// ErrInvalidManifest marks every decoding or validation failure of LoadFile.
	ErrInvalidManifest = errors.New("invalid manifest")
)

type Manifest struct {
	Path   string // absolute path of the manifest file
	Root   string // directory holding the manifest
	Config Config
}

type Config struct {
	Package PackageConfig `toml:"package"`
	Gen     GenConfig     `toml:"gen"`
	Emit    EmitConfig    `toml:"emit"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

type GenConfig struct {
	Sources   string   `toml:"sources"`
	Out       string   `toml:"out"`
	Languages []string `toml:"languages"`
}

type EmitConfig struct {
	ForwardLatest bool `toml:"forward_latest"`
	ExportSymbols bool `toml:"export_symbols"`
}

// DefaultConfig is the configuration written by Init and the base Load
// decodes on top of.
func DefaultConfig(name string) Config {
	return Config{
		Package: PackageConfig{Name: name},
		Gen: GenConfig{
			Sources:   "api",
			Out:       "gen",
			Languages: []string{emit.C.String(), emit.Rust.String()},
		},
		Emit: EmitConfig{ForwardLatest: true},
	}
}

// Find walks up from startDir to locate dandiya.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, errors.Wrap(err, "failed to resolve start directory")
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, errors.Wrapf(err, "failed to stat %q", candidate)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load finds and decodes the manifest governing startDir.
func Load(startDir string) (*Manifest, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoManifest
	}
	return LoadFile(path)
}

// LoadFile decodes and validates the manifest at path.
func LoadFile(path string) (*Manifest, error) {
	m, err := loadFile(path)
	if err != nil {
		return nil, errors.Mark(err, ErrInvalidManifest)
	}
	return m, nil
}

func loadFile(path string) (*Manifest, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve manifest path")
	}
	cfg := DefaultConfig("")
	cfg.Gen.Languages = nil
	meta, err := toml.DecodeFile(abs, &cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: failed to parse TOML", abs)
	}
	if !meta.IsDefined("package") {
		return nil, errors.Newf("%s: missing [package]", abs)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return nil, errors.Newf("%s: missing [package].name", abs)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Newf("%s: unknown key %s", abs, undecoded[0].String())
	}
	if !meta.IsDefined("gen", "languages") {
		cfg.Gen.Languages = DefaultConfig("").Gen.Languages
	}
	if _, err := parseLanguages(cfg.Gen.Languages); err != nil {
		return nil, errors.Wrapf(err, "%s: [gen].languages", abs)
	}
	return &Manifest{Path: abs, Root: filepath.Dir(abs), Config: cfg}, nil
}

func parseLanguages(names []string) ([]emit.Language, error) {
	if len(names) == 0 {
		return nil, errors.New("at least one language is required")
	}
	out := make([]emit.Language, 0, len(names))
	seen := make(map[emit.Language]bool, len(names))
	for _, name := range names {
		lang, err := emit.ParseLanguage(name)
		if err != nil {
			return nil, err
		}
		if !seen[lang] {
			seen[lang] = true
			out = append(out, lang)
		}
	}
	return out, nil
}

// Languages returns the configured targets, duplicates removed.
func (m *Manifest) Languages() []emit.Language {
	langs, err := parseLanguages(m.Config.Gen.Languages)
	if err != nil {
		return nil
	}
	return langs
}

// SourcesDir is the absolute directory scanned for .dy files.
func (m *Manifest) SourcesDir() string {
	return m.resolve(m.Config.Gen.Sources)
}

// OutDir is the absolute output directory.
func (m *Manifest) OutDir() string {
	return m.resolve(m.Config.Gen.Out)
}

func (m *Manifest) resolve(rel string) string {
	rel = strings.TrimSpace(rel)
	if rel == "" {
		return m.Root
	}
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(m.Root, filepath.FromSlash(rel))
}

// EmitOptions maps the [emit] table onto emitter options.
func (m *Manifest) EmitOptions() emit.Options {
	opts := emit.DefaultOptions()
	opts.ForwardLatestVersionAPI = m.Config.Emit.ForwardLatest
	opts.ExportSymbols = m.Config.Emit.ExportSymbols
	return opts
}

// Write encodes cfg into dir/dandiya.toml. It refuses to overwrite an
// existing manifest.
func Write(dir string, cfg Config) (string, error) {
	path := filepath.Join(dir, ManifestName)
	if _, err := os.Stat(path); err == nil {
		return "", errors.Newf("project already initialized: %s exists", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", errors.Wrapf(err, "failed to stat %q", path)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", errors.Wrapf(err, "failed to create %s", path)
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		_ = f.Close()
		return "", errors.Wrapf(err, "failed to write %s", path)
	}
	if err := f.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to close %s", path)
	}
	return path, nil
}

// ProjectName derives a package name from a directory, falling back to
// "dandiya-project".
func ProjectName(dir string) string {
	name := strings.TrimSpace(filepath.Base(dir))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "dandiya-project"
	}
	return name
}
