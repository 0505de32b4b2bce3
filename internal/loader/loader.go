// Package loader reads architecture definitions written as multi-document
// YAML or as HCL and turns them into domain fragments.
package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

var (
	// ErrUnknownRoot is returned for a document whose root key is not a
	// known definition kind
	ErrUnknownRoot = errors.New("unknown root key")
	// ErrImportCycle is returned when a file transitively imports itself
	ErrImportCycle = errors.New("import cycle")
	// ErrNoDefinitions is returned when a file and its imports define nothing
	ErrNoDefinitions = errors.New("no definitions found")
	// ErrUnsupportedFormat is returned for file extensions with no parser
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// parseFunc parses one file's contents into a spec plus its import list
type parseFunc func(l *Loader, data []byte, filename string) (*Spec, []string, error)

// Loader resolves imports and parses definition files
type Loader struct {
	logger *zap.Logger
}

// New creates a loader. A nil logger disables logging.
func New(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger.Named("loader")}
}

// Load parses path and everything it imports
func (l *Loader) Load(path string) (*Spec, error) {
	spec, err := l.load(path, make(map[string]bool), make(map[string]*Spec))
	if err != nil {
		return nil, err
	}
	if spec.IsEmpty() {
		return nil, fmt.Errorf("%s: %w", path, ErrNoDefinitions)
	}

	l.logger.Debug("loaded definitions",
		zap.String("path", path),
		zap.Int("models", len(spec.Models)),
		zap.Int("data", len(spec.Data)),
		zap.Int("enums", len(spec.Enums)))

	return spec, nil
}

func (l *Loader) load(path string, inProgress map[string]bool, done map[string]*Spec) (*Spec, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	if inProgress[abs] {
		return nil, fmt.Errorf("%s: %w", path, ErrImportCycle)
	}
	if spec, ok := done[abs]; ok {
		return spec, nil
	}

	parse, err := parserFor(abs)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	own, imports, err := parse(l, data, abs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	inProgress[abs] = true
	defer delete(inProgress, abs)

	// imported definitions first so the file's own definitions win
	result := NewSpec()
	for _, imp := range imports {
		impPath := resolveImport(filepath.Dir(abs), imp)
		l.logger.Debug("resolving import", zap.String("from", path), zap.String("import", impPath))

		imported, err := l.load(impPath, inProgress, done)
		if err != nil {
			return nil, err
		}
		result.Merge(imported)
	}
	result.Merge(own)
	result.addSource(abs)

	done[abs] = result
	return result, nil
}

// resolveImport resolves relative imports (starting with ".") against the
// importing file's directory; anything else is used as given
func resolveImport(baseDir, imp string) string {
	if strings.HasPrefix(imp, ".") {
		return filepath.Join(baseDir, imp)
	}
	return imp
}

func parserFor(path string) (parseFunc, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return (*Loader).parseYAML, nil
	case ".hcl":
		return (*Loader).parseHCL, nil
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}
