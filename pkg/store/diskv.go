package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/jot/pkg/journal"
	"tableflip.dev/jot/pkg/logging"
)

var (
	// ErrNotFound is returned when there is no journal document to read.
	ErrNotFound = errors.New("store: no journal found")
	// ErrExists is returned when init would replace an existing journal.
	ErrExists = errors.New("store: journal already exists")
)

// Persistence defines the persistence contract for the journal document.
type Persistence interface {
	// Path is the absolute location of the document.
	Path() string
	Exists() bool
	Load() (*journal.Journal, error)
	Save(j *journal.Journal) error
	Delete() error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config. A
// nil config is read with LoadConfig and a nil logger logs nothing.
func Load(cfg Config, logger *log.Logger) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	if logger == nil {
		logger = logging.Discard()
	}

	path, err := filepath.Abs(cfg.Path())
	if err != nil {
		return nil, fmt.Errorf("store: resolve %s: %w", cfg.Path(), err)
	}
	dir, file := filepath.Split(path)

	return &persistence{
		d: diskv.New(diskv.Options{
			BasePath:          dir,
			TempDir:           dir,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			CacheSizeMax:      0,
			FilePerm:          0o644,
			PathPerm:          0o755,
		}),
		dir:    filepath.Clean(dir),
		key:    file,
		indent: cfg.Indent(),
		log:    logger,
	}, nil
}

type persistence struct {
	d      *diskv.Diskv
	dir    string
	key    string
	indent int
	log    *log.Logger
}

func (p *persistence) Path() string {
	return filepath.Join(p.dir, p.key)
}

func (p *persistence) Exists() bool {
	return p.d.Has(p.key)
}

func (p *persistence) Load() (*journal.Journal, error) {
	data, err := p.d.Read(p.key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w in %s", ErrNotFound, p.dir)
		}
		return nil, fmt.Errorf("store: read %s: %w", p.Path(), err)
	}
	if err := validate(data); err != nil {
		return nil, fmt.Errorf("store: %s: %w", p.Path(), err)
	}

	j := &journal.Journal{}
	if err := json.Unmarshal(data, j); err != nil {
		return nil, fmt.Errorf("store: parse %s: %w", p.Path(), err)
	}
	p.log.Debug("loaded journal", "path", p.Path(), "version", j.Current())
	return j, nil
}

func (p *persistence) Save(j *journal.Journal) error {
	data, err := json.MarshalIndent(j, "", strings.Repeat(" ", p.indent))
	if err != nil {
		return fmt.Errorf("store: encode journal: %w", err)
	}
	data = append(data, '\n')
	if err := p.d.Write(p.key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", p.Path(), err)
	}
	p.log.Debug("saved journal", "path", p.Path(), "version", j.Current(), "bytes", len(data))
	return nil
}

func (p *persistence) Delete() error {
	if !p.Exists() {
		return fmt.Errorf("%w in %s", ErrNotFound, p.dir)
	}
	if err := p.d.Erase(p.key); err != nil {
		return fmt.Errorf("store: delete %s: %w", p.Path(), err)
	}
	p.log.Debug("deleted journal", "path", p.Path())
	return nil
}

// The document is a single flat file in BasePath.
func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: key,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
