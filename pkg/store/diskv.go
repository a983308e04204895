package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/pantry/pkg/list"
	"tableflip.dev/pantry/pkg/migrate"
)

// Persistence is the load/save gateway for the state document and the active
// mode.
type Persistence interface {
	LoadState(ctx context.Context) (*list.State, error)
	SaveState(st *list.State) error
	LoadMode() (list.Mode, error)
	SaveMode(m list.Mode) error
	Watch(ctx context.Context) (<-chan Event, error)
	BasePath() string
}

const (
	stateKey  = "state"
	modeKey   = "mode"
	legacyKey = "items"
	tempDir   = ".tmp"
)

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		TempDir:      filepath.Join(basePath, tempDir),
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath, theme: cfg.DefaultTheme()}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
	theme    string
}

func (p *persistence) BasePath() string {
	return p.basePath
}

// read bypasses the cache so writes from other processes are seen.
func (p *persistence) read(key string) ([]byte, error) {
	rc, err := p.d.ReadStream(key, true)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// LoadState returns the persisted document. A stored state with lists wins;
// otherwise the legacy item array is wrapped into one list; otherwise a fresh
// default list is created. The latter two are saved before returning.
func (p *persistence) LoadState(ctx context.Context) (*list.State, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if p.d.Has(stateKey) {
		data, err := p.read(stateKey)
		if err != nil {
			return nil, fmt.Errorf("store: read state: %w", err)
		}
		st, err := migrate.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("store: decode state: %w", err)
		}
		if len(st.Lists) > 0 {
			return st, nil
		}
	}

	if p.d.Has(legacyKey) {
		data, err := p.read(legacyKey)
		if err != nil {
			return nil, fmt.Errorf("store: read legacy items: %w", err)
		}
		items, err := migrate.DecodeLegacy(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "store: ignoring unreadable legacy items: %v\n", err)
		} else {
			st := migrate.WrapLegacy(items, list.NewID())
			if err := p.SaveState(st); err != nil {
				return nil, err
			}
			return st, nil
		}
	}

	st := list.NewState()
	st.Lists[0].Theme = p.theme
	if err := p.SaveState(st); err != nil {
		return nil, err
	}
	return st, nil
}

// SaveState writes the whole document. diskv writes through TempDir and
// renames, so a crash never leaves a half-written state.
func (p *persistence) SaveState(st *list.State) error {
	if st == nil {
		return errors.New("store: nil state")
	}
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("store: encode state: %w", err)
	}
	if err := p.d.Write(stateKey, data); err != nil {
		return fmt.Errorf("store: write state: %w", err)
	}
	return nil
}

// LoadMode returns the active mode, defaulting to home when none is stored or
// the stored value is unknown.
func (p *persistence) LoadMode() (list.Mode, error) {
	if !p.d.Has(modeKey) {
		return list.Home, nil
	}
	data, err := p.read(modeKey)
	if err != nil {
		return list.Home, fmt.Errorf("store: read mode: %w", err)
	}
	m, err := list.ParseMode(string(bytes.Trim(data, "\" \n")))
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: %v, using %s\n", err, list.Home)
		return list.Home, nil
	}
	return m, nil
}

func (p *persistence) SaveMode(m list.Mode) error {
	if _, err := list.ParseMode(string(m)); err != nil {
		return err
	}
	if err := p.d.Write(modeKey, []byte(m)); err != nil {
		return fmt.Errorf("store: write mode: %w", err)
	}
	return nil
}

// keyForPath maps a file inside the base path back to its diskv key.
func (p *persistence) keyForPath(path string) string {
	rel, err := filepath.Rel(p.basePath, path)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return ""
	}
	if strings.Contains(rel, string(os.PathSeparator)) {
		return ""
	}
	return rel
}
