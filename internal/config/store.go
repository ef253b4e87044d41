package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
)

// GameIDs lists the games that have a configuration file.
var GameIDs = []string{"fifteen", "snake", "pacman", "arkanoid"}

// Store holds the resolved configuration of every game.
// Readers take a copy under the read lock; Reload is the only writer.
type Store struct {
	mu     sync.RWMutex
	dir    string
	preset DifficultyPreset

	// Stores handed out by WithPreset, reloaded together with this one.
	derived map[DifficultyPreset]*Store

	fifteen  FifteenConfig
	snake    SnakeConfig
	pacman   PacmanConfig
	arkanoid ArkanoidConfig
}

// NewStore loads every game config. When dir is non-empty, <dir>/<id>.yaml
// takes precedence over the normal search order. A non-empty preset is
// applied on top of each loaded file.
func NewStore(dir string, preset DifficultyPreset) (*Store, error) {
	s := &Store{dir: dir, preset: preset}
	for _, id := range GameIDs {
		if err := s.load(id); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Dir returns the directory watched for changes.
func (s *Store) Dir() string {
	if s.dir != "" {
		return s.dir
	}
	return LocalConfigDir
}

// Preset returns the difficulty preset applied on load.
func (s *Store) Preset() DifficultyPreset {
	return s.preset
}

// pathFor returns the custom path for a game, or "" to use the search order.
func (s *Store) pathFor(gameID string) string {
	if s.dir == "" {
		return ""
	}
	p := filepath.Join(s.dir, gameID+".yaml")
	if _, err := os.Stat(p); err != nil {
		return ""
	}
	return p
}

// Reload re-reads the configuration of a single game, in this store and
// in every store derived from it with WithPreset.
func (s *Store) Reload(gameID string) error {
	if err := s.load(gameID); err != nil {
		return err
	}

	s.mu.RLock()
	derived := make([]*Store, 0, len(s.derived))
	for _, d := range s.derived {
		derived = append(derived, d)
	}
	s.mu.RUnlock()

	for _, d := range derived {
		if err := d.load(gameID); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) load(gameID string) error {
	path := s.pathFor(gameID)

	switch gameID {
	case "fifteen":
		cfg, err := LoadFifteen(path)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.fifteen = cfg
		s.mu.Unlock()
	case "snake":
		cfg, err := LoadSnake(path)
		if err != nil {
			return err
		}
		if s.preset != "" {
			ApplySnakePreset(&cfg, s.preset)
		}
		s.mu.Lock()
		s.snake = cfg
		s.mu.Unlock()
	case "pacman":
		cfg, err := LoadPacman(path)
		if err != nil {
			return err
		}
		if s.preset != "" {
			ApplyPacmanPreset(&cfg, s.preset)
		}
		s.mu.Lock()
		s.pacman = cfg
		s.mu.Unlock()
	case "arkanoid":
		cfg, err := LoadArkanoid(path)
		if err != nil {
			return err
		}
		if s.preset != "" {
			ApplyArkanoidPreset(&cfg, s.preset)
		}
		s.mu.Lock()
		s.arkanoid = cfg
		s.mu.Unlock()
	default:
		return fmt.Errorf("config: no configuration for game %q", gameID)
	}
	return nil
}

// Fifteen returns the current 15-puzzle configuration.
func (s *Store) Fifteen() FifteenConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fifteen
}

// Snake returns the current Snake configuration.
func (s *Store) Snake() SnakeConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snake
}

// Pacman returns the current maze chase configuration.
func (s *Store) Pacman() PacmanConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pacman
}

// Arkanoid returns the current brick breaker configuration.
func (s *Store) Arkanoid() ArkanoidConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.arkanoid
}

var active atomic.Pointer[Store]

// Active returns the process-wide store, loading it with the default
// search order on first use.
func Active() *Store {
	if s := active.Load(); s != nil {
		return s
	}
	s, err := NewStore("", "")
	if err != nil {
		s = defaultStore()
	}
	active.CompareAndSwap(nil, s)
	return active.Load()
}

// StoreOrActive returns s, or the process-wide store when s is nil.
func StoreOrActive(s *Store) *Store {
	if s != nil {
		return s
	}
	return Active()
}

// WithPreset returns a store that reads the same directory with a
// different difficulty preset. Stores are cached per preset, so every
// session on the same preset shares one and sees reloads of s.
func (s *Store) WithPreset(preset DifficultyPreset) (*Store, error) {
	if preset == s.preset {
		return s, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if d, ok := s.derived[preset]; ok {
		return d, nil
	}
	d, err := NewStore(s.dir, preset)
	if err != nil {
		return nil, err
	}
	if s.derived == nil {
		s.derived = make(map[DifficultyPreset]*Store)
	}
	s.derived[preset] = d
	return d, nil
}

// SetActive replaces the process-wide store.
func SetActive(s *Store) {
	active.Store(s)
}

// defaultStore builds a store from the hardcoded defaults.
func defaultStore() *Store {
	return &Store{
		fifteen:  DefaultFifteenConfig(),
		snake:    DefaultSnakeConfig(),
		pacman:   DefaultPacmanConfig(),
		arkanoid: DefaultArkanoidConfig(),
	}
}
