// Package store persists best survival times.
//
// A File holds one best score per key in a small JSON object, so a single file
// can serve the local game (DefaultKey) and every SSH user (UserKey).
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sync"
)

// DefaultKey is the key used by the local game.
const DefaultKey = "bullet-dodge-best"

// UserKey returns the key holding a remote user's best score.
func UserKey(username string) string {
	if username == "" {
		return DefaultKey
	}
	return DefaultKey + ":" + username
}

// File is a JSON file of best scores keyed by name. Safe for concurrent use.
type File struct {
	mu   sync.Mutex
	path string
}

// Open returns a store backed by path. The file is created on the first save.
func Open(path string) *File {
	return &File{path: path}
}

// Path returns the backing file path.
func (f *File) Path() string {
	return f.path
}

// Entry returns the score slot for key.
func (f *File) Entry(key string) *Entry {
	return &Entry{file: f, key: key}
}

// Scores returns every stored score.
func (f *File) Scores() (map[string]float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.load()
}

// load reads the file. A missing file is an empty store.
func (f *File) load() (map[string]float64, error) {
	scores := make(map[string]float64)

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return scores, nil
	}
	if err != nil {
		return scores, fmt.Errorf("read %s: %w", f.path, err)
	}
	if len(data) == 0 {
		return scores, nil
	}
	if err := json.Unmarshal(data, &scores); err != nil {
		return make(map[string]float64), fmt.Errorf("decode %s: %w", f.path, err)
	}
	return scores, nil
}

// save writes scores to a temporary file and renames it over the old one.
func (f *File) save(scores map[string]float64) error {
	data, err := json.MarshalIndent(scores, "", "  ")
	if err != nil {
		return fmt.Errorf("encode scores: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replace %s: %w", f.path, err)
	}
	return nil
}

// Entry is one key of a File. It implements game.ScoreStore.
type Entry struct {
	file *File
	key  string
}

// Key returns the entry's key.
func (e *Entry) Key() string {
	return e.key
}

// Best returns the stored score, or 0 when nothing valid is stored.
func (e *Entry) Best() (float64, error) {
	e.file.mu.Lock()
	defer e.file.mu.Unlock()

	scores, err := e.file.load()
	if err != nil {
		return 0, err
	}
	return sanitize(scores[e.key]), nil
}

// SaveBest stores score under the entry's key, keeping every other key.
// An unreadable file is replaced.
func (e *Entry) SaveBest(score float64) error {
	e.file.mu.Lock()
	defer e.file.mu.Unlock()

	scores, _ := e.file.load()
	scores[e.key] = sanitize(score)
	return e.file.save(scores)
}

// Memory keeps a best score in memory only.
type Memory struct {
	mu   sync.Mutex
	best float64
}

// Best returns the remembered score.
func (m *Memory) Best() (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.best, nil
}

// SaveBest remembers score.
func (m *Memory) SaveBest(score float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.best = sanitize(score)
	return nil
}

// sanitize maps values that cannot be a survival time to 0.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
