// Package datastore is a small persistent JSON key-value store: an in-memory
// map flushed to disk atomically, with periodic autosave and rotating
// backups. It backs the bot's command-usage history.
package datastore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// Options tune persistence behaviour.
type Options struct {
	AutoSaveInterval time.Duration
	BackupCount      int
}

// DefaultOptions saves every 10 seconds and keeps 3 backups.
func DefaultOptions() Options {
	return Options{
		AutoSaveInterval: 10 * time.Second,
		BackupCount:      3,
	}
}

// Store is a thread-safe JSON-backed key-value store.
type Store struct {
	mu      sync.RWMutex
	data    map[string]json.RawMessage
	file    string
	opts    Options
	lastSum string
	cancel  context.CancelFunc
	done    chan struct{}
	closeMu sync.Mutex
	closed  bool
}

// Open loads or creates the store at path and starts the autosave loop.
func Open(path string, opts Options) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("datastore: empty file path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("datastore: create directory: %w", err)
	}

	s := &Store{
		data: make(map[string]json.RawMessage),
		file: path,
		opts: opts,
		done: make(chan struct{}),
	}

	if _, err := os.Stat(path); err == nil {
		if err := s.load(); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("datastore: stat %s: %w", path, err)
	}

	if s.opts.AutoSaveInterval <= 0 {
		s.opts.AutoSaveInterval = DefaultOptions().AutoSaveInterval
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	go s.autoSave(ctx)

	return s, nil
}

// Put marshals value under key.
func (s *Store) Put(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("datastore: marshal %q: %w", key, err)
	}
	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()
	return nil
}

// Get unmarshals the value under key into out. The second return is false
// when the key is absent.
func (s *Store) Get(key string, out interface{}) (bool, error) {
	s.mu.RLock()
	raw, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return true, fmt.Errorf("datastore: unmarshal %q: %w", key, err)
	}
	return true, nil
}

// Delete removes key.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
}

// Keys returns all keys, sorted.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Save flushes to disk immediately.
func (s *Store) Save() error {
	return s.save()
}

// Close stops the autosave loop and performs a final save.
func (s *Store) Close() error {
	s.closeMu.Lock()
	defer s.closeMu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	s.cancel()
	<-s.done
	return s.save()
}

func (s *Store) autoSave(ctx context.Context) {
	defer close(s.done)
	ticker := time.NewTicker(s.opts.AutoSaveInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = s.save()
		}
	}
}

func (s *Store) save() error {
	s.mu.RLock()
	raw, err := json.MarshalIndent(s.data, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("datastore: marshal: %w", err)
	}

	sum := checksum(raw)
	if sum == s.lastSum {
		return nil
	}

	if s.opts.BackupCount > 0 {
		s.backup()
	}
	if err := writeFileAtomic(s.file, raw); err != nil {
		return err
	}
	s.lastSum = sum
	return nil
}

func (s *Store) load() error {
	raw, err := os.ReadFile(s.file)
	if err != nil {
		return fmt.Errorf("datastore: read %s: %w", s.file, err)
	}
	var data map[string]json.RawMessage
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("datastore: %s is not valid JSON: %w", s.file, err)
	}
	s.data = data
	if s.data == nil {
		s.data = make(map[string]json.RawMessage)
	}
	s.lastSum = checksum(raw)
	return nil
}

// backup copies the current file aside and prunes old copies. Failures are
// non-fatal; the atomic write still protects the live file.
func (s *Store) backup() {
	raw, err := os.ReadFile(s.file)
	if err != nil {
		return
	}
	stamp := time.Now().Format("20060102_150405")
	_ = os.WriteFile(fmt.Sprintf("%s.backup.%s", s.file, stamp), raw, 0o644)

	matches, err := filepath.Glob(s.file + ".backup.*")
	if err != nil || len(matches) <= s.opts.BackupCount {
		return
	}
	sort.Strings(matches) // timestamp format sorts chronologically
	for _, old := range matches[:len(matches)-s.opts.BackupCount] {
		_ = os.Remove(old)
	}
}

func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("datastore: open temp file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("datastore: write temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("datastore: sync temp file: %w", err)
	}
	f.Close()
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("datastore: rename temp file: %w", err)
	}
	return nil
}

func checksum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
