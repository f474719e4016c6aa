// Package storage persists command-usage history per guild on top of the
// JSON datastore.
package storage

import (
	"fmt"
	"time"

	"github.com/keshon/textroute/datastore"
)

const commandHistoryLimit = 20

// Storage wraps the datastore with typed accessors.
type Storage struct {
	ds *datastore.Store
}

// New opens (or creates) the store at path.
func New(path string) (*Storage, error) {
	ds, err := datastore.Open(path, datastore.DefaultOptions())
	if err != nil {
		return nil, err
	}
	return &Storage{ds: ds}, nil
}

// Close flushes and shuts the underlying store.
func (s *Storage) Close() error {
	return s.ds.Close()
}

// CommandRecord is one executed command.
type CommandRecord struct {
	ChannelID string    `json:"channel_id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Command   string    `json:"command"`
	Datetime  time.Time `json:"datetime"`
}

func historyKey(guildID string) string {
	if guildID == "" {
		guildID = "direct"
	}
	return "history:" + guildID
}

// AppendCommandRecord adds a record to the guild's history, keeping only the
// most recent entries.
func (s *Storage) AppendCommandRecord(guildID string, rec CommandRecord) error {
	var records []CommandRecord
	if _, err := s.ds.Get(historyKey(guildID), &records); err != nil {
		return fmt.Errorf("load command history: %w", err)
	}
	records = append(records, rec)
	if len(records) > commandHistoryLimit {
		records = records[len(records)-commandHistoryLimit:]
	}
	return s.ds.Put(historyKey(guildID), records)
}

// CommandHistory returns the guild's recent command records, oldest first.
func (s *Storage) CommandHistory(guildID string) ([]CommandRecord, error) {
	var records []CommandRecord
	if _, err := s.ds.Get(historyKey(guildID), &records); err != nil {
		return nil, fmt.Errorf("load command history: %w", err)
	}
	return records, nil
}
