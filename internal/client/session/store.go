// Package session keeps the signed-in user's record in two key/value stores:
// a tab-scoped one that lives as long as the process and a durable one that
// survives restarts.
//
// Reads check the tab-scoped store first and fall back to the durable store.
// Each store is checked for the current key and then for the legacy key
// written by the older admin console. The first stored value found decides the
// result; if it does not parse, the session is absent. Writes go to exactly one
// store and remove any copy from the other one, so that a single authoritative
// record exists at any time.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shivua6263/policy/internal/client/repositories/kv"
	"github.com/shivua6263/policy/internal/common"
	"github.com/shivua6263/policy/internal/logging"
)

// ErrEmptyRecord is returned by Set for a nil or empty record.
var ErrEmptyRecord = errors.New("empty session record")

var keys = []string{common.SessionKey, common.LegacySessionKey}

// Store is the only reader and writer of the session record.
type Store struct {
	tab     kv.Repository
	durable kv.Repository
	log     logging.Logger
}

func NewStore(tab, durable kv.Repository, log logging.Logger) *Store {
	if log == nil {
		log = logging.Nop()
	}
	return &Store{tab: tab, durable: durable, log: log.With("component", "session")}
}

// Get returns the current record, or false when there is none or it is
// malformed. Storage read failures are logged and treated as absence.
func (s *Store) Get(ctx context.Context) (Record, bool) {
	for _, st := range []struct {
		name string
		repo kv.Repository
	}{{"tab", s.tab}, {"durable", s.durable}} {
		for _, key := range keys {
			raw, err := st.repo.Get(ctx, key)
			if err != nil {
				s.log.Error(ctx, "session read failed", "store", st.name, "key", key, "error", err)
				continue
			}
			if raw == nil {
				continue
			}
			r, err := decodeRecord(raw)
			if err != nil {
				s.log.Warn(ctx, "malformed session record ignored", "store", st.name, "key", key, "error", err)
				return nil, false
			}
			return r, true
		}
	}
	return nil, false
}

// Set persists r in the durable store.
func (s *Store) Set(ctx context.Context, r Record) error {
	return s.put(ctx, r, s.durable, s.tab)
}

// SetTabScoped persists r only for the lifetime of this process.
func (s *Store) SetTabScoped(ctx context.Context, r Record) error {
	return s.put(ctx, r, s.tab, s.durable)
}

func (s *Store) put(ctx context.Context, r Record, into, other kv.Repository) error {
	if len(r) == 0 {
		return ErrEmptyRecord
	}
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := other.Delete(ctx, keys...); err != nil {
		return fmt.Errorf("drop stale session: %w", err)
	}
	if err := into.Set(ctx, common.SessionKey, data); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	if err := into.Delete(ctx, common.LegacySessionKey); err != nil {
		return fmt.Errorf("drop legacy session: %w", err)
	}
	s.log.Info(ctx, "session stored", "user_id", r.ID(), "role", r.UserType())
	return nil
}

// Clear removes the record from both stores. Both stores are attempted even
// if the first one fails.
func (s *Store) Clear(ctx context.Context) error {
	errTab := s.tab.Delete(ctx, keys...)
	errDurable := s.durable.Delete(ctx, keys...)
	if err := errors.Join(errTab, errDurable); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.log.Info(ctx, "session cleared")
	return nil
}
