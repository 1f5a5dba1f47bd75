package names

import (
	"io"
	"strings"
	"sync"

	"github.com/pkg/errors"

	blemgmt "github.com/cormoran/zmk-module-ble-management"
)

// SettingsPrefix is the namespace profile names are stored under. The
// key suffix is the string form of the bound address.
const SettingsPrefix = "ble_mgmt/names/"

// MaxNameLen is the longest display name kept for a profile, in bytes.
// Longer names are truncated, not rejected.
const MaxNameLen = 31

// ErrNoSlot is returned by Upsert when every slot is already bound to
// a different address and no empty slot remains.
var ErrNoSlot = errors.New("no profile name slot available")

type binding struct {
	addr blemgmt.Addr
	name string
}

// Store owns the fixed-capacity table binding peer addresses to
// user-assigned display names. All mutation goes through its methods;
// the internal mutex keeps each operation atomic so multi-goroutine
// hosts need no extra locking.
type Store struct {
	mu       sync.Mutex
	slots    []binding
	settings blemgmt.SettingsStore
	logger   blemgmt.Logger
}

// New builds an empty table with capacity slots. Mutations write
// through to settings; the in-memory table stays authoritative when a
// write fails.
func New(capacity int, settings blemgmt.SettingsStore) *Store {
	return &Store{
		slots:    make([]binding, capacity),
		settings: settings,
		logger:   blemgmt.GetLogger(),
	}
}

// Capacity returns the fixed slot count.
func (s *Store) Capacity() int {
	return len(s.slots)
}

// Occupied returns the number of bound slots.
func (s *Store) Occupied() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for i := range s.slots {
		if !s.slots[i].addr.IsNone() {
			n++
		}
	}
	return n
}

// Lookup returns the display name bound to addr, or "" when addr is
// the none sentinel or has no binding.
func (s *Store) Lookup(addr blemgmt.Addr) string {
	if addr.IsNone() {
		return ""
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.slots {
		if s.slots[i].addr == addr {
			return s.slots[i].name
		}
	}
	return ""
}

// Upsert binds name to addr, overwriting in place when a binding
// already exists and claiming the first empty slot otherwise. A full
// table of all-distinct addresses yields ErrNoSlot. The in-memory
// table is updated before the write-through; a storage failure is
// returned but never rolled back.
func (s *Store) Upsert(addr blemgmt.Addr, name string) error {
	if addr.IsNone() {
		return errors.New("cannot bind a name to the none address")
	}
	name = truncate(name)

	s.mu.Lock()
	slot := s.claim(addr)
	if slot < 0 {
		s.mu.Unlock()
		s.logger.Warnf("no slot available for profile name %q", name)
		return ErrNoSlot
	}
	s.slots[slot] = binding{addr: addr, name: name}
	s.mu.Unlock()

	if err := s.settings.Save(SettingsPrefix+addr.String(), []byte(name)); err != nil {
		return errors.Wrapf(err, "failed to persist name for %s", addr)
	}
	return nil
}

// Clear resets the slot bound to addr, if any. The durable record is
// deliberately left behind: a future rebind of the same peer gets its
// old name back after a restore.
func (s *Store) Clear(addr blemgmt.Addr) {
	if addr.IsNone() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.slots {
		if s.slots[i].addr == addr {
			s.slots[i] = binding{}
			return
		}
	}
}

// Restore repopulates the table from the settings store. It runs once
// at boot, before the dispatcher accepts requests. Records whose key
// suffix does not parse back to an address are skipped with a warning.
func (s *Store) Restore() error {
	return s.settings.Enumerate(SettingsPrefix, func(key string, r io.Reader) error {
		addr, err := blemgmt.ParseAddr(strings.TrimPrefix(key, SettingsPrefix))
		if err != nil {
			s.logger.Warnf("skipping stored name %q: %s", key, err)
			return nil
		}

		buf := make([]byte, MaxNameLen)
		n, err := io.ReadFull(r, buf)
		if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
			return errors.Wrapf(err, "failed to read stored name for %s", addr)
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		slot := s.claim(addr)
		if slot < 0 {
			s.logger.Warnf("no slot for stored name of %s", addr)
			return nil
		}
		s.slots[slot] = binding{addr: addr, name: string(buf[:n])}
		return nil
	})
}

// claim returns the slot already bound to addr, else the first empty
// slot, else -1. Caller holds the lock.
func (s *Store) claim(addr blemgmt.Addr) int {
	empty := -1
	for i := range s.slots {
		if s.slots[i].addr == addr {
			return i
		}
		if empty < 0 && s.slots[i].addr.IsNone() {
			empty = i
		}
	}
	return empty
}

func truncate(name string) string {
	if len(name) > MaxNameLen {
		return name[:MaxNameLen]
	}
	return name
}
