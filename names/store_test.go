package names

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	blemgmt "github.com/cormoran/zmk-module-ble-management"
)

type memStore struct {
	records  map[string][]byte
	failSave bool
}

func newMemStore() *memStore {
	return &memStore{records: map[string][]byte{}}
}

func (m *memStore) Save(key string, value []byte) error {
	if m.failSave {
		return errors.New("save failure injected")
	}
	m.records[key] = append([]byte(nil), value...)
	return nil
}

func (m *memStore) Enumerate(prefix string, fn func(key string, r io.Reader) error) error {
	for k, v := range m.records {
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		if err := fn(k, bytes.NewReader(v)); err != nil {
			return err
		}
	}
	return nil
}

var (
	addrA = blemgmt.MustParseAddr("c4:f1:22:0a:0b:0c (random)")
	addrB = blemgmt.MustParseAddr("de:ad:be:ef:00:01 (public)")
	addrC = blemgmt.MustParseAddr("11:22:33:44:55:66 (random)")
)

func TestLookupNoneAndUnknown(t *testing.T) {
	s := New(3, newMemStore())

	if got := s.Lookup(blemgmt.AddrNone); got != "" {
		t.Fatalf("expected empty name for sentinel, got %q", got)
	}
	if got := s.Lookup(addrA); got != "" {
		t.Fatalf("expected empty name for unknown address, got %q", got)
	}
}

func TestUpsertOverwritesInPlace(t *testing.T) {
	s := New(3, newMemStore())

	if err := s.Upsert(addrA, "desk"); err != nil {
		t.Fatalf("first upsert failed: %s", err)
	}
	if err := s.Upsert(addrA, "laptop"); err != nil {
		t.Fatalf("second upsert failed: %s", err)
	}

	if got := s.Lookup(addrA); got != "laptop" {
		t.Fatalf("expected overwritten name, got %q", got)
	}
	if got := s.Occupied(); got != 1 {
		t.Fatalf("expected one occupied slot, got %d", got)
	}
}

func TestUpsertFullTable(t *testing.T) {
	s := New(2, newMemStore())

	if err := s.Upsert(addrA, "one"); err != nil {
		t.Fatalf("upsert failed: %s", err)
	}
	if err := s.Upsert(addrB, "two"); err != nil {
		t.Fatalf("upsert failed: %s", err)
	}

	if err := s.Upsert(addrC, "three"); err != ErrNoSlot {
		t.Fatalf("expected ErrNoSlot for a new address on a full table, got %v", err)
	}

	// Renaming an existing binding still works at capacity.
	if err := s.Upsert(addrB, "renamed"); err != nil {
		t.Fatalf("rename at capacity failed: %s", err)
	}
	if got := s.Lookup(addrB); got != "renamed" {
		t.Fatalf("expected renamed binding, got %q", got)
	}
}

func TestUpsertTruncatesLongNames(t *testing.T) {
	s := New(1, newMemStore())

	long := strings.Repeat("x", MaxNameLen+9)
	if err := s.Upsert(addrA, long); err != nil {
		t.Fatalf("upsert failed: %s", err)
	}

	if got := s.Lookup(addrA); got != long[:MaxNameLen] {
		t.Fatalf("expected truncated name, got %q (len %d)", got, len(got))
	}
}

func TestUpsertSaveFailureKeepsCache(t *testing.T) {
	m := newMemStore()
	m.failSave = true
	s := New(2, m)

	err := s.Upsert(addrA, "desk")
	if err == nil {
		t.Fatal("expected error from failing save")
	}
	if err == ErrNoSlot {
		t.Fatal("save failure must not be reported as ErrNoSlot")
	}

	// The in-memory table is the write path's ground truth.
	if got := s.Lookup(addrA); got != "desk" {
		t.Fatalf("expected cached name despite save failure, got %q", got)
	}
}

func TestClear(t *testing.T) {
	m := newMemStore()
	s := New(2, m)

	if err := s.Upsert(addrA, "desk"); err != nil {
		t.Fatalf("upsert failed: %s", err)
	}

	s.Clear(addrA)
	if got := s.Lookup(addrA); got != "" {
		t.Fatalf("expected cleared binding, got %q", got)
	}
	if got := s.Occupied(); got != 0 {
		t.Fatalf("expected empty table, got %d occupied", got)
	}

	// Clearing again is a no-op.
	s.Clear(addrA)

	// The durable record stays behind; a restore brings the name back.
	if _, ok := m.records[SettingsPrefix+addrA.String()]; !ok {
		t.Fatal("expected durable record to survive Clear")
	}
	fresh := New(2, m)
	if err := fresh.Restore(); err != nil {
		t.Fatalf("restore failed: %s", err)
	}
	if got := fresh.Lookup(addrA); got != "desk" {
		t.Fatalf("expected stale name after restore, got %q", got)
	}
}

func TestRestoreRoundTrip(t *testing.T) {
	m := newMemStore()
	s := New(3, m)

	if err := s.Upsert(addrA, "desk"); err != nil {
		t.Fatalf("upsert failed: %s", err)
	}
	if err := s.Upsert(addrB, "couch"); err != nil {
		t.Fatalf("upsert failed: %s", err)
	}

	fresh := New(3, m)
	if err := fresh.Restore(); err != nil {
		t.Fatalf("restore failed: %s", err)
	}

	if got := fresh.Lookup(addrA); got != "desk" {
		t.Fatalf("expected restored name for %s, got %q", addrA, got)
	}
	if got := fresh.Lookup(addrB); got != "couch" {
		t.Fatalf("expected restored name for %s, got %q", addrB, got)
	}
	if got := fresh.Occupied(); got != 2 {
		t.Fatalf("expected two occupied slots, got %d", got)
	}
}

func TestRestoreSkipsUnparsableKeys(t *testing.T) {
	m := newMemStore()
	m.records[SettingsPrefix+"garbage"] = []byte("who knows")
	m.records[SettingsPrefix+addrA.String()] = []byte("desk")

	s := New(3, m)
	if err := s.Restore(); err != nil {
		t.Fatalf("restore should skip bad keys, got %s", err)
	}

	if got := s.Occupied(); got != 1 {
		t.Fatalf("expected one restored binding, got %d", got)
	}
	if got := s.Lookup(addrA); got != "desk" {
		t.Fatalf("expected restored name, got %q", got)
	}
}

func TestRestoreTruncatesOversizedValues(t *testing.T) {
	m := newMemStore()
	m.records[SettingsPrefix+addrA.String()] = bytes.Repeat([]byte("y"), MaxNameLen+20)

	s := New(1, m)
	if err := s.Restore(); err != nil {
		t.Fatalf("restore failed: %s", err)
	}

	if got := s.Lookup(addrA); len(got) != MaxNameLen {
		t.Fatalf("expected name truncated to %d bytes, got %d", MaxNameLen, len(got))
	}
}
