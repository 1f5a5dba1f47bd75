package settings

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *SQLiteStore {
	t.Helper()

	s, err := OpenSQLite(filepath.Join(t.TempDir(), "settings.db"))
	if err != nil {
		t.Fatalf("failed to open database: %s", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteRoundTrip(t *testing.T) {
	s := openTestDB(t)

	if err := s.Save("ble_mgmt/names/aa", []byte("desk")); err != nil {
		t.Fatalf("save failed: %s", err)
	}
	if err := s.Save("other/key", []byte("ignored")); err != nil {
		t.Fatalf("save failed: %s", err)
	}

	got := collect(t, s, "ble_mgmt/names/")
	if len(got) != 1 || got["ble_mgmt/names/aa"] != "desk" {
		t.Fatalf("unexpected records: %v", got)
	}
}

func TestSQLiteOverwrite(t *testing.T) {
	s := openTestDB(t)

	if err := s.Save("k", []byte("one")); err != nil {
		t.Fatalf("save failed: %s", err)
	}
	if err := s.Save("k", []byte("two")); err != nil {
		t.Fatalf("save failed: %s", err)
	}

	got := collect(t, s, "k")
	if got["k"] != "two" {
		t.Fatalf("expected overwritten value, got %v", got)
	}
}

func TestSQLitePrefixIsLiteral(t *testing.T) {
	// "ble_mgmt" contains '_'; a LIKE-based filter would also match
	// "blexmgmt" keys.
	s := openTestDB(t)

	if err := s.Save("ble_mgmt/names/aa", []byte("desk")); err != nil {
		t.Fatalf("save failed: %s", err)
	}
	if err := s.Save("blexmgmt/names/aa", []byte("wrong")); err != nil {
		t.Fatalf("save failed: %s", err)
	}

	got := collect(t, s, "ble_mgmt/")
	if len(got) != 1 || got["ble_mgmt/names/aa"] != "desk" {
		t.Fatalf("prefix must match literally: %v", got)
	}
}
