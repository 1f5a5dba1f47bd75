package blemgmt

import "io"

// SettingsStore is the durable key-value store profile names persist
// to. Save writes one record, replacing any previous value. Enumerate
// visits every stored record whose key starts with prefix, handing the
// exact stored bytes to fn as a reader; returning an error from fn
// stops the walk.
type SettingsStore interface {
	Save(key string, value []byte) error
	Enumerate(prefix string, fn func(key string, r io.Reader) error) error
}
