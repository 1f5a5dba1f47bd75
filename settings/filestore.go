// Package settings ships two SettingsStore backends: a single-file
// JSON store and a sqlite store for hosts that already carry a config
// database.
package settings

import (
	"bytes"
	"io"
	"os"
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	blemgmt "github.com/cormoran/zmk-module-ble-management"
)

type fileStore struct {
	filename string
	lock     sync.RWMutex
}

// NewFileStore keeps settings records in a single JSON document at
// filename. Byte values round-trip through the standard base64 []byte
// encoding. A missing file reads as an empty store.
func NewFileStore(filename string) blemgmt.SettingsStore {
	return &fileStore{filename: filename}
}

func (fs *fileStore) Save(key string, value []byte) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	records, err := fs.loadExisting()
	if err != nil {
		return err
	}

	records[key] = value

	return fs.storeRecords(records)
}

func (fs *fileStore) Enumerate(prefix string, fn func(key string, r io.Reader) error) error {
	fs.lock.RLock()
	records, err := fs.loadExisting()
	fs.lock.RUnlock()
	if err != nil {
		return err
	}

	for key, value := range records {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		if err := fn(key, bytes.NewReader(value)); err != nil {
			return err
		}
	}
	return nil
}

func (fs *fileStore) loadExisting() (map[string][]byte, error) {
	_, err := os.Stat(fs.filename)
	if os.IsNotExist(err) {
		return map[string][]byte{}, nil
	}

	in, err := os.ReadFile(fs.filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read settings file")
	}

	var records map[string][]byte
	if err := jsoniter.Unmarshal(in, &records); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal settings file")
	}
	if records == nil {
		records = map[string][]byte{}
	}

	return records, nil
}

func (fs *fileStore) storeRecords(records map[string][]byte) error {
	out, err := jsoniter.Marshal(records)
	if err != nil {
		return errors.Wrap(err, "failed to marshal settings")
	}

	return os.WriteFile(fs.filename, out, 0644)
}
