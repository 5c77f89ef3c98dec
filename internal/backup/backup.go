// Package backup exports the ledger's durable state as one snapshot
// document and applies selected keys of an imported snapshot back.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fittrack/fittrack-cli/internal/storage"
)

// ErrMalformedImport marks import bytes that do not parse as a snapshot
// document.
var ErrMalformedImport = errors.New("malformed import document")

// Snapshot maps each persisted key to its raw document; a key that was
// never written maps to JSON null.
type Snapshot map[string]json.RawMessage

// Engine reads and writes blobs directly through the adapter, bypassing
// store memory, so a snapshot reflects exactly what is durable. It never
// reloads stores itself; after ApplyImport the caller must reload every
// affected store.
type Engine struct {
	adapter storage.Adapter
}

func NewEngine(adapter storage.Adapter) *Engine {
	return &Engine{adapter: adapter}
}

var nullValue = json.RawMessage("null")

// ExportSnapshot captures the persisted value of all four keys. It mutates
// nothing.
func (e *Engine) ExportSnapshot() (Snapshot, error) {
	snap := make(Snapshot, len(storage.Keys()))
	for _, key := range storage.Keys() {
		data, ok, err := e.adapter.Get(key)
		if err != nil {
			return nil, fmt.Errorf("export %q: %w", key, err)
		}
		if !ok {
			snap[key] = nullValue
			continue
		}
		if !json.Valid(data) {
			return nil, fmt.Errorf("export %q: stored blob is not valid JSON", key)
		}
		snap[key] = json.RawMessage(data)
	}
	return snap, nil
}

// ImportPreview parses raw bytes as a snapshot document and returns the
// known keys that are present and non-null. Keys absent from the document
// are omitted, never defaulted.
func (e *Engine) ImportPreview(raw []byte) (Snapshot, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedImport, err)
	}
	preview := make(Snapshot)
	for _, key := range storage.Keys() {
		value, ok := doc[key]
		if !ok || isNull(value) {
			continue
		}
		preview[key] = value
	}
	return preview, nil
}

// ApplyImport overwrites the persisted blob for each selected key with the
// preview's value - a full replace, not a merge. Selecting a key the
// preview does not contain is an error and nothing is written for it.
func (e *Engine) ApplyImport(selectedKeys []string, preview Snapshot) error {
	for _, key := range selectedKeys {
		value, ok := preview[key]
		if !ok {
			return fmt.Errorf("key %q is not part of the import preview", key)
		}
		if err := e.adapter.Set(key, []byte(value)); err != nil {
			return fmt.Errorf("apply import for %q: %w", key, err)
		}
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	return v == nil
}
