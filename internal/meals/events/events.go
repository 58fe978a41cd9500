// Package events publishes one change event per committed record mutation.
package events

import (
	"context"
	"time"
)

// Op names the mutation that produced a Change.
type Op string

const (
	OpAddItem    Op = "add_item"
	OpEditItem   Op = "edit_item"
	OpDeleteItem Op = "delete_item"
	OpSetMemo    Op = "set_memo"
)

// Change describes a committed mutation. Index is -1 for operations that do
// not address a single item (add appends, memo is per record).
type Change struct {
	Op      Op        `json:"op"`
	Date    string    `json:"date"`
	Time    string    `json:"time,omitempty"`
	Index   int       `json:"index"`
	Version uint64    `json:"version"`
	At      time.Time `json:"at"`
	// RecordRemoved is set when a delete pruned the whole record.
	RecordRemoved bool `json:"record_removed,omitempty"`
}

// Publisher delivers change events. Implementations must be safe for
// concurrent use.
type Publisher interface {
	Publish(ctx context.Context, change Change) error
}

// Noop drops every event.
type Noop struct{}

func (Noop) Publish(context.Context, Change) error { return nil }
