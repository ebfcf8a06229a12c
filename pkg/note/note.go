// Package note defines the per-day journal entry.
package note

import (
	"github.com/google/uuid"

	"tableflip.dev/daygrid/pkg/timeutil"
)

// Entry is the free-form journal text for one day. Content may carry simple
// inline markdown.
type Entry struct {
	ID      string       `json:"id"`
	Date    timeutil.Day `json:"date"`
	Content string       `json:"content"`
}

// New returns an empty entry for day.
func New(day timeutil.Day) Entry {
	return Entry{ID: uuid.NewString(), Date: day}
}
