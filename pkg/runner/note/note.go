// Package note provides the runner that reads or writes a day's note.
package note

import (
	"context"
	"errors"
	"io"
	"strings"

	"tableflip.dev/daygrid/pkg/app"
	"tableflip.dev/daygrid/pkg/printers"
	"tableflip.dev/daygrid/pkg/timeutil"
)

// Note prints the note for Day. When Content is set it replaces the note,
// and Append adds it as a new line instead.
type Note struct {
	App     *app.Service
	Day     timeutil.Day
	Content *string
	Append  bool
	JSON    bool
	Out     io.Writer
}

// Do executes the read or write.
func (n *Note) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not note, no persistence")
	}

	pp := printers.PrettyPrint{Out: n.Out}
	entry, ok := n.App.PeekNote(n.Day)

	if n.Content != nil {
		content := *n.Content
		if n.Append && ok && strings.TrimSpace(entry.Content) != "" {
			content = entry.Content + "\n" + content
		}
		var err error
		if entry, err = n.App.WriteNote(ctx, n.Day, content); err != nil {
			return err
		}
		ok = true
	}

	if n.JSON {
		if !ok {
			return pp.JSON(map[string]any{"date": n.Day, "content": ""})
		}
		return pp.JSON(entry)
	}
	pp.Title(n.Day.Time().Format("Monday, Jan 2"))
	pp.Note(entry, ok)
	return nil
}
