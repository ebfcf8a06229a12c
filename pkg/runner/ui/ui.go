// Package ui provides the runner that opens the interactive calendar.
package ui

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/daygrid/pkg/app"
	teaui "tableflip.dev/daygrid/pkg/tui/app"
	"tableflip.dev/daygrid/pkg/tui/theme"
)

// UI runs the terminal calendar until the user quits.
type UI struct {
	App   *app.Service
	Theme theme.Theme
	// Now overrides the wall clock, for demos and screenshots.
	Now func() time.Time
}

func (d *UI) Do(ctx context.Context) error {
	if d.App == nil {
		return errors.New("can not open ui, no persistence")
	}
	var opts []teaui.Option
	if d.Theme.Name != "" {
		opts = append(opts, teaui.WithTheme(d.Theme))
	}
	if d.Now != nil {
		opts = append(opts, teaui.WithClock(d.Now))
	}
	return teaui.Run(d.App, opts...)
}
