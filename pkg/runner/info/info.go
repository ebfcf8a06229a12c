// Package info provides the runner that describes configuration and storage.
package info

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/daygrid/pkg/app"
	"tableflip.dev/daygrid/pkg/store"
)

type Info struct {
	Settings *store.Settings
	App      *app.Service
	Out      io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if n.Settings == nil {
		var err error
		n.Settings, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}
	if n.App == nil {
		return errors.New("failed to create persistence object")
	}

	b := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	if override := os.Getenv("DAYGRID_CONFIG_PATH"); override != "" {
		tbl.AddRow(b.Sprint("DAYGRID_CONFIG_PATH"), override)
	} else {
		tbl.AddRow(b.Sprint("DAYGRID_CONFIG_PATH"), "not set")
	}
	tbl.AddRow(b.Sprint("Data path"), n.Settings.BasePath())
	logPath := n.Settings.Log
	if logPath == "" {
		logPath = "disabled"
	}
	tbl.AddRow(b.Sprint("Log"), logPath)
	tbl.AddRow(b.Sprint("Theme"), n.Settings.Theme)
	tbl.AddRow(b.Sprint("Sound"), fmt.Sprintf("%t (volume %.0f%%)", n.App.Sound.Enabled(), n.App.Sound.Volume()*100))

	all := n.App.Tasks.All()
	done := 0
	for _, t := range all {
		if t.Completed {
			done++
		}
	}
	tbl.AddRow(b.Sprint("Tasks"), fmt.Sprintf("%d (%d completed)", len(all), done))
	notes := fmt.Sprintf("%d", len(n.App.Notes.All()))
	if groups := n.App.Notes.Grouped(); len(groups) > 0 {
		notes += fmt.Sprintf(" (latest %s)", groups[0].Date)
	}
	tbl.AddRow(b.Sprint("Notes"), notes)
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(out, tbl)
	return nil
}
