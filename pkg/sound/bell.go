package sound

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Bell rings the terminal bell. It stays silent when out is not a terminal so
// piped output is never polluted.
type Bell struct {
	out io.Writer
	tty bool
}

// NewBell rings on f, typically os.Stderr.
func NewBell(f *os.File) *Bell {
	fd := f.Fd()
	return &Bell{out: f, tty: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)}
}

func (b *Bell) Play(kind Kind) error {
	if !b.tty {
		return nil
	}
	// Drag fires on every pickup; keep it quiet.
	if kind == Drag {
		return nil
	}
	_, err := io.WriteString(b.out, "\a")
	return err
}
