package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/daygrid/pkg/app"
	"tableflip.dev/daygrid/pkg/commands/options"
	"tableflip.dev/daygrid/pkg/logging"
	"tableflip.dev/daygrid/pkg/sound"
	"tableflip.dev/daygrid/pkg/store"
)

var (
	oo = &options.OutputOptions{}

	// now is the clock used to resolve relative dates.
	now = time.Now
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "daygrid",
		Short: options.Wrap80("A three-day, half-hour calendar for the terminal."),
		Long: options.Wrap80(`daygrid plans your day on a grid of 30 minute slots. Run it without a
subcommand to open the calendar, or use the subcommands to script it.`),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if isatty.IsTerminal(os.Stdout.Fd()) {
				return runUI(cmd)
			}
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addKey(topLevel)
	addAdd(topLevel)
	addAgenda(topLevel)
	addMonth(topLevel)
	addComplete(topLevel)
	addDelete(topLevel)
	addMove(topLevel)
	addResize(topLevel)
	addNote(topLevel)
	addMetrics(topLevel)
	addReport(topLevel)
	addCarryover(topLevel)
	addInfo(topLevel)
	addMCP(topLevel)
	addDemo(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
}

// session is an opened application service plus everything that must be
// released when the command ends.
type session struct {
	Settings *store.Settings
	App      *app.Service
	closer   io.Closer
}

func (s *session) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// openService loads configuration, the log sink and persistence, then opens
// the application service over them.
func openService() (*session, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	log, closer, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		_ = closer.Close()
		return nil, err
	}
	svc, err := app.Open(p, sound.NewBell(os.Stderr), log)
	if err != nil {
		_ = closer.Close()
		return nil, fmt.Errorf("open %s: %w", cfg.BasePath(), err)
	}
	svc.Sound.SetEnabled(cfg.Sound)
	svc.Sound.SetVolume(cfg.Volume)
	log.Info("session opened", "path", cfg.BasePath(), "pid", os.Getpid())
	return &session{Settings: cfg, App: svc, closer: closer}, nil
}
