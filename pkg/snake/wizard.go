// Package snake walks a user through creating a task with interactive prompts.
package snake

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/manifoldco/promptui"

	"tableflip.dev/daygrid/pkg/calendar"
	"tableflip.dev/daygrid/pkg/task"
	"tableflip.dev/daygrid/pkg/timeutil"
)

// Presets are the duration choices offered before falling back to free text.
var Presets = []int{10, 20, 30, 60, 90, 120}

const customDuration = "custom..."

// Answers is the result of a completed wizard.
type Answers struct {
	Title       string
	Description string
	Start       time.Time
	Duration    int
}

// Wizard prompts on In and renders on Out.
type Wizard struct {
	In  io.Reader
	Out io.Writer
	Now time.Time
}

// Run asks for title, description, day, start time and duration, then
// confirms.
func (w *Wizard) Run() (Answers, error) {
	var a Answers
	var err error

	if a.Title, err = w.text("Title", "", ValidateTitle); err != nil {
		return a, err
	}
	if a.Description, err = w.text("Description (optional)", "", nil); err != nil {
		return a, err
	}

	today := timeutil.DayOf(w.now())
	dayInput, err := w.text("Day", today.String(), func(s string) error {
		_, err := ParseDay(s, today)
		return err
	})
	if err != nil {
		return a, err
	}
	day, _ := ParseDay(dayInput, today)

	def := calendar.Anchor{Day: today, Slot: calendar.SlotIndex(w.now()) + 1}.Time().Format("15:04")
	clockInput, err := w.text("Start", def, func(s string) error {
		_, _, err := ParseClock(s)
		return err
	})
	if err != nil {
		return a, err
	}
	hour, minute, _ := ParseClock(clockInput)
	a.Start = day.At(hour, minute)

	if a.Duration, err = w.duration(); err != nil {
		return a, err
	}

	t := task.New(a.Title, a.Start, a.Duration)
	ok, err := w.confirm(fmt.Sprintf("Schedule %s on %s", t.String(), day))
	if err != nil {
		return a, err
	}
	if !ok {
		return a, promptui.ErrAbort
	}
	return a, nil
}

func (w *Wizard) text(label, def string, validate func(string) error) (string, error) {
	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }}: ",
		Valid:   "{{ . | green }}: ",
		Invalid: "{{ . | red }}: ",
		Success: "{{ . | bold }}: ",
	}

	prompt := promptui.Prompt{
		Label:     label,
		Default:   def,
		Templates: templates,
		Stdin:     io.NopCloser(w.in()),
		Stdout:    NopCloser(w.out()),
	}
	if validate != nil {
		prompt.Validate = func(input string) error {
			if input == "" && def != "" {
				return nil
			}
			return validate(input)
		}
	}

	result, err := prompt.Run()
	if err != nil {
		return "", err
	}
	if result == "" {
		result = def
	}
	return strings.TrimSpace(result), nil
}

func (w *Wizard) duration() (int, error) {
	items := make([]string, 0, len(Presets)+1)
	for _, p := range Presets {
		items = append(items, timeutil.FormatWindow(time.Duration(p)*time.Minute))
	}
	items = append(items, customDuration)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ . | bold }}",
		Inactive: "   {{ . }}",
		Selected: "Duration: {{ . | bold }}",
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     "Duration",
		Items:     items,
		Templates: templates,
		Size:      len(items),
		CursorPos: 2,
		Stdin:     io.NopCloser(w.in()),
		Stdout:    NopCloser(w.out()),
	}

	i, _, err := prompt.Run()
	if err != nil {
		return 0, err
	}
	if i < len(Presets) {
		return Presets[i], nil
	}

	input, err := w.text("Duration", timeutil.DefaultDuration, func(s string) error {
		_, err := ParseDuration(s)
		return err
	})
	if err != nil {
		return 0, err
	}
	return ParseDuration(input)
}

func (w *Wizard) now() time.Time {
	if w.Now.IsZero() {
		return time.Now()
	}
	return w.Now
}

func (w *Wizard) in() io.Reader {
	if w.In == nil {
		return strings.NewReader("")
	}
	return w.In
}

func (w *Wizard) out() io.Writer {
	if w.Out == nil {
		return io.Discard
	}
	return w.Out
}

// ValidateTitle rejects blank titles.
func ValidateTitle(input string) error {
	if strings.TrimSpace(input) == "" {
		return task.ErrEmptyTitle
	}
	return nil
}

// ParseDay accepts YYYY-MM-DD, today, tomorrow, yesterday or a signed day
// offset such as +2.
func ParseDay(input string, today timeutil.Day) (timeutil.Day, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	switch s {
	case "", "today":
		return today, nil
	case "tomorrow":
		return today.AddDays(1), nil
	case "yesterday":
		return today.AddDays(-1), nil
	}
	if s[0] == '+' || s[0] == '-' {
		var n int
		if _, err := fmt.Sscanf(s, "%d", &n); err == nil {
			return today.AddDays(n), nil
		}
	}
	return timeutil.ParseDay(s)
}

// ParseClock reads "9:30", "14:00", "9am" or "2:30pm".
func ParseClock(input string) (hour, minute int, err error) {
	s := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(input), " ", ""))
	for _, layout := range []string{"15:04", "3:04pm", "3pm", "15"} {
		if t, perr := time.Parse(layout, s); perr == nil {
			return t.Hour(), t.Minute(), nil
		}
	}
	return 0, 0, fmt.Errorf("invalid time %q: try 9:30, 14:00 or 2pm", input)
}

// ParseDuration reads a positive duration in whole minutes.
func ParseDuration(input string) (int, error) {
	m, err := timeutil.ParseMinutes(input)
	if err != nil {
		return 0, err
	}
	if m <= 0 {
		return 0, errors.New("duration must be positive")
	}
	return m, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// NopCloser wraps w so it satisfies io.WriteCloser.
func NopCloser(w io.Writer) io.WriteCloser {
	return nopCloser{w}
}
