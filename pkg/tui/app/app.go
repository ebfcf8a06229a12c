// Package teaui renders the three-day grid as a Bubble Tea program. Keys
// stand in for pointer gestures: the cursor selects a slot, enter opens the
// quick-add or edit form, m picks a task up and enter drops it.
package teaui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/daygrid/pkg/app"
	"tableflip.dev/daygrid/pkg/calendar"
	"tableflip.dev/daygrid/pkg/calendar/viewmodel"
	"tableflip.dev/daygrid/pkg/interact"
	"tableflip.dev/daygrid/pkg/store"
	"tableflip.dev/daygrid/pkg/task"
	"tableflip.dev/daygrid/pkg/timeutil"
	"tableflip.dev/daygrid/pkg/tui/theme"
)

type mode int

const (
	modeNormal mode = iota
	modeQuickAdd
	modeEdit
	modeMove
	modeNote
	modeHelp
)

const (
	gutterWidth   = 6
	sideWidth     = 34
	minColWidth   = 12
	defaultWidth  = 120
	defaultHeight = 32
	maxNoteLines  = 8
	hoverSlack    = 50 * time.Millisecond
)

type tickMsg time.Time

type hoverCheckMsg struct{ id string }

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

// Option customises the Model.
type Option func(*Model)

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// WithTheme selects the starting palette.
func WithTheme(th theme.Theme) Option {
	return func(m *Model) { m.theme = th }
}

// WithController supplies a preconfigured interaction controller.
func WithController(c *interact.Controller) Option {
	return func(m *Model) { m.ctl = c }
}

// Model is the root Bubble Tea model.
type Model struct {
	svc   *app.Service
	ctl   *interact.Controller
	theme theme.Theme
	now   func() time.Time
	clock time.Time

	ctx         context.Context
	cancel      context.CancelFunc
	watchCh     <-chan store.Event
	watchCancel context.CancelFunc

	width  int
	height int

	mode    mode
	col     int
	slot    int
	top     int
	input   textinput.Model
	lines   []string
	hoverID string
	refused bool
	status  string
}

// New builds the grid model over svc with the cursor on the current slot.
func New(svc *app.Service, opts ...Option) *Model {
	ti := textinput.New()
	ti.Placeholder = "Title"
	ti.CharLimit = 256
	ti.Prompt = ""

	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		svc:    svc,
		theme:  theme.Default(),
		now:    time.Now,
		ctx:    ctx,
		cancel: cancel,
		input:  ti,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.ctl == nil {
		m.ctl = svc.Controller()
	}
	m.clock = m.now()
	m.slot = calendar.SlotIndex(m.clock)
	m.top = m.slot - 4
	m.ensureVisible()
	return m
}

// Run launches the interactive TUI program.
func Run(svc *app.Service, opts ...Option) error {
	p := tea.NewProgram(New(svc, opts...), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init starts the minute clock and the persistence watcher.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(tick(), startWatchCmd(m.ctx, m.svc))
}

func tick() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func startWatchCmd(parent context.Context, svc *app.Service) tea.Cmd {
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := svc.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

// Update routes Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = v.Width
		m.height = v.Height
		m.ensureVisible()
	case tickMsg:
		m.clock = m.now()
		cmds = append(cmds, tick())
	case hoverCheckMsg:
		// Re-render only; the controller already recorded the hover.
	case watchStartedMsg:
		if v.err != nil {
			m.status = "Watch unavailable: " + v.err.Error()
			break
		}
		m.watchCh = v.ch
		m.watchCancel = v.cancel
		cmds = append(cmds, m.waitForWatch())
	case watchEventMsg:
		if err := m.svc.Reload(v.event.Key); err != nil {
			m.status = "Reload failed: " + err.Error()
		}
		cmds = append(cmds, m.waitForWatch())
	case watchStoppedMsg:
		m.watchCh = nil
	case tea.KeyPressMsg:
		if cmd := m.handleKey(v); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}
	switch m.mode {
	case modeQuickAdd, modeEdit, modeNote:
		return m.handleInputKey(msg)
	case modeMove:
		return m.handleMoveKey(msg.String())
	case modeHelp:
		m.mode = modeNormal
		return nil
	default:
		return m.handleNormalKey(msg.String())
	}
}

func (m *Model) quit() tea.Cmd {
	m.ctl.Close()
	m.stopWatch()
	m.cancel()
	return tea.Quit
}

func (m *Model) handleNormalKey(key string) tea.Cmd {
	m.status = ""
	switch key {
	case "q":
		return m.quit()
	case "left", "h":
		m.moveCol(-1)
	case "right", "l":
		m.moveCol(1)
	case "up", "k":
		m.moveSlot(-1)
	case "down", "j":
		m.moveSlot(1)
	case "[":
		m.ctl.PrevDay()
	case "]":
		m.ctl.NextDay()
	case "t":
		m.ctl.ResetDay()
		m.col = 0
		m.slot = calendar.SlotIndex(m.clock)
		m.ensureVisible()
	case "enter", "a":
		return m.openForm()
	case "space", "x":
		m.toggle()
	case "+", "=":
		m.nudge(task.SlotMinutes)
	case "-":
		m.nudge(-task.SlotMinutes)
	case "m":
		m.startMove()
	case "d", "delete":
		m.delete()
	case "n":
		return m.openNote()
	case "T":
		m.theme = m.theme.Toggle()
	case "s":
		m.svc.Sound.SetEnabled(!m.svc.Sound.Enabled())
		m.status = "Sound " + onOff(m.svc.Sound.Enabled())
	case "?":
		m.mode = modeHelp
	}
	return m.syncHover()
}

func (m *Model) handleInputKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	switch key {
	case "esc":
		if m.mode != modeNote {
			m.ctl.Cancel()
		}
		m.closeForm()
		m.status = "Cancelled"
		return nil
	case "enter", "alt+enter", "shift+enter", "ctrl+enter":
		if !interact.EnterSubmits(key != "enter") {
			m.lines = append(m.lines, m.input.Value())
			m.input.SetValue("")
			return nil
		}
		return m.submitForm()
	case "ctrl+d":
		if m.mode == modeEdit {
			if err := m.ctl.DeleteEditing(); err != nil {
				m.status = err.Error()
			} else {
				m.status = "Deleted"
			}
			m.closeForm()
		}
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) handleMoveKey(key string) tea.Cmd {
	switch key {
	case "esc", "q":
		m.ctl.DragEnd()
		m.mode = modeNormal
		m.status = "Move cancelled"
		return nil
	case "enter", "space":
		if !m.ctl.Drop(m.anchor()) {
			m.refused = true
			m.status = "Slot taken"
			return nil
		}
		m.ctl.DragEnd()
		m.mode = modeNormal
		m.status = "Moved to " + m.anchor().String()
		return nil
	case "left", "h":
		m.moveCol(-1)
	case "right", "l":
		m.moveCol(1)
	case "up", "k":
		m.moveSlot(-1)
	case "down", "j":
		m.moveSlot(1)
	case "[":
		m.ctl.PrevDay()
	case "]":
		m.ctl.NextDay()
	}
	m.refused = !m.ctl.DragOver(m.anchor())
	return nil
}

func (m *Model) moveCol(delta int) {
	m.col += delta
	if m.col < 0 {
		m.col = 0
		m.ctl.PrevDay()
	}
	if m.col >= calendar.WindowDays {
		m.col = calendar.WindowDays - 1
		m.ctl.NextDay()
	}
}

func (m *Model) moveSlot(delta int) {
	m.slot += delta
	if m.slot < 0 {
		m.slot = 0
	}
	if m.slot >= calendar.SlotsPerDay {
		m.slot = calendar.SlotsPerDay - 1
	}
	m.ensureVisible()
}

func (m *Model) ensureVisible() {
	rows := m.gridRows()
	if m.slot < m.top {
		m.top = m.slot
	}
	if m.slot >= m.top+rows {
		m.top = m.slot - rows + 1
	}
	if m.top > calendar.SlotsPerDay-rows {
		m.top = calendar.SlotsPerDay - rows
	}
	if m.top < 0 {
		m.top = 0
	}
}

func (m *Model) day() timeutil.Day {
	return timeutil.DayOf(m.clock).AddDays(m.ctl.Offset() + m.col)
}

func (m *Model) anchor() calendar.Anchor {
	return calendar.Anchor{Day: m.day(), Slot: m.slot}
}

func (m *Model) window() viewmodel.Window {
	return m.ctl.Window(m.clock)
}

// selected is the task whose block covers the cursor.
func (m *Model) selected() (task.Task, bool) {
	w := m.window()
	if m.col >= len(w.Columns) {
		return task.Task{}, false
	}
	if b, _, ok := blockAt(w.Columns[m.col], m.slot); ok {
		return b.Task, true
	}
	return task.Task{}, false
}

func blockAt(col viewmodel.Column, slot int) (viewmodel.Block, bool, bool) {
	for _, b := range col.Blocks {
		span := b.Slots
		if span < 1 {
			span = 1
		}
		if slot >= b.Slot && slot < b.Slot+span {
			return b, slot == b.Slot, true
		}
	}
	return viewmodel.Block{}, false, false
}

func (m *Model) openForm() tea.Cmd {
	if t, ok := m.selected(); ok {
		if err := m.ctl.DoubleClickTask(t.ID, interact.Point{X: m.col, Y: m.slot}); err != nil {
			m.status = err.Error()
			return nil
		}
		m.mode = modeEdit
		m.fill(t.Title)
		return m.input.Focus()
	}
	if err := m.ctl.DoubleClickSlot(m.anchor()); err != nil {
		if errors.Is(err, interact.ErrSlotOccupied) {
			m.status = "Slot taken"
		} else {
			m.status = err.Error()
		}
		return nil
	}
	m.mode = modeQuickAdd
	m.fill("")
	return m.input.Focus()
}

func (m *Model) openNote() tea.Cmd {
	content := ""
	if e, ok := m.svc.PeekNote(timeutil.DayOf(m.clock)); ok {
		content = e.Content
	}
	m.mode = modeNote
	m.fill(content)
	return m.input.Focus()
}

// fill loads text into the form, one pushed line per newline.
func (m *Model) fill(text string) {
	m.lines = nil
	parts := strings.Split(text, "\n")
	if len(parts) > 1 {
		m.lines = append(m.lines, parts[:len(parts)-1]...)
	}
	m.input.SetValue(parts[len(parts)-1])
	m.input.CursorEnd()
}

func (m *Model) closeForm() {
	m.mode = modeNormal
	m.input.Blur()
	m.input.SetValue("")
	m.lines = nil
}

func (m *Model) formText() string {
	return strings.Join(append(append([]string(nil), m.lines...), m.input.Value()), "\n")
}

func (m *Model) submitForm() tea.Cmd {
	text := m.formText()
	switch m.mode {
	case modeQuickAdd:
		t, err := m.ctl.SubmitQuickAdd(text)
		if errors.Is(err, task.ErrEmptyTitle) {
			m.status = "Title required"
			return nil
		}
		if err != nil {
			m.status = err.Error()
		} else {
			m.status = "Added " + t.Headline()
		}
	case modeEdit:
		err := m.ctl.SubmitEdit(text)
		if errors.Is(err, task.ErrEmptyTitle) {
			m.status = "Title required"
			return nil
		}
		if err != nil {
			m.status = err.Error()
		} else {
			m.status = "Saved"
		}
	case modeNote:
		if _, err := m.svc.WriteNote(m.ctx, timeutil.DayOf(m.clock), text); err != nil {
			m.status = "Note not saved: " + err.Error()
		} else {
			m.status = "Note saved"
		}
	}
	m.closeForm()
	return m.syncHover()
}

func (m *Model) toggle() {
	t, ok := m.selected()
	if !ok {
		return
	}
	if err := m.ctl.ToggleComplete(t.ID); err != nil {
		m.status = err.Error()
		return
	}
	if t.Completed {
		m.status = "Reopened " + t.Headline()
	} else {
		m.status = "Completed " + t.Headline()
	}
}

func (m *Model) nudge(delta int) {
	if t, ok := m.selected(); ok {
		if err := m.ctl.Nudge(t.ID, delta); err != nil {
			m.status = err.Error()
		}
	}
}

func (m *Model) delete() {
	if t, ok := m.selected(); ok {
		if err := m.ctl.DeleteTask(t.ID); err != nil {
			m.status = err.Error()
			return
		}
		m.status = "Deleted " + t.Headline()
	}
}

func (m *Model) startMove() {
	t, ok := m.selected()
	if !ok {
		return
	}
	if err := m.ctl.DragStart(t.ID); err != nil {
		m.status = err.Error()
		return
	}
	m.mode = modeMove
	m.refused = !m.ctl.DragOver(m.anchor())
	m.status = "Moving " + t.Headline()
}

// syncHover treats the cursor resting on a task like the pointer resting on
// it: entering arms the controller's hover timer, leaving cancels it.
func (m *Model) syncHover() tea.Cmd {
	id := ""
	if t, ok := m.selected(); ok {
		id = t.ID
	}
	if id == m.hoverID {
		return nil
	}
	if m.hoverID != "" {
		m.ctl.MouseLeave(m.hoverID)
	}
	m.hoverID = id
	if id == "" {
		return nil
	}
	m.ctl.MouseEnter(id)
	return tea.Tick(interact.HoverDelay+hoverSlack, func(time.Time) tea.Msg {
		return hoverCheckMsg{id: id}
	})
}

func (m *Model) size() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

func (m *Model) gridRows() int {
	_, h := m.size()
	rows := h - 4
	if rows < 4 {
		rows = 4
	}
	if rows > calendar.SlotsPerDay {
		rows = calendar.SlotsPerDay
	}
	return rows
}

func (m *Model) colWidth() int {
	w, _ := m.size()
	cw := (w - gutterWidth - sideWidth - calendar.WindowDays) / calendar.WindowDays
	if cw < minColWidth {
		cw = minColWidth
	}
	return cw
}

// View renders the grid, the side panels and the footer.
func (m *Model) View() string {
	if m.mode == modeHelp {
		return m.theme.Panel.Frame.Render(strings.Join(helpLines(), "\n"))
	}
	w := m.window()
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderGrid(w), " ", m.renderSide())
	return body + "\n" + m.renderFooter()
}

func (m *Model) renderGrid(w viewmodel.Window) string {
	cw := m.colWidth()
	th := m.theme.Grid
	lines := make([]string, 0, m.gridRows()+1)

	headers := []string{strings.Repeat(" ", gutterWidth-1)}
	for _, col := range w.Columns {
		style := th.Header
		if col.IsToday {
			style = th.Today
		}
		headers = append(headers, style.Width(cw).Render(clip(col.Label+" "+col.DateLabel, cw)))
	}
	lines = append(lines, strings.Join(headers, " "))

	for r := m.top; r < m.top+m.gridRows() && r < calendar.SlotsPerDay; r++ {
		cells := []string{th.Gutter.Render(fmt.Sprintf("%-5s", calendar.SlotLabel(r)))}
		for ci, col := range w.Columns {
			cells = append(cells, m.renderCell(col, ci, r, cw))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderCell(col viewmodel.Column, ci, r, width int) string {
	th := m.theme.Grid
	style := th.Night
	if col.Slots[r].Daytime {
		style = th.Day
	}
	text := ""
	if b, start, ok := blockAt(col, r); ok {
		switch {
		case start:
			mark, _, _, headline := b.Task.Row()
			text = mark + " " + headline
		case r == b.Slot+1:
			text = "  " + b.Task.Span()
		default:
			text = "  │"
		}
		switch {
		case m.ctl.Dimmed(b.Task.ID):
			style = th.Dimmed
		case b.Task.Completed:
			style = th.Completed
		default:
			style = th.Block
		}
	}
	if col.Marker != nil && col.Marker.Slot == r {
		if text == "" {
			text = strings.Repeat("─", width-4) + " now"
			style = th.Now
		} else {
			text = "▸" + strings.TrimPrefix(text, " ")
		}
	}
	if ci == m.col && r == m.slot {
		switch {
		case m.mode == modeMove && m.refused:
			style = th.Refused.Reverse(true)
			if text == "" {
				text = "✕ taken"
			}
		case m.mode == modeMove:
			style = th.Target.Reverse(true)
			if text == "" {
				text = "◇ drop here"
			}
		default:
			style = style.Reverse(true)
		}
	}
	return style.Width(width).Render(clip(text, width))
}

func (m *Model) renderSide() string {
	today := timeutil.DayOf(m.clock)
	panel := m.theme.Panel
	inner := sideWidth - 4
	frame := panel.Frame.Width(sideWidth)
	var sections []string

	d := m.svc.Metrics(m.ctx, today)
	metricsBody := []string{
		fmt.Sprintf("Done %s  %.0f%%", d.Progress(), d.Completion),
		m.bar(d.PlanningBar(), inner-5) + fmt.Sprintf(" %3.0f%%", d.PlanningBar()),
		d.Summary(),
	}
	sections = append(sections, frame.Render(panel.Title.Render("Today")+"\n"+strings.Join(metricsBody, "\n")))

	nowBody := "Nothing scheduled"
	if t, ok := m.svc.Current(m.ctx, m.clock); ok {
		nowBody = clip(t.Headline(), inner) + "\n" + t.Span() + "\n" + t.Status()
	}
	sections = append(sections, frame.Render(panel.Title.Render("Now")+"\n"+nowBody))

	if id := m.ctl.Hovered(); id != "" {
		if t, ok := m.svc.Tasks.Get(id); ok {
			detail := []string{wordwrap.String(t.Title, inner), t.Span()}
			if t.Description != "" {
				detail = append(detail, wordwrap.String(t.Description, inner))
			}
			sections = append(sections, frame.Render(panel.Title.Render("Task")+"\n"+strings.Join(detail, "\n")))
		}
	}

	noteBody := "(n to write)"
	if e, ok := m.svc.PeekNote(today); ok && strings.TrimSpace(e.Content) != "" {
		noteBody = clampLines(e.Content, inner, maxNoteLines)
	}
	sections = append(sections, frame.Render(panel.Title.Render("Note")+"\n"+noteBody))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) bar(pct float64, width int) string {
	if width < 1 {
		width = 1
	}
	filled := int(pct/100*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	return m.theme.Panel.Bar.Render(strings.Repeat("█", filled)) +
		m.theme.Panel.Track.Render(strings.Repeat("░", width-filled))
}

func (m *Model) renderFooter() string {
	ft := m.theme.Footer
	var first string
	switch m.mode {
	case modeQuickAdd:
		first = ft.Prompt.Render("Add @ "+m.ctl.State().Anchor.String()+": ") + m.pending() + m.input.View()
	case modeEdit:
		first = ft.Prompt.Render("Edit: ") + m.pending() + m.input.View()
	case modeNote:
		first = ft.Prompt.Render("Note: ") + m.pending() + m.input.View()
	case modeMove:
		first = ft.Prompt.Render("Move: ") + ft.Status.Render("arrows choose a slot, enter drops, esc cancels")
	default:
		first = ft.Status.Render(m.status)
	}
	if m.mode != modeNormal && m.status != "" {
		first += "  " + ft.Status.Render(m.status)
	}
	help := "←/→ day  ↑/↓ slot  enter add/edit  space done  +/- resize  m move  d delete  n note  ? help  q quit"
	if m.mode == modeQuickAdd || m.mode == modeEdit || m.mode == modeNote {
		help = "enter save  alt+enter new line  esc cancel"
		if m.mode == modeEdit {
			help += "  ctrl+d delete"
		}
	}
	return first + "\n" + ft.Help.Render(help)
}

func (m *Model) pending() string {
	if len(m.lines) == 0 {
		return ""
	}
	return fmt.Sprintf("[+%d] ", len(m.lines))
}

// Binding documents one key in the normal mode keymap.
type Binding struct {
	Keys   string
	Action string
}

// Bindings lists the normal mode keys in help order.
var Bindings = []Binding{
	{"←/→ h/l", "move between days (scrolls the window at the edges)"},
	{"↑/↓ k/j", "move between 30 minute slots"},
	{"[ ]", "shift the window one day"},
	{"t", "back to today"},
	{"enter a", "quick-add on a free slot, edit on a task"},
	{"alt+enter", "new line inside a title or note"},
	{"space x", "toggle completion"},
	{"+ -", "resize by 30 minutes"},
	{"m", "pick a task up, enter to drop it"},
	{"d", "delete task"},
	{"n", "write today's note"},
	{"T", "toggle light/dark"},
	{"s", "toggle sound"},
	{"?", "this help"},
	{"q", "quit"},
}

func helpLines() []string {
	lines := []string{"daygrid keys", ""}
	for _, b := range Bindings {
		lines = append(lines, fmt.Sprintf("%-10s %s", b.Keys, b.Action))
	}
	return lines
}

func clip(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return truncate.StringWithTail(s, uint(width), "…")
}

// clampLines wraps content to width and keeps at most limit lines.
func clampLines(content string, width, limit int) string {
	wrapped := wordwrap.String(content, width)
	if calendar.MeasureHeight(content, width, 1, 1) <= limit {
		return wrapped
	}
	lines := strings.Split(wrapped, "\n")
	if len(lines) > limit-1 {
		lines = lines[:limit-1]
	}
	return strings.Join(lines, "\n") + "\n…"
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
