// Package interact translates grid gestures into task store mutations. It
// owns the ephemeral interaction state (quick-add, edit, drag, hover and the
// day offset) and enforces one task per anchored slot for slot-based
// placement.
package interact

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"tableflip.dev/daygrid/pkg/calendar"
	"tableflip.dev/daygrid/pkg/calendar/viewmodel"
	"tableflip.dev/daygrid/pkg/logging"
	"tableflip.dev/daygrid/pkg/sound"
	"tableflip.dev/daygrid/pkg/task"
	"tableflip.dev/daygrid/pkg/tasks"
)

// HoverDelay is how long the pointer must rest on a task before it counts as
// hovered.
const HoverDelay = 1000 * time.Millisecond

var (
	ErrNotIdle       = errors.New("interact: another gesture is in progress")
	ErrNoForm        = errors.New("interact: no form open")
	ErrSlotOccupied  = errors.New("interact: slot already occupied")
	ErrInvalidAnchor = errors.New("interact: anchor outside the day")
)

// Store is the subset of the task store the controller mutates.
type Store interface {
	All() []task.Task
	Get(id string) (task.Task, bool)
	Add(t task.Task) error
	Update(t task.Task) error
	Delete(id string) error
}

// Controller is safe for concurrent use; hover timers fire on their own
// goroutines.
type Controller struct {
	mu     sync.Mutex
	store  Store
	player sound.Player
	sched  Scheduler
	log    *slog.Logger

	state   State
	hovered string
	hover   Timer
	hoverID int
	offset  int
	closed  bool
}

// Option customises a Controller.
type Option func(*Controller)

// WithPlayer sets the sound cue sink.
func WithPlayer(p sound.Player) Option {
	return func(c *Controller) { c.player = p }
}

// WithScheduler replaces the hover timer source.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) { c.sched = s }
}

// WithLogger routes diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// New builds an idle controller over s.
func New(s Store, opts ...Option) *Controller {
	c := &Controller{store: s}
	for _, opt := range opts {
		opt(c)
	}
	if c.player == nil {
		c.player = sound.Nop{}
	}
	if c.sched == nil {
		c.sched = RealScheduler{}
	}
	c.log = logging.OrDiscard(c.log)
	return c
}

// State returns a snapshot of the interaction record.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.state
	if s.Target != nil {
		target := *s.Target
		s.Target = &target
	}
	return s
}

// EnterSubmits reports whether an Enter key press submits a form. Enter with
// a modifier inserts a line break instead.
func EnterSubmits(modified bool) bool {
	return !modified
}

// DoubleClickSlot opens the quick-add form at a free anchor.
func (c *Controller) DoubleClickSlot(a calendar.Anchor) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.state.idle() {
		return ErrNotIdle
	}
	if !a.Valid() {
		return fmt.Errorf("%w: slot %d", ErrInvalidAnchor, a.Slot)
	}
	if calendar.Occupied(c.store.All(), a) {
		return fmt.Errorf("%w: %s", ErrSlotOccupied, a)
	}
	c.cancelHoverLocked()
	c.state = State{Kind: QuickAdding, Anchor: a}
	return nil
}

// SubmitQuickAdd creates a 30 minute task at the quick-add anchor.
func (c *Controller) SubmitQuickAdd(title string) (task.Task, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Kind != QuickAdding {
		return task.Task{}, ErrNoForm
	}
	a := c.state.Anchor
	if strings.TrimSpace(title) == "" {
		return task.Task{}, task.ErrEmptyTitle
	}
	if calendar.Occupied(c.store.All(), a) {
		c.state = State{}
		return task.Task{}, fmt.Errorf("%w: %s", ErrSlotOccupied, a)
	}
	t := task.New(title, a.Time(), task.DefaultDuration)
	c.state = State{}
	if err := c.mutated("add", c.store.Add(t)); err != nil {
		return task.Task{}, err
	}
	return t, nil
}

// Cancel closes any open form without mutating the store.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Kind == QuickAdding || c.state.Kind == Editing {
		c.state = State{}
	}
}

// DoubleClickTask opens the edit form for id near p. Unknown ids are ignored.
func (c *Controller) DoubleClickTask(id string, p Point) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.state.idle() {
		return ErrNotIdle
	}
	if _, ok := c.store.Get(id); !ok {
		return nil
	}
	c.cancelHoverLocked()
	c.state = State{Kind: Editing, TaskID: id, Point: p}
	return nil
}

// SubmitEdit replaces the edited task's title and nothing else.
func (c *Controller) SubmitEdit(title string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Kind != Editing {
		return ErrNoForm
	}
	if strings.TrimSpace(title) == "" {
		return task.ErrEmptyTitle
	}
	id := c.state.TaskID
	c.state = State{}
	t, ok := c.store.Get(id)
	if !ok {
		return nil
	}
	t.Title = title
	return c.mutated("update", c.store.Update(t))
}

// DeleteEditing removes the task open in the edit form.
func (c *Controller) DeleteEditing() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Kind != Editing {
		return ErrNoForm
	}
	id := c.state.TaskID
	c.state = State{}
	return c.deleteLocked(id)
}

// DeleteTask removes id directly, outside the edit form.
func (c *Controller) DeleteTask(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.deleteLocked(id)
}

func (c *Controller) deleteLocked(id string) error {
	if _, ok := c.store.Get(id); !ok {
		return nil
	}
	if c.hovered == id {
		c.hovered = ""
	}
	if err := c.mutated("delete", c.store.Delete(id)); err != nil {
		return err
	}
	c.play(sound.Delete)
	return nil
}

// DragStart picks up id.
func (c *Controller) DragStart(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.state.idle() {
		return ErrNotIdle
	}
	if _, ok := c.store.Get(id); !ok {
		return nil
	}
	c.cancelHoverLocked()
	c.state = State{Kind: Dragging, TaskID: id}
	c.play(sound.Drag)
	return nil
}

// DragOver marks a as the drop target when it is free and reports whether it
// is eligible.
func (c *Controller) DragOver(a calendar.Anchor) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Kind != Dragging {
		return false
	}
	if !c.eligibleLocked(a) {
		c.state.Target = nil
		return false
	}
	c.state.Target = &a
	return true
}

// Drop moves the dragged task to a. A drop onto an occupied slot is refused
// and leaves the store untouched. A failed write is logged and the move
// stays in memory, so the drop still counts.
func (c *Controller) Drop(a calendar.Anchor) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Kind != Dragging {
		return false
	}
	if !c.eligibleLocked(a) {
		c.log.Debug("drop refused", "id", c.state.TaskID, "anchor", a.String())
		return false
	}
	id := c.state.TaskID
	c.state = State{}
	t, ok := c.store.Get(id)
	if !ok {
		return false
	}
	return c.mutated("move", c.store.Update(t.MoveTo(a.Time()))) == nil
}

// DragEnd clears drag state whether or not a drop happened.
func (c *Controller) DragEnd() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Kind == Dragging {
		c.state = State{}
	}
}

// Dimmed reports whether id is the task currently being dragged.
func (c *Controller) Dimmed(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Kind == Dragging && c.state.TaskID == id
}

func (c *Controller) eligibleLocked(a calendar.Anchor) bool {
	return a.Valid() && !calendar.Occupied(c.store.All(), a)
}

// MouseEnter arms the hover timer for id.
func (c *Controller) MouseEnter(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || !c.state.idle() {
		return
	}
	c.cancelHoverLocked()
	c.hoverID++
	gen := c.hoverID
	c.state = State{Kind: HoverPending, TaskID: id}
	c.hover = c.sched.AfterFunc(HoverDelay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.closed || c.hoverID != gen || c.state.Kind != HoverPending {
			return
		}
		c.hovered = id
		c.hover = nil
		c.state = State{}
	})
}

// MouseLeave cancels a pending hover for id and clears a recognised one.
func (c *Controller) MouseLeave(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Kind == HoverPending && c.state.TaskID == id {
		c.cancelHoverLocked()
	}
	if c.hovered == id {
		c.hovered = ""
	}
}

// Hovered returns the recognised hovered task id, if any.
func (c *Controller) Hovered() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hovered
}

func (c *Controller) cancelHoverLocked() {
	if c.hover != nil {
		c.hover.Stop()
		c.hover = nil
	}
	c.hoverID++
	if c.state.Kind == HoverPending {
		c.state = State{}
	}
}

// Close cancels every outstanding timer. The controller ignores hover
// gestures afterwards.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelHoverLocked()
	c.closed = true
	c.hovered = ""
	c.state = State{}
}

// Nudge adjusts id's duration by delta minutes, never below one slot.
func (c *Controller) Nudge(id string, delta int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	t, ok := c.store.Get(id)
	if !ok {
		return nil
	}
	return c.mutated("resize", c.store.Update(t.Resize(delta)))
}

// ToggleComplete flips completion for id and plays the matching cue.
func (c *Controller) ToggleComplete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	t, ok := c.store.Get(id)
	if !ok {
		return nil
	}
	t = t.Toggle()
	if err := c.mutated("toggle", c.store.Update(t)); err != nil {
		return err
	}
	if t.Completed {
		c.play(sound.Complete)
	} else {
		c.play(sound.Incomplete)
	}
	return nil
}

// AddTask is the free-form creation path. It validates t but does not check
// slot occupancy.
func (c *Controller) AddTask(t task.Task) (task.Task, error) {
	if t.ID == "" {
		t.ID = task.NewID()
	}
	if err := t.Validate(); err != nil {
		return task.Task{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.mutated("add", c.store.Add(t)); err != nil {
		return task.Task{}, err
	}
	return t, nil
}

// NextDay shifts the window one day forward.
func (c *Controller) NextDay() { c.shift(1) }

// PrevDay shifts the window one day back.
func (c *Controller) PrevDay() { c.shift(-1) }

// ResetDay returns the window to today.
func (c *Controller) ResetDay() {
	c.mu.Lock()
	c.offset = 0
	c.mu.Unlock()
}

func (c *Controller) shift(n int) {
	c.mu.Lock()
	c.offset += n
	c.mu.Unlock()
}

// Offset is the window's distance in days from today.
func (c *Controller) Offset() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.offset
}

// Window derives the visible calendar at now.
func (c *Controller) Window(now time.Time, opts ...viewmodel.Option) viewmodel.Window {
	return viewmodel.Build(c.store.All(), c.Offset(), now, opts...)
}

// mutated logs persistence failures and swallows them; the in-memory store
// already reflects the change. Programming errors are returned.
func (c *Controller) mutated(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, tasks.ErrDuplicateID) {
		return err
	}
	c.log.Error("task mutation not persisted", "op", op, "error", err)
	return nil
}

func (c *Controller) play(k sound.Kind) {
	if err := c.player.Play(k); err != nil {
		c.log.Warn("sound cue failed", "kind", k.String(), "error", err)
	}
}
