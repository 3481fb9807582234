// Package datepicker implements the state behind a single, range or duo
// date picker: selection, month navigation, the day/year views and the
// timed transitions around the floating panel. It has no UI of its own;
// every command returns the Signals a host should act on.
package datepicker

import (
	"time"

	"tableflip.dev/datepick/pkg/datepicker/deferred"
	"tableflip.dev/datepick/pkg/datepicker/selection"
	"tableflip.dev/datepick/pkg/datepicker/view"
	"tableflip.dev/datepick/pkg/day"
	"tableflip.dev/datepick/pkg/datepicker/grid"
)

const (
	// DefaultSinglePlaceholder is shown when no day is selected.
	DefaultSinglePlaceholder = "Pick a date"
	// DefaultRangePlaceholder is shown when no range is in progress.
	DefaultRangePlaceholder = "Pick a date range"
)

// Options configures a Controller.
type Options struct {
	// Mode defaults to duo.
	Mode selection.Mode
	// Initial seeds the selection; its shape should match Mode.
	Initial selection.Value
	// Placeholder overrides the mode-dependent default text.
	Placeholder string
	// Resettable enables Reset. Without it Reset does nothing.
	Resettable bool
	// RangeMode starts duo in range behavior when Initial is empty.
	RangeMode bool
	// Now defaults to time.Now.
	Now func() time.Time
}

// Controller is the picker state machine.
type Controller struct {
	opts     Options
	now      func() time.Time
	modes    *selection.Modes
	queue    *deferred.Queue
	view     *view.Machine
	cursor   day.Month
	open     bool
	disposed bool
}

// New builds a controller from opts.
func New(opts Options) *Controller {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	q := deferred.NewQueue()
	c := &Controller{
		opts:  opts,
		now:   now,
		modes: selection.NewModes(opts.Mode, opts.Initial, opts.RangeMode),
		queue: q,
		view:  view.New(q),
	}
	c.cursor = c.initialCursor()
	return c
}

func (c *Controller) initialCursor() day.Month {
	switch c.modes.Sub() {
	case selection.SubRange:
		if start := c.modes.Range().Start(); !start.IsZero() {
			return start.MonthOf()
		}
	case selection.SubSingle:
		if sel := c.modes.Single().Selected(); !sel.IsZero() {
			return sel.MonthOf()
		}
	}
	return day.MonthOfTime(c.now())
}

// SelectDay commits d through the acting engine.
func (c *Controller) SelectDay(d day.Day) []Signal {
	if c.disposed {
		return nil
	}
	return c.apply(c.modes.Select(d))
}

// HoverDay previews d as the end of an in-progress range.
func (c *Controller) HoverDay(d day.Day) []Signal {
	if c.disposed {
		return nil
	}
	c.modes.Hover(d)
	return nil
}

// PreviousMonth moves the cursor back one month.
func (c *Controller) PreviousMonth() []Signal {
	c.cursor = c.cursor.Add(-1)
	return nil
}

// NextMonth moves the cursor forward one month.
func (c *Controller) NextMonth() []Signal {
	c.cursor = c.cursor.Add(1)
	return nil
}

// ToggleView flips between the day grid and the year list.
func (c *Controller) ToggleView() []Signal {
	if c.disposed {
		return nil
	}
	return scheduled(nil, c.view.Toggle(c.now()))
}

// SelectMonthYear jumps the cursor to monthIndex (0 = January) of year and
// returns to the day grid. Out of range month indexes are ignored.
func (c *Controller) SelectMonthYear(year, monthIndex int) []Signal {
	if monthIndex < 0 || monthIndex > 11 {
		return nil
	}
	c.cursor = day.Month{Year: year, Month: time.Month(monthIndex + 1)}
	c.view.ForceDays()
	return nil
}

// SetRangeMode flips the duo sub-mode. Outside duo it does nothing.
func (c *Controller) SetRangeMode(on bool) []Signal {
	if c.disposed {
		return nil
	}
	return c.apply(c.modes.SetRangeMode(on))
}

// Reset clears the acting engine when resetting is enabled.
func (c *Controller) Reset() []Signal {
	if c.disposed || !c.opts.Resettable {
		return nil
	}
	return c.apply(c.modes.Reset())
}

// Open shows the panel, canceling a pending return to the day grid.
func (c *Controller) Open() []Signal {
	if c.disposed || c.open {
		return nil
	}
	c.open = true
	c.view.PanelOpened()
	return []Signal{OpenRequested{}}
}

// Close hides the panel. Closing while the year list shows schedules the
// return to the day grid.
func (c *Controller) Close() []Signal {
	if c.disposed || !c.open {
		return nil
	}
	c.open = false
	return scheduled([]Signal{CloseRequested{}}, c.view.PanelClosed(c.now()))
}

// Fire runs a task previously handed out in a Schedule signal. Canceled or
// already-run tasks do nothing.
func (c *Controller) Fire(task deferred.Task) []Signal {
	if c.disposed {
		return nil
	}
	t, ok := c.queue.Take(task.ID)
	if !ok {
		return nil
	}
	return c.run(t)
}

// Advance runs every task due at now.
func (c *Controller) Advance(now time.Time) []Signal {
	if c.disposed {
		return nil
	}
	var out []Signal
	for _, t := range c.queue.Due(now) {
		out = append(out, c.run(t)...)
	}
	return out
}

// Dispose invalidates pending timers. The controller ignores commands that
// could emit signals afterwards.
func (c *Controller) Dispose() {
	c.queue.CancelAll()
	c.disposed = true
}

func (c *Controller) run(t deferred.Task) []Signal {
	if !c.view.Apply(t) {
		return nil
	}
	if t.Kind != deferred.KindScrollToYear {
		return nil
	}
	if _, ok := YearIndex(c.cursor.Year); !ok {
		return nil
	}
	return []Signal{ScrollToYear{Year: c.cursor.Year}}
}

func (c *Controller) apply(out selection.Outcome) []Signal {
	var signals []Signal
	if out.ModeChanged {
		signals = append(signals, ModeChanged{Mode: out.SubMode})
	}
	if out.Changed {
		signals = append(signals, ValueChanged{Value: out.Value, Restated: out.ModeChanged})
	}
	if !out.Focus.IsZero() {
		c.cursor = out.Focus.MonthOf()
	}
	if out.Close {
		signals = append(signals, c.Close()...)
	}
	return signals
}

func scheduled(signals []Signal, t deferred.Task) []Signal {
	if t.ID == 0 {
		return signals
	}
	return append(signals, Schedule{Task: t})
}

// Mode returns the overall mode.
func (c *Controller) Mode() selection.Mode { return c.modes.Mode() }

// SubMode returns the acting behavior.
func (c *Controller) SubMode() selection.SubMode { return c.modes.Sub() }

// Value returns the last committed value.
func (c *Controller) Value() selection.Value { return c.modes.Committed() }

// Today returns the current day by the controller clock.
func (c *Controller) Today() day.Day { return day.Of(c.now()) }

// Cursor returns the displayed month.
func (c *Controller) Cursor() day.Month { return c.cursor }

// View returns the visible grid.
func (c *Controller) View() view.State { return c.view.State() }

// IsOpen reports whether the panel is showing.
func (c *Controller) IsOpen() bool { return c.open }

// Resettable reports whether Reset is enabled.
func (c *Controller) Resettable() bool { return c.opts.Resettable }

// Pending returns the number of timers still waiting to fire.
func (c *Controller) Pending() int { return c.queue.Len() }

// SetPlaceholder replaces the configured placeholder; empty restores the
// mode default.
func (c *Controller) SetPlaceholder(text string) { c.opts.Placeholder = text }

// SetResettable enables or disables Reset.
func (c *Controller) SetResettable(on bool) { c.opts.Resettable = on }

// Placeholder returns the configured text or the default for the acting
// behavior.
func (c *Controller) Placeholder() string {
	if c.opts.Placeholder != "" {
		return c.opts.Placeholder
	}
	if c.modes.RangeActive() {
		return DefaultRangePlaceholder
	}
	return DefaultSinglePlaceholder
}

// Text renders the selection for the trigger.
func (c *Controller) Text() string {
	switch c.modes.Sub() {
	case selection.SubRange:
		r := c.modes.Range().Current()
		switch {
		case r.IsComplete():
			return day.Format(r.From, day.ShortDate) + " - " + day.Format(r.To, day.ShortDate)
		case !r.From.IsZero():
			return day.Format(r.From, day.ShortDate) + " - ?"
		}
	case selection.SubSingle:
		if sel := c.modes.Single().Selected(); !sel.IsZero() {
			return day.Format(sel, day.LongDate)
		}
	}
	return c.Placeholder()
}

// HasSelection reports whether Text shows a selection rather than the
// placeholder.
func (c *Controller) HasSelection() bool {
	switch c.modes.Sub() {
	case selection.SubRange:
		return !c.modes.Range().Start().IsZero()
	case selection.SubSingle:
		return !c.modes.Single().Selected().IsZero()
	}
	return false
}

// Header renders the cursor month, e.g. "March 2024".
func (c *Controller) Header() string {
	return day.Format(c.cursor.First(), day.MonthYear)
}

// Grid returns the cells of the cursor month.
func (c *Controller) Grid() []grid.Cell {
	return grid.Build(c.cursor.Year, c.cursor.Month)
}

// Marks reports how d should be drawn in the grid.
func (c *Controller) Marks(d day.Day) grid.Marks {
	m := grid.Marks{
		Selected: c.modes.IsSelected(d),
		Today:    c.Today().Same(d),
	}
	if c.modes.RangeActive() {
		rng := c.modes.Range()
		m.InRange = rng.InRange(d)
		m.RangeStart = rng.IsRangeStart(d)
		m.RangeEnd = rng.IsRangeEnd(d)
	}
	return m
}

// CurrentYear returns the catalog index of the cursor year, false when the
// cursor is outside the catalog and no year should be highlighted.
func (c *Controller) CurrentYear() (int, bool) {
	return YearIndex(c.cursor.Year)
}
