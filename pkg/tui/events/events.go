package events

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/datepick/pkg/datepicker/deferred"
	"tableflip.dev/datepick/pkg/datepicker/selection"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// DateChangeMsg is emitted when a picker commits a new value. Restated
// marks the re-announcement that follows a duo mode flip; no new day was
// picked.
type DateChangeMsg struct {
	Component ComponentID
	Value     selection.Value
	Restated  bool
}

// Describe renders the change in a human-friendly format for logs.
func (m DateChangeMsg) Describe() string {
	return fmt.Sprintf(`component:%q kind:%q value:%q restated:%t`, m.Component, m.Value.Kind(), m.Value, m.Restated)
}

// DateChangeCmd wraps DateChangeMsg in a tea.Cmd.
func DateChangeCmd(component ComponentID, value selection.Value) tea.Cmd {
	return func() tea.Msg {
		return DateChangeMsg{Component: component, Value: value}
	}
}

// DateRestateCmd wraps a restated DateChangeMsg in a tea.Cmd.
func DateRestateCmd(component ComponentID, value selection.Value) tea.Cmd {
	return func() tea.Msg {
		return DateChangeMsg{Component: component, Value: value, Restated: true}
	}
}

// DateModeMsg is emitted when a duo picker flips between single and range.
type DateModeMsg struct {
	Component ComponentID
	Mode      selection.SubMode
}

// Describe renders the mode change for logs.
func (m DateModeMsg) Describe() string {
	return fmt.Sprintf(`component:%q mode:%q`, m.Component, m.Mode)
}

// DateModeCmd wraps DateModeMsg in a tea.Cmd.
func DateModeCmd(component ComponentID, mode selection.SubMode) tea.Cmd {
	return func() tea.Msg {
		return DateModeMsg{Component: component, Mode: mode}
	}
}

// PanelState is the requested visibility of a floating panel.
type PanelState string

const (
	// PanelOpen asks the host to show the panel.
	PanelOpen PanelState = "open"
	// PanelClosed asks the host to hide the panel.
	PanelClosed PanelState = "closed"
)

// PanelMsg asks the host to show or hide a component's floating panel.
type PanelMsg struct {
	Component ComponentID
	State     PanelState
}

// Describe renders the panel request for logs.
func (m PanelMsg) Describe() string {
	return fmt.Sprintf(`component:%q panel:%q`, m.Component, m.State)
}

// PanelCmd wraps PanelMsg in a tea.Cmd.
func PanelCmd(component ComponentID, state PanelState) tea.Cmd {
	return func() tea.Msg {
		return PanelMsg{Component: component, State: state}
	}
}

// DeferredMsg delivers a scheduled task back to the component that asked
// for it.
type DeferredMsg struct {
	Component ComponentID
	Task      deferred.Task
}

func (m DeferredMsg) Describe() string {
	return fmt.Sprintf(`component:%q task:%d kind:%q`, m.Component, m.Task.ID, m.Task.Kind)
}

// DeferredCmd fires a DeferredMsg once the task delay elapses.
func DeferredCmd(component ComponentID, task deferred.Task) tea.Cmd {
	return tea.Tick(task.Delay, func(time.Time) tea.Msg {
		return DeferredMsg{Component: component, Task: task}
	})
}

// ConfigChangeMsg announces that the config file changed on disk.
type ConfigChangeMsg struct {
	Path        string
	Placeholder string
	Resettable  bool
}

// Describe renders the reload for logs.
func (m ConfigChangeMsg) Describe() string {
	return fmt.Sprintf(`path:%q placeholder:%q reset:%t`, m.Path, m.Placeholder, m.Resettable)
}

// FocusMsg indicates a component just gained focus.
type FocusMsg struct {
	Component ComponentID
}

// Describe implements the logging helper.
func (m FocusMsg) Describe() string {
	return fmt.Sprintf(`component:%q state:"focus"`, m.Component)
}

// BlurMsg indicates a component just lost focus.
type BlurMsg struct {
	Component ComponentID
}

// Describe implements the logging helper.
func (m BlurMsg) Describe() string {
	return fmt.Sprintf(`component:%q state:"blur"`, m.Component)
}

// FocusCmd wraps a FocusMsg in a tea.Cmd helper.
func FocusCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return FocusMsg{Component: component}
	}
}

// BlurCmd wraps a BlurMsg in a tea.Cmd helper.
func BlurCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return BlurMsg{Component: component}
	}
}

// DebugMsg captures optional diagnostic notes emitted by components.
type DebugMsg struct {
	Component ComponentID
	Context   string
	Detail    string
}

// Describe renders the debug message in a human-readable format.
func (m DebugMsg) Describe() string {
	return fmt.Sprintf(`component:%q context:%q detail:%q`, m.Component, m.Context, m.Detail)
}

// DebugCmd wraps DebugMsg creation in a tea.Cmd helper.
func DebugCmd(component ComponentID, context, detail string) tea.Cmd {
	return func() tea.Msg {
		return DebugMsg{Component: component, Context: context, Detail: detail}
	}
}

// CommandSubmitMsg carries the text entered in a command bar.
type CommandSubmitMsg struct {
	Component ComponentID
	Value     string
}

// Describe renders the submission for logs.
func (m CommandSubmitMsg) Describe() string {
	return fmt.Sprintf(`component:%q value:%q`, m.Component, m.Value)
}

// CommandSubmitCmd wraps CommandSubmitMsg in a tea.Cmd.
func CommandSubmitCmd(component ComponentID, value string) tea.Cmd {
	return func() tea.Msg {
		return CommandSubmitMsg{Component: component, Value: value}
	}
}

// CommandCancelMsg reports that a command bar was dismissed without input.
type CommandCancelMsg struct {
	Component ComponentID
}

// Describe renders the cancellation for logs.
func (m CommandCancelMsg) Describe() string {
	return fmt.Sprintf(`component:%q state:"cancel"`, m.Component)
}

// CommandCancelCmd wraps CommandCancelMsg in a tea.Cmd.
func CommandCancelCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return CommandCancelMsg{Component: component}
	}
}

// Source returns the component behind msg, when it has one.
func Source(msg tea.Msg) (ComponentID, bool) {
	switch v := msg.(type) {
	case DateChangeMsg:
		return v.Component, true
	case DateModeMsg:
		return v.Component, true
	case PanelMsg:
		return v.Component, true
	case DeferredMsg:
		return v.Component, true
	case FocusMsg:
		return v.Component, true
	case BlurMsg:
		return v.Component, true
	case DebugMsg:
		return v.Component, true
	case CommandSubmitMsg:
		return v.Component, true
	case CommandCancelMsg:
		return v.Component, true
	default:
		return "", false
	}
}
