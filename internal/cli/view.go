package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of view in the TUI.
type ViewID int

const (
	ViewSelect ViewID = iota
	ViewSearch
	ViewGenerating
	ViewPreModule
	ViewLearning
	ViewResults
	ViewHub
	ViewError
	ViewForm
)

// View is the interface all TUI views implement. It extends tea.Model
// with navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment for this view
}
