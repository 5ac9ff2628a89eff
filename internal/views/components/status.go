package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays the last action and registry counts
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	countsLabel *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("Ready")
	sb.countsLabel = widget.NewLabel("Students: 0 | Courses: 0")
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		sb.statusLabel,
		widget.NewSeparator(),
		sb.countsLabel,
	)
}

// SetStatus updates the main status message
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetCounts updates the registry size display
func (sb *StatusBar) SetCounts(students, courses int) {
	sb.countsLabel.SetText(fmt.Sprintf("Students: %d | Courses: %d", students, courses))
}

// GetCounts returns the registry size text
func (sb *StatusBar) GetCounts() string {
	return sb.countsLabel.Text
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
