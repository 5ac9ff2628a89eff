package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const welcomeText = `Welcome to the Student Management System!

This application helps you manage student information efficiently.

Features:
- Add new students
- View student records
- Manage grades
- View course information

Use the tabs above to navigate between different functions.`

// HomeTab shows the welcome text and a help button
type HomeTab struct {
	container   *fyne.Container
	titleLabel  *widget.Label
	infoLabel   *widget.Label
	helpButton  *widget.Button
	helpHandler func()
}

func NewHomeTab() *HomeTab {
	h := &HomeTab{}
	h.createComponents()
	h.buildLayout()
	h.setupEventHandlers()
	return h
}

func (h *HomeTab) createComponents() {
	h.titleLabel = widget.NewLabelWithStyle("Student Management System", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	h.infoLabel = widget.NewLabel(welcomeText)
	h.infoLabel.Wrapping = fyne.TextWrapWord

	h.helpButton = widget.NewButton("Help", nil)
}

func (h *HomeTab) buildLayout() {
	h.container = container.NewBorder(
		h.titleLabel,
		container.NewCenter(h.helpButton),
		nil,
		nil,
		container.NewVScroll(h.infoLabel),
	)
}

func (h *HomeTab) setupEventHandlers() {
	h.helpButton.OnTapped = func() {
		if h.helpHandler != nil {
			h.helpHandler()
		}
	}
}

// SetHelpHandler sets the help button handler
func (h *HomeTab) SetHelpHandler(handler func()) {
	h.helpHandler = handler
}

// GetContainer returns the home tab container
func (h *HomeTab) GetContainer() *fyne.Container {
	return h.container
}
