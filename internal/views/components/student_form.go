package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// StudentInput is the raw content of the add-student form
type StudentInput struct {
	ID     string
	Name   string
	Course string
	Email  string
}

// StudentForm collects the fields of a new student
type StudentForm struct {
	container     *fyne.Container
	idEntry       *widget.Entry
	nameEntry     *widget.Entry
	emailEntry    *widget.Entry
	courseSelect  *widget.Select
	refreshButton *widget.Button
	clearButton   *widget.Button
	addButton     *widget.Button

	addHandler     func(StudentInput)
	refreshHandler func()
}

func NewStudentForm() *StudentForm {
	f := &StudentForm{}
	f.createComponents()
	f.buildLayout()
	f.setupEventHandlers()
	return f
}

func (f *StudentForm) createComponents() {
	f.idEntry = widget.NewEntry()
	f.nameEntry = widget.NewEntry()
	f.emailEntry = widget.NewEntry()
	f.emailEntry.SetPlaceHolder("name@example.com")

	f.courseSelect = widget.NewSelect(nil, nil)
	f.courseSelect.PlaceHolder = "(no courses)"

	f.refreshButton = widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), nil)
	f.clearButton = widget.NewButton("Clear", nil)
	f.addButton = widget.NewButton("Add Student", nil)
	f.addButton.Importance = widget.HighImportance
}

func (f *StudentForm) buildLayout() {
	form := widget.NewForm(
		widget.NewFormItem("Student ID:", f.idEntry),
		widget.NewFormItem("Name:", f.nameEntry),
		widget.NewFormItem("Course:", container.NewBorder(nil, nil, nil, f.refreshButton, f.courseSelect)),
		widget.NewFormItem("Email:", f.emailEntry),
	)

	f.container = container.NewBorder(
		nil,
		container.NewCenter(container.NewHBox(f.clearButton, f.addButton)),
		nil,
		nil,
		container.NewPadded(form),
	)
}

func (f *StudentForm) setupEventHandlers() {
	f.clearButton.OnTapped = f.Clear

	f.addButton.OnTapped = func() {
		if f.addHandler != nil {
			f.addHandler(f.Values())
		}
	}

	f.refreshButton.OnTapped = func() {
		if f.refreshHandler != nil {
			f.refreshHandler()
		}
	}
}

// SetAddHandler sets the add student handler
func (f *StudentForm) SetAddHandler(handler func(StudentInput)) {
	f.addHandler = handler
}

// SetRefreshCoursesHandler sets the course refresh handler
func (f *StudentForm) SetRefreshCoursesHandler(handler func()) {
	f.refreshHandler = handler
}

// Values returns the current form content
func (f *StudentForm) Values() StudentInput {
	return StudentInput{
		ID:     f.idEntry.Text,
		Name:   f.nameEntry.Text,
		Course: f.courseSelect.Selected,
		Email:  f.emailEntry.Text,
	}
}

// Clear empties the text fields; the course selection is kept
func (f *StudentForm) Clear() {
	f.idEntry.SetText("")
	f.nameEntry.SetText("")
	f.emailEntry.SetText("")
}

// SetCourses replaces the course options. The current selection survives
// when still offered, otherwise the first course is selected.
func (f *StudentForm) SetCourses(courses []string) {
	options := make([]string, len(courses))
	copy(options, courses)

	current := f.courseSelect.Selected
	f.courseSelect.Options = options
	f.courseSelect.Refresh()

	for _, course := range options {
		if course == current {
			f.courseSelect.SetSelected(current)
			return
		}
	}
	if len(options) > 0 {
		f.courseSelect.SetSelected(options[0])
		return
	}
	f.courseSelect.ClearSelected()
}

// Courses returns the offered course options
func (f *StudentForm) Courses() []string {
	return f.courseSelect.Options
}

// GetContainer returns the form container
func (f *StudentForm) GetContainer() *fyne.Container {
	return f.container
}
