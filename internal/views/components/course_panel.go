package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// CoursePanel lists courses, shows details for the selection and
// offers add/remove actions
type CoursePanel struct {
	container    *fyne.Container
	list         *widget.List
	details      *widget.Label
	courseEntry  *widget.Entry
	addButton    *widget.Button
	removeButton *widget.Button

	courses  []string
	selected int

	addHandler    func(name string)
	removeHandler func(index int)
	selectHandler func(name string)
}

func NewCoursePanel() *CoursePanel {
	cp := &CoursePanel{selected: -1}
	cp.createComponents()
	cp.buildLayout()
	cp.setupEventHandlers()
	return cp
}

func (cp *CoursePanel) createComponents() {
	cp.list = widget.NewList(
		func() int {
			return len(cp.courses)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("Software Engineering")
		},
		func(id widget.ListItemID, item fyne.CanvasObject) {
			if id >= 0 && id < len(cp.courses) {
				item.(*widget.Label).SetText(cp.courses[id])
			}
		},
	)

	cp.details = widget.NewLabel("")
	cp.details.Wrapping = fyne.TextWrapWord

	cp.courseEntry = widget.NewEntry()
	cp.courseEntry.SetPlaceHolder("Course name")
	cp.addButton = widget.NewButton("Add Course", nil)
	cp.removeButton = widget.NewButton("Remove Selected Course", nil)
}

func (cp *CoursePanel) buildLayout() {
	split := container.NewHSplit(cp.list, container.NewVScroll(cp.details))
	split.Offset = 0.35

	addRow := container.NewBorder(nil, nil, widget.NewLabel("New Course:"), cp.addButton, cp.courseEntry)

	cp.container = container.NewBorder(
		nil,
		container.NewVBox(addRow, container.NewHBox(cp.removeButton)),
		nil,
		nil,
		split,
	)
}

func (cp *CoursePanel) setupEventHandlers() {
	cp.list.OnSelected = func(id widget.ListItemID) {
		cp.selected = id
		if cp.selectHandler != nil && id >= 0 && id < len(cp.courses) {
			cp.selectHandler(cp.courses[id])
		}
	}
	cp.list.OnUnselected = func(widget.ListItemID) {
		cp.selected = -1
	}

	cp.addButton.OnTapped = func() {
		if cp.addHandler != nil {
			cp.addHandler(cp.courseEntry.Text)
		}
	}
	cp.courseEntry.OnSubmitted = func(text string) {
		if cp.addHandler != nil {
			cp.addHandler(text)
		}
	}
	cp.removeButton.OnTapped = func() {
		if cp.removeHandler != nil {
			cp.removeHandler(cp.selected)
		}
	}
}

// SetAddHandler sets the add course handler
func (cp *CoursePanel) SetAddHandler(handler func(name string)) {
	cp.addHandler = handler
}

// SetRemoveHandler sets the remove handler; it receives -1 when nothing is selected
func (cp *CoursePanel) SetRemoveHandler(handler func(index int)) {
	cp.removeHandler = handler
}

// SetSelectHandler sets the course selection handler
func (cp *CoursePanel) SetSelectHandler(handler func(name string)) {
	cp.selectHandler = handler
}

// SetCourses redraws the list and drops the selection
func (cp *CoursePanel) SetCourses(courses []string) {
	cp.courses = make([]string, len(courses))
	copy(cp.courses, courses)
	cp.list.UnselectAll()
	cp.selected = -1
	cp.list.Refresh()
}

// Courses returns the displayed course names
func (cp *CoursePanel) Courses() []string {
	return cp.courses
}

// Select selects the course at index as if the user clicked it
func (cp *CoursePanel) Select(index int) {
	cp.list.Select(index)
}

// SelectedIndex returns the selected index or -1
func (cp *CoursePanel) SelectedIndex() int {
	return cp.selected
}

// SetDetails replaces the detail text
func (cp *CoursePanel) SetDetails(text string) {
	cp.details.SetText(text)
}

// Details returns the detail text
func (cp *CoursePanel) Details() string {
	return cp.details.Text
}

// ClearEntry empties the new course field
func (cp *CoursePanel) ClearEntry() {
	cp.courseEntry.SetText("")
}

// GetContainer returns the panel container
func (cp *CoursePanel) GetContainer() *fyne.Container {
	return cp.container
}
