package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"student-manager/internal/models"
)

const noStudentSelected = "Student: Not selected"

// GradePanel looks up a student by id and assigns a grade
type GradePanel struct {
	container    *fyne.Container
	idEntry      *widget.Entry
	gradeSelect  *widget.Select
	infoLabel    *widget.Label
	findButton   *widget.Button
	assignButton *widget.Button

	findHandler   func(id string)
	assignHandler func(id string, grade models.Grade)
}

func NewGradePanel() *GradePanel {
	gp := &GradePanel{}
	gp.createComponents()
	gp.buildLayout()
	gp.setupEventHandlers()
	return gp
}

func (gp *GradePanel) createComponents() {
	gp.idEntry = widget.NewEntry()
	gp.idEntry.SetPlaceHolder("Student ID")

	gp.gradeSelect = widget.NewSelect(models.GradeOptions(), nil)
	gp.gradeSelect.SetSelected(string(models.GradeA))

	gp.infoLabel = widget.NewLabel(noStudentSelected)
	gp.findButton = widget.NewButton("Find Student", nil)
	gp.assignButton = widget.NewButton("Assign Grade", nil)
	gp.assignButton.Importance = widget.HighImportance
}

func (gp *GradePanel) buildLayout() {
	form := widget.NewForm(
		widget.NewFormItem("Enter Student ID:", gp.idEntry),
		widget.NewFormItem("Select Grade:", gp.gradeSelect),
	)

	gp.container = container.NewVBox(
		container.NewPadded(form),
		container.NewBorder(nil, nil, nil, gp.findButton, gp.infoLabel),
		container.NewCenter(gp.assignButton),
	)
}

func (gp *GradePanel) setupEventHandlers() {
	gp.findButton.OnTapped = func() {
		if gp.findHandler != nil {
			gp.findHandler(gp.idEntry.Text)
		}
	}
	gp.assignButton.OnTapped = func() {
		if gp.assignHandler != nil {
			gp.assignHandler(gp.idEntry.Text, models.Grade(gp.gradeSelect.Selected))
		}
	}
}

// SetFindHandler sets the find student handler
func (gp *GradePanel) SetFindHandler(handler func(id string)) {
	gp.findHandler = handler
}

// SetAssignHandler sets the assign grade handler
func (gp *GradePanel) SetAssignHandler(handler func(id string, grade models.Grade)) {
	gp.assignHandler = handler
}

// SetStudentInfo replaces the student info line
func (gp *GradePanel) SetStudentInfo(text string) {
	gp.infoLabel.SetText(text)
}

// StudentInfo returns the student info line
func (gp *GradePanel) StudentInfo() string {
	return gp.infoLabel.Text
}

// SelectGrade preselects grade when it is one of the offered options
func (gp *GradePanel) SelectGrade(grade models.Grade) {
	if grade.IsKnown() {
		gp.gradeSelect.SetSelected(string(grade))
	}
}

// SelectedGrade returns the grade currently chosen
func (gp *GradePanel) SelectedGrade() models.Grade {
	return models.Grade(gp.gradeSelect.Selected)
}

// GetContainer returns the panel container
func (gp *GradePanel) GetContainer() *fyne.Container {
	return gp.container
}
