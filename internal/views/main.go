package views

import (
	"errors"
	"io"

	"student-manager/internal/models"
	"student-manager/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	TabHome     = "Home"
	TabAdd      = "Add Student"
	TabStudents = "View Students"
	TabGrades   = "Grade Management"
	TabCourses  = "Courses"

	defaultExportName = "students.xlsx"
)

// Handlers connects view events to the controller
type Handlers struct {
	Help            func()
	AddStudent      func(components.StudentInput)
	RefreshCourses  func()
	RefreshStudents func()
	DeleteStudent   func(row int)
	ExportStudents  func(io.WriteCloser)
	FindStudent     func(id string)
	AssignGrade     func(id string, grade models.Grade)
	AddCourse       func(name string)
	RemoveCourse    func(index int)
	SelectCourse    func(name string)
}

// MainView is the tabbed main window content
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	tabs          *container.AppTabs

	home         *components.HomeTab
	studentForm  *components.StudentForm
	studentTable *components.StudentTable
	gradePanel   *components.GradePanel
	coursePanel  *components.CoursePanel
	statusBar    *components.StatusBar

	handlers Handlers
}

// NewMainView creates the main view and installs it as the window content
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.home = components.NewHomeTab()
	mv.studentForm = components.NewStudentForm()
	mv.studentTable = components.NewStudentTable()
	mv.gradePanel = components.NewGradePanel()
	mv.coursePanel = components.NewCoursePanel()
	mv.statusBar = components.NewStatusBar()
}

func (mv *MainView) buildLayout() {
	mv.tabs = container.NewAppTabs(
		container.NewTabItem(TabHome, mv.home.GetContainer()),
		container.NewTabItem(TabAdd, mv.studentForm.GetContainer()),
		container.NewTabItem(TabStudents, mv.studentTable.GetContainer()),
		container.NewTabItem(TabGrades, mv.gradePanel.GetContainer()),
		container.NewTabItem(TabCourses, mv.coursePanel.GetContainer()),
	)

	mv.mainContainer = container.NewBorder(
		nil,
		mv.statusBar.GetContainer(),
		nil,
		nil,
		mv.tabs,
	)

	mv.window.SetContent(mv.mainContainer)
}

// setupEventHandlers forwards component events to whatever Handlers are
// installed at the time of the event
func (mv *MainView) setupEventHandlers() {
	mv.home.SetHelpHandler(func() {
		if mv.handlers.Help != nil {
			mv.handlers.Help()
		}
	})

	mv.studentForm.SetAddHandler(func(input components.StudentInput) {
		if mv.handlers.AddStudent != nil {
			mv.handlers.AddStudent(input)
		}
	})
	mv.studentForm.SetRefreshCoursesHandler(func() {
		if mv.handlers.RefreshCourses != nil {
			mv.handlers.RefreshCourses()
		}
	})

	mv.studentTable.SetRefreshHandler(func() {
		if mv.handlers.RefreshStudents != nil {
			mv.handlers.RefreshStudents()
		}
	})
	mv.studentTable.SetDeleteHandler(func(row int) {
		if mv.handlers.DeleteStudent != nil {
			mv.handlers.DeleteStudent(row)
		}
	})
	mv.studentTable.SetExportHandler(mv.showExportDialog)

	mv.gradePanel.SetFindHandler(func(id string) {
		if mv.handlers.FindStudent != nil {
			mv.handlers.FindStudent(id)
		}
	})
	mv.gradePanel.SetAssignHandler(func(id string, grade models.Grade) {
		if mv.handlers.AssignGrade != nil {
			mv.handlers.AssignGrade(id, grade)
		}
	})

	mv.coursePanel.SetAddHandler(func(name string) {
		if mv.handlers.AddCourse != nil {
			mv.handlers.AddCourse(name)
		}
	})
	mv.coursePanel.SetRemoveHandler(func(index int) {
		if mv.handlers.RemoveCourse != nil {
			mv.handlers.RemoveCourse(index)
		}
	})
	mv.coursePanel.SetSelectHandler(func(name string) {
		if mv.handlers.SelectCourse != nil {
			mv.handlers.SelectCourse(name)
		}
	})
}

func (mv *MainView) showExportDialog() {
	save := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, mv.window)
			return
		}
		if writer == nil {
			return
		}
		if mv.handlers.ExportStudents != nil {
			mv.handlers.ExportStudents(writer)
			return
		}
		if err := writer.Close(); err != nil {
			dialog.ShowError(err, mv.window)
		}
	}, mv.window)
	save.SetFileName(defaultExportName)
	save.SetFilter(storage.NewExtensionFileFilter([]string{".xlsx"}))
	save.Show()
}

// SetHandlers installs the controller callbacks
func (mv *MainView) SetHandlers(handlers Handlers) {
	mv.handlers = handlers
}

// ShowStudents redraws the student table
func (mv *MainView) ShowStudents(students []models.Student) {
	mv.studentTable.SetStudents(students)
}

// ShowCourses redraws the course list and the add-student course selector
func (mv *MainView) ShowCourses(courses []string) {
	mv.coursePanel.SetCourses(courses)
	mv.studentForm.SetCourses(courses)
}

// ShowCourseDetails replaces the course detail text
func (mv *MainView) ShowCourseDetails(text string) {
	mv.coursePanel.SetDetails(text)
}

// SetStudentInfo replaces the grade tab's student line
func (mv *MainView) SetStudentInfo(text string) {
	mv.gradePanel.SetStudentInfo(text)
}

// SelectGrade preselects a grade on the grade tab
func (mv *MainView) SelectGrade(grade models.Grade) {
	mv.gradePanel.SelectGrade(grade)
}

// ClearStudentForm empties the add-student text fields
func (mv *MainView) ClearStudentForm() {
	mv.studentForm.Clear()
}

// ClearCourseEntry empties the new course field
func (mv *MainView) ClearCourseEntry() {
	mv.coursePanel.ClearEntry()
}

// UpdateStatus updates the status bar message
func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// SetCounts updates the status bar registry counts
func (mv *MainView) SetCounts(students, courses int) {
	mv.statusBar.SetCounts(students, courses)
}

// ShowInfo displays an information dialog
func (mv *MainView) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, mv.window)
}

// ShowWarning displays a titled message next to a warning icon
func (mv *MainView) ShowWarning(title, message string) {
	dialog.NewCustom(title, "OK", warningContent(message), mv.window).Show()
}

func warningContent(message string) *fyne.Container {
	return container.NewHBox(
		widget.NewIcon(theme.WarningIcon()),
		widget.NewLabel(message),
	)
}

// ShowError displays an error dialog; fyne titles every error dialog "Error"
func (mv *MainView) ShowError(title, message string) {
	dialog.ShowError(errors.New(message), mv.window)
}

// ShowConfirm displays a confirmation dialog
func (mv *MainView) ShowConfirm(title, message string, callback func(bool)) {
	dialog.ShowConfirm(title, message, callback, mv.window)
}

// SelectTab switches to the named tab
func (mv *MainView) SelectTab(name string) {
	for _, item := range mv.tabs.Items {
		if item.Text == name {
			mv.tabs.Select(item)
			return
		}
	}
}

// GetWindow returns the main window
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

// GetContainer returns the main container
func (mv *MainView) GetContainer() *fyne.Container {
	return mv.mainContainer
}

// StudentForm returns the add-student form component
func (mv *MainView) StudentForm() *components.StudentForm {
	return mv.studentForm
}

// StudentTable returns the student table component
func (mv *MainView) StudentTable() *components.StudentTable {
	return mv.studentTable
}

// GradePanel returns the grade management component
func (mv *MainView) GradePanel() *components.GradePanel {
	return mv.gradePanel
}

// CoursePanel returns the course component
func (mv *MainView) CoursePanel() *components.CoursePanel {
	return mv.coursePanel
}

// StatusBar returns the status bar component
func (mv *MainView) StatusBar() *components.StatusBar {
	return mv.statusBar
}
