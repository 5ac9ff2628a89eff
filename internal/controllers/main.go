package controllers

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"student-manager/internal/logger"
	"student-manager/internal/models"
	"student-manager/internal/services"
	"student-manager/internal/views"
	"student-manager/internal/views/components"
)

const component = "MainController"

const helpMessage = "For help using this application, please contact your administrator."

// View is the part of the main view the controller drives
type View interface {
	SetHandlers(handlers views.Handlers)
	ShowStudents(students []models.Student)
	ShowCourses(courses []string)
	ShowCourseDetails(text string)
	SetStudentInfo(text string)
	SelectGrade(grade models.Grade)
	ClearStudentForm()
	ClearCourseEntry()
	UpdateStatus(status string)
	SetCounts(students, courses int)
	ShowInfo(title, message string)
	ShowWarning(title, message string)
	ShowError(title, message string)
}

var _ View = (*views.MainView)(nil)

// MainController turns view events into registry operations and redraws
// the view from fresh snapshots after every mutation. All methods run on
// the UI goroutine.
type MainController struct {
	students *models.StudentRegistry
	courses  *models.CourseRegistry
	roster   *services.RosterService
	logger   logger.Logger

	mainView View

	// rows is the snapshot last drawn in the student table
	rows []models.Student
}

// NewMainController creates a new main controller
func NewMainController(
	students *models.StudentRegistry,
	courses *models.CourseRegistry,
	roster *services.RosterService,
	log logger.Logger,
) *MainController {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &MainController{
		students: students,
		courses:  courses,
		roster:   roster,
		logger:   log,
	}
}

// SetMainView associates the main view with this controller
func (mc *MainController) SetMainView(view View) {
	mc.mainView = view
	mc.setupViewEventHandlers()
}

// Start pushes the initial registry state to the view
func (mc *MainController) Start() {
	mc.refreshStudents()
	mc.refreshCourses()
	mc.updateStatus("Ready")
}

// setupViewEventHandlers connects view events to controller methods
func (mc *MainController) setupViewEventHandlers() {
	if mc.mainView == nil {
		return
	}

	mc.mainView.SetHandlers(views.Handlers{
		Help:            mc.ShowHelp,
		AddStudent:      mc.AddStudent,
		RefreshCourses:  mc.RefreshCourses,
		RefreshStudents: mc.RefreshStudents,
		DeleteStudent:   mc.DeleteStudent,
		ExportStudents:  mc.ExportStudents,
		FindStudent:     mc.FindStudent,
		AssignGrade:     mc.AssignGrade,
		AddCourse:       mc.AddCourse,
		RemoveCourse:    mc.RemoveCourse,
		SelectCourse:    mc.SelectCourse,
	})
}

// ShowHelp shows the help message
func (mc *MainController) ShowHelp() {
	mc.showInfo("Help", helpMessage)
}

// AddStudent adds a student from the form once every field is filled
func (mc *MainController) AddStudent(input components.StudentInput) {
	if input.ID == "" || input.Name == "" || input.Email == "" || input.Course == "" {
		mc.showError("Error", "Please fill in all fields")
		return
	}

	student := mc.students.Add(input.ID, input.Name, input.Course, input.Email)
	mc.logger.Info(component, "student added", map[string]interface{}{
		"id":     student.ID,
		"course": student.Course,
	})

	mc.refreshStudents()
	mc.updateStatus(fmt.Sprintf("Added %s", student.ID))
	mc.showInfo("Success", "Student added successfully")

	if mc.mainView != nil {
		mc.mainView.ClearStudentForm()
	}
}

// DeleteStudent removes the student drawn at row of the student table
func (mc *MainController) DeleteStudent(row int) {
	if row < 0 || row >= len(mc.rows) {
		mc.showError("Error", "Please select a student")
		return
	}

	id := mc.rows[row].ID
	removed := mc.students.RemoveByID(id)
	mc.logger.Info(component, "student deleted", map[string]interface{}{
		"id":      id,
		"removed": removed,
	})

	mc.refreshStudents()
	mc.updateStatus(fmt.Sprintf("Deleted %s", id))
	mc.showInfo("Success", "Student deleted")
}

// RefreshStudents redraws the student table
func (mc *MainController) RefreshStudents() {
	mc.refreshStudents()
}

// RefreshCourses redraws every course view
func (mc *MainController) RefreshCourses() {
	mc.refreshCourses()
}

// FindStudent shows the student and current grade for id
func (mc *MainController) FindStudent(id string) {
	id = strings.TrimSpace(id)
	if id == "" {
		mc.showError("Error", "Please enter a student ID")
		return
	}

	student, ok := mc.students.FindByID(id)
	if !ok {
		mc.logger.Debug(component, "student lookup missed", map[string]interface{}{"id": id})
		mc.setStudentInfo("Student: Not found")
		mc.showWarning("Not Found", "No student found with ID: "+id)
		return
	}

	mc.setStudentInfo(studentInfo(student))
	if mc.mainView != nil {
		mc.mainView.SelectGrade(student.Grade)
	}
}

// AssignGrade sets the grade of the student with id
func (mc *MainController) AssignGrade(id string, grade models.Grade) {
	id = strings.TrimSpace(id)
	if id == "" {
		mc.showError("Error", "Please enter a student ID")
		return
	}

	if !mc.students.SetGrade(id, grade) {
		mc.showError("Error", "No student found with ID: "+id)
		return
	}

	mc.logger.Info(component, "grade assigned", map[string]interface{}{
		"id":    id,
		"grade": string(grade),
	})

	mc.refreshStudents()
	if student, ok := mc.students.FindByID(id); ok {
		mc.setStudentInfo(studentInfo(student))
	}
	mc.updateStatus(fmt.Sprintf("Graded %s", id))
	mc.showInfo("Success", "Grade assigned successfully")
}

// AddCourse registers a new course and propagates the course list
func (mc *MainController) AddCourse(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}

	if err := mc.courses.Add(name); err != nil {
		if errors.Is(err, models.ErrDuplicateCourse) {
			mc.showError("Error", "Course already exists")
			return
		}
		mc.logger.Error(component, err, map[string]interface{}{"course": name})
		mc.showError("Error", err.Error())
		return
	}

	mc.logger.Info(component, "course added", map[string]interface{}{"course": name})

	if mc.mainView != nil {
		mc.mainView.ClearCourseEntry()
	}
	mc.refreshCourses()
	mc.updateStatus(fmt.Sprintf("Added course %s", name))
}

// RemoveCourse removes the course at index and propagates the course list
func (mc *MainController) RemoveCourse(index int) {
	list := mc.courses.List()
	if index < 0 || index >= len(list) {
		mc.showError("Error", "Please select a course")
		return
	}

	name := list[index]
	mc.courses.RemoveAt(index)
	mc.logger.Info(component, "course removed", map[string]interface{}{"course": name})

	mc.refreshCourses()
	if mc.mainView != nil {
		mc.mainView.ShowCourseDetails("")
	}
	mc.updateStatus(fmt.Sprintf("Removed course %s", name))
}

// SelectCourse shows the description of name
func (mc *MainController) SelectCourse(name string) {
	if mc.mainView != nil {
		mc.mainView.ShowCourseDetails(mc.courses.Describe(name))
	}
}

// ExportStudents writes the current roster to writer and closes it
func (mc *MainController) ExportStudents(writer io.WriteCloser) {
	if mc.roster == nil {
		if err := writer.Close(); err != nil {
			mc.logger.Warning(component, "export writer close failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
		mc.showError("Error", "Export is not available")
		return
	}

	if err := mc.roster.SaveRoster(writer, mc.students.Snapshot(), mc.courses.List()); err != nil {
		mc.logger.Error(component, err, map[string]interface{}{"action": "export"})
		mc.showError("Error", fmt.Sprintf("Export failed: %v", err))
		mc.updateStatus("Export failed")
		return
	}

	mc.updateStatus("Roster exported")
	mc.showInfo("Success", "Students exported")
}

// Shutdown logs the session summary; all data is discarded with the process
func (mc *MainController) Shutdown() {
	mc.logger.Info(component, "session ended", map[string]interface{}{
		"students": mc.students.Len(),
		"courses":  mc.courses.Len(),
	})
}

func (mc *MainController) refreshStudents() {
	mc.rows = mc.students.Snapshot()
	if mc.mainView == nil {
		return
	}
	mc.mainView.ShowStudents(mc.rows)
	mc.mainView.SetCounts(mc.students.Len(), mc.courses.Len())
}

func (mc *MainController) refreshCourses() {
	if mc.mainView == nil {
		return
	}
	mc.mainView.ShowCourses(mc.courses.List())
	mc.mainView.SetCounts(mc.students.Len(), mc.courses.Len())
}

func (mc *MainController) setStudentInfo(text string) {
	if mc.mainView != nil {
		mc.mainView.SetStudentInfo(text)
	}
}

func (mc *MainController) updateStatus(status string) {
	if mc.mainView != nil {
		mc.mainView.UpdateStatus(status)
	}
}

func (mc *MainController) showInfo(title, message string) {
	if mc.mainView != nil {
		mc.mainView.ShowInfo(title, message)
	}
}

func (mc *MainController) showWarning(title, message string) {
	if mc.mainView != nil {
		mc.mainView.ShowWarning(title, message)
	}
}

// showError logs and displays a user-facing failure
func (mc *MainController) showError(title, message string) {
	mc.logger.Warning(component, message, nil)
	if mc.mainView != nil {
		mc.mainView.ShowError(title, message)
	}
}

func studentInfo(s models.Student) string {
	return fmt.Sprintf("Student: %s (Current Grade: %s)", s.Name, s.Grade)
}
