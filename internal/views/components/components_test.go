package components

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-manager/internal/models"
)

var seed = []string{"Computer Science 101", "Data Structures", "Web Development", "Database Systems", "Software Engineering"}

func TestStudentForm_AddSendsValues(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	f := NewStudentForm()
	w := test.NewWindow(f.GetContainer())
	defer w.Close()

	f.SetCourses(seed)
	assert.Equal(t, "Computer Science 101", f.Values().Course, "first course selected by default")

	var got []StudentInput
	f.SetAddHandler(func(in StudentInput) { got = append(got, in) })

	f.idEntry.SetText("S1")
	f.nameEntry.SetText("Alice")
	f.emailEntry.SetText("a@x.com")
	f.courseSelect.SetSelected("Data Structures")
	test.Tap(f.addButton)

	require.Len(t, got, 1)
	assert.Equal(t, StudentInput{ID: "S1", Name: "Alice", Course: "Data Structures", Email: "a@x.com"}, got[0])
}

func TestStudentForm_ClearKeepsCourse(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	f := NewStudentForm()
	f.SetCourses(seed)
	f.idEntry.SetText("S1")
	f.nameEntry.SetText("Alice")
	f.emailEntry.SetText("a@x.com")
	f.courseSelect.SetSelected("Web Development")

	test.Tap(f.clearButton)
	assert.Equal(t, StudentInput{Course: "Web Development"}, f.Values())
}

func TestStudentForm_SetCoursesKeepsOrResetsSelection(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	f := NewStudentForm()
	f.SetCourses(seed)
	f.courseSelect.SetSelected("Database Systems")

	f.SetCourses(append(append([]string{}, seed...), "Compilers"))
	assert.Equal(t, "Database Systems", f.Values().Course)
	assert.Equal(t, "Compilers", f.Courses()[5])

	f.SetCourses([]string{"Data Structures", "Compilers"})
	assert.Equal(t, "Data Structures", f.Values().Course)

	f.SetCourses(nil)
	assert.Equal(t, "", f.Values().Course)
	assert.Empty(t, f.Courses())
}

func TestStudentForm_RefreshButton(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	f := NewStudentForm()
	calls := 0
	f.SetRefreshCoursesHandler(func() { calls++ })
	test.Tap(f.refreshButton)
	assert.Equal(t, 1, calls)
}

func TestStudentTable_DeleteReportsSelection(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	st := NewStudentTable()
	w := test.NewWindow(st.GetContainer())
	defer w.Close()

	st.SetStudents([]models.Student{
		{ID: "S1", Name: "Alice", Course: "Data Structures", Email: "a@x.com", Grade: models.GradeNotGraded},
		{ID: "S2", Name: "Bob", Course: "Web Development", Email: "b@x.com", Grade: models.GradeA},
	})
	assert.Equal(t, 2, st.RowCount())
	assert.Equal(t, "Bob", st.cellText(1, 1))
	assert.Equal(t, "A", st.cellText(1, 4))
	assert.Equal(t, "", st.cellText(5, 0))

	var rows []int
	st.SetDeleteHandler(func(row int) { rows = append(rows, row) })

	test.Tap(st.deleteButton)
	st.SelectRow(1)
	assert.Equal(t, 1, st.SelectedRow())
	test.Tap(st.deleteButton)

	assert.Equal(t, []int{-1, 1}, rows)

	st.SetStudents(nil)
	assert.Equal(t, -1, st.SelectedRow())
}

func TestStudentTable_RefreshAndExportButtons(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	st := NewStudentTable()
	refreshed, exported := 0, 0
	st.SetRefreshHandler(func() { refreshed++ })
	st.SetExportHandler(func() { exported++ })

	test.Tap(st.refreshButton)
	test.Tap(st.exportButton)
	assert.Equal(t, 1, refreshed)
	assert.Equal(t, 1, exported)
}

func TestGradePanel(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	gp := NewGradePanel()
	assert.Equal(t, "Student: Not selected", gp.StudentInfo())
	assert.Equal(t, models.GradeA, gp.SelectedGrade())
	assert.Equal(t, models.GradeOptions(), gp.gradeSelect.Options)

	var found []string
	var assigned []models.Grade
	gp.SetFindHandler(func(id string) { found = append(found, id) })
	gp.SetAssignHandler(func(id string, g models.Grade) {
		found = append(found, id)
		assigned = append(assigned, g)
	})

	gp.idEntry.SetText("S1")
	test.Tap(gp.findButton)

	gp.SelectGrade(models.GradeIncomplete)
	test.Tap(gp.assignButton)

	gp.SelectGrade(models.Grade("A+"))
	assert.Equal(t, models.GradeIncomplete, gp.SelectedGrade(), "unknown grades are not preselected")

	assert.Equal(t, []string{"S1", "S1"}, found)
	assert.Equal(t, []models.Grade{models.GradeIncomplete}, assigned)
}

func TestCoursePanel(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	cp := NewCoursePanel()
	w := test.NewWindow(cp.GetContainer())
	defer w.Close()

	cp.SetCourses(seed)
	assert.Equal(t, seed, cp.Courses())

	var selected []string
	var removed []int
	var added []string
	cp.SetSelectHandler(func(name string) { selected = append(selected, name) })
	cp.SetRemoveHandler(func(i int) { removed = append(removed, i) })
	cp.SetAddHandler(func(name string) { added = append(added, name) })

	test.Tap(cp.removeButton)
	cp.Select(2)
	assert.Equal(t, 2, cp.SelectedIndex())
	test.Tap(cp.removeButton)

	cp.courseEntry.SetText("Compilers")
	test.Tap(cp.addButton)
	cp.ClearEntry()
	assert.Equal(t, "", cp.courseEntry.Text)

	cp.SetDetails("Web Development\n\nLearn HTML")
	assert.Equal(t, "Web Development\n\nLearn HTML", cp.Details())

	assert.Equal(t, []string{"Web Development"}, selected)
	assert.Equal(t, []int{-1, 2}, removed)
	assert.Equal(t, []string{"Compilers"}, added)

	cp.SetCourses(seed[:2])
	assert.Equal(t, -1, cp.SelectedIndex())
}

func TestHomeTabHelp(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	h := NewHomeTab()
	calls := 0
	h.SetHelpHandler(func() { calls++ })
	test.Tap(h.helpButton)
	assert.Equal(t, 1, calls)
	assert.Contains(t, h.infoLabel.Text, "Welcome to the Student Management System!")
}

func TestStatusBar(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	sb := NewStatusBar()
	assert.Equal(t, "Ready", sb.GetStatus())
	assert.Equal(t, "Students: 0 | Courses: 0", sb.GetCounts())

	sb.SetStatus("Added S1")
	sb.SetCounts(3, 6)
	assert.Equal(t, "Added S1", sb.GetStatus())
	assert.Equal(t, "Students: 3 | Courses: 6", sb.GetCounts())
}
