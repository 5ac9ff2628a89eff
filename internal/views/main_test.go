package views

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-manager/internal/models"
)

func newTestView(t *testing.T) *MainView {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	w := test.NewWindow(nil)
	t.Cleanup(w.Close)
	return NewMainView(w)
}

func TestMainView_Tabs(t *testing.T) {
	mv := newTestView(t)

	require.Len(t, mv.tabs.Items, 5)
	var names []string
	for _, item := range mv.tabs.Items {
		names = append(names, item.Text)
	}
	assert.Equal(t, []string{TabHome, TabAdd, TabStudents, TabGrades, TabCourses}, names)
	assert.Equal(t, mv.GetContainer(), mv.GetWindow().Content())

	mv.SelectTab(TabCourses)
	assert.Equal(t, TabCourses, mv.tabs.Selected().Text)
}

func TestMainView_ShowCoursesUpdatesSelector(t *testing.T) {
	mv := newTestView(t)

	courses := append(append([]string{}, models.DefaultCourses...), "Compilers")
	mv.ShowCourses(courses)

	assert.Equal(t, courses, mv.CoursePanel().Courses())
	assert.Equal(t, courses, mv.StudentForm().Courses())
}

func TestMainView_ForwardsEventsToHandlers(t *testing.T) {
	mv := newTestView(t)
	mv.ShowCourses(models.DefaultCourses)

	var events []string
	mv.SetHandlers(Handlers{
		SelectCourse: func(name string) { events = append(events, "select:"+name) },
	})
	mv.CoursePanel().Select(1)

	mv.SetHandlers(Handlers{})
	mv.CoursePanel().Select(2)

	assert.Equal(t, []string{"select:Data Structures"}, events)
}

func TestMainView_DisplayMethods(t *testing.T) {
	mv := newTestView(t)

	mv.SetStudentInfo("Student: Alice (Current Grade: B)")
	mv.SelectGrade(models.GradeB)
	mv.ShowCourseDetails("details")
	mv.UpdateStatus("Added S1")
	mv.SetCounts(1, 5)

	assert.Equal(t, "Student: Alice (Current Grade: B)", mv.GradePanel().StudentInfo())
	assert.Equal(t, models.GradeB, mv.GradePanel().SelectedGrade())
	assert.Equal(t, "details", mv.CoursePanel().Details())
	assert.Equal(t, "Added S1", mv.StatusBar().GetStatus())
	assert.Equal(t, "Students: 1 | Courses: 5", mv.StatusBar().GetCounts())
}

func TestMainView_DialogsUseWindowOverlay(t *testing.T) {
	mv := newTestView(t)

	mv.ShowInfo("Success", "Student added successfully")
	assert.NotNil(t, mv.GetWindow().Canvas().Overlays().Top())
}

func TestMainView_WarningShowsIcon(t *testing.T) {
	mv := newTestView(t)

	mv.ShowWarning("Not Found", "No student found with ID: S9")
	assert.NotNil(t, mv.GetWindow().Canvas().Overlays().Top())

	content := warningContent("No student found with ID: S9")
	require.Len(t, content.Objects, 2)
	icon, ok := content.Objects[0].(*widget.Icon)
	require.True(t, ok)
	assert.Equal(t, theme.WarningIcon(), icon.Resource)
	label, ok := content.Objects[1].(*widget.Label)
	require.True(t, ok)
	assert.Equal(t, "No student found with ID: S9", label.Text)
}
