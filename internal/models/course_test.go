package models

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seededCourses = []string{
	"Computer Science 101",
	"Data Structures",
	"Web Development",
	"Database Systems",
	"Software Engineering",
}

func TestCourseRegistry_Seed(t *testing.T) {
	r := NewCourseRegistry()
	assert.Equal(t, seededCourses, r.List())
	assert.Equal(t, 5, r.Len())
}

func TestCourseRegistry_SeedIsPerInstance(t *testing.T) {
	a := NewCourseRegistry()
	require.True(t, a.Remove("Data Structures"))

	b := NewCourseRegistry()
	assert.Equal(t, seededCourses, b.List())
	assert.Equal(t, seededCourses, DefaultCourses)
}

func TestCourseRegistry_AddDuplicate(t *testing.T) {
	r := NewCourseRegistry()

	err := r.Add("Data Structures")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateCourse))

	var dup *DuplicateCourseError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "Data Structures", dup.Name)
	assert.Equal(t, seededCourses, r.List())
}

func TestCourseRegistry_AddIsCaseSensitive(t *testing.T) {
	r := NewCourseRegistry()
	require.NoError(t, r.Add("data structures"))
	require.NoError(t, r.Add("Operating Systems"))

	list := r.List()
	assert.Equal(t, append(append([]string{}, seededCourses...), "data structures", "Operating Systems"), list)
	assert.True(t, r.Contains("Operating Systems"))
}

func TestCourseRegistry_Remove(t *testing.T) {
	r := NewCourseRegistry()

	assert.True(t, r.Remove("Web Development"))
	assert.False(t, r.Contains("Web Development"))
	assert.False(t, r.Remove("Web Development"))

	assert.True(t, r.RemoveAt(0))
	assert.Equal(t, []string{"Data Structures", "Database Systems", "Software Engineering"}, r.List())

	assert.False(t, r.RemoveAt(-1))
	assert.False(t, r.RemoveAt(3))
	assert.Equal(t, 3, r.Len())
}

func TestCourseRegistry_ListIsACopy(t *testing.T) {
	r := NewCourseRegistry()
	list := r.List()
	list[0] = "Tampered"

	assert.Equal(t, seededCourses, r.List())
}

func TestDescribeCourse(t *testing.T) {
	r := NewCourseRegistry()

	web := r.Describe("Web Development")
	assert.True(t, strings.HasPrefix(web, "Web Development\n\n"))
	assert.Contains(t, web, "Learn HTML, CSS, JavaScript")

	unknown := r.Describe("Unknown Course")
	assert.Equal(t, "Unknown Course\n\nNo details available for this course.", unknown)
	assert.True(t, strings.HasSuffix(unknown, "No details available for this course."))

	for _, name := range seededCourses {
		assert.NotContains(t, DescribeCourse(name), "No details available", name)
	}
}

func TestDescribeCourse_UserAddedCourse(t *testing.T) {
	r := NewCourseRegistry()
	require.NoError(t, r.Add("Compilers"))
	assert.Equal(t, "Compilers\n\nNo details available for this course.", r.Describe("Compilers"))
}
