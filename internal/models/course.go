package models

import (
	"errors"
	"fmt"
)

// ErrDuplicateCourse is matched by every DuplicateCourseError
var ErrDuplicateCourse = errors.New("course already exists")

// DuplicateCourseError reports an attempt to add a course name that is already registered
type DuplicateCourseError struct {
	Name string
}

func (e *DuplicateCourseError) Error() string {
	return fmt.Sprintf("course %q already exists", e.Name)
}

func (e *DuplicateCourseError) Is(target error) bool {
	return target == ErrDuplicateCourse
}

const noCourseDetails = "No details available for this course."

// DefaultCourses lists the courses every new registry starts with
var DefaultCourses = []string{
	"Computer Science 101",
	"Data Structures",
	"Web Development",
	"Database Systems",
	"Software Engineering",
}

var courseDescriptions = map[string]string{
	"Computer Science 101": "Introduction to programming concepts and problem-solving techniques.",
	"Data Structures":      "Study of data structures and algorithms including lists, stacks, queues, and trees.",
	"Web Development":      "Learn HTML, CSS, JavaScript and server-side programming.",
	"Database Systems":     "Introduction to database design, SQL, and database management systems.",
	"Software Engineering": "Principles of software design, testing, and project management.",
}

// DescribeCourse returns the detail text shown for a course name
func DescribeCourse(name string) string {
	details, ok := courseDescriptions[name]
	if !ok {
		details = noCourseDetails
	}
	return name + "\n\n" + details
}

// CourseRegistry holds unique course names in insertion order
type CourseRegistry struct {
	courses []string
}

// NewCourseRegistry creates a registry seeded with DefaultCourses
func NewCourseRegistry() *CourseRegistry {
	courses := make([]string, len(DefaultCourses))
	copy(courses, DefaultCourses)
	return &CourseRegistry{courses: courses}
}

// Add appends name unless it is already registered
func (r *CourseRegistry) Add(name string) error {
	if r.Contains(name) {
		return &DuplicateCourseError{Name: name}
	}
	r.courses = append(r.courses, name)
	return nil
}

// Remove deletes the named course
func (r *CourseRegistry) Remove(name string) bool {
	return r.RemoveAt(r.indexOf(name))
}

// RemoveAt deletes the course at index
func (r *CourseRegistry) RemoveAt(index int) bool {
	if index < 0 || index >= len(r.courses) {
		return false
	}
	r.courses = append(r.courses[:index], r.courses[index+1:]...)
	return true
}

// Contains reports whether name is registered
func (r *CourseRegistry) Contains(name string) bool {
	return r.indexOf(name) >= 0
}

// List returns a copy of the course names in order
func (r *CourseRegistry) List() []string {
	list := make([]string, len(r.courses))
	copy(list, r.courses)
	return list
}

// Len returns the number of registered courses
func (r *CourseRegistry) Len() int {
	return len(r.courses)
}

// Describe returns the detail text for name, see DescribeCourse
func (r *CourseRegistry) Describe(name string) string {
	return DescribeCourse(name)
}

func (r *CourseRegistry) indexOf(name string) int {
	for i, course := range r.courses {
		if course == name {
			return i
		}
	}
	return -1
}
