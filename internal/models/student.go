package models

// Grade is the letter or status recorded against a student
type Grade string

const (
	GradeA          Grade = "A"
	GradeB          Grade = "B"
	GradeC          Grade = "C"
	GradeD          Grade = "D"
	GradeF          Grade = "F"
	GradeIncomplete Grade = "Incomplete"
	GradeNotGraded  Grade = "Not Graded"
)

// Grades returns the selectable grades in display order
func Grades() []Grade {
	return []Grade{GradeA, GradeB, GradeC, GradeD, GradeF, GradeIncomplete, GradeNotGraded}
}

// GradeOptions returns Grades as plain strings for selector widgets
func GradeOptions() []string {
	grades := Grades()
	options := make([]string, len(grades))
	for i, g := range grades {
		options[i] = string(g)
	}
	return options
}

// IsKnown reports whether g is one of the selectable grades
func (g Grade) IsKnown() bool {
	for _, known := range Grades() {
		if g == known {
			return true
		}
	}
	return false
}

// Student is a single student record
type Student struct {
	ID     string
	Name   string
	Course string
	Email  string
	Grade  Grade
}

// StudentRegistry holds student records in insertion order.
//
// Ids are not required to be unique. Lookups, removals and grade updates
// act on the first record whose id matches.
type StudentRegistry struct {
	students []Student
}

// NewStudentRegistry creates an empty student registry
func NewStudentRegistry() *StudentRegistry {
	return &StudentRegistry{
		students: make([]Student, 0),
	}
}

// Add appends a new ungraded student and returns it
func (r *StudentRegistry) Add(id, name, course, email string) Student {
	student := Student{
		ID:     id,
		Name:   name,
		Course: course,
		Email:  email,
		Grade:  GradeNotGraded,
	}
	r.students = append(r.students, student)
	return student
}

// FindByID returns the first student with the given id
func (r *StudentRegistry) FindByID(id string) (Student, bool) {
	i := r.indexOf(id)
	if i < 0 {
		return Student{}, false
	}
	return r.students[i], true
}

// RemoveByID removes the first student with the given id
func (r *StudentRegistry) RemoveByID(id string) bool {
	i := r.indexOf(id)
	if i < 0 {
		return false
	}
	r.students = append(r.students[:i], r.students[i+1:]...)
	return true
}

// SetGrade overwrites the grade of the first student with the given id.
// The grade is stored as given.
func (r *StudentRegistry) SetGrade(id string, grade Grade) bool {
	i := r.indexOf(id)
	if i < 0 {
		return false
	}
	r.students[i].Grade = grade
	return true
}

// Snapshot returns a copy of all students in registry order
func (r *StudentRegistry) Snapshot() []Student {
	snapshot := make([]Student, len(r.students))
	copy(snapshot, r.students)
	return snapshot
}

// Len returns the number of stored students
func (r *StudentRegistry) Len() int {
	return len(r.students)
}

func (r *StudentRegistry) indexOf(id string) int {
	for i := range r.students {
		if r.students[i].ID == id {
			return i
		}
	}
	return -1
}
