package models

import "time"

// Student is a record being administered. Names are stored lowercased;
// email is optional but unique when present. A student owns its courses,
// which are cascade-deleted with it.
type Student struct {
	ID        int64
	FirstName string
	LastName  string
	Age       int
	Gender    *string
	Email     *string
	DateAdded time.Time
	Courses   []Course
}

// Course is an enrollment belonging to exactly one student. Course names
// are stored lowercased and are unique per student.
type Course struct {
	ID        int64
	Course    string
	StudentID int64
}
