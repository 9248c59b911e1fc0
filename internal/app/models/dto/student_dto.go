package dto

import (
	"time"

	"github.com/kelechi/studentbase/internal/app/models"
)

// RegisterStudentRequest represents a student creation request. Courses
// must be present as a JSON array; a nil slice means the key was absent
// (or null), which is rejected. Age is a pointer so the key must be
// present but zero is still a valid value.
type RegisterStudentRequest struct {
	FirstName string   `json:"first_name" binding:"required"`
	LastName  string   `json:"last_name" binding:"required"`
	Age       *int     `json:"age" binding:"required"`
	Gender    *string  `json:"gender"`
	Email     string   `json:"email" binding:"required"`
	Courses   []string `json:"courses"`
}

// EditStudentRequest represents a partial student update. Pointer fields
// track presence: a nil field is left unchanged, so falsy-but-valid
// values like age 0 are still expressible.
type EditStudentRequest struct {
	NewFirstName *string `json:"new_first_name"`
	NewLastName  *string `json:"new_last_name"`
	NewAge       *int    `json:"new_age"`
	NewGender    *string `json:"new_gender"`
	NewEmail     *string `json:"new_email"`
}

// AddCoursesRequest represents an enrollment addition request.
type AddCoursesRequest struct {
	AddedCourses []string `json:"added_courses"`
}

// CourseResponse serializes one enrollment.
type CourseResponse struct {
	ID     int64  `json:"id"`
	Course string `json:"course"`
}

// StudentResponse serializes a student with nested courses.
type StudentResponse struct {
	ID        int64            `json:"id"`
	FirstName string           `json:"first_name"`
	LastName  string           `json:"last_name"`
	Email     *string          `json:"email"`
	Age       int              `json:"age"`
	Gender    *string          `json:"gender"`
	DateAdded time.Time        `json:"date_added"`
	Courses   []CourseResponse `json:"courses"`
}

// NewStudentResponse maps a student row onto the wire shape.
func NewStudentResponse(student *models.Student) StudentResponse {
	courses := make([]CourseResponse, 0, len(student.Courses))
	for _, course := range student.Courses {
		courses = append(courses, CourseResponse{
			ID:     course.ID,
			Course: course.Course,
		})
	}

	return StudentResponse{
		ID:        student.ID,
		FirstName: student.FirstName,
		LastName:  student.LastName,
		Email:     student.Email,
		Age:       student.Age,
		Gender:    student.Gender,
		DateAdded: student.DateAdded,
		Courses:   courses,
	}
}

// NewStudentListResponse maps a list of students.
func NewStudentListResponse(students []*models.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(students))
	for _, student := range students {
		out = append(out, NewStudentResponse(student))
	}
	return out
}
