package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelechi/studentbase/internal/app/models/dto"
	"github.com/kelechi/studentbase/internal/app/repositories/repotest"
	"github.com/kelechi/studentbase/internal/pkg/apperrors"
)

func newTestStudentService(repo *repotest.StudentRepo) *StudentService {
	return NewStudentService(repo, zerolog.Nop())
}

func validStudentRequest() *dto.RegisterStudentRequest {
	age := 21
	return &dto.RegisterStudentRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Age:       &age,
		Email:     "grace@navy.mil",
		Courses:   []string{"Math", "Art"},
	}
}

func TestRegisterStudent(t *testing.T) {
	repo := repotest.NewStudentRepo()
	svc := newTestStudentService(repo)

	student, err := svc.Register(context.Background(), validStudentRequest())
	require.NoError(t, err)

	assert.Equal(t, "grace", student.FirstName)
	assert.Equal(t, "hopper", student.LastName)
	require.Len(t, student.Courses, 2)
	assert.Equal(t, "math", student.Courses[0].Course)
	assert.Equal(t, "art", student.Courses[1].Course)

	fetched, err := svc.Get(context.Background(), student.ID)
	require.NoError(t, err)
	assert.Len(t, fetched.Courses, 2)
}

func TestRegisterStudentInvalidEmail(t *testing.T) {
	svc := newTestStudentService(repotest.NewStudentRepo())

	req := validStudentRequest()
	req.Email = "grace"

	_, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidEmail)
}

func TestRegisterStudentZeroAge(t *testing.T) {
	svc := newTestStudentService(repotest.NewStudentRepo())

	// Zero is a valid age as long as the field is present
	req := validStudentRequest()
	zero := 0
	req.Age = &zero

	student, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 0, student.Age)
}

func TestRegisterStudentAgeMissing(t *testing.T) {
	svc := newTestStudentService(repotest.NewStudentRepo())

	req := validStudentRequest()
	req.Age = nil

	_, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestRegisterStudentCoursesMissing(t *testing.T) {
	svc := newTestStudentService(repotest.NewStudentRepo())

	req := validStudentRequest()
	req.Courses = nil

	_, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrCoursesNotAList)
}

func TestRegisterStudentEmptyCoursesAllowed(t *testing.T) {
	svc := newTestStudentService(repotest.NewStudentRepo())

	req := validStudentRequest()
	req.Courses = []string{}

	student, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, student.Courses)
}

func TestRegisterStudentDuplicateEmail(t *testing.T) {
	svc := newTestStudentService(repotest.NewStudentRepo())

	_, err := svc.Register(context.Background(), validStudentRequest())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), validStudentRequest())
	assert.ErrorIs(t, err, apperrors.ErrStudentAlreadyExists)
}

func TestEditStudentOnlyAge(t *testing.T) {
	repo := repotest.NewStudentRepo()
	svc := newTestStudentService(repo)

	student, err := svc.Register(context.Background(), validStudentRequest())
	require.NoError(t, err)

	newAge := 22
	updated, err := svc.Edit(context.Background(), student.ID, &dto.EditStudentRequest{NewAge: &newAge})
	require.NoError(t, err)

	// Only age changes, everything else is untouched
	assert.Equal(t, 22, updated.Age)
	assert.Equal(t, student.FirstName, updated.FirstName)
	assert.Equal(t, student.LastName, updated.LastName)
	assert.Equal(t, student.Email, updated.Email)
	assert.Equal(t, student.Gender, updated.Gender)
}

func TestEditStudentZeroAge(t *testing.T) {
	svc := newTestStudentService(repotest.NewStudentRepo())

	student, err := svc.Register(context.Background(), validStudentRequest())
	require.NoError(t, err)

	// A present-but-zero value is applied, not treated as absent
	zero := 0
	updated, err := svc.Edit(context.Background(), student.ID, &dto.EditStudentRequest{NewAge: &zero})
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Age)
}

func TestEditStudentNotFound(t *testing.T) {
	svc := newTestStudentService(repotest.NewStudentRepo())

	newAge := 22
	_, err := svc.Edit(context.Background(), 42, &dto.EditStudentRequest{NewAge: &newAge})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestEditStudentEmailCollision(t *testing.T) {
	svc := newTestStudentService(repotest.NewStudentRepo())

	first, err := svc.Register(context.Background(), validStudentRequest())
	require.NoError(t, err)

	other := validStudentRequest()
	other.Email = "other@navy.mil"
	second, err := svc.Register(context.Background(), other)
	require.NoError(t, err)

	taken := *first.Email
	_, err = svc.Edit(context.Background(), second.ID, &dto.EditStudentRequest{NewEmail: &taken})
	assert.ErrorIs(t, err, apperrors.ErrEmailInUse)
}

func TestEditStudentKeepOwnEmail(t *testing.T) {
	svc := newTestStudentService(repotest.NewStudentRepo())

	student, err := svc.Register(context.Background(), validStudentRequest())
	require.NoError(t, err)

	// Re-supplying the student's own email is not a collision
	own := *student.Email
	_, err = svc.Edit(context.Background(), student.ID, &dto.EditStudentRequest{NewEmail: &own})
	assert.NoError(t, err)
}

func TestAddCourses(t *testing.T) {
	svc := newTestStudentService(repotest.NewStudentRepo())

	student, err := svc.Register(context.Background(), validStudentRequest())
	require.NoError(t, err)

	err = svc.AddCourses(context.Background(), student.ID, &dto.AddCoursesRequest{
		AddedCourses: []string{"Physics"},
	})
	require.NoError(t, err)

	fetched, err := svc.Get(context.Background(), student.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Courses, 3)
	assert.Equal(t, "physics", fetched.Courses[2].Course)
}

func TestAddCoursesDuplicate(t *testing.T) {
	svc := newTestStudentService(repotest.NewStudentRepo())

	student, err := svc.Register(context.Background(), validStudentRequest())
	require.NoError(t, err)

	// Matching is case-insensitive: "MATH" collides with stored "math"
	err = svc.AddCourses(context.Background(), student.ID, &dto.AddCoursesRequest{
		AddedCourses: []string{"MATH"},
	})
	assert.ErrorIs(t, err, apperrors.ErrCourseAlreadyAdded)
}

func TestAddCoursesMissingList(t *testing.T) {
	svc := newTestStudentService(repotest.NewStudentRepo())

	student, err := svc.Register(context.Background(), validStudentRequest())
	require.NoError(t, err)

	err = svc.AddCourses(context.Background(), student.ID, &dto.AddCoursesRequest{})
	assert.ErrorIs(t, err, apperrors.ErrCoursesNotAList)
}

func TestAddCoursesStudentMissing(t *testing.T) {
	svc := newTestStudentService(repotest.NewStudentRepo())

	err := svc.AddCourses(context.Background(), 42, &dto.AddCoursesRequest{
		AddedCourses: []string{"Physics"},
	})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestDeleteCourse(t *testing.T) {
	svc := newTestStudentService(repotest.NewStudentRepo())

	student, err := svc.Register(context.Background(), validStudentRequest())
	require.NoError(t, err)

	// Deletion matches case-insensitively
	err = svc.DeleteCourse(context.Background(), student.ID, "MATH")
	require.NoError(t, err)

	fetched, err := svc.Get(context.Background(), student.ID)
	require.NoError(t, err)
	assert.Len(t, fetched.Courses, 1)
}

func TestDeleteCourseNotFound(t *testing.T) {
	svc := newTestStudentService(repotest.NewStudentRepo())

	student, err := svc.Register(context.Background(), validStudentRequest())
	require.NoError(t, err)

	err = svc.DeleteCourse(context.Background(), student.ID, "chemistry")
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestDeleteStudent(t *testing.T) {
	svc := newTestStudentService(repotest.NewStudentRepo())

	student, err := svc.Register(context.Background(), validStudentRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), student.ID))

	_, err = svc.Get(context.Background(), student.ID)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestDeleteStudentNotFound(t *testing.T) {
	svc := newTestStudentService(repotest.NewStudentRepo())

	err := svc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestGetAllStudentsEmpty(t *testing.T) {
	svc := newTestStudentService(repotest.NewStudentRepo())

	students, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, students)
}
