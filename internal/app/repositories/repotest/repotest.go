// Package repotest provides in-memory repository implementations for
// tests. They enforce the same uniqueness rules as the database-backed
// repositories and return the same sentinel errors.
package repotest

import (
	"context"
	"fmt"
	"time"

	"github.com/kelechi/studentbase/internal/app/models"
	"github.com/kelechi/studentbase/internal/pkg/apperrors"
)

// UserRepo is an in-memory stand-in for the user repository.
type UserRepo struct {
	Users  map[string]*models.User // keyed by id
	nextID int
}

// NewUserRepo creates an empty in-memory user repository.
func NewUserRepo() *UserRepo {
	return &UserRepo{Users: map[string]*models.User{}}
}

func (r *UserRepo) Create(_ context.Context, user *models.User) error {
	if exists, _ := r.EmailExists(context.Background(), user.Email); exists {
		return apperrors.ErrUserAlreadyExists
	}
	r.nextID++
	user.ID = fmt.Sprintf("user-%d", r.nextID)
	user.DateJoined = time.Now()
	stored := *user
	r.Users[user.ID] = &stored
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	if user, ok := r.Users[id]; ok {
		return user, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.Users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *UserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(context.Background(), email)
	return err == nil, nil
}

// StudentRepo is an in-memory stand-in for the student repository.
type StudentRepo struct {
	Students     map[int64]*models.Student
	nextID       int64
	nextCourseID int64
}

// NewStudentRepo creates an empty in-memory student repository.
func NewStudentRepo() *StudentRepo {
	return &StudentRepo{Students: map[int64]*models.Student{}}
}

func (r *StudentRepo) CreateWithCourses(_ context.Context, student *models.Student, courses []string) error {
	if student.Email != nil {
		if exists, _ := r.EmailExists(context.Background(), *student.Email); exists {
			return apperrors.ErrStudentAlreadyExists
		}
	}
	r.nextID++
	student.ID = r.nextID
	student.DateAdded = time.Now()
	for _, name := range courses {
		r.nextCourseID++
		student.Courses = append(student.Courses, models.Course{
			ID:        r.nextCourseID,
			Course:    name,
			StudentID: student.ID,
		})
	}
	stored := *student
	r.Students[student.ID] = &stored
	return nil
}

func (r *StudentRepo) GetByID(_ context.Context, id int64) (*models.Student, error) {
	if student, ok := r.Students[id]; ok {
		copied := *student
		return &copied, nil
	}
	return nil, apperrors.ErrStudentNotFound
}

func (r *StudentRepo) GetAll(_ context.Context) ([]*models.Student, error) {
	var out []*models.Student
	for _, student := range r.Students {
		copied := *student
		out = append(out, &copied)
	}
	return out, nil
}

func (r *StudentRepo) Update(_ context.Context, student *models.Student) error {
	existing, ok := r.Students[student.ID]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	updated := *student
	updated.Courses = existing.Courses
	r.Students[student.ID] = &updated
	return nil
}

func (r *StudentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.Students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(r.Students, id)
	return nil
}

func (r *StudentRepo) EmailExists(_ context.Context, email string) (bool, error) {
	return r.EmailUsedByOther(context.Background(), email, 0)
}

func (r *StudentRepo) EmailUsedByOther(_ context.Context, email string, excludeID int64) (bool, error) {
	for _, student := range r.Students {
		if student.ID != excludeID && student.Email != nil && *student.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *StudentRepo) AddCourses(_ context.Context, studentID int64, courses []string) error {
	student, ok := r.Students[studentID]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	for _, name := range courses {
		r.nextCourseID++
		student.Courses = append(student.Courses, models.Course{
			ID:        r.nextCourseID,
			Course:    name,
			StudentID: studentID,
		})
	}
	return nil
}

func (r *StudentRepo) DeleteCourse(_ context.Context, studentID int64, name string) error {
	student, ok := r.Students[studentID]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	for i, course := range student.Courses {
		if course.Course == name {
			student.Courses = append(student.Courses[:i], student.Courses[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrCourseNotFound
}
