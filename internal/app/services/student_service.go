package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kelechi/studentbase/internal/app/models"
	"github.com/kelechi/studentbase/internal/app/models/dto"
	"github.com/kelechi/studentbase/internal/app/repositories"
	"github.com/kelechi/studentbase/internal/pkg/apperrors"
	"github.com/kelechi/studentbase/internal/pkg/validation"
)

// StudentService handles student and course mutations and queries
type StudentService struct {
	studentRepo repositories.IStudentRepository
	logger      zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo repositories.IStudentRepository, logger zerolog.Logger) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// Register validates and persists a new student together with its
// initial courses; all rows are written in one transaction.
func (s *StudentService) Register(ctx context.Context, req *dto.RegisterStudentRequest) (*models.Student, error) {
	if !validation.IsValidEmail(req.Email) {
		return nil, apperrors.ErrInvalidEmail
	}

	if req.Age == nil {
		return nil, apperrors.ErrValidationFailed
	}

	if req.Courses == nil {
		return nil, apperrors.ErrCoursesNotAList
	}

	exists, err := s.studentRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking student email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrStudentAlreadyExists
	}

	email := req.Email
	student := &models.Student{
		FirstName: strings.ToLower(req.FirstName),
		LastName:  strings.ToLower(req.LastName),
		Age:       *req.Age,
		Gender:    req.Gender,
		Email:     &email,
	}

	if err := s.studentRepo.CreateWithCourses(ctx, student, lowercaseAll(req.Courses)); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentID", student.ID).Int("courses", len(student.Courses)).Msg("Student registered")
	return student, nil
}

// Edit applies a partial update. Only fields present in the request are
// replaced; a supplied email must not belong to another student.
func (s *StudentService) Edit(ctx context.Context, id int64, req *dto.EditStudentRequest) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.NewEmail != nil {
		inUse, err := s.studentRepo.EmailUsedByOther(ctx, *req.NewEmail, id)
		if err != nil {
			return nil, fmt.Errorf("error checking student email: %w", err)
		}
		if inUse {
			return nil, apperrors.ErrEmailInUse
		}
		student.Email = req.NewEmail
	}

	if req.NewFirstName != nil {
		student.FirstName = *req.NewFirstName
	}
	if req.NewLastName != nil {
		student.LastName = *req.NewLastName
	}
	if req.NewAge != nil {
		student.Age = *req.NewAge
	}
	if req.NewGender != nil {
		student.Gender = req.NewGender
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// AddCourses appends enrollments to an existing student. A course the
// student already has (compared lowercased) is rejected as a conflict.
func (s *StudentService) AddCourses(ctx context.Context, id int64, req *dto.AddCoursesRequest) error {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if req.AddedCourses == nil {
		return apperrors.ErrCoursesNotAList
	}

	existing := make(map[string]bool, len(student.Courses))
	for _, course := range student.Courses {
		existing[course.Course] = true
	}

	added := lowercaseAll(req.AddedCourses)
	for _, name := range added {
		if existing[name] {
			return apperrors.ErrCourseAlreadyAdded
		}
	}

	if err := s.studentRepo.AddCourses(ctx, id, added); err != nil {
		return err
	}

	s.logger.Info().Int64("studentID", id).Int("courses", len(added)).Msg("Courses added")
	return nil
}

// DeleteCourse removes one named enrollment, matched case-insensitively.
func (s *StudentService) DeleteCourse(ctx context.Context, id int64, name string) error {
	if _, err := s.studentRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return s.studentRepo.DeleteCourse(ctx, id, strings.ToLower(name))
}

// Delete removes a student; owned courses are cascade-deleted.
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("studentID", id).Msg("Student deleted")
	return nil
}

// GetAll returns every student with nested courses.
func (s *StudentService) GetAll(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.GetAll(ctx)
}

// Get returns one student with nested courses.
func (s *StudentService) Get(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

func lowercaseAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}
