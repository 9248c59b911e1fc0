package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kelechi/studentbase/internal/app/models"
	"github.com/kelechi/studentbase/internal/db"
	"github.com/kelechi/studentbase/internal/pkg/apperrors"
	"github.com/kelechi/studentbase/internal/pkg/dberrors"
)

// IStudentRepository defines the interface for student-related database operations
type IStudentRepository interface {
	CreateWithCourses(ctx context.Context, student *models.Student, courses []string) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
	EmailExists(ctx context.Context, email string) (bool, error)
	EmailUsedByOther(ctx context.Context, email string, excludeID int64) (bool, error)
	AddCourses(ctx context.Context, studentID int64, courses []string) error
	DeleteCourse(ctx context.Context, studentID int64, name string) error
}

// StudentRepository handles database operations for students and their courses
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// CreateWithCourses inserts a student and its initial course rows in one
// transaction; everything is rolled back if any insert fails.
func (r *StudentRepository) CreateWithCourses(ctx context.Context, student *models.Student, courses []string) error {
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO students (first_name, last_name, age, gender, email)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, date_added`,
			student.FirstName, student.LastName, student.Age, student.Gender, student.Email,
		).Scan(&student.ID, &student.DateAdded)
		if err != nil {
			return fmt.Errorf("error creating student: %w", err)
		}

		for _, name := range courses {
			var course models.Course
			err := tx.QueryRow(ctx, `
				INSERT INTO courses (course, student_id)
				VALUES ($1, $2)
				RETURNING id`,
				name, student.ID,
			).Scan(&course.ID)
			if err != nil {
				return fmt.Errorf("error creating course: %w", err)
			}

			course.Course = name
			course.StudentID = student.ID
			student.Courses = append(student.Courses, course)
		}

		return nil
	})

	if err != nil {
		student.Courses = nil
		if dberrors.IsUniqueViolation(err, "students_email_key") {
			return apperrors.ErrStudentAlreadyExists
		}
		if dberrors.IsUniqueViolation(err, "courses_student_id_course_key") {
			return apperrors.ErrCourseAlreadyAdded
		}
		return err
	}

	return nil
}

// GetByID retrieves a student with its courses
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	student := &models.Student{}
	err := r.db.QueryRow(ctx, `
		SELECT id, first_name, last_name, age, gender, email, date_added
		FROM students
		WHERE id = $1`,
		id,
	).Scan(
		&student.ID, &student.FirstName, &student.LastName, &student.Age,
		&student.Gender, &student.Email, &student.DateAdded,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	courses, err := r.coursesByStudent(ctx, id)
	if err != nil {
		return nil, err
	}
	student.Courses = courses

	return student, nil
}

// GetAll retrieves all students with their courses
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, first_name, last_name, age, gender, email, date_added
		FROM students
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	byID := make(map[int64]*models.Student)
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID, &student.FirstName, &student.LastName, &student.Age,
			&student.Gender, &student.Email, &student.DateAdded,
		); err != nil {
			return nil, err
		}
		student.Courses = []models.Course{}
		students = append(students, &student)
		byID[student.ID] = &student
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	courseRows, err := r.db.Query(ctx, `
		SELECT id, course, student_id
		FROM courses
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer courseRows.Close()

	for courseRows.Next() {
		var course models.Course
		if err := courseRows.Scan(&course.ID, &course.Course, &course.StudentID); err != nil {
			return nil, err
		}
		if student, ok := byID[course.StudentID]; ok {
			student.Courses = append(student.Courses, course)
		}
	}
	if err := courseRows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Update replaces a student's editable fields
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE students
		SET first_name = $1, last_name = $2, age = $3, gender = $4, email = $5
		WHERE id = $6`,
		student.FirstName, student.LastName, student.Age, student.Gender, student.Email, student.ID)

	if err != nil {
		if dberrors.IsUniqueViolation(err, "students_email_key") {
			return apperrors.ErrEmailInUse
		}
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete removes a student; course rows go with it via the cascading
// foreign key.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// EmailExists checks if a student with the given email already exists
func (r *StudentRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM students WHERE email = $1)`,
		email).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking student email: %w", err)
	}

	return exists, nil
}

// EmailUsedByOther checks if the email belongs to a different student
func (r *StudentRepository) EmailUsedByOther(ctx context.Context, email string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM students WHERE email = $1 AND id != $2)`,
		email, excludeID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking student email: %w", err)
	}

	return exists, nil
}

// AddCourses appends course rows for a student in one transaction.
func (r *StudentRepository) AddCourses(ctx context.Context, studentID int64, courses []string) error {
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		for _, name := range courses {
			if _, err := tx.Exec(ctx, `
				INSERT INTO courses (course, student_id)
				VALUES ($1, $2)`,
				name, studentID,
			); err != nil {
				return fmt.Errorf("error creating course: %w", err)
			}
		}
		return nil
	})

	if err != nil {
		if dberrors.IsUniqueViolation(err, "courses_student_id_course_key") {
			return apperrors.ErrCourseAlreadyAdded
		}
		return err
	}

	return nil
}

// DeleteCourse removes one named course for a student
func (r *StudentRepository) DeleteCourse(ctx context.Context, studentID int64, name string) error {
	cmdTag, err := r.db.Exec(ctx, `
		DELETE FROM courses WHERE student_id = $1 AND course = $2`,
		studentID, name)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// coursesByStudent loads the course rows owned by one student
func (r *StudentRepository) coursesByStudent(ctx context.Context, studentID int64) ([]models.Course, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, course, student_id
		FROM courses
		WHERE student_id = $1
		ORDER BY id`,
		studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := []models.Course{}
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(&course.ID, &course.Course, &course.StudentID); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}
