// Package seed creates default data for local development.
package seed

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/kelechi/studentbase/internal/app/models"
	appRepos "github.com/kelechi/studentbase/internal/app/repositories"
	"github.com/kelechi/studentbase/internal/pkg/auth"
)

// DefaultAdminEmail is the account created for local development logins.
const DefaultAdminEmail = "admin@studentbase.dev"

const defaultAdminPassword = "Admin123!"

// CreateDefaultData creates a default admin user and a handful of sample
// students if the database is empty. Safe to run on every startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	studentRepo := appRepos.NewStudentRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	exists, err := userRepo.EmailExists(ctx, DefaultAdminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		finalErr = errors.Join(finalErr, err)
	} else if !exists {
		lgr.Info().Msg("Creating default admin user...")

		hashedPassword, err := auth.HashPassword(defaultAdminPassword)
		if err != nil {
			lgr.Error().Err(err).Msg("Error hashing admin password")
			finalErr = errors.Join(finalErr, err)
		} else {
			admin := &appModels.User{
				Email:     DefaultAdminEmail,
				Password:  hashedPassword,
				FirstName: "system",
				LastName:  "administrator",
			}
			if err := userRepo.Create(ctx, admin); err != nil {
				lgr.Error().Err(err).Msg("Error creating admin user")
				finalErr = errors.Join(finalErr, err)
			} else {
				lgr.Info().Str("userID", admin.ID).Msg("Default admin user created")
			}
		}
	} else {
		lgr.Info().Msg("Admin user already exists, skipping creation")
	}

	students, err := studentRepo.GetAll(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking existing students")
		return errors.Join(finalErr, err)
	}
	if len(students) > 0 {
		lgr.Info().Msg("Students already exist, skipping sample data")
		return finalErr
	}

	samples := []struct {
		firstName string
		lastName  string
		age       int
		email     string
		courses   []string
	}{
		{"ada", "lovelace", 28, "ada@studentbase.dev", []string{"math", "mechanics"}},
		{"alan", "turing", 24, "alan@studentbase.dev", []string{"logic", "cryptography"}},
	}

	for _, s := range samples {
		email := s.email
		student := &appModels.Student{
			FirstName: strings.ToLower(s.firstName),
			LastName:  strings.ToLower(s.lastName),
			Age:       s.age,
			Email:     &email,
		}
		if err := studentRepo.CreateWithCourses(ctx, student, s.courses); err != nil {
			lgr.Error().Err(err).Str("email", s.email).Msg("Error creating sample student")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		lgr.Info().Int64("studentID", student.ID).Msg("Sample student created")
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}
