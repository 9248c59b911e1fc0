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
	"github.com/kelechi/studentbase/internal/pkg/auth"
	"github.com/kelechi/studentbase/internal/pkg/validation"
)

// AuthService handles user registration, login and identity resolution
type AuthService struct {
	userRepo   repositories.IUserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.IUserRepository, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// RegisterUser validates and persists a new user. Names are stored
// lowercased; the password is stored only as a bcrypt hash.
func (s *AuthService) RegisterUser(ctx context.Context, req *dto.RegisterUserRequest) error {
	if !validation.IsValidEmail(req.Email) {
		return apperrors.ErrInvalidEmail
	}

	if !validation.IsValidPassword(req.Password) {
		return apperrors.ErrInvalidPassword
	}

	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return apperrors.ErrUserAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		FirstName: strings.ToLower(req.FirstName),
		LastName:  strings.ToLower(req.LastName),
		Email:     req.Email,
		Gender:    req.Gender,
		Password:  hashedPassword,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return err
	}

	s.logger.Info().Str("userID", user.ID).Str("email", user.Email).Msg("User registered")
	return nil
}

// Login verifies credentials and issues a bearer token carrying the
// user's identifier as subject claim. Unknown email and wrong password
// are deliberately indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenData, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}

	return &dto.TokenData{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}

// ResolveUser looks up the user behind a token subject. A token whose
// subject no longer matches a user row is rejected upstream with 401.
func (s *AuthService) ResolveUser(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}
