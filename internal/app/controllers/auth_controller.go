// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kelechi/studentbase/internal/app/models/dto"
	"github.com/kelechi/studentbase/internal/app/services"
	"github.com/kelechi/studentbase/internal/middleware"
)

// AuthController handles authentication related operations
type AuthController struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// RegisterUser handles user registration
// @Summary Register a new user
// @Description Creates an account allowed to administer student records
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterUserRequest true "User registration information"
// @Success 200 {object} dto.StatusResponse "Registration successful"
// @Failure 400 {object} dto.StatusResponse "Invalid email or password format"
// @Failure 409 {object} dto.StatusResponse "User already exists"
// @Router /register_user [post]
func (c *AuthController) RegisterUser(ctx *gin.Context) {
	var req dto.RegisterUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration payload")
		ctx.JSON(http.StatusBadRequest, dto.NewFailedResponse("check input"))
		return
	}

	if err := c.authService.RegisterUser(ctx.Request.Context(), &req); err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("User registration failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("reg successful"))
}

// Login handles user login
// @Summary User login
// @Description Verifies credentials and returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.StatusResponse{data=dto.TokenData} "Login successful"
// @Failure 400 {object} dto.StatusResponse "Malformed request body"
// @Failure 401 {object} dto.StatusResponse "Unknown email or wrong password"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login payload")
		ctx.JSON(http.StatusBadRequest, dto.NewFailedResponse("check inputs"))
		return
	}

	token, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("email", req.Email).Msg("User logged in")
	ctx.JSON(http.StatusOK, dto.NewSuccessDataResponse("login success", token))
}
