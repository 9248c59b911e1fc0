package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kelechi/studentbase/internal/app/models/dto"
	"github.com/kelechi/studentbase/internal/app/services"
	"github.com/kelechi/studentbase/internal/middleware"
)

// StudentController handles student and course CRUD operations
type StudentController struct {
	studentService *services.StudentService
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentService: studentService,
		logger:         logger,
	}
}

// studentID parses the :id path parameter.
func studentID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewFailedResponse("invalid student id"))
		return 0, false
	}
	return id, true
}

// RegisterStudent handles student creation
// @Summary Register a new student
// @Description Creates a student record with its initial course enrollments
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.RegisterStudentRequest true "Student information"
// @Success 200 {object} dto.StatusResponse "Student created"
// @Failure 400 {object} dto.StatusResponse "Invalid email or courses not a list"
// @Failure 409 {object} dto.StatusResponse "Student already exists"
// @Security BearerAuth
// @Router /register_student [post]
func (c *StudentController) RegisterStudent(ctx *gin.Context) {
	var req dto.RegisterStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid student registration payload")
		ctx.JSON(http.StatusBadRequest, dto.NewFailedResponse("check input"))
		return
	}

	student, err := c.studentService.Register(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Student registration failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	msg := fmt.Sprintf("Successfully added student %s %s", student.FirstName, student.LastName)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(msg))
}

// EditStudentInfo handles partial student updates
// @Summary Edit student details
// @Description Replaces only the fields present in the request
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param request body dto.EditStudentRequest true "Fields to update"
// @Success 200 {object} dto.StatusResponse "Details updated"
// @Failure 404 {object} dto.StatusResponse "Student not found"
// @Failure 409 {object} dto.StatusResponse "Email already in use"
// @Security BearerAuth
// @Router /edit_student_info/{id} [put]
func (c *StudentController) EditStudentInfo(ctx *gin.Context) {
	id, ok := studentID(ctx)
	if !ok {
		return
	}

	var req dto.EditStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid student edit payload")
		ctx.JSON(http.StatusBadRequest, dto.NewFailedResponse("check input"))
		return
	}

	if _, err := c.studentService.Edit(ctx.Request.Context(), id, &req); err != nil {
		c.logger.Warn().Err(err).Int64("studentID", id).Msg("Student edit failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("details updated successfully"))
}

// AddStudentCourses handles enrollment additions
// @Summary Add courses to a student
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param request body dto.AddCoursesRequest true "Courses to add"
// @Success 200 {object} dto.StatusResponse "Courses added"
// @Failure 404 {object} dto.StatusResponse "Student not found"
// @Failure 409 {object} dto.StatusResponse "Course already added"
// @Security BearerAuth
// @Router /add_student_courses/{id} [post]
func (c *StudentController) AddStudentCourses(ctx *gin.Context) {
	id, ok := studentID(ctx)
	if !ok {
		return
	}

	var req dto.AddCoursesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid add courses payload")
		ctx.JSON(http.StatusBadRequest, dto.NewFailedResponse("check input"))
		return
	}

	if err := c.studentService.AddCourses(ctx.Request.Context(), id, &req); err != nil {
		c.logger.Warn().Err(err).Int64("studentID", id).Msg("Adding courses failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("courses added successfully"))
}

// DeleteStudentCourse handles enrollment removal
// @Summary Delete one course for a student
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Param name path string true "Course name (case-insensitive)"
// @Success 200 {object} dto.StatusResponse "Course deleted"
// @Failure 404 {object} dto.StatusResponse "Student or course not found"
// @Security BearerAuth
// @Router /delete_student_courses/{id}/{name} [delete]
func (c *StudentController) DeleteStudentCourse(ctx *gin.Context) {
	id, ok := studentID(ctx)
	if !ok {
		return
	}

	if err := c.studentService.DeleteCourse(ctx.Request.Context(), id, ctx.Param("name")); err != nil {
		c.logger.Warn().Err(err).Int64("studentID", id).Msg("Course deletion failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("course deleted successfully"))
}

// DeleteStudent handles student removal
// @Summary Delete a student and all its courses
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.StatusResponse "Student deleted"
// @Failure 404 {object} dto.StatusResponse "Student not found"
// @Security BearerAuth
// @Router /delete_student/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := studentID(ctx)
	if !ok {
		return
	}

	if err := c.studentService.Delete(ctx.Request.Context(), id); err != nil {
		c.logger.Warn().Err(err).Int64("studentID", id).Msg("Student deletion failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("student deleted successfully"))
}

// GetAllStudents lists every student with nested courses
// @Summary List all students
// @Tags students
// @Produce json
// @Success 200 {object} dto.StatusResponse{data=[]dto.StudentResponse} "Students retrieved"
// @Security BearerAuth
// @Router /get_all_students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	students, err := c.studentService.GetAll(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Listing students failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	if len(students) == 0 {
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse("no students registered"))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessDataResponse(
		"students retrieved successfully", dto.NewStudentListResponse(students)))
}

// GetStudent returns one student with nested courses
// @Summary Get one student
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.StatusResponse{data=dto.StudentResponse} "Student retrieved"
// @Failure 404 {object} dto.StatusResponse "Student not found"
// @Security BearerAuth
// @Router /get_student/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	id, ok := studentID(ctx)
	if !ok {
		return
	}

	student, err := c.studentService.Get(ctx.Request.Context(), id)
	if err != nil {
		c.logger.Warn().Err(err).Int64("studentID", id).Msg("Student lookup failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessDataResponse(
		"student retrieved successfully", dto.NewStudentResponse(student)))
}
