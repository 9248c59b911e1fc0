package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kelechi/studentbase/internal/app/controllers"
	"github.com/kelechi/studentbase/internal/app/models/dto"
	"github.com/kelechi/studentbase/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Public auth routes
	v1.POST("/register_user", authController.RegisterUser)
	v1.POST("/login", authController.Login)

	// Student routes require a resolved identity
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/register_student", studentController.RegisterStudent)
		authenticated.PUT("/edit_student_info/:id", studentController.EditStudentInfo)
		authenticated.POST("/add_student_courses/:id", studentController.AddStudentCourses)
		authenticated.DELETE("/delete_student_courses/:id/:name", studentController.DeleteStudentCourse)
		authenticated.DELETE("/delete_student/:id", studentController.DeleteStudent)
		authenticated.GET("/get_all_students", studentController.GetAllStudents)
		authenticated.GET("/get_student/:id", studentController.GetStudent)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewSuccessResponse("ok"))
	})
}
