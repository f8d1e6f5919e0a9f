package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/marcotte/inscripto/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	agentController *controllers.AgentController,
	courseController *controllers.CourseController,
	studentController *controllers.StudentController,
	healthController *controllers.HealthController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Conversational endpoint
	agent := v1.Group("/agent")
	{
		agent.POST("/message", agentController.HandleMessage)
	}

	// Catalog and schedule queries
	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.SearchCourses)
		courses.GET("/:sigle", courseController.GetCourseBySigle)
	}
	v1.GET("/offerings", courseController.ListOfferings)

	// Student record queries
	students := v1.Group("/students")
	{
		students.GET("", studentController.ListStudents)
		students.GET("/:code", studentController.GetStudent)
		students.GET("/:code/enrollments", studentController.GetEnrollments)
	}

	// Health check endpoint
	v1.GET("/health", healthController.GetHealth)
}
