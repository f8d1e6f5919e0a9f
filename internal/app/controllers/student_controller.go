package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/marcotte/inscripto/internal/app/models/dto"
	"github.com/marcotte/inscripto/internal/app/services"
	"github.com/marcotte/inscripto/internal/middleware"
	"github.com/marcotte/inscripto/internal/pkg/apperrors"
)

// StudentController handles student record queries.
type StudentController struct {
	contextService *services.ContextService
}

// NewStudentController creates a new StudentController
func NewStudentController(contextService *services.ContextService) *StudentController {
	return &StudentController{
		contextService: contextService,
	}
}

// ListStudents retrieves all student records.
func (c *StudentController) ListStudents(ctx *gin.Context) {
	students, err := c.contextService.ListStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      students,
		Timestamp: time.Now(),
	})
}

// GetStudent retrieves a student record by permanent code.
func (c *StudentController) GetStudent(ctx *gin.Context) {
	student, err := c.contextService.GetStudent(ctx, ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// GetEnrollments retrieves the active enrollments and credit total of a
// student.
func (c *StudentController) GetEnrollments(ctx *gin.Context) {
	studentCtx, err := c.contextService.Resolve(ctx, ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if studentCtx == nil {
		middleware.HandleAPIError(ctx, apperrors.ErrStudentNotFound)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      studentCtx,
		Timestamp: time.Now(),
	})
}
