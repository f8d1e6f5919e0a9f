package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/marcotte/inscripto/internal/app/models/dto"
	"github.com/marcotte/inscripto/internal/app/services"
	"github.com/marcotte/inscripto/internal/middleware"
	"github.com/marcotte/inscripto/internal/pkg/helpers"
)

// CourseController handles catalog and schedule queries.
type CourseController struct {
	searchService *services.SearchService
}

// NewCourseController creates a new CourseController
func NewCourseController(searchService *services.SearchService) *CourseController {
	return &CourseController{
		searchService: searchService,
	}
}

// SearchCourses retrieves catalog courses matching the criteria query
// parameter, optionally restricted to one term's offerings.
func (c *CourseController) SearchCourses(ctx *gin.Context) {
	criteria := ctx.Query("criteres")
	term := ctx.Query("trimestre")

	result, err := c.searchService.Search(ctx, criteria, term)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// GetCourseBySigle retrieves a single catalog course.
func (c *CourseController) GetCourseBySigle(ctx *gin.Context) {
	sigle := ctx.Param("sigle")
	if !helpers.IsValidSigle(helpers.NormalizeSigle(sigle)) {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course code")
		errorDetail = errorDetail.WithDetails("Course codes are three letters followed by four digits, e.g. INF1120")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	course, err := c.searchService.GetCourse(ctx, sigle)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      course,
		Timestamp: time.Now(),
	})
}

// ListOfferings retrieves the course schedule of one term.
func (c *CourseController) ListOfferings(ctx *gin.Context) {
	term := ctx.Query("trimestre")
	if term == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing term")
		errorDetail = errorDetail.WithDetails("The trimestre query parameter is required, e.g. ?trimestre=Automne 2025")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	offerings, err := c.searchService.ListOfferings(ctx, term)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      offerings,
		Timestamp: time.Now(),
	})
}
