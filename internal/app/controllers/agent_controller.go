package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/marcotte/inscripto/internal/app/models/dto"
	"github.com/marcotte/inscripto/internal/app/services"
)

// AgentController exposes the conversational endpoint.
type AgentController struct {
	agentService *services.AgentService
}

// NewAgentController creates a new AgentController
func NewAgentController(agentService *services.AgentService) *AgentController {
	return &AgentController{
		agentService: agentService,
	}
}

// HandleMessage processes one student message. The HTTP status is 200 even
// when the operation failed; the envelope carries the outcome.
func (c *AgentController) HandleMessage(ctx *gin.Context) {
	var request dto.AgentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid agent request")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	response := c.agentService.Process(ctx, request.Message, request.CodePermanent)
	ctx.JSON(http.StatusOK, response)
}
