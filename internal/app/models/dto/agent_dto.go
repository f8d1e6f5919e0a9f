package dto

import "time"

// AgentRequest is the inbound payload of the conversational endpoint.
type AgentRequest struct {
	Message       string `json:"message" binding:"required" example:"Inscris-moi à INF1062 pour Automne 2025"`
	CodePermanent string `json:"code_permanent,omitempty" example:"TREJ12345678"`
}

// AgentResponse is the envelope returned to the caller for every agent
// request, successful or not.
type AgentResponse struct {
	Success   bool        `json:"success"`
	Intent    *Intent     `json:"intent,omitempty"`
	Results   interface{} `json:"results,omitempty"`
	Response  string      `json:"response"`
	Error     string      `json:"error,omitempty"`
	Timestamp string      `json:"timestamp" example:"2025-09-02T12:01:05Z"`
}

// NewAgentFailure builds the failure envelope with the generic apology the
// caller sees when an unexpected error escapes the pipeline.
func NewAgentFailure(err error, apology string) *AgentResponse {
	return &AgentResponse{
		Success:   false,
		Error:     err.Error(),
		Response:  apology,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
