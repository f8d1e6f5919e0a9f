package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/marcotte/inscripto/internal/app/models/dto"
	"github.com/marcotte/inscripto/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// NLUService is the language-model collaborator: it extracts a typed intent
// from a free-text message and, optionally, phrases the structured results as
// a short reply.
type NLUService interface {
	InferIntent(ctx context.Context, message string) (*dto.Intent, error)
	GenerateReply(ctx context.Context, intent *dto.Intent, results interface{}, studentCtx *dto.StudentContext) (string, error)
}

// operation pairs an executable handler with its template renderer. The
// dispatch table maps every known action to one, so dispatch cannot hit an
// unhandled default case.
type operation struct {
	execute func(ctx context.Context, params dto.IntentParameters, studentCtx *dto.StudentContext) (interface{}, error)
	format  func(result interface{}, studentCtx *dto.StudentContext) string
}

// AgentService is the top-level entry point of the inscription agent:
// resolve the intent, resolve the student context, dispatch to the operation
// handler, and render the reply. Every failure is converted into a graceful
// envelope; callers never see a raw error.
type AgentService struct {
	nlu      NLUService
	contexts *ContextService
	ops      map[dto.Action]operation
	logger   zerolog.Logger
}

// NewAgentService creates a new agent service instance and builds the
// action dispatch table.
func NewAgentService(
	nlu NLUService,
	contexts *ContextService,
	registrations *RegistrationService,
	withdrawals *WithdrawalService,
	searches *SearchService,
	recommendations *RecommendationService,
	logger zerolog.Logger,
) *AgentService {
	formatter := NewFormatter()

	s := &AgentService{
		nlu:      nlu,
		contexts: contexts,
		logger:   logger,
	}

	s.ops = map[dto.Action]operation{
		dto.ActionRegister: {
			execute: func(ctx context.Context, p dto.IntentParameters, sc *dto.StudentContext) (interface{}, error) {
				return registrations.Register(ctx, p, sc)
			},
			format: func(result interface{}, _ *dto.StudentContext) string {
				batch, _ := result.(*dto.BatchResult)
				return formatter.FormatRegistration(batch)
			},
		},
		dto.ActionWithdraw: {
			execute: func(ctx context.Context, p dto.IntentParameters, sc *dto.StudentContext) (interface{}, error) {
				return withdrawals.Withdraw(ctx, p, sc)
			},
			format: func(result interface{}, _ *dto.StudentContext) string {
				batch, _ := result.(*dto.BatchResult)
				return formatter.FormatWithdrawal(batch)
			},
		},
		dto.ActionSearch: {
			execute: func(ctx context.Context, p dto.IntentParameters, _ *dto.StudentContext) (interface{}, error) {
				return searches.Search(ctx, p.SearchCriteria, p.Term)
			},
			format: func(result interface{}, _ *dto.StudentContext) string {
				search, _ := result.(*dto.SearchResult)
				return formatter.FormatSearch(search)
			},
		},
		dto.ActionRecommend: {
			execute: func(ctx context.Context, p dto.IntentParameters, sc *dto.StudentContext) (interface{}, error) {
				return recommendations.Recommend(ctx, p.CourseCount, sc)
			},
			format: func(result interface{}, _ *dto.StudentContext) string {
				rec, _ := result.(*dto.RecommendationResult)
				return formatter.FormatRecommendation(rec)
			},
		},
		dto.ActionViewEnrollments: {
			execute: func(_ context.Context, _ dto.IntentParameters, sc *dto.StudentContext) (interface{}, error) {
				if sc == nil {
					return nil, apperrors.ErrNoStudentContext
				}
				return sc, nil
			},
			format: func(_ interface{}, sc *dto.StudentContext) string {
				return formatter.FormatEnrollments(sc)
			},
		},
		dto.ActionStudentInfo: {
			execute: func(_ context.Context, _ dto.IntentParameters, sc *dto.StudentContext) (interface{}, error) {
				if sc == nil {
					return nil, apperrors.ErrNoStudentContext
				}
				return sc, nil
			},
			format: func(_ interface{}, sc *dto.StudentContext) string {
				return formatter.FormatStudentInfo(sc)
			},
		},
	}

	return s
}

// Process handles one student message end to end and always returns an
// envelope: success with intent, results and a reply, or failure with the
// generic apology.
func (s *AgentService) Process(ctx context.Context, message, codePermanent string) *dto.AgentResponse {
	intent, err := s.nlu.InferIntent(ctx, message)
	if err != nil {
		s.logger.Error().Err(err).Msg("Intent inference failed")
		return dto.NewAgentFailure(fmt.Errorf("%w: %v", apperrors.ErrCollaborator, err), ApologySentence)
	}

	// The caller-supplied identity wins over one the model extracted from
	// the message text.
	if codePermanent == "" {
		codePermanent = intent.Parameters.CodePermanent
	}

	studentCtx, err := s.contexts.Resolve(ctx, codePermanent)
	if err != nil {
		s.logger.Error().Err(err).Str("codePermanent", codePermanent).Msg("Context resolution failed")
		return dto.NewAgentFailure(err, ApologySentence)
	}

	op, ok := s.ops[intent.Action]
	if !ok {
		s.logger.Warn().Str("action", string(intent.Action)).Msg("Unknown action from NLU")
		response := dto.NewAgentFailure(
			fmt.Errorf("%w: %s", apperrors.ErrUnknownAction, intent.Action),
			"Je n'ai pas compris votre demande. Pouvez-vous la reformuler?")
		response.Intent = intent
		return response
	}

	result, err := op.execute(ctx, intent.Parameters, studentCtx)
	if err != nil {
		s.logger.Warn().Err(err).Str("action", string(intent.Action)).Msg("Operation failed")
		apology := ApologySentence
		if errors.Is(err, apperrors.ErrNoStudentContext) {
			apology = NoContextSentence
		}
		response := dto.NewAgentFailure(err, apology)
		response.Intent = intent
		return response
	}

	return &dto.AgentResponse{
		Success:   true,
		Intent:    intent,
		Results:   result,
		Response:  s.render(ctx, op, intent, result, studentCtx),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// render asks the collaborator for a phrased reply and falls back to the
// template renderer when synthesis fails.
func (s *AgentService) render(ctx context.Context, op operation, intent *dto.Intent, result interface{}, studentCtx *dto.StudentContext) string {
	reply, err := s.nlu.GenerateReply(ctx, intent, result, studentCtx)
	if err == nil && reply != "" {
		return reply
	}
	if err != nil {
		s.logger.Warn().Err(err).Msg("Reply synthesis failed, using template renderer")
	}

	if text := op.format(result, studentCtx); text != "" {
		return text
	}
	return FallbackSentence
}
