package service

import (
	"context"

	"github.com/kgrc4si/ikgrcscore/internal/dto"
	"github.com/kgrc4si/ikgrcscore/internal/repository"
	"github.com/rs/zerolog/log"
)

// Result reported for every accepted submission.
const (
	FixedScore = 0.3
	FixedRank  = 3
)

// SubmissionService answers question submissions.
type SubmissionService interface {
	// RunProbe runs the database probe when question is configured for it. Failures are only logged.
	RunProbe(ctx context.Context, question string)
	Submit(ctx context.Context, question string, answerCount int) dto.SuccessResponse
}

type submissionService struct {
	probeRepo      repository.ProbeRepository
	probeQuestions map[string]struct{}
}

// NewSubmissionService creates a SubmissionService. probeQuestions names the questions that run the probe query.
func NewSubmissionService(probeRepo repository.ProbeRepository, probeQuestions []string) SubmissionService {
	set := make(map[string]struct{}, len(probeQuestions))
	for _, q := range probeQuestions {
		set[q] = struct{}{}
	}
	return &submissionService{probeRepo: probeRepo, probeQuestions: set}
}

func (s *submissionService) RunProbe(ctx context.Context, question string) {
	if _, ok := s.probeQuestions[question]; !ok || s.probeRepo == nil {
		return
	}
	rows, err := s.probeRepo.Run(ctx)
	if err != nil {
		log.Warn().Err(err).Str("question", question).Msg("Probe query failed, ignoring")
		return
	}
	log.Debug().Str("question", question).Int("rows", rows).Msg("Probe query completed")
}

// Submit always reports the fixed score and rank.
func (s *submissionService) Submit(ctx context.Context, question string, answerCount int) dto.SuccessResponse {
	log.Info().Str("question", question).Int("answerCount", answerCount).Msg("Submission accepted")
	return dto.NewSuccessResponse(dto.SuccessData{
		Score: FixedScore,
		Rank:  FixedRank,
	})
}
