package usecase

import (
	"context"
	"errors"

	"github.com/aalvaropc/ryujin/internal/domain"
	"github.com/aalvaropc/ryujin/internal/ports"
)

// CollectAnswers walks services and their questions in order, reads one line
// per question from src and stores the sanitized answer on the question.
// A read failure stops collection; answers stored so far are kept.
func CollectAnswers(ctx context.Context, services []domain.Service, src ports.AnswerSource, maxLen int) error {
	for i := range services {
		svc := &services[i]
		for j := range svc.Questions {
			if err := ctx.Err(); err != nil {
				return err
			}

			q := &svc.Questions[j]
			raw, err := src.ReadAnswer(*q)
			if err != nil {
				if errors.Is(err, domain.ErrAborted) {
					return err
				}
				return &domain.OpError{
					Op:   "answers.read",
					Kind: domain.KindIO,
					Path: svc.Name + "." + q.Variable,
					Err:  err,
				}
			}

			answer := domain.SanitizeAnswer(raw, maxLen)
			q.Answer = &answer
		}
	}
	return nil
}
