package ports

import "github.com/aalvaropc/ryujin/internal/domain"

// AnswerSource produces one raw line of input for a question.
// Implementations show the prompt when they are interactive.
type AnswerSource interface {
	ReadAnswer(q domain.Question) (string, error)
}
