package quiz

import (
	"errors"
	"fmt"
	"strings"

	"github.com/evandrarf/dsadojo-be/internal/lesson"
)

var ErrInvalidSubmission = errors.New("invalid submission")

// Move is one drag gesture of a drag-drop answer.
type Move struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Submission is a learner answer. Which field is read depends on the
// question type: Choice for multiple choice, Text for fill-blank and
// code-completion, Order or Moves for drag-drop.
type Submission struct {
	Choice *int   `json:"choice,omitempty"`
	Text   string `json:"text,omitempty"`
	Order  []int  `json:"order,omitempty"`
	Moves  []Move `json:"moves,omitempty"`
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// TextKey is the expected text of a typed answer. Code completion checks the
// first blank and falls back to the correct answer.
func TextKey(q lesson.Question) string {
	if q.Type == lesson.TypeCodeCompletion && len(q.Blanks) > 0 {
		return q.Blanks[0]
	}
	return q.Answer.String()
}

// Evaluate checks a submission against a non drag-drop question.
func Evaluate(q lesson.Question, s Submission) (bool, error) {
	switch q.Type {
	case lesson.TypeMultipleChoice:
		if s.Choice == nil {
			return false, fmt.Errorf("%w: choice is required", ErrInvalidSubmission)
		}
		if *s.Choice < 0 || *s.Choice >= len(q.Options) {
			return false, fmt.Errorf("%w: choice %d out of range", ErrInvalidSubmission, *s.Choice)
		}
		return q.Answer.HasIndex() && *q.Answer.Index == *s.Choice, nil
	case lesson.TypeFillBlank, lesson.TypeCodeCompletion:
		if strings.TrimSpace(s.Text) == "" {
			return false, fmt.Errorf("%w: text is required", ErrInvalidSubmission)
		}
		key := normalize(TextKey(q))
		return key != "" && normalize(s.Text) == key, nil
	case lesson.TypeDragDrop:
		o := NewOrdering(len(q.Items))
		if err := Arrange(o, s); err != nil {
			return false, err
		}
		return o.Check(q.CorrectOrder), nil
	}
	return false, fmt.Errorf("%w: unknown question type %q", ErrInvalidSubmission, q.Type)
}

// Arrange applies a drag-drop submission to o. A full order replaces the
// arrangement; moves are replayed on top of it.
func Arrange(o *Ordering, s Submission) error {
	if s.Order != nil {
		if len(s.Order) != o.Len() {
			return fmt.Errorf("%w: order has %d items, want %d", ErrInvalidSubmission, len(s.Order), o.Len())
		}
		restored, err := OrderingFrom(s.Order)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSubmission, err)
		}
		*o = *restored
	}
	for _, m := range s.Moves {
		if err := o.Move(m.From, m.To); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSubmission, err)
		}
	}
	return nil
}
