package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evandrarf/dsadojo-be/internal/lesson"
)

func intp(i int) *int { return &i }

func TestEvaluate(t *testing.T) {
	mc := lesson.Question{Type: lesson.TypeMultipleChoice, Options: []string{"a", "b", "c"}, Answer: lesson.IndexAnswer(1)}
	fill := lesson.Question{Type: lesson.TypeFillBlank, Answer: lesson.TextAnswer("Stack")}
	code := lesson.Question{Type: lesson.TypeCodeCompletion, Blanks: []string{"arr[i]"}, Answer: lesson.TextAnswer("ignored")}
	codeNoBlanks := lesson.Question{Type: lesson.TypeCodeCompletion, Answer: lesson.TextAnswer("prev")}
	drag := lesson.Question{Type: lesson.TypeDragDrop, Items: []string{"a", "b", "c"}, CorrectOrder: []int{1, 0, 2}}

	tests := []struct {
		name string
		q    lesson.Question
		sub  Submission
		want bool
	}{
		{"choice correct", mc, Submission{Choice: intp(1)}, true},
		{"choice wrong", mc, Submission{Choice: intp(2)}, false},
		{"fill trimmed case insensitive", fill, Submission{Text: "  sTaCk "}, true},
		{"fill wrong", fill, Submission{Text: "queue"}, false},
		{"code uses first blank", code, Submission{Text: "ARR[I]"}, true},
		{"code ignores answer when blanks exist", code, Submission{Text: "ignored"}, false},
		{"code falls back to answer", codeNoBlanks, Submission{Text: "prev"}, true},
		{"drag order", drag, Submission{Order: []int{1, 0, 2}}, true},
		{"drag moves", drag, Submission{Moves: []Move{{From: 1, To: 0}}}, true},
		{"drag untouched", drag, Submission{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.q, tt.sub)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_InvalidSubmissions(t *testing.T) {
	mc := lesson.Question{Type: lesson.TypeMultipleChoice, Options: []string{"a", "b"}, Answer: lesson.IndexAnswer(0)}
	fill := lesson.Question{Type: lesson.TypeFillBlank, Answer: lesson.TextAnswer("x")}
	drag := lesson.Question{Type: lesson.TypeDragDrop, Items: []string{"a", "b"}, CorrectOrder: []int{1, 0}}

	for name, tc := range map[string]struct {
		q   lesson.Question
		sub Submission
	}{
		"missing choice":    {mc, Submission{}},
		"choice too large":  {mc, Submission{Choice: intp(5)}},
		"blank text":        {fill, Submission{Text: "   "}},
		"short order":       {drag, Submission{Order: []int{0}}},
		"not a permutation": {drag, Submission{Order: []int{1, 1}}},
		"bad move":          {drag, Submission{Moves: []Move{{From: 0, To: 9}}}},
		"unknown type":      {lesson.Question{Type: "essay"}, Submission{Text: "x"}},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Evaluate(tc.q, tc.sub)
			assert.ErrorIs(t, err, ErrInvalidSubmission)
		})
	}
}
