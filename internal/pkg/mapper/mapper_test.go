package mapper

import (
	"testing"
	"time"

	dbEntity "github.com/evandrarf/dsadojo-be/internal/entity"
	"github.com/evandrarf/dsadojo-be/internal/lesson"
	"github.com/evandrarf/dsadojo-be/internal/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionRoundTrip_DefaultBank(t *testing.T) {
	bank, err := lesson.DefaultBank()
	require.NoError(t, err)

	for _, q := range bank.Questions {
		row, err := ConvertToQuestionEntity(q, false, 1)
		require.NoError(t, err)
		back, err := ConvertToQuestion(row)
		require.NoError(t, err)
		assert.Equal(t, q, back, q.ID)
	}
}

func TestConvertToQuestionEntity_Topic(t *testing.T) {
	row, err := ConvertToQuestionEntity(lesson.Question{
		ID:             "linked-list-medium-1",
		Type:           lesson.TypeFillBlank,
		Answer:         lesson.TextAnswer("head"),
		ImportLanguage: lesson.LanguagePython,
	}, false, 1)
	require.NoError(t, err)
	assert.Equal(t, "linked-list", row.Topic)
	assert.JSONEq(t, `"head"`, string(row.CorrectAnswer))

	row, err = ConvertToQuestionEntity(lesson.Question{ID: "fundamentals-easy-1", Answer: lesson.IndexAnswer(0)}, true, 1)
	require.NoError(t, err)
	assert.Equal(t, lesson.FundamentalsTopic, row.Topic)
	assert.True(t, row.Fundamentals)
}

func TestConvertToBank_SplitsFundamentals(t *testing.T) {
	a, err := ConvertToQuestionEntity(lesson.Question{ID: "stack-easy-1", Answer: lesson.IndexAnswer(1), ImportLanguage: lesson.LanguagePython}, false, 1)
	require.NoError(t, err)
	b, err := ConvertToQuestionEntity(lesson.Question{ID: "fundamentals-hard-1", Answer: lesson.OrderAnswer(1, 0)}, true, 1)
	require.NoError(t, err)

	bank, err := ConvertToBank([]dbEntity.Question{*a, *b})
	require.NoError(t, err)
	assert.Len(t, bank.Questions, 1)
	assert.Len(t, bank.Fundamentals, 1)
	assert.Equal(t, []int{1, 0}, bank.Fundamentals[0].Answer.Order)
}

func TestConvertToBank_KeepsBankOrder(t *testing.T) {
	var rows []dbEntity.Question
	for i, id := range []string{"array-easy-2", "array-easy-10", "array-easy-1"} {
		row, err := ConvertToQuestionEntity(lesson.Question{ID: id, Answer: lesson.IndexAnswer(0), ImportLanguage: lesson.LanguagePython}, false, 1)
		require.NoError(t, err)
		row.Position = []int{1, 2, 0}[i]
		rows = append(rows, *row)
	}

	bank, err := ConvertToBank(rows)
	require.NoError(t, err)
	ids := make([]string, 0, len(bank.Questions))
	for _, q := range bank.Questions {
		ids = append(ids, q.ID)
	}
	assert.Equal(t, []string{"array-easy-1", "array-easy-2", "array-easy-10"}, ids)
	assert.Equal(t, "array-easy-2", rows[0].QuestionID, "input is not reordered")
}

func TestProfileRoundTrip(t *testing.T) {
	joined := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	p := player.NewProfile("u-1", "ada", "ada@example.com", joined).
		AddXP(120).
		AddAchievement(player.FirstSteps(joined)).
		RecordLessonCompletion(lesson.LanguageJava, 50, true)

	row, err := ConvertToProfileEntity(p)
	require.NoError(t, err)
	ach := ConvertToAchievementEntity(p.ID, p.Achievements[0])

	back, err := ConvertToProfile(row, []dbEntity.UserAchievement{*ach})
	require.NoError(t, err)
	assert.Equal(t, p, back)
}
