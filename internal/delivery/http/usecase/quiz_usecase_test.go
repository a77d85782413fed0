package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/evandrarf/dsadojo-be/internal/delivery/http/entity"
	"github.com/evandrarf/dsadojo-be/internal/delivery/http/repository/repotest"
	"github.com/evandrarf/dsadojo-be/internal/pkg/events"
	"github.com/evandrarf/dsadojo-be/internal/pkg/llm"
	"github.com/evandrarf/dsadojo-be/internal/player"
	"github.com/evandrarf/dsadojo-be/internal/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type quizFixture struct {
	users     *repotest.Users
	progress  *repotest.Progress
	sessions  *repotest.Sessions
	publisher *recordingPublisher
	uc        QuizUsecase
}

func newQuizFixture(t *testing.T, tutor llm.Provider) *quizFixture {
	t.Helper()
	f := &quizFixture{
		users:     repotest.NewUsers(),
		progress:  repotest.NewProgress(),
		sessions:  repotest.NewSessions(),
		publisher: &recordingPublisher{},
	}
	seedProfile(t, f.users, "u1", nil)
	seedProfile(t, f.users, "u2", nil)
	f.uc = NewQuizUsecase(QuizConfig{
		Catalog:   testCatalog(t),
		Sessions:  f.sessions,
		Users:     f.users,
		Progress:  f.progress,
		Tutor:     tutor,
		Publisher: f.publisher,
		Log:       testLogger(),
		Now:       fixedNow,
	})
	return f
}

func choice(i int) quiz.Submission { return quiz.Submission{Choice: &i} }

func (f *quizFixture) profile(t *testing.T, id string) player.Profile {
	t.Helper()
	p, err := profileStore{users: f.users}.load(nil, id, false)
	require.NoError(t, err)
	return p
}

func TestQuiz_CompleteLessonRewardsOnce(t *testing.T) {
	f := newQuizFixture(t, nil)
	ctx := context.Background()

	res, err := f.uc.Start(ctx, "u1", entity.StartQuizRequest{CategoryID: "array", LessonID: "array-easy-python"})
	require.NoError(t, err)
	id := res.SessionID
	assert.Equal(t, 2, res.View.Total)

	for i := 0; i < 2; i++ {
		res, err = f.uc.Answer(ctx, "u1", id, choice(0))
		require.NoError(t, err)
		require.NotNil(t, res.View.Check)
		assert.True(t, res.View.Check.Correct)
		assert.Nil(t, res.HeartsLeft)

		res, err = f.uc.Next(ctx, "u1", id)
		require.NoError(t, err)
	}
	require.NotNil(t, res.View.Result)
	assert.Equal(t, quiz.StateCompleted, res.View.State)
	assert.Equal(t, 50, res.View.Result.XP)

	_, err = f.uc.Next(ctx, "u1", id)
	assert.ErrorIs(t, err, quiz.ErrSessionCompleted)

	p := f.profile(t, "u1")
	assert.Equal(t, 100, p.XP, "lesson XP plus first steps")
	assert.Equal(t, 1, p.Crowns)
	assert.True(t, p.HasAchievement(player.FirstStepsID))

	lp, err := f.progress.FindLessonProgress(nil, "u1", "array-easy-python")
	require.NoError(t, err)
	assert.True(t, lp.Completed)
	assert.Equal(t, 1, lp.CrownLevel)
	assert.Equal(t, 1, lp.Completions)

	activity, err := f.progress.FindActivitySince(nil, "u1", "2025-03-10")
	require.NoError(t, err)
	require.Len(t, activity, 1)
	assert.Equal(t, 1, activity[0].Count)
	assert.Equal(t, 100, activity[0].XP)

	assert.Equal(t, []string{events.TypeLessonCompleted, events.TypeAchievementUnlocked}, f.publisher.types())
}

func TestQuiz_RepeatCompletionRaisesCrown(t *testing.T) {
	f := newQuizFixture(t, nil)
	ctx := context.Background()

	for run := 0; run < 2; run++ {
		res, err := f.uc.Start(ctx, "u1", entity.StartQuizRequest{CategoryID: "array", LessonID: "array-easy-python"})
		require.NoError(t, err)
		for i := 0; i < 2; i++ {
			_, err = f.uc.Answer(ctx, "u1", res.SessionID, choice(0))
			require.NoError(t, err)
			_, err = f.uc.Next(ctx, "u1", res.SessionID)
			require.NoError(t, err)
		}
	}

	lp, err := f.progress.FindLessonProgress(nil, "u1", "array-easy-python")
	require.NoError(t, err)
	assert.Equal(t, 2, lp.CrownLevel)
	assert.Equal(t, 2, lp.Completions)

	p := f.profile(t, "u1")
	assert.Equal(t, 150, p.XP)
	assert.Equal(t, 1, p.Crowns, "only the first completion earns a profile crown")
}

func TestQuiz_WrongAnswerSpendsHeart(t *testing.T) {
	f := newQuizFixture(t, nil)
	ctx := context.Background()

	res, err := f.uc.Start(ctx, "u1", entity.StartQuizRequest{CategoryID: "array", LessonID: "array-easy-python"})
	require.NoError(t, err)

	res, err = f.uc.Answer(ctx, "u1", res.SessionID, choice(1))
	require.NoError(t, err)
	assert.False(t, res.View.Check.Correct)
	require.NotNil(t, res.HeartsLeft)
	assert.Equal(t, player.DefaultHearts-1, *res.HeartsLeft)
	assert.Equal(t, player.DefaultHearts-1, f.profile(t, "u1").Hearts)

	_, err = f.uc.Next(ctx, "u1", res.SessionID)
	assert.ErrorIs(t, err, quiz.ErrLessonIncomplete)
	assert.Equal(t, 0, f.profile(t, "u1").XP)

	res, err = f.uc.Retry(ctx, "u1", res.SessionID)
	require.NoError(t, err)
	assert.Equal(t, quiz.StateAnswering, res.View.State)
	assert.Equal(t, 1, res.View.Mistakes)
}

func TestQuiz_NoHeartsStillAnswers(t *testing.T) {
	f := newQuizFixture(t, nil)
	seedProfile(t, f.users, "empty", func(p player.Profile) player.Profile {
		p.Hearts = 0
		return p
	})
	ctx := context.Background()

	res, err := f.uc.Start(ctx, "empty", entity.StartQuizRequest{CategoryID: "array", LessonID: "array-easy-python"})
	require.NoError(t, err)
	res, err = f.uc.Answer(ctx, "empty", res.SessionID, choice(1))
	require.NoError(t, err)
	require.NotNil(t, res.HeartsLeft)
	assert.Equal(t, 0, *res.HeartsLeft)
}

func TestQuiz_ForeignSessionIsNotFound(t *testing.T) {
	f := newQuizFixture(t, nil)
	ctx := context.Background()

	res, err := f.uc.Start(ctx, "u1", entity.StartQuizRequest{CategoryID: "array", LessonID: "array-easy-python"})
	require.NoError(t, err)

	_, err = f.uc.Get(ctx, "u2", res.SessionID)
	assert.ErrorIs(t, err, ErrQuizNotFound)
	_, err = f.uc.Answer(ctx, "u2", res.SessionID, choice(0))
	assert.ErrorIs(t, err, ErrQuizNotFound)
	_, err = f.uc.Get(ctx, "u1", "missing")
	assert.ErrorIs(t, err, ErrQuizNotFound)
}

func TestQuiz_StartUsesPreferredLanguage(t *testing.T) {
	f := newQuizFixture(t, nil)
	seedProfile(t, f.users, "javadev", func(p player.Profile) player.Profile {
		p, _ = p.SetPreferredLanguage("java")
		return p
	})
	ctx := context.Background()

	_, err := f.uc.Start(ctx, "javadev", entity.StartQuizRequest{CategoryID: "array", LessonID: "array-easy-python"})
	assert.Error(t, err)

	res, err := f.uc.Start(ctx, "javadev", entity.StartQuizRequest{CategoryID: "array", LessonID: "array-easy-java"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.View.Total)
}

func TestQuiz_ExplainRequiresCheck(t *testing.T) {
	f := newQuizFixture(t, llm.NewMockProvider())
	ctx := context.Background()

	res, err := f.uc.Start(ctx, "u1", entity.StartQuizRequest{CategoryID: "array", LessonID: "array-easy-python"})
	require.NoError(t, err)

	_, err = f.uc.Explain(ctx, "u1", res.SessionID, "why?")
	assert.ErrorIs(t, err, ErrExplainBeforeCheck)
}

func TestQuiz_ExplainUsesTutor(t *testing.T) {
	tutor := llm.NewMockProvider(llm.MockReply{Text: "Index 0 holds the answer."})
	f := newQuizFixture(t, tutor)
	ctx := context.Background()

	res, err := f.uc.Start(ctx, "u1", entity.StartQuizRequest{CategoryID: "array", LessonID: "array-easy-python"})
	require.NoError(t, err)
	_, err = f.uc.Answer(ctx, "u1", res.SessionID, choice(1))
	require.NoError(t, err)

	out, err := f.uc.Explain(ctx, "u1", res.SessionID, "why is it not the second?")
	require.NoError(t, err)
	assert.Equal(t, "mock", out.Source)
	assert.Equal(t, "Index 0 holds the answer.", out.Response)

	require.Equal(t, 1, tutor.CallCount())
	sent := tutor.Calls[0]
	require.Len(t, sent, 2)
	assert.Equal(t, llm.RoleSystem, sent[0].Role)
	assert.Contains(t, sent[0].Content, "Correct answer: right")
	assert.Contains(t, sent[0].Content, "was incorrect")
	assert.Equal(t, "why is it not the second?", sent[1].Content)

	history, err := f.uc.TutorHistory(ctx, "u1", res.SessionID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, llm.RoleUser, history[0].Role)
	assert.Equal(t, llm.RoleAssistant, history[1].Role)
}

func TestQuiz_ExplainFallsBackToStatic(t *testing.T) {
	tutor := llm.NewMockProvider(llm.MockReply{Err: errors.New("quota exceeded")})
	f := newQuizFixture(t, tutor)
	ctx := context.Background()

	res, err := f.uc.Start(ctx, "u1", entity.StartQuizRequest{CategoryID: "array", LessonID: "array-easy-python"})
	require.NoError(t, err)
	_, err = f.uc.Answer(ctx, "u1", res.SessionID, choice(0))
	require.NoError(t, err)

	out, err := f.uc.Explain(ctx, "u1", res.SessionID, "")
	require.NoError(t, err)
	assert.Equal(t, TutorSourceStatic, out.Source)
	assert.Equal(t, "The first option is right.", out.Response)
}

func TestQuiz_ExplainWithoutTutor(t *testing.T) {
	f := newQuizFixture(t, nil)
	ctx := context.Background()

	res, err := f.uc.Start(ctx, "u1", entity.StartQuizRequest{CategoryID: "array", LessonID: "array-easy-python"})
	require.NoError(t, err)
	_, err = f.uc.Answer(ctx, "u1", res.SessionID, choice(0))
	require.NoError(t, err)

	out, err := f.uc.Explain(ctx, "u1", res.SessionID, "")
	require.NoError(t, err)
	assert.Equal(t, TutorSourceStatic, out.Source)
}
