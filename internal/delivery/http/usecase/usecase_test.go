package usecase

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/evandrarf/dsadojo-be/internal/delivery/http/repository/repotest"
	"github.com/evandrarf/dsadojo-be/internal/lesson"
	"github.com/evandrarf/dsadojo-be/internal/pkg/events"
	"github.com/evandrarf/dsadojo-be/internal/pkg/mapper"
	"github.com/evandrarf/dsadojo-be/internal/player"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func mcQuestion(id string, lang lesson.Language) lesson.Question {
	return lesson.Question{
		ID:             id,
		Type:           lesson.TypeMultipleChoice,
		Prompt:         "Which option is right?",
		Options:        []string{"right", "wrong"},
		Answer:         lesson.IndexAnswer(0),
		Explanation:    "The first option is right.",
		ImportLanguage: lang,
	}
}

// testCatalog has one two-question python lesson, array-easy-python, and one
// java lesson.
func testCatalog(t *testing.T) *lesson.Catalog {
	t.Helper()
	c, err := lesson.NewCatalog([]lesson.Question{
		mcQuestion("array-easy-1", lesson.LanguagePython),
		mcQuestion("array-easy-2", lesson.LanguagePython),
		mcQuestion("java-array-easy-1", lesson.LanguageJava),
	}, []lesson.Question{
		mcQuestion("fundamentals-easy-1", ""),
	})
	require.NoError(t, err)
	return c
}

func seedProfile(t *testing.T, users *repotest.Users, id string, edit func(player.Profile) player.Profile) {
	t.Helper()
	p := player.NewProfile(id, id, id+"@example.com", testNow)
	if edit != nil {
		p = edit(p)
	}
	row, err := mapper.ConvertToProfileEntity(p)
	require.NoError(t, err)
	require.NoError(t, users.Create(nil, row))
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}
