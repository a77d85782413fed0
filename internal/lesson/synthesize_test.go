package lesson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mc(id string, lang Language) Question {
	return Question{ID: id, Type: TypeMultipleChoice, Options: []string{"a", "b"}, Answer: IndexAnswer(0), ImportLanguage: lang}
}

func TestSynthesize_Partition(t *testing.T) {
	input := []Question{
		mc("array-easy-1", LanguagePython),
		mc("array-easy-2", LanguagePython),
		mc("array-hard-1", LanguagePython),
		mc("java-array-easy-1", LanguageJava),
		mc("stack-easy-1", ""),
		mc("bit-manipulation-cpp-medium-1", LanguageCpp),
	}

	lessons, err := Synthesize(input)
	require.NoError(t, err)

	seen := make(map[string]int)
	for _, l := range lessons {
		assert.NotEmpty(t, l.Questions, "lesson %s is empty", l.ID)
		for _, q := range l.Questions {
			seen[q.ID+"/"+string(q.ImportLanguage)]++
		}
	}
	require.Len(t, seen, len(input))
	for k, n := range seen {
		assert.Equal(t, 1, n, "question %s placed %d times", k, n)
	}

	ids := make([]string, 0, len(lessons))
	for _, l := range lessons {
		ids = append(ids, l.ID)
	}
	assert.Equal(t, []string{
		"array-easy-java",
		"array-easy-python",
		"array-hard-python",
		"bit-manipulation-medium-cpp",
		"stack-easy-python",
	}, ids)
}

func TestSynthesize_LessonFields(t *testing.T) {
	lessons, err := Synthesize([]Question{
		mc("linked-list-medium-1", LanguageCpp),
		mc("linked-list-medium-2", LanguageCpp),
	})
	require.NoError(t, err)
	require.Len(t, lessons, 1)

	l := lessons[0]
	assert.Equal(t, "linked-list-medium-cpp", l.ID)
	assert.Equal(t, "Linked list - Medium (C++)", l.Title)
	assert.Equal(t, "Learn linked list concepts at medium level using C++", l.Description)
	assert.Equal(t, "This lesson covers linked list concepts at medium level using C++.", l.Explanation)
	assert.Equal(t, LessonTypePractice, l.Type)
	assert.Equal(t, "intermediate", l.Tier)
	assert.Equal(t, 75, l.XPReward)
	assert.Equal(t, "linked-list", l.Unit)
	assert.Equal(t, codeExamples[LanguagePython]["linked-list"], l.CodeExample)
	assert.Len(t, l.Questions, 2)
}

func TestSynthesize_StableIDs(t *testing.T) {
	input := []Question{mc("queue-easy-1", LanguageJava), mc("dp-hard-1", "")}
	first, err := Synthesize(input)
	require.NoError(t, err)
	second, err := Synthesize([]Question{input[1], input[0]})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSynthesize_MalformedFailsFast(t *testing.T) {
	_, err := Synthesize([]Question{mc("array-easy-1", ""), mc("array-1", "")})
	assert.ErrorIs(t, err, ErrMalformedQuestionID)
}

func TestCodeExample_Fallbacks(t *testing.T) {
	assert.Equal(t, codeExamples[LanguageJava]["stack"], CodeExample("stack", LanguageJava))
	assert.Equal(t, codeExamples[LanguagePython]["dp"], CodeExample("dp", LanguageCpp))
	assert.Contains(t, CodeExample("graphs", LanguageJava), "// graphs example")
}
