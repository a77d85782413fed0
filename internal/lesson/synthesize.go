package lesson

import (
	"fmt"
	"sort"
	"strings"
)

const LessonTypePractice = "practice"

// Lesson bundles same category, difficulty and language questions.
type Lesson struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Type        string     `json:"type"`
	Difficulty  Difficulty `json:"difficulty"`
	Tier        string     `json:"tier"`
	XPReward    int        `json:"xpReward"`
	Language    Language   `json:"language"`
	Unit        string     `json:"unit"`
	Explanation string     `json:"explanation"`
	CodeExample string     `json:"codeExample"`
	Questions   []Question `json:"questions"`
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func words(category string) string {
	return strings.ReplaceAll(category, "-", " ")
}

func newLesson(key Key, questions []Question) Lesson {
	lang := key.Language.Display()
	return Lesson{
		ID:          key.LessonID(),
		Title:       fmt.Sprintf("%s - %s (%s)", titleCase(words(key.Category)), titleCase(string(key.Difficulty)), lang),
		Description: fmt.Sprintf("Learn %s concepts at %s level using %s", words(key.Category), key.Difficulty, lang),
		Type:        LessonTypePractice,
		Difficulty:  key.Difficulty,
		Tier:        key.Difficulty.Tier(),
		XPReward:    key.Difficulty.XPReward(),
		Language:    key.Language,
		Unit:        key.Category,
		Explanation: fmt.Sprintf("This lesson covers %s concepts at %s level using %s.", words(key.Category), key.Difficulty, lang),
		CodeExample: CodeExample(key.Category, key.Language),
		Questions:   questions,
	}
}

// Synthesize groups questions by (category, difficulty, language) and builds
// one lesson per group. Every question ends up in exactly one lesson. A
// single malformed id fails the whole synthesis.
func Synthesize(questions []Question) ([]Lesson, error) {
	groups := make(map[Key][]Question)
	for _, q := range questions {
		key, err := ParseQuestionID(q.ID, q.ImportLanguage)
		if err != nil {
			return nil, err
		}
		groups[key] = append(groups[key], q)
	}

	keys := make([]Key, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		if a.Difficulty != b.Difficulty {
			return a.Difficulty.rank() < b.Difficulty.rank()
		}
		return a.Language < b.Language
	})

	lessons := make([]Lesson, 0, len(keys))
	for _, k := range keys {
		lessons = append(lessons, newLesson(k, groups[k]))
	}
	return lessons, nil
}
