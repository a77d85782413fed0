package lesson

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var ErrMalformedQuestionID = errors.New("malformed question id")

// Key is the grouping key of a question.
type Key struct {
	Category   string
	Difficulty Difficulty
	Language   Language
}

func (k Key) LessonID() string {
	return fmt.Sprintf("%s-%s-%s", k.Category, k.Difficulty, k.Language)
}

func isLanguageToken(s string) bool {
	return s == string(LanguageJava) || s == string(LanguageCpp) || s == string(LanguagePython)
}

// ParseQuestionID derives the grouping key from an id shaped like
// {category}-{difficulty}[-{n}] where a language marker may lead or trail the
// category tokens. A java or cpp token anywhere in the id wins over the import
// language; without either the import language is used, then python.
//
// Ids with fewer than three tokens, without a difficulty token or with an
// empty category are rejected.
func ParseQuestionID(id string, importLanguage Language) (Key, error) {
	parts := strings.Split(strings.TrimSpace(id), "-")
	if len(parts) < 3 {
		return Key{}, fmt.Errorf("%w: %q has fewer than three tokens", ErrMalformedQuestionID, id)
	}

	difficultyIndex := slices.IndexFunc(parts, func(p string) bool {
		return Difficulty(p).Valid()
	})
	if difficultyIndex < 0 {
		return Key{}, fmt.Errorf("%w: %q has no difficulty token", ErrMalformedQuestionID, id)
	}

	language := LanguagePython
	if importLanguage != "" {
		language = importLanguage
	}
	switch {
	case slices.Contains(parts, string(LanguageCpp)):
		language = LanguageCpp
	case slices.Contains(parts, string(LanguageJava)):
		language = LanguageJava
	}

	base := parts[:difficultyIndex]
	if len(base) > 0 && isLanguageToken(base[0]) {
		base = base[1:]
	}
	if len(base) > 0 && isLanguageToken(base[len(base)-1]) {
		base = base[:len(base)-1]
	}
	if len(base) == 0 {
		return Key{}, fmt.Errorf("%w: %q has no category", ErrMalformedQuestionID, id)
	}

	return Key{
		Category:   strings.Join(base, "-"),
		Difficulty: Difficulty(parts[difficultyIndex]),
		Language:   language,
	}, nil
}
