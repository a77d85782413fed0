package lesson

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple-choice"
	TypeFillBlank      QuestionType = "fill-blank"
	TypeCodeCompletion QuestionType = "code-completion"
	TypeDragDrop       QuestionType = "drag-drop"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists the tiers in ascending order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

func (d Difficulty) rank() int {
	for i, v := range Difficulties {
		if v == d {
			return i
		}
	}
	return len(Difficulties)
}

// XPReward is the fixed reward of a lesson at this tier.
func (d Difficulty) XPReward() int {
	switch d {
	case DifficultyEasy:
		return 50
	case DifficultyMedium:
		return 75
	default:
		return 100
	}
}

// Tier maps a difficulty to the lesson tier label.
func (d Difficulty) Tier() string {
	switch d {
	case DifficultyEasy:
		return "beginner"
	case DifficultyMedium:
		return "intermediate"
	default:
		return "advanced"
	}
}

type Language string

const (
	LanguagePython Language = "python"
	LanguageJava   Language = "java"
	LanguageCpp    Language = "cpp"
)

var Languages = []Language{LanguagePython, LanguageJava, LanguageCpp}

func (l Language) Valid() bool {
	switch l {
	case LanguagePython, LanguageJava, LanguageCpp:
		return true
	}
	return false
}

// Display is the human readable language name.
func (l Language) Display() string {
	switch l {
	case LanguageCpp:
		return "C++"
	case LanguageJava:
		return "Java"
	default:
		return "Python"
	}
}

// Answer is the correctness key of a question. Exactly one of the fields is
// set: an option index, a text answer, or a permutation of item indexes.
type Answer struct {
	Index *int
	Text  *string
	Order []int
}

func IndexAnswer(i int) Answer { return Answer{Index: &i} }
func TextAnswer(s string) Answer { return Answer{Text: &s} }
func OrderAnswer(o ...int) Answer { return Answer{Order: o} }
func (a Answer) IsZero() bool { return a.Index == nil && a.Text == nil && a.Order == nil }
func (a Answer) HasIndex() bool { return a.Index != nil }
func (a Answer) HasText() bool { return a.Text != nil }
func (a Answer) HasOrder() bool { return a.Order != nil }

func (a Answer) String() string {
	switch {
	case a.Index != nil:
		return strconv.Itoa(*a.Index)
	case a.Text != nil:
		return *a.Text
	case a.Order != nil:
		return fmt.Sprint(a.Order)
	}
	return ""
}

func (a Answer) MarshalJSON() ([]byte, error) {
	switch {
	case a.Index != nil:
		return json.Marshal(*a.Index)
	case a.Text != nil:
		return json.Marshal(*a.Text)
	case a.Order != nil:
		return json.Marshal(a.Order)
	}
	return []byte("null"), nil
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	*a = Answer{}
	if string(data) == "null" {
		return nil
	}

	var idx int
	if err := json.Unmarshal(data, &idx); err == nil {
		a.Index = &idx
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		a.Text = &text
		return nil
	}
	var order []int
	if err := json.Unmarshal(data, &order); err == nil {
		a.Order = order
		return nil
	}
	return fmt.Errorf("correct answer must be an index, a string or an index list: %s", string(data))
}

func (a *Answer) UnmarshalYAML(value *yaml.Node) error {
	*a = Answer{}
	switch value.Kind {
	case yaml.ScalarNode:
		if value.ShortTag() == "!!int" {
			var idx int
			if err := value.Decode(&idx); err != nil {
				return err
			}
			a.Index = &idx
			return nil
		}
		var text string
		if err := value.Decode(&text); err != nil {
			return err
		}
		a.Text = &text
		return nil
	case yaml.SequenceNode:
		var order []int
		if err := value.Decode(&order); err != nil {
			return err
		}
		a.Order = order
		return nil
	}
	return fmt.Errorf("line %d: unsupported correctAnswer shape", value.Line)
}

// Question is a single quiz item. It is immutable once loaded.
type Question struct {
	ID           string       `json:"id" yaml:"id"`
	Type         QuestionType `json:"type" yaml:"type"`
	Prompt       string       `json:"question" yaml:"question"`
	Options      []string     `json:"options,omitempty" yaml:"options,omitempty"`
	Code         string       `json:"code,omitempty" yaml:"code,omitempty"`
	Blanks       []string     `json:"blanks,omitempty" yaml:"blanks,omitempty"`
	Items        []string     `json:"items,omitempty" yaml:"items,omitempty"`
	CorrectOrder []int        `json:"correctOrder,omitempty" yaml:"correctOrder,omitempty"`
	Answer       Answer       `json:"correctAnswer" yaml:"correctAnswer"`
	Explanation  string       `json:"explanation" yaml:"explanation"`

	// ImportLanguage is the language tag of the file the question was loaded
	// from. Empty for language agnostic questions.
	ImportLanguage Language `json:"-" yaml:"-"`
}
