package mapper

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"

	dbEntity "github.com/evandrarf/dsadojo-be/internal/entity"
	"github.com/evandrarf/dsadojo-be/internal/lesson"
	"gorm.io/datatypes"
)

func marshalJSON(v any) (datatypes.JSON, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

func unmarshalJSON(raw datatypes.JSON, v any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return json.Unmarshal(raw, v)
}

// ConvertToQuestionEntity - Convert bank question to DB entity
func ConvertToQuestionEntity(q lesson.Question, fundamentals bool, bankVersion int) (*dbEntity.Question, error) {
	topic := lesson.FundamentalsTopic
	if !fundamentals {
		key, err := lesson.ParseQuestionID(q.ID, q.ImportLanguage)
		if err != nil {
			return nil, err
		}
		topic = key.Category
	}

	row := &dbEntity.Question{
		QuestionID:   q.ID,
		Language:     string(q.ImportLanguage),
		Topic:        topic,
		Type:         string(q.Type),
		Prompt:       q.Prompt,
		Code:         q.Code,
		Explanation:  q.Explanation,
		Fundamentals: fundamentals,
		BankVersion:  bankVersion,
	}

	var err error
	if row.Options, err = marshalJSON(q.Options); err != nil {
		return nil, fmt.Errorf("options of %s: %w", q.ID, err)
	}
	if row.Blanks, err = marshalJSON(q.Blanks); err != nil {
		return nil, fmt.Errorf("blanks of %s: %w", q.ID, err)
	}
	if row.Items, err = marshalJSON(q.Items); err != nil {
		return nil, fmt.Errorf("items of %s: %w", q.ID, err)
	}
	if row.CorrectOrder, err = marshalJSON(q.CorrectOrder); err != nil {
		return nil, fmt.Errorf("correct order of %s: %w", q.ID, err)
	}
	if row.CorrectAnswer, err = marshalJSON(q.Answer); err != nil {
		return nil, fmt.Errorf("correct answer of %s: %w", q.ID, err)
	}
	return row, nil
}

// ConvertToQuestion - Convert DB entity to bank question
func ConvertToQuestion(row *dbEntity.Question) (lesson.Question, error) {
	q := lesson.Question{
		ID:             row.QuestionID,
		Type:           lesson.QuestionType(row.Type),
		Prompt:         row.Prompt,
		Code:           row.Code,
		Explanation:    row.Explanation,
		ImportLanguage: lesson.Language(row.Language),
	}

	if err := unmarshalJSON(row.Options, &q.Options); err != nil {
		return lesson.Question{}, fmt.Errorf("options of %s: %w", row.QuestionID, err)
	}
	if err := unmarshalJSON(row.Blanks, &q.Blanks); err != nil {
		return lesson.Question{}, fmt.Errorf("blanks of %s: %w", row.QuestionID, err)
	}
	if err := unmarshalJSON(row.Items, &q.Items); err != nil {
		return lesson.Question{}, fmt.Errorf("items of %s: %w", row.QuestionID, err)
	}
	if err := unmarshalJSON(row.CorrectOrder, &q.CorrectOrder); err != nil {
		return lesson.Question{}, fmt.Errorf("correct order of %s: %w", row.QuestionID, err)
	}
	if err := unmarshalJSON(row.CorrectAnswer, &q.Answer); err != nil {
		return lesson.Question{}, fmt.Errorf("correct answer of %s: %w", row.QuestionID, err)
	}
	return q, nil
}

// ConvertToBank splits DB rows back into lesson and fundamentals questions.
func ConvertToBank(rows []dbEntity.Question) (*lesson.Bank, error) {
	rows = slices.Clone(rows)
	slices.SortStableFunc(rows, func(a, b dbEntity.Question) int { return cmp.Compare(a.Position, b.Position) })

	bank := &lesson.Bank{}
	for i := range rows {
		q, err := ConvertToQuestion(&rows[i])
		if err != nil {
			return nil, err
		}
		if rows[i].Fundamentals {
			bank.Fundamentals = append(bank.Fundamentals, q)
			continue
		}
		bank.Questions = append(bank.Questions, q)
	}
	return bank, nil
}
