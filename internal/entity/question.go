package entity

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Question - one question of the bank, as seeded from the YAML files
type Question struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	QuestionID    string         `gorm:"uniqueIndex:idx_question_language;size:100;not null" json:"question_id"`
	Language      string         `gorm:"uniqueIndex:idx_question_language;size:20;not null" json:"language"` // empty for fundamentals
	Topic         string         `gorm:"size:50;not null;index" json:"topic"`
	Type          string         `gorm:"size:30;not null" json:"type"`
	Prompt        string         `gorm:"type:text;not null" json:"question"`
	Options       datatypes.JSON `json:"options"`
	Code          string         `gorm:"type:text" json:"code"`
	Blanks        datatypes.JSON `json:"blanks"`
	Items         datatypes.JSON `json:"items"`
	CorrectOrder  datatypes.JSON `json:"correct_order"`
	CorrectAnswer datatypes.JSON `gorm:"not null" json:"correct_answer"` // index, string or index list
	Explanation   string         `gorm:"type:text" json:"explanation"`
	Fundamentals  bool           `gorm:"not null;default:false;index" json:"fundamentals"`
	BankVersion   int            `gorm:"not null;default:1" json:"bank_version"`
	Position      int            `gorm:"not null;default:0;index" json:"position"` // order within the bank files
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}
