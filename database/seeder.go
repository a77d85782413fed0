package database

import (
	"fmt"
	"time"

	"github.com/evandrarf/dsadojo-be/internal/entity"
	"github.com/evandrarf/dsadojo-be/internal/lesson"
	"github.com/evandrarf/dsadojo-be/internal/pkg/mapper"
	"github.com/evandrarf/dsadojo-be/internal/player"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const BankVersion = 1

// DemoUsers - leaderboard users shipped with the demo
var DemoUsers = []struct {
	Username string
	XP       int
	Streak   int
}{
	{Username: "AlgoMaster", XP: 3500, Streak: 21},
	{Username: "CodeNinja", XP: 3200, Streak: 15},
	{Username: "DataWizard", XP: 2800, Streak: 12},
	{Username: "PytheusRex", XP: 2400, Streak: 8},
	{Username: "CPlusPlusPlus", XP: 2100, Streak: 10},
}

// SeedQuestionBank - Upsert the embedded bank into the questions table
func SeedQuestionBank(db *gorm.DB, bank *lesson.Bank, log *logrus.Logger) error {
	// Synthesis must succeed before anything is written.
	if _, err := bank.Catalog(); err != nil {
		return fmt.Errorf("question bank is invalid: %w", err)
	}

	rows := make([]*entity.Question, 0, len(bank.Questions)+len(bank.Fundamentals))
	for _, q := range bank.Questions {
		row, err := mapper.ConvertToQuestionEntity(q, false, BankVersion)
		if err != nil {
			return fmt.Errorf("failed to convert question %s: %w", q.ID, err)
		}
		rows = append(rows, row)
	}
	for _, q := range bank.Fundamentals {
		row, err := mapper.ConvertToQuestionEntity(q, true, BankVersion)
		if err != nil {
			return fmt.Errorf("failed to convert question %s: %w", q.ID, err)
		}
		rows = append(rows, row)
	}

	for i, row := range rows {
		row.Position = i
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "question_id"}, {Name: "language"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"topic", "type", "prompt", "options", "code", "blanks", "items",
					"correct_order", "correct_answer", "explanation", "fundamentals",
					"bank_version", "position", "updated_at",
				}),
			}).Create(row).Error
			if err != nil {
				return fmt.Errorf("failed to seed question %s: %w", row.QuestionID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.WithField("count", len(rows)).Info("Seeded question bank")
	return nil
}

// SeedDemoUsers - Create the demo leaderboard users once
func SeedDemoUsers(db *gorm.DB, log *logrus.Logger) error {
	joined := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, u := range DemoUsers {
		p := player.NewProfile("demo-"+u.Username, u.Username, u.Username+"@demo.dsadojo.dev", joined).AddXP(u.XP)
		p.Streak = u.Streak

		row, err := mapper.ConvertToProfileEntity(p)
		if err != nil {
			return err
		}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(row).Error; err != nil {
			return fmt.Errorf("failed to seed demo user %s: %w", u.Username, err)
		}
	}

	log.WithField("count", len(DemoUsers)).Info("Seeded demo users")
	return nil
}
