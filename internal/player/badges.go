package player

import "time"

type Badge struct {
	Kind      string `json:"kind"`
	Threshold int    `json:"threshold"`
	Title     string `json:"title"`
	Flair     string `json:"flair"`
	Unlocked  bool   `json:"unlocked"`
}

var levelBadges = []Badge{
	{Threshold: 1, Title: "Algorithm Apprentice", Flair: "Just getting started!"},
	{Threshold: 2, Title: "Code Novice", Flair: "You're warming up the compiler"},
	{Threshold: 3, Title: "Loop Learner", Flair: "You've found your rhythm"},
	{Threshold: 4, Title: "Stack Scholar", Flair: "You're stacking up knowledge"},
	{Threshold: 5, Title: "Binary Boss", Flair: "You see the world in 0s and 1s"},
	{Threshold: 6, Title: "Recursion Raider", Flair: "You fear no infinite loops"},
	{Threshold: 7, Title: "Graph Guru", Flair: "You're well-connected"},
	{Threshold: 8, Title: "Tree Tactician", Flair: "You've mastered roots, branches, and leaves"},
	{Threshold: 9, Title: "Heap Hero", Flair: "Priority is your middle name!"},
	{Threshold: 10, Title: "Algorithm Architect", Flair: "You see patterns where others see code"},
}

var streakBadges = []Badge{
	{Threshold: 3, Title: "Focused Coder", Flair: "Getting into the groove"},
	{Threshold: 7, Title: "Debugger Streaker", Flair: "One week, zero bugs"},
	{Threshold: 14, Title: "Consistency Captain", Flair: "The grind is real"},
	{Threshold: 30, Title: "Daily Devotee", Flair: "You've unlocked true dedication"},
	{Threshold: 50, Title: "Legendary Loopster", Flair: "Infinite loops of discipline"},
}

const (
	BadgeLevel  = "level"
	BadgeStreak = "streak"
)

// Badges lists the level and streak badges with their unlock state.
func Badges(p Profile) []Badge {
	out := make([]Badge, 0, len(levelBadges)+len(streakBadges))
	for _, b := range levelBadges {
		b.Kind = BadgeLevel
		b.Unlocked = p.Level >= b.Threshold
		out = append(out, b)
	}
	for _, b := range streakBadges {
		b.Kind = BadgeStreak
		b.Unlocked = p.Streak >= b.Threshold
		out = append(out, b)
	}
	return out
}

const (
	FirstStepsID  = "first-steps"
	WeekWarriorID = "week-warrior"
)

func FirstSteps(at time.Time) Achievement {
	return Achievement{
		ID:          FirstStepsID,
		Title:       "First Steps",
		Description: "Complete your first lesson",
		Icon:        "target",
		XPReward:    50,
		UnlockedAt:  at,
	}
}

func WeekWarrior(at time.Time) Achievement {
	return Achievement{
		ID:          WeekWarriorID,
		Title:       "Week Warrior",
		Description: "Maintain a 7-day streak",
		Icon:        "fire",
		XPReward:    100,
		UnlockedAt:  at,
	}
}
