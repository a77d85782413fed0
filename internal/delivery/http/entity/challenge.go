package entity

import "github.com/evandrarf/dsadojo-be/internal/challenge"

type ChallengeItem struct {
	challenge.Challenge
	IsCompleted bool `json:"isCompleted"`
}

type CompleteChallengeResponse struct {
	ChallengeID string `json:"challenge_id"`
	XPGranted   int    `json:"xp_granted"`
	TotalXP     int    `json:"total_xp"`
	Level       int    `json:"level"`
}
