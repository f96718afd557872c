package domain

import "time"

// BonusReport is returned after the daily bonus has been claimed
type BonusReport struct {
	Amount    int       `json:"amount"`
	Coins     int       `json:"coins"`
	ClaimDate string    `json:"claim_date"`
	NextClaim time.Time `json:"next_claim"`
	Message   string    `json:"message"`
}
