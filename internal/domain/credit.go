package domain

import "strings"

type CreditType string

const (
	EarnedClothing     CreditType = "EARNED_CLOTHING"
	EarnedEvent        CreditType = "EARNED_EVENT"
	SpentReward        CreditType = "SPENT_REWARD"
	SpentOffset        CreditType = "SPENT_OFFSET"
	SpentMakerPurchase CreditType = "SPENT_MAKER_PURCHASE"
)

func (t CreditType) IsEarned() bool {
	return strings.HasPrefix(string(t), "EARNED")
}

func (t CreditType) IsSpent() bool {
	return strings.HasPrefix(string(t), "SPENT")
}

// Credit is an immutable ledger entry. Entries are append-only; a user's
// balance is always derived by summing entries, never stored.
type Credit struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	Date         string     `json:"date"` // YYYY-MM-DD
	ActivityName string     `json:"activity_name"`
	Type         CreditType `json:"type"`
	Amount       int        `json:"amount"` // non-negative OL
}
