package response

import "github.com/MuchYouth/otgil-Re-Thread/internal/domain"

type BalanceResponse struct {
	Balance int `json:"balance"`
}

// SpendResponse pairs the written ledger entry with the balance after
// the spend, so clients don't need a second round-trip.
type SpendResponse struct {
	Credit  domain.Credit `json:"credit"`
	Balance int           `json:"balance"`
}
