package domain

// Catalog entities are read-only from the user's perspective. Redemption
// and purchase operations only write credit entries, never mutate these.

type RewardType string

const (
	RewardGoods   RewardType = "GOODS"
	RewardService RewardType = "SERVICE"
)

type Reward struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Cost        int        `json:"cost"` // OL
	ImageURL    string     `json:"image_url"`
	Type        RewardType `json:"type"`
}

type Maker struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Location  string `json:"location"`
	Bio       string `json:"bio"`
	ImageURL  string `json:"image_url"`
}

type MakerProduct struct {
	ID          string `json:"id"`
	MakerID     string `json:"maker_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"` // OL
	ImageURL    string `json:"image_url"`
}
