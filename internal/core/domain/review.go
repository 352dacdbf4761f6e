package domain

import "time"

// Review is a user's rating of a catalog item. At most one review may exist
// per (user, item) pair.
type Review struct {
	ReviewID  string    `json:"reviewID"`
	ItemKind  ItemKind  `json:"itemKind"`
	ItemID    string    `json:"itemID"`
	UserID    string    `json:"userID"`
	UserName  string    `json:"userName,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReviewSummary is the on-read aggregate for an item's reviews.
type ReviewSummary struct {
	Reviews       []Review `json:"reviews"`
	AverageRating float64  `json:"averageRating"`
	TotalReviews  int      `json:"totalReviews"`
}
