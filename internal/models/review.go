package models

import "time"

// Review is the persisted representation of an item review.
// (item_kind, item_id, user_id) is unique at the storage layer.
type Review struct {
	ReviewID  string    `db:"review_id"`
	ItemKind  string    `db:"item_kind"`
	ItemID    string    `db:"item_id"`
	UserID    string    `db:"user_id"`
	Rating    int       `db:"rating"`
	Comment   string    `db:"comment"`
	CreatedAt time.Time `db:"created_at"`
}
