package models

import "time"

// Order is created in the unpaid state by checkout. IsPaid is flipped only
// by the gateway webhook once the session settles.
type Order struct {
	ID        string    `bson:"_id" json:"id"`
	IsPaid    bool      `bson:"_isPaid" json:"isPaid"`
	Products  []string  `bson:"products" json:"products"`
	UserID    string    `bson:"user" json:"user"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
