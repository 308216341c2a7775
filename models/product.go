package models

import "time"

// Product is a catalog item. Products are created and managed by the admin
// surface; checkout only reads them.
type Product struct {
	ID          string  `bson:"_id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64 `bson:"price" json:"price"`
	// PriceID references the price registered with the payment gateway.
	// Products without one exist in the catalog but cannot be bought.
	PriceID   string    `bson:"price_id,omitempty" json:"priceId,omitempty"`
	Category  string    `bson:"category,omitempty" json:"category,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// Purchasable reports whether the product can appear in a checkout session.
func (p *Product) Purchasable() bool {
	return p.ID != "" && p.PriceID != ""
}
