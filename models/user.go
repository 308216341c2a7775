package models

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User model
type User struct {
	ID                string    `bson:"_id" json:"id"`
	Email             string    `bson:"email" json:"email"`
	Password          string    `bson:"password" json:"-"`
	Role              string    `bson:"role" json:"role"`
	Verified          bool      `bson:"verified" json:"verified"`
	VerificationToken string    `bson:"verification_token,omitempty" json:"-"`
	CreatedAt         time.Time `bson:"created_at" json:"createdAt"`
}
