// Package collections holds declarative collection configuration: which
// collections exist, who may touch them, and what their fields default to.
package collections

import (
	"fmt"

	"marketplace/models"
)

// Access describes who may read or create records in a collection. Open
// flags mean no restriction at all.
type Access struct {
	OpenRead   bool
	OpenCreate bool
}

// SelectOption is one allowed value of a select field.
type SelectOption struct {
	Label string
	Value string
}

// Field is a declarative field definition.
type Field struct {
	Name         string
	Type         string
	Required     bool
	DefaultValue string
	Options      []SelectOption
}

// Config describes one collection.
type Config struct {
	Slug   string
	Access Access
	Fields []Field
}

// Users is the user collection: readable and creatable by anyone, with a
// role select defaulting to "user".
var Users = Config{
	Slug: "users",
	Access: Access{
		OpenRead:   true,
		OpenCreate: true,
	},
	Fields: []Field{
		{
			Name:         "role",
			Type:         "select",
			Required:     true,
			DefaultValue: models.RoleUser,
			Options: []SelectOption{
				{Label: "Admin", Value: models.RoleAdmin},
				{Label: "User", Value: models.RoleUser},
			},
		},
	},
}

// DefaultValue returns the default of the named field, or "" when the field
// has none.
func (c Config) DefaultValue(name string) string {
	for _, f := range c.Fields {
		if f.Name == name {
			return f.DefaultValue
		}
	}
	return ""
}

// VerificationEmailHTML builds the body of the account-verification email:
// an anchor pointing at the verification endpoint with the token attached.
// Delivery is the auth framework's job, not ours.
func VerificationEmailHTML(serverURL, token string) string {
	return fmt.Sprintf("<a href='%s/verify-email?token=%s'></a>", serverURL, token)
}
