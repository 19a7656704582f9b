// internal/models/user.go
package models

import (
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Email     string             `bson:"email" json:"email"`
	PhotoURL  string             `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Role      string             `bson:"role,omitempty" json:"role,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photoURL"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

func (r *CreateUserRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("email is required")
	}
	return nil
}

func (r *CreateUserRequest) ToUser(now time.Time) *User {
	return &User{
		Name:      r.Name,
		Email:     r.Email,
		PhotoURL:  r.PhotoURL,
		Phone:     r.Phone,
		Role:      r.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UpdateUserRequest carries a partial update; nil fields are left untouched.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	PhotoURL *string `json:"photoURL"`
	Phone    *string `json:"phone"`
	Role     *string `json:"role"`
}

// Updates builds the $set document from the fields that were supplied.
func (r *UpdateUserRequest) Updates() bson.M {
	updates := bson.M{}
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Email != nil {
		updates["email"] = *r.Email
	}
	if r.PhotoURL != nil {
		updates["photoURL"] = *r.PhotoURL
	}
	if r.Phone != nil {
		updates["phone"] = *r.Phone
	}
	if r.Role != nil {
		updates["role"] = *r.Role
	}
	return updates
}
