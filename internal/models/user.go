package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role describes the capability level of a user account.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
	RoleGuest  Role = "guest"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleMember, RoleGuest:
		return true
	}
	return false
}

// User represents a user document in the users collection.
// The password hash and reset-token fields never appear in JSON output.
type User struct {
	ID                   primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Username             string             `json:"username" bson:"username"`
	Email                string             `json:"email" bson:"email"`
	PasswordHash         string             `json:"-" bson:"password_hash,omitempty"`
	FullName             string             `json:"full_name,omitempty" bson:"full_name,omitempty"`
	Role                 Role               `json:"role" bson:"role"`
	Avatar               string             `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Bio                  string             `json:"bio,omitempty" bson:"bio,omitempty"`
	IsEmailVerified      bool               `json:"is_email_verified" bson:"is_email_verified"`
	ResetPasswordToken   string             `json:"-" bson:"reset_password_token,omitempty"`
	ResetPasswordExpires *time.Time         `json:"-" bson:"reset_password_expires,omitempty"`
	LastLogin            *time.Time         `json:"last_login,omitempty" bson:"last_login,omitempty"`
	CreatedAt            time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at" bson:"updated_at"`
}
