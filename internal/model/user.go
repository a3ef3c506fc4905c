package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// AccountType classifies a user account. It is carried inside access
// tokens and stamped onto news posts at creation time.
type AccountType string

const (
	AccountFree   AccountType = "freeUser"
	AccountPaid   AccountType = "paidUser"
	AccountAgency AccountType = "agencyUser"
)

// ValidAccountType reports whether s is one of the known account types.
func ValidAccountType(s string) bool {
	switch AccountType(s) {
	case AccountFree, AccountPaid, AccountAgency:
		return true
	}
	return false
}

// User mirrors the 'users' collection. Email is stored lowercased and
// unique. RefreshToken holds the single live refresh token for the user;
// it is empty (unset) when the user is logged out.
type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string        `bson:"email" json:"email"`
	Name         string        `bson:"name" json:"name"`
	PasswordHash string        `bson:"passwordHash" json:"-"`
	TypeAccount  AccountType   `bson:"typeAccount" json:"typeAccount"`
	RefreshToken string        `bson:"refreshToken,omitempty" json:"-"`
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// PublicUser is the sanitized shape returned by auth endpoints.
type PublicUser struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	TypeAccount AccountType `json:"typeAccount"`
}

// Public strips credentials and token state from a user record.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:          u.ID.Hex(),
		Name:        u.Name,
		Email:       u.Email,
		TypeAccount: u.TypeAccount,
	}
}
