package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

// User represents a platform account. Email is stored lowercased so the unique
// index is effectively case-insensitive.
type User struct {
	gorm.Model
	Email         string         `json:"email" gorm:"unique;not null"`
	PasswordHash  string         `json:"-" gorm:"not null"`
	Role          string         `json:"role" gorm:"default:'student'"` // student, instructor, admin
	FullName      string         `json:"full_name" gorm:"default:''"`
	AvatarURL     string         `json:"avatar_url" gorm:"default:''"`
	RefreshTokens datatypes.JSON `json:"-"` // list of RefreshToken entries
}

// RefreshToken is one entry of the account's active refresh-credential list
type RefreshToken struct {
	Token    string    `json:"token"`
	IssuedAt time.Time `json:"issued_at"`
}

// RefreshTokenList decodes the stored refresh-credential list
func (u *User) RefreshTokenList() []RefreshToken {
	var tokens []RefreshToken
	if len(u.RefreshTokens) == 0 {
		return tokens
	}
	if err := json.Unmarshal(u.RefreshTokens, &tokens); err != nil {
		return nil
	}
	return tokens
}

func (u *User) setRefreshTokenList(tokens []RefreshToken) {
	raw, err := json.Marshal(tokens)
	if err != nil {
		return
	}
	u.RefreshTokens = raw
}

// AppendRefreshToken records a newly issued refresh credential
func (u *User) AppendRefreshToken(token string) {
	tokens := u.RefreshTokenList()
	tokens = append(tokens, RefreshToken{Token: token, IssuedAt: time.Now()})
	u.setRefreshTokenList(tokens)
}

// RemoveRefreshToken filters a refresh credential out of the stored list
func (u *User) RemoveRefreshToken(token string) {
	tokens := u.RefreshTokenList()
	kept := tokens[:0]
	for _, rt := range tokens {
		if rt.Token != token {
			kept = append(kept, rt)
		}
	}
	u.setRefreshTokenList(kept)
}

// HasRefreshToken reports whether a refresh credential is still active
func (u *User) HasRefreshToken(token string) bool {
	for _, rt := range u.RefreshTokenList() {
		if rt.Token == token {
			return true
		}
	}
	return false
}
