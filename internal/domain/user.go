package domain

import "time"

type User struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      string    `json:"role"` // "organizer"
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserPatch carries the optional profile fields; only non-nil fields are applied.
type UserPatch struct {
	Email    *string
	Password *string
}

func (p UserPatch) IsEmpty() bool {
	return p.Email == nil && p.Password == nil
}
