package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Elevated reports whether the role is exempt from ownership-based checks.
func (r Role) Elevated() bool {
	return r == RoleAdmin
}

// Social is a named link to an external profile. Socials have no identity of
// their own and are replaced wholesale on update, never merged.
type Social struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type BackgroundType string

const (
	BackgroundColor BackgroundType = "color"
	BackgroundImage BackgroundType = "image"
)

// Background is the profile background: either a plain color value or a
// reference to an uploaded image. Normalized once at the boundary, never
// re-inspected later.
type Background struct {
	Type  BackgroundType `json:"type"`
	Value string         `json:"value"`
}

// UnmarshalJSON accepts either a bare string (a color value) or the tagged
// object form. The union is resolved here and never re-inspected downstream.
func (b *Background) UnmarshalJSON(data []byte) error {
	var color string
	if err := json.Unmarshal(data, &color); err == nil {
		*b = Background{Type: BackgroundColor, Value: color}
		return nil
	}

	type alias Background
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if a.Type != BackgroundColor && a.Type != BackgroundImage {
		return fmt.Errorf("unknown background type %q", a.Type)
	}
	*b = Background(a)
	return nil
}

type User struct {
	ID           uuid.UUID   `json:"id"`
	Login        string      `json:"login"`
	PasswordHash string      `json:"-"`
	Name         string      `json:"name"`
	LastName     string      `json:"last_name,omitempty"`
	Email        string      `json:"email,omitempty"`
	Phone        string      `json:"phone"`
	Socials      []Social    `json:"socials"`
	Role         Role        `json:"role"`
	Avatar       *string     `json:"avatar,omitempty"`
	Background   *Background `json:"background,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// FullName joins first and last name for display purposes.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.Name
	}
	return u.Name + " " + u.LastName
}

// Requester is the authenticated caller's identity, derived from the access
// token on every request. It is never persisted.
type Requester struct {
	UserID uuid.UUID
	Role   Role
}
