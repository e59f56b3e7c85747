package api

import (
	"time"

	"github.com/google/uuid"
)

// User is the full profile of a user as returned by /users/me and /users/:id
type User struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Age       int       `json:"age,omitempty"`
	Skills    []string  `json:"skills,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	Location  string    `json:"location,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Telegram  string    `json:"telegram,omitempty"`
	Instagram string    `json:"instagram,omitempty"`
}

// UserSummary is the reduced user shape used in listings and project members
type UserSummary struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	FullName string    `json:"fullName,omitempty"`
	Age      int       `json:"age,omitempty"`
	Skills   []string  `json:"skills,omitempty"`
	Bio      string    `json:"bio,omitempty"`
	Location string    `json:"location,omitempty"`
}

// Project is a team-formation project. Owner and Members are distinct roles:
// the backend may or may not include the owner in Members, authorization
// logic must not rely on either.
type Project struct {
	ID             uuid.UUID     `json:"id"`
	Name           string        `json:"name"`
	Type           string        `json:"type,omitempty"`
	Sphere         string        `json:"sphere,omitempty"`
	Description    string        `json:"description,omitempty"`
	RequiredSkills []string      `json:"requiredSkills,omitempty"`
	Location       string        `json:"location,omitempty"`
	Team           []string      `json:"team,omitempty"`
	Owner          UserSummary   `json:"owner"`
	Members        []UserSummary `json:"members,omitempty"`
	CreatedAt      time.Time     `json:"createdAt,omitempty"`
}

// ProfileUpdate carries the editable profile fields for PUT /users/me.
// Pointer fields distinguish "leave unchanged" from "clear".
type ProfileUpdate struct {
	FullName  *string  `json:"fullName,omitempty"`
	Age       *int     `json:"age,omitempty"`
	Skills    []string `json:"skills,omitempty"`
	Bio       *string  `json:"bio,omitempty"`
	Location  *string  `json:"location,omitempty"`
	Phone     *string  `json:"phone,omitempty"`
	Telegram  *string  `json:"telegram,omitempty"`
	Instagram *string  `json:"instagram,omitempty"`
}

// ProjectRequest carries the fields for creating or updating a project
type ProjectRequest struct {
	Name           string   `json:"name"`
	Type           string   `json:"type,omitempty"`
	Sphere         string   `json:"sphere,omitempty"`
	Description    string   `json:"description,omitempty"`
	RequiredSkills []string `json:"requiredSkills,omitempty"`
	Location       string   `json:"location,omitempty"`
	Team           []string `json:"team,omitempty"`
}

// ProjectFilter narrows GET /projects results
type ProjectFilter struct {
	Search string
	Sphere string
	Type   string
}
