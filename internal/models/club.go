package models

import (
	"time"

	"github.com/google/uuid"
)

// Club is a reading group stored in PostgreSQL.
type Club struct {
	ClubID      uuid.UUID `json:"club_id" db:"club_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description,omitempty" db:"description"`
	Genre       string    `json:"genre,omitempty" db:"genre"`
	OwnerID     string    `json:"owner_id" db:"owner_id"`
	MemberCount int       `json:"member_count" db:"member_count"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// ClubMember links a user to a club.
type ClubMember struct {
	ClubID   uuid.UUID `json:"club_id" db:"club_id"`
	UserID   string    `json:"user_id" db:"user_id"`
	Role     string    `json:"role" db:"role"` // owner | member
	JoinedAt time.Time `json:"joined_at" db:"joined_at"`
}

// ReadingProgress is one member's position in one book of a club.
// The (club_id, user_id, book_id) triple is unique.
type ReadingProgress struct {
	ClubID      uuid.UUID `json:"club_id" db:"club_id"`
	UserID      string    `json:"user_id" db:"user_id"`
	BookID      string    `json:"book_id" db:"book_id"`
	CurrentPage int       `json:"current_page" db:"current_page"`
	TotalPages  int       `json:"total_pages" db:"total_pages"`
	Percent     float64   `json:"percent" db:"percent"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
