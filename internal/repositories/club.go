package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/bookclubhq/bookclub-server/internal/logger"
	"github.com/bookclubhq/bookclub-server/internal/models"
)

// ClubRepository stores clubs and their memberships in PostgreSQL.
type ClubRepository struct {
	db *sqlx.DB
}

func NewClubRepository(db *sqlx.DB) *ClubRepository {
	return &ClubRepository{db: db}
}

// Save inserts a club and its owner membership in one transaction.
func (r *ClubRepository) Save(ctx context.Context, club *models.Club) error {
	const clubQuery = `
		INSERT INTO clubs (club_id, name, description, genre, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	`
	const memberQuery = `
		INSERT INTO club_members (club_id, user_id, role, joined_at)
		VALUES ($1, $2, 'owner', NOW())
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, clubQuery,
		club.ClubID, club.Name, club.Description, club.Genre, club.OwnerID); err != nil {
		logger.Log.Errorw("club insert failed",
			"query", strings.Join(strings.Fields(clubQuery), " "),
			"club_id", club.ClubID, "error", err)
		return err
	}

	if _, err := tx.ExecContext(ctx, memberQuery, club.ClubID, club.OwnerID); err != nil {
		logger.Log.Errorw("owner membership insert failed",
			"club_id", club.ClubID, "user_id", club.OwnerID, "error", err)
		return err
	}

	return tx.Commit()
}

// List returns all clubs with their member counts, newest first.
func (r *ClubRepository) List(ctx context.Context) ([]models.Club, error) {
	const query = `
		SELECT c.club_id, c.name, c.description, c.genre, c.owner_id,
		       c.created_at, c.updated_at,
		       COUNT(m.user_id) AS member_count
		FROM clubs c
		LEFT JOIN club_members m ON m.club_id = c.club_id
		GROUP BY c.club_id
		ORDER BY c.created_at DESC
	`

	var clubs []models.Club
	if err := r.db.SelectContext(ctx, &clubs, query); err != nil {
		logger.Log.Errorw("clubs list failed",
			"query", strings.Join(strings.Fields(query), " "), "error", err)
		return nil, err
	}
	return clubs, nil
}

// GetByID returns one club with its member count, or nil when unknown.
func (r *ClubRepository) GetByID(ctx context.Context, clubID uuid.UUID) (*models.Club, error) {
	const query = `
		SELECT c.club_id, c.name, c.description, c.genre, c.owner_id,
		       c.created_at, c.updated_at,
		       COUNT(m.user_id) AS member_count
		FROM clubs c
		LEFT JOIN club_members m ON m.club_id = c.club_id
		WHERE c.club_id = $1
		GROUP BY c.club_id
	`

	var club models.Club
	err := r.db.GetContext(ctx, &club, query, clubID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("club get failed", "club_id", clubID, "error", err)
		return nil, err
	}
	return &club, nil
}

// AddMember adds a user to a club. Reports false when the user was
// already a member; the conflict is resolved by the store.
func (r *ClubRepository) AddMember(ctx context.Context, clubID uuid.UUID, userID string) (bool, error) {
	const query = `
		INSERT INTO club_members (club_id, user_id, role, joined_at)
		VALUES ($1, $2, 'member', NOW())
		ON CONFLICT (club_id, user_id) DO NOTHING
	`

	res, err := r.db.ExecContext(ctx, query, clubID, userID)
	if err != nil {
		logger.Log.Errorw("membership insert failed",
			"query", strings.Join(strings.Fields(query), " "),
			"club_id", clubID, "user_id", userID, "error", err)
		return false, err
	}

	rows, _ := res.RowsAffected()
	return rows > 0, nil
}

// RemoveMember removes a user from a club. Reports whether a membership
// row was deleted.
func (r *ClubRepository) RemoveMember(ctx context.Context, clubID uuid.UUID, userID string) (bool, error) {
	const query = `DELETE FROM club_members WHERE club_id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, clubID, userID)
	if err != nil {
		logger.Log.Errorw("membership delete failed", "club_id", clubID, "user_id", userID, "error", err)
		return false, err
	}

	rows, _ := res.RowsAffected()
	return rows > 0, nil
}

// ListMembers returns the memberships of one club, oldest first.
func (r *ClubRepository) ListMembers(ctx context.Context, clubID uuid.UUID) ([]models.ClubMember, error) {
	const query = `
		SELECT club_id, user_id, role, joined_at
		FROM club_members
		WHERE club_id = $1
		ORDER BY joined_at
	`

	var members []models.ClubMember
	if err := r.db.SelectContext(ctx, &members, query, clubID); err != nil {
		logger.Log.Errorw("members list failed", "club_id", clubID, "error", err)
		return nil, err
	}
	return members, nil
}
