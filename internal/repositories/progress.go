package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/bookclubhq/bookclub-server/internal/logger"
	"github.com/bookclubhq/bookclub-server/internal/models"
)

// ProgressRepository stores per-member reading positions in PostgreSQL.
type ProgressRepository struct {
	db *sqlx.DB
}

func NewProgressRepository(db *sqlx.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// Upsert inserts or updates the reading position keyed by the
// (club, user, book) triple and returns the stored row.
func (r *ProgressRepository) Upsert(ctx context.Context, p *models.ReadingProgress) (*models.ReadingProgress, error) {
	const query = `
		INSERT INTO reading_progress (club_id, user_id, book_id, current_page, total_pages, percent, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (club_id, user_id, book_id) DO UPDATE
		SET current_page = EXCLUDED.current_page,
		    total_pages = EXCLUDED.total_pages,
		    percent = EXCLUDED.percent,
		    updated_at = NOW()
		RETURNING club_id, user_id, book_id, current_page, total_pages, percent, updated_at
	`

	var stored models.ReadingProgress
	err := r.db.GetContext(ctx, &stored, query,
		p.ClubID, p.UserID, p.BookID, p.CurrentPage, p.TotalPages, p.Percent)
	if err != nil {
		logger.Log.Errorw("progress upsert failed",
			"club_id", p.ClubID, "user_id", p.UserID, "book_id", p.BookID, "error", err)
		return nil, err
	}
	return &stored, nil
}

// ListByClub returns every member's progress in one club, most recently
// updated first.
func (r *ProgressRepository) ListByClub(ctx context.Context, clubID uuid.UUID) ([]models.ReadingProgress, error) {
	const query = `
		SELECT club_id, user_id, book_id, current_page, total_pages, percent, updated_at
		FROM reading_progress
		WHERE club_id = $1
		ORDER BY updated_at DESC
	`

	var rows []models.ReadingProgress
	if err := r.db.SelectContext(ctx, &rows, query, clubID); err != nil {
		logger.Log.Errorw("progress list failed", "club_id", clubID, "error", err)
		return nil, err
	}
	return rows, nil
}
