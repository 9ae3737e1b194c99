package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/bookclubhq/bookclub-server/internal/logger"
	"github.com/bookclubhq/bookclub-server/internal/models"
)

// Club errors.
var (
	ErrClubNotFound    = errors.New("club not found")
	ErrAlreadyMember   = errors.New("already a member of this club")
	ErrNotMember       = errors.New("not a member of this club")
	ErrInvalidProgress = errors.New("invalid reading progress")
)

// ClubStore defines club and membership persistence.
type ClubStore interface {
	Save(ctx context.Context, club *models.Club) error
	List(ctx context.Context) ([]models.Club, error)
	GetByID(ctx context.Context, clubID uuid.UUID) (*models.Club, error)
	AddMember(ctx context.Context, clubID uuid.UUID, userID string) (bool, error)
	RemoveMember(ctx context.Context, clubID uuid.UUID, userID string) (bool, error)
	ListMembers(ctx context.Context, clubID uuid.UUID) ([]models.ClubMember, error)
}

// ProgressStore defines reading-progress persistence.
type ProgressStore interface {
	Upsert(ctx context.Context, p *models.ReadingProgress) (*models.ReadingProgress, error)
	ListByClub(ctx context.Context, clubID uuid.UUID) ([]models.ReadingProgress, error)
}

// ClubService manages clubs, memberships and per-member reading progress.
type ClubService struct {
	clubs    ClubStore
	progress ProgressStore
}

// NewClubService creates a new ClubService.
func NewClubService(clubs ClubStore, progress ProgressStore) *ClubService {
	return &ClubService{clubs: clubs, progress: progress}
}

// Create stores a new club; the creator becomes its owner and first member.
func (s *ClubService) Create(ctx context.Context, ownerID, name, description, genre string) (*models.Club, error) {
	club := &models.Club{
		ClubID:      uuid.New(),
		Name:        name,
		Description: description,
		Genre:       genre,
		OwnerID:     ownerID,
	}

	if err := s.clubs.Save(ctx, club); err != nil {
		logger.Log.Errorw("failed to save club", "name", name, "err", err)
		return nil, err
	}
	club.MemberCount = 1
	return club, nil
}

// List returns all clubs.
func (s *ClubService) List(ctx context.Context) ([]models.Club, error) {
	return s.clubs.List(ctx)
}

// Get returns one club with its members.
func (s *ClubService) Get(ctx context.Context, clubID uuid.UUID) (*models.Club, []models.ClubMember, error) {
	club, err := s.clubs.GetByID(ctx, clubID)
	if err != nil {
		return nil, nil, err
	}
	if club == nil {
		return nil, nil, ErrClubNotFound
	}

	members, err := s.clubs.ListMembers(ctx, clubID)
	if err != nil {
		return nil, nil, err
	}
	return club, members, nil
}

// Join adds the user to the club.
func (s *ClubService) Join(ctx context.Context, clubID uuid.UUID, userID string) error {
	club, err := s.clubs.GetByID(ctx, clubID)
	if err != nil {
		return err
	}
	if club == nil {
		return ErrClubNotFound
	}

	added, err := s.clubs.AddMember(ctx, clubID, userID)
	if err != nil {
		return err
	}
	if !added {
		return ErrAlreadyMember
	}
	return nil
}

// Leave removes the user from the club.
func (s *ClubService) Leave(ctx context.Context, clubID uuid.UUID, userID string) error {
	removed, err := s.clubs.RemoveMember(ctx, clubID, userID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotMember
	}
	return nil
}

// SaveProgress upserts the member's position in one book. The completion
// percentage is derived from the page counts.
func (s *ClubService) SaveProgress(ctx context.Context, clubID uuid.UUID, userID, bookID string, currentPage, totalPages int) (*models.ReadingProgress, error) {
	if totalPages <= 0 || currentPage < 0 || currentPage > totalPages {
		return nil, ErrInvalidProgress
	}

	members, err := s.clubs.ListMembers(ctx, clubID)
	if err != nil {
		return nil, err
	}
	isMember := false
	for _, m := range members {
		if m.UserID == userID {
			isMember = true
			break
		}
	}
	if !isMember {
		return nil, ErrNotMember
	}

	p := &models.ReadingProgress{
		ClubID:      clubID,
		UserID:      userID,
		BookID:      bookID,
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		Percent:     float64(currentPage) / float64(totalPages) * 100,
	}

	return s.progress.Upsert(ctx, p)
}

// ListProgress returns every member's progress in one club.
func (s *ClubService) ListProgress(ctx context.Context, clubID uuid.UUID) ([]models.ReadingProgress, error) {
	club, err := s.clubs.GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if club == nil {
		return nil, ErrClubNotFound
	}
	return s.progress.ListByClub(ctx, clubID)
}
