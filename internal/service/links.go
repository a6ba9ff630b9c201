package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"shortlink/shortlink/internal/model"
	"shortlink/shortlink/internal/repo"
	"shortlink/shortlink/internal/util"
)

const PgUniqueViolation pq.ErrorCode = "23505"

const maxInsertAttempts = 5

type Links interface {
	Shorten(ctx context.Context, originalURL string, expiresAt *time.Time) (rec model.ShortLink, created bool, err error)
	Resolve(ctx context.Context, code string) (string, error)
	CountClick(ctx context.Context, code string) error
	Stats(ctx context.Context, code string) (model.ShortLink, error)
	ListAll(ctx context.Context) ([]model.ShortLink, error)
}

type links struct {
	r   repo.LinkRepo
	now func() time.Time
}

func NewLinks(r repo.LinkRepo) Links { return &links{r: r, now: time.Now} }

// Shorten returns the existing record for an already-stored URL, ignoring the
// newly supplied expiry, or inserts a new one. A unique violation on the code
// column regenerates the code; one on original_url means another request won
// the insert race and its record is returned instead.
func (s *links) Shorten(ctx context.Context, originalURL string, expiresAt *time.Time) (model.ShortLink, bool, error) {
	originalURL = strings.TrimSpace(originalURL)

	if rec, err := s.r.GetByURL(ctx, originalURL); err == nil {
		return rec, false, nil
	}

	code := util.GenerateCode()
	id := uuid.New().String()

	for attempt := 0; attempt < maxInsertAttempts; attempt++ {
		rec, err := s.r.Insert(ctx, id, code, originalURL, expiresAt)
		if err == nil {
			return rec, true, nil
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == PgUniqueViolation && strings.Contains(pqErr.Detail, "(code)") {
			code = util.GenerateCode()
			continue
		}
		if errors.As(err, &pqErr) && pqErr.Code == PgUniqueViolation && strings.Contains(pqErr.Detail, "(original_url)") {
			if rec, recErr := s.r.GetByURL(ctx, originalURL); recErr == nil {
				return rec, false, nil
			}
		}
		return model.ShortLink{}, false, err
	}
	return model.ShortLink{}, false, errors.New("could not allocate unique code")
}

// Resolve returns the original URL for a code. It never touches the click
// count; callers invoke CountClick after a successful redirect.
func (s *links) Resolve(ctx context.Context, code string) (string, error) {
	rec, err := s.r.GetByCode(ctx, code)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}

	if rec.ExpiresAt != nil && s.now().After(*rec.ExpiresAt) {
		return "", &ExpiredError{ExpiresAt: *rec.ExpiresAt}
	}

	return rec.OriginalURL, nil
}

func (s *links) CountClick(ctx context.Context, code string) error {
	return s.r.IncrementClicks(ctx, code)
}

func (s *links) Stats(ctx context.Context, code string) (model.ShortLink, error) {
	rec, err := s.r.GetByCode(ctx, code)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ShortLink{}, ErrNotFound
	}
	return rec, err
}

func (s *links) ListAll(ctx context.Context) ([]model.ShortLink, error) {
	return s.r.ListAll(ctx)
}
