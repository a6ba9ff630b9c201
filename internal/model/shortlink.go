package model

import "time"

// ShortLink is a single row in the short_links table. ExpiresAt is nil for
// links that never expire.
type ShortLink struct {
	ID          string     `json:"id"`
	Code        string     `json:"short_code"`
	OriginalURL string     `json:"original_url"`
	CreatedAt   time.Time  `json:"created_at"`
	ExpiresAt   *time.Time `json:"expires_at"`
	ClickCount  int64      `json:"click_count"`
}

type CreateReq struct {
	URL       string     `json:"url" binding:"required"`
	ExpiresAt *time.Time `json:"expires_at"`
}

type CreateResp struct {
	ShortURL  string `json:"short_url"`
	ShortCode string `json:"short_code"`
}

type StatsResp struct {
	ShortCode   string     `json:"short_code"`
	OriginalURL string     `json:"original_url"`
	ClickCount  int64      `json:"click_count"`
	CreatedAt   time.Time  `json:"created_at"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

type DebugURL struct {
	ShortCode   string `json:"short_code"`
	OriginalURL string `json:"original_url"`
}
