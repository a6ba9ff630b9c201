package testutil

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"shortlink/shortlink/internal/model"
)

// LinkBuilder builds ShortLink fixtures with optional overrides.
type LinkBuilder struct {
	id          string
	code        string
	originalURL string
	expiresAt   *time.Time
	clickCount  int64
	createdAt   time.Time
}

// NewLinkBuilder creates a new builder with default values.
func NewLinkBuilder() *LinkBuilder {
	return &LinkBuilder{
		id:          uuid.New().String(),
		code:        RandomCode(),
		originalURL: "https://example.com/test",
		createdAt:   time.Now(),
	}
}

func (b *LinkBuilder) WithCode(code string) *LinkBuilder {
	b.code = code
	return b
}

func (b *LinkBuilder) WithOriginalURL(originalURL string) *LinkBuilder {
	b.originalURL = originalURL
	return b
}

func (b *LinkBuilder) WithExpiresAt(t time.Time) *LinkBuilder {
	b.expiresAt = &t
	return b
}

func (b *LinkBuilder) WithClickCount(n int64) *LinkBuilder {
	b.clickCount = n
	return b
}

func (b *LinkBuilder) Build() model.ShortLink {
	return model.ShortLink{
		ID:          b.id,
		Code:        b.code,
		OriginalURL: b.originalURL,
		CreatedAt:   b.createdAt,
		ExpiresAt:   b.expiresAt,
		ClickCount:  b.clickCount,
	}
}

// RandomCode generates a random 6-character code for testing.
func RandomCode() string {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, 6)
	for i := range b {
		b[i] = chars[rand.Intn(len(chars))]
	}
	return string(b)
}

// RandomURL generates a random URL for testing.
func RandomURL() string {
	domains := []string{"example.com", "test.org", "sample.net", "demo.io"}
	paths := []string{"path", "resource", "page", "item", "content"}

	domain := domains[rand.Intn(len(domains))]
	path := paths[rand.Intn(len(paths))]
	id := rand.Intn(10000)

	return fmt.Sprintf("https://%s/%s/%d", domain, path, id)
}

// ValidURLs returns a slice of URLs the shorten endpoint accepts.
func ValidURLs() []string {
	return []string{
		"https://example.com",
		"http://example.com",
		"https://subdomain.example.com/path",
		"http://example.com:8080/path?query=value",
		"https://example.com/path/to/resource#fragment",
		"https://192.168.1.1:8080/api",
		"http://localhost:3000/development",
	}
}

// InvalidURLs returns a slice of URLs the shorten endpoint rejects.
func InvalidURLs() []string {
	return []string{
		"not-a-url",
		"example.com",
		"ftp://example.com",
		"file:///etc/passwd",
		"javascript:alert('xss')",
		"mailto:user@example.com",
		"",
		"   ",
	}
}
