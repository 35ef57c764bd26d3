package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLink(t *testing.T, createdAt time.Time) *Link {
	t.Helper()
	code, err := ParseCode("abc1234")
	require.NoError(t, err)
	originalURL, err := NewOriginalURL("https://example.com")
	require.NoError(t, err)
	ttl, err := ParseTTL("1m")
	require.NoError(t, err)
	return NewLink(code, originalURL, ttl, createdAt)
}

func TestNewLink(t *testing.T) {
	createdAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	link := newTestLink(t, createdAt)

	assert.Zero(t, link.ID)
	assert.Equal(t, "abc1234", link.Code)
	assert.Equal(t, "https://example.com", link.OriginalURL)
	assert.Zero(t, link.ClickCount)
	assert.Equal(t, createdAt, link.CreatedAt)
	require.NotNil(t, link.ExpiresAt)
	assert.Equal(t, createdAt.Add(time.Minute), *link.ExpiresAt)
	assert.Nil(t, link.DeletedAt)
}

func TestLink_IsExpired(t *testing.T) {
	createdAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	link := newTestLink(t, createdAt)

	assert.False(t, link.IsExpired(createdAt))
	assert.False(t, link.IsExpired(createdAt.Add(59*time.Second)))
	assert.True(t, link.IsExpired(createdAt.Add(time.Minute)), "expiry is inclusive")
	assert.True(t, link.IsExpired(createdAt.Add(61*time.Second)))

	link.ExpiresAt = nil
	assert.False(t, link.IsExpired(createdAt.Add(24*time.Hour)))
}

func TestLink_CanRedirect(t *testing.T) {
	createdAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("active", func(t *testing.T) {
		link := newTestLink(t, createdAt)
		assert.NoError(t, link.CanRedirect(createdAt.Add(time.Second)))
	})

	t.Run("expired", func(t *testing.T) {
		link := newTestLink(t, createdAt)
		assert.ErrorIs(t, link.CanRedirect(createdAt.Add(61*time.Second)), ErrLinkExpired)
	})

	t.Run("deleted", func(t *testing.T) {
		link := newTestLink(t, createdAt)
		deletedAt := createdAt.Add(time.Second)
		link.DeletedAt = &deletedAt
		assert.True(t, link.IsDeleted())
		assert.ErrorIs(t, link.CanRedirect(createdAt.Add(2*time.Second)), ErrLinkNotFound)
	})

	t.Run("deleted and expired reads as not found", func(t *testing.T) {
		link := newTestLink(t, createdAt)
		deletedAt := createdAt.Add(time.Second)
		link.DeletedAt = &deletedAt
		assert.ErrorIs(t, link.CanRedirect(createdAt.Add(time.Hour)), ErrLinkNotFound)
	})
}
