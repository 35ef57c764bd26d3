package event

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkCreated(t *testing.T) {
	expiresAt := time.Now().UTC().Add(time.Minute)
	e := NewLinkCreated("abc1234", "https://example.com", expiresAt)

	assert.Equal(t, "link.created", e.EventName())
	assert.Equal(t, "abc1234", e.AggregateID())
	assert.Equal(t, "abc1234", e.Code)
	assert.Equal(t, "https://example.com", e.OriginalURL)
	assert.Equal(t, expiresAt, e.ExpiresAt)
	assert.False(t, e.OccurredAt().IsZero())
}

func TestLinkClicked(t *testing.T) {
	e := NewLinkClicked("abc1234", true)

	assert.Equal(t, "link.clicked", e.EventName())
	assert.Equal(t, "abc1234", e.AggregateID())
	assert.True(t, e.Counted)
}

func TestLinkExpired(t *testing.T) {
	expiredAt := time.Now().UTC()
	e := NewLinkExpired("abc1234", expiredAt)

	assert.Equal(t, "link.expired", e.EventName())
	assert.Equal(t, "abc1234", e.AggregateID())
	assert.Equal(t, expiredAt, e.ExpiredAt)
}

func TestLinkDeleted(t *testing.T) {
	deletedAt := time.Now().UTC()
	e := NewLinkDeleted("abc1234", deletedAt)

	assert.Equal(t, "link.deleted", e.EventName())
	assert.Equal(t, "abc1234", e.AggregateID())
	assert.Equal(t, deletedAt, e.DeletedAt)
}

func TestNewBase_AssignsTimeOrderedIDs(t *testing.T) {
	first := NewBase("abc1234")
	second := NewBase("abc1234")

	id, err := uuid.Parse(first.EventID())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.NotEqual(t, first.EventID(), second.EventID())
	assert.Less(t, first.EventID(), second.EventID())
}

func TestNames(t *testing.T) {
	assert.ElementsMatch(t, []string{"link.created", "link.clicked", "link.deleted", "link.expired"}, Names)
}
