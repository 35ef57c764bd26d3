package data

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"shortlink/internal/domain"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newLink(t *testing.T, code string, createdAt time.Time) *domain.Link {
	t.Helper()
	c, err := domain.ParseCode(code)
	require.NoError(t, err)
	u, err := domain.NewOriginalURL("https://example.com/" + code)
	require.NoError(t, err)
	ttl, err := domain.ParseTTL("1h")
	require.NoError(t, err)
	return domain.NewLink(c, u, ttl, createdAt)
}

func newTestRepo(t *testing.T) *LinkRepo {
	t.Helper()
	return NewLinkRepo(newTestData(t), log.DefaultLogger)
}

func TestLinkRepo_InsertAndFind(t *testing.T) {
	// Arrange
	repo := newTestRepo(t)
	ctx := context.Background()
	link := newLink(t, "abc1234", baseTime)

	// Act
	err := repo.Insert(ctx, link)
	require.NoError(t, err)
	found, err := repo.FindByCode(ctx, "abc1234")

	// Assert
	require.NoError(t, err)
	assert.NotZero(t, link.ID)
	assert.Equal(t, link.ID, found.ID)
	assert.Equal(t, "abc1234", found.Code)
	assert.Equal(t, "https://example.com/abc1234", found.OriginalURL)
	assert.True(t, baseTime.Equal(found.CreatedAt))
	assert.Equal(t, time.UTC, found.CreatedAt.Location())
	require.NotNil(t, found.ExpiresAt)
	assert.True(t, baseTime.Add(time.Hour).Equal(*found.ExpiresAt))
	assert.Zero(t, found.ClickCount)
	assert.Nil(t, found.DeletedAt)
}

func TestLinkRepo_FindByCode_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	found, err := repo.FindByCode(context.Background(), "zzzzzzz")

	assert.ErrorIs(t, err, domain.ErrLinkNotFound)
	assert.Nil(t, found)
}

func TestLinkRepo_Insert_DuplicateCode(t *testing.T) {
	// Arrange
	repo := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Insert(ctx, newLink(t, "abc1234", baseTime)))

	// Act
	err := repo.Insert(ctx, newLink(t, "abc1234", baseTime.Add(time.Minute)))

	// Assert
	assert.ErrorIs(t, err, domain.ErrCodeTaken)
}

func TestLinkRepo_Insert_DuplicateOfDeletedCode(t *testing.T) {
	// Arrange
	repo := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Insert(ctx, newLink(t, "abc1234", baseTime)))
	n, err := repo.SoftDelete(ctx, "abc1234", baseTime.Add(time.Second))
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	// Act
	err = repo.Insert(ctx, newLink(t, "abc1234", baseTime.Add(time.Minute)))

	// Assert
	assert.ErrorIs(t, err, domain.ErrCodeTaken, "deleted codes are never reused")
}

func TestLinkRepo_IncrementClickCount(t *testing.T) {
	// Arrange
	repo := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Insert(ctx, newLink(t, "abc1234", baseTime)))

	// Act
	require.NoError(t, repo.IncrementClickCount(ctx, "abc1234"))
	require.NoError(t, repo.IncrementClickCount(ctx, "abc1234"))

	// Assert
	found, err := repo.FindByCode(ctx, "abc1234")
	require.NoError(t, err)
	assert.Equal(t, int64(2), found.ClickCount)
}

func TestLinkRepo_IncrementClickCount_Unknown(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.IncrementClickCount(context.Background(), "zzzzzzz")

	assert.ErrorIs(t, err, domain.ErrLinkNotFound)
}

func TestLinkRepo_IncrementClickCount_Concurrent(t *testing.T) {
	// Arrange
	repo := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Insert(ctx, newLink(t, "abc1234", baseTime)))

	// Act
	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.IncrementClickCount(ctx, "abc1234"))
		}()
	}
	wg.Wait()

	// Assert
	found, err := repo.FindByCode(ctx, "abc1234")
	require.NoError(t, err)
	assert.Equal(t, int64(10), found.ClickCount)
}

func TestLinkRepo_SoftDelete(t *testing.T) {
	// Arrange
	repo := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Insert(ctx, newLink(t, "abc1234", baseTime)))
	deletedAt := baseTime.Add(5 * time.Minute)

	// Act
	first, err := repo.SoftDelete(ctx, "abc1234", deletedAt)
	require.NoError(t, err)
	second, err := repo.SoftDelete(ctx, "abc1234", deletedAt.Add(time.Minute))
	require.NoError(t, err)
	unknown, err := repo.SoftDelete(ctx, "zzzzzzz", deletedAt)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, int64(1), first)
	assert.Zero(t, second)
	assert.Zero(t, unknown)

	found, err := repo.FindByCode(ctx, "abc1234")
	require.NoError(t, err, "soft deleted rows stay readable")
	require.NotNil(t, found.DeletedAt)
	assert.True(t, deletedAt.Equal(*found.DeletedAt), "second delete keeps the first timestamp")
}

func TestLinkRepo_SoftDelete_Concurrent(t *testing.T) {
	// Arrange
	repo := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Insert(ctx, newLink(t, "abc1234", baseTime)))

	// Act
	var (
		wg      sync.WaitGroup
		changed atomic.Int64
	)
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := repo.SoftDelete(ctx, "abc1234", baseTime.Add(time.Duration(i+1)*time.Second))
			assert.NoError(t, err)
			changed.Add(n)
		}()
	}
	wg.Wait()

	// Assert
	assert.Equal(t, int64(1), changed.Load())
	found, err := repo.FindByCode(ctx, "abc1234")
	require.NoError(t, err)
	assert.NotNil(t, found.DeletedAt)
}

func TestLinkRepo_Lists(t *testing.T) {
	// Arrange
	repo := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Insert(ctx, newLink(t, "aaaaaaa", baseTime)))
	require.NoError(t, repo.Insert(ctx, newLink(t, "bbbbbbb", baseTime.Add(time.Second))))
	require.NoError(t, repo.Insert(ctx, newLink(t, "ccccccc", baseTime.Add(2*time.Second))))
	// Same timestamp as ccccccc; the higher id sorts first.
	require.NoError(t, repo.Insert(ctx, newLink(t, "ddddddd", baseTime.Add(2*time.Second))))
	_, err := repo.SoftDelete(ctx, "bbbbbbb", baseTime.Add(time.Minute))
	require.NoError(t, err)

	// Act
	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	all, err := repo.ListAll(ctx)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, []string{"ddddddd", "ccccccc", "aaaaaaa"}, codes(active))
	assert.Equal(t, []string{"ddddddd", "ccccccc", "bbbbbbb", "aaaaaaa"}, codes(all))
	assert.NotNil(t, all[2].DeletedAt)
}

func TestLinkRepo_Lists_Empty(t *testing.T) {
	repo := newTestRepo(t)

	active, err := repo.ListActive(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, active)
	assert.Empty(t, active)
}

func codes(links []*domain.Link) []string {
	out := make([]string, len(links))
	for i, l := range links {
		out[i] = l.Code
	}
	return out
}
