package data

import (
	"context"
	"testing"
	"time"

	"shortlink/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type CachedLinkRepositoryTestSuite struct {
	suite.Suite
	ctx   context.Context
	mr    *miniredis.Miniredis
	data  *Data
	store *LinkRepo
	sut   domain.LinkRepository
}

func TestCachedLinkRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CachedLinkRepositoryTestSuite))
}

func (s *CachedLinkRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mr = newMiniredis(s.T())
	s.data = newTestData(s.T())
	s.data.rdb = redis.NewClient(&redis.Options{Addr: s.mr.Addr()})
	s.T().Cleanup(func() { s.data.rdb.Close() })

	s.store = NewLinkRepo(s.data, log.DefaultLogger)
	cache := NewRedisLinkCache(s.data.rdb, time.Minute, log.DefaultLogger)
	s.sut = NewCachedLinkRepository(s.store, cache)
}

func (s *CachedLinkRepositoryTestSuite) insert(code string) *domain.Link {
	link := newLink(s.T(), code, time.Now().UTC())
	s.Require().NoError(s.sut.Insert(s.ctx, link))
	return link
}

func (s *CachedLinkRepositoryTestSuite) TestInsertDoesNotPopulateCache() {
	s.insert("abc1234")

	s.False(s.mr.Exists(cacheKey("abc1234")))
}

func (s *CachedLinkRepositoryTestSuite) TestFindByCode_PopulatesCache() {
	// Arrange
	link := s.insert("abc1234")

	// Act
	found, err := s.sut.FindByCode(s.ctx, "abc1234")

	// Assert
	s.Require().NoError(err)
	s.Equal(link.ID, found.ID)
	s.True(s.mr.Exists(cacheKey("abc1234")))
}

func (s *CachedLinkRepositoryTestSuite) TestFindByCode_ServesFromCache() {
	// Arrange
	s.insert("abc1234")
	_, err := s.sut.FindByCode(s.ctx, "abc1234")
	s.Require().NoError(err)
	_, err = s.data.db.Exec("DELETE FROM links WHERE code = ?", "abc1234")
	s.Require().NoError(err)

	// Act
	found, err := s.sut.FindByCode(s.ctx, "abc1234")

	// Assert
	s.Require().NoError(err)
	s.Equal("abc1234", found.Code)
}

func (s *CachedLinkRepositoryTestSuite) TestFindByCode_NotFoundIsNotCached() {
	_, err := s.sut.FindByCode(s.ctx, "zzzzzzz")

	s.ErrorIs(err, domain.ErrLinkNotFound)
	s.False(s.mr.Exists(cacheKey("zzzzzzz")))
}

func (s *CachedLinkRepositoryTestSuite) TestSoftDelete_TombstonesCache() {
	// Arrange
	s.insert("abc1234")
	_, err := s.sut.FindByCode(s.ctx, "abc1234")
	s.Require().NoError(err)

	// Act
	n, err := s.sut.SoftDelete(s.ctx, "abc1234", time.Now().UTC())

	// Assert
	s.Require().NoError(err)
	s.Equal(int64(1), n)
	found, err := s.sut.FindByCode(s.ctx, "abc1234")
	s.Require().NoError(err)
	s.NotNil(found.DeletedAt, "lookup after delete reads the deleted row from the store")
	value, err := s.mr.Get(cacheKey("abc1234"))
	s.Require().NoError(err)
	s.Equal(tombstone, value, "the tombstone survives the repopulation attempt")
}

func (s *CachedLinkRepositoryTestSuite) TestIncrementClickCount_WritesThrough() {
	// Arrange
	s.insert("abc1234")

	// Act
	s.Require().NoError(s.sut.IncrementClickCount(s.ctx, "abc1234"))

	// Assert
	stored, err := s.store.FindByCode(s.ctx, "abc1234")
	s.Require().NoError(err)
	s.Equal(int64(1), stored.ClickCount)
}

func (s *CachedLinkRepositoryTestSuite) TestListsReadTheStore() {
	s.insert("aaaaaaa")
	s.insert("bbbbbbb")
	_, err := s.sut.SoftDelete(s.ctx, "aaaaaaa", time.Now().UTC())
	s.Require().NoError(err)

	active, err := s.sut.ListActive(s.ctx)
	s.Require().NoError(err)
	all, err := s.sut.ListAll(s.ctx)
	s.Require().NoError(err)

	s.Equal([]string{"bbbbbbb"}, codes(active))
	s.Len(all, 2)
}
