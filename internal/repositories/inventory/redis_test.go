package inventory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/noctale/noctale/internal/errors"
	mockclock "github.com/noctale/noctale/internal/pkg/clock/mock"
	"github.com/noctale/noctale/internal/repositories/inventory"
)

const (
	testGuildID = "guild_123"
	testUserID  = "user_456"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	miniRedis *miniredis.Miniredis
	clock     *mockclock.MockClock
	now       time.Time
	repo      inventory.Repository
	ctx       context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.miniRedis = mr

	s.ctrl = gomock.NewController(s.T())
	s.clock = mockclock.NewMockClock(s.ctrl)
	s.now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s.clock.EXPECT().Now().DoAndReturn(func() time.Time { return s.now }).AnyTimes()

	client := redis.NewClient(&redis.Options{
		Addr: s.miniRedis.Addr(),
	})

	repo, err := inventory.NewRedisRepository(&inventory.Config{
		Client: client,
		Clock:  s.clock,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.miniRedis.Close()
	s.ctrl.Finish()
}

func (s *RedisRepositoryTestSuite) addInput(characterID string) inventory.AddCharacterInput {
	return inventory.AddCharacterInput{
		GuildID:     testGuildID,
		UserID:      testUserID,
		CharacterID: characterID,
		MediaID:     "pack:media",
		Rating:      3,
	}
}

func (s *RedisRepositoryTestSuite) TestAddCharacter() {
	out, err := s.repo.AddCharacter(s.ctx, s.addInput("pack:hero"))
	s.Require().NoError(err)
	s.Equal("pack:hero", out.Record.CharacterID)
	s.Equal(s.now, out.Record.CreatedAt)
}

func (s *RedisRepositoryTestSuite) TestAddCharacterDuplicate() {
	_, err := s.repo.AddCharacter(s.ctx, s.addInput("pack:hero"))
	s.Require().NoError(err)

	_, err = s.repo.AddCharacter(s.ctx, s.addInput("pack:hero"))
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestConcurrentAddsOneWinner() {
	const attempts = 8

	var wg sync.WaitGroup
	results := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = s.repo.AddCharacter(s.ctx, s.addInput("pack:contested"))
		}(i)
	}
	wg.Wait()

	var wins, duplicates int
	for _, err := range results {
		switch {
		case err == nil:
			wins++
		case errors.IsAlreadyExists(err):
			duplicates++
		default:
			s.Failf("unexpected error", "%v", err)
		}
	}

	s.Equal(1, wins)
	s.Equal(attempts-1, duplicates)
}

func (s *RedisRepositoryTestSuite) TestGetActiveUsersIfLiked() {
	// liker pulled recently
	_, err := s.repo.AddCharacter(s.ctx, s.addInput("pack:hero"))
	s.Require().NoError(err)

	_, err = s.repo.Like(s.ctx, inventory.LikeInput{
		GuildID:  testGuildID,
		UserID:   testUserID,
		Target:   inventory.LikeTargetCharacter,
		TargetID: "pack:hero",
	})
	s.Require().NoError(err)

	// media liker who never pulled is not active
	_, err = s.repo.Like(s.ctx, inventory.LikeInput{
		GuildID:  testGuildID,
		UserID:   "user_idle",
		Target:   inventory.LikeTargetMedia,
		TargetID: "pack:media",
	})
	s.Require().NoError(err)

	out, err := s.repo.GetActiveUsersIfLiked(s.ctx, inventory.GetActiveUsersIfLikedInput{
		GuildID:     testGuildID,
		CharacterID: "pack:hero",
		MediaIDs:    []string{"pack:media"},
	})
	s.Require().NoError(err)
	s.Equal([]string{testUserID}, out.UserIDs)
}

func (s *RedisRepositoryTestSuite) TestActiveWindowExpires() {
	_, err := s.repo.AddCharacter(s.ctx, s.addInput("pack:hero"))
	s.Require().NoError(err)

	_, err = s.repo.Like(s.ctx, inventory.LikeInput{
		GuildID:  testGuildID,
		UserID:   testUserID,
		Target:   inventory.LikeTargetCharacter,
		TargetID: "pack:hero",
	})
	s.Require().NoError(err)

	// a month later the liker no longer counts as active
	s.now = s.now.Add(30 * 24 * time.Hour)

	out, err := s.repo.GetActiveUsersIfLiked(s.ctx, inventory.GetActiveUsersIfLikedInput{
		GuildID:     testGuildID,
		CharacterID: "pack:hero",
	})
	s.Require().NoError(err)
	s.Empty(out.UserIDs)
}

func (s *RedisRepositoryTestSuite) TestUnlike() {
	like := inventory.LikeInput{
		GuildID:  testGuildID,
		UserID:   testUserID,
		Target:   inventory.LikeTargetCharacter,
		TargetID: "pack:hero",
	}

	_, err := s.repo.AddCharacter(s.ctx, s.addInput("pack:hero"))
	s.Require().NoError(err)
	_, err = s.repo.Like(s.ctx, like)
	s.Require().NoError(err)
	_, err = s.repo.Unlike(s.ctx, like)
	s.Require().NoError(err)

	out, err := s.repo.GetActiveUsersIfLiked(s.ctx, inventory.GetActiveUsersIfLikedInput{
		GuildID:     testGuildID,
		CharacterID: "pack:hero",
	})
	s.Require().NoError(err)
	s.Empty(out.UserIDs)
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	_, err := s.repo.AddCharacter(s.ctx, inventory.AddCharacterInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Like(s.ctx, inventory.LikeInput{
		GuildID:  testGuildID,
		UserID:   testUserID,
		Target:   "playlist",
		TargetID: "x",
	})
	s.True(errors.IsInvalidArgument(err))
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
