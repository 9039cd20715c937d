package quizsessions

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/character-forge/internal/domain/quiz"
	"github.com/KirkDiggler/character-forge/internal/domain/traits"
	dnderr "github.com/KirkDiggler/character-forge/internal/errors"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient *redis.Client
	mock       redismock.ClientMock
	repo       Repository
	ttl        time.Duration
	now        time.Time
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.ttl = 24 * time.Hour
	s.now = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	s.repo = NewRedisRepository(&RedisRepoConfig{
		Client: s.mockClient,
		TTL:    s.ttl,
	})
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) encode(session *quiz.Session) string {
	jsonData, err := json.Marshal(toSessionData(session))
	s.Require().NoError(err)
	return string(jsonData)
}

func (s *RedisRepoTestSuite) TestCreate() {
	ctx := context.Background()
	session := quiz.NewSession("test-id", "owner-id", s.now)
	payload := s.encode(session)

	// Happy path
	s.mock.ExpectExists("quiz_session:test-id").SetVal(0)
	s.mock.ExpectSet("quiz_session:test-id", payload, s.ttl).SetVal("OK")
	s.mock.ExpectSAdd("owner:owner-id:quiz_sessions", "test-id").SetVal(1)
	s.mock.ExpectExpire("owner:owner-id:quiz_sessions", s.ttl).SetVal(true)

	s.NoError(s.repo.Create(ctx, session))

	// Already exists
	s.mock.ExpectExists("quiz_session:test-id").SetVal(1)

	err := s.repo.Create(ctx, session)
	s.True(dnderr.Is(err, dnderr.CodeAlreadyExists))

	// Dependency error
	s.mock.ExpectExists("quiz_session:test-id").SetVal(0)
	s.mock.ExpectSet("quiz_session:test-id", payload, s.ttl).SetErr(errors.New("redis error"))

	s.Error(s.repo.Create(ctx, session))

	// Input validation
	s.Error(s.repo.Create(ctx, nil))
}

func (s *RedisRepoTestSuite) TestGet() {
	ctx := context.Background()
	session := quiz.NewSession("test-id", "owner-id", s.now)
	session.Vector[traits.Curiosity] = 4
	session.Answers = []string{"c", "c"}
	session.Current = 2

	s.mock.ExpectGet("quiz_session:test-id").SetVal(s.encode(session))

	got, err := s.repo.Get(ctx, "test-id")
	s.Require().NoError(err)
	s.Equal(session, got)

	// Not found
	s.mock.ExpectGet("quiz_session:missing").RedisNil()

	_, err = s.repo.Get(ctx, "missing")
	s.True(dnderr.IsNotFound(err))

	// Dependency error keeps the unknown code
	s.mock.ExpectGet("quiz_session:test-id").SetErr(errors.New("connection refused"))

	_, err = s.repo.Get(ctx, "test-id")
	s.Error(err)
	s.False(dnderr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestUpdate() {
	ctx := context.Background()
	session := quiz.NewSession("test-id", "owner-id", s.now)
	session.Complete("char-id", s.now.Add(time.Minute))
	payload := s.encode(session)

	s.mock.ExpectExists("quiz_session:test-id").SetVal(1)
	s.mock.ExpectSet("quiz_session:test-id", payload, s.ttl).SetVal("OK")
	s.mock.ExpectSAdd("owner:owner-id:quiz_sessions", "test-id").SetVal(0)
	s.mock.ExpectExpire("owner:owner-id:quiz_sessions", s.ttl).SetVal(true)

	s.NoError(s.repo.Update(ctx, session))

	s.mock.ExpectExists("quiz_session:test-id").SetVal(0)

	s.True(dnderr.IsNotFound(s.repo.Update(ctx, session)))
}

func (s *RedisRepoTestSuite) TestDelete() {
	ctx := context.Background()
	session := quiz.NewSession("test-id", "owner-id", s.now)

	s.mock.ExpectGet("quiz_session:test-id").SetVal(s.encode(session))
	s.mock.ExpectDel("quiz_session:test-id").SetVal(1)
	s.mock.ExpectSRem("owner:owner-id:quiz_sessions", "test-id").SetVal(1)

	s.NoError(s.repo.Delete(ctx, "test-id"))
}

func (s *RedisRepoTestSuite) TestListByOwner() {
	ctx := context.Background()
	older := quiz.NewSession("older", "owner-id", s.now)
	newer := quiz.NewSession("newer", "owner-id", s.now.Add(time.Hour))

	s.mock.MatchExpectationsInOrder(false)
	s.mock.ExpectSMembers("owner:owner-id:quiz_sessions").SetVal([]string{"newer", "expired", "older"})
	s.mock.ExpectGet("quiz_session:newer").SetVal(s.encode(newer))
	s.mock.ExpectGet("quiz_session:expired").RedisNil()
	s.mock.ExpectGet("quiz_session:older").SetVal(s.encode(older))
	s.mock.ExpectSRem("owner:owner-id:quiz_sessions", "expired").SetVal(1)

	sessions, err := s.repo.ListByOwner(ctx, "owner-id")
	s.Require().NoError(err)
	s.Require().Len(sessions, 2)
	s.Equal("older", sessions[0].ID)
	s.Equal("newer", sessions[1].ID)
}

func (s *RedisRepoTestSuite) TestListByOwner_Error() {
	ctx := context.Background()

	s.mock.ExpectSMembers("owner:owner-id:quiz_sessions").SetErr(errors.New("redis error"))

	_, err := s.repo.ListByOwner(ctx, "owner-id")
	s.Error(err)

	_, err = s.repo.ListByOwner(ctx, "")
	s.True(dnderr.Is(err, dnderr.CodeInvalidArgument))
}
