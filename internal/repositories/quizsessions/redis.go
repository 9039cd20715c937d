package quizsessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/character-forge/internal/domain/quiz"
	"github.com/KirkDiggler/character-forge/internal/domain/traits"
	dnderr "github.com/KirkDiggler/character-forge/internal/errors"
)

// Data is the stored form of a session
type Data struct {
	ID          string             `json:"id"`
	OwnerID     string             `json:"owner_id"`
	Stats       map[string]int     `json:"stats"`
	Current     int                `json:"current"`
	Answers     []string           `json:"answers"`
	Status      quiz.SessionStatus `json:"status"`
	CharacterID string             `json:"character_id,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// RedisRepoConfig holds the Redis repository settings
type RedisRepoConfig struct {
	Client redis.UniversalClient
	// TTL expires idle sessions; zero keeps them forever
	TTL time.Duration
}

type redisRepo struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisRepository creates a Redis-backed session repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}
	return &redisRepo{
		client: cfg.Client,
		ttl:    cfg.TTL,
	}
}

func sessionKey(id string) string {
	return fmt.Sprintf("quiz_session:%s", id)
}

func ownerKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:quiz_sessions", ownerID)
}

func (r *redisRepo) Create(ctx context.Context, session *quiz.Session) error {
	if session == nil {
		return dnderr.InvalidArgument("session cannot be nil")
	}
	if session.ID == "" {
		return dnderr.InvalidArgument("session ID is required")
	}

	exists, err := r.client.Exists(ctx, sessionKey(session.ID)).Result()
	if err != nil {
		return dnderr.Wrapf(err, "failed to check session %s", session.ID)
	}
	if exists > 0 {
		return dnderr.AlreadyExistsf("session with ID '%s' already exists", session.ID).
			WithMeta("session_id", session.ID)
	}

	return r.set(ctx, session)
}

func (r *redisRepo) Get(ctx context.Context, id string) (*quiz.Session, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("session ID is required")
	}

	jsonData, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, dnderr.NotFoundf("session with ID '%s' not found", id).
				WithMeta("session_id", id)
		}
		return nil, dnderr.Wrapf(err, "failed to get session %s from redis", id)
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, dnderr.Wrapf(err, "failed to unmarshal session %s", id)
	}

	return toSession(&data), nil
}

func (r *redisRepo) Update(ctx context.Context, session *quiz.Session) error {
	if session == nil {
		return dnderr.InvalidArgument("session cannot be nil")
	}

	exists, err := r.client.Exists(ctx, sessionKey(session.ID)).Result()
	if err != nil {
		return dnderr.Wrapf(err, "failed to check session %s", session.ID)
	}
	if exists == 0 {
		return dnderr.NotFoundf("session with ID '%s' not found", session.ID).
			WithMeta("session_id", session.ID)
	}

	return r.set(ctx, session)
}

func (r *redisRepo) Delete(ctx context.Context, id string) error {
	session, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, sessionKey(id))
	pipe.SRem(ctx, ownerKey(session.OwnerID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return dnderr.Wrapf(err, "failed to delete session %s from redis", id)
	}

	return nil
}

// ListByOwner loads every session in the owner's index concurrently.
// IDs whose session has expired are pruned from the index.
func (r *redisRepo) ListByOwner(ctx context.Context, ownerID string) ([]*quiz.Session, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	sessionIDs, err := r.client.SMembers(ctx, ownerKey(ownerID)).Result()
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get sessions for owner %s", ownerID)
	}

	found := make([]*quiz.Session, len(sessionIDs))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range sessionIDs {
		i, id := i, id
		g.Go(func() error {
			session, err := r.Get(gctx, id)
			if err != nil {
				if dnderr.IsNotFound(err) {
					return nil
				}
				return err
			}
			found[i] = session
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sessions := []*quiz.Session{}
	var stale []any
	for i, session := range found {
		if session == nil {
			stale = append(stale, sessionIDs[i])
			continue
		}
		sessions = append(sessions, session)
	}

	if len(stale) > 0 {
		if err := r.client.SRem(ctx, ownerKey(ownerID), stale...).Err(); err != nil {
			return nil, dnderr.Wrapf(err, "failed to prune sessions for owner %s", ownerID)
		}
	}

	sortSessions(sessions)
	return sessions, nil
}

func (r *redisRepo) set(ctx context.Context, session *quiz.Session) error {
	jsonData, err := json.Marshal(toSessionData(session))
	if err != nil {
		return dnderr.Wrapf(err, "failed to marshal session %s", session.ID)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, sessionKey(session.ID), string(jsonData), r.ttl)
	pipe.SAdd(ctx, ownerKey(session.OwnerID), session.ID)
	if r.ttl > 0 {
		pipe.Expire(ctx, ownerKey(session.OwnerID), r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return dnderr.Wrapf(err, "failed to store session %s in redis", session.ID)
	}

	return nil
}

func toSessionData(session *quiz.Session) *Data {
	stats := make(map[string]int, len(session.Vector))
	for t, value := range session.Vector {
		stats[string(t)] = value
	}

	return &Data{
		ID:          session.ID,
		OwnerID:     session.OwnerID,
		Stats:       stats,
		Current:     session.Current,
		Answers:     session.Answers,
		Status:      session.Status,
		CharacterID: session.CharacterID,
		CreatedAt:   session.CreatedAt,
		UpdatedAt:   session.UpdatedAt,
	}
}

func toSession(data *Data) *quiz.Session {
	v := make(traits.Vector, len(data.Stats))
	for name, value := range data.Stats {
		v[traits.Trait(name)] = value
	}

	answers := data.Answers
	if answers == nil {
		answers = []string{}
	}

	return &quiz.Session{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Vector:      v,
		Current:     data.Current,
		Answers:     answers,
		Status:      data.Status,
		CharacterID: data.CharacterID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
