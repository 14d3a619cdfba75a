package session

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/daygrid/scheduler/internal/errdef"
	"github.com/daygrid/scheduler/pkg/model"

	"github.com/go-redis/redis"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewRepository(client *redis.Client) *redisRepository {
	return &redisRepository{client}
}

type redisRepository struct {
	client *redis.Client
}

func sessionKey(id string) string {
	return "session:" + id
}

func userSessionsKey(userID uint) string {
	return fmt.Sprintf("user-sessions:%d", userID)
}

func (r redisRepository) SetSession(id string, user model.User, ttl time.Duration) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode session user: %v", err)
	}

	if err := r.client.Set(sessionKey(id), payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %v", err)
	}

	// The per-user index lives at least as long as its newest session so
	// sign out can drop every session of the user.
	if err := r.client.SAdd(userSessionsKey(user.ID), id).Err(); err != nil {
		return fmt.Errorf("failed to index session: %v", err)
	}
	return r.client.Expire(userSessionsKey(user.ID), ttl).Err()
}

func (r redisRepository) GetSession(id string) (*model.User, error) {
	payload, err := r.client.Get(sessionKey(id)).Bytes()
	if err == redis.Nil {
		return nil, errdef.NewUnauthorized("session not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %v", err)
	}

	var user model.User
	if err := json.Unmarshal(payload, &user); err != nil {
		return nil, fmt.Errorf("failed to decode session user: %v", err)
	}
	return &user, nil
}

func (r redisRepository) DeleteSessions(userID uint) error {
	ids, err := r.client.SMembers(userSessionsKey(userID)).Result()
	if err != nil {
		return fmt.Errorf("failed to list sessions of user %d: %v", userID, err)
	}

	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, sessionKey(id))
	}
	keys = append(keys, userSessionsKey(userID))

	return r.client.Del(keys...).Err()
}
