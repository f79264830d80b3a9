package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type oauthStateStore struct {
	client redis.Cmdable
	prefix string
}

// NewOAuthStateStore keeps OAuth state in Redis under prefix+state.
func NewOAuthStateStore(client redis.Cmdable, prefix string) OAuthStateStore {
	return &oauthStateStore{client: client, prefix: prefix}
}

func (s *oauthStateStore) Save(ctx context.Context, state string, value OAuthState, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal oauth state: %w", err)
	}
	if err := s.client.Set(ctx, s.prefix+state, payload, ttl).Err(); err != nil {
		return fmt.Errorf("save oauth state: %w", err)
	}
	return nil
}

// Consume reads and deletes the state in one round trip so a state value
// can never be replayed.
func (s *oauthStateStore) Consume(ctx context.Context, state string) (*OAuthState, error) {
	raw, err := s.client.GetDel(ctx, s.prefix+state).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("consume oauth state: %w", err)
	}

	var value OAuthState
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, fmt.Errorf("unmarshal oauth state: %w", err)
	}
	return &value, nil
}
