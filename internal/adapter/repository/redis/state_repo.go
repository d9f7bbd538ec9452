package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Aarifshaik/ganga-calc/internal/domain"
)

// StateRepository persists the whole application state as one JSON
// document under a single key.
type StateRepository struct {
	client *redis.Client
	key    string
	logger zerolog.Logger
	now    func() time.Time
}

// NewStateRepository creates a StateRepository.
func NewStateRepository(client *redis.Client, key string, logger zerolog.Logger) *StateRepository {
	return &StateRepository{
		client: client,
		key:    key,
		logger: logger,
		now:    time.Now,
	}
}

// Load fetches and decodes the stored state. A payload that fails to
// decode is moved aside under a timestamped key and the primary key
// cleared, so nothing is silently lost; the bool reports that recovery.
func (r *StateRepository) Load(ctx context.Context) (*domain.AppState, bool, error) {
	raw, err := r.client.Get(ctx, r.key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load state: %w", err)
	}

	var state domain.AppState
	if err := json.Unmarshal(raw, &state); err != nil {
		archiveKey := fmt.Sprintf("%s:corrupt:%d", r.key, r.now().UnixMilli())
		if archiveErr := r.client.Set(ctx, archiveKey, raw, 0).Err(); archiveErr != nil {
			return nil, false, fmt.Errorf("failed to archive corrupt state: %w", archiveErr)
		}
		if delErr := r.client.Del(ctx, r.key).Err(); delErr != nil {
			return nil, false, fmt.Errorf("failed to clear corrupt state: %w", delErr)
		}
		r.logger.Warn().
			Str("archive_key", archiveKey).
			Err(err).
			Msg("corrupt state payload archived and reset")
		return nil, true, nil
	}

	return &state, false, nil
}

// Save encodes and stores the state, retrying transient failures with
// exponential backoff.
func (r *StateRepository) Save(ctx context.Context, state *domain.AppState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 50 * time.Millisecond
	b.MaxInterval = 1 * time.Second
	b.MaxElapsedTime = 5 * time.Second

	return backoff.Retry(func() error {
		if err := r.client.Set(ctx, r.key, raw, 0).Err(); err != nil {
			r.logger.Warn().Err(err).Msg("state save failed, retrying")
			return err
		}
		return nil
	}, backoff.WithContext(b, ctx))
}
