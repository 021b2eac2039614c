package session

import (
	"context"
	"time"
)

// Store tracks live session tokens so logout actually revokes them. Entries
// expire with the token; a token whose session is gone is treated as
// invalid even if its signature still verifies.
type Store interface {
	Save(ctx context.Context, id, userID string, ttl time.Duration) error
	Exists(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
}
