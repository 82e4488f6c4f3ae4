package booking

import (
	"context"
	"time"

	"detailops/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// TeamLocker serializes the admission check-then-write sequence per team.
// Two concurrent booking attempts against the same team must not both pass
// the overlap count before either writes.
type TeamLocker interface {
	// Acquire blocks briefly for the lock and returns a release func, or a
	// conflict error when the lock stays contended.
	Acquire(ctx context.Context, tenantID, teamID string) (func(), error)
}

// RedisTeamLocker implements TeamLocker with a SET NX PX advisory lock and a
// token-checked release.
type RedisTeamLocker struct {
	Client     *redis.Client
	TTL        time.Duration
	Attempts   int
	RetryDelay time.Duration
}

func NewRedisTeamLocker(client *redis.Client) *RedisTeamLocker {
	return &RedisTeamLocker{
		Client:     client,
		TTL:        5 * time.Second,
		Attempts:   10,
		RetryDelay: 100 * time.Millisecond,
	}
}

// releaseScript deletes the lock only when the caller still owns it.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

func (l *RedisTeamLocker) Acquire(ctx context.Context, tenantID, teamID string) (func(), error) {
	key := utils.BookingLockPrefix + tenantID + ":" + teamID
	token := uuid.New().String()

	for attempt := 0; attempt < l.Attempts; attempt++ {
		ok, err := l.Client.SetNX(ctx, key, token, l.TTL).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			release := func() {
				_, _ = releaseScript.Run(context.Background(), l.Client, []string{key}, token).Result()
			}
			return release, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(l.RetryDelay):
		}
	}
	return nil, NewConflict("team %s is busy processing another booking, retry shortly", teamID)
}
