package queue

import (
	"context"

	"github.com/redis/rueidis"
)

// Entries are transient bookkeeping, not durable state. The expiry keeps
// abandoned groups from accumulating when a process dies mid-command.
const groupExpirySeconds = 24 * 60 * 60

var _ Queue = (*RueidisQueue)(nil)

type RueidisQueue struct {
	rueidis rueidis.Client
}

func NewRueidisQueue(client rueidis.Client) *RueidisQueue {
	return &RueidisQueue{
		rueidis: client,
	}
}

func (q *RueidisQueue) Push(ctx context.Context, group string, data string) error {
	lpushCmd := q.rueidis.B().
		Lpush().
		Key(group).
		Element(data).
		Build()

	exCmd := q.rueidis.B().
		Expire().
		Key(group).
		Seconds(groupExpirySeconds).
		Build()

	for _, resp := range q.rueidis.DoMulti(ctx, lpushCmd, exCmd) {
		if resp.Error() != nil {
			return resp.Error()
		}
	}

	return nil
}

func (q *RueidisQueue) Pop(ctx context.Context, group string) (string, error) {
	rpopCmd := q.rueidis.B().
		Rpop().
		Key(group).
		Count(1).
		Build()

	elem, err := q.rueidis.Do(ctx, rpopCmd).ToString()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return "", nil
		}

		return "", err
	}

	return elem, nil
}

func (q *RueidisQueue) PopAll(ctx context.Context, group string) ([]string, error) {
	lrangeCmd := q.rueidis.B().
		Lrange().
		Key(group).
		Start(0).
		Stop(-1).
		Build()

	elems, err := q.rueidis.Do(ctx, lrangeCmd).AsStrSlice()
	if err != nil || len(elems) == 0 {
		return make([]string, 0), nil
	}

	delCmd := q.rueidis.B().
		Del().
		Key(group).
		Build()

	if resp := q.rueidis.Do(ctx, delCmd); resp.Error() != nil {
		return nil, resp.Error()
	}

	return elems, nil
}
