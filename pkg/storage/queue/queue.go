package queue

import "context"

// Queue holds ordered string entries per group. It backs the delete-later
// message bookkeeping: placeholder messages are pushed while a command is in
// flight and popped in bulk when the actor cancels.
type Queue interface {
	Push(context.Context, string, string) error
	Pop(context.Context, string) (string, error)
	PopAll(context.Context, string) ([]string, error)
}
