package dogbot

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/samber/lo"
	"github.com/sourcegraph/conc/panics"
	"go.uber.org/zap"

	"github.com/nekomeowww/xo/logger"
)

// ErrTaskAlreadyTracked is returned when a task id collides with one that is
// still in flight.
var ErrTaskAlreadyTracked = errors.New("task already tracked")

// Task is one in-flight command execution.
type Task struct {
	ID        string
	Command   string
	ChatID    int64
	StartedAt time.Time

	cancel context.CancelFunc
	done   chan struct{}
}

// TaskTracker owns every goroutine the dispatcher spawns for a command.
// Tasks are tracked from spawn to completion so that shutdown and the cancel
// command can reach all of them.
type TaskTracker struct {
	logger *logger.Logger

	mutex  sync.Mutex
	tasks  map[string]*Task
	active map[string]struct{}
}

func NewTaskTracker(logger *logger.Logger) *TaskTracker {
	return &TaskTracker{
		logger: logger,
		tasks:  make(map[string]*Task),
		active: make(map[string]struct{}),
	}
}

// TaskID builds a tracker id from the originating update and the spawn time.
// The update id keeps concurrent tasks distinct; the timestamp keeps the id
// readable in logs.
func TaskID(updateID int, at time.Time) string {
	return fmt.Sprintf("%d-%d", updateID, at.Unix())
}

// Spawn runs fn on its own goroutine under the given id. The task is
// registered before the goroutine starts, and deregistration always runs on
// completion, panic included.
func (t *TaskTracker) Spawn(id string, command string, chatID int64, fn func(ctx context.Context)) error {
	ctx, cancel := context.WithCancel(context.Background())

	task := &Task{
		ID:        id,
		Command:   command,
		ChatID:    chatID,
		StartedAt: time.Now(),
		cancel:    cancel,
		done:      make(chan struct{}),
	}

	t.mutex.Lock()
	if _, ok := t.tasks[id]; ok {
		t.mutex.Unlock()
		cancel()

		return fmt.Errorf("%w: %s", ErrTaskAlreadyTracked, id)
	}

	t.tasks[id] = task
	t.active[id] = struct{}{}
	t.mutex.Unlock()

	go func() {
		defer t.complete(task)

		var catcher panics.Catcher

		catcher.Try(func() {
			fn(ctx)
		})

		if recovered := catcher.Recovered(); recovered != nil {
			t.logger.Error("panic recovered from tracked task",
				zap.String("task_id", task.ID),
				zap.String("command", task.Command),
				zap.Any("panic", recovered),
			)
			sentry.WithScope(func(scope *sentry.Scope) {
				scope.SetTag("command", task.Command)
				sentry.CaptureException(recovered.AsError())
			})
		}
	}()

	return nil
}

func (t *TaskTracker) complete(task *Task) {
	task.cancel()

	t.mutex.Lock()
	delete(t.tasks, task.ID)
	delete(t.active, task.ID)
	t.mutex.Unlock()

	close(task.done)

	t.logger.Debug("task completed",
		zap.String("task_id", task.ID),
		zap.String("command", task.Command),
		zap.Duration("elapsed", time.Since(task.StartedAt)),
	)
}

// Len reports how many tasks are in flight.
func (t *TaskTracker) Len() int {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return len(t.active)
}

// Tasks returns a snapshot of the in-flight tasks.
func (t *TaskTracker) Tasks() []*Task {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return lo.Values(t.tasks)
}

// CancelAll signals cancellation to every in-flight task and returns how
// many were signalled. It does not wait; pair it with Wait at shutdown.
func (t *TaskTracker) CancelAll() int {
	t.mutex.Lock()
	tasks := lo.Values(t.tasks)
	t.mutex.Unlock()

	for _, task := range tasks {
		task.cancel()
	}

	return len(tasks)
}

// CancelForChat cancels the in-flight tasks belonging to one chat.
func (t *TaskTracker) CancelForChat(chatID int64) int {
	t.mutex.Lock()
	tasks := lo.Filter(lo.Values(t.tasks), func(task *Task, _ int) bool {
		return task.ChatID == chatID
	})
	t.mutex.Unlock()

	for _, task := range tasks {
		task.cancel()
	}

	return len(tasks)
}

// Wait blocks until every in-flight task has completed or ctx is done.
func (t *TaskTracker) Wait(ctx context.Context) error {
	for {
		t.mutex.Lock()
		var waitOn *Task

		for _, task := range t.tasks {
			waitOn = task
			break
		}
		t.mutex.Unlock()

		if waitOn == nil {
			return nil
		}

		select {
		case <-waitOn.done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
