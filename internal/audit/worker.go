package audit

import "context"

// Worker consumes audit events from a channel and persists them. It keeps
// background processing off the request path without wiring queue
// implementations into services.
type Worker struct {
	store Store
	inbox <-chan Event
}

func NewWorker(store Store, inbox <-chan Event) *Worker {
	return &Worker{store: store, inbox: inbox}
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			if err := w.store.Append(ctx, event); err != nil {
				return err
			}
		}
	}
}

// Queue is a Store whose Append hands events to a Worker through a buffered
// channel, keeping the terminal sink off the request path. List reads from
// the terminal store, so events still in flight are not visible yet.
type Queue struct {
	terminal Store
	inbox    chan Event
}

func NewQueue(terminal Store, buffer int) *Queue {
	return &Queue{terminal: terminal, inbox: make(chan Event, buffer)}
}

func (q *Queue) Append(ctx context.Context, event Event) error {
	select {
	case q.inbox <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *Queue) List(ctx context.Context) ([]Event, error) {
	return q.terminal.List(ctx)
}

// Worker builds the consumer side of the queue.
func (q *Queue) Worker() *Worker {
	return NewWorker(q.terminal, q.inbox)
}
