// SPDX-License-Identifier: GPL-3.0-only

package queue

import (
	"errors"
	"relay-server/commons"
	"sync"
)

const defaultBuffer = 64

// InProc delivers dispatched payloads to a single consumer goroutine over a
// buffered channel. It keeps the asynchronous contract (Dispatch returns
// before the write happens) without an external broker, and is the default
// when no AMQP URL is configured. Payloads do not survive a process restart.
type InProc struct {
	payloads chan string
	done     chan struct{}
	handler  func(text string) error

	mu     sync.RWMutex
	closed bool
}

// NewInProc starts the consumer goroutine. buffer <= 0 takes the default.
func NewInProc(handler func(text string) error, buffer int) *InProc {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	q := &InProc{
		payloads: make(chan string, buffer),
		done:     make(chan struct{}),
		handler:  handler,
	}
	go q.run()
	return q
}

func (q *InProc) run() {
	defer close(q.done)
	for text := range q.payloads {
		if err := q.handler(text); err != nil {
			// Fire-and-forget boundary: the submitter never hears about this.
			commons.Logger.Errorf("Failed to process message: %v", err)
		}
	}
}

// Dispatch hands the text to the consumer goroutine. It blocks only when the
// buffer is full.
func (q *InProc) Dispatch(text string) error {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return errors.New("queue is closed")
	}
	q.payloads <- text
	return nil
}

// Close stops accepting payloads and waits for the consumer to drain the
// buffer.
func (q *InProc) Close() {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.payloads)
	}
	q.mu.Unlock()
	<-q.done
}
