package queue

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestInProcDeliversDispatchedPayloads(t *testing.T) {
	var mu sync.Mutex
	var received []string

	q := NewInProc(func(text string) error {
		mu.Lock()
		received = append(received, text)
		mu.Unlock()
		return nil
	}, 0)

	for _, text := range []string{"one", "two", "three"} {
		if err := q.Dispatch(text); err != nil {
			t.Fatalf("Unexpected dispatch error: %v", err)
		}
	}

	q.Close()

	mu.Lock()
	defer mu.Unlock()
	if len(received) != 3 {
		t.Fatalf("Expected 3 payloads delivered, got %d", len(received))
	}
	if received[0] != "one" || received[1] != "two" || received[2] != "three" {
		t.Errorf("Expected in-order delivery, got %v", received)
	}
}

func TestInProcDispatchReturnsBeforeConsumption(t *testing.T) {
	block := make(chan struct{})
	q := NewInProc(func(string) error {
		<-block
		return nil
	}, 4)

	done := make(chan struct{})
	go func() {
		_ = q.Dispatch("payload")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Dispatch blocked on consumption")
	}

	close(block)
	q.Close()
}

func TestInProcHandlerFailureDoesNotStopConsumer(t *testing.T) {
	var mu sync.Mutex
	var delivered int

	q := NewInProc(func(text string) error {
		mu.Lock()
		delivered++
		mu.Unlock()
		if text == "bad" {
			return errors.New("persistence failed")
		}
		return nil
	}, 0)

	_ = q.Dispatch("bad")
	_ = q.Dispatch("good")
	q.Close()

	mu.Lock()
	defer mu.Unlock()
	if delivered != 2 {
		t.Errorf("Expected both payloads delivered, got %d", delivered)
	}
}

func TestInProcDispatchAfterClose(t *testing.T) {
	q := NewInProc(func(string) error { return nil }, 0)
	q.Close()

	if err := q.Dispatch("late"); err == nil {
		t.Error("Expected an error dispatching on a closed queue")
	}
}
