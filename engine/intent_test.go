package engine

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/lixenwraith/starchart/parameter"
)

func TestIntentQueueFIFO(t *testing.T) {
	q := NewIntentQueue(nil)

	q.Push(Intent{Type: IntentSelect, ObjectID: "a"})
	q.Push(Intent{Type: IntentSelect, ObjectID: "b"})
	q.Push(Intent{Type: IntentTogglePause})

	got := q.Consume()
	if len(got) != 3 {
		t.Fatalf("consumed %d intents, want 3", len(got))
	}
	if got[0].ObjectID != "a" || got[1].ObjectID != "b" || got[2].Type != IntentTogglePause {
		t.Errorf("order violated: %+v", got)
	}

	if again := q.Consume(); again != nil {
		t.Errorf("drained queue returned %d intents", len(again))
	}
}

func TestIntentQueueOverflowDropsOldest(t *testing.T) {
	var dropped atomic.Int64
	q := NewIntentQueue(&dropped)

	total := parameter.IntentQueueSize + 8
	for i := 0; i < total; i++ {
		q.Push(Intent{Type: IntentSpeedUp, ObjectID: string(rune('a' + i%26))})
	}

	got := q.Consume()
	if len(got) > parameter.IntentQueueSize {
		t.Fatalf("consumed %d, capacity is %d", len(got), parameter.IntentQueueSize)
	}
	if dropped.Load() == 0 {
		t.Error("overflow recorded no drops")
	}
}

func TestIntentQueueConsumeClearsPublishedFlags(t *testing.T) {
	q := NewIntentQueue(nil)

	q.Push(Intent{Type: IntentSelect, ObjectID: "a"})
	q.Push(Intent{Type: IntentSelect, ObjectID: "b"})
	if got := q.Consume(); len(got) != 2 {
		t.Fatalf("consumed %d, want 2", len(got))
	}

	// Consumed slots must read unpublished again, otherwise a wrapped
	// producer's in-progress write could be observed half-written
	for i := 0; i < parameter.IntentQueueSize; i++ {
		if q.published[i].Load() {
			t.Fatalf("slot %d still published after consume", i)
		}
	}

	// Recycled slots keep working across several full wraps
	for round := 0; round < 3; round++ {
		for i := 0; i < parameter.IntentQueueSize; i++ {
			q.Push(Intent{Type: IntentSpeedUp})
		}
		if got := q.Consume(); len(got) != parameter.IntentQueueSize {
			t.Fatalf("round %d: consumed %d, want %d", round, len(got), parameter.IntentQueueSize)
		}
	}
}

func TestIntentQueueWraparoundUnderLoad(t *testing.T) {
	q := NewIntentQueue(nil)
	done := make(chan struct{})

	// Producer pushes far past ring wraparound while the consumer drains;
	// the race detector patrols slot reuse
	go func() {
		defer close(done)
		for i := 0; i < parameter.IntentQueueSize*16; i++ {
			q.Push(Intent{Type: IntentSpeedUp, ObjectID: "w"})
		}
	}()

	check := func(batch []Intent) {
		for _, in := range batch {
			if in.ObjectID != "w" {
				t.Fatalf("torn intent read: %+v", in)
			}
		}
	}

	consumed := 0
	for {
		select {
		case <-done:
			final := q.Consume()
			check(final)
			consumed += len(final)
			if consumed == 0 {
				t.Error("nothing consumed across wraparound")
			}
			return
		default:
			batch := q.Consume()
			check(batch)
			consumed += len(batch)
		}
	}
}

func TestIntentQueueConcurrentProducers(t *testing.T) {
	q := NewIntentQueue(nil)

	var wg sync.WaitGroup
	const producers = 4
	const perProducer = 8 // stays under capacity, nothing dropped

	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(Intent{Type: IntentSpeedDown})
			}
		}()
	}
	wg.Wait()

	total := 0
	for {
		batch := q.Consume()
		if batch == nil {
			break
		}
		total += len(batch)
	}
	if total != producers*perProducer {
		t.Errorf("consumed %d intents, want %d", total, producers*perProducer)
	}
}
