package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/starchart/parameter"
	"github.com/lixenwraith/starchart/viewmode"
)

// IntentType enumerates user interaction requests from the input layer
type IntentType uint8

const (
	IntentSelect IntentType = iota
	IntentBirdsEye
	IntentProfileFrame
	IntentSetMode
	IntentTogglePause
	IntentSpeedUp
	IntentSpeedDown
)

// Intent is one user request. ObjectID and Mode are set per type
type Intent struct {
	Type     IntentType
	ObjectID string
	Mode     viewmode.ID
}

const intentBufferMask = parameter.IntentQueueSize - 1

// IntentQueue is a lock-free MPSC ring buffer for UI intents
// Thread-Safety:
//   - Push: lock-free CAS, multiple producers OK (input goroutine)
//   - Consume: single consumer (simulation step)
//   - Published flags prevent reading partial writes
//
// Overflow: oldest intents overwritten when full
type IntentQueue struct {
	intents   [parameter.IntentQueueSize]Intent
	published [parameter.IntentQueueSize]atomic.Bool
	head      atomic.Uint64
	tail      atomic.Uint64
	dropped   *atomic.Int64
}

// NewIntentQueue creates an empty queue; dropped counts overwritten intents
func NewIntentQueue(dropped *atomic.Int64) *IntentQueue {
	return &IntentQueue{dropped: dropped}
}

// Push adds an intent using CAS with published flags. Safe for
// concurrent producers
func (q *IntentQueue) Push(intent Intent) {
	for {
		currentTail := q.tail.Load()
		nextTail := currentTail + 1

		if q.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & intentBufferMask

			q.intents[idx] = intent
			q.published[idx].Store(true) // MUST be after write

			// Advance head if overwriting unread intents
			currentHead := q.head.Load()
			if nextTail-currentHead > parameter.IntentQueueSize {
				if q.head.CompareAndSwap(currentHead, nextTail-parameter.IntentQueueSize) && q.dropped != nil {
					q.dropped.Add(1)
				}
			}
			return
		}
	}
}

// Consume returns all pending intents in FIFO order and advances head.
// Single-consumer design; checks published flags for safety. Consuming
// clears each slot's published flag so a wrapped producer's write is
// only observed once fully republished
func (q *IntentQueue) Consume() []Intent {
	for {
		currentHead := q.head.Load()
		currentTail := q.tail.Load()

		if currentTail == currentHead {
			return nil
		}

		maxAvailable := currentTail - currentHead
		if maxAvailable > parameter.IntentQueueSize {
			maxAvailable = parameter.IntentQueueSize
			currentHead = currentTail - parameter.IntentQueueSize
		}

		out := make([]Intent, 0, maxAvailable)
		for i := uint64(0); i < maxAvailable; i++ {
			idx := (currentHead + i) & intentBufferMask
			if !q.published[idx].Load() {
				break // Writer incomplete
			}
			out = append(out, q.intents[idx])
			q.published[idx].Store(false)
		}

		newHead := currentHead + uint64(len(out))
		if q.head.CompareAndSwap(currentHead, newHead) {
			if len(out) == 0 {
				return nil
			}
			return out
		}
	}
}
