// Package state holds the observable per-screen state of the gomovie
// client. A holder owns one Slot per operation, triggers repository
// pipelines on a cancellable scope tied to its own lifetime, and applies the
// orchestration rules (refetch-after-mutation, reset-after-consume).
package state

import (
	"context"
	"sync"

	"github.com/patrickmoura/gomovie/internal/result"
)

// Slot stores the latest Result of one operation. Concurrent invocations
// bound to the same slot are sequence-tagged: only emissions from the most
// recently started invocation are delivered, so a slow stale call can never
// overwrite a newer outcome.
type Slot[T any] struct {
	mu      sync.Mutex
	seq     uint64
	current result.Result[T]
	set     bool
	subs    map[int]chan result.Result[T]
	nextSub int
}

// NewSlot returns an empty slot.
func NewSlot[T any]() *Slot[T] {
	return &Slot[T]{subs: make(map[int]chan result.Result[T])}
}

// Current returns the stored Result and whether one is present. After Reset
// the second return is false until the next emission.
func (s *Slot[T]) Current() (result.Result[T], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.set
}

// Reset clears the stored Result so a terminal value is consumed exactly
// once. In-flight invocations are unaffected.
func (s *Slot[T]) Reset() {
	s.mu.Lock()
	var zero result.Result[T]
	s.current = zero
	s.set = false
	s.mu.Unlock()
}

// Subscribe returns a channel delivering every accepted emission, conflated
// to the latest value. The channel closes when ctx is done.
func (s *Slot[T]) Subscribe(ctx context.Context) <-chan result.Result[T] {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	ch := make(chan result.Result[T], 1)
	if s.set {
		ch <- s.current
	}
	s.subs[id] = ch
	s.mu.Unlock()

	out := make(chan result.Result[T], 1)
	go func() {
		defer func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
			close(out)
		}()
		for {
			select {
			case <-ctx.Done():
				return
			case r := <-ch:
				select {
				case out <- r:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}

// begin registers a new invocation and returns its sequence tag.
func (s *Slot[T]) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq
}

// deliver stores r if seq still identifies the latest invocation. Returns
// false when the emission was dropped as stale.
func (s *Slot[T]) deliver(seq uint64, r result.Result[T]) bool {
	s.mu.Lock()
	if seq != s.seq {
		s.mu.Unlock()
		return false
	}
	s.current = r
	s.set = true
	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		ch <- r
	}
	s.mu.Unlock()
	return true
}

// bind drains one pipeline invocation into the slot. onTerminal, when
// non-nil, runs after the terminal Result has been stored; it is where
// holders hang their refetch orchestration.
func bind[T any](s *Slot[T], ch <-chan result.Result[T], onTerminal func(result.Result[T])) {
	seq := s.begin()
	go func() {
		for r := range ch {
			if !s.deliver(seq, r) {
				return
			}
			if r.IsTerminal() && onTerminal != nil {
				onTerminal(r)
			}
		}
	}()
}

// scope is the cancellable lifetime shared by every invocation a holder
// launches. Closing the scope cancels in-flight pipelines; their pending
// results are dropped silently.
type scope struct {
	ctx    context.Context
	cancel context.CancelFunc
}

func newScope(parent context.Context) scope {
	ctx, cancel := context.WithCancel(parent)
	return scope{ctx: ctx, cancel: cancel}
}

func (s *scope) Close() {
	s.cancel()
}
