package engine

import (
	"sort"
	"time"
)

// FrameID identifies a pending frame request
type FrameID uint64

// Scheduler runs frame callbacks and keyed delayed tasks on the caller's goroutine
// It is not safe for concurrent use; the main loop owns it and calls RunFrame once per frame
//
// Frame callbacks requested during RunFrame run on the next frame
// Keyed timers supersede: After with an existing key replaces the pending task
type Scheduler struct {
	clock Clock

	nextFrame  FrameID
	frames     map[FrameID]func(now time.Time)
	frameOrder []FrameID

	timers   map[string]*timer
	timerSeq uint64

	frameCount uint64
}

type timer struct {
	key      string
	deadline time.Time
	seq      uint64
	fn       func()
}

// NewScheduler creates a scheduler reading time from clock
func NewScheduler(clock Clock) *Scheduler {
	return &Scheduler{
		clock:  clock,
		frames: make(map[FrameID]func(time.Time)),
		timers: make(map[string]*timer),
	}
}

// Now returns the scheduler clock reading
func (s *Scheduler) Now() time.Time {
	return s.clock.Now()
}

// RequestFrame queues fn for the next RunFrame
func (s *Scheduler) RequestFrame(fn func(now time.Time)) FrameID {
	s.nextFrame++
	id := s.nextFrame
	s.frames[id] = fn
	s.frameOrder = append(s.frameOrder, id)
	return id
}

// CancelFrame drops a pending frame request, returns false if it already ran or was cancelled
func (s *Scheduler) CancelFrame(id FrameID) bool {
	if _, ok := s.frames[id]; !ok {
		return false
	}
	delete(s.frames, id)
	return true
}

// PendingFrames returns the number of outstanding frame requests
func (s *Scheduler) PendingFrames() int {
	return len(s.frames)
}

// After schedules fn to run on the first frame at or after now+d
// A pending task with the same key is cancelled and replaced
func (s *Scheduler) After(key string, d time.Duration, fn func()) {
	s.timerSeq++
	s.timers[key] = &timer{
		key:      key,
		deadline: s.clock.Now().Add(d),
		seq:      s.timerSeq,
		fn:       fn,
	}
}

// Cancel drops the pending task for key, returns false if none was pending
func (s *Scheduler) Cancel(key string) bool {
	if _, ok := s.timers[key]; !ok {
		return false
	}
	delete(s.timers, key)
	return true
}

// Pending reports whether a task is scheduled for key
func (s *Scheduler) Pending(key string) bool {
	_, ok := s.timers[key]
	return ok
}

// FrameCount returns the number of completed RunFrame calls
func (s *Scheduler) FrameCount() uint64 {
	return s.frameCount
}

// RunFrame fires due timers in deadline order, then the frame callbacks queued before this call
// Returns the number of callbacks executed
func (s *Scheduler) RunFrame() int {
	now := s.clock.Now()
	ran := 0

	var due []*timer
	for _, t := range s.timers {
		if !t.deadline.After(now) {
			due = append(due, t)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].deadline.Equal(due[j].deadline) {
			return due[i].seq < due[j].seq
		}
		return due[i].deadline.Before(due[j].deadline)
	})
	for _, t := range due {
		// An earlier callback may have cancelled or replaced this key
		if cur, ok := s.timers[t.key]; !ok || cur.seq != t.seq {
			continue
		}
		delete(s.timers, t.key)
		t.fn()
		ran++
	}

	batch := s.frameOrder
	s.frameOrder = nil
	for _, id := range batch {
		fn, ok := s.frames[id]
		if !ok {
			continue
		}
		delete(s.frames, id)
		fn(now)
		ran++
	}

	s.frameCount++
	return ran
}

// Reset drops every pending frame request and timer
func (s *Scheduler) Reset() {
	s.frames = make(map[FrameID]func(time.Time))
	s.frameOrder = nil
	s.timers = make(map[string]*timer)
}
