package notify

import (
	"sync"
	"time"
)

// DefaultTTL matches the storefront's feedback window.
const DefaultTTL = 3000 * time.Millisecond

// Subscriber is invoked inline for every toast shown.
type Subscriber func(Toast)

// Service keeps the active toast set. Each toast carries its own expiry
// timer, measured from enqueue time; timers are held so a future manual
// dismissal can cancel them instead of leaking. The queue is unbounded and
// never deduplicates.
type Service struct {
	ttl time.Duration

	mu          sync.Mutex
	nextID      int64
	active      []Toast
	timers      map[int64]*time.Timer
	subscribers []Subscriber
}

func NewService(ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		ttl:    ttl,
		timers: make(map[int64]*time.Timer),
	}
}

// Subscribe registers a callback invoked on every Show.
func (s *Service) Subscribe(fn Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Show enqueues a toast and schedules its expiry.
func (s *Service) Show(message string, severity Severity) Toast {
	switch severity {
	case SeveritySuccess, SeverityError, SeverityInfo:
	default:
		severity = SeverityInfo
	}

	s.mu.Lock()
	s.nextID++
	toast := Toast{
		ID:       s.nextID,
		Message:  message,
		Severity: severity,
	}
	s.active = append(s.active, toast)
	s.timers[toast.ID] = time.AfterFunc(s.ttl, func() {
		s.expire(toast.ID)
	})

	subs := make([]Subscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(toast)
	}
	return toast
}

// Success, Error and Info are shorthands for the three severities.

func (s *Service) Success(message string) Toast { return s.Show(message, SeveritySuccess) }
func (s *Service) Error(message string) Toast   { return s.Show(message, SeverityError) }
func (s *Service) Info(message string) Toast    { return s.Show(message, SeverityInfo) }

// Active returns the toasts whose window has not elapsed yet.
func (s *Service) Active() []Toast {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Toast, len(s.active))
	copy(out, s.active)
	return out
}

// Close cancels all pending expiry timers.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
	s.active = nil
}

// expire is filter-by-id, so a toast already gone is a harmless no-op.
func (s *Service) expire(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.active[:0]
	for _, toast := range s.active {
		if toast.ID != id {
			kept = append(kept, toast)
		}
	}
	s.active = kept
	delete(s.timers, id)
}
