package application

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/y-smart/service-tripplan/internal/domain/place"
)

// DefaultDebounceDelay is the quiet period after the last keystroke before
// the place search fires.
const DefaultDebounceDelay = 300 * time.Millisecond

// Debouncer coalesces a burst of triggers into a single callback once no
// trigger has arrived for the configured delay. Each trigger supersedes any
// pending one; a generation counter guarantees a superseded callback is
// never delivered, even if its timer already fired.
type Debouncer struct {
	delay time.Duration

	mu         sync.Mutex
	timer      *time.Timer
	generation uint64
}

// NewDebouncer creates a debouncer with the given quiet period.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger schedules fn to run after the quiet period, cancelling any
// previously scheduled call.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.generation++
	gen := d.generation

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		current := gen == d.generation
		d.mu.Unlock()
		if current {
			fn()
		}
	})
}

// Cancel drops any pending call.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.generation++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// SuggestStream drives debounced destination autocomplete: feed it every
// keystroke and it queries the place service once per quiet period,
// delivering results through the given callback.
type SuggestStream struct {
	debouncer *Debouncer
	places    *PlaceService
}

// NewSuggestStream creates a stream around the place service.
func NewSuggestStream(places *PlaceService, delay time.Duration) *SuggestStream {
	return &SuggestStream{
		debouncer: NewDebouncer(delay),
		places:    places,
	}
}

// Input registers the current keyword. Keywords below the minimum length
// cancel any pending query and clear the shown suggestions immediately.
func (s *SuggestStream) Input(ctx context.Context, keyword string, deliver func([]place.Place)) {
	if len([]rune(strings.TrimSpace(keyword))) < minKeywordLen {
		s.debouncer.Cancel()
		deliver([]place.Place{})
		return
	}

	s.debouncer.Trigger(func() {
		deliver(s.places.Suggest(ctx, keyword))
	})
}

// Close drops any pending query.
func (s *SuggestStream) Close() {
	s.debouncer.Cancel()
}
