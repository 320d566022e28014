package habit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mtscully16/habit-tracker/remote"
)

// SyncState is the coordinator's externally visible condition.
type SyncState int

const (
	// Disconnected means no identity is attached; edits stay local.
	Disconnected SyncState = iota
	// Loading means the remote document is being pulled after sign-in.
	Loading
	// Idle means local and remote are settled, no upload pending.
	Idle
	// Uploading means a document write to the remote store is in flight.
	Uploading
	// Errored means the last remote operation failed; the message is in
	// Status. Editing continues locally and the next change tries again.
	Errored
)

func (s SyncState) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Loading:
		return "loading"
	case Idle:
		return "idle"
	case Uploading:
		return "uploading"
	case Errored:
		return "error"
	default:
		return "unknown"
	}
}

// DefaultDebounce is the quiescence window for coalescing uploads: rapid
// successive edits become a single remote write.
const DefaultDebounce = 800 * time.Millisecond

// Syncer coordinates the canonical document with a remote store under
// last-write-wins: the most recent whole-document write fully replaces
// prior state, on either side.
//
// It subscribes to the tracker; while an identity is attached every
// canonical change schedules a debounced upload, deduplicated by a cheap
// fingerprint of the serialized document. On sign-in the remote copy is
// authoritative: it replaces local state, and the replacement's own change
// notification is suppressed so it is not mistaken for an edit and pushed
// straight back.
//
// Every identity transition advances a generation counter; work resuming
// from a fetch, an upload or a timer discards itself when its generation
// is stale, so results of superseded operations never apply.
type Syncer struct {
	mu          sync.Mutex
	tracker     *Tracker
	store       remote.Store
	delay       time.Duration
	userID      string
	state       SyncState
	status      string
	fingerprint string
	suppress    bool
	generation  int
	timer       *time.Timer
	remoteAt    time.Time
}

// SyncerOption configures a Syncer.
type SyncerOption func(*Syncer)

// WithDebounce overrides the upload coalescing delay.
func WithDebounce(d time.Duration) SyncerOption {
	return func(s *Syncer) { s.delay = d }
}

// NewSyncer returns a coordinator between the tracker and the remote
// store, initially disconnected.
func NewSyncer(tracker *Tracker, store remote.Store, opts ...SyncerOption) *Syncer {
	s := &Syncer{
		tracker: tracker,
		store:   store,
		delay:   DefaultDebounce,
		state:   Disconnected,
	}
	for _, opt := range opts {
		opt(s)
	}
	tracker.Subscribe(s.onChange)
	return s
}

// State returns the coordinator state.
func (s *Syncer) State() SyncState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Status returns the message of the last remote failure, empty when the
// last operation succeeded.
func (s *Syncer) Status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Identity returns the attached user, empty when disconnected.
func (s *Syncer) Identity() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

// UpdatedAt returns the time of the last settled remote interaction.
func (s *Syncer) UpdatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remoteAt
}

// SetIdentity attaches a signed-in user and pulls their remote document.
// A present remote copy wins: it replaces local state whole. An absent one
// gets the current local document as a first-time push. Remote failures
// leave the coordinator in the error state with local editing intact.
func (s *Syncer) SetIdentity(ctx context.Context, userID string) error {
	s.mu.Lock()
	s.generation++
	g := s.generation
	s.userID = userID
	s.state = Loading
	s.status = ""
	s.stopTimerLocked()
	s.mu.Unlock()

	state, updatedAt, ok, err := s.store.Fetch(ctx, userID)

	s.mu.Lock()
	if s.generation != g {
		s.mu.Unlock()
		return nil
	}
	if err != nil {
		s.state = Errored
		s.status = fmt.Sprintf("sync pull failed: %v", err)
		s.mu.Unlock()
		return fmt.Errorf("could not fetch remote document: %w", err)
	}
	if !ok {
		s.mu.Unlock()
		return s.upload(ctx, g)
	}
	// The adoption below notifies like any update; suppress that one
	// reaction so the pulled state is not scheduled for upload.
	s.suppress = true
	s.remoteAt = updatedAt
	s.mu.Unlock()

	adopted := s.tracker.Replace(DecodeDocument(state))

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != g {
		return nil
	}
	// Record the adopted serialization as already written, a later
	// identical upload attempt is then skipped.
	if payload, err := EncodeDocument(adopted); err == nil {
		s.fingerprint = fingerprintOf(payload)
	}
	s.state = Idle
	return nil
}

// ClearIdentity signs out: pending uploads are cancelled and the
// coordinator disconnects. The local document keeps working.
func (s *Syncer) ClearIdentity() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.userID = ""
	s.suppress = false
	s.state = Disconnected
	s.status = ""
	s.fingerprint = ""
	s.remoteAt = time.Time{}
	s.stopTimerLocked()
}

// Flush runs any pending debounced upload immediately. One-shot command
// runs call it before exiting so an edit is not lost to the debounce
// window. Unchanged documents are still skipped by the fingerprint check.
func (s *Syncer) Flush(ctx context.Context) error {
	s.mu.Lock()
	if s.userID == "" {
		s.mu.Unlock()
		return nil
	}
	g := s.generation
	s.stopTimerLocked()
	s.mu.Unlock()
	return s.upload(ctx, g)
}

// onChange is the tracker subscription: every canonical state change
// restarts the single debounce timer, unless this change is the
// suppressed remote adoption.
func (s *Syncer) onChange(*Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.suppress {
		s.suppress = false
		return
	}
	if s.userID == "" {
		return
	}
	g := s.generation
	s.stopTimerLocked()
	s.timer = time.AfterFunc(s.delay, func() { s.fire(g) })
}

func (s *Syncer) fire(g int) {
	s.mu.Lock()
	if s.generation != g || s.userID == "" {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	s.mu.Unlock()
	s.upload(context.Background(), g)
}

// upload writes the canonical document to the remote store, unless its
// fingerprint matches the last successful write.
func (s *Syncer) upload(ctx context.Context, g int) error {
	doc := s.tracker.Document()
	payload, err := EncodeDocument(doc)
	if err != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.state = Errored
		s.status = fmt.Sprintf("sync push failed: %v", err)
		return err
	}
	fp := fingerprintOf(payload)

	s.mu.Lock()
	if s.generation != g {
		s.mu.Unlock()
		return nil
	}
	if fp == s.fingerprint {
		s.state = Idle
		s.mu.Unlock()
		return nil
	}
	userID := s.userID
	s.state = Uploading
	s.mu.Unlock()

	now := time.Now()
	err = s.store.Upsert(ctx, userID, payload, now)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != g {
		return nil
	}
	if err != nil {
		s.state = Errored
		s.status = fmt.Sprintf("sync push failed: %v", err)
		return fmt.Errorf("could not upload document: %w", err)
	}
	s.state = Idle
	s.status = ""
	s.fingerprint = fp
	s.remoteAt = now
	return nil
}

func (s *Syncer) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// fingerprintOf summarizes a serialized document as its length plus head
// and tail slices. Exactness is not required, collisions only matter for
// the common "nothing changed" case.
func fingerprintOf(b []byte) string {
	const n = 16
	head := b[:min(len(b), n)]
	tail := b[max(0, len(b)-n):]
	return fmt.Sprintf("%d:%s:%s", len(b), head, tail)
}
