package habit

import (
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/mtscully16/habit-tracker/date"
)

// StorageKey is the blob store key under which the document persists.
const StorageKey = "habits"

// BlobStore is the local persistence collaborator: a string keyed blob
// store. Writes may fail silently; the in-memory document stays
// authoritative for the session, so a failing store only costs
// persistence across restarts.
type BlobStore interface {
	// Get returns the stored value for key, or false when absent.
	Get(key string) (string, bool)
	// Set stores the value under key. Failures are ignorable.
	Set(key, value string)
}

// DirStore is a BlobStore keeping one file per key under a directory.
type DirStore struct {
	dir string
}

// NewDirStore returns a store rooted at dir. The directory is created on
// first write.
func NewDirStore(dir string) DirStore {
	return DirStore{dir: dir}
}

func (s DirStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s DirStore) Get(key string) (string, bool) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return "", false
	}
	return string(data), true
}

func (s DirStore) Set(key, value string) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		log.Printf("document write err (ignored): %v", err)
		return
	}
	if err := os.WriteFile(s.path(key), []byte(value), 0644); err != nil {
		log.Printf("document write err (ignored): %v", err)
	}
}

// MemStore is an in-memory BlobStore.
type MemStore struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string]string)}
}

func (s *MemStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *MemStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Tracker owns the canonical document of a session. Every mutation goes
// through it: the update is applied to a copy, the invariants are
// repaired, the result becomes canonical, persists to the store and is
// announced to subscribers. Updates are serialized, each derives from the
// immediately preceding value.
type Tracker struct {
	mu    sync.Mutex
	doc   *Document
	store BlobStore
	key   string
	subs  []func(*Document)
}

// NewTracker loads the document stored under key, repairing whatever it
// finds, or starts the default document when the store holds nothing.
func NewTracker(store BlobStore, key string) *Tracker {
	t := &Tracker{store: store, key: key}
	if raw, ok := store.Get(key); ok {
		t.doc = DecodeDocument([]byte(raw))
	} else {
		t.doc = NewDocument()
		t.persist(t.doc)
	}
	return t
}

// Document returns a copy of the canonical document.
func (t *Tracker) Document() *Document {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.doc.Clone()
}

// Update applies mutate to a copy of the canonical document. When mutate
// reports false the copy is discarded and nothing changes. Otherwise the
// copy, invariants repaired, becomes canonical, persists, and subscribers
// are notified. The resulting document is returned along with what mutate
// reported.
func (t *Tracker) Update(mutate func(*Document) bool) (*Document, bool) {
	t.mu.Lock()
	next := t.doc.Clone()
	if !mutate(next) {
		cur := t.doc.Clone()
		t.mu.Unlock()
		return cur, false
	}
	next.repair(date.Today())
	t.doc = next
	t.persist(next)
	snapshot := next.Clone()
	t.mu.Unlock()

	t.notify(snapshot)
	return snapshot, true
}

// Replace swaps in a whole document, typically one adopted from the
// remote store. The document is repaired, persisted and announced like
// any other update.
func (t *Tracker) Replace(doc *Document) *Document {
	t.mu.Lock()
	next := doc.Clone()
	next.repair(date.Today())
	t.doc = next
	t.persist(next)
	snapshot := next.Clone()
	t.mu.Unlock()

	t.notify(snapshot)
	return snapshot
}

// Subscribe registers fn to run after every canonical state change with a
// copy of the new document. Subscribers run outside the tracker lock, on
// the goroutine that performed the change.
func (t *Tracker) Subscribe(fn func(*Document)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.subs = append(t.subs, fn)
}

func (t *Tracker) persist(doc *Document) {
	data, err := EncodeDocument(doc)
	if err != nil {
		log.Printf("document encode err (ignored): %v", err)
		return
	}
	t.store.Set(t.key, string(data))
}

func (t *Tracker) notify(doc *Document) {
	t.mu.Lock()
	subs := t.subs
	t.mu.Unlock()
	for _, fn := range subs {
		fn(doc.Clone())
	}
}
