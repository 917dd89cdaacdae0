package document

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Harshith-vm/ai-learning-platform/internal/apperr"
)

// Store is the repository owning every Document for the life of the
// process. Update runs its mutation under the document's own lock, so
// concurrent operations on the same document serialize while different
// documents proceed independently.
type Store interface {
	// Create registers a new document and returns its id.
	Create(filename, text string, chunks []string) string

	// Get returns a snapshot of the document taken under its lock, or a
	// not_found error. Artifacts hanging off the snapshot are never
	// mutated after they are stored, so the snapshot is safe to read
	// while updates continue.
	Get(id string) (*Document, error)

	// Update applies fn to the document under its lock. fn's error is
	// returned unchanged; the document keeps any mutation fn already
	// made before failing.
	Update(id string, fn func(*Document) error) error

	// List returns an Info snapshot for every stored document.
	List() []Info
}

// entry pairs a document with its lock.
type entry struct {
	mu  sync.Mutex
	doc *Document
}

// MemoryStore is the in-process Store. Contents live exactly as long as
// the process; durability is out of scope by design.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]*entry)}
}

var _ Store = (*MemoryStore)(nil)

func (s *MemoryStore) Create(filename, text string, chunks []string) string {
	id := uuid.NewString()
	doc := &Document{
		ID:        id,
		Filename:  filename,
		Text:      text,
		Chunks:    chunks,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.entries[id] = &entry{doc: doc}
	s.mu.Unlock()
	return id
}

func (s *MemoryStore) Get(id string) (*Document, error) {
	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()
	if !ok {
		return nil, apperr.NotFound("document %s not found", id)
	}

	e.mu.Lock()
	snapshot := *e.doc
	e.mu.Unlock()
	return &snapshot, nil
}

func (s *MemoryStore) Update(id string, fn func(*Document) error) error {
	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()
	if !ok {
		return apperr.NotFound("document %s not found", id)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.doc)
}

func (s *MemoryStore) List() []Info {
	s.mu.RLock()
	defer s.mu.RUnlock()

	infos := make([]Info, 0, len(s.entries))
	for _, e := range s.entries {
		e.mu.Lock()
		infos = append(infos, e.doc.Info())
		e.mu.Unlock()
	}
	return infos
}
