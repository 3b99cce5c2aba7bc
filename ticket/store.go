package ticket

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"

	"github.com/google/renameio/v2"
	"github.com/google/uuid"
)

// DateLayout is the layout used for Ticket.Date.
const DateLayout = "1/2/2006"

// Store persists tickets as a JSON array in a single file.
//
// A missing file is an empty store. Every Append rewrites the whole file
// through an atomic rename, so readers never observe a partial write.
// Store is safe for concurrent use within one process.
type Store struct {
	mu      sync.Mutex
	path    string
	now     func() time.Time
	newID   func() string
	pricing Pricing
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithClock overrides the clock used to date new tickets.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDFunc overrides ticket ID generation.
func WithIDFunc(newID func() string) StoreOption {
	return func(s *Store) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// WithPricing replaces DefaultPricing. Empty tables are ignored.
func WithPricing(p Pricing) StoreOption {
	return func(s *Store) {
		if p.Validate() == nil {
			s.pricing = p
		}
	}
}

// NewStore returns a store backed by the file at path.
func NewStore(path string, opts ...StoreOption) *Store {
	s := &Store{
		path:    path,
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
		pricing: DefaultPricing(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Pricing returns the tariff applied to new guests.
func (s *Store) Pricing() Pricing { return s.pricing }

// Issue returns a fresh, unsaved ticket dated today.
func (s *Store) Issue() Ticket {
	return New(s.newID(), s.now().Format(DateLayout))
}

// Load returns every stored ticket in insertion order.
func (s *Store) Load() ([]Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load()
}

// Append adds t to the end of the file.
func (s *Store) Append(t Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tickets, err := s.load()
	if err != nil {
		return err
	}
	tickets = append(tickets, t)

	encoded, err := json.Marshal(tickets)
	if err != nil {
		return fmt.Errorf("ticket: encode %s: %w", s.path, err)
	}
	if err := renameio.WriteFile(s.path, encoded, 0o644); err != nil {
		return fmt.Errorf("ticket: write %s: %w", s.path, err)
	}

	return nil
}

// Find returns the stored ticket with the given ID.
//
// Errors:
//   - ErrTicketNotFound — no ticket carries id.
func (s *Store) Find(id string) (Ticket, error) {
	tickets, err := s.Load()
	if err != nil {
		return Ticket{}, err
	}
	for _, t := range tickets {
		if t.ID == id {
			return t, nil
		}
	}

	return Ticket{}, fmt.Errorf("%w: %s", ErrTicketNotFound, id)
}

func (s *Store) load() ([]Ticket, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Ticket{}, nil
		}

		return nil, fmt.Errorf("ticket: read %s: %w", s.path, err)
	}

	tickets := []Ticket{}
	if err := json.Unmarshal(raw, &tickets); err != nil {
		return nil, fmt.Errorf("ticket: decode %s: %w", s.path, err)
	}

	return tickets, nil
}
