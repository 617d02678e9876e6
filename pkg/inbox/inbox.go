package inbox

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Folder names a mailbox view.
type Folder string

const (
	FolderInbox  Folder = "inbox"
	FolderSent   Folder = "sent"
	FolderDrafts Folder = "drafts"
)

// Email is a message shown in the mock inbox or sent view.
type Email struct {
	ID        string    `json:"id"`
	From      string    `json:"from"`
	To        []string  `json:"to"`
	Cc        []string  `json:"cc,omitempty"`
	Bcc       []string  `json:"bcc,omitempty"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	HTMLBody  string    `json:"htmlBody,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Folder    Folder    `json:"folder"`
	Read      bool      `json:"read"`
}

// Store is an in-memory mailbox for demonstration. There is no
// persistence: contents live for the process lifetime only.
type Store struct {
	mu     sync.RWMutex
	emails map[string]*Email
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithSeedData preloads the demo inbox messages.
func WithSeedData() StoreOption {
	return func(s *Store) {
		for _, e := range seedEmails() {
			s.emails[e.ID] = e
		}
	}
}

// NewStore creates an empty mock mailbox.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{emails: make(map[string]*Email)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns the messages in a folder, newest first.
func (s *Store) List(folder Folder) []*Email {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*Email
	for _, e := range s.emails {
		if e.Folder == folder {
			copied := *e
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// Get returns a single message by id.
func (s *Store) Get(id string) (*Email, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.emails[id]
	if !ok {
		return nil, false
	}
	copied := *e
	return &copied, true
}

// MarkRead flags a message as read.
func (s *Store) MarkRead(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.emails[id]
	if !ok {
		return false
	}
	e.Read = true
	return true
}

// RecordSent stores a copy of a successfully dispatched message in the
// Sent folder and returns it.
func (s *Store) RecordSent(from string, to, cc, bcc []string, subject, body, htmlBody string) *Email {
	e := &Email{
		ID:        uuid.NewString(),
		From:      from,
		To:        to,
		Cc:        cc,
		Bcc:       bcc,
		Subject:   subject,
		Body:      body,
		HTMLBody:  htmlBody,
		Timestamp: time.Now(),
		Folder:    FolderSent,
		Read:      true,
	}

	s.mu.Lock()
	s.emails[e.ID] = e
	s.mu.Unlock()

	return e
}

func seedEmails() []*Email {
	now := time.Now()
	return []*Email{
		{
			ID:        uuid.NewString(),
			From:      "team@example.com",
			To:        []string{"me@starprince.dev"},
			Subject:   "Welcome to Maildesk",
			Body:      "Thanks for trying the demo inbox. Messages here are mock data; sends go out through your configured provider key.",
			Timestamp: now.Add(-2 * time.Hour),
			Folder:    FolderInbox,
		},
		{
			ID:        uuid.NewString(),
			From:      "alerts@example.com",
			To:        []string{"me@starprince.dev"},
			Subject:   "Your weekly summary",
			Body:      "Nothing unusual this week. All systems normal.",
			Timestamp: now.Add(-26 * time.Hour),
			Folder:    FolderInbox,
			Read:      true,
		},
		{
			ID:        uuid.NewString(),
			From:      "newsletter@example.com",
			To:        []string{"me@starprince.dev"},
			Subject:   "Monthly product update",
			Body:      "Here is what shipped last month: faster composer, template catalog, and attachment previews.",
			Timestamp: now.Add(-3 * 24 * time.Hour),
			Folder:    FolderInbox,
			Read:      true,
		},
	}
}
