// Package directory holds the fetched user collection and its request
// lifecycle: loading flag, last error, search query, and the derived
// filtered view.
//
// Remote responses are applied as whole-collection swaps under the store
// lock, so a reader never observes a partially applied update. Every
// remote call is stamped with a per-operation sequence number; a response
// that resolves after a newer call of the same operation was issued is
// discarded, so the last request wins.
package directory

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Ragul-Ragavendran-R/user-management-app/internal/client/api"
	"github.com/Ragul-Ragavendran-R/user-management-app/internal/models"
)

// Client is the remote API surface the store depends on.
type Client interface {
	ListUsers(ctx context.Context, perPage int) ([]models.User, error)
	CreateUser(ctx context.Context, draft models.User) (models.User, error)
	UpdateUser(ctx context.Context, id string, patch models.User) (models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// Store owns the user collection. No other component holds user records.
type Store struct {
	mu      sync.Mutex
	users   []models.User
	loading bool
	errMsg  string
	query   string

	// version increments on every collection or query change and keys
	// the memoized filtered view.
	version       uint64
	filtered      []models.User
	filteredVer   uint64
	filteredQuery string

	// fetchSeq stamps FetchAll calls so a superseded response cannot
	// overwrite a newer one.
	fetchSeq uint64

	client  Client
	perPage int
	avatar  AvatarPicker
	log     *zap.Logger
}

// New constructs a directory store. perPage bounds how many records a
// single FetchAll requests. picker supplies placeholder avatars for
// drafts that have none; it may be nil.
func New(client Client, perPage int, picker AvatarPicker, log *zap.Logger) *Store {
	return &Store{
		client:  client,
		perPage: perPage,
		avatar:  picker,
		log:     log,
	}
}

// FetchAll replaces the whole collection with the server's result. On
// failure the prior collection is left untouched and only the error
// string changes. A response superseded by a newer FetchAll is dropped.
func (s *Store) FetchAll(ctx context.Context) error {
	s.mu.Lock()
	s.fetchSeq++
	seq := s.fetchSeq
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	users, err := s.client.ListUsers(ctx, s.perPage)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.fetchSeq {
		s.log.Debug("discarding stale user list response")
		return nil
	}
	s.loading = false
	if err != nil {
		s.errMsg = api.Message(err)
		return err
	}
	s.users = users
	s.version++
	return nil
}

// Create submits a draft record. A draft without an avatar gets a
// placeholder from the injected picker before submission. On success the
// server echo, merged over the draft, is appended to the collection.
func (s *Store) Create(ctx context.Context, draft models.User) (models.User, error) {
	if draft.Avatar == "" && s.avatar != nil {
		draft.Avatar = s.avatar()
	}

	created, err := s.client.CreateUser(ctx, draft)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.errMsg = api.Message(err)
		return models.User{}, err
	}
	if created.ID == "" {
		// The mock server may echo nothing usable; fall back to a
		// timestamp-based id so the record stays addressable.
		created.ID = strconv.FormatInt(time.Now().UnixNano(), 10)
	}
	s.errMsg = ""
	next := make([]models.User, 0, len(s.users)+1)
	next = append(next, s.users...)
	next = append(next, created)
	s.users = next
	s.version++
	return created, nil
}

// Update replaces the record matching id with patch shallow-merged over
// it. An id with no matching record is a silent no-op.
func (s *Store) Update(ctx context.Context, id string, patch models.User) (models.User, error) {
	updated, err := s.client.UpdateUser(ctx, id, patch)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.errMsg = api.Message(err)
		return models.User{}, err
	}
	s.errMsg = ""
	for i, u := range s.users {
		if u.ID != id {
			continue
		}
		next := make([]models.User, len(s.users))
		copy(next, s.users)
		next[i] = u.Merge(patch).Merge(updated)
		s.users = next
		s.version++
		return next[i], nil
	}
	return updated, nil
}

// Delete removes the record matching id. An absent id is a silent no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	err := s.client.DeleteUser(ctx, id)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.errMsg = api.Message(err)
		return err
	}
	s.errMsg = ""
	for i, u := range s.users {
		if u.ID != id {
			continue
		}
		next := make([]models.User, 0, len(s.users)-1)
		next = append(next, s.users[:i]...)
		next = append(next, s.users[i+1:]...)
		s.users = next
		s.version++
		break
	}
	return nil
}

// SetQuery updates the search query driving the filtered view.
func (s *Store) SetQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.query == q {
		return
	}
	s.query = q
	s.version++
}

// Query returns the current search query.
func (s *Store) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// Users returns a snapshot copy of the full collection.
func (s *Store) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

// Len returns the size of the full collection.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// Loading reports whether a FetchAll is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the displayable message from the last failed operation,
// or "" after a success.
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// Filtered returns the records whose first name, last name, or email
// contains the query, case-insensitively, preserving collection order.
// An empty query returns the whole collection. The result is memoized
// until the collection or the query changes.
func (s *Store) Filtered() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.filtered != nil && s.filteredVer == s.version && s.filteredQuery == s.query {
		return s.filtered
	}

	s.filtered = Filter(s.users, s.query)
	s.filteredVer = s.version
	s.filteredQuery = s.query
	return s.filtered
}

// Filter returns the members of users matching q case-insensitively on
// first name, last name, or email, in their original order. An empty q
// matches everything.
func Filter(users []models.User, q string) []models.User {
	out := make([]models.User, 0, len(users))
	if q == "" {
		out = append(out, users...)
		return out
	}
	needle := strings.ToLower(q)
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.FirstName), needle) ||
			strings.Contains(strings.ToLower(u.LastName), needle) ||
			strings.Contains(strings.ToLower(u.Email), needle) {
			out = append(out, u)
		}
	}
	return out
}
