// Package view holds presentation-only state: view mode, modal state,
// delete confirmation target, pagination cursor, and the notification
// queue. Nothing in this package performs I/O.
package view

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Ragul-Ragavendran-R/user-management-app/internal/models"
	"github.com/Ragul-Ragavendran-R/user-management-app/internal/pagination"
)

// Mode selects how the user list is rendered.
type Mode string

const (
	// ModeTable renders users as table rows.
	ModeTable Mode = "table"
	// ModeCard renders users as cards.
	ModeCard Mode = "card"
)

// ModalMode selects what the user form modal does when submitted.
type ModalMode string

const (
	// ModalCreate submits a new record.
	ModalCreate ModalMode = "create"
	// ModalEdit submits changes to an existing record.
	ModalEdit ModalMode = "edit"
)

// Modal is the user form modal's state. Target is non-nil only in edit
// mode.
type Modal struct {
	Open   bool
	Mode   ModalMode
	Target *models.User
}

// DefaultNotificationDuration is how long a notification stays queued
// when no duration is given.
const DefaultNotificationDuration = 5 * time.Second

// Store is the view-state store: a synchronous reducer over presentation
// state.
type Store struct {
	mu           sync.Mutex
	viewMode     Mode
	modal        Modal
	deleteTarget *models.User
	currentPage  int
	itemsPerPage int
	notes        []models.Notification

	now   func() time.Time
	newID func() string
}

// New constructs a view-state store showing page 1 of the table view.
func New(itemsPerPage int) *Store {
	return &Store{
		viewMode:     ModeTable,
		modal:        Modal{Mode: ModalCreate},
		currentPage:  1,
		itemsPerPage: itemsPerPage,
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

// ViewMode returns the active rendering mode.
func (s *Store) ViewMode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewMode
}

// SetViewMode switches between table and card rendering.
func (s *Store) SetViewMode(m Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewMode = m
}

// Modal returns the current modal state.
func (s *Store) Modal() Modal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modal
}

// OpenModal opens the form modal. A target is only retained in edit
// mode; opening for create always starts from a blank form.
func (s *Store) OpenModal(mode ModalMode, target *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if mode != ModalEdit {
		target = nil
	}
	s.modal = Modal{Open: true, Mode: mode, Target: target}
}

// CloseModal closes the modal and resets it to a blank create form,
// regardless of the mode it was closed in.
func (s *Store) CloseModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal = Modal{Open: false, Mode: ModalCreate, Target: nil}
}

// DeleteTarget returns the record awaiting delete confirmation, or nil.
func (s *Store) DeleteTarget() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteTarget
}

// SetDeleteTarget records (or clears, with nil) the record awaiting
// delete confirmation.
func (s *Store) SetDeleteTarget(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteTarget = u
}

// Page returns the current page cursor.
func (s *Store) Page() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentPage
}

// ItemsPerPage returns the page size.
func (s *Store) ItemsPerPage() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemsPerPage
}

// SetPage moves the cursor. Values below 1 are floored to 1; moving past
// the last page is the caller's responsibility to avoid via ClampPage.
func (s *Store) SetPage(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n < 1 {
		n = 1
	}
	s.currentPage = n
}

// ResetPage returns the cursor to page 1. Callers invoke this after any
// change to the filtered collection size: create, delete, query change.
func (s *Store) ResetPage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentPage = 1
}

// ClampPage forces the cursor into the valid range for totalItems and
// returns the resulting page window. A cursor stranded past the last
// page after a shrink is pulled back to it.
func (s *Store) ClampPage(totalItems int) pagination.Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := pagination.Paginate(totalItems, s.itemsPerPage, 1)
	s.currentPage = pagination.Clamp(s.currentPage, p.TotalPages)
	return pagination.Paginate(totalItems, s.itemsPerPage, s.currentPage)
}

// Notify queues a notification with the default duration and returns
// its id.
func (s *Store) Notify(kind models.NotificationKind, message string) string {
	return s.AddNotification(kind, message, DefaultNotificationDuration)
}

// AddNotification queues a notification with a fresh id and creation
// timestamp. A zero duration makes it persist until dismissed.
func (s *Store) AddNotification(kind models.NotificationKind, message string, duration time.Duration) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := models.Notification{
		ID:        s.newID(),
		Kind:      kind,
		Message:   message,
		CreatedAt: s.now(),
		Duration:  duration,
	}
	s.notes = append(s.notes, n)
	return n.ID
}

// RemoveNotification dismisses the notification with the given id.
// An unknown id is a no-op.
func (s *Store) RemoveNotification(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, n := range s.notes {
		if n.ID == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			return
		}
	}
}

// Notifications returns a snapshot of the queue in creation order.
func (s *Store) Notifications() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Notification, len(s.notes))
	copy(out, s.notes)
	return out
}

// Sweep drops every notification whose duration has elapsed at now and
// returns how many were removed.
func (s *Store) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.notes[:0]
	removed := 0
	for _, n := range s.notes {
		if n.Expired(now) {
			removed++
			continue
		}
		kept = append(kept, n)
	}
	s.notes = kept
	return removed
}

// StartSweeper expires notifications on a fixed interval until ctx is
// canceled.
func (s *Store) StartSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Sweep(s.now())
			}
		}
	}()
}
