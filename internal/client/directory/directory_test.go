package directory

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Ragul-Ragavendran-R/user-management-app/internal/client/api"
	"github.com/Ragul-Ragavendran-R/user-management-app/internal/models"
)

// fakeClient implements Client with pluggable behavior per operation.
type fakeClient struct {
	listFn   func(ctx context.Context, perPage int) ([]models.User, error)
	createFn func(ctx context.Context, draft models.User) (models.User, error)
	updateFn func(ctx context.Context, id string, patch models.User) (models.User, error)
	deleteFn func(ctx context.Context, id string) error
}

func (f *fakeClient) ListUsers(ctx context.Context, perPage int) ([]models.User, error) {
	return f.listFn(ctx, perPage)
}

func (f *fakeClient) CreateUser(ctx context.Context, draft models.User) (models.User, error) {
	return f.createFn(ctx, draft)
}

func (f *fakeClient) UpdateUser(ctx context.Context, id string, patch models.User) (models.User, error) {
	return f.updateFn(ctx, id, patch)
}

func (f *fakeClient) DeleteUser(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func seedUsers() []models.User {
	return []models.User{
		{ID: "1", FirstName: "George", LastName: "Bluth", Email: "george.bluth@reqres.in"},
		{ID: "2", FirstName: "Janet", LastName: "Weaver", Email: "janet.weaver@reqres.in"},
		{ID: "3", FirstName: "Emma", LastName: "Wong", Email: "emma.wong@reqres.in"},
	}
}

func newStore(t *testing.T, fc *fakeClient) *Store {
	t.Helper()
	return New(fc, 100, nil, zap.NewNop())
}

func TestFetchAll(t *testing.T) {
	fc := &fakeClient{
		listFn: func(ctx context.Context, perPage int) ([]models.User, error) {
			return seedUsers(), nil
		},
	}
	s := newStore(t, fc)

	require.NoError(t, s.FetchAll(context.Background()))
	require.False(t, s.Loading())
	require.Empty(t, s.Err())
	require.Len(t, s.Users(), 3)
}

func TestFetchAll_FailureLeavesCollection(t *testing.T) {
	calls := 0
	fc := &fakeClient{
		listFn: func(ctx context.Context, perPage int) ([]models.User, error) {
			calls++
			if calls == 1 {
				return seedUsers(), nil
			}
			return nil, &api.TransportError{Err: errors.New("connection refused")}
		},
	}
	s := newStore(t, fc)
	require.NoError(t, s.FetchAll(context.Background()))

	err := s.FetchAll(context.Background())
	require.Error(t, err)
	require.Equal(t, "network error, please try again", s.Err())
	require.Len(t, s.Users(), 3, "failed fetch must not touch the collection")
	require.False(t, s.Loading())
}

func TestFetchAll_StaleResponseDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var wg sync.WaitGroup

	calls := 0
	var mu sync.Mutex
	fc := &fakeClient{
		listFn: func(ctx context.Context, perPage int) ([]models.User, error) {
			mu.Lock()
			calls++
			n := calls
			mu.Unlock()
			if n == 1 {
				// The first request resolves only after the second
				// has completed.
				close(started)
				<-release
				return []models.User{{ID: "stale"}}, nil
			}
			return seedUsers(), nil
		},
	}
	s := newStore(t, fc)

	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = s.FetchAll(context.Background())
	}()

	// Wait until the first call is in flight, then supersede it.
	<-started
	require.NoError(t, s.FetchAll(context.Background()))
	close(release)
	wg.Wait()

	users := s.Users()
	require.Len(t, users, 3)
	for _, u := range users {
		require.NotEqual(t, "stale", u.ID, "superseded response must be discarded")
	}
}

func TestCreate_AppendsMergedEcho(t *testing.T) {
	fc := &fakeClient{
		listFn: func(ctx context.Context, perPage int) ([]models.User, error) {
			return seedUsers(), nil
		},
		createFn: func(ctx context.Context, draft models.User) (models.User, error) {
			// Server echoes only the assigned id, like the mock API.
			return draft.Merge(models.User{}), nil
		},
	}
	s := newStore(t, fc)
	require.NoError(t, s.FetchAll(context.Background()))

	draft := models.User{ID: "4", FirstName: "Eve", LastName: "Holt", Email: "eve.holt@reqres.in"}
	created, err := s.Create(context.Background(), draft)
	require.NoError(t, err)
	require.Equal(t, "Eve", created.FirstName)
	require.Len(t, s.Users(), 4)
	require.Equal(t, "eve.holt@reqres.in", s.Users()[3].Email)
}

func TestCreate_DefaultsAvatarFromPicker(t *testing.T) {
	var submitted models.User
	fc := &fakeClient{
		createFn: func(ctx context.Context, draft models.User) (models.User, error) {
			submitted = draft
			return draft, nil
		},
	}
	picker := NewAvatarPicker(rand.New(rand.NewSource(1)))
	want := NewAvatarPicker(rand.New(rand.NewSource(1)))()
	s := New(fc, 100, picker, zap.NewNop())

	_, err := s.Create(context.Background(), models.User{FirstName: "Eve", Email: "eve@x.io"})
	require.NoError(t, err)
	require.Equal(t, want, submitted.Avatar, "seeded picker must be deterministic")
	require.Contains(t, avatarPool, submitted.Avatar)
}

func TestCreate_KeepsExplicitAvatar(t *testing.T) {
	fc := &fakeClient{
		createFn: func(ctx context.Context, draft models.User) (models.User, error) {
			return draft, nil
		},
	}
	s := New(fc, 100, NewAvatarPicker(rand.New(rand.NewSource(1))), zap.NewNop())

	created, err := s.Create(context.Background(), models.User{FirstName: "Eve", Avatar: "https://example.com/a.png"})
	require.NoError(t, err)
	require.Equal(t, "https://example.com/a.png", created.Avatar)
}

func TestUpdate(t *testing.T) {
	fc := &fakeClient{
		listFn: func(ctx context.Context, perPage int) ([]models.User, error) {
			return seedUsers(), nil
		},
		updateFn: func(ctx context.Context, id string, patch models.User) (models.User, error) {
			return patch, nil
		},
	}
	s := newStore(t, fc)
	require.NoError(t, s.FetchAll(context.Background()))

	updated, err := s.Update(context.Background(), "2", models.User{FirstName: "Janine"})
	require.NoError(t, err)
	require.Equal(t, "Janine", updated.FirstName)
	require.Equal(t, "janet.weaver@reqres.in", updated.Email, "untouched fields survive the merge")

	users := s.Users()
	require.Equal(t, "Janine", users[1].FirstName)
	require.Len(t, users, 3)
}

func TestUpdate_UnknownIDIsNoOp(t *testing.T) {
	fc := &fakeClient{
		listFn: func(ctx context.Context, perPage int) ([]models.User, error) {
			return seedUsers(), nil
		},
		updateFn: func(ctx context.Context, id string, patch models.User) (models.User, error) {
			return patch, nil
		},
	}
	s := newStore(t, fc)
	require.NoError(t, s.FetchAll(context.Background()))

	_, err := s.Update(context.Background(), "missing", models.User{FirstName: "Nobody"})
	require.NoError(t, err)
	require.Equal(t, seedUsers(), s.Users())
}

func TestDelete(t *testing.T) {
	fc := &fakeClient{
		listFn: func(ctx context.Context, perPage int) ([]models.User, error) {
			return seedUsers(), nil
		},
		deleteFn: func(ctx context.Context, id string) error { return nil },
	}
	s := newStore(t, fc)
	require.NoError(t, s.FetchAll(context.Background()))

	require.NoError(t, s.Delete(context.Background(), "2"))
	users := s.Users()
	require.Len(t, users, 2)
	for _, u := range users {
		require.NotEqual(t, "2", u.ID)
	}

	// Deleting an absent id changes nothing.
	require.NoError(t, s.Delete(context.Background(), "2"))
	require.Len(t, s.Users(), 2)
}

func TestDelete_FailureLeavesCollection(t *testing.T) {
	fc := &fakeClient{
		listFn: func(ctx context.Context, perPage int) ([]models.User, error) {
			return seedUsers(), nil
		},
		deleteFn: func(ctx context.Context, id string) error {
			return &api.APIError{Status: 500, Message: "boom"}
		},
	}
	s := newStore(t, fc)
	require.NoError(t, s.FetchAll(context.Background()))

	require.Error(t, s.Delete(context.Background(), "2"))
	require.Len(t, s.Users(), 3)
	require.Equal(t, "boom", s.Err())
}

func TestFilter(t *testing.T) {
	users := seedUsers()

	tests := []struct {
		name  string
		query string
		want  []string // expected ids, in order
	}{
		{"empty query returns all in order", "", []string{"1", "2", "3"}},
		{"first name match", "george", []string{"1"}},
		{"last name match case-insensitive", "WEAVER", []string{"2"}},
		{"email substring", "wong@", []string{"3"}},
		{"shared domain matches all", "reqres.in", []string{"1", "2", "3"}},
		{"no match", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(users, tt.query)
			require.Len(t, got, len(tt.want))
			for i, id := range tt.want {
				require.Equal(t, id, got[i].ID)
			}
		})
	}
}

func TestFiltered_Memoized(t *testing.T) {
	fc := &fakeClient{
		listFn: func(ctx context.Context, perPage int) ([]models.User, error) {
			return seedUsers(), nil
		},
		deleteFn: func(ctx context.Context, id string) error { return nil },
	}
	s := newStore(t, fc)
	require.NoError(t, s.FetchAll(context.Background()))

	s.SetQuery("janet")
	first := s.Filtered()
	second := s.Filtered()
	require.Len(t, first, 1)
	require.Same(t, &first[0], &second[0], "unchanged inputs must reuse the memoized slice")

	// A collection change invalidates the memo.
	require.NoError(t, s.Delete(context.Background(), "2"))
	require.Empty(t, s.Filtered())

	// A query change invalidates it too.
	s.SetQuery("")
	require.Len(t, s.Filtered(), 2)
}
