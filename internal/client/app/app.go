// Package app wires the client stores into one explicit application
// handle. The handle is constructed in main and passed to the shell;
// there is no package-level state, so tests can build as many isolated
// instances as they need.
package app

import (
	"context"
	"math/rand"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Ragul-Ragavendran-R/user-management-app/internal/client/api"
	"github.com/Ragul-Ragavendran-R/user-management-app/internal/client/directory"
	"github.com/Ragul-Ragavendran-R/user-management-app/internal/client/session"
	"github.com/Ragul-Ragavendran-R/user-management-app/internal/client/validation"
	"github.com/Ragul-Ragavendran-R/user-management-app/internal/client/view"
	"github.com/Ragul-Ragavendran-R/user-management-app/internal/models"
	"github.com/Ragul-Ragavendran-R/user-management-app/internal/pagination"
)

// Config carries the settings the client handle needs.
type Config struct {
	// BaseURL is the directory service endpoint.
	BaseURL string
	// APIKey is sent on every request.
	APIKey string
	// TokenFile is where the session token persists between runs.
	TokenFile string
	// FetchSize bounds how many records one refresh requests.
	FetchSize int
	// PageSize is how many records one page shows.
	PageSize int
}

// App bundles the three client stores around one API client.
type App struct {
	Session   *session.Store
	Directory *directory.Store
	View      *view.Store

	log *zap.Logger
}

// New constructs the application handle. The API client reads its
// bearer token from the session store on every call, so a login or
// logout takes effect immediately.
func New(cfg Config, log *zap.Logger) *App {
	var sess *session.Store
	client := api.New(cfg.BaseURL, cfg.APIKey, func() string { return sess.Token() }, http.DefaultClient)
	sess = session.New(client, session.NewFileTokenStore(cfg.TokenFile), log)

	picker := directory.NewAvatarPicker(rand.New(rand.NewSource(time.Now().UnixNano())))
	return &App{
		Session:   sess,
		Directory: directory.New(client, cfg.FetchSize, picker, log),
		View:      view.New(cfg.PageSize),
		log:       log,
	}
}

// Login validates the form, runs the login flow, and queues an outcome
// notification. Field errors block the network call entirely.
func (a *App) Login(ctx context.Context, creds models.Credentials) []validation.FieldError {
	if errs := validation.ValidateCredentials(creds); errs != nil {
		return errs
	}
	if err := a.Session.Login(ctx, creds); err != nil {
		a.View.Notify(models.NotifyError, a.Session.Err())
		return nil
	}
	a.View.Notify(models.NotifySuccess, "logged in")
	return nil
}

// Logout clears the session and queues a notification. It always
// succeeds.
func (a *App) Logout() {
	a.Session.Logout()
	a.View.Notify(models.NotifyInfo, "logged out")
}

// RefreshUsers reloads the collection and queues an error notification
// on failure.
func (a *App) RefreshUsers(ctx context.Context) error {
	if err := a.Directory.FetchAll(ctx); err != nil {
		a.View.Notify(models.NotifyError, a.Directory.Err())
		return err
	}
	return nil
}

// CreateUser validates the draft and submits it. The collection grows
// by one on success and the cursor returns to page 1.
func (a *App) CreateUser(ctx context.Context, draft models.User) []validation.FieldError {
	if errs := validation.ValidateDraft(draft); errs != nil {
		return errs
	}
	created, err := a.Directory.Create(ctx, draft)
	if err != nil {
		a.View.Notify(models.NotifyError, a.Directory.Err())
		return nil
	}
	a.View.CloseModal()
	a.View.ResetPage()
	a.View.Notify(models.NotifySuccess, "created "+created.FirstName+" "+created.LastName)
	return nil
}

// UpdateUser validates the patched record and submits it. The page
// cursor is untouched since the collection size does not change.
func (a *App) UpdateUser(ctx context.Context, id string, patch models.User) []validation.FieldError {
	if errs := validation.ValidateDraft(patch); errs != nil {
		return errs
	}
	if _, err := a.Directory.Update(ctx, id, patch); err != nil {
		a.View.Notify(models.NotifyError, a.Directory.Err())
		return nil
	}
	a.View.CloseModal()
	a.View.Notify(models.NotifySuccess, "user updated")
	return nil
}

// DeleteUser removes the record, clears the confirmation target, and
// pulls the page cursor back if the shrink stranded it past the end.
func (a *App) DeleteUser(ctx context.Context, id string) error {
	a.View.SetDeleteTarget(nil)
	if err := a.Directory.Delete(ctx, id); err != nil {
		a.View.Notify(models.NotifyError, a.Directory.Err())
		return err
	}
	a.View.ClampPage(len(a.Directory.Filtered()))
	a.View.Notify(models.NotifySuccess, "user deleted")
	return nil
}

// Search updates the filter query and returns the cursor to page 1.
func (a *App) Search(q string) {
	a.Directory.SetQuery(q)
	a.View.ResetPage()
}

// CurrentPage returns the page window for the filtered collection,
// re-clamping the cursor first.
func (a *App) CurrentPage() pagination.Page {
	return a.View.ClampPage(len(a.Directory.Filtered()))
}

// VisibleUsers returns the filtered records on the current page.
func (a *App) VisibleUsers() []models.User {
	return pagination.Slice(a.Directory.Filtered(), a.CurrentPage())
}
