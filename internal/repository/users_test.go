package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/Ragul-Ragavendran-R/user-management-app/internal/models"
)

func setupUserMock(t *testing.T) (*PostgresUserRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	repo := NewPostgresUserRepository(db)
	cleanup := func() { db.Close() }
	return repo, mock, cleanup
}

func TestList(t *testing.T) {
	repo, mock, cleanup := setupUserMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "first_name", "last_name", "email", "avatar"}).
		AddRow("1", "George", "Bluth", "george.bluth@reqres.in", "https://reqres.in/img/faces/1-image.jpg").
		AddRow("2", "Janet", "Weaver", "janet.weaver@reqres.in", "")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, first_name, last_name, email, avatar FROM users ORDER BY seq LIMIT $1`)).
		WithArgs(50).
		WillReturnRows(rows)

	users, err := repo.List(context.Background(), 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].ID != "1" || users[1].FirstName != "Janet" {
		t.Errorf("unexpected users: %+v", users)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestList_Empty(t *testing.T) {
	repo, mock, cleanup := setupUserMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, first_name, last_name, email, avatar FROM users ORDER BY seq LIMIT $1`)).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "email", "avatar"}))

	users, err := repo.List(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if users == nil || len(users) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", users)
	}
}

func TestCreate(t *testing.T) {
	repo, mock, cleanup := setupUserMock(t)
	defer cleanup()

	u := models.User{ID: "9", FirstName: "Eve", LastName: "Holt", Email: "eve.holt@reqres.in", Avatar: "a"}
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users (id, first_name, last_name, email, avatar) VALUES ($1, $2, $3, $4, $5)`)).
		WithArgs(u.ID, u.FirstName, u.LastName, u.Email, u.Avatar).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), u); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestUpdate_ReturnsMergedRow(t *testing.T) {
	repo, mock, cleanup := setupUserMock(t)
	defer cleanup()

	mock.ExpectQuery("UPDATE users SET").
		WithArgs("2", "Janine", "", "", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "email", "avatar"}).
			AddRow("2", "Janine", "Weaver", "janet.weaver@reqres.in", ""))

	u, err := repo.Update(context.Background(), "2", models.User{FirstName: "Janine"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.FirstName != "Janine" || u.LastName != "Weaver" {
		t.Errorf("unexpected user: %+v", u)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock, cleanup := setupUserMock(t)
	defer cleanup()

	mock.ExpectQuery("UPDATE users SET").
		WithArgs("missing", "X", "", "", "").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), "missing", models.User{FirstName: "X"})
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	repo, mock, cleanup := setupUserMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM users WHERE id = $1`)).
		WithArgs("2").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDelete_AbsentIDIsNoError(t *testing.T) {
	repo, mock, cleanup := setupUserMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM users WHERE id = $1`)).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "missing"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCredentialsByEmail(t *testing.T) {
	repo, mock, cleanup := setupUserMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, password_hash FROM users WHERE email = $1`)).
		WithArgs("eve.holt@reqres.in").
		WillReturnRows(sqlmock.NewRows([]string{"id", "password_hash"}).AddRow("9", "hash"))

	id, hash, err := repo.CredentialsByEmail(context.Background(), "eve.holt@reqres.in")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "9" || hash != "hash" {
		t.Errorf("unexpected credentials: %q %q", id, hash)
	}
}

func TestCredentialsByEmail_NoPasswordSet(t *testing.T) {
	repo, mock, cleanup := setupUserMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, password_hash FROM users WHERE email = $1`)).
		WithArgs("janet.weaver@reqres.in").
		WillReturnRows(sqlmock.NewRows([]string{"id", "password_hash"}).AddRow("2", nil))

	_, _, err := repo.CredentialsByEmail(context.Background(), "janet.weaver@reqres.in")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("expected sql.ErrNoRows for an account without a password, got %v", err)
	}
}
