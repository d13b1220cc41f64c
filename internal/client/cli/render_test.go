package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/Ragul-Ragavendran-R/user-management-app/internal/client/view"
	"github.com/Ragul-Ragavendran-R/user-management-app/internal/models"
	"github.com/Ragul-Ragavendran-R/user-management-app/internal/pagination"
)

func sample() []models.User {
	return []models.User{
		{ID: "1", FirstName: "George", LastName: "Bluth", Email: "george.bluth@reqres.in"},
		{ID: "2", FirstName: "Janet", LastName: "Weaver", Email: "janet.weaver@reqres.in"},
	}
}

func TestRenderUsers_Table(t *testing.T) {
	var buf bytes.Buffer
	p := pagination.Paginate(2, 6, 1)
	RenderUsers(&buf, sample(), view.ModeTable, 1, p)

	out := buf.String()
	for _, want := range []string{"George", "janet.weaver@reqres.in", "Page 1 of 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "[next]") || strings.Contains(out, "[prev]") {
		t.Errorf("single page must not offer navigation, got:\n%s", out)
	}
}

func TestRenderUsers_CardWithNavigation(t *testing.T) {
	var buf bytes.Buffer
	p := pagination.Paginate(10, 2, 2)
	RenderUsers(&buf, sample(), view.ModeCard, 2, p)

	out := buf.String()
	for _, want := range []string{"Janet Weaver", "Page 2 of 5", "[next]", "[prev]"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestRenderUsers_Empty(t *testing.T) {
	var buf bytes.Buffer
	RenderUsers(&buf, nil, view.ModeTable, 1, pagination.Paginate(0, 6, 1))
	if !strings.Contains(buf.String(), "No users found.") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestRenderNotifications(t *testing.T) {
	var buf bytes.Buffer
	RenderNotifications(&buf, []models.Notification{
		{Kind: models.NotifySuccess, Message: "user created"},
		{Kind: models.NotifyError, Message: "network error, please try again"},
	})
	out := buf.String()
	if !strings.Contains(out, "[success] user created") || !strings.Contains(out, "[error] network error") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestReadLine(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  hello world  \n"))
	got, err := ReadLine(r, "Name: ", &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hello world" {
		t.Errorf("expected trimmed line, got %q", got)
	}
	if out.String() != "Name: " {
		t.Errorf("expected prompt to be written, got %q", out.String())
	}
}

func TestReadLine_PartialBeforeEOF(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("partial"))
	got, err := ReadLine(r, "> ", &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "partial" {
		t.Errorf("expected partial line, got %q", got)
	}
}

func TestReadPassword_UsesSeam(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("cityslicka"), nil }
	defer func() { readPassword = orig }()

	var out bytes.Buffer
	got, err := ReadPassword(&out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "cityslicka" {
		t.Errorf("expected password, got %q", got)
	}
	if !strings.Contains(out.String(), "Password: ") {
		t.Errorf("expected prompt, got %q", out.String())
	}
}
