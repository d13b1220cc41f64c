package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/Ragul-Ragavendran-R/user-management-app/internal/client/view"
	"github.com/Ragul-Ragavendran-R/user-management-app/internal/models"
	"github.com/Ragul-Ragavendran-R/user-management-app/internal/pagination"
)

// RenderUsers writes the given page of users to w in the active view
// mode, followed by a pagination footer.
func RenderUsers(w io.Writer, users []models.User, mode view.Mode, page int, p pagination.Page) {
	if len(users) == 0 {
		fmt.Fprintln(w, "No users found.")
		return
	}
	switch mode {
	case view.ModeCard:
		renderCards(w, users)
	default:
		renderTable(w, users)
	}
	fmt.Fprintf(w, "Page %d of %d", page, p.TotalPages)
	if p.HasPrev {
		fmt.Fprint(w, "  [prev]")
	}
	if p.HasNext {
		fmt.Fprint(w, "  [next]")
	}
	fmt.Fprintln(w)
}

func renderTable(w io.Writer, users []models.User) {
	fmt.Fprintf(w, "%-10s %-14s %-14s %-30s\n", "ID", "FIRST NAME", "LAST NAME", "EMAIL")
	fmt.Fprintln(w, strings.Repeat("-", 70))
	for _, u := range users {
		fmt.Fprintf(w, "%-10s %-14s %-14s %-30s\n", shorten(u.ID, 10), u.FirstName, u.LastName, u.Email)
	}
}

func renderCards(w io.Writer, users []models.User) {
	for _, u := range users {
		fmt.Fprintf(w, "+--------------------------------------+\n")
		fmt.Fprintf(w, "| %s %s\n", u.FirstName, u.LastName)
		fmt.Fprintf(w, "| %s\n", u.Email)
		fmt.Fprintf(w, "| id: %s\n", u.ID)
		if u.Avatar != "" {
			fmt.Fprintf(w, "| avatar: %s\n", u.Avatar)
		}
		fmt.Fprintf(w, "+--------------------------------------+\n")
	}
}

// RenderNotifications prints and clears nothing; the caller decides when
// to sweep. Each line is prefixed with the notification kind.
func RenderNotifications(w io.Writer, notes []models.Notification) {
	for _, n := range notes {
		fmt.Fprintf(w, "[%s] %s\n", n.Kind, n.Message)
	}
}

func shorten(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
