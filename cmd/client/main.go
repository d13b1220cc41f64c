// Package main runs the interactive admin shell for the user directory.
package main

import (
	"bufio"
	"cmp"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Ragul-Ragavendran-R/user-management-app/internal/client/app"
	"github.com/Ragul-Ragavendran-R/user-management-app/internal/client/cli"
	"github.com/Ragul-Ragavendran-R/user-management-app/internal/client/validation"
	"github.com/Ragul-Ragavendran-R/user-management-app/internal/client/view"
	"github.com/Ragul-Ragavendran-R/user-management-app/internal/config"
	"github.com/Ragul-Ragavendran-R/user-management-app/internal/logger"
	"github.com/Ragul-Ragavendran-R/user-management-app/internal/models"
)

var (
	version   string
	buildDate string
)

const helpText = `Available commands:
  login                 authenticate against the directory
  logout                clear the session
  list                  show the current page of users
  search <text>         filter by name or email (empty to clear)
  page <n> | next | prev  move between pages
  view table|card       switch the list rendering
  add                   create a user
  edit <id>             update a user
  delete <id>           delete a user (asks for confirmation)
  refresh               reload users from the server
  status                show session state
  help, exit`

// repl runs the interactive shell loop, dispatching commands to the
// application handle.
func repl(a *app.App) {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)
	out := os.Stdout

	for {
		cli.RenderNotifications(out, a.View.Notifications())
		a.View.Sweep(time.Now())

		line, err := cli.ReadLine(reader, "users> ", out)
		if err != nil {
			break
		}
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "help":
			fmt.Fprintln(out, helpText)
		case "login":
			email, err := cli.ReadLine(reader, "Email: ", out)
			if err != nil {
				continue
			}
			password, err := cli.ReadPassword(out)
			if err != nil {
				continue
			}
			creds := models.Credentials{Email: email, Password: password}
			if errs := a.Login(ctx, creds); errs != nil {
				printFieldErrors(errs)
				continue
			}
			if a.Session.IsAuthenticated() {
				_ = a.RefreshUsers(ctx)
			}
		case "logout":
			a.Logout()
		case "list":
			showPage(a)
		case "search":
			a.Search(strings.TrimSpace(strings.TrimPrefix(line, "search")))
			showPage(a)
		case "page":
			if len(args) < 2 {
				fmt.Fprintln(out, "Usage: page <n>")
				continue
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				fmt.Fprintln(out, "Usage: page <n>")
				continue
			}
			a.View.SetPage(n)
			showPage(a)
		case "next":
			a.View.SetPage(a.View.Page() + 1)
			showPage(a)
		case "prev":
			a.View.SetPage(a.View.Page() - 1)
			showPage(a)
		case "view":
			if len(args) < 2 || (args[1] != string(view.ModeTable) && args[1] != string(view.ModeCard)) {
				fmt.Fprintln(out, "Usage: view table|card")
				continue
			}
			a.View.SetViewMode(view.Mode(args[1]))
			showPage(a)
		case "add":
			a.View.OpenModal(view.ModalCreate, nil)
			draft := promptUser(reader, out, models.User{})
			if errs := a.CreateUser(ctx, draft); errs != nil {
				printFieldErrors(errs)
				a.View.CloseModal()
			}
		case "edit":
			if len(args) < 2 {
				fmt.Fprintln(out, "Usage: edit <id>")
				continue
			}
			target := findUser(a, args[1])
			if target == nil {
				fmt.Fprintln(out, "User not found")
				continue
			}
			a.View.OpenModal(view.ModalEdit, target)
			patch := promptUser(reader, out, *target)
			if errs := a.UpdateUser(ctx, target.ID, patch); errs != nil {
				printFieldErrors(errs)
				a.View.CloseModal()
			}
		case "delete":
			if len(args) < 2 {
				fmt.Fprintln(out, "Usage: delete <id>")
				continue
			}
			target := findUser(a, args[1])
			if target == nil {
				fmt.Fprintln(out, "User not found")
				continue
			}
			a.View.SetDeleteTarget(target)
			answer, err := cli.ReadLine(reader, fmt.Sprintf("Delete %s %s? [y/N]: ", target.FirstName, target.LastName), out)
			if err != nil || !strings.EqualFold(answer, "y") {
				a.View.SetDeleteTarget(nil)
				continue
			}
			_ = a.DeleteUser(ctx, target.ID)
		case "refresh":
			if a.RefreshUsers(ctx) == nil {
				showPage(a)
			}
		case "status":
			fmt.Fprintf(out, "Session: %s\n", a.Session.State())
			if attempts, last := a.Session.Attempts(); attempts > 0 {
				fmt.Fprintf(out, "Failed attempts: %d (last at %s)\n", attempts, last.Format(time.RFC3339))
			}
		case "exit":
			fmt.Fprintln(out, "Bye")
			return
		default:
			fmt.Fprintln(out, "Unknown command. Type 'help' for a list of commands.")
		}
	}
}

func showPage(a *app.App) {
	page := a.CurrentPage()
	cli.RenderUsers(os.Stdout, a.VisibleUsers(), a.View.ViewMode(), a.View.Page(), page)
}

func findUser(a *app.App, id string) *models.User {
	for _, u := range a.Directory.Users() {
		if u.ID == id {
			return &u
		}
	}
	return nil
}

// promptUser collects the user form fields. Empty input keeps the
// current value, so edits can change a single field.
func promptUser(reader *bufio.Reader, out *os.File, current models.User) models.User {
	first, _ := cli.ReadLine(reader, fmt.Sprintf("First name [%s]: ", current.FirstName), out)
	last, _ := cli.ReadLine(reader, fmt.Sprintf("Last name [%s]: ", current.LastName), out)
	email, _ := cli.ReadLine(reader, fmt.Sprintf("Email [%s]: ", current.Email), out)
	avatar, _ := cli.ReadLine(reader, "Avatar URL (empty for a random placeholder): ", out)
	return models.User{
		FirstName: cmp.Or(first, current.FirstName),
		LastName:  cmp.Or(last, current.LastName),
		Email:     cmp.Or(email, current.Email),
		Avatar:    cmp.Or(avatar, current.Avatar),
	}
}

func printFieldErrors(errs []validation.FieldError) {
	for _, e := range errs {
		fmt.Printf("  %s\n", e.Error())
	}
}

// main parses configuration, restores the stored session, and enters
// the shell.
func main() {
	options := config.Parse()

	fmt.Printf("User Directory Admin Shell\nVersion: %s\nBuild Date: %s\n",
		cmp.Or(version, "N/A"), cmp.Or(buildDate, "N/A"))

	log := logger.New()
	if err := log.Init(options.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Log.Sync() }()

	a := app.New(app.Config{
		BaseURL:   options.BaseURL,
		APIKey:    options.APIKey,
		TokenFile: options.TokenFile,
		FetchSize: options.FetchSize,
		PageSize:  options.PageSize,
	}, log.Log)

	if err := a.Session.Restore(); err != nil {
		log.Log.Error("failed to restore session", zap.Error(err))
	}
	if a.Session.IsAuthenticated() {
		fmt.Println("Restored previous session.")
		_ = a.RefreshUsers(context.Background())
	} else {
		fmt.Println("Not logged in. Use 'login' to authenticate.")
	}

	sweepCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	a.View.StartSweeper(sweepCtx, time.Second)

	repl(a)
}
