package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/blogadmin/internal/client/client"
	"github.com/dmitrijs2005/blogadmin/internal/common"
)

// getSimpleText and getPassword are swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for a username (or email) and a password and logs in.
// The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username or email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res, err := a.api.Login(ctx, userName, password)
	if err != nil {
		fmt.Fprintf(a.out, "Login unsuccessful: %s\n", describe(err))
		return err
	}

	a.userName = res.User.Username
	a.role = res.User.Role
	fmt.Fprintf(a.out, "Logged in as %s (%s)\n", res.User.Label(), res.User.Role)
	return nil
}

// Session prints what the server decodes from the current token.
func (a *App) Session(ctx context.Context) error {
	s, err := a.api.Session(ctx)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			a.clear()
		}
		fmt.Fprintf(a.out, "Session unavailable: %s\n", describe(err))
		return err
	}

	fmt.Fprintf(a.out, "User:    %s <%s> #%d\n", s.User.Label(), s.User.Email, s.User.ID)
	fmt.Fprintf(a.out, "Role:    %s\n", s.User.Role)
	fmt.Fprintf(a.out, "Expires: %s\n", s.ExpiresAt.Local().Format(time.DateTime))
	for _, line := range s.Permissions.Summary {
		fmt.Fprintf(a.out, "  - %s\n", line)
	}
	return nil
}

// Notifications lists unread notifications.
func (a *App) Notifications(ctx context.Context) error {
	list, err := a.api.UnreadNotifications(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %s\n", describe(err))
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No unread notifications")
		return nil
	}
	for _, n := range list {
		fmt.Fprintf(a.out, "#%d [%s] %s: %s\n", n.ID, n.Type, n.Title, n.Message)
	}
	return nil
}

// Read marks the notification given as the first argument as read.
func (a *App) Read(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: read <id>")
		return nil
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(a.out, "Invalid id: %s\n", args[0])
		return err
	}

	n, err := a.api.MarkRead(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "error: %s\n", describe(err))
		return err
	}
	fmt.Fprintf(a.out, "Marked #%d as read\n", n.ID)
	return nil
}

// Posts lists posts, filtered by status when one is given.
func (a *App) Posts(ctx context.Context, args []string) error {
	var status string
	if len(args) > 0 {
		status = args[0]
	}

	list, err := a.api.Posts(ctx, status)
	if err != nil {
		fmt.Fprintf(a.out, "error: %s\n", describe(err))
		return err
	}
	for _, p := range list {
		fmt.Fprintf(a.out, "#%d [%s] %s by %s\n", p.ID, p.Status, p.Title, p.Author)
	}
	return nil
}

func (a *App) Logout(_ context.Context) error {
	a.clear()
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) clear() {
	a.api.Logout()
	a.userName = ""
	a.role = ""
}

// describe prefers the server's own message over the wrapped error text.
func describe(err error) string {
	var se *client.StatusError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	return err.Error()
}
