package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/blogadmin/internal/client/client"
	"github.com/dmitrijs2005/blogadmin/internal/client/config"
	"github.com/dmitrijs2005/blogadmin/internal/client/models"
)

type App struct {
	config   *config.Config
	api      client.Client
	userName string
	role     models.Role
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		api:    client.NewHTTPClient(c.ServerURL, c.RequestTimeout),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

// Run checks the server is reachable and then blocks in the REPL until the
// user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to blogadmin CLI (type 'help' for commands)")

	if err := a.api.Ping(ctx); err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			fmt.Fprintf(a.out, "Server %s is not reachable, commands will fail until it is up\n", a.config.ServerURL)
		} else {
			fmt.Fprintf(a.out, "error: %v\n", err)
		}
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s %s)", a.userName, a.role)
}
