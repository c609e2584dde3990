package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"blogify/internal/client/api"
	"blogify/internal/client/config"
	"blogify/internal/client/feed"
	"blogify/internal/client/services"
	"blogify/internal/client/session"
	"blogify/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the client layers together and carries the REPL state.
type App struct {
	config  *config.Config
	auth    services.AuthService
	authors services.AuthorDirectory
	blogs   services.BlogService
	feed    *feed.Feed
	signal  *feed.SignalNotifier
	log     logging.Logger
	reader  *bufio.Reader
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := session.Open(ctx, cfg.SessionDSN)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	apiClient := api.NewHTTPClient(cfg.BaseURL, cfg.RequestTimeout)

	auth := services.NewAuthService(apiClient, db, log)
	authors := services.NewAuthorDirectory(apiClient, log)
	blogs := services.NewBlogService(apiClient, auth, log)

	f := feed.New(blogs, authors, log)
	signal := feed.NewSignalNotifier()
	f.Attach(signal)

	return &App{
		config:  cfg,
		auth:    auth,
		authors: authors,
		blogs:   blogs,
		feed:    f,
		signal:  signal,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores a persisted session, if any, and hands control to the REPL.
func (a *App) Run(ctx context.Context) {
	a.auth.Restore(ctx)
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.auth.Current() != nil
}

func (a *App) getStatus() string {
	s := ""
	if ident := a.auth.Current(); ident != nil {
		s = ident.Email
	}
	if total := a.feed.TotalPages(); total > 0 {
		if s != "" {
			s += " "
		}
		s += fmt.Sprintf("p%d/%d", a.feed.Page()+1, total)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}
