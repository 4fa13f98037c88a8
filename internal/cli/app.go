package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/dmarques/skilltrack/internal/common"
	"github.com/dmarques/skilltrack/internal/config"
	"github.com/dmarques/skilltrack/internal/feeds"
	"github.com/dmarques/skilltrack/internal/logging"
	"github.com/dmarques/skilltrack/internal/repositories/users"
	"github.com/dmarques/skilltrack/internal/services"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// feedSource is the capability the menu needs from the feed client: fetch a
// quote string or a list of headline titles, possibly returning none.
type feedSource interface {
	Quote(ctx context.Context) (string, error)
	Headlines(ctx context.Context, limit int) []string
}

type App struct {
	config  *config.Config
	tracker services.Tracker
	feeds   feedSource
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {

	repo, err := users.NewJSONRepository(c.DataFilePath, log)
	if err != nil {
		return nil, err
	}

	// The store is loaded once and held in memory for the whole run.
	store := repo.Load(context.Background())

	return &App{
		config:  c,
		tracker: services.NewTracker(store, repo),
		feeds:   feeds.NewClient(c.HTTPTimeout, log),
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run starts the menu loop and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	if isTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(a.out, "skilltrack console (data file: "+a.config.DataFilePath+")")
	}
	runMenu(ctx, a, a.reader, a.out)
}

// reportErr renders an operation error for the user. A failed save keeps the
// in-memory change, so that case gets its own wording.
func (a *App) reportErr(err error) {
	switch {
	case errors.Is(err, common.ErrSaveFailed):
		fmt.Fprintln(a.out, "Failed to save the data file; changes are kept in memory for this run.")
	case errors.Is(err, common.ErrValidation):
		fmt.Fprintln(a.out, err.Error())
	default:
		fmt.Fprintln(a.out, "Error:", err.Error())
	}
}
