package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/dmitrijs2005/rosetta/internal/client/config"
	"github.com/dmitrijs2005/rosetta/internal/client/gateway"
	"github.com/dmitrijs2005/rosetta/internal/client/repositories/folders"
	"github.com/dmitrijs2005/rosetta/internal/client/repositories/history"
	"github.com/dmitrijs2005/rosetta/internal/client/repositories/saveditems"
	"github.com/dmitrijs2005/rosetta/internal/client/services"
	"github.com/dmitrijs2005/rosetta/internal/client/session"
	"github.com/dmitrijs2005/rosetta/internal/client/storage"
	"github.com/dmitrijs2005/rosetta/internal/logging"

	_ "modernc.org/sqlite"
)

// App ties the CLI commands to the reconciliation services.
type App struct {
	config   *config.Config
	log      logging.Logger
	sess     *session.Session
	gw       gateway.Gateway
	history  services.HistoryService
	folders  services.FoldersService
	saved    services.SavedItemsService
	db       *sql.DB
	userName string
	reader   *bufio.Reader
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.Nop{}
	}

	ctx := context.Background()

	db, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing cache database", "err", err)
		return nil, err
	}

	adapter := storage.NewSQLiteAdapter(db)
	historyStore := history.NewKVStore(adapter, c.HistoryLimit, log)
	folderStore := folders.NewKVStore(adapter)
	savedStore := saveditems.NewKVStore(adapter, log)

	sess := session.New()
	gw := gateway.NewClient(c.ServerBaseURL, c.RequestTimeout, sess)

	return &App{
		config:  c,
		log:     log,
		sess:    sess,
		gw:      gw,
		history: services.NewHistoryService(gw, historyStore, log),
		folders: services.NewFoldersService(gw, folderStore, savedStore, log),
		saved:   services.NewSavedItemsService(gw, savedStore, historyStore, log),
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.sess.Authenticated()
}

func (a *App) getStatus() string {
	s := ""
	if a.userName != "" {
		s = a.userName
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Run starts the REPL and blocks until the user exits, then drains pending
// background syncs and closes the cache database.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Println("Rosetta CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// Close waits for in-flight background syncs and releases the database.
func (a *App) Close() {
	a.history.Wait()
	a.folders.Wait()
	a.saved.Wait()
	if err := a.db.Close(); err != nil {
		a.log.Warn(context.Background(), "error closing cache database", "err", err)
	}
}
