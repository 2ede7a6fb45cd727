package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"
	"strings"

	"github.com/safenotes/safenotes/internal/client/config"
	"github.com/safenotes/safenotes/internal/client/gate"
	"github.com/safenotes/safenotes/internal/client/journal"
	"github.com/safenotes/safenotes/internal/client/publish"
	"github.com/safenotes/safenotes/internal/client/sos"
	"github.com/safenotes/safenotes/internal/client/state"
	"github.com/safenotes/safenotes/internal/client/storage"
	"github.com/safenotes/safenotes/internal/client/upload"
	"github.com/safenotes/safenotes/internal/logging"
	"github.com/safenotes/safenotes/internal/s3x"

	_ "modernc.org/sqlite"
)

type App struct {
	config     *config.Config
	db         *sql.DB
	store      *state.Store
	journal    *journal.Service
	composer   *sos.Composer
	dispatcher sos.Dispatcher
	gate       *gate.Gate
	log        logging.Logger
	reader     *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {

	db, repo, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	store, err := state.New(ctx, repo, log)
	if err != nil {
		return nil, err
	}

	js, err := journal.New(repo, store, c.MediaDir, log)
	if err != nil {
		return nil, err
	}

	s3c, err := s3x.NewClient(ctx, s3x.Config{
		Region:       c.S3Region,
		AccessKey:    c.S3AccessKey,
		SecretKey:    c.S3SecretKey,
		BaseEndpoint: c.S3BaseEndpoint,
	})
	if err != nil {
		return nil, err
	}

	pageBase := strings.TrimRight(c.PageServiceURL, "/")
	gw := upload.New(s3c, upload.Options{
		Bucket:        c.S3Bucket,
		PublicBaseURL: c.S3PublicBaseURL,
		MetadataURL:   pageBase + "/media",
	}, log)

	reader := bufio.NewReader(os.Stdin)

	a := &App{
		config:     c,
		db:         db,
		store:      store,
		journal:    js,
		dispatcher: sos.NewPlatformDispatcher(c.SMSOpener, log),
		gate:       gate.New(store),
		log:        log,
		reader:     reader,
	}
	a.composer = sos.NewComposer(store, gw, publish.New(c.PageServiceURL), &promptLocator{reader: reader}, log)
	return a, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close(ctx)
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, scanner)
}

// Close flushes pending settings writes and releases the database.
func (a *App) Close(ctx context.Context) {
	if err := a.store.Close(ctx); err != nil {
		a.log.Error(ctx, "error closing settings store", "error", err)
	}
	if err := a.db.Close(); err != nil {
		a.log.Error(ctx, "error closing database", "error", err)
	}
}

func (a *App) isUnlocked() bool {
	return a.store.IsUnlocked()
}
