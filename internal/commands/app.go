package commands

import (
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/tally/internal/blob"
	"github.com/cleared-dev/tally/internal/categories"
	"github.com/cleared-dev/tally/internal/config"
	"github.com/cleared-dev/tally/internal/logging"
	"github.com/cleared-dev/tally/internal/store"
)

// app bundles everything a command needs to operate on one data directory.
type app struct {
	dir   string
	cfg   *config.Config
	log   *logrus.Logger
	blobs blob.Store
	store *store.Store
	cats  *categories.Service
}

// openApp loads configuration from the --dir data directory, opens the
// configured blob backend and rehydrates the store.
func openApp(cmd *cobra.Command) (*app, error) {
	dir, err := dataDir(cmd)
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadDir(dir)
	if err != nil {
		return nil, err
	}

	log, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	blobs, err := blob.Open(cfg.Storage.Backend, cfg.StoragePath(dir))
	if err != nil {
		return nil, fmt.Errorf("opening %s storage: %w", cfg.Storage.Backend, err)
	}

	st := store.New(blobs, log)
	if err := st.Load(); err != nil {
		_ = blobs.Close()
		return nil, fmt.Errorf("loading expenses: %w", err)
	}
	st.Subscribe(func(c store.Change) {
		log.WithFields(logrus.Fields{"kind": c.Kind, "id": c.ID}).Debug("expense changed")
	})

	return &app{
		dir:   dir,
		cfg:   cfg,
		log:   log,
		blobs: blobs,
		store: st,
		cats:  categories.NewService(categories.Default()),
	}, nil
}

// close releases the blob store and reports a failed snapshot write, so
// the process exits non-zero when a change was not saved.
func (a *app) close() error {
	persistErr := a.store.PersistErr()
	if err := a.blobs.Close(); err != nil {
		return fmt.Errorf("closing storage: %w", err)
	}
	if persistErr != nil {
		return fmt.Errorf("saving expenses: %w", persistErr)
	}
	return nil
}

func dataDir(cmd *cobra.Command) (string, error) {
	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}
	return abs, nil
}

// withApp runs fn against an opened app and closes it afterwards.
func withApp(cmd *cobra.Command, fn func(a *app) error) (err error) {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := a.close(); err == nil {
			err = cerr
		}
	}()
	return fn(a)
}
