package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/designplay/internal/config"
	"github.com/jask/designplay/internal/logging"
	"github.com/jask/designplay/internal/persist"
	"github.com/jask/designplay/internal/scene"
	"github.com/jask/designplay/internal/store"
	"github.com/jask/designplay/internal/tui"
)

// cli carries the flags and the per-run dependencies built in PersistentPreRunE.
type cli struct {
	verbose    bool
	newSession bool
	ephemeral  bool

	cfg    config.Config
	logger *zap.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "designplay",
		Short: "Interactive playground for tray, layout, content, approval and modal designs",
		Long: `designplay edits five UI scenes side by side with a live preview.

Run without arguments to start the full-screen editor. The edited state is
saved after every change and restored on the next start.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInteractive(cmd.Context())
		},
	}

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().BoolVar(&c.newSession, "new-session", false, "start a fresh session instead of restoring the last one")
	root.PersistentFlags().BoolVar(&c.ephemeral, "ephemeral", false, "keep the state in memory only")

	root.AddCommand(newRenderCmd(c), newSnapshotCmd(c), newConfigCmd(c))
	return root
}

func (c *cli) setup() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.ephemeral {
		cfg.Store.Driver = config.DriverMemory
	}
	if c.newSession {
		cfg.Store.Session = uuid.NewString()
	}
	c.cfg = cfg

	logger, err := logging.New(cfg.Log, logging.Options{Verbose: c.verbose, ToFile: true})
	if err != nil {
		return err
	}
	c.logger = logger
	return nil
}

// session is an opened slot plus the store restored from it.
type session struct {
	adapter *persist.Adapter
	store   *store.Store
	closer  io.Closer
}

func (s *session) Close() error { return s.closer.Close() }

func (c *cli) openSession(ctx context.Context) (*session, error) {
	slot, closer, err := persist.Open(ctx, c.cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	adapter := persist.NewAdapter(slot, c.logger)
	st := adapter.Restore(ctx, time.Now())
	c.logger.Debug("session restored", zap.Stringer("slot", slot), zap.String("tab", string(st.Tab)))
	return &session{adapter: adapter, store: store.New(st), closer: closer}, nil
}

func (c *cli) theme() scene.ThemeMode {
	return scene.ThemeMode(c.cfg.UI.Theme)
}

func (c *cli) runInteractive(ctx context.Context) error {
	sess, err := c.openSession(ctx)
	if err != nil {
		return err
	}
	defer sess.Close()
	sess.adapter.Purge(ctx, time.Now(), c.cfg.Store.TTL)

	unbind := sess.adapter.Bind(ctx, sess.store)
	defer unbind()

	app := tui.New(sess.store, c.logger, tui.Options{
		Theme:          c.theme(),
		Scale:          c.cfg.UI.Scale,
		TrayCloseDelay: c.cfg.UI.TrayCloseDelay,
	})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	if n := sess.adapter.Failures(); n > 0 {
		c.logger.Warn("session saved with failures", zap.Int64("failures", n))
	}
	return nil
}
