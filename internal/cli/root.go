package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/nasiya/internal/app"
	"github.com/idilsaglam/nasiya/internal/config"
	"github.com/idilsaglam/nasiya/internal/store"
	"github.com/idilsaglam/nasiya/internal/store/jsonstore"
	"github.com/idilsaglam/nasiya/internal/store/memstore"
	"github.com/idilsaglam/nasiya/internal/store/redisstore"
	"github.com/idilsaglam/nasiya/internal/store/sqlitestore"
	"github.com/idilsaglam/nasiya/internal/tui"
	"github.com/idilsaglam/nasiya/internal/ui"
)

// env is shared by every command of one invocation.
type env struct {
	cfg    config.Config
	cfgErr error

	repo    *store.Repository
	logFile io.Closer
}

// Run executes one invocation and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	e := newEnv()
	defer e.close()

	cmd := newRootCmd(e)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return 0
	}
	if !isReported(err) {
		ui.NewPrinter(stdout, stderr).Fail(err.Error())
	}
	return ExitCode(err)
}

func newEnv() *env {
	e := &env{}
	e.cfg, e.cfgErr = config.Load()
	return e
}

func newRootCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "nasiya",
		Short:         "Vazifalar va nasiya daftari (todo + debt tracker)",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          usageArgs(cobra.NoArgs),
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  nasiya

  # Scriptable commands
  nasiya todo add "Non olish"
  nasiya debt add --customer Ali --product Un --qty 2 --price 15000
  nasiya debt ls --sort amount
  nasiya stats
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := e.open(cmd.Context())
			if err != nil {
				return err
			}
			return tui.Run(a)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return e.setup()
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return e.close()
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err: err}
	})

	pf := cmd.PersistentFlags()
	pf.StringVar(&e.cfg.Dir, "dir", e.cfg.Dir, "Data directory (env "+config.EnvDir+")")
	pf.StringVar(&e.cfg.Backend, "backend", e.cfg.Backend, "Storage backend: "+strings.Join(config.Backends, "|")+" (env "+config.EnvBackend+")")
	pf.StringVar(&e.cfg.RedisURL, "redis-url", e.cfg.RedisURL, "Redis URL for --backend redis (env "+config.EnvRedisURL+")")
	pf.StringVar(&e.cfg.RedisPrefix, "redis-prefix", e.cfg.RedisPrefix, "Redis key prefix (env "+config.EnvRedisPrefix+")")
	pf.StringVar(&e.cfg.Theme, "theme", e.cfg.Theme, "Theme: "+strings.Join(ui.Themes, "|")+" (env "+config.EnvTheme+")")
	pf.BoolVar(&e.cfg.NoColor, "no-color", e.cfg.NoColor, "Disable colour output (env "+config.EnvNoColor+")")
	pf.BoolVar(&e.cfg.ForceColor, "color", e.cfg.ForceColor, "Force colour even when stdout is not a terminal (env "+config.EnvColor+" or FORCE_COLOR)")
	pf.BoolVar(&e.cfg.Debug, "debug", e.cfg.Debug, "Write a debug log to <dir>/debug.log (env "+config.EnvDebug+")")

	cmd.AddCommand(newTodoCmd(e))
	cmd.AddCommand(newDebtCmd(e))
	cmd.AddCommand(newStatsCmd(e))

	return cmd
}

func (e *env) setup() error {
	if e.cfgErr != nil && e.cfg.Dir == "" {
		return e.cfgErr
	}
	if err := e.cfg.Validate(); err != nil {
		return usageError{err: err}
	}

	ui.SetColorForcing(e.cfg.ForceColor, e.cfg.NoColor)
	ui.SetTheme(e.cfg.Theme)

	if !e.cfg.Debug {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := config.EnsureDir(e.cfg.Dir); err != nil {
		return err
	}
	f, err := tea.LogToFile(filepath.Join(e.cfg.Dir, "debug.log"), "nasiya")
	if err != nil {
		return fmt.Errorf("debug log: %w", err)
	}
	e.logFile = f
	return nil
}

func (e *env) close() error {
	var err error
	if e.repo != nil {
		err = e.repo.Close()
		e.repo = nil
	}
	if e.logFile != nil {
		e.logFile.Close()
		e.logFile = nil
		log.SetOutput(os.Stderr)
	}
	return err
}

// open builds the configured backend and loads an App from it.
func (e *env) open(ctx context.Context) (*app.App, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	b, err := openBackend(ctx, e.cfg)
	if err != nil {
		return nil, err
	}
	e.repo = store.NewRepository(b, log.Default())
	log.Printf("nasiya: backend=%s dir=%s", e.cfg.Backend, e.cfg.Dir)

	a, err := app.New(ctx, e.repo)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func openBackend(ctx context.Context, cfg config.Config) (store.Backend, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return memstore.New(), nil
	case config.BackendRedis:
		return redisstore.Open(ctx, cfg.RedisURL, cfg.RedisPrefix)
	case config.BackendSQLite:
		if err := config.EnsureDir(cfg.Dir); err != nil {
			return nil, err
		}
		return sqlitestore.Open(ctx, filepath.Join(cfg.Dir, sqlitestore.FileName))
	default:
		if err := config.EnsureDir(cfg.Dir); err != nil {
			return nil, err
		}
		return jsonstore.New(cfg.Dir), nil
	}
}
