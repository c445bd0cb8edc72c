package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/OmkarBelote/Ai-Aptitude-game/internal/config"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/mode"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/questions"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/scoring"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/session"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/store"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/store/redisstore"
)

const defaultRedisAddr = "localhost:6379"

// gameEnv holds everything commands need to play or inspect games.
type gameEnv struct {
	modes  mode.Table
	engine *scoring.Engine
	source *questions.Source
	repo   store.SessionRepo
	logger *log.Logger

	closers []func() error
}

func (e *gameEnv) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		_ = e.closers[i]()
	}
}

// sessionOptions returns controller options built from the environment.
func (e *gameEnv) sessionOptions() session.Options {
	return session.Options{
		Modes:   e.modes,
		Scoring: e.engine,
		Logger:  e.logger,
	}
}

// stderrLogger is used by the plain commands.
func stderrLogger() *log.Logger {
	return log.New(os.Stderr, "", 0)
}

// fileLogger writes to the state log while the TUI owns the terminal.
// Logging is dropped if the file cannot be opened.
func fileLogger() (*log.Logger, func() error) {
	path := config.DefaultLogPath()
	if err := store.EnsureDir(path); err != nil {
		return log.New(io.Discard, "", 0), func() error { return nil }
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return log.New(io.Discard, "", 0), func() error { return nil }
	}
	return log.New(f, "", log.LstdFlags), f.Close
}

// openEnv loads settings, the question bank and the history store.
func openEnv(cmd *cobra.Command, logger *log.Logger) (*gameEnv, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		cfgPath = config.DefaultConfigPath()
	}
	fc, err := config.LoadConfig(cfgPath)
	if err != nil {
		return nil, err
	}

	env := &gameEnv{modes: mode.Defaults(), logger: logger}
	if err := fc.ApplyModes(env.modes); err != nil {
		return nil, fmt.Errorf("load %s: %w", cfgPath, err)
	}
	sc, err := fc.ApplyScoring(scoring.DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", cfgPath, err)
	}
	env.engine = scoring.New(sc)

	dataDir, _ := cmd.Flags().GetString("data")
	if dataDir == "" && fc.Data.Dir != nil {
		dataDir = *fc.Data.Dir
	}
	var loader questions.Loader = questions.EmbeddedLoader()
	if dataDir != "" {
		loader = questions.NewFSLoader(os.DirFS(dataDir))
	}
	env.source = questions.NewSource(loader, questions.WithLogger(logger))

	if err := env.openRepo(cmd, fc.Store); err != nil {
		return nil, err
	}
	return env, nil
}

// openRepo connects the configured history backend. A backend that cannot
// be reached is replaced by an in-memory database so the game stays playable.
func (e *gameEnv) openRepo(cmd *cobra.Command, sc config.StoreConfig) error {
	backend, _ := cmd.Flags().GetString("store")
	if backend == "" {
		b, err := sc.BackendName()
		if err != nil {
			return err
		}
		backend = b
	}

	switch backend {
	case config.BackendRedis:
		addr, _ := cmd.Flags().GetString("redis-addr")
		if addr == "" && sc.RedisAddr != nil {
			addr = *sc.RedisAddr
		}
		if addr == "" {
			addr = defaultRedisAddr
		}
		var db int
		if sc.RedisDB != nil {
			db = *sc.RedisDB
		}
		ctx, cancel := context.WithTimeout(cmdContext(cmd), 3*time.Second)
		defer cancel()
		client, err := redisstore.Dial(ctx, addr, db)
		if err == nil {
			e.repo = redisstore.New(client, e.logger)
			e.closers = append(e.closers, client.Close)
			return nil
		}
		e.logger.Printf("warning: %v; history will not be kept", err)

	case config.BackendSQLite:
		path, err := resolveDBPath(cmd, sc.Path)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(path)
		if err == nil {
			e.repo = st.SessionRepo(e.logger)
			e.closers = append(e.closers, st.Close)
			return nil
		}
		e.logger.Printf("warning: open store: %v; history will not be kept", err)

	default:
		return fmt.Errorf("unknown store backend %q: must be sqlite or redis", backend)
	}

	st, err := store.Open(store.MemoryDSN)
	if err != nil {
		return fmt.Errorf("open in-memory store: %w", err)
	}
	e.repo = st.SessionRepo(e.logger)
	e.closers = append(e.closers, st.Close)
	return nil
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
