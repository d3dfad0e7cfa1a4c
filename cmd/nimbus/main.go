package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"nimbus/internal/assistant"
	"nimbus/internal/auth"
	"nimbus/internal/config"
	"nimbus/internal/db"
	"nimbus/internal/llm"
	"nimbus/internal/repository"
	"nimbus/internal/server"
)

var version = "dev"

var (
	verbose  bool
	logLevel zap.AtomicLevel
	logger   *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "nimbus",
	Short: "Nimbus - personal productivity server with AI-assisted scheduling",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logLevel = zcfg.Level
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the nimbus version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("nimbus", version)
	},
}

var (
	sessionEmail string
	sessionName  string
	sessionTTL   time.Duration
)

// sessionIssueCmd records an identity resolved by the external auth
// flow and prints the bearer token for it.
var sessionIssueCmd = &cobra.Command{
	Use:   "session-issue",
	Short: "Issue a session token for a user identity",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		database, err := db.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		sessions := repository.NewSQLiteSessionRepo(database)
		s, err := auth.IssueSession(cmd.Context(), sessions, sessionEmail, sessionName, sessionTTL)
		if err != nil {
			return err
		}
		fmt.Println(s.Token)
		return nil
	},
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Verbose {
		logLevel.SetLevel(zapcore.DebugLevel)
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	taskRepo := repository.NewSQLiteTaskRepo(database)
	eventRepo := repository.NewSQLiteEventRepo(database)
	goalRepo := repository.NewSQLiteGoalRepo(database)
	sessionRepo := repository.NewSQLiteSessionRepo(database)

	if n, err := sessionRepo.DeleteExpired(context.Background(), time.Now().UTC()); err != nil {
		logger.Warn("pruning expired sessions", zap.Error(err))
	} else if n > 0 {
		logger.Info("pruned expired sessions", zap.Int64("count", n))
	}

	llmCfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewZapObserver(logger)
	}
	client := llm.NewClient(llmCfg, observer)

	srv := server.NewServer(
		assistant.NewService(client),
		auth.NewResolver(sessionRepo),
		taskRepo,
		eventRepo,
		goalRepo,
		logger,
	)

	httpSrv := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", cfg.Addr))
		errCh <- httpSrv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case sig := <-sigCh:
		logger.Info("shutting down", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(ctx)
	}
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	sessionIssueCmd.Flags().StringVar(&sessionEmail, "email", "", "user email (required)")
	sessionIssueCmd.Flags().StringVar(&sessionName, "name", "", "user display name")
	sessionIssueCmd.Flags().DurationVar(&sessionTTL, "ttl", 30*24*time.Hour, "session lifetime")
	_ = sessionIssueCmd.MarkFlagRequired("email")

	rootCmd.AddCommand(serveCmd, sessionIssueCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
