package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Eugene-WebDev/se-ranking-node/internal/application/port/output"
	"github.com/Eugene-WebDev/se-ranking-node/internal/di"
	"github.com/Eugene-WebDev/se-ranking-node/internal/domain/entity"
	"github.com/Eugene-WebDev/se-ranking-node/internal/infrastructure/env"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	continueOnFail bool
	baseURL        string
	logLevel       string
	quiet          bool
}

func newRootCmd() *cobra.Command {
	return newRootCmdWithConfig(env.NewEnvService())
}

func newRootCmdWithConfig(config output.ConfigPort) *cobra.Command {
	opts := &rootOptions{}
	settings := env.LoadSettings(config)

	root := &cobra.Command{
		Use:           "seranking",
		Short:         "Create SE Ranking SERP tasks and collect their results",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&opts.continueOnFail, "continue-on-fail", false, "emit error records instead of aborting on a failed item")
	root.PersistentFlags().StringVar(&opts.baseURL, "base-url", settings.BaseURL, "provider base URL")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", settings.LogLevel, "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "do not print progress to stderr")

	root.AddCommand(
		newCreateTaskCmd(opts, settings),
		newTaskStatusCmd(opts, settings),
		newRunCmd(opts, settings),
		newServeCmd(opts, settings),
	)
	return root
}

func newCreateTaskCmd(opts *rootOptions, settings env.Settings) *cobra.Command {
	var engineID int
	var keywords string

	cmd := &cobra.Command{
		Use:   "create-task",
		Short: "Create a SERP task for a comma separated keyword list",
		RunE: func(cmd *cobra.Command, args []string) error {
			items := []entity.ItemParams{{EngineID: engineID, Keywords: keywords}}
			return execute(cmd, opts, settings, entity.OperationCreateSerpTask, items)
		},
	}
	cmd.Flags().IntVar(&engineID, "engine-id", 200, "search engine id (200 = Google US, 1540 = Google US Mobile)")
	cmd.Flags().StringVar(&keywords, "keywords", "", "comma separated keywords")
	_ = cmd.MarkFlagRequired("keywords")
	return cmd
}

func newTaskStatusCmd(opts *rootOptions, settings env.Settings) *cobra.Command {
	var taskID string

	cmd := &cobra.Command{
		Use:   "task-status",
		Short: "Get status or results of a SERP task",
		RunE: func(cmd *cobra.Command, args []string) error {
			items := []entity.ItemParams{{TaskID: taskID}}
			return execute(cmd, opts, settings, entity.OperationGetTaskStatus, items)
		},
	}
	cmd.Flags().StringVar(&taskID, "task-id", "", "task id returned by create-task")
	_ = cmd.MarkFlagRequired("task-id")
	return cmd
}

func newRunCmd(opts *rootOptions, settings env.Settings) *cobra.Command {
	var operation string
	var inputPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one operation over a JSON array of items",
		Long: `Run one operation over every item of a JSON array, in order.

Each item may carry engine_id, keywords and task_id. Use --input - to read
the items from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := readItems(cmd.InOrStdin(), inputPath)
			if err != nil {
				return err
			}
			return execute(cmd, opts, settings, entity.Operation(operation), items)
		},
	}
	cmd.Flags().StringVar(&operation, "operation", entity.OperationCreateSerpTask.String(), "createSerpTask or getTaskStatus")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "items file, or - for stdin")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func newServeCmd(opts *rootOptions, settings env.Settings) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve batch executions over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := newContainer(opts, settings, "serve", nil)
			if err != nil {
				return err
			}
			defer container.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := &http.Server{
				Addr:              addr,
				Handler:           container.HTTP.Handler(),
				ReadHeaderTimeout: 10 * time.Second,
			}
			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), settings.ShutdownTimeout)
				defer cancel()
				_ = srv.Shutdown(shutdownCtx)
			}()

			container.Logger.Info("HTTP server listening", "addr", addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("http server: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", settings.HTTPAddr, "listen address")
	return cmd
}

func newContainer(opts *rootOptions, settings env.Settings, runName string, progress io.Writer) (*di.Container, error) {
	return di.NewContainer(di.Config{
		APIToken:   settings.APIToken,
		BaseURL:    opts.baseURL,
		HTTPSProxy: settings.HTTPSProxy,
		NoProxy:    settings.NoProxy,
		LogLevel:   opts.logLevel,
		LogDir:     settings.LogDir,
		LogStderr:  settings.LogStderr,
		RunName:    runName,
		Progress:   progress,
	})
}

func execute(cmd *cobra.Command, opts *rootOptions, settings env.Settings, op entity.Operation, items []entity.ItemParams) error {
	var progress io.Writer
	if !opts.quiet {
		progress = cmd.ErrOrStderr()
	}

	container, err := newContainer(opts, settings, op.String(), progress)
	if err != nil {
		return err
	}
	defer container.Close()

	result, runErr := container.Executor.Execute(cmd.Context(), entity.Batch{
		Operation:   op,
		Mode:        entity.RunModeFromContinueOnFail(opts.continueOnFail),
		Credentials: entity.Credentials{APIToken: settings.APIToken},
		Items:       items,
	})
	if result != nil {
		if err := writeRecords(cmd.OutOrStdout(), result.Records); err != nil {
			return err
		}
	}
	return runErr
}

func readItems(stdin io.Reader, path string) ([]entity.ItemParams, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open items: %w", err)
		}
		defer f.Close()
		r = f
	}

	var items []entity.ItemParams
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	return items, nil
}

func writeRecords(w io.Writer, records []entity.Record) error {
	if records == nil {
		records = []entity.Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
