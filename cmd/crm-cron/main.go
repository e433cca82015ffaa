package main

import (
	"os"

	"github.com/benjamin-o-ansah/alx-backend-graphql-crm/internal/config"
	"github.com/benjamin-o-ansah/alx-backend-graphql-crm/internal/cron"
	"github.com/benjamin-o-ansah/alx-backend-graphql-crm/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// crm-cron runs the periodic jobs against a running CRM facade. Each job is
// exposed as a one-shot subcommand for external schedulers; `run` keeps them
// on their configured intervals in-process.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "crm-cron",
		Short:         "CRM periodic job runner",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newHeartbeatCmd(),
		newRemindersCmd(),
		newRestockCmd(),
		newRunCmd(),
	)

	return root
}

func buildJobs() (*cron.Jobs, error) {
	cfg := config.Load()
	log, err := logger.New(cfg)
	if err != nil {
		return nil, err
	}
	return cron.New(cron.Params{
		Cfg:    cfg,
		Log:    log,
		Client: cron.NewClient(cfg),
	}), nil
}

func newHeartbeatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "heartbeat",
		Short: "Probe the facade and append an UP/DOWN heartbeat line",
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, err := buildJobs()
			if err != nil {
				return err
			}
			return jobs.Heartbeat(cmd.Context())
		},
	}
}

func newRemindersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "order-reminders",
		Short: "Log a reminder line for every order of the last 7 days",
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, err := buildJobs()
			if err != nil {
				return err
			}
			return jobs.OrderReminders(cmd.Context())
		},
	}
}

func newRestockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restock",
		Short: "Restock low-stock products and log each update",
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, err := buildJobs()
			if err != nil {
				return err
			}
			return jobs.RestockLowStock(cmd.Context())
		},
	}
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run all jobs on their configured intervals",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fx.New(
				config.Module,
				logger.Module,
				cron.LoopModule,
			)
			app.Run()
			return nil
		},
	}
}
