package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/chronos/pkg/core/health"
	"github.com/msto63/chronos/pkg/core/version"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the local installation",
	Long: `Checks that the configuration file is readable, the data directory
is writable and the settings database opens.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	registry := health.NewRegistry("chronos", version.Toolkit)

	if appConfig.Source != "" {
		registry.Register(health.FileCheck("config", appConfig.Source, false))
	} else {
		registry.RegisterFunc("config", func(ctx context.Context) health.CheckResult {
			return health.CheckResult{Status: health.StatusDegraded, Message: "no config file, using defaults"}
		})
	}
	registry.Register(health.WritableDirCheck("data-dir", appConfig.General.DataDir))
	registry.Register(health.WritableDirCheck("store-dir", filepath.Dir(appConfig.Store.Path)))
	registry.RegisterFunc("settings-store", func(ctx context.Context) health.CheckResult {
		store, err := openStore()
		if err != nil {
			return health.CheckResult{Status: health.StatusUnhealthy, Message: err.Error()}
		}
		defer store.Close()
		if _, err := store.All(ctx); err != nil {
			return health.CheckResult{Status: health.StatusUnhealthy, Message: err.Error()}
		}
		return health.CheckResult{Status: health.StatusHealthy, Message: appConfig.Store.Path}
	})

	report := registry.CheckWithTimeout(10 * time.Second)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "chronos v%s: %s\n", report.Version, report.Status)
	for _, c := range report.Checks {
		icon := "[+]"
		switch c.Status {
		case health.StatusDegraded:
			icon = "[~]"
		case health.StatusUnhealthy:
			icon = "[-]"
		}
		fmt.Fprintf(out, "  %s %-15s %s\n", icon, c.Name, c.Message)
	}

	if report.Status == health.StatusUnhealthy {
		return errReported
	}
	return nil
}
