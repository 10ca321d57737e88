package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/chronos/foundation/core/error"
	mdwlog "github.com/msto63/chronos/foundation/core/log"
	"github.com/msto63/chronos/internal/parser"
	"github.com/msto63/chronos/internal/settings"
	"github.com/msto63/chronos/internal/timeline"
	"github.com/msto63/chronos/pkg/core/cache"
	"github.com/msto63/chronos/pkg/core/config"
	"github.com/msto63/chronos/pkg/core/logging"
)

var (
	cfgFile     string
	verbose     bool
	localeFlag  string
	roundRanges bool
	localTime   bool

	appConfig *config.Config
	logger    *mdwlog.Logger
	logFile   io.Closer
)

// errReported marks a failure whose details were already printed
var errReported = errors.New("reported")

var rootCmd = &cobra.Command{
	Use:   "chronos",
	Short: "chronos - timeline markup toolkit",
	Long: `chronos reads timeline documents written in chronos markup and
parses, checks or displays them.

  - [2024-01-05~2024-02-01] #red {Team} Sprint | description
  @ [2020~2024] #blue Era
  * [2024-03-15] Release
  = [2024-06] Midsummer
  > orderby start|-content
  ~ {arrowType: "->", block1: "Sprint", block2: "Release"}`,
	SilenceErrors:      true,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

// Execute runs the CLI and returns the process exit code
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			printError(rootCmd.ErrOrStderr(), err)
		}
		return 1
	}
	return 0
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $"+config.EnvConfigPath+" or ~/.config/chronos/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&localeFlag, "locale", "", "locale for labels and ordering (overrides settings)")
	rootCmd.PersistentFlags().BoolVar(&roundRanges, "round-ranges", false, "mark declared ranges with caps")
	rootCmd.PersistentFlags().BoolVar(&localTime, "local-time", false, "show labels in local time instead of UTC")
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		appConfig, err = config.Load(cfgFile)
	} else {
		appConfig, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	logCfg := logging.LoggerConfig{
		ServiceName: appConfig.General.Name,
		Level:       appConfig.General.LogLevel,
		Format:      appConfig.General.LogFormat,
		Output:      cmd.ErrOrStderr(),
	}
	if verbose {
		logCfg.Level = "debug"
	}
	if appConfig.General.LogFile != "" {
		f, err := logging.OpenLogFile(appConfig.General.LogFile)
		if err != nil {
			return err
		}
		logFile = f
		logCfg.AdditionalOutputs = append(logCfg.AdditionalOutputs, f)
	}

	logger = logging.NewLogger(logCfg)
	mdwlog.SetDefault(logger)

	logger.Debug("Configuration loaded", mdwlog.Fields{
		"source": appConfig.Source,
		"store":  appConfig.Store.Path,
	})
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	return nil
}

// openStore opens the settings database named in the configuration
func openStore() (*settings.Store, error) {
	return settings.Open(appConfig.Store.Path)
}

// effectiveSettings layers configuration, stored settings and flags
func effectiveSettings(ctx context.Context, cmd *cobra.Command) parser.Settings {
	result := parser.Settings{
		Locale:      appConfig.Parser.Locale,
		RoundRanges: appConfig.Parser.RoundRanges,
		UseUTC:      appConfig.UsesUTC(),
	}

	store, err := openStore()
	if err != nil {
		logger.WarnWithErr("Settings store unavailable, using configuration", err)
	} else {
		defer store.Close()
		if loaded, err := store.Load(ctx, result); err != nil {
			logger.WarnWithErr("Failed to load stored settings", err)
		} else {
			result = loaded
		}
	}

	flags := cmd.Flags()
	if flags.Changed("locale") {
		result.Locale = localeFlag
	}
	if flags.Changed("round-ranges") {
		result.RoundRanges = roundRanges
	}
	if flags.Changed("local-time") {
		result.UseUTC = !localTime
	}
	return result
}

// newService builds a timeline service for the effective settings
func newService(ctx context.Context, cmd *cobra.Command) *timeline.Service {
	return timeline.New(timeline.Options{
		Logger:   logger,
		Settings: effectiveSettings(ctx, cmd),
		Cache: cache.New(cache.Config{
			MaxItems: appConfig.Cache.MaxItems,
			TTL:      appConfig.Cache.TTL.Duration,
		}),
	})
}

// readSource reads a document from path, or stdin for "-"
func readSource(cmd *cobra.Command, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", mdwerror.Wrap(err, "failed to read document").
			WithCode(mdwerror.CodeIOError).
			WithDetail("path", path)
	}
	return string(data), nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
