package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/chronos/foundation/core/error"
	mdwlog "github.com/msto63/chronos/foundation/core/log"
	"github.com/msto63/chronos/internal/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change stored settings",
	Long: `Manages the settings stored in the chronos settings database.

Keys:
  locale        BCP 47 tag used for labels and ordering (e.g. en, de, ja)
  round_ranges  true to mark declared ranges with caps
  use_utc       false to show labels in local time`,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print effective settings",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Store a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

var settingsSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Store the effective settings",
	Long: `Stores every setting as currently in effect, including values given
with --locale, --round-ranges and --local-time.`,
	Args: cobra.NoArgs,
	RunE: runSettingsSave,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Remove all stored settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsReset,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsGetCmd, settingsSetCmd, settingsSaveCmd, settingsResetCmd)
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	current := effectiveSettings(cmd.Context(), cmd)
	values := map[string]string{
		settings.KeyLocale:      current.Locale,
		settings.KeyRoundRanges: fmt.Sprint(current.RoundRanges),
		settings.KeyUseUTC:      fmt.Sprint(current.UseUTC),
	}

	out := cmd.OutOrStdout()
	if len(args) == 1 {
		v, ok := values[args[0]]
		if !ok {
			return mdwerror.Newf("unknown setting: %s", args[0]).WithCode(mdwerror.CodeNotFound)
		}
		fmt.Fprintln(out, v)
		return nil
	}

	for _, k := range settings.Keys() {
		fmt.Fprintf(out, "%-13s %s\n", k, values[k])
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Set(cmd.Context(), args[0], args[1]); err != nil {
		return err
	}
	logger.Info("Setting stored", mdwlog.Fields{"key": args[0]})
	return nil
}

func runSettingsSave(cmd *cobra.Command, args []string) error {
	current := effectiveSettings(cmd.Context(), cmd)

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Save(cmd.Context(), current); err != nil {
		return err
	}
	logger.Info("Settings stored", mdwlog.Fields{"locale": current.Locale})
	return nil
}

func runSettingsReset(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	return store.Reset(cmd.Context())
}
