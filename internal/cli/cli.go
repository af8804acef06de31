// Package cli is the labelgrid command line: cobra commands whose flags fall
// back to settings.toml and LABELGRID_* environment variables through viper.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucky7xz/labelgrid/internal/config"
	"github.com/lucky7xz/labelgrid/internal/core"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const logFileName = "labelgrid.log"

// app holds what every command shares once the root pre-run has finished.
type app struct {
	v *viper.Viper

	configDir string
	theme     string

	settings config.Settings
	logFile  *os.File
}

// Execute runs the root command against os.Args. Cobra has already printed
// any error it returns.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree. Each call gets its own viper
// instance so commands can be built repeatedly in tests.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "labelgrid",
		Short: "Lay out label/value pairs in a responsive grid",
		Long: `labelgrid arranges label/value items into rows of a column grid whose column
count follows the terminal width. Render a grid document once, or watch it live
and see it reflow as the terminal is resized.`,
		Version:           config.Version,
		SilenceUsage:      true,
		Args:              cobra.MaximumNArgs(1),
		PersistentPreRunE: a.preRun,
		PersistentPostRun: a.postRun,
		RunE:              a.runWatch,
	}

	rootCmd.PersistentFlags().StringVar(&a.configDir, "config-dir", "",
		"directory holding settings.toml and grids (default is the user config dir)")
	rootCmd.PersistentFlags().StringVar(&a.theme, "theme", "",
		"color theme: "+strings.Join(config.ThemeNames(), ", "))

	rootCmd.AddCommand(
		newRenderCmd(a),
		newWatchCmd(a),
		newNetCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// preRun resolves the config dir, starts logging, loads settings and then
// lets flags that were not given fall back to the environment and settings.
func (a *app) preRun(cmd *cobra.Command, _ []string) error {
	a.v.SetEnvPrefix("labelgrid")
	a.v.AutomaticEnv()

	// Environment first, so LABELGRID_CONFIGDIR can move the config dir.
	bindFlags(a.v, cmd)

	if a.configDir == "" {
		dir, err := config.GetConfigDir()
		if err != nil {
			return fmt.Errorf("could not get config dir: %w", err)
		}
		a.configDir = dir
	}
	if err := os.MkdirAll(a.configDir, 0o755); err != nil {
		return fmt.Errorf("could not create config dir: %w", err)
	}

	f, err := core.OpenLog(filepath.Join(a.configDir, logFileName))
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	} else {
		a.logFile = f
	}
	log.Printf("labelgrid %s: %s", config.Version, cmd.CommandPath())

	settings, err := config.LoadSettings(a.configDir)
	if err != nil {
		return err
	}
	a.settings = settings

	if err := a.initConfig(); err != nil {
		return err
	}
	bindFlags(a.v, cmd)

	if a.theme == "" {
		a.theme = a.settings.Theme
	}
	return nil
}

func (a *app) postRun(_ *cobra.Command, _ []string) {
	if a.logFile != nil {
		log.SetOutput(io.Discard)
		a.logFile.Close()
		a.logFile = nil
	}
}

// initConfig points viper at settings.toml so its top-level keys can fill
// flags of the same name.
func (a *app) initConfig() error {
	path := filepath.Join(a.configDir, "settings.toml")
	a.v.SetConfigFile(path)
	a.v.SetConfigType("toml")

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			log.Printf("no config file at %s", path)
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	log.Printf("Using config file: %s", a.v.ConfigFileUsed())
	return nil
}

// bindFlags sets every flag the user did not pass from viper, if viper has a
// value for it. Explicit flags always win. Cobra's own help and version
// flags are never bound.
func bindFlags(v *viper.Viper, cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Name == "help" || f.Name == "version" {
			return
		}
		// Config keys and env vars drop the hyphens: config-dir -> configdir.
		configName := strings.ReplaceAll(f.Name, "-", "")

		if f.Changed || !v.IsSet(configName) {
			return
		}
		val := v.Get(configName)
		if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
			log.Printf("Error setting flag %s from %s: %v", f.Name, configName, err)
			return
		}
		log.Printf("Flag '%s' set to config value %v", f.Name, val)
	})
}

// warnTo returns a warning sink that logs and also tells the user.
func warnTo(w io.Writer) core.Warnf {
	return func(format string, args ...any) {
		log.Printf(format, args...)
		fmt.Fprintf(w, "warning: "+format+"\n", args...)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", config.AppName, config.Version)
		},
	}
}
