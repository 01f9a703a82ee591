// Package cmd implements the ptadiff command line interface.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jfmartin/ptadiff/pkg/logging"
)

var (
	configFile string
	formatFlag string
	verbose    bool
	quiet      bool

	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "ptadiff",
	Short: "PTA spreadsheet change detector",
	Long: `Ptadiff compares two versions of a PTA vehicle-configuration
spreadsheet and classifies every vehicle of the new file as New,
Spring Changed, or Unchanged, with mass deltas and summary metrics.

The match key is the stable vehicle identity column, never the spring
reference itself: reference changes are exactly what is detected. The
identity column label is fleet-specific and must be configured via
--key-column or the schema.identity config key.`,
	PersistentPreRunE: setupCommand,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.ptadiff.yaml)")
	rootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "", "output format: table, wide, json, yaml (default: auto-detect)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log warnings and errors")

	// Bind flags to viper
	if err := viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose")); err != nil {
		panic(fmt.Sprintf("Failed to bind verbose flag: %v", err))
	}
	if err := viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet")); err != nil {
		panic(fmt.Sprintf("Failed to bind quiet flag: %v", err))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if configFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(configFile)
	} else {
		// Search config in home directory with name ".ptadiff" (without extension)
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".ptadiff")
	}

	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	viper.SetEnvPrefix("PTADIFF")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// loadEnvFiles loads .env files from the working directory, most
// specific first so earlier files win.
func loadEnvFiles() {
	for _, name := range []string{".env.local", ".env"} {
		if _, err := os.Stat(name); err == nil {
			_ = godotenv.Load(name)
		}
	}
}

// setupCommand applies logging configuration before any command runs.
func setupCommand(_ *cobra.Command, _ []string) error {
	switch {
	case viper.GetBool("verbose"):
		logging.SetDefault(logging.Default().Level(zerolog.DebugLevel))
	case viper.GetBool("quiet"):
		logging.SetDefault(logging.Default().Level(zerolog.WarnLevel))
	}
	return nil
}
