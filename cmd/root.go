// Package cmd provides the command-line interface for the finch-frontend
// binding extractor.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/finch-gen/finch-frontend-api/internal/application/common/logging"
	"github.com/finch-gen/finch-frontend-api/internal/application/common/slogger"
	"github.com/finch-gen/finch-frontend-api/internal/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "finch-frontend",
	Short: "Extract the binding surface of a generated C-linkage header",
	Long: `finch-frontend parses the C-linkage header a binding generator emits
for a crate and reconstructs the class-oriented binding surface encoded in it:
classes with their constructors, destructors, methods, static functions,
getters and setters, each with fully resolved argument and return types.

The resulting model is the input target-language emitters consume.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./configs/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "json", "Log format (json, text)")

	if err := viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding log-level flag: %v\n", err)
	}
	if err := viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding log-format flag: %v\n", err)
	}
}

func initConfig() {
	v := viper.New()

	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("FINCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
		}
		// Config file not found; use defaults and environment.
	}

	cfg = config.New(v)

	logger, err := logging.NewApplicationLogger(logging.Config{
		Level:  strings.ToUpper(cfg.Log.Level),
		Format: cfg.Log.Format,
		Output: "stderr",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		return
	}
	slogger.SetGlobalLogger(logger)
}

func setDefaults(v *viper.Viper) {
	// Header generation defaults
	v.SetDefault("bindgen.binary", "cbindgen")
	v.SetDefault("bindgen.crate_dir", ".")
	v.SetDefault("bindgen.output_dir", "")
	v.SetDefault("bindgen.timeout", "2m")

	// Front-end defaults
	v.SetDefault("frontend.pointer_width", 8)

	// Logging defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}
