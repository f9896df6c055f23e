package librofi

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/qtc-de/librofi/config"
	"github.com/qtc-de/librofi/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gitlab.com/greyxor/slogor"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "librofi",
	Short: "Drive rofi as a dmenu-style selector",
	Long: `librofi wraps the rofi launcher in dmenu mode: it feeds entries over
stdin, optionally aligns them into columns, and reacts to the selection
or to custom keybindings. The subcommands exercise the library surface
from the shell.`,
	PersistentPreRun: bindFlags,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is the librofi directory under the user config dir)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"If provided, debug output will be shown")
}

func initConfig() {
	// A .env next to the invocation is a convenience for development;
	// its absence is the normal case.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Could not load .env file", "error", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		dir, err := config.Dir()
		cobra.CheckErr(err)

		viper.AddConfigPath(dir)
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("librofi")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			slog.Error("Could not read config file", "error", err)
			os.Exit(1)
		}
	}
}

// set values to the PFlag variables from config, if they are set. Priority is still given to explicitly provided CLI flags.
func bindFlags(cmd *cobra.Command, _ []string) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		configName := strings.ReplaceAll(f.Name, "-", "")

		if !f.Changed && viper.IsSet(configName) {
			val := viper.Get(configName)

			err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val))
			if err != nil {
				slog.Error("Could not bind flag to config value", "flag", f.Name, "error", err)
				panic(err)
			}
		}
	})

	if verbose {
		slog.SetDefault(slog.New(logging.ContextHandler{
			Handler: slogor.NewHandler(os.Stderr,
				slogor.SetLevel(slog.LevelDebug),
				slogor.SetTimeFormat(time.DateTime),
				slogor.ShowSource()),
		}))
	}
}
