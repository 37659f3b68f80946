package hoteles

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mundomaya/hoteles/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configName  = ".hoteles"
	envPrefix   = "hoteles"
	bookingKey  = "booking.widget-url"
	bookingFlag = "booking-widget-url"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "hoteles",
	Short: "Serve the Hoteles Grupo Mundo Maya landing page",
	Long: `hoteles renders the Grupo Mundo Maya landing page: navigation, hero,
package grids, promotions, booking and footer, plus the timed promo dialog.
It can serve the page, export it as static HTML and summarize how the promo
dialog was received.`,
	SilenceUsage:     true,
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

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.hoteles.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output")
}

func initConfig() {
	if verbose {
		logging.Level.Set(slog.LevelDebug)
	}

	if cfgFile != "" {
		slog.Debug("Using config file", "path", cfgFile)
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory and the working directory with name ".hoteles" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("toml")
		viper.SetConfigName(configName)
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			createExampleConfig()
		} else {
			slog.Error("Error reading config file", "error", err)
			os.Exit(1)
		}
	}

	slog.Debug("Config loaded", "file", viper.ConfigFileUsed())
}

func createExampleConfig() {
	exampleConfig := `
port = 8080
modaldelay = "800ms"
mountttl = "30m"
events = "./hoteles.sqlite"

[booking]
widget-url = ""
`
	configPath := "./" + configName + ".toml"

	err := os.WriteFile(configPath, []byte(exampleConfig), 0o644)
	if err != nil {
		slog.Warn("Could not create example config file", "path", configPath, "error", err)

		return
	}

	slog.Info("Example config file created", "path", configPath)
}

// configKey maps a flag to its config file key. Hyphens are dropped since viper
// compares keys case-insensitively, so camelCase keys in the file match too.
func configKey(flagName string) string {
	if flagName == bookingFlag {
		return bookingKey
	}

	return strings.ReplaceAll(flagName, "-", "")
}

// set values to the PFlag variables from config, if they are set. Priority is still given to explicitly provided CLI flags.
func bindFlags(cmd *cobra.Command, _ []string) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key := configKey(f.Name)

		if !f.Changed && viper.IsSet(key) {
			val := viper.Get(key)

			err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val))
			if err != nil {
				slog.Error("Error setting flag from config", "flag", f.Name, "error", err)
				panic(err)
			}

			slog.Debug("Flag set to config value", "flag", f.Name, "value", val)
		}
	})
}
