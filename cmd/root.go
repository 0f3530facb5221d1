// Package cmd provides the CLI commands for kkrtestctl.
package cmd

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kkr-labs/kkrtestctl/pkg/capability"
	cfg "github.com/kkr-labs/kkrtestctl/pkg/config"
	cfgmanager "github.com/kkr-labs/kkrtestctl/pkg/config/manager"
	log "github.com/kkr-labs/kkrtestctl/pkg/logging"
)

var (
	cfgFile      string
	logLevel     string
	workspaceLoc string
	verbose      bool
	rootCmd      *cobra.Command

	// Version is the version of kkrtestctl
	Version string
)

func init() {
	InitRootCmd()
	cobra.OnInitialize(InitConfig)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		exit(err)
	}
}

// InitRootCmd initializes the root command and adds all enabled subcommands
func InitRootCmd() *cobra.Command {
	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "kkrtestctl",
		Short: "Welcome to the KKR test CLI",
		Long: `Welcome to the KKR test CLI.
Select & run the KKR test suites according to which external codes and
services are available in the current environment.
Use 'kkrtestctl help <sub-command>' to explore all of the functionality the KKR test CLI has to offer.`,
		SilenceUsage: false,
	}

	globalFlags := rootCmd.PersistentFlags()
	globalFlags.StringVarP(&cfgFile, "config", "c", "", "KKR test CLI config file location")
	globalFlags.StringVarP(&logLevel, "log-level", "l", "info", "Log level. One of: [panic fatal error warn info debug trace]")
	globalFlags.StringVarP(&workspaceLoc, "workspace", "w", "", `Workspace location for staging runtime configurations and logs (default "$HOME/.kkrtest")`)
	globalFlags.BoolVarP(&verbose, "verbose", "v", false, "Forward verbose output options to the test runner")

	if err := viper.BindPFlag("logLevel", globalFlags.Lookup("log-level")); err != nil {
		exit(err)
	}

	// Unrecognized flags are user error, not failure: print usage and exit 0
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		fmt.Fprintln(os.Stderr, err)
		_ = cmd.Usage()
		os.Exit(0)
		return nil
	})

	// add base commands
	rootCmd.AddCommand(NewVersionCmd())
	rootCmd.AddCommand(NewRunSuitesCmd())
	rootCmd.AddCommand(NewPlanCmd())
	rootCmd.AddCommand(NewDoctorCmd())

	return rootCmd
}

// InitConfig reads in config file and ENV variables if set
func InitConfig() {
	log.SetLevel(viper.GetString("logLevel"))

	if cfgFile != "" {
		// Use config file from the --config flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		cfgPath, err := cfg.DefaultWorkspaceLoc()
		cobra.CheckErr(err)

		// Search for config under home directory
		viper.AddConfigPath(cfgPath)
		viper.SetConfigType("yaml")
		viper.SetConfigName(cfg.ConfigFile)
	}

	// The capability variables are the tool's external contract and are
	// bound verbatim, without the env prefix.
	if err := capability.BindEnv(); err != nil {
		exit(err)
	}
	viper.SetEnvPrefix("KKRTEST_CTL")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it
	if err := viper.ReadInConfig(); err == nil {
		viper.OnConfigChange(func(e fsnotify.Event) {
			fmt.Println("Config file changed:", e.Name)
			// This is actually a noop - the updated config will be
			// written to disk separately, but still nice to notify
			// the user that something changed!
		})
		viper.WatchConfig()
	} else {
		switch err.(type) {
		case viper.ConfigFileNotFoundError:
			log.Debug("No kkrtestctl config file detected. One will be created.")
		default:
			log.FatalCLI("Failed to initialize kkrtestctl config", "error", err)
		}
	}

	// Instantiate config
	if err := cfgmanager.Init(); err != nil {
		exit(err)
	}
	if workspaceLoc != "" {
		cfgmanager.Config().WorkspaceLoc = workspaceLoc
	}
}

func exit(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
