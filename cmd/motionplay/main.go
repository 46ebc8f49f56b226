package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"motionplay/internal/config"
	"motionplay/internal/log"
	"motionplay/internal/store"
)

var (
	version = "dev"

	cfgFile string
	debug   bool
	cfg     *config.Config
)

// Entry point for the application
func main() {
	rootCmd := &cobra.Command{
		Use:   "motionplay",
		Short: "Configure and run the MotionPlay motion controller bridge",
		Long: `
	'##::::'##::'#######::'########:'####::'#######::'##::: ##:
	 ###::'###:'##.... ##:... ##..::. ##::'##.... ##: ###:: ##:
	 ####'####: ##:::: ##:::: ##::::: ##:: ##:::: ##: ####: ##:
	 ## ### ##: ##:::: ##:::: ##::::: ##:: ##:::: ##: ## ## ##:
	 ##. #: ##: ##:::: ##:::: ##::::: ##:: ##:::: ##: ##. ####:
	 ##:.:: ##: ##:::: ##:::: ##::::: ##:: ##:::: ##: ##:. ###:
	 ##:::: ##:. #######::::: ##:::'####:. #######:: ##::. ##:
	..:::::..:::.......::::::..::::....:::.......:::..::::..::

Map physical movements (jump, squat, lean) onto keyboard keys, tune
detection sensitivity, and bridge the configuration to the local
motion-detection process.
		`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var err error
			if cfgFile != "" {
				cfg, err = config.LoadConfigFile(cfgFile)
			} else {
				cfg, err = config.LoadConfig()
			}
			if err != nil {
				fmt.Printf("⚠️ Warning: %v\n", err)
				fmt.Println("💡 Using default settings.")
				cfg = config.New()
			}
			log.SetDebug(debug || cfg.Settings.Debug)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/motionplay/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(bindingsCmd())
	rootCmd.AddCommand(sensitivityCmd())
	rootCmd.AddCommand(connectCmd())
	rootCmd.AddCommand(tuiCmd())
	rootCmd.AddCommand(guiCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// openKV opens the snapshot store at the configured data directory.
func openKV() (*store.Disk, error) {
	dir := cfg.Data.Dir
	if dir == "" {
		var err error
		dir, err = store.DefaultBasePath()
		if err != nil {
			return nil, fmt.Errorf("resolve data directory: %w", err)
		}
	}
	return store.NewDisk(dir)
}
