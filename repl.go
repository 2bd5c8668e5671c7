package main

import (
	"git.lolli.tech/lollipopkit/minicpp/config"
	"git.lolli.tech/lollipopkit/minicpp/repl"
	"git.lolli.tech/lollipopkit/minicpp/term"
	"git.lolli.tech/lollipopkit/minicpp/utils"
	"github.com/spf13/cobra"
)

var configInit bool

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive REPL",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runRepl()
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective config",
	Long: `Prints the effective config as YAML.

With --init the defaults are written to the config path if no file exists.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if configInit {
			path := config.Path(cfgFile)
			if utils.Exist(path) {
				term.Warn("%s already exists", path)
				return nil
			}
			if err := config.Default().Save(path); err != nil {
				return err
			}
			term.Suc("written %s", path)
			return nil
		}

		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		term.Print(string(data))
		return nil
	},
}

func init() {
	configCmd.Flags().BoolVar(&configInit, "init", false, "write a default config file")
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(configCmd)
}

func runRepl() {
	repl.New(cfg).Run()
}
