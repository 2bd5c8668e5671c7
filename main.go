package main

import (
	"fmt"
	"os"
	"runtime"

	"git.lolli.tech/lollipopkit/minicpp/config"
	"git.lolli.tech/lollipopkit/minicpp/consts"
	"git.lolli.tech/lollipopkit/minicpp/logger"
	"git.lolli.tech/lollipopkit/minicpp/query"
	"git.lolli.tech/lollipopkit/minicpp/term"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	debug   bool
	cfg     = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "minicpp",
	Short: "Parser for a small C++ subset",
	Long: `minicpp parses a small subset of C++ (declarations, cout/cin,
functions and classes with access sections) into a syntax tree.

Without a command it starts the REPL.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	Run: func(cmd *cobra.Command, args []string) {
		runRepl()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		term.Print(fmt.Sprintf("minicpp v%s\n", consts.VERSION))
		term.Print(fmt.Sprintf("  Go Version: %s\n", runtime.Version()))
		term.Print(fmt.Sprintf("  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $"+consts.EnvConfig+" or "+consts.DefaultConfigPath+")")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "print debug logs")
	rootCmd.AddCommand(versionCmd)
}

// setup loads the config and applies it to the shared packages.
func setup(cmd *cobra.Command, args []string) error {
	path := config.Path(cfgFile)
	loaded, err := config.Load(path, cfgFile != "")
	if err != nil {
		return err
	}
	cfg = loaded

	consts.Debug = cfg.Debug || debug
	switch cfg.Color {
	case config.ColorAlways:
		term.SetColor(true)
	case config.ColorNever:
		term.SetColor(false)
	}
	query.SetCacheSize(cfg.QueryCacheSize)
	logger.I("[main] config %s: %+v", path, *cfg)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		term.Error("%v", err)
		os.Exit(1)
	}
}
