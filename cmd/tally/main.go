package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/tally/config"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var version = "0.1.0"

type globalOptions struct {
	configPath string
	verbosity  int
	logFile    string
	cfg        *config.Config
}

// load reads the config file, if any, and sets up logging.
func (o *globalOptions) load(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if o.verbosity > cfg.Verbosity {
		cfg.Verbosity = o.verbosity
	}
	if o.logFile != "" {
		cfg.LogFile = o.logFile
	}
	o.cfg = cfg

	var path *string
	if cfg.LogFile != "" {
		path = &cfg.LogFile
	}
	commonlog.Configure(cfg.Verbosity, path)
	return nil
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:               "tally",
		Short:             "Sum blank-line separated groups of numbers",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: opts.load,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (.toml, .yaml or .yml)")
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newRunCmd(opts))
	rootCmd.AddCommand(newParseCmd(opts))
	rootCmd.AddCommand(newGrammarCmd())
	rootCmd.AddCommand(newLSPCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "tally:", err)
		os.Exit(1)
	}
}
