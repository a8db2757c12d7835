package main

import (
	"fmt"
	"io"
	"os"

	"github.com/czz/ansiconsole/core/ansi"
	"github.com/czz/ansiconsole/core/config"
	"github.com/czz/ansiconsole/core/session"
	"github.com/czz/ansiconsole/core/tui"
	"github.com/spf13/cobra"
)

const banner = `
   ▄▄▄       ███▄    █   ██████  ██▓
  ▒████▄     ██ ▀█   █ ▒██    ▒ ▓██▒
  ▒██  ▀█▄  ▓██  ▀█ ██▒░ ▓██▄   ▒██▒
  ░██▄▄▄▄██ ▓██▒  ▐▌██▒  ▒   ██▒░██░
   ▓█   ▓██▒▒██░   ▓██░▒██████▒▒░██░
`

type flags struct {
	configPath string
	color      string
	logFile    string
	logLevel   string
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:           "ansiconsole",
		Short:         "Interactive console with ANSI-aware message delivery",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f, os.UserConfigDir)
			if err != nil {
				return err
			}
			return run(cfg, stdout)
		},
	}

	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "config file (default <user config dir>/ansiconsole/config.yaml)")
	cmd.Flags().StringVar(&f.color, "color", "", "color mode: auto, always or never")
	cmd.Flags().StringVar(&f.logFile, "log-file", "", "session log file")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn or error")
	return cmd
}

// loadConfig reads the config file and applies flags that were set explicitly.
func loadConfig(cmd *cobra.Command, f *flags, userConfigDir func() (string, error)) (*config.Config, error) {
	cfg, err := config.Load(f.configPath, userConfigDir)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("color") {
		cfg.Console.Color = f.color
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Log.File = f.logFile
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if _, err := tui.ParseColorMode(cfg.Console.Color); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cfg *config.Config, stdout io.Writer) error {
	logger, logCloser, err := session.OpenLog(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	s, err := session.NewSession(cfg, stdout, logger)
	if err != nil {
		return err
	}

	fmt.Fprint(stdout, s.Tui.Builder(len(banner)+16).Color(ansi.Gold).Append(banner).Reset().String())
	fmt.Fprintln(stdout, "Type help for the list of commands.")

	if err := s.Start(); err != nil {
		return err
	}
	defer s.Stop()

	s.ReadlineLoop()
	return nil
}
