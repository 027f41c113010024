// Command sudokugen solves and generates sudoku puzzles, and can serve the
// JSON API over HTTP.
package main

import (
	"os"
	"strings"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var log = logrus.New()

// config carries the file-configurable defaults; flags win over the file.
type config struct {
	Addr     string `yaml:"addr"`
	DataDir  string `yaml:"dataDir"`
	LogLevel string `yaml:"logLevel"`
	BaseSize int    `yaml:"baseSize"`
}

func defaultConfig() config {
	return config{
		Addr:     ":8080",
		DataDir:  "./data",
		LogLevel: "info",
		BaseSize: 3,
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func setLogLevel(level string) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		log.SetLevel(logrus.DebugLevel)
	case "warn":
		log.SetLevel(logrus.WarnLevel)
	case "error":
		log.SetLevel(logrus.ErrorLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}
}

type app struct {
	cfg        config
	configPath string
	logLevel   string
	cpuProfile bool
}

// startProfile turns on CPU profiling for the heavy commands when requested.
// The returned stop func is a no-op otherwise.
func (a *app) startProfile() func() {
	if !a.cpuProfile {
		return func() {}
	}
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	return p.Stop
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "sudokugen",
		Short:         "Solve and generate sudoku puzzles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			if a.logLevel != "" {
				a.cfg.LogLevel = a.logLevel
			}
			setLogLevel(a.cfg.LogLevel)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug|info|warn|error")
	root.PersistentFlags().BoolVar(&a.cpuProfile, "profile", false, "write a CPU profile to the working directory")

	root.AddCommand(newSolveCmd(a))
	root.AddCommand(newGenerateCmd(a))
	root.AddCommand(newServeCmd(a))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
