package cmd

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/terror/rsql/config"
	"github.com/terror/rsql/render"
)

var (
	rsqlCmd = &cobra.Command{
		Use:   "rsql",
		Short: "A relational algebra toolkit",
		Long: "Rsql builds tables of typed rows and combines them with joins, selection, " +
			"projection, set operations, and grouping.",
		PersistentPreRunE: rsqlPreRun,
		PersistentPostRun: rsqlPostRun,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	cfg *config.Config

	logFile   *string
	logLevel  *string
	logStderr *bool
	logWriter io.WriteCloser

	renderOpts render.Options

	configFile string
	noConfig   bool
)

func init() {
	log.SetFormatter(&log.TextFormatter{
		DisableLevelTruncation: true,
	})

	fs := rsqlCmd.PersistentFlags()
	cfg = config.NewConfig(fs)

	logFile = cfg.Var(new(string), "log-file").Usage("`file` to use for logging").
		Env("RSQL_LOG_FILE").String("rsql.log")
	logLevel = cfg.Var(new(string), "log-level").
		Usage("log level: trace, debug, info, warn, error, fatal, or panic").
		Env("RSQL_LOG_LEVEL").String("info")
	logStderr = cfg.Var(new(bool), "log-stderr").Short("s").Usage("log to standard error").
		Bool(false)

	cfg.Var(&renderOpts.Border, "border").Usage("draw a border around tables").Bool(true)
	cfg.Var(&renderOpts.RowLine, "row-line").Usage("draw a line between rows").Bool(false)
	cfg.Var(&renderOpts.Count, "show-count").Usage("print the number of rows of each table").
		Bool(true)

	cfg.Var(&configFile, "config-file").Usage("`file` to load config from").
		Env("RSQL_CONFIG_FILE").NoConfig().String("rsql.hcl")
	cfg.Var(&noConfig, "no-config").Usage("don't load config file").NoConfig().Bool(false)
}

func Execute() error {
	return rsqlCmd.Execute()
}

func rsqlPreRun(cmd *cobra.Command, args []string) error {
	err := cfg.Env()
	if err != nil {
		return fmt.Errorf("rsql: %s", err)
	}

	if configFile != "" && !noConfig {
		err := cfg.Load(configFile)
		if err != nil && !(os.IsNotExist(err) && !cmd.Flags().Changed("config-file")) {
			return fmt.Errorf("rsql: %s", err)
		}
	}

	if !*logStderr && *logFile != "" {
		var err error
		logWriter, err = os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
		if err != nil {
			logWriter = nil
			return fmt.Errorf("rsql: %s", err)
		}
		log.SetOutput(logWriter)
	} else {
		log.SetOutput(os.Stderr)
	}

	ll, err := log.ParseLevel(*logLevel)
	if err != nil {
		return fmt.Errorf("rsql: %s", err)
	}
	log.SetLevel(ll)

	log.WithField("pid", os.Getpid()).Info("rsql starting")
	return nil
}

func rsqlPostRun(cmd *cobra.Command, args []string) {
	log.WithField("pid", os.Getpid()).Info("rsql done")

	if logWriter != nil {
		log.SetOutput(os.Stderr)
		logWriter.Close()
		logWriter = nil
	}
}
