package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/johnjamespj/gollowmap/internal/keywords"
	"github.com/johnjamespj/gollowmap/internal/scoring"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	usage              = "Usage: spamscore <database path> <message path> <threshold>"
	envPrefix          = "SPAMSCORE"
	defaultCfgFileName = ".spamscore"
)

var errUsage = errors.New(usage)

type options struct {
	cfgFile  string
	logLevel string
	format   string
}

func newRootCmd(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "spamscore <database path> <message path> <threshold>",
		Short:         "Score a message against a weighted keyword database",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 3 {
				return errUsage
			}
			return nil
		},
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			initConfig(cmd, opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), opts, args[0], args[1], args[2])
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", fmt.Sprintf("config file (default is $HOME/%s)", defaultCfgFileName))
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "error", "Log level: debug, info, warning, error")
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", string(keywords.FormatCSV), "Keyword database format: csv, compiled")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "compile <database path> <output path>",
		Short: "Convert a csv keyword database to the compiled format",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return compile(args[0], args[1])
		},
	})

	return rootCmd
}

// initConfig use config file and ENV variables if set.
func initConfig(cmd *cobra.Command, opts *options) {
	v := viper.New()

	if opts.cfgFile != "" {
		v.SetConfigFile(opts.cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
		v.SetConfigName(defaultCfgFileName)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cfgErr := v.ReadInConfig()

	bindFlags(cmd, v)
	initLogger(opts.logLevel)

	var notFound viper.ConfigFileNotFoundError
	if errors.As(cfgErr, &notFound) {
		log.Debugf("no config file: %v", cfgErr)
	} else if cfgErr != nil {
		log.Errorf("Read config error: %v", cfgErr)
	}
}

func initLogger(logLevel string) {
	ll, err := log.ParseLevel(logLevel)
	if err != nil {
		ll = log.ErrorLevel
	}
	log.SetLevel(ll)
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableColors: false, FullTimestamp: true, PadLevelText: true, DisableQuote: true})
}

// Apply the viper value to every flag that was not set on the command line
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed && v.IsSet(f.Name) {
			_ = cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})
}

func run(out io.Writer, opts *options, dbPath string, msgPath string, thresholdArg string) error {
	rlog := log.WithField("run", uuid.NewString())

	threshold, err := scoring.ParseThreshold(thresholdArg)
	if err != nil {
		return err
	}
	format, err := keywords.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	db, err := keywords.Open(dbPath, format)
	if err != nil {
		return err
	}
	rlog.WithField("format", format).Infof("loaded %d keywords from %s", db.Size(), dbPath)

	message, err := scoring.ReadMessageFile(msgPath)
	if err != nil {
		return err
	}

	score := scoring.Score(db, message)
	verdict := scoring.Verdict(score, threshold)
	rlog.WithField("score", score).WithField("threshold", threshold).Info(verdict)

	_, err = fmt.Fprintln(out, verdict)
	return err
}

func compile(dbPath string, outPath string) error {
	db, err := keywords.LoadFile(dbPath)
	if err != nil {
		return err
	}
	if err := keywords.CompileFile(outPath, db); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	log.WithField("keywords", db.Size()).Infof("compiled %s into %s", dbPath, outPath)
	return nil
}

func main() {
	if err := newRootCmd(&options{}).Execute(); err != nil {
		if errors.Is(err, keywords.ErrInvalidInput) {
			log.Debugf("%v", err)
			fmt.Fprintln(os.Stderr, "Invalid input")
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
