package main

import (
	"errors"
	"fmt"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/TsubasaBE/go-cellfmt"
	"github.com/TsubasaBE/go-cellfmt/locale"
	"github.com/TsubasaBE/go-cellfmt/numfmt"
)

// Configuration keys.  Each is also a persistent flag and a CELLFMT_*
// environment variable.
const (
	keyLocale     = "locale"
	keyLocaleFile = "locale-file"
	keyDate1904   = "date1904"
	keyLogLevel   = "log-level"
)

// app carries the state shared by all subcommands.  It is built by
// PersistentPreRunE before any subcommand runs.
type app struct {
	cfgFile string
	v       *viper.Viper
	log     *logrus.Logger
	engine  *numfmt.Engine
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: logrus.New()}

	root := &cobra.Command{
		Use:   "cellfmt",
		Short: "Render values with spreadsheet number format codes",
		Long: `cellfmt renders numbers, text, booleans and dates the way a spreadsheet
displays them under a number format code such as "#,##0.00" or "yyyy-mm-dd".

Settings are read from flags, CELLFMT_* environment variables and
$HOME/.cellfmt.yaml, in that order of precedence.`,
		Version:       cellfmt.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.cellfmt.yaml)")
	flags.String(keyLocale, "en-US", "BCP 47 locale tag, e.g. de-DE")
	flags.String(keyLocaleFile, "", "YAML locale file; overrides --locale")
	flags.Bool(keyDate1904, false, "use the 1904 date system")
	flags.StringP(keyLogLevel, "l", "warn", "log level: debug, info, warn, error")
	for _, key := range []string{keyLocale, keyLocaleFile, keyDate1904, keyLogLevel} {
		_ = a.v.BindPFlag(key, flags.Lookup(key))
	}

	root.AddCommand(
		newFormatCmd(a),
		newBuiltinCmd(a),
		newInspectCmd(a),
		newBatchCmd(a),
	)
	return root
}

// init reads configuration, sets up logging and builds the engine.
func (a *app) init(cmd *cobra.Command) error {
	if err := a.readConfig(); err != nil {
		return err
	}

	a.log.SetOutput(cmd.ErrOrStderr())
	level, err := logrus.ParseLevel(a.v.GetString(keyLogLevel))
	if err != nil {
		return fmt.Errorf("cellfmt: %w", err)
	}
	a.log.SetLevel(level)

	loc, err := a.loadLocale()
	if err != nil {
		return err
	}
	a.engine = numfmt.NewEngine(
		numfmt.WithLocale(loc),
		numfmt.WithDate1904(a.v.GetBool(keyDate1904)),
		numfmt.WithLogger(a.log),
	)
	a.log.WithFields(logrus.Fields{
		"locale":   loc.Tag.String(),
		"date1904": a.v.GetBool(keyDate1904),
	}).Debug("engine ready")
	return nil
}

func (a *app) readConfig() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return fmt.Errorf("cellfmt: home directory: %w", err)
		}
		a.v.AddConfigPath(home)
		a.v.SetConfigName(".cellfmt")
		a.v.SetConfigType("yaml")
	}

	a.v.SetEnvPrefix("CELLFMT")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("cellfmt: read config: %w", err)
	}
	return nil
}

func (a *app) loadLocale() (locale.Locale, error) {
	if name := a.v.GetString(keyLocaleFile); name != "" {
		return locale.LoadFile(name)
	}
	return locale.Lookup(a.v.GetString(keyLocale))
}
