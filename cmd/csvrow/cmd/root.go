// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// errReported marks a failure already printed for the user.
var errReported = errors.New("csvrow: failure reported")

// Execute runs the csvrow command line until it finishes or is
// interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := NewRootCommand()
	err := root.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, errReported) {
		fmt.Fprintf(root.ErrOrStderr(), "error: %v\n", err)
	}
	return err
}

// NewRootCommand builds the command tree with its own configuration.
func NewRootCommand() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("CSVROW")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:   "csvrow",
		Short: "Parse comma-separated rows into typed records",
		Long: `csvrow reads a file of comma-separated lines and parses each line into a
typed record, reporting the exact row and column of the first failure.

No quoting or escaping is supported: every comma separates two columns.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if path := v.GetString("env-file"); path != "" {
				if err := godotenv.Load(path); err != nil {
					return fmt.Errorf("load env file: %w", err)
				}
			}
			return nil
		},
	}

	root.PersistentFlags().String("log-level", "warn", "log level (trace, debug, info, warn, error, disabled)")
	root.PersistentFlags().String("env-file", "", "dotenv file to load before reading CSVROW_* variables")
	_ = v.BindPFlags(root.PersistentFlags())

	root.AddCommand(newParseCommand(v), newVersionCommand())
	return root
}

// Config holds the settings of one invocation.
type Config struct {
	LogLevel string
	Strict   bool
}

func loadConfig(v *viper.Viper) Config {
	return Config{
		LogLevel: v.GetString("log-level"),
		Strict:   v.GetBool("strict"),
	}
}

func newLogger(cmd *cobra.Command, cfg Config) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log-level: %w", err)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).
		Level(level).
		With().Timestamp().Logger(), nil
}
