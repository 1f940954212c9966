// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"code.hybscloud.com/csvrow"
)

// Person is one line of a people file: id,name,birthdate.
type Person struct {
	ID   int
	Name string
	Born time.Time
}

func newPerson(id int) func(string) func(time.Time) Person {
	return func(name string) func(time.Time) Person {
		return func(born time.Time) Person {
			return Person{ID: id, Name: name, Born: born}
		}
	}
}

func newParseCommand(v *viper.Viper) *cobra.Command {
	c := &cobra.Command{
		Use:   "parse FILE",
		Short: "Parse a people file and print its records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, loadConfig(v), args[0])
		},
	}
	c.Flags().Bool("strict", false, "reject rows with columns after the birthdate")
	_ = v.BindPFlag("strict", c.Flags().Lookup("strict"))
	return c
}

func runParse(cmd *cobra.Command, cfg Config, path string) error {
	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}

	var opts []csvrow.DeriveOption
	if cfg.Strict {
		opts = append(opts, csvrow.WithStrict())
	}
	parser, err := csvrow.Derive[Person](csvrow.DefaultRegistry(), newPerson, opts...)
	if err != nil {
		return err
	}

	future := csvrow.Parse(path, parser, csvrow.WithLogger(logger)).Start()
	result, err := future.Await(cmd.Context())
	if err != nil {
		return err
	}
	return csvrow.MatchEither(result,
		func(f csvrow.Failure) error {
			reportFailure(cmd.ErrOrStderr(), f)
			return errReported
		},
		func(people []Person) error {
			out := cmd.OutOrStdout()
			for _, p := range people {
				fmt.Fprintf(out, "%d\t%s\t%s\n", p.ID, p.Name, p.Born.Format(csvrow.DateLayout))
			}
			return nil
		},
	)
}

func reportFailure(w io.Writer, f csvrow.Failure) {
	switch f := f.(type) {
	case *csvrow.IOFailure:
		fmt.Fprintf(w, "io failure: %s: %v\n", f.Path, f.Err)
	case *csvrow.ColumnParseFailure:
		fmt.Fprintf(w, "column parse failure at %s: %v\n", f.Position, f.Cause)
	case *csvrow.RowExhaustionFailure:
		fmt.Fprintf(w, "row exhaustion failure at %s\n", f.Position)
	default:
		fmt.Fprintf(w, "failure: %v\n", f)
	}
}
