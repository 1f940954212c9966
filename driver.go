// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package csvrow

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// File driver.
//
// The only suspension point is reading the file. Once lines are in memory
// every row is parsed synchronously, in file order.

// Separator is the only column separator. Quoting and escaping are not
// supported: a separator inside a value always splits it.
const Separator = ","

// ReadLines returns a task that reads every line of the file at path.
//
// Lines end in "\n" or "\r\n" and have no length limit unless
// [WithMaxLineSize] sets one. A byte-order mark at the start of the file
// selects the input encoding and is dropped. A missing, inaccessible or
// directory path yields an [*IOFailure]; any other I/O error is a fault. The file is
// closed before the task completes, on every path.
func ReadLines(path string, opts ...Option) Task[[]string] {
	o := newOptions(opts)
	log := o.logger.With().Str("path", path).Logger()
	return func() (Either[Failure, []string], error) {
		return Bracket(
			func() (Either[Failure, *os.File], error) {
				return openFile(path)
			},
			func(f *os.File) error {
				return f.Close()
			},
			func(f *os.File) (Either[Failure, []string], error) {
				log.Debug().Msg("file opened")
				lines, err := scanLines(f, o.maxLineSize)
				if err != nil {
					return Either[Failure, []string]{}, fmt.Errorf("csvrow: read %s: %w", path, err)
				}
				log.Debug().Int("lines", len(lines)).Msg("file read")
				return Right[Failure](lines), nil
			},
		)
	}
}

func openFile(path string) (Either[Failure, *os.File], error) {
	f, err := os.Open(path)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		return Left[Failure, *os.File](&IOFailure{Path: path, Err: err}), nil
	default:
		return Either[Failure, *os.File]{}, fmt.Errorf("csvrow: open %s: %w", path, err)
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return Either[Failure, *os.File]{}, fmt.Errorf("csvrow: stat %s: %w", path, err)
	}
	if fi.IsDir() {
		f.Close()
		return Left[Failure, *os.File](&IOFailure{Path: path, Err: ErrIsDirectory}), nil
	}
	return Right[Failure](f), nil
}

// scanLines reads r to the end, one string per line without its "\n" or
// "\r\n". A final line without terminator counts; an empty input has no
// lines. maxLineSize <= 0 means unbounded.
func scanLines(r io.Reader, maxLineSize int) ([]string, error) {
	br := bufio.NewReader(transform.NewReader(r, unicode.BOMOverride(transform.Nop)))
	var lines []string
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return lines, err
		}
		if line == "" && err == io.EOF {
			return lines, nil
		}
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		if maxLineSize > 0 && len(line) > maxLineSize {
			return lines, fmt.Errorf("line %d: %w", len(lines), bufio.ErrTooLong)
		}
		lines = append(lines, line)
		if err == io.EOF {
			return lines, nil
		}
	}
}

// SplitRow splits line on [Separator]. An empty line is a row of one
// empty column. Joining the row with [Separator] gives back line.
func SplitRow(line string) Row {
	return strings.Split(line, Separator)
}

// ParseLines parses each line as one row, the line's index being its row
// index. Results keep input order. The first failing row ends parsing and
// its failure is returned alone.
func ParseLines[A any](p RowParser[A], lines []string) Either[ParseFailure, []A] {
	out := make([]A, 0, len(lines))
	for i, line := range lines {
		r := EvalRow(p, i, SplitRow(line))
		v, isRight := r.GetRight()
		if !isRight {
			f, _ := r.GetLeft()
			return Left[ParseFailure, []A](f)
		}
		out = append(out, v)
	}
	return Right[ParseFailure](out)
}

// Parse returns a task that reads the file at path and parses every line
// with p. The outcome is either all records in file order or the single
// [Failure] that stopped the parse.
func Parse[A any](path string, p RowParser[A], opts ...Option) Task[[]A] {
	o := newOptions(opts)
	log := o.logger.With().Str("path", path).Logger()
	parse := BindTask(ReadLines(path, opts...), func(lines []string) Either[Failure, []A] {
		return MapLeftEither(ParseLines(p, lines), widen)
	})
	return func() (Either[Failure, []A], error) {
		result, err := parse()
		if err != nil {
			log.Error().Err(err).Msg("parse aborted")
			return result, err
		}
		if f, isLeft := result.GetLeft(); isLeft {
			ev := log.Warn().Err(f)
			if pf, isParse := f.(ParseFailure); isParse {
				ev = ev.Int("row", pf.Pos().Row).Int("col", pf.Pos().Col)
			}
			ev.Msg("parse failed")
			return result, nil
		}
		records, _ := result.GetRight()
		log.Debug().Int("records", len(records)).Msg("parse succeeded")
		return result, nil
	}
}

// ParseAll returns a task that parses several files with p, each the way
// [Parse] does. Files are read concurrently, at most [WithConcurrency] at
// a time; rows within a file stay sequential. Outcomes are in path order.
// A fault in any file is the fault of the whole task.
func ParseAll[A any](paths []string, p RowParser[A], opts ...Option) Task[[]Either[Failure, []A]] {
	o := newOptions(opts)
	return func() (Either[Failure, []Either[Failure, []A]], error) {
		results := make([]Either[Failure, []A], len(paths))
		var g errgroup.Group
		g.SetLimit(o.concurrency)
		for i, path := range paths {
			g.Go(func() error {
				r, err := Parse(path, p, opts...).Run()
				results[i] = r
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return Either[Failure, []Either[Failure, []A]]{}, err
		}
		return Right[Failure](results), nil
	}
}
