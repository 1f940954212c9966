// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package csvrow parses line-oriented, comma-separated text into typed
// records with combinators, reporting failures as values that carry the
// exact row and column they blame.
//
// The core type [RowParser] describes how to consume a prefix of a [Row]
// and produce a value, or fail. A RowParser is a plain function from
// [State] to [Result]: building one runs nothing, and the same parser may
// be run against any number of rows.
//
// # Design Philosophy
//
// csvrow provides:
//   - A minimal algebra of row parsers with precise position semantics
//   - Failures as values (first failure wins, no recovery, no accumulation)
//   - Derivation of composite parsers from constructors and a registry of
//     per-type defaults, resolved while the parser is built
//   - Deferred file reading with scoped file ownership
//
// The dialect is deliberately naive: every "," separates two columns and
// there is no quoting, escaping, multi-line value or header handling.
//
// # Core Operations
//
// Minimal algebra:
//
//   - [Column]: Consume one column and yield its raw text
//   - [Transform]: Apply a total function to the value
//   - [Combine]: Run a function parser, then an argument parser, and apply
//   - [Emap]: Feed the value to a function returning the next parser
//   - [GuardMap]: Apply a fallible conversion, blaming the column just read
//   - [End]: Require that no columns remain, blaming where extra data begins
//
// Derived operations:
//
//   - [Pure], [Fail], [CurrentPos]: Zero-width parsers
//   - [Then], [Skip]: Sequence, keeping one side
//   - [Strict]: Sequence with [End]
//   - [Map2], [Map3]: Lift a constructor over several parsers
//   - [ColumnOf], [Optional]: One column through a conversion
//
// Column parsers: [String], [Int], [Int64], [Uint], [Float64], [Bool],
// [Date], [Time], [Duration].
//
// Execution:
//
//   - [Run]: Run a parser against a state
//   - [RunRow]: Run against a fresh row state, returning the final state
//   - [EvalRow]: Run against a fresh row state, returning only the outcome
//
// # Positions
//
// [Pos] is zero-based (row, column). [State] tracks the position of the
// next column, the column consumed last ([State.PrevCol]) and the unconsumed
// remainder. Three rules decide every reported position:
//
//   - Running out of columns blames the current position, so
//     [RowExhaustionFailure] reports the number of columns the row had.
//   - A failed conversion blames the column consumed last, however many
//     conversions are chained after it.
//   - Trailing data blames the current position, where the extra data
//     begins, so [End] reports the number of columns consumed.
//
// # Failures
//
//   - [ColumnParseFailure]: Conversion failed, or trailing data was found
//   - [RowExhaustionFailure]: A column was expected but the row had none left
//   - [IOFailure]: The input file is missing or inaccessible
//   - [ParseFailure]: Union of the two row failures, with [ParseFailure.Pos]
//   - [Failure]: Union of every structured failure
//
// Any other error returned by this package is an unrecovered fault.
//
// # Derivation
//
// A [Registry] maps types to default parsers; [DefaultRegistry] holds the
// column parsers above. Derivation resolves every field type while the
// parser is built and fails there with [ErrNoParser] when a type has no
// default:
//
//   - [Derive]: From a function or a curried chain of functions
//   - [Derive1], [Derive2], [Derive3], [Derive4]: Statically typed
//   - [DeriveStruct]: From the exported fields of a struct
//   - [Schema.Build]: From a declared list of field types
//   - [WithStrict]: Opt in to rejecting trailing columns
//
// # Either Type
//
// [Either] represents success (Right) or failure (Left):
//
//   - [Left], [Right]: Constructors
//   - [Either.IsLeft], [Either.IsRight]: Predicates
//   - [Either.GetLeft], [Either.GetRight]: Accessors
//   - [MatchEither]: Pattern matching
//   - [MapEither], [FlatMapEither], [MapLeftEither]: Transformations
//
// # File Boundary
//
// Reading a file is the only step that may block. It is wrapped in a
// [Task], a deferred unit of work the caller schedules:
//
//   - [Task.Run]: Run on the calling goroutine
//   - [Task.Start]: Run on a new goroutine, returning a one-shot [Future]
//   - [Future.Await]: Wait for the outcome or for the caller to stop waiting
//   - [MapTask], [BindTask]: Compose tasks
//   - [Bracket]: Acquire, use and always release a resource
//
// Driver:
//
//   - [ReadLines]: Read every line of a file
//   - [SplitRow]: Split a line on ","
//   - [ParseLines]: Parse lines in order, stopping at the first failure
//   - [Parse]: ReadLines then ParseLines, as one [Task]
//   - [ParseAll]: Parse several files concurrently
//
// # Example
//
//	type Person struct {
//		ID   int
//		Name string
//		Born time.Time
//	}
//
//	parser, err := csvrow.Derive3(csvrow.DefaultRegistry(),
//		func(id int, name string, born time.Time) Person {
//			return Person{ID: id, Name: name, Born: born}
//		},
//		csvrow.WithStrict(),
//	)
//	if err != nil {
//		return err
//	}
//	result, err := csvrow.Parse("people.csv", parser).Run()
//	if err != nil {
//		return err // unrecovered fault
//	}
//	people, isRight := result.GetRight()
package csvrow
