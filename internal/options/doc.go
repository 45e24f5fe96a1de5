// Package options defines the engine option schema and turns raw
// command-line tokens into a [RawOptionSet].
//
// The schema is the single source of truth for the recognized flags: the
// parser, the cobra commands and the generated usage text are all derived
// from it, so adding an option here is enough to make it parseable and
// documented.
//
// # Parsing
//
//	set, err := options.Parse(os.Args[1:])
//	if err != nil {
//		var perr *options.ParseError
//		if errors.As(err, &perr) {
//			fmt.Fprintln(os.Stderr, options.Usage())
//		}
//		return err
//	}
//
// Parsing is strict: unknown flags, flags without a value and stray
// positional arguments all fail with a [*ParseError]. Options not given on
// the command line are absent from the set, never empty entries.
package options
