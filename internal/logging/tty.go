package logging

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether w is a terminal. Writers without an Fd method
// never are.
func IsTTY(w io.Writer) bool {
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// SupportsColor reports whether ANSI colour should be written to w.
//
// CLICOLOR_FORCE (any value but "0") forces colour on. Otherwise NO_COLOR
// and TERM=dumb turn it off, and only terminals get colour.
func SupportsColor(w io.Writer) bool {
	return colorPolicy(os.LookupEnv, IsTTY(w))
}

func colorPolicy(lookup func(string) (string, bool), isTTY bool) bool {
	if v, ok := lookup("CLICOLOR_FORCE"); ok && v != "0" {
		return true
	}
	// https://no-color.org
	if _, ok := lookup("NO_COLOR"); ok {
		return false
	}
	if v, _ := lookup("TERM"); v == "dumb" {
		return false
	}
	return isTTY
}
