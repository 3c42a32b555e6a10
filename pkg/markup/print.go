package markup

import (
	"fmt"
	"io"
	"os"
)

// Sprintf colorizes format and then formats it with args.
// Markup is only read from format; args are substituted afterwards and
// are printed as they are. As with generated code, format only goes through
// fmt when args are given.
func Sprintf(format string, args ...any) (string, error) {
	colored, err := Colorize(format)
	if err != nil {
		return "", err
	}
	if len(args) == 0 {
		return colored, nil
	}
	return fmt.Sprintf(colored, args...), nil
}

// Fprint writes the colorized, formatted text to w
func Fprint(w io.Writer, format string, args ...any) error {
	out, err := Sprintf(format, args...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// Fprintln is Fprint followed by a newline
func Fprintln(w io.Writer, format string, args ...any) error {
	if err := Fprint(w, format, args...); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Print writes to stdout
func Print(format string, args ...any) error {
	return Fprint(os.Stdout, format, args...)
}

// Println writes to stdout with a trailing newline
func Println(format string, args ...any) error {
	return Fprintln(os.Stdout, format, args...)
}

// Eprint writes to stderr
func Eprint(format string, args ...any) error {
	return Fprint(os.Stderr, format, args...)
}

// Eprintln writes to stderr with a trailing newline
func Eprintln(format string, args ...any) error {
	return Fprintln(os.Stderr, format, args...)
}
