/*
Package main is the versort CLI: it reads version tags from stdin, one
per line, sorts them, and prints the same lines to stdout in order.
*/
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/tox-wtf/versort"

	"github.com/jessevdk/go-flags"
)

type Options struct {
	// Parsing behavior
	OptionsParse OptionsParse `group:"Parsing"`
	// Output shaping
	OptionsOutput OptionsOutput `group:"Output"`
}

type OptionsParse struct {
	Ignore  bool `short:"i" long:"ignore"        description:"Drop unparsable lines instead of aborting"`
	Counter bool `short:"c" long:"count-is-char" description:"Treat a single trailing letter as an ordinal counter (1.0 < 1.0a < 1.0b)"`
}

type OptionsOutput struct {
	Reverse bool `short:"r" long:"reverse" description:"Sort descending (highest first)"`
	Unique  bool `short:"u" long:"unique"  description:"Collapse tags that compare equal (1.2 vs 1.2.0), keeping the first"`
	Limit   int  `short:"n" long:"limit"   description:"Max number of output lines (<=0 = unlimited)" default:"0"`
}

func main() {
	var opt Options
	parser := flags.NewParser(&opt, flags.Default)
	parser.LongDescription = `versort — sort semantic-ish version tags.
Reads one tag per line from stdin and prints the same lines sorted:
tolerates shorthand releases (1.2), informal prerelease tags, and with
-c single-letter ordinals (1.0a). Output is the input text verbatim,
only reordered.`
	if _, err := parser.Parse(); err != nil {
		if flagErr, ok := err.(*flags.Error); ok && flagErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	// Read stdin to completion before any parsing; blank lines are
	// transport noise and never reach the parser.
	in := make([]string, 0, 1024)
	sc := bufio.NewScanner(os.Stdin)
	const maxLine = 10 * 1024 * 1024
	buf := make([]byte, 0, 64*1024)
	sc.Buffer(buf, maxLine)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			in = append(in, s)
		}
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "read stdin: %v\n", err)
		os.Exit(2)
	}

	out, err := versort.Sort(in, versort.Options{
		IgnoreUnparsable: opt.OptionsParse.Ignore,
		Counter:          opt.OptionsParse.Counter,
		Reverse:          opt.OptionsOutput.Reverse,
		Unique:           opt.OptionsOutput.Unique,
		Limit:            opt.OptionsOutput.Limit,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "versort: %v\n", err)
		os.Exit(1)
	}

	// A broken pipe must terminate promptly, not hang on a full buffer.
	w := bufio.NewWriter(os.Stdout)
	for _, t := range out {
		if _, err := fmt.Fprintln(w, t); err != nil {
			os.Exit(2)
		}
	}
	if err := w.Flush(); err != nil {
		os.Exit(2)
	}
}
