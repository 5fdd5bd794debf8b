// recfmtcheck compiles pattern templates and reports where they break.
//
// Templates come from the command line, or one per line on stdin when no
// arguments are given. A valid template prints a preview line rendered from
// a fixed record; an invalid one prints the compile diagnostic with a caret
// under the offending byte offset. The exit status is 1 when any template
// fails to compile, 2 on usage errors.
//
//	recfmtcheck '[{date} {time}] [{^{level}}] {payload}{eol}'
//	grep -h pattern= deploy/*.conf | cut -d= -f2- | recfmtcheck -q
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"pkt.systems/recfmt"
	"pkt.systems/recfmt/pattern"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("recfmtcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		quiet      = fs.Bool("q", false, "report diagnostics only, skip preview lines")
		listFields = fs.Bool("fields", false, "print the supported field names and exit")
		levelName  = fs.String("level", "warn", "record level for the preview line")
		logger     = fs.String("logger", "check", "logger name for the preview line")
		payload    = fs.String("payload", "the quick brown fox jumps over the lazy dog", "payload for the preview line")
	)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: recfmtcheck [flags] [template ...]")
		fmt.Fprintln(stderr, "Reads one template per line from stdin when no templates are given.")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *listFields {
		for _, name := range pattern.FieldNames() {
			fmt.Fprintln(stdout, name)
		}
		return 0
	}

	level, ok := recfmt.ParseLevel(*levelName)
	if !ok {
		fmt.Fprintf(stderr, "recfmtcheck: unknown level %q\n", *levelName)
		return 2
	}

	templates := fs.Args()
	if len(templates) == 0 {
		scanner := bufio.NewScanner(stdin)
		for scanner.Scan() {
			// Keep leading and trailing spaces, they are part of the template.
			line := scanner.Text()
			if strings.TrimSpace(line) == "" {
				continue
			}
			templates = append(templates, line)
		}
		if err := scanner.Err(); err != nil {
			fmt.Fprintf(stderr, "recfmtcheck: read stdin: %v\n", err)
			return 2
		}
	}
	if len(templates) == 0 {
		fs.Usage()
		return 2
	}

	src := recfmt.NewSourceLocation("pkt.systems/recfmt", "recfmtcheck/main.go", 42, 9)
	record := recfmt.NewRecord(level, *payload).
		WithName(*logger).
		WithSource(&src).
		WithTime(time.Now())

	failed := 0
	for _, tmpl := range templates {
		if !check(stdout, stderr, tmpl, &record, *quiet) {
			failed++
		}
	}
	if failed > 0 {
		return 1
	}
	return 0
}

// check compiles tmpl and, unless quiet, renders record through it. It
// returns false when the template does not compile or render.
func check(stdout, stderr io.Writer, tmpl string, r *recfmt.Record, quiet bool) bool {
	f, err := pattern.New(tmpl)
	if err != nil {
		var ce *pattern.CompileError
		if errors.As(err, &ce) {
			fmt.Fprintln(stderr, tmpl)
			fmt.Fprintf(stderr, "%s^\n", strings.Repeat(" ", caretColumn(tmpl, ce.Pos)))
			fmt.Fprintln(stderr, ce.Error())
		} else {
			fmt.Fprintf(stderr, "%s: %v\n", tmpl, err)
		}
		return false
	}
	if quiet {
		return true
	}
	buf := recfmt.NewBuffer()
	if _, err := f.Format(r, buf); err != nil {
		fmt.Fprintf(stderr, "%s: render: %v\n", tmpl, err)
		return false
	}
	fmt.Fprintf(stdout, "ok: %s\n  ", tmpl)
	line := buf.Bytes()
	stdout.Write(line)
	if len(line) == 0 || line[len(line)-1] != '\n' {
		fmt.Fprintln(stdout)
	}
	return true
}

// caretColumn converts the byte offset of a diagnostic into a rune column so
// the caret lines up under multibyte templates too.
func caretColumn(tmpl string, pos int) int {
	if pos > len(tmpl) {
		pos = len(tmpl)
	}
	if pos < 0 {
		pos = 0
	}
	return len([]rune(tmpl[:pos]))
}
