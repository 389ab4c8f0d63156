// Dupgroups prints the line indices of duplicate hashes in a hash list.
//
// Usage:
//
//	dupgroups [-stats] [path]
//
// The list is read from path, or from a file named "hashes" in the working
// directory when path is omitted, or from standard input when path is "-".
// Each output line is one group of duplicate lines, e.g. "[0, 2]", in
// ascending hash order. Lines whose hash is unique produce no output.
//
// Flags:
//
//	-stats   Write a run summary to standard error
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/tamirms/hashdups"
)

var errUsage = errors.New("usage")

func main() {
	log.SetFlags(0)
	log.SetPrefix("dupgroups: ")

	err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
	case errors.Is(err, errUsage):
		os.Exit(2)
	default:
		log.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("dupgroups", flag.ContinueOnError)
	fs.SetOutput(stderr)
	statsFlag := fs.Bool("stats", false, "write a run summary to standard error")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: dupgroups [-stats] [path]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() > 1 {
		fmt.Fprintln(stderr, "dupgroups: at most one path argument")
		fs.Usage()
		return errUsage
	}

	path := hashdups.DefaultInputName
	if fs.NArg() == 1 {
		path = fs.Arg(0)
	}

	var (
		in  *hashdups.Input
		err error
	)
	if path == "-" {
		in, err = hashdups.LoadReader(stdin)
	} else {
		in, err = hashdups.Load(path)
	}
	if err != nil {
		return err
	}

	stats, err := hashdups.Report(stdout, in)
	if err != nil {
		return err
	}
	if *statsFlag {
		if _, err := stats.WriteTo(stderr); err != nil {
			return fmt.Errorf("write stats: %w", err)
		}
	}
	return nil
}
