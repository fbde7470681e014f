package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/darren11992/craftingInterpreters/internal/lexer"
	"github.com/darren11992/craftingInterpreters/internal/utils"
	"github.com/k0kubun/pp/v3"
)

const (
	exitOK      = 0
	exitUsage   = 64
	exitDataErr = 65
	exitIOErr   = 74
)

type options struct {
	dump    bool
	noColor bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(filepath.Base(os.Args[0]), flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.BoolVar(&opts.dump, "dump", false, "pretty-print the token list")
	fs.BoolVar(&opts.noColor, "no-color", false, "disable colored -dump output")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	switch fs.NArg() {
	case 0:
		return runPrompt(stdin, stdout, stderr, opts)
	case 1:
		return runFile(fs.Arg(0), stdout, stderr, opts)
	default:
		fmt.Fprintf(stderr, "Usage: %s [-dump] [script]\n", fs.Name())
		return exitUsage
	}
}

func runFile(path string, stdout, stderr io.Writer, opts options) int {
	src, err := os.ReadFile(path)
	if err != nil {
		utils.Error(fmt.Sprintf("reading script: %v", err))
		return exitIOErr
	}

	reporter := utils.NewReporter(stderr, path, string(src))
	tokens := lexer.Scan(string(src), reporter.Report)
	if err := printTokens(stdout, tokens, opts); err != nil {
		utils.Error(fmt.Sprintf("writing tokens: %v", err))
		return exitIOErr
	}

	if reporter.HadError() {
		return exitDataErr
	}
	return exitOK
}

func runPrompt(stdin io.Reader, stdout, stderr io.Writer, opts options) int {
	reporter := utils.NewReporter(stderr, "", "")
	in := bufio.NewScanner(stdin)

	for {
		fmt.Fprint(stdout, "> ")
		if !in.Scan() {
			break
		}
		line := in.Text()

		// Errors on one line must not affect the next.
		reporter.Reset(line)
		tokens := lexer.Scan(line, reporter.Report)
		if err := printTokens(stdout, tokens, opts); err != nil {
			utils.Error(fmt.Sprintf("writing tokens: %v", err))
			return exitIOErr
		}
	}
	fmt.Fprintln(stdout)

	if err := in.Err(); err != nil {
		utils.Error(fmt.Sprintf("reading input: %v", err))
		return exitIOErr
	}
	return exitOK
}

func printTokens(w io.Writer, tokens []lexer.Token, opts options) error {
	if opts.dump {
		printer := pp.New()
		printer.SetOutput(w)
		printer.SetColoringEnabled(!opts.noColor)
		_, err := printer.Println(tokens)
		return err
	}

	for _, tok := range tokens {
		if _, err := fmt.Fprintln(w, tok); err != nil {
			return err
		}
	}
	return nil
}
