package main

import (
	"bufio"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"lux/internal"

	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"
)

// Exit codes follow sysexits.h
const (
	exitUsage   = 64
	exitDataErr = 65
	exitSoftErr = 70
	exitIOErr   = 74
)

type stdPrinter struct {
	color bool
}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

func (s stdPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return fmt.Fprint(w, s.paint(w, fmt.Sprintf(format, a...)))
}

func (s stdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(w, s.paint(w, strings.TrimSuffix(fmt.Sprintln(a...), "\n")))
}

// paint colors diagnostics. Anything not headed for stderr is left alone.
func (s stdPrinter) paint(w io.Writer, msg string) string {
	if !s.color || w != os.Stderr {
		return msg
	}
	return color.Red(msg)
}

func main() {
	argsWithoutProg := os.Args[1:]

	if len(argsWithoutProg) > 1 {
		fmt.Fprintln(os.Stderr, "Usage: lux [path/to/script.lux]")
		os.Exit(exitUsage)
	}

	cfg, err := internal.LoadConfig(internal.FindConfig())
	if err != nil {
		logrus.Fatal(err)
	}

	logger, err := internal.NewLogger(cfg.Log, os.Stderr)
	if err != nil {
		logrus.Fatal(err)
	}

	if !cfg.Output.Color {
		color.Disable()
	}

	vm := internal.NewVM(
		internal.WithPrinter(stdPrinter{color: cfg.Output.Color}),
		internal.WithLogger(logger),
		internal.WithDebug(cfg.Debug),
	)

	if len(argsWithoutProg) == 0 {
		repl(vm)
		return
	}

	os.Exit(runFile(vm, logger, argsWithoutProg[0]))
}

func repl(vm *internal.VM) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		vm.Interpret(scanner.Text())
	}
}

func runFile(vm *internal.VM, logger *logrus.Logger, path string) int {
	absPath, err := filepath.Abs(path)
	if err != nil {
		logger.WithError(err).Error("resolving script path")
		return exitIOErr
	}

	file, err := os.Open(absPath)
	if err != nil {
		logger.WithError(err).Error("opening script")
		return exitIOErr
	}
	defer file.Close()

	b, err := ioutil.ReadAll(file)
	if err != nil {
		logger.WithError(err).Error("reading script")
		return exitIOErr
	}

	switch vm.Interpret(string(b)) {
	case internal.InterpretCompileError:
		return exitDataErr
	case internal.InterpretRuntimeError:
		return exitSoftErr
	}
	return 0
}
