// Command boa is the CLI and REPL front end for the Boa interpreter. It
// sits outside the evaluator core: its whole job is to produce source text
// and a base directory, then call into the core's Runtime.RunSource entry
// point. REPL plumbing (liner line editing, history file, continuation-mode
// buffering, signal handling) lives entirely in this file.
package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	boa "github.com/m4rcel-lol/Boa"
)

const (
	appName     = "boa"
	historyFile = ".boa_history"
	promptMain  = ">>> "
	promptCont  = "... "
)

var helpText = `Usage:
  boa                run the REPL
  boa <path>          run a script and exit
  boa --help, -h      show this help
  boa --version, -v   show the version

REPL commands:
  :help               show this help
  :quit, :exit         leave the REPL
  :run <path>          run a script in a fresh interpreter
  :load <path>         run a script in the current session
  :doc <symbol>        show "name : kind" for a bound name
`

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		runREPL()
		return
	}
	switch args[0] {
	case "--help", "-h":
		fmt.Print(helpText)
		os.Exit(0)
	case "--version", "-v":
		fmt.Printf("boa %s (built %s)\n", boa.Version, boa.BuildDate)
		os.Exit(0)
	default:
		runFile(args[0])
	}
}

func runFile(path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "RuntimeError: "+err.Error())
		os.Exit(1)
	}
	baseDir := filepath.Dir(path)
	if baseDir == "" {
		baseDir = "."
	}
	rt := boa.NewRuntime(baseDir, os.Stdout, os.Stdin)
	if _, err := rt.RunSource(string(src), path); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	os.Exit(0)
}

func runREPL() {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	historyPath := filepath.Join(homeDir(), historyFile)
	if f, err := os.Open(historyPath); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		<-sigc
		saveHistory(line, historyPath)
		os.Exit(0)
	}()

	cwd, _ := os.Getwd()
	rt := boa.NewRuntime(cwd, os.Stdout, os.Stdin)
	fmt.Printf("Boa %s (built %s) REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.\n", boa.Version, boa.BuildDate)

	for {
		src, ok := readStatement(line)
		if !ok {
			break
		}
		if src == "" {
			continue
		}
		line.AppendHistory(src)

		if handled := runREPLCommand(rt, line, src); handled {
			continue
		}

		result, err := rt.RunSource(src, "<repl>")
		if err != nil {
			fmt.Println(boa.ColorRed(boa.Snippet(err, src)))
			continue
		}
		if result.Kind != boa.KindNone {
			fmt.Println(boa.ColorizeValue(result))
		}
	}
	saveHistory(line, historyPath)
}

// readStatement reads one logical statement from the REPL, entering
// continuation mode (accumulating indented lines) when the first line ends
// in ':', until a blank line closes it.
func readStatement(line *liner.State) (string, bool) {
	first, err := line.Prompt(promptMain)
	if err != nil {
		return "", false
	}
	if !strings.HasSuffix(strings.TrimRight(first, " \t"), ":") {
		return first, true
	}

	var lines []string
	lines = append(lines, first)
	for {
		next, err := line.Prompt(promptCont)
		if err != nil || strings.TrimSpace(next) == "" {
			break
		}
		lines = append(lines, next)
	}
	return strings.Join(lines, "\n"), true
}

func runREPLCommand(rt *boa.Runtime, line *liner.State, src string) bool {
	fields := strings.Fields(src)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], ":") {
		return false
	}
	switch fields[0] {
	case ":help":
		fmt.Print(helpText)
	case ":quit", ":exit":
		os.Exit(0)
	case ":run":
		if len(fields) != 2 {
			fmt.Println("usage: :run <path>")
			return true
		}
		runScriptInFreshInterpreter(fields[1])
	case ":load":
		if len(fields) != 2 {
			fmt.Println("usage: :load <path>")
			return true
		}
		loadScriptIntoSession(rt, fields[1])
	case ":doc":
		if len(fields) != 2 {
			fmt.Println("usage: :doc <symbol>")
			return true
		}
		printDoc(rt, fields[1])
	default:
		fmt.Printf("unknown command: %s\n", fields[0])
	}
	return true
}

func runScriptInFreshInterpreter(path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Println("RuntimeError: " + err.Error())
		return
	}
	baseDir := filepath.Dir(path)
	fresh := boa.NewRuntime(baseDir, os.Stdout, os.Stdin)
	if _, err := fresh.RunSource(string(src), path); err != nil {
		fmt.Println(boa.Snippet(err, string(src)))
	}
}

func loadScriptIntoSession(rt *boa.Runtime, path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Println("RuntimeError: " + err.Error())
		return
	}
	rt.BaseDir = filepath.Dir(path)
	if _, err := rt.RunSource(string(src), path); err != nil {
		fmt.Println(boa.Snippet(err, string(src)))
	}
}

func printDoc(rt *boa.Runtime, symbol string) {
	v, ok := rt.Global.Get(symbol)
	if !ok {
		fmt.Printf("%s : undefined\n", symbol)
		return
	}
	fmt.Printf("%s : %s\n", symbol, boa.TypeName(v))
}

func homeDir() string {
	if h, err := os.UserHomeDir(); err == nil {
		return h
	}
	return "."
}

func saveHistory(line *liner.State, path string) {
	f, err := os.Create(path)
	if err != nil {
		return
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	line.WriteHistory(w)
	w.Flush()
}
