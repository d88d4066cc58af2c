package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/go-git/go-ctrie/internal/trace"
)

const (
	bin = "ctrie"

	// falseExitCode is returned when a contains or equal query answers no.
	falseExitCode = 1
	// errorExitCode is returned on any failure, including bad usage.
	errorExitCode = 2
)

// errFalse is returned by query commands whose answer is negative.
var errFalse = errors.New("false")

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

type command struct {
	name  string
	short string
	data  interface{}
}

// commands returns fresh instances, so every parse starts from zero values.
func commands() []command {
	return []command{
		{"add", "Add words to a trie.", &CmdAdd{}},
		{"remove", "Remove words from a trie.", &CmdRemove{}},
		{"contains", "Report whether a trie holds a word.", &CmdContains{}},
		{"list", "List the words of a trie.", &CmdList{}},
		{"dump", "Print the node layout of a trie.", &CmdDump{}},
		{"stats", "Print the size and height of a trie.", &CmdStats{}},
		{"union", "Add the words of a trie to another.", &CmdUnion{}},
		{"intersect", "Keep the words two tries share.", &CmdIntersect{}},
		{"difference", "Remove the words of a trie from another.", &CmdDifference{}},
		{"equal", "Report whether two tries hold the same words.", &CmdEqual{}},
		{"diff", "Print the layout differences of two tries.", &CmdDiff{}},
		{"import", "Store a trie read from a dict file.", &CmdImport{}},
		{"export", "Write a stored trie as a dict.", &CmdExport{}},
		{"names", "List the stored tries.", &CmdNames{}},
		{"drop", "Delete a stored trie.", &CmdDrop{}},
		{"version", "Show the version information.", &CmdVersion{}},
	}
}

func newParser() *flags.Parser {
	p := flags.NewNamedParser(bin, flags.HelpFlag|flags.PassDoubleDash)
	for _, c := range commands() {
		if _, err := p.AddCommand(c.name, c.short, "", c.data); err != nil {
			panic(err)
		}
	}

	return p
}

func main() {
	trace.ReadEnv()

	_, err := newParser().Parse()
	os.Exit(exitCode(err))
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}

	var ferr *flags.Error
	if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
		fmt.Fprintln(stdout, ferr.Message)
		return 0
	}

	if errors.Is(err, errFalse) {
		return falseExitCode
	}

	fmt.Fprintln(stderr, "ERR:", err)
	return errorExitCode
}
