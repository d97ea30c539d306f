// Package script parses and executes line-oriented list operation scripts.
//
//	# comments and blank lines are skipped
//	insert 10 20 30
//	get 1
//	set 0 "spaced value"
//	delete 1
//	fastdelete 0
//	contains 30
//	len
//	cap
//	dump
//	reset
package script

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/nerdlist/nerdlist/util"
	"github.com/samber/lo"
)

// Op is a script operation.
type Op string

const (
	OpInsert     Op = "insert"
	OpGet        Op = "get"
	OpSet        Op = "set"
	OpDelete     Op = "delete"
	OpFastDelete Op = "fastdelete"
	OpContains   Op = "contains"
	OpLen        Op = "len"
	OpCap        Op = "cap"
	OpDump       Op = "dump"
	OpReset      Op = "reset"
)

var ops = []Op{OpInsert, OpGet, OpSet, OpDelete, OpFastDelete, OpContains, OpLen, OpCap, OpDump, OpReset}

var aliases = map[string]Op{
	"fdel":   OpFastDelete,
	"append": OpInsert,
	"push":   OpInsert,
	"rm":     OpDelete,
	"has":    OpContains,
}

type arity struct {
	min, max int
}

const variadic = -1

var signatures = map[Op]arity{
	OpInsert:     {1, variadic},
	OpGet:        {1, 1},
	OpSet:        {2, 2},
	OpDelete:     {1, 1},
	OpFastDelete: {1, 1},
	OpContains:   {1, 1},
	OpLen:        {0, 0},
	OpCap:        {0, 0},
	OpDump:       {0, 0},
	OpReset:      {0, 0},
}

// Ops returns every operation name in declaration order, aliases excluded.
func Ops() []string {
	return lo.Map(ops, func(op Op, _ int) string { return string(op) })
}

// Mutates reports whether the operation can change the list contents.
func (o Op) Mutates() bool {
	return lo.Contains([]Op{OpInsert, OpSet, OpDelete, OpFastDelete, OpReset}, o)
}

// Command is one parsed script line.
type Command struct {
	Line int
	Op   Op
	Args []string
}

func (c Command) String() string {
	if len(c.Args) == 0 {
		return string(c.Op)
	}
	return string(c.Op) + " " + shellquote.Join(c.Args...)
}

// Index returns the first argument as an index for get, set, delete and fastdelete.
func (c Command) Index() (int, error) {
	index, err := strconv.Atoi(c.Args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid index %q", c.Args[0])
	}
	return index, nil
}

// ParseLine parses a single line. Blank and comment lines yield ok == false.
func ParseLine(number int, line string) (cmd Command, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Command{}, false, nil
	}

	words, err := shellquote.Split(line)
	if err != nil {
		return Command{}, false, fmt.Errorf("line %d: %w", number, err)
	}

	name := strings.ToLower(words[0])
	op := Op(name)
	if alias, isAlias := aliases[name]; isAlias {
		op = alias
	}
	if _, known := signatures[op]; !known {
		if suggestion, found := util.Suggest(name, Ops()).Get(); found {
			return Command{}, false, fmt.Errorf("line %d: unknown operation %q, did you mean %q?", number, name, suggestion)
		}
		return Command{}, false, fmt.Errorf("line %d: unknown operation %q", number, name)
	}

	args := words[1:]
	sig := signatures[op]
	if len(args) < sig.min || (sig.max != variadic && len(args) > sig.max) {
		return Command{}, false, fmt.Errorf("line %d: %s expects %s, got %d", number, op, sig, len(args))
	}

	cmd = Command{Line: number, Op: op, Args: args}
	if sig.min > 0 && op != OpInsert && op != OpContains {
		if _, err := cmd.Index(); err != nil {
			return Command{}, false, fmt.Errorf("line %d: %w", number, err)
		}
	}

	return cmd, true, nil
}

func (a arity) String() string {
	switch {
	case a.max == variadic:
		return util.Quantify(a.min, "argument", "arguments") + " or more"
	case a.min == a.max:
		return util.Quantify(a.min, "argument", "arguments")
	default:
		return fmt.Sprintf("%d to %d arguments", a.min, a.max)
	}
}

// Parse parses a whole script. Every malformed line is reported, not only the first.
func Parse(text string) ([]Command, error) {
	var (
		commands []Command
		errs     []error
	)

	for i, line := range strings.Split(text, "\n") {
		cmd, ok, err := ParseLine(i+1, line)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if ok {
			commands = append(commands, cmd)
		}
	}

	return commands, errors.Join(errs...)
}

// ParseArgs parses operations given as separate command-line arguments, one operation per argument.
func ParseArgs(args []string) ([]Command, error) {
	return Parse(strings.Join(args, "\n"))
}
