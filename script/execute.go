package script

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nerdlist/nerdlist/session"
)

// Step records the outcome of one executed operation.
type Step struct {
	Line  int      `json:"line" yaml:"line" jsonschema:"description=Script line the operation came from"`
	Op    string   `json:"op" yaml:"op"`
	Args  []string `json:"args,omitempty" yaml:"args,omitempty"`
	OK    bool     `json:"ok" yaml:"ok"`
	Value string   `json:"value,omitempty" yaml:"value,omitempty" jsonschema:"description=Result of get/contains/len/cap/dump"`
	Error string   `json:"error,omitempty" yaml:"error,omitempty"`
	Len   int      `json:"len" yaml:"len" jsonschema:"description=Length after the operation"`
	Cap   int      `json:"cap" yaml:"cap" jsonschema:"description=Capacity after the operation"`
	Grew  bool     `json:"grew,omitempty" yaml:"grew,omitempty" jsonschema:"description=The operation doubled the capacity"`
}

// Report is the result of executing a script against a session.
type Report struct {
	Kind            string   `json:"kind" yaml:"kind"`
	InitialCapacity int      `json:"initial_capacity" yaml:"initial_capacity"`
	Steps           []Step   `json:"steps" yaml:"steps"`
	Final           []string `json:"final" yaml:"final"`
	Len             int      `json:"len" yaml:"len"`
	Cap             int      `json:"cap" yaml:"cap"`
	Failures        int      `json:"failures" yaml:"failures"`
	Stopped         bool     `json:"stopped,omitempty" yaml:"stopped,omitempty" jsonschema:"description=Execution halted at the first failure"`
}

// Options controls execution.
type Options struct {
	StopOnError bool
}

// StepError is returned by Execute when StopOnError halts a script.
type StepError struct {
	Step Step
}

func (e *StepError) Error() string {
	return fmt.Sprintf("line %d: %s failed: %s", e.Step.Line, e.Step.Op, e.Step.Error)
}

// Execute runs commands against s. Failed operations are recorded in the report and execution
// continues unless options.StopOnError is set, in which case a *StepError is returned with the
// partial report.
func Execute(s session.Session, commands []Command, options Options) (*Report, error) {
	report := &Report{
		Kind:            string(s.Kind()),
		InitialCapacity: s.Cap(),
	}

	finish := func() *Report {
		report.Final = s.Values()
		report.Len = s.Len()
		report.Cap = s.Cap()
		return report
	}

	for _, cmd := range commands {
		for _, step := range Apply(s, cmd) {
			report.Steps = append(report.Steps, step)
			if step.OK {
				continue
			}

			report.Failures++
			if options.StopOnError {
				report.Stopped = true
				return finish(), &StepError{Step: step}
			}
		}
	}

	return finish(), nil
}

// Apply executes a single command. Insert yields one step per value, every other operation one step.
func Apply(s session.Session, cmd Command) []Step {
	if cmd.Op == OpInsert {
		steps := make([]Step, 0, len(cmd.Args))
		for _, raw := range cmd.Args {
			before := s.Cap()
			step := record(s, cmd, []string{raw}, "", s.Insert(raw))
			step.Grew = step.OK && s.Cap() > before
			steps = append(steps, step)
		}
		return steps
	}

	value, err := run(s, cmd)
	return []Step{record(s, cmd, cmd.Args, value, err)}
}

func run(s session.Session, cmd Command) (string, error) {
	switch cmd.Op {
	case OpLen:
		return strconv.Itoa(s.Len()), nil
	case OpCap:
		return strconv.Itoa(s.Cap()), nil
	case OpDump:
		return "[" + strings.Join(s.Values(), ", ") + "]", nil
	case OpReset:
		return "", s.Reset()
	case OpContains:
		found, err := s.Contains(cmd.Args[0])
		return strconv.FormatBool(found), err
	}

	index, err := cmd.Index()
	if err != nil {
		return "", err
	}

	switch cmd.Op {
	case OpGet:
		return s.At(index)
	case OpSet:
		return "", s.Set(index, cmd.Args[1])
	case OpDelete:
		return "", s.Delete(index)
	case OpFastDelete:
		return "", s.FastDelete(index)
	default:
		return "", fmt.Errorf("unsupported operation %q", cmd.Op)
	}
}

func record(s session.Session, cmd Command, args []string, value string, err error) Step {
	step := Step{
		Line:  cmd.Line,
		Op:    string(cmd.Op),
		Args:  args,
		OK:    err == nil,
		Value: value,
		Len:   s.Len(),
		Cap:   s.Cap(),
	}
	if err != nil {
		step.Error = err.Error()
	}
	return step
}
