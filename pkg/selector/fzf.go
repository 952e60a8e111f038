package selector

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/arthur-debert/smartcd/pkg/errors"
	"github.com/arthur-debert/smartcd/pkg/logging"
	"github.com/rs/zerolog"
	"mvdan.cc/sh/v3/shell"
)

// PickerRunner runs the picker with items on stdin and returns its stdout
type PickerRunner func(ctx context.Context, name string, args []string, stdin io.Reader) ([]byte, error)

// ExecPickerRunner runs the picker as a subprocess. Its UI goes to stderr
// and the controlling terminal.
func ExecPickerRunner(ctx context.Context, name string, args []string, stdin io.Reader) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout bytes.Buffer
	cmd.Stdin = stdin
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	return stdout.Bytes(), err
}

// FzfPicker delegates selection to a line-oriented fuzzy finder such as fzf
type FzfPicker struct {
	command string
	binary  string
	args    []string
	run     PickerRunner
	logger  zerolog.Logger
}

// NewFzfPicker locates command on PATH and parses options as shell words
func NewFzfPicker(command, options string) (*FzfPicker, error) {
	args, err := ParseOptions(options)
	if err != nil {
		return nil, err
	}
	p := &FzfPicker{
		command: command,
		args:    args,
		run:     ExecPickerRunner,
		logger:  logging.GetLogger("selector.fzf"),
	}
	if path, err := exec.LookPath(command); err == nil {
		p.binary = path
	}
	return p, nil
}

// NewFzfPickerWith creates a picker with an explicit binary and runner
func NewFzfPickerWith(binary string, args []string, run PickerRunner) *FzfPicker {
	return &FzfPicker{
		command: binary,
		binary:  binary,
		args:    args,
		run:     run,
		logger:  logging.GetLogger("selector.fzf"),
	}
}

// ParseOptions splits a picker option string the way a POSIX shell would
func ParseOptions(options string) ([]string, error) {
	if strings.TrimSpace(options) == "" {
		return nil, nil
	}
	args, err := shell.Fields(options, func(string) string { return "" })
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "cannot parse picker options %q", options)
	}
	return args, nil
}

// Name implements Picker
func (f *FzfPicker) Name() string { return f.command }

// Available implements Picker
func (f *FzfPicker) Available() bool { return f.binary != "" }

// Args returns the arguments the picker is started with
func (f *FzfPicker) Args() []string { return f.args }

// Pick implements Picker. A non-zero exit or empty output means the user
// cancelled.
func (f *FzfPicker) Pick(ctx context.Context, items []string) (string, error) {
	logging.LogCommand(f.logger, f.binary, f.args)

	input := strings.NewReader(strings.Join(items, "\n") + "\n")
	out, err := f.run(ctx, f.binary, f.args, input)
	if err != nil {
		f.logger.Debug().Err(err).Msg("Picker exited with error")
		return "", errors.Wrap(err, errors.ErrCancelled, "selection cancelled")
	}

	choice := strings.TrimRight(string(out), "\r\n")
	if i := strings.IndexByte(choice, '\n'); i >= 0 {
		choice = choice[:i]
	}
	if strings.TrimSpace(choice) == "" {
		return "", errors.New(errors.ErrCancelled, "selection cancelled")
	}
	return choice, nil
}
