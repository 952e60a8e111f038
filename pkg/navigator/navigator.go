package navigator

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/smartcd/pkg/errors"
	"github.com/arthur-debert/smartcd/pkg/logging"
	"mvdan.cc/sh/v3/syntax"
)

// Emit formats understood by EmitNavigator
const (
	FormatPath = "path"
	FormatCd   = "cd"
)

// Navigator makes dest the working directory
type Navigator interface {
	Navigate(dest string) error
}

// ProcessNavigator changes the working directory of the current process
type ProcessNavigator struct{}

// Navigate implements Navigator
func (ProcessNavigator) Navigate(dest string) error {
	if dest == "" {
		return errors.New(errors.ErrInvalidDestination, "empty destination")
	}
	if err := os.Chdir(dest); err != nil {
		return errors.Wrapf(err, errors.ErrChangeDirFailed, "cannot change directory to %s", dest).
			WithDetail("path", dest)
	}
	logger := logging.GetLogger("navigator")
	logger.Debug().Str("dest", dest).Msg("Changed directory")
	return nil
}

// EmitNavigator writes the destination for a shell to apply
type EmitNavigator struct {
	w      io.Writer
	format string
}

// NewEmitNavigator creates an EmitNavigator. Unknown formats are rejected.
func NewEmitNavigator(w io.Writer, format string) (*EmitNavigator, error) {
	switch format {
	case "":
		format = FormatPath
	case FormatPath, FormatCd:
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown emit format %q (want %s or %s)", format, FormatPath, FormatCd)
	}
	return &EmitNavigator{w: w, format: format}, nil
}

// Navigate implements Navigator
func (e *EmitNavigator) Navigate(dest string) error {
	if dest == "" {
		return errors.New(errors.ErrInvalidDestination, "empty destination")
	}

	line := dest
	if e.format == FormatCd {
		cmd, err := CdCommand(dest)
		if err != nil {
			return err
		}
		line = cmd
	}

	if _, err := fmt.Fprintln(e.w, line); err != nil {
		return errors.Wrap(err, errors.ErrChangeDirFailed, "cannot write destination")
	}
	return nil
}

// CdCommand returns a shell command that changes to dest, safe to eval
func CdCommand(dest string) (string, error) {
	quoted, err := syntax.Quote(dest, syntax.LangBash)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidDestination, "cannot quote %q", dest)
	}
	return "builtin cd -- " + quoted, nil
}
