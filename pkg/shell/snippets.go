package shell

import (
	"bytes"
	"embed"
	"regexp"
	"sort"
	"text/template"

	"github.com/arthur-debert/smartcd/pkg/errors"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// DefaultCommand is the function name installed by default
const DefaultCommand = "cd"

// DefaultBinary is the executable the snippets call
const DefaultBinary = "smartcd"

var templateFiles = map[string]string{
	"bash": "templates/bash.sh.tmpl",
	"zsh":  "templates/zsh.sh.tmpl",
	"fish": "templates/fish.fish.tmpl",
}

var validName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// Options configures Snippet
type Options struct {
	// Cmd is the name of the generated function. Defaults to "cd".
	Cmd string
	// Bin is the smartcd executable. Defaults to "smartcd".
	Bin string
}

// Shells returns the supported shell names, sorted
func Shells() []string {
	out := make([]string, 0, len(templateFiles))
	for name := range templateFiles {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Snippet returns the integration code for shell
func Snippet(shell string, opts Options) (string, error) {
	file, ok := templateFiles[shell]
	if !ok {
		return "", errors.Newf(errors.ErrInvalidInput, "unsupported shell %q (supported: %v)", shell, Shells())
	}

	if opts.Cmd == "" {
		opts.Cmd = DefaultCommand
	}
	if opts.Bin == "" {
		opts.Bin = DefaultBinary
	}
	if !validName.MatchString(opts.Cmd) {
		return "", errors.Newf(errors.ErrInvalidInput, "invalid function name %q", opts.Cmd)
	}
	if !validName.MatchString(opts.Bin) {
		return "", errors.Newf(errors.ErrInvalidInput, "invalid executable name %q", opts.Bin)
	}

	tmpl, err := template.ParseFS(templatesFS, file)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInternal, "cannot parse %s template", shell)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, opts); err != nil {
		return "", errors.Wrapf(err, errors.ErrInternal, "cannot render %s snippet", shell)
	}
	return buf.String(), nil
}
