package selector

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arthur-debert/smartcd/pkg/errors"
	"github.com/arthur-debert/smartcd/pkg/style"
)

// MenuPicker prints a numbered list and reads the chosen number
type MenuPicker struct {
	in  io.Reader
	out io.Writer
}

// NewMenuPicker creates a menu reading from in and drawing on out
func NewMenuPicker(in io.Reader, out io.Writer) *MenuPicker {
	return &MenuPicker{in: in, out: out}
}

// Name implements Picker
func (m *MenuPicker) Name() string { return "menu" }

// Available implements Picker
func (m *MenuPicker) Available() bool { return m.in != nil && m.out != nil }

// Pick implements Picker. Empty, non-numeric and out-of-range answers cancel.
func (m *MenuPicker) Pick(ctx context.Context, items []string) (string, error) {
	width := len(strconv.Itoa(len(items)))
	for i, item := range items {
		index := fmt.Sprintf("%*d)", width, i+1)
		fmt.Fprintf(m.out, "%s %s\n", style.Render("MenuIndex", index), style.Render("MenuItem", item))
	}
	fmt.Fprint(m.out, style.Render("Prompt", fmt.Sprintf("Select directory [1-%d]: ", len(items))))

	answer, err := readLine(ctx, m.in)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCancelled, "selection cancelled")
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", errors.New(errors.ErrCancelled, "selection cancelled")
	}
	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(items) {
		return "", errors.Newf(errors.ErrCancelled, "invalid selection %q", answer)
	}
	return items[n-1], nil
}

// readLine reads one line from r. A final line without newline counts.
func readLine(ctx context.Context, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := bufio.NewReader(r).ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	return line, err
}
