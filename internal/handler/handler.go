package handler

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"go.uber.org/zap"
)

// console is the line-based terminal both handlers talk through
type console struct {
	in     *bufio.Reader
	out    io.Writer
	logger *zap.Logger
}

func newConsole(in io.Reader, out io.Writer, logger *zap.Logger) *console {
	return &console{in: bufio.NewReader(in), out: out, logger: logger}
}

// prompt writes text and reads one cleaned line of any length.
// ok is false once input is closed or unreadable.
func (c *console) prompt(text string) (line string, ok bool) {
	fmt.Fprint(c.out, text)

	raw, err := c.in.ReadString('\n')
	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		if raw == "" {
			fmt.Fprintln(c.out)
			return "", false
		}
	default:
		c.logger.Error("Failed to read input", zap.Error(err))
		fmt.Fprintln(c.out)
		return "", false
	}
	return cleanInput(raw), true
}

func (c *console) println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *console) printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// cleanInput removes all non-printable characters and surrounding whitespace
func cleanInput(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}
