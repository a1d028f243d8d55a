package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/jrsteele09/greenos-console/internal/app"
	"golang.org/x/term"
)

// console is what every command gets: the wired app and the terminal.
type console struct {
	app *app.App
	out io.Writer
	in  io.Reader

	reader *bufio.Reader
}

func (c *console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// table writes tab-separated rows aligned into columns.
func (c *console) table(header string, rows [][]string) {
	tw := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, header)
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	_ = tw.Flush()
}

func (c *console) prompt(label string) (string, error) {
	line, err := c.readLine(label)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readLine returns the next input line without its terminator.
func (c *console) readLine(label string) (string, error) {
	if c.reader == nil {
		c.reader = bufio.NewReader(c.in)
	}
	c.printf("%s: ", label)
	line, err := c.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("read %s: %w", strings.ToLower(label), err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptSecret reads without echo when stdin is a terminal. Surrounding
// spaces are part of the secret.
func (c *console) promptSecret(label string) (string, error) {
	f, ok := c.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return c.readLine(label)
	}
	c.printf("%s: ", label)
	secret, err := term.ReadPassword(int(f.Fd()))
	c.printf("\n")
	if err != nil {
		return "", fmt.Errorf("read %s: %w", strings.ToLower(label), err)
	}
	return string(secret), nil
}
