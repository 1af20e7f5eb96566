package shell

import (
	"bufio"
	"io"
)

const maxLineSize = 1024 * 1024

// Console is the single line reader shared by the shell and anything it
// hands input to, so buffered input is never lost between them.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Console{scanner: sc, out: out}
}

func (c *Console) ReadLine() (string, bool) {
	if !c.scanner.Scan() {
		return "", false
	}
	return c.scanner.Text(), true
}

func (c *Console) Writer() io.Writer {
	return c.out
}
