package shell

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// NewFlagSet returns a silent flag set that reports errors instead of exiting
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// Parse parses args and rejects leftover positional arguments
func Parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidArguments, fs.Name(), err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: %s: unexpected arguments %s", ErrInvalidArguments, fs.Name(), strings.Join(fs.Args(), " "))
	}
	return nil
}

// Require fails when any named flag was left empty
func Require(fs *flag.FlagSet, names ...string) error {
	var missing []string
	for _, name := range names {
		f := fs.Lookup(name)
		if f == nil || strings.TrimSpace(f.Value.String()) == "" {
			missing = append(missing, "--"+name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s: missing %s", ErrInvalidArguments, fs.Name(), strings.Join(missing, ", "))
	}
	return nil
}

// OptionalInt is a flag.Value that remembers whether it was set
type OptionalInt struct {
	Value *int
}

func (o *OptionalInt) String() string {
	if o == nil || o.Value == nil {
		return ""
	}
	return strconv.Itoa(*o.Value)
}

func (o *OptionalInt) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	o.Value = &n
	return nil
}
