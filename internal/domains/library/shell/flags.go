package shell

import (
	"flag"
	"fmt"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/shared/shell"
)

func parseFlags(fs *flag.FlagSet, args []string, required ...string) error {
	if err := shell.Parse(fs, args); err != nil {
		return err
	}
	return shell.Require(fs, required...)
}

// positive rejects ids that cannot exist
func positive(name string, v int64) error {
	if v <= 0 {
		return fmt.Errorf("%w: --%s must be a positive number", shell.ErrInvalidArguments, name)
	}
	return nil
}
