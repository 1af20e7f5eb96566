package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/google/shlex"
	"github.com/rs/zerolog/log"
)

var (
	// ErrExit is returned by a command to stop the read loop
	ErrExit = errors.New("exit requested")

	ErrUnknownCommand   = errors.New("unknown command")
	ErrInvalidArguments = errors.New("invalid arguments")
)

// HandlerFunc executes a command and returns the text to print
type HandlerFunc func(ctx context.Context, args []string) (string, error)

type Command struct {
	Name    string
	Aliases []string
	Usage   string
	Help    string
	Run     HandlerFunc
}

// Shell dispatches input lines to registered commands by name or alias
type Shell struct {
	prompt   string
	console  *Console
	commands []*Command
	index    map[string]*Command
}

func New(prompt string, console *Console) *Shell {
	s := &Shell{
		prompt:  prompt,
		console: console,
		index:   make(map[string]*Command),
	}
	s.Register(
		Command{
			Name:    "help",
			Aliases: []string{"h", "?"},
			Help:    "Show available commands",
			Run: func(context.Context, []string) (string, error) {
				return s.Help(), nil
			},
		},
		Command{
			Name:    "exit",
			Aliases: []string{"quit", "e"},
			Help:    "Exit the application",
			Run: func(context.Context, []string) (string, error) {
				return "", ErrExit
			},
		},
	)
	return s
}

// Register adds commands. A name or alias registered twice panics.
func (s *Shell) Register(cmds ...Command) {
	for i := range cmds {
		cmd := cmds[i]
		for _, name := range append([]string{cmd.Name}, cmd.Aliases...) {
			if _, exists := s.index[name]; exists {
				panic(fmt.Sprintf("shell: command %q already registered", name))
			}
			s.index[name] = &cmd
		}
		s.commands = append(s.commands, &cmd)
	}
}

// Execute tokenizes a line shell-style and runs the matching command.
// A blank line is a no-op.
func (s *Shell) Execute(ctx context.Context, line string) (string, error) {
	tokens, err := shlex.Split(line)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	if len(tokens) == 0 {
		return "", nil
	}

	cmd, ok := s.index[tokens[0]]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCommand, tokens[0])
	}
	return cmd.Run(ctx, tokens[1:])
}

// Run reads lines until exit, end of input or context cancellation
func (s *Shell) Run(ctx context.Context) error {
	out := s.console.Writer()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		_, _ = fmt.Fprint(out, s.prompt)
		line, ok := s.console.ReadLine()
		if !ok {
			_, _ = fmt.Fprintln(out)
			return nil
		}

		result, err := s.Execute(ctx, line)
		switch {
		case errors.Is(err, ErrExit):
			return nil
		case errors.Is(err, ErrUnknownCommand):
			_, _ = fmt.Fprintf(out, "%v. Type 'help' to list commands.\n", err)
		case err != nil:
			log.Debug().Err(err).Str("line", line).Msg("Command failed")
			_, _ = fmt.Fprintf(out, "Error: %v\n", err)
		case result != "":
			_, _ = fmt.Fprintln(out, result)
		}
	}
}

// Help lists commands alphabetically with their aliases and usage
func (s *Shell) Help() string {
	cmds := make([]*Command, len(s.commands))
	copy(cmds, s.commands)
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name < cmds[j].Name })

	var sb strings.Builder
	sb.WriteString("Available commands:\n")
	for _, cmd := range cmds {
		names := cmd.Name
		if len(cmd.Aliases) > 0 {
			names += ", " + strings.Join(cmd.Aliases, ", ")
		}
		fmt.Fprintf(&sb, "  %-32s %s\n", names, cmd.Help)
		if cmd.Usage != "" {
			fmt.Fprintf(&sb, "  %-32s usage: %s\n", "", cmd.Usage)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// Writer is where command output goes
func (s *Shell) Writer() io.Writer {
	return s.console.Writer()
}
