// Package calc wires the calculator command: configuration, the terminal
// REPL, and the MCP tool transport.
package calc

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/govalues/calc"
	"github.com/govalues/calc/internal/config"
	"github.com/govalues/calc/internal/keypad"
	"github.com/govalues/calc/internal/mcptool"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	transportREPL = "repl"
	transportMCP  = "mcp"
)

// Config holds calc command configuration.
type Config struct {
	Transport string `env:"CALC_TRANSPORT" envDefault:"repl"`
	Trace     bool   `env:"CALC_TRACE"`
	Prompt    string `env:"CALC_PROMPT"    envDefault:"> "`
}

// ParseConfig parses environment variables and then flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "transport: repl or mcp")
	fs.BoolVar(&cfg.Trace, "trace", cfg.Trace, "log every key and the resulting display")
	fs.StringVar(&cfg.Prompt, "prompt", cfg.Prompt, "REPL prompt")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run executes the calc command. The REPL reads key lines from in and
// writes the formula and display to out; trace and key errors go to errOut.
// The mcp transport serves the calculator tool over stdio instead.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	switch cfg.Transport {
	case transportREPL:
		return repl(ctx, cfg, in, out, log.New(errOut, log.Prefix(), 0))
	case transportMCP:
		return mcptool.NewServer().Run(ctx, &mcp.StdioTransport{})
	default:
		return fmt.Errorf("unknown transport %q", cfg.Transport)
	}
}

func repl(ctx context.Context, cfg Config, in io.Reader, out io.Writer, logger *log.Logger) error {
	if in == nil {
		return errors.New("input is required")
	}
	s := calc.NewSession()
	lines, scanErr := scan(ctx, in)
	for {
		fmt.Fprint(out, cfg.Prompt)
		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return nil
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				return <-scanErr
			}
			line = strings.TrimSpace(l)
		}
		if line == "quit" || line == "exit" {
			return nil
		}
		for _, key := range keypad.Split(line) {
			if err := keypad.Press(s, key); err != nil {
				logger.Printf("press %q: %v", key, err)
				break
			}
			if cfg.Trace {
				logger.Printf("key %-4s state %-9v display %s", key, s.State(), s.Display())
			}
		}
		printState(out, s)
	}
}

// scan reads lines from r until EOF or cancellation. The error channel
// receives the scanner error after the line channel is closed.
func scan(ctx context.Context, r io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errc <- nil
				return
			}
		}
		errc <- scanner.Err()
	}()
	return lines, errc
}

// printState writes the formula, if any, and the display.
// An "M" marks a non-empty memory cell.
func printState(w io.Writer, s *calc.Session) {
	if f := s.Formula(); f != "" {
		fmt.Fprintf(w, "  %s\n", f)
	}
	mark := " "
	if !s.MemoryEmpty() {
		mark = "M"
	}
	fmt.Fprintf(w, "%s %s\n", mark, s.Display())
}
