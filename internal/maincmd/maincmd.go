// Package maincmd implements rill's command-line driver: reflection-based
// subcommand dispatch over mna/mainer for the two operations, run and
// alloc.
package maincmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/mna/mainer"
)

const binName = "rillc"

// defaultSourcePath is what the driver reads when no path is given on the
// command line. An explicit trailing path argument is accepted too, but is
// never required.
const defaultSourcePath = "example.txt"

var usage = fmt.Sprintf(`usage: %s <command> [path]

Ahead-of-time compiler and reference interpreter for the rill programming
language.

The <command> can be one of:
       run                       Compile [path], print its AST and IR, then
                                 interpret the program and print the
                                 formatted top-level result.
       alloc                     Compile [path], print its AST and IR, then
                                 run the register allocator and print each
                                 function's interference graph.

[path] defaults to %[2]q in the current directory when omitted. %[1]s
accepts no other flags and no environment variables.
`, binName, defaultSourcePath)

// Cmd is the driver's flag parser target. The driver accepts no flags and
// no environment variables, so this struct declares no `flag:` tags at all;
// BuildVersion/BuildDate are stamped at build time, not read from the
// command line.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	args  []string
	cmdFn func(context.Context, mainer.Stdio, []string) error
}

func (c *Cmd) SetArgs(args []string)          { c.args = args }
func (c *Cmd) SetFlags(flags map[string]bool) {}

func (c *Cmd) Validate() error {
	if len(c.args) == 0 {
		return errors.New("no command specified")
	}

	cmdName := c.args[0]
	commands := buildCmds(c)
	c.cmdFn = commands[cmdName]
	if c.cmdFn == nil {
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	if len(c.args[1:]) > 1 {
		return fmt.Errorf("%s: at most one source path is accepted", cmdName)
	}
	return nil
}

// Main parses args, validates them and dispatches to the selected
// subcommand.
func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{EnvVars: false}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, usage)
		return mainer.InvalidArgs
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	if err := c.cmdFn(ctx, stdio, c.args[1:]); err != nil {
		// each command takes care of printing its own errors
		return mainer.Failure
	}
	return mainer.Success
}

// sourcePath returns the path to compile: the single positional argument if
// one was given, otherwise defaultSourcePath.
func sourcePath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultSourcePath
}

// buildCmds reflects over v (a *Cmd) for methods shaped like a subcommand
// (context, Stdio, []string) -> error, keyed by lower-cased method name.
func buildCmds(v interface{}) map[string]func(context.Context, mainer.Stdio, []string) error {
	cmds := make(map[string]func(context.Context, mainer.Stdio, []string) error)

	vv := reflect.ValueOf(v)
	vt := vv.Type()
	for i := 0; i < vt.NumMethod(); i++ {
		m := vt.Method(i)
		mt := m.Type

		if mt.NumIn() != 4 || mt.NumOut() != 1 {
			continue
		}
		if rt := mt.Out(0); rt.Kind() != reflect.Interface || rt.Name() != "error" {
			continue
		}
		if p0 := mt.In(0); p0.Kind() != reflect.Ptr || p0.Elem().Name() != "Cmd" {
			continue
		}
		if p1 := mt.In(1); p1.Kind() != reflect.Interface || p1.Name() != "Context" {
			continue
		}
		if p2 := mt.In(2); p2.Kind() != reflect.Struct || p2.Name() != "Stdio" {
			continue
		}
		if p3 := mt.In(3); p3.Kind() != reflect.Slice || p3.Elem().Name() != "string" {
			continue
		}
		cmds[strings.ToLower(m.Name)] = vv.Method(i).Interface().(func(context.Context, mainer.Stdio, []string) error)
	}
	return cmds
}
