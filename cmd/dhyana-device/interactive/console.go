// Package interactive provides the interactive command-line console of
// dhyana-device.
package interactive

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/chzyer/readline"

	"github.com/dhyana-lima/dhyana-go/pkg/device"
	"github.com/dhyana-lima/dhyana-go/pkg/model"
)

// Acquisition controls the simulated frame acquisition.
type Acquisition interface {
	Start() error
	Stop()
	Running() bool
}

// Console handles interactive mode for dhyana-device.
type Console struct {
	rl *readline.Instance

	dev *device.Device
	acq Acquisition
}

// New creates a console. Log output should go to Stdout so it does not
// interfere with the prompt.
func New() (*Console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "dhyana> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &Console{rl: rl}, nil
}

// Stdout returns a writer that coordinates with the readline input.
func (c *Console) Stdout() io.Writer {
	return c.rl.Stdout()
}

// Run starts the command loop for dev. cancel is called when the user
// quits.
func (c *Console) Run(ctx context.Context, cancel context.CancelFunc, dev *device.Device, acq Acquisition) {
	defer c.rl.Close()

	c.dev = dev
	c.acq = acq
	c.printHelp(c.rl.Stdout())

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := c.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			cancel()
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		if quit := c.Exec(ctx, c.rl.Stdout(), strings.ToLower(parts[0]), parts[1:]); quit {
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			cancel()
			return
		}
	}
}

// Exec runs one console command and reports whether the user asked to quit.
func (c *Console) Exec(ctx context.Context, w io.Writer, cmd string, args []string) bool {
	switch cmd {
	case "help", "?":
		c.printHelp(w)
	case "attrs", "a":
		c.cmdAttrs(w)
	case "props", "p":
		c.cmdProps(w)
	case "read", "r":
		c.cmdRead(ctx, w, args)
	case "write", "w":
		c.cmdWrite(ctx, w, args)
	case "values", "v":
		c.cmdValues(w, args)
	case "state":
		fmt.Fprintln(w, c.dev.State())
	case "status":
		fmt.Fprintln(w, c.dev.Status())
	case "start":
		c.cmdStart(w)
	case "stop":
		c.acq.Stop()
	case "quit", "exit", "q":
		return true
	default:
		fmt.Fprintf(w, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return false
}

func (c *Console) printHelp(w io.Writer) {
	fmt.Fprintln(w, `
Dhyana Device Commands:
  Attributes:
    attrs              - List attributes with their current values
    read <attr>        - Read an attribute
    write <attr> <val> - Write an attribute
    values <attr>      - List permitted values of an enumerated attribute

  Device:
    props              - Show the loaded device properties
    state              - Show the device state
    status             - Show the device status

  Acquisition:
    start              - Start simulated acquisition
    stop               - Stop simulated acquisition

  General:
    help               - Show this help
    quit               - Exit device`)
}

func (c *Console) cmdAttrs(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTYPE\tACCESS\tVALUE")
	for _, meta := range c.dev.Class().Attributes() {
		value := "-"
		if meta.Access.CanRead() {
			v, err := c.dev.ReadAttribute(context.Background(), meta.Name)
			if err != nil {
				value = "error: " + err.Error()
			} else {
				value = formatValue(v, meta)
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", meta.Name, meta.Type, meta.Access, value)
	}
	tw.Flush()
}

func (c *Console) cmdProps(w io.Writer) {
	props := c.dev.Properties()
	if props == nil {
		fmt.Fprintln(w, "Properties not loaded")
		return
	}
	names := props.Names()
	sort.Strings(names)
	for _, name := range names {
		v, _ := props.Get(name)
		marker := ""
		if !props.IsSet(name) {
			marker = " (default)"
		}
		fmt.Fprintf(w, "%s = %v%s\n", name, v, marker)
	}
}

func (c *Console) cmdRead(ctx context.Context, w io.Writer, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(w, "Usage: read <attr>")
		return
	}
	meta, err := c.dev.Class().Attribute(args[0])
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	v, err := c.dev.ReadAttribute(ctx, meta.Name)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(w, "%s = %s\n", meta.Name, formatValue(v, meta))
}

func (c *Console) cmdWrite(ctx context.Context, w io.Writer, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(w, "Usage: write <attr> <value>")
		return
	}
	meta, err := c.dev.Class().Attribute(args[0])
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	v, err := model.ParseValue(meta.Type, args[1])
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	if err := c.dev.WriteAttribute(ctx, meta.Name, v); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(w, "%s <- %s\n", meta.Name, formatValue(v, meta))
}

func (c *Console) cmdValues(w io.Writer, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(w, "Usage: values <attr>")
		return
	}
	values, err := c.dev.GetAttrStringValueList(args[0])
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	if len(values) == 0 {
		fmt.Fprintln(w, "(not an enumerated attribute)")
		return
	}
	fmt.Fprintln(w, strings.Join(values, ", "))
}

func (c *Console) cmdStart(w io.Writer) {
	if c.acq.Running() {
		fmt.Fprintln(w, "Acquisition already running")
		return
	}
	if err := c.acq.Start(); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
	}
}

func formatValue(v any, meta *model.AttributeMetadata) string {
	var s string
	switch {
	case meta.DisplayFormat != "":
		s = fmt.Sprintf(meta.DisplayFormat, v)
	default:
		s = fmt.Sprint(v)
	}
	if meta.Unit != "" {
		s += " " + meta.Unit
	}
	return s
}
