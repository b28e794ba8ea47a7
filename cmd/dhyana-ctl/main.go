// Command dhyana-ctl is a one-shot remote client for Dhyana device servers.
//
// Usage:
//
//	dhyana-ctl [flags] <command> [args]
//
// Flags:
//
//	-addr string      Device server address (default "localhost:9100")
//	-device string    Locate the server advertising this device name via mDNS
//	-timeout duration Request timeout (default 5s)
//
// Commands:
//
//	read <attr>            Read an attribute
//	write <attr> <value>   Write an attribute
//	values <attr>          List permitted values of an enumerated attribute
//	invoke <cmd> [arg]     Invoke a command
//	state                  Show the device state
//	status                 Show the device status
//	ping [count]           Measure round trips
//	discover               List device servers on the local network
//
// Examples:
//
//	# Read the sensor temperature
//	dhyana-ctl read temperature
//
//	# Switch to external trigger on the falling edge
//	dhyana-ctl write trigger_mode GLOBAL
//	dhyana-ctl write trigger_edge FALLING
//
//	# Talk to a device found by name
//	dhyana-ctl -device lima/dhyana/1 status
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dhyana-lima/dhyana-go/pkg/device"
	"github.com/dhyana-lima/dhyana-go/pkg/discovery"
	"github.com/dhyana-lima/dhyana-go/pkg/model"
	"github.com/dhyana-lima/dhyana-go/pkg/transport"
	"github.com/dhyana-lima/dhyana-go/pkg/version"
)

const usage = `dhyana-ctl - Dhyana Device Client

Usage:
  dhyana-ctl [flags] <command> [args]

Commands:
  read <attr>            Read an attribute
  write <attr> <value>   Write an attribute
  values <attr>          List permitted values of an enumerated attribute
  invoke <cmd> [arg]     Invoke a command
  state                  Show the device state
  status                 Show the device status
  ping [count]           Measure round trips
  discover               List device servers on the local network

Flags:
`

var (
	addr       = flag.String("addr", "localhost:"+strconv.Itoa(discovery.DefaultPort), "Device server address")
	deviceName = flag.String("device", "", "Locate the server advertising this device name via mDNS")
	timeout    = flag.Duration("timeout", 5*time.Second, "Request timeout")
	iface      = flag.String("interface", "", "Network interface for mDNS (default: all)")
)

var errUsage = errors.New("invalid usage")

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := run(ctx, os.Stdout, flag.Arg(0), flag.Args()[1:]); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
			flag.Usage()
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, w io.Writer, cmd string, args []string) error {
	if cmd == "discover" {
		return runDiscover(ctx, w)
	}

	conn, err := connect(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = conn.SendClose()
		_ = conn.Close()
	}()

	return execute(ctx, w, conn, cmd, args)
}

// connect dials -addr, or the server found for -device.
func connect(ctx context.Context) (*transport.ClientConn, error) {
	address := *addr
	if *deviceName != "" {
		browser := discovery.NewMDNSBrowser(discovery.BrowserConfig{
			BrowseTimeout: discovery.BrowseTimeout,
			Interface:     *iface,
		})
		svc, err := browser.FindDevice(ctx, *deviceName)
		if err != nil {
			return nil, err
		}
		if err := version.Check(svc.Version); err != nil {
			return nil, fmt.Errorf("%s: %w", svc.DeviceName, err)
		}
		address = svc.Address()
	}

	client := transport.NewClient(transport.ClientConfig{RequestTimeout: *timeout})
	return client.Connect(ctx, address)
}

// remote is the part of a client connection used by the commands.
type remote interface {
	Read(ctx context.Context, name string) (any, error)
	Write(ctx context.Context, name string, value any) error
	Invoke(ctx context.Context, name string, arg any) (any, error)
	Ping(ctx context.Context) (time.Duration, error)
}

func execute(ctx context.Context, w io.Writer, conn remote, cmd string, args []string) error {
	switch cmd {
	case "read":
		if len(args) != 1 {
			return fmt.Errorf("%w: read <attr>", errUsage)
		}
		v, err := conn.Read(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s = %v\n", args[0], v)

	case "write":
		if len(args) != 2 {
			return fmt.Errorf("%w: write <attr> <value>", errUsage)
		}
		// The device coerces the value to the attribute type.
		if err := conn.Write(ctx, args[0], model.InferValue(args[1])); err != nil {
			return err
		}
		fmt.Fprintf(w, "%s <- %s\n", args[0], args[1])

	case "values":
		if len(args) != 1 {
			return fmt.Errorf("%w: values <attr>", errUsage)
		}
		v, err := conn.Invoke(ctx, device.CmdGetAttrStringValueList, args[0])
		if err != nil {
			return err
		}
		printValueList(w, v)

	case "invoke":
		if len(args) < 1 || len(args) > 2 {
			return fmt.Errorf("%w: invoke <cmd> [arg]", errUsage)
		}
		var arg any
		if len(args) == 2 {
			arg = model.InferValue(args[1])
		}
		v, err := conn.Invoke(ctx, args[0], arg)
		if err != nil {
			return err
		}
		if v != nil {
			fmt.Fprintln(w, v)
		}

	case "state", "status":
		name := device.CmdState
		if cmd == "status" {
			name = device.CmdStatus
		}
		v, err := conn.Invoke(ctx, name, nil)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, v)

	case "ping":
		count := 1
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return fmt.Errorf("%w: ping [count]", errUsage)
			}
			count = n
		}
		for i := 0; i < count; i++ {
			rtt, err := conn.Ping(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "pong seq=%d time=%s\n", i+1, rtt.Round(time.Microsecond))
		}

	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
	return nil
}

func printValueList(w io.Writer, v any) {
	list, ok := v.([]any)
	if !ok {
		fmt.Fprintln(w, v)
		return
	}
	if len(list) == 0 {
		fmt.Fprintln(w, "(not an enumerated attribute)")
		return
	}
	for _, item := range list {
		fmt.Fprintln(w, item)
	}
}

func runDiscover(ctx context.Context, w io.Writer) error {
	ctx, cancel := context.WithTimeout(ctx, discovery.BrowseTimeout)
	defer cancel()

	browser := discovery.NewMDNSBrowser(discovery.BrowserConfig{
		BrowseTimeout: discovery.BrowseTimeout,
		Interface:     *iface,
	})
	services, err := browser.Browse(ctx)
	if err != nil {
		return err
	}

	found := make(map[string]*discovery.DeviceService)
	for svc := range services {
		found[svc.InstanceName] = svc
	}

	if len(found) == 0 {
		fmt.Fprintln(w, "No device servers found")
		return nil
	}

	names := make([]string, 0, len(found))
	for name := range found {
		names = append(names, name)
	}
	sort.Strings(names)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DEVICE\tPROFILE\tMODEL\tVERSION\tADDRESS")
	for _, name := range names {
		svc := found[name]
		ver := dash(svc.Version)
		if version.Check(svc.Version) != nil {
			ver += " (incompatible)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", svc.DeviceName, svc.Profile, dash(svc.Model), ver, svc.Address())
	}
	return tw.Flush()
}

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
