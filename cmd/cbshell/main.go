// Command cbshell is an interactive shell over a simulated board. It attaches
// plain, state-bound and member-bound handlers to pins, UARTs and ADCs and
// raises their events by hand.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/abiosoft/ishell"
	"github.com/golang/glog"

	"callback-go/hal/sim"
)

var (
	configPath string
	evalOnly   bool
)

func init() {
	flag.StringVar(&configPath, "config", "", "Board description (JSON). Defaults to a button, uart0 and adc0.")
	flag.BoolVar(&evalOnly, "e", false, "Evaluate the command given as arguments, no interactive shell.")
}

func loadConfig() (sim.BoardConfig, error) {
	if configPath == "" {
		return sim.DefaultConfig(), nil
	}
	f, err := os.Open(configPath)
	if err != nil {
		return sim.BoardConfig{}, err
	}
	defer f.Close()
	return sim.LoadConfig(f)
}

func newShell(a *app) *ishell.Shell {
	sh := ishell.New()
	sh.SetPrompt("cb > ")
	for _, cmd := range commands(a) {
		sh.AddCmd(cmd)
	}
	return sh
}

func commands(a *app) []*ishell.Cmd {
	return []*ishell.Cmd{
		{
			Name: "devices",
			Help: "list devices",
			Func: func(c *ishell.Context) {
				for _, d := range a.devices() {
					c.Println(d)
				}
			},
		},
		{
			Name: "attach",
			Help: "DEVICE plain|state|member",
			Func: func(c *ishell.Context) {
				if len(c.Args) < 2 {
					c.Err(fmt.Errorf("DEVICE and VARIANT required"))
					return
				}
				k, err := a.attach(c.Args[0], c.Args[1])
				if err != nil {
					c.Err(err)
					return
				}
				c.Printf("%s: attached %s handler\n", c.Args[0], k)
			},
		},
		{
			Name: "detach",
			Help: "DEVICE",
			Func: func(c *ishell.Context) {
				if len(c.Args) < 1 {
					c.Err(fmt.Errorf("DEVICE required"))
					return
				}
				if err := a.detach(c.Args[0]); err != nil {
					c.Err(err)
				}
			},
		},
		{
			Name: "drive",
			Help: "PIN 0|1",
			Func: func(c *ishell.Context) {
				if len(c.Args) < 2 {
					c.Err(fmt.Errorf("PIN and LEVEL required"))
					return
				}
				fired, err := a.drive(c.Args[0], c.Args[1])
				if err != nil {
					c.Err(err)
					return
				}
				if !fired {
					c.Println("no handler ran")
				}
			},
		},
		{
			Name: "rx",
			Help: "SERIAL TEXT... (a newline is appended)",
			Func: func(c *ishell.Context) {
				if len(c.Args) < 1 {
					c.Err(fmt.Errorf("SERIAL required"))
					return
				}
				n, err := a.rx(c.Args[0], strings.Join(c.Args[1:], " ")+"\n")
				if err != nil {
					c.Err(err)
					return
				}
				glog.V(1).Infof("injected %d bytes into %s", n, c.Args[0])
			},
		},
		{
			Name: "tx",
			Help: "SERIAL",
			Func: func(c *ishell.Context) {
				if len(c.Args) < 1 {
					c.Err(fmt.Errorf("SERIAL required"))
					return
				}
				out, err := a.tx(c.Args[0])
				if err != nil {
					c.Err(err)
					return
				}
				c.Printf("%q\n", out)
			},
		},
		{
			Name: "sample",
			Help: "ADC [RAW]",
			Func: func(c *ishell.Context) {
				if len(c.Args) < 1 {
					c.Err(fmt.Errorf("ADC required"))
					return
				}
				var raw *uint16
				if len(c.Args) > 1 {
					v, err := strconv.ParseUint(c.Args[1], 0, 16)
					if err != nil {
						c.Err(fmt.Errorf("invalid RAW: %v", err))
						return
					}
					r := uint16(v)
					raw = &r
				}
				if err := a.sample(context.Background(), c.Args[0], raw); err != nil {
					c.Err(err)
				}
			},
		},
		{
			Name: "stats",
			Help: "event counters per device",
			Func: func(c *ishell.Context) {
				c.Print(a.stats())
			},
		},
		{
			Name: "call-empty",
			Help: "invoke an unbound handler and report the fail-fast panic",
			Func: func(c *ishell.Context) {
				c.Printf("panic: %v\n", a.callEmpty())
			},
		},
	}
}

func main() {
	flag.Parse()
	defer glog.Flush()

	cfg, err := loadConfig()
	if err != nil {
		glog.Exitf("config: %v", err)
	}
	a, err := newApp(cfg, os.Stdout)
	if err != nil {
		glog.Exitf("board: %v", err)
	}
	glog.V(1).Infof("board ready: %v", a.board.IDs())

	sh := newShell(a)
	if args := flag.Args(); len(args) > 0 {
		if err := sh.Process(args...); err != nil {
			glog.Exit(err)
		}
		return
	}
	if evalOnly {
		glog.Exit("command expected")
	}
	sh.Run()
}
