package main

import (
	"flag"
	"fmt"
	"os"

	"gohid/host/monitor"
	"gohid/sim"
)

var (
	configPath = flag.String("config", "", "JSON config file (optional)")
	text       = flag.String("text", "", "Override the typed text")
	pointer    = flag.Bool("pointer", false, "Run the mouse move/click sub-sequence first")
	quiet      = flag.Bool("quiet", false, "Suppress the event trace")
)

func main() {
	flag.Parse()

	cfg := sim.DefaultSimConfig()
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: read config: %v\n", err)
			os.Exit(1)
		}
		loaded, err := sim.LoadConfig(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = *loaded
	}
	if *text != "" {
		cfg.Text = *text
	}
	if *pointer {
		cfg.PointerDemo = true
	}

	s := sim.New(cfg)
	s.Plug()
	s.RunFor(cfg.DurationMS)

	if !*quiet {
		m := monitor.New(os.Stdout)
		m.Consume(s.Stream())
		fmt.Println()
	}

	fmt.Printf("Reports sent: %d\n", len(s.Reports))
	fmt.Printf("Device typed: %q\n", s.Typed())
}
