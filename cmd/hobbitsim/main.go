package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"hobbit_sim/internal/config"
	"hobbit_sim/internal/eventlog"
	"hobbit_sim/internal/sim"
	"hobbit_sim/internal/stream"
	"hobbit_sim/internal/watch"
)

func main() {
	var cfgPath, startID, out, eventsPath, serveAddr string
	var budget, hobbitSpeed, wraithSpeed int
	var watchMode, narrate bool
	var interval time.Duration
	flag.StringVar(&cfgPath, "config", "assets/maps.yaml", "map catalog file")
	flag.StringVar(&startID, "start", "", "map id to start from (default: first map)")
	flag.StringVar(&out, "out", "out.json", "result file")
	flag.StringVar(&eventsPath, "events", "", "append-only JSONL event log file")
	flag.StringVar(&serveAddr, "serve", "", "websocket spectator listen address (e.g. :8080)")
	flag.IntVar(&budget, "budget", 0, "tick budget, 0 = unlimited")
	flag.IntVar(&hobbitSpeed, "hobbit-speed", 0, "hobbit sub-steps per tick, 0 = default")
	flag.IntVar(&wraithSpeed, "wraith-speed", 0, "wraith speed, 0 = default")
	flag.BoolVar(&watchMode, "watch", false, "render the run in the terminal")
	flag.BoolVar(&narrate, "narrate", false, "print a narration line per event")
	flag.DurationVar(&interval, "interval", 120*time.Millisecond, "tick cadence for watch/serve")
	flag.Parse()

	catalog, err := config.LoadMaps(cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	if startID == "" {
		startID = catalog.Maps[0].ID
	}

	opts := sim.Options{
		HobbitSpeed: hobbitSpeed,
		WraithSpeed: wraithSpeed,
		Budget:      budget,
	}

	var emits []func(sim.Event)
	var sink *eventlog.Sink
	if eventsPath != "" {
		f, err := os.Create(eventsPath)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		sink = eventlog.New(f)
		emits = append(emits, sink.Emit)
	}
	if narrate && !watchMode {
		emits = append(emits, func(ev sim.Event) { fmt.Println(sim.Narrate(ev)) })
	}
	if len(emits) > 0 {
		opts.Emit = func(ev sim.Event) {
			for _, e := range emits {
				e(ev)
			}
		}
	}

	var srv *stream.Server
	if serveAddr != "" {
		srv = stream.NewServer()
		opts.Observer = srv.Broadcast
	}

	runner, err := sim.NewRunner(catalog, startID, opts)
	if err != nil {
		log.Fatal(err)
	}

	var res sim.Result
	switch {
	case watchMode:
		res, err = watch.Run(runner, interval)
		if err != nil {
			log.Fatal(err)
		}
	case srv != nil:
		http.HandleFunc("/watch", srv.HandleSpectator)
		go func() {
			if err := http.ListenAndServe(serveAddr, nil); err != nil {
				log.Fatal(err)
			}
		}()
		log.Printf("spectators: ws://%s/watch", serveAddr)
		for runner.State() == sim.Running {
			runner.Step()
			time.Sleep(interval)
		}
		res = runner.Result()
	default:
		res = runner.Run()
	}

	if err := os.WriteFile(out, sim.MarshalPretty(res), 0644); err != nil {
		log.Fatal(err)
	}
	if sink != nil {
		if err := sink.Err(); err != nil {
			log.Fatal(err)
		}
	}
	fmt.Printf("%s after %d ticks: escaped=%d captured=%d -> %s\n",
		res.Outcome, res.Ticks, res.Escaped, res.Captured, out)
}
