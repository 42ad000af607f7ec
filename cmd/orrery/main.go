package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-kit/kit/log/level"
	"github.com/orrery-sim/orrery"
)

// This is a minimal stand-in for the graphical front-end the simulation
// core is meant to drive: it starts a driver on the default scenario
// (or a scenario with one extra random planet), logs the live
// parameters and a body count every second, and stops on SIGINT or
// SIGTERM (or after the optional -for duration, whichever comes
// first), joining the physics goroutine before exit. Everything it
// calls through Driver is exactly the control surface a real consumer
// would use.

var (
	runFor    = flag.Duration("for", 0, "wall-clock duration to run before stopping automatically (0 = run until SIGINT/SIGTERM)")
	threads   = flag.Int("threads", 0, "worker count for the force kernel (0 = config default)")
	randomOne = flag.Bool("with-random-planet", false, "add one randomly-generated planet to the default scenario")
	rk4       = flag.Bool("rk4", false, "use RK4 instead of the configured symplectic order")
)

func main() {
	flag.Parse()

	cfg, loadedFromFile := orrery.LoadConfig()
	logger := orrery.NewLogger(cfg.LogLevel)
	if loadedFromFile {
		level.Info(logger).Log("msg", "loaded configuration from ORRERY_CONFIG")
	} else {
		level.Info(logger).Log("msg", "using default configuration")
	}

	bodies := orrery.DefaultScenario()
	if *randomOne {
		spec := orrery.RandomPlanetSpec()
		sun := bodies[0]
		bodies = append(bodies, orrery.PlaceOnOrbit(spec, sun))
	}

	driver := orrery.NewDriver(bodies, cfg, logger)
	if *threads > 0 {
		driver.SetThreads(*threads)
	}
	if *rk4 {
		driver.SetMethod(orrery.RK4)
	}

	if err := driver.Start(); err != nil {
		level.Error(logger).Log("msg", "failed to start simulation", "err", err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	var deadline <-chan time.Time
	if *runFor > 0 {
		deadline = time.After(*runFor)
	}

	stopReason := "deadline elapsed"
loop:
	for {
		select {
		case <-ticker.C:
			params := driver.Parameters()
			level.Info(logger).Log(
				"msg", "tick",
				"state", driver.State(),
				"bodies", len(driver.Snapshot()),
				"time_step", fmt.Sprintf("%.6f", params.TimeStep),
				"time_elapsed_days", fmt.Sprintf("%.3f", params.TimeElapsed/orrery.SecondsPerDay),
				"julian_date", fmt.Sprintf("%.5f", params.JulianDate),
			)
		case sig := <-sigCh:
			stopReason = sig.String()
			break loop
		case <-deadline:
			break loop
		}
	}

	level.Info(logger).Log("msg", "stopping", "reason", stopReason)
	driver.Stop()
	driver.Join()
	level.Info(logger).Log("msg", "stopped", "final_bodies", len(driver.Snapshot()))
}
