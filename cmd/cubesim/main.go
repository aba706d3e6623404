// Command cubesim runs the routing-cube lattice simulator headless: it
// seeds a grid from an optional network file, drives it with an optional
// recipe, and reports network-wide statistics. The voxel viewer is a
// separate program; it attaches through the presenter the same way this
// driver does.
package main

import (
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	_ "github.com/latticelabs/cubesim/bellmanford"
	"github.com/latticelabs/cubesim/metrics"
	"github.com/latticelabs/cubesim/presenter"
	"github.com/latticelabs/cubesim/routing"
	"github.com/latticelabs/cubesim/simconfig"
)

var log = logrus.New()

func main() {
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	app := cli.NewApp()
	app.Name = "cubesim"
	app.Usage = "discrete-event simulator for a 3-D lattice of routing cubes"
	app.ArgsUsage = "[ALGORITHM]"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config",
			Usage: "YAML run configuration `FILE`",
		},
		cli.StringFlag{
			Name:  "network, n",
			Usage: "network topology `FILE`",
		},
		cli.StringFlag{
			Name:  "recipe, r",
			Usage: "simulation recipe `FILE`",
		},
		cli.IntFlag{
			Name:  "size, s",
			Usage: "minimum universe cube side `N`",
		},
		cli.StringFlag{
			Name:  "colormode, c",
			Usage: "viewer color mode `NAME` (passed through, not interpreted)",
		},
		cli.IntFlag{
			Name:  "cycles",
			Usage: "maximum number of cycles to run (negative: until the recipe finishes)",
			Value: -1,
		},
		cli.BoolFlag{
			Name:  "ignore-pauses",
			Usage: "run through PAUSE instructions instead of stopping",
		},
		cli.StringFlag{
			Name:  "metrics-addr",
			Usage: "serve Prometheus metrics on `ADDR` (e.g. :9100)",
		},
		cli.StringFlag{
			Name:  "save",
			Usage: "write the final topology to `FILE` in network-file format",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	cfg, err := buildConfig(c)
	if err != nil {
		return err
	}

	p, err := presenter.Init(cfg)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"algorithm": cfg.Algorithm,
		"nodes":     p.Grid().Len(),
		"known":     routing.Names(),
	}).Info("simulator initialized")

	if cfg.MetricsAddr != "" {
		serveMetrics(cfg.MetricsAddr, p)
	}

	if p.Recipe() != nil {
		if err := p.Run(cfg.Cycles, c.Bool("ignore-pauses")); err != nil {
			return err
		}
		if p.Recipe().Paused() {
			log.Warn("recipe paused; rerun with --ignore-pauses to drive through")
		}
	} else if cfg.Cycles > 0 {
		if err := p.Run(cfg.Cycles, false); err != nil {
			return err
		}
	}

	log.WithField("cycles", p.Grid().Cycles()).Info("run complete")
	os.Stdout.WriteString(p.Stats().String() + "\n")

	if path := c.String("save"); path != "" {
		if err := p.SaveNetworkFile(path); err != nil {
			return err
		}
		log.WithField("file", path).Info("topology saved")
	}

	return nil
}

// buildConfig layers defaults, the optional config file, the positional
// algorithm name, and flag overrides, in that order.
func buildConfig(c *cli.Context) (simconfig.Config, error) {
	cfg := simconfig.Default()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = simconfig.Load(path); err != nil {
			return cfg, err
		}
	}

	if c.NArg() > 0 {
		cfg.Algorithm = c.Args().First()
	}
	if c.IsSet("network") {
		cfg.NetworkFile = c.String("network")
	}
	if c.IsSet("recipe") {
		cfg.RecipeFile = c.String("recipe")
	}
	if c.IsSet("size") {
		cfg.UniverseSize = c.Int("size")
	}
	if c.IsSet("colormode") {
		cfg.ColorMode = c.String("colormode")
	}
	if c.IsSet("cycles") {
		cfg.Cycles = c.Int("cycles")
	}
	if c.IsSet("metrics-addr") {
		cfg.MetricsAddr = c.String("metrics-addr")
	}

	return cfg, cfg.Validate()
}

// serveMetrics exposes the grid's diagnostics on addr for the lifetime of
// the process.
func serveMetrics(addr string, p *presenter.Presenter) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(metrics.NewCollector(p.Grid()))

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.WithError(err).Error("metrics listener failed")
		}
	}()
	log.WithField("addr", addr).Info("serving metrics")
}
