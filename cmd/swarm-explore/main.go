package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"reflect"
	"syscall"

	"github.com/Kolefn/swarm-explore/explore"
	"github.com/Kolefn/swarm-explore/trace"
	"github.com/aukilabs/go-tooling/pkg/cli"
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/segmentio/encoding/json"
)

var (
	// The swarm-explore version number. Set at build.
	version = "v0.1.0"
)

// Keeps the config field names readable by the cli package under obfuscating builds.
var _ = reflect.TypeOf(config{})

type config struct {
	Trace        string `cli:""        env:"SWARM_EXPLORE_TRACE"        help:"Trace file to replay, '-' for stdin."`
	Format       string `cli:""        env:"SWARM_EXPLORE_FORMAT"       help:"Trace format (text|json). Guessed from the file extension when empty."`
	Connectivity string `cli:""        env:"SWARM_EXPLORE_CONNECTIVITY" help:"Neighbor connectivity for region analysis (4|8)."`
	GridID       string `cli:""        env:"SWARM_EXPLORE_GRID_ID"      help:"Grid identifier used in logs and metrics. Random when empty."`
	MetricsAddr  string `cli:""        env:"SWARM_EXPLORE_METRICS_ADDR" help:"Serve Prometheus metrics on this address after the replay."`
	LogLevel     string `cli:""        env:"SWARM_EXPLORE_LOG_LEVEL"    help:"Log level (debug|info|warning|error)."`
	LogIndent    bool   `cli:""        env:"SWARM_EXPLORE_LOG_INDENT"   help:"Indent logs."`
	Version      bool   `cli:""        env:"-"                          help:"Show version."`
	Help         bool   `cli:""        env:"-"                          help:"Show help."`
}

// report is the JSON document printed after a replay.
type report struct {
	explore.Stats
	Regions  int `json:"regions"`
	Frontier int `json:"frontier"`
}

func main() {
	conf := config{
		Trace:        "-",
		Connectivity: "4",
		LogLevel:     logs.InfoLevel.String(),
	}

	ctx, cancel := cli.ContextWithSignals(context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cli.Register().
		Help("Replays an agent trace into an exploration grid and reports coverage.").
		Options(&conf)
	cli.Load()

	if conf.Version {
		fmt.Println(version)
		os.Exit(0)
	}

	logs.SetLevel(logs.ParseLevel(conf.LogLevel))
	logs.Encoder = json.Marshal
	if conf.LogIndent {
		logs.Encoder = func(v any) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		}
	}

	errors.Encoder = json.Marshal

	grid, err := run(conf, os.Stdin, os.Stdout)
	if err != nil {
		logs.Fatal(err)
	}

	if conf.MetricsAddr != "" {
		serveMetrics(ctx, conf.MetricsAddr)
	}

	logs.WithTag("grid_id", grid.ID()).Info("exploration replay finished")
}

// run replays the configured trace and writes the report to out.
func run(conf config, stdin io.Reader, out io.Writer) (*explore.Grid, error) {
	conn, err := explore.ParseConnectivity(conf.Connectivity)
	if err != nil {
		return nil, errors.New("invalid connectivity").Wrap(err)
	}

	format := trace.FormatFromPath(conf.Trace)
	if conf.Format != "" {
		if format, err = trace.ParseFormat(conf.Format); err != nil {
			return nil, err
		}
	}

	r := stdin
	if conf.Trace != "-" {
		f, err := os.Open(conf.Trace)
		if err != nil {
			return nil, errors.New("opening trace failed").
				WithTag("trace", conf.Trace).
				Wrap(err)
		}
		defer f.Close()
		r = f
	}

	steps, err := trace.Read(r, format)
	if err != nil {
		return nil, errors.New("reading trace failed").
			WithTag("trace", conf.Trace).
			Wrap(err)
	}

	grid := explore.New(
		explore.WithID(conf.GridID),
		explore.WithConnectivity(conn),
		explore.WithMetrics(conf.MetricsAddr != ""),
	)
	logs.WithTag("grid_id", grid.ID()).
		WithTag("trace", conf.Trace).
		WithTag("steps", len(steps)).
		Info("replaying trace")

	if err := trace.Replay(grid, steps); err != nil {
		return nil, err
	}

	rep := report{
		Stats:    grid.Stats(),
		Regions:  len(grid.ExploredRegions()),
		Frontier: len(grid.Frontier()),
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return nil, errors.New("writing report failed").Wrap(err)
	}
	return grid, nil
}

// serveMetrics exposes /metrics until ctx is canceled.
func serveMetrics(ctx context.Context, addr string) {
	var mux http.ServeMux
	mux.Handle("/metrics", promhttp.Handler())
	s := &http.Server{
		Addr:    addr,
		Handler: &mux,
	}

	go func() {
		<-ctx.Done()
		if err := s.Shutdown(context.Background()); err != nil {
			logs.Warn(errors.Newf("shutting down the metrics server failed").
				WithTag("addr", s.Addr).
				Wrap(err))
		}
	}()

	logs.WithTag("addr", s.Addr).Info("starting metrics server")
	switch err := s.ListenAndServe(); err {
	case nil, http.ErrServerClosed, context.Canceled:
		logs.WithTag("addr", s.Addr).Info("stopping metrics server")

	default:
		logs.Warn(errors.Newf("metrics server stopped").
			WithTag("addr", s.Addr).
			Wrap(err))
	}
}
