// Command orthogf2 computes, samples and validates elements of the
// orthogonal group O(n, GF(2)).
//
// Usage:
//
//	orthogf2 [-log-level info] <command> [flags]
//
// Commands:
//
//	order    -n N                      print |O(N, GF(2))|
//	element  -n N -i I                 print the I-th group element
//	sample   -n N [-seed S]            print a uniformly random element
//	validate -n N [-lo L] [-hi H]      check orthogonality and uniqueness
//	         [-workers K] [-unique=false] [-progress P] [-metrics-addr :9090]
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	logging "github.com/ipfs/go-log/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/orthogf2/orthogonal"
	"github.com/katalvlaran/orthogf2/validate"
)

var log = logging.Logger("orthogf2")

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is the actual entry point, returning an exit code. It takes the
// arguments without the program name so it can be tested in isolation.
func run(args []string, stdout, stderr io.Writer) int {
	global := newFlagSet("orthogf2", stderr)
	logLevel := global.String("log-level", "info", "Log level (debug, info, warn, error)")
	global.Usage = func() { usage(stderr) }
	if err := global.Parse(args); err != nil {
		return exitUsage
	}

	level, err := logging.LevelFromString(*logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "invalid log level %q, using info\n", *logLevel)
		level = logging.LevelInfo
	}
	logging.SetAllLoggers(level)

	rest := global.Args()
	if len(rest) == 0 {
		usage(stderr)
		return exitUsage
	}

	var cmd func([]string, io.Writer, io.Writer) error
	switch rest[0] {
	case "order":
		cmd = runOrder
	case "element":
		cmd = runElement
	case "sample":
		cmd = runSample
	case "validate":
		cmd = runValidate
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", rest[0])
		usage(stderr)
		return exitUsage
	}

	if err = cmd(rest[1:], stdout, stderr); err != nil {
		if errors.Is(err, errUsage) {
			return exitUsage
		}
		fmt.Fprintf(stderr, "%s: %v\n", rest[0], err)
		return exitError
	}

	return exitOK
}

// errUsage marks flag parsing failures; the flag package already printed them.
var errUsage = errors.New("usage")

func usage(w io.Writer) {
	fmt.Fprint(w, `usage: orthogf2 [-log-level LEVEL] <command> [flags]

commands:
  order     -n N
  element   -n N -i I
  sample    -n N [-seed S]
  validate  -n N [-lo L] [-hi H] [-workers K] [-unique=false] [-progress P] [-metrics-addr ADDR]
`)
}

func runOrder(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("order", stderr)
	n := fs.Int("n", 2, "Even matrix dimension")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	ord, err := orthogonal.Order(*n)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, ord.Dec())

	return nil
}

func runElement(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("element", stderr)
	n := fs.Int("n", 2, "Even matrix dimension")
	idx := newIndexValue(0)
	fs.Var(idx, "i", "Group index in [0, order(n))")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	m, err := orthogonal.IndexedElement(*n, idx.v)
	if err != nil {
		return err
	}
	fmt.Fprint(stdout, m)

	return nil
}

func runSample(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("sample", stderr)
	n := fs.Int("n", 2, "Even matrix dimension")
	seed := fs.Int64("seed", 0, "Random seed (0 picks one from the clock)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
		log.Debugf("using seed %d", *seed)
	}

	src := orthogonal.NewSource(*seed)
	i, err := orthogonal.SampleIndex(*n, src)
	if err != nil {
		return err
	}
	m, err := orthogonal.IndexedElement(*n, i)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "index %s\n%s", i.Dec(), m)

	return nil
}

func runValidate(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("validate", stderr)
	n := fs.Int("n", 2, "Even matrix dimension")
	lo := newIndexValue(0)
	hi := newIndexValue(0)
	fs.Var(lo, "lo", "First index to check")
	fs.Var(hi, "hi", "End of the index range, exclusive (default order(n))")
	workers := fs.Int("workers", 0, "Concurrent workers (0 means GOMAXPROCS)")
	unique := fs.Bool("unique", true, "Check that no two indices yield the same matrix")
	progress := fs.Uint64("progress", 0, "Log progress every P elements (0 keeps the default)")
	metricsAddr := fs.String("metrics-addr", "", "Serve Prometheus metrics on this address")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	var opts []validate.Option
	if lo.set || hi.set {
		end := hi.v
		if !hi.set {
			ord, err := orthogonal.Order(*n)
			if err != nil {
				return err
			}
			end = ord
		}
		opts = append(opts, validate.WithRange(lo.v, end))
	}
	if *workers > 0 {
		opts = append(opts, validate.WithWorkers(*workers))
	}
	if !*unique {
		opts = append(opts, validate.WithoutUniqueness())
	}
	if *progress > 0 {
		opts = append(opts, validate.WithProgressEvery(*progress))
	}

	if *metricsAddr != "" {
		reg := prometheus.NewRegistry()
		opts = append(opts, validate.WithRegisterer(reg))
		_, stop, err := serveMetrics(*metricsAddr, reg)
		if err != nil {
			return err
		}
		defer stop()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	start := time.Now()
	rep, err := validate.Run(ctx, *n, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "n=%d range=[%s, %s) checked=%d distinct=%d mean_weight=%.4f\n",
		rep.N, rep.Lo.Dec(), rep.Hi.Dec(), rep.Checked, rep.Distinct, rep.MeanWeight)
	log.Infof("validation finished in %s", time.Since(start))

	return nil
}

// serveMetrics exposes reg on addr under /metrics until stop is called.
// It returns the bound address, which differs from addr for port 0.
func serveMetrics(addr string, reg *prometheus.Registry) (bound net.Addr, stop func(), err error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, fmt.Errorf("metrics listener: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Warnf("metrics server: %v", err)
		}
	}()
	log.Infof("serving metrics on http://%s/metrics", ln.Addr())

	return ln.Addr(), func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
