// Command comparefmt measures formatter throughput across concurrent workers.
// Each worker clones the selected formatter and renders a fixed record set
// into a reused buffer, then the run prints a per-worker and aggregate
// throughput table.
//
// Run it from the benchmark module:
//
//	go run ./cmd/comparefmt -f pattern -n 8 -i 500000
package main

import (
	"fmt"
	"os"
	"runtime"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"pkt.systems/recfmt"
	"pkt.systems/recfmt/ansi"
	"pkt.systems/recfmt/pattern"
)

const defaultTemplate = "[{date} {time}.{millisecond}] [{logger}] [{^{level}}] {payload}{eol}"

type options struct {
	formatter string
	template  string
	threads   int
	iters     int
	style     bool
	palette   string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "comparefmt:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:          "comparefmt",
		Short:        "Measure record formatting throughput across workers",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opts.formatter, "formatter", "f", "full", "formatter under test: full, iso8601, journald or pattern")
	flags.StringVarP(&opts.template, "template", "t", defaultTemplate, "template compiled when --formatter=pattern")
	flags.IntVarP(&opts.threads, "threads", "n", runtime.GOMAXPROCS(0), "number of concurrent workers")
	flags.IntVarP(&opts.iters, "iters", "i", 1_000_000, "records formatted per worker")
	flags.BoolVar(&opts.style, "style", false, "wrap the reported style range in the level color sequence")
	flags.StringVar(&opts.palette, "palette", "", "switch to a named color palette before the run")
	return cmd
}

func newFormatter(opts *options, cache *recfmt.LocalTimeCache) (recfmt.Formatter, error) {
	switch opts.formatter {
	case "full":
		return recfmt.NewFullFormatter().WithTimeCache(cache), nil
	case "iso8601":
		return recfmt.NewISO8601Formatter().WithTimeCache(cache), nil
	case "journald":
		return recfmt.NewJournaldFormatter(), nil
	case "pattern":
		return pattern.New(opts.template, pattern.WithTimeCache(cache))
	default:
		return nil, fmt.Errorf("unknown formatter %q (want full, iso8601, journald or pattern)", opts.formatter)
	}
}

func run(cmd *cobra.Command, opts *options) error {
	if opts.threads < 1 {
		return fmt.Errorf("threads must be at least 1, got %d", opts.threads)
	}
	if opts.iters < 1 {
		return fmt.Errorf("iters must be at least 1, got %d", opts.iters)
	}
	if opts.palette != "" {
		ansi.SetPalette(*ansi.PaletteByName(opts.palette))
	}

	cache := recfmt.NewLocalTimeCache()
	base, err := newFormatter(opts, cache)
	if err != nil {
		return err
	}
	records := buildRecords(512)

	elapsed := make([]time.Duration, opts.threads)
	written := make([]int64, opts.threads)
	failed := make([]error, opts.threads)

	var wg sync.WaitGroup
	for w := range opts.threads {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f := base.Clone()
			buf := recfmt.NewBuffer()
			start := time.Now()
			for i := 0; i < opts.iters; i++ {
				r := &records[i%len(records)]
				buf.Reset()
				extra, err := f.Format(r, buf)
				if err != nil {
					failed[w] = err
					return
				}
				n := buf.Len()
				if opts.style {
					if rng, ok := extra.StyleRange(); ok {
						n = len(recfmt.ApplyStyle(buf.Bytes(), rng, recfmt.LevelSequence(r.Level())))
					}
				}
				written[w] += int64(n)
			}
			elapsed[w] = time.Since(start)
		}()
	}
	wg.Wait()

	for w, err := range failed {
		if err != nil {
			return fmt.Errorf("worker %d: %w", w, err)
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "formatter=%s threads=%d iters=%d", opts.formatter, opts.threads, opts.iters)
	if opts.formatter == "pattern" {
		fmt.Fprintf(out, " template=%q", opts.template)
	}
	fmt.Fprintln(out)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "worker\trecords\telapsed\trecords/s\tns/record\tMB/s\t")
	var totalBytes int64
	var wall time.Duration
	for w := range opts.threads {
		d := elapsed[w]
		if d > wall {
			wall = d
		}
		totalBytes += written[w]
		secs := d.Seconds()
		fmt.Fprintf(tw, "%d\t%d\t%s\t%.0f\t%.1f\t%.1f\t\n",
			w, opts.iters, d.Round(time.Millisecond),
			float64(opts.iters)/secs,
			float64(d.Nanoseconds())/float64(opts.iters),
			float64(written[w])/secs/1e6)
	}
	total := int64(opts.threads) * int64(opts.iters)
	wallSecs := wall.Seconds()
	fmt.Fprintf(tw, "all\t%d\t%s\t%.0f\t%.1f\t%.1f\t\n",
		total, wall.Round(time.Millisecond),
		float64(total)/wallSecs,
		float64(wall.Nanoseconds())*float64(opts.threads)/float64(total),
		float64(totalBytes)/wallSecs/1e6)
	return tw.Flush()
}

// buildRecords mirrors the dataset the benchmarks use: mostly repeated
// seconds with regular rollovers, a mix of levels and payload sizes, and a
// source location on every third record.
func buildRecords(n int) []recfmt.Record {
	payloads := []string{
		"connection accepted",
		"cache miss for key user:42137, fetching from origin",
		"request completed",
		"retrying upstream call after transient failure",
		"shutting down worker pool",
	}
	levels := []recfmt.Level{
		recfmt.TraceLevel,
		recfmt.DebugLevel,
		recfmt.InfoLevel,
		recfmt.InfoLevel,
		recfmt.WarnLevel,
		recfmt.ErrorLevel,
		recfmt.CriticalLevel,
	}
	src := recfmt.NewSourceLocation("pkt.systems/app/web", "srv/app/web/handler.go", 42, 9)
	base := time.Date(2022, time.November, 2, 9, 23, 12, 0, time.Local)

	records := make([]recfmt.Record, n)
	for i := range records {
		r := recfmt.NewRecord(levels[i%len(levels)], payloads[i%len(payloads)]).
			WithName("comparefmt").
			WithTime(base.Add(time.Duration(i) * 37 * time.Millisecond))
		if i%3 == 0 {
			r = r.WithSource(&src)
		}
		records[i] = r
	}
	return records
}
