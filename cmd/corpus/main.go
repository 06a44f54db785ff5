package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"ua-analyzer/internal/config"
	"ua-analyzer/internal/corpus"
	"ua-analyzer/internal/rpc"

	"github.com/schollz/progressbar/v3"
)

func main() {
	var (
		addr    string
		workers int
		quiet   bool
	)

	flag.StringVar(&addr, "addr", "", "analyzer endpoint (defaults to ANALYZER_ADDR or [::1]:50051)")
	flag.IntVar(&workers, "workers", 8, "number of concurrent requests")
	flag.BoolVar(&quiet, "quiet", false, "do not render a progress bar")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <url|file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if addr == "" {
		cfg, err := config.LoadClientConfig()
		if err != nil {
			log.Fatalf("error parsing config: %v", err)
		}
		addr = cfg.Addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lines, err := corpus.Fetch(ctx, flag.Arg(0))
	if err != nil {
		log.Fatalf("Failed to load corpus: %v", err)
	}

	client, err := rpc.Dial(addr)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}
	defer client.Close()

	var bar *progressbar.ProgressBar
	if quiet {
		bar = progressbar.DefaultSilent(int64(len(lines)))
	} else {
		bar = progressbar.NewOptions(len(lines),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("classifying"),
			progressbar.OptionShowCount(),
			progressbar.OptionOnCompletion(func() { fmt.Fprintln(os.Stderr) }),
		)
	}

	report, runErr := corpus.Run(ctx, client, lines, workers, bar)
	if runErr != nil {
		log.Printf("first error: %v", runErr)
	}

	printReport(report)

	if runErr != nil || !report.Ok() {
		os.Exit(1)
	}
}

func printReport(report corpus.Report) {
	fmt.Printf("Total: %d\n", report.Total)
	if report.Processed != report.Total {
		fmt.Printf("Processed: %d\n", report.Processed)
	}

	labels := make([]string, 0, len(report.Counts))
	for label := range report.Counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		fmt.Printf("  %-8s %d\n", label, report.Counts[label])
	}

	if report.Failures > 0 {
		fmt.Printf("Failures: %d\n", report.Failures)
	}

	for _, m := range report.Mismatches {
		fmt.Printf("Mismatch: expected %s, got %s: %q\n", m.Expected, m.Actual, m.UserAgent)
	}
}
