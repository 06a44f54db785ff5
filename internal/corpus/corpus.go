package corpus

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"ua-analyzer/internal/core"
	"ua-analyzer/internal/core/utils"

	"github.com/go-resty/resty/v2"
)

type Analyzer interface {
	AnalyzeUserAgent(ctx context.Context, userAgent string) (string, error)
}

// Progress is satisfied by *progressbar.ProgressBar.
type Progress interface {
	Add(n int) error
}

type Mismatch struct {
	UserAgent string
	Expected  core.Decision
	Actual    string
}

type Report struct {
	Total int
	// Processed counts lines that got an answer or an error. It is below
	// Total when the run was cancelled.
	Processed  int
	Counts     map[string]int
	Mismatches []Mismatch
	Failures   int
}

func (r Report) Ok() bool {
	return r.Processed == r.Total && len(r.Mismatches) == 0 && r.Failures == 0
}

// Fetch loads a newline separated list of user agents from an http(s) URL or
// a local file.
func Fetch(ctx context.Context, source string) ([]string, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return fetchURL(ctx, resty.New(), source)
	}

	file, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("error opening corpus file: %w", err)
	}
	defer file.Close()

	return ParseLines(file)
}

func fetchURL(ctx context.Context, client *resty.Client, url string) ([]string, error) {
	resp, err := client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("error fetching corpus from %s: %w", url, err)
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.IsError() {
		return nil, fmt.Errorf("error fetching corpus from %s: unexpected status %s", url, resp.Status())
	}

	return ParseLines(body)
}

// ParseLines returns every non-empty line, with line endings removed but the
// content otherwise untouched. Whitespace-only lines are kept.
func ParseLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading corpus: %w", err)
	}

	return lines, nil
}

type result struct {
	userAgent string
	decision  string
}

// Run classifies every line with analyzer and compares each remote decision
// with the local rules. The first transport error is returned alongside the
// report; remaining lines are still processed unless ctx is cancelled, in
// which case the unprocessed lines are left out of the report.
func Run(ctx context.Context, analyzer Analyzer, lines []string, workers int, progress Progress) (Report, error) {
	queue := make(chan string, len(lines))
	for _, line := range lines {
		queue <- line
	}
	close(queue)

	completed := make(chan utils.CompletedTask[result], len(lines))

	worker := func(ctx context.Context, userAgent string) (result, error) {
		decision, err := analyzer.AnalyzeUserAgent(ctx, userAgent)
		if err != nil {
			return result{}, fmt.Errorf("error analyzing '%s': %w", userAgent, err)
		}
		return result{userAgent: userAgent, decision: decision}, nil
	}

	utils.RunInPool(ctx, worker, queue, completed, workers)

	report := Report{Total: len(lines), Counts: make(map[string]int)}
	var firstErr error

	for task := range completed {
		report.Processed++

		if progress != nil {
			if err := progress.Add(1); err != nil {
				slog.Warn("error updating progress", "error", err)
			}
		}

		if task.Error != nil {
			report.Failures++
			if firstErr == nil {
				firstErr = task.Error
			}
			continue
		}

		res := task.Result
		report.Counts[res.decision]++

		if expected := core.Classify(res.userAgent); string(expected) != res.decision {
			report.Mismatches = append(report.Mismatches, Mismatch{
				UserAgent: res.userAgent,
				Expected:  expected,
				Actual:    res.decision,
			})
		}
	}

	if firstErr == nil && ctx.Err() != nil {
		firstErr = ctx.Err()
	}

	return report, firstErr
}
