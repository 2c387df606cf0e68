package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/avolkov/postvolley/internal/config"
	"github.com/avolkov/postvolley/internal/driver"
	"github.com/avolkov/postvolley/internal/httpclient"
	"github.com/avolkov/postvolley/internal/output"
	"github.com/avolkov/postvolley/internal/scenario"
	"github.com/avolkov/postvolley/internal/tracing"
)

const tracingShutdownTimeout = 5 * time.Second

// plannedCall is a case with its payload already marshalled, so that a
// bad case surfaces as a setup error instead of failing mid-run.
type plannedCall struct {
	label   string
	path    string
	payload []byte
}

// caller executes planned calls and prints one result line per call.
type caller struct {
	client    *http.Client
	builder   *httpclient.RequestBuilder
	printer   *output.Printer
	tracer    trace.Tracer
	propagate bool
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	loader := config.NewLoader()
	cfg, err := loader.Load(args)
	if err != nil {
		if errors.Is(err, config.ErrHelpRequested) {
			return nil
		}
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	cases, err := assembleCases(cfg)
	if err != nil {
		return err
	}
	calls, err := planCalls(cases)
	if err != nil {
		return err
	}

	builder, err := httpclient.NewRequestBuilder(cfg)
	if err != nil {
		return err
	}
	client := httpclient.NewClient(cfg.Timeout)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	provider, err := tracing.Init(ctx, cfg.Tracing)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), tracingShutdownTimeout)
		defer shutdownCancel()
		_ = provider.Shutdown(shutdownCtx)
	}()

	c := &caller{
		client:    client,
		builder:   builder,
		printer:   output.NewPrinter(os.Stdout),
		tracer:    provider.Tracer(),
		propagate: provider.ShouldPropagate(),
	}

	tasks := make([]driver.Task, 0, len(calls))
	for _, pc := range calls {
		tasks = append(tasks, func(ctx context.Context) { c.call(ctx, pc) })
	}

	runID := ulid.Make().String()
	fmt.Fprintf(os.Stderr, "[postvolley] run %s: %d calls against %s\n", runID, len(tasks), cfg.Target)

	d := driver.New(driver.Options{Stagger: cfg.Stagger})
	result := d.Run(ctx, tasks)

	if result.Launched < len(tasks) {
		fmt.Fprintf(os.Stderr, "[postvolley] interrupted after %d of %d calls (%s)\n",
			result.Launched, len(tasks), result.Duration.Round(time.Millisecond))
		return nil
	}
	fmt.Fprintf(os.Stderr, "[postvolley] completed %d calls in %s\n",
		result.Launched, result.Duration.Round(time.Millisecond))
	return nil
}

// assembleCases builds the case list for this run: the built-in suite or
// a case file, optionally expanded over a dataset and repeated.
func assembleCases(cfg *config.Config) ([]scenario.Case, error) {
	cases := scenario.Builtin()
	if cfg.CasesFile != "" {
		loaded, err := scenario.Load(cfg.CasesFile)
		if err != nil {
			return nil, err
		}
		cases = loaded
	}
	if cfg.Dataset.Path != "" {
		records, err := scenario.LoadRecords(cfg.Dataset.Path, cfg.Dataset.Type)
		if err != nil {
			return nil, err
		}
		cases = scenario.Expand(cases, records)
	}
	if cfg.Repeat > 1 {
		cases = scenario.Repeat(cases, cfg.Repeat)
	}
	return cases, nil
}

func planCalls(cases []scenario.Case) ([]plannedCall, error) {
	calls := make([]plannedCall, 0, len(cases))
	for i, cs := range cases {
		payload, err := cs.Payload()
		if err != nil {
			return nil, fmt.Errorf("case %d: %w", i+1, err)
		}
		calls = append(calls, plannedCall{
			label:   cs.Label(),
			path:    cs.Path(),
			payload: payload,
		})
	}
	return calls, nil
}

func (c *caller) call(ctx context.Context, pc plannedCall) {
	ctx, span := tracing.StartRequestSpan(ctx, c.tracer, pc.label, pc.path)

	req, err := c.builder.Build(ctx, pc.path, pc.payload)
	if err != nil {
		tracing.EndSpan(span, err)
		c.printer.Print(pc.label, string(pc.payload), "", err)
		return
	}
	if c.propagate {
		tracing.InjectHTTPHeaders(ctx, req.Header)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		tracing.EndSpan(span, err)
		c.printer.Print(pc.label, string(pc.payload), "", err)
		return
	}

	body, err := httpclient.ReadResult(resp)
	tracing.EndSpan(span, err, attribute.Int("http.status_code", resp.StatusCode))
	c.printer.Print(pc.label, string(pc.payload), body, err)
}
