// Package trace wires OpenTelemetry tracing for deck sessions.
//
// Spans are exported over OTLP/HTTP when OTEL_EXPORTER_OTLP_ENDPOINT is set.
// Without an endpoint the provider still records spans for any extra span
// processors (tests) but exports nothing.
package trace

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"strings"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// DefaultServiceName is reported when OTEL_SERVICE_NAME is unset.
const DefaultServiceName = "flashstack"

// InstrumentationName names the tracer used for deck spans.
const InstrumentationName = "flashstack/deck"

// tracesPath is appended to a base endpoint URL, as the OTLP exporters do
// for OTEL_EXPORTER_OTLP_ENDPOINT.
const tracesPath = "/v1/traces"

// Config selects the OTLP endpoint and service identity.
type Config struct {
	// Endpoint is a base URL such as http://localhost:4318, or a bare
	// host:port. Empty disables export.
	Endpoint    string
	ServiceName string
	Insecure    bool // bare host:port only; a URL's scheme decides TLS
}

// ConfigFromEnv reads the standard OTEL_* variables.
func ConfigFromEnv() Config {
	cfg := Config{
		Endpoint:    os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		ServiceName: os.Getenv("OTEL_SERVICE_NAME"),
		Insecure:    true, // local collectors rarely terminate TLS
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = DefaultServiceName
	}
	return cfg
}

// Enabled reports whether spans will leave the process.
func (c Config) Enabled() bool { return c.Endpoint != "" }

// Provider owns the SDK tracer provider and its exporter.
type Provider struct {
	provider  *sdktrace.TracerProvider
	exporting bool
}

// Setup builds a Provider. Extra options are appended after the exporter and
// resource, which lets tests attach an in-memory span recorder.
func Setup(ctx context.Context, cfg Config, extra ...sdktrace.TracerProviderOption) (*Provider, error) {
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = DefaultServiceName
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	opts := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}
	if cfg.Enabled() {
		clientOpts, err := exporterOptions(cfg)
		if err != nil {
			return nil, err
		}
		exporter, err := otlptracehttp.New(ctx, clientOpts...)
		if err != nil {
			return nil, fmt.Errorf("create otlp exporter for %s: %w", cfg.Endpoint, err)
		}
		opts = append(opts, sdktrace.WithBatcher(exporter))
	}
	opts = append(opts, extra...)

	return &Provider{
		provider:  sdktrace.NewTracerProvider(opts...),
		exporting: cfg.Enabled(),
	}, nil
}

// exporterOptions points the exporter at cfg.Endpoint. A URL keeps its scheme
// and gets the traces path appended; a bare host:port uses the default path.
func exporterOptions(cfg Config) ([]otlptracehttp.Option, error) {
	if !strings.Contains(cfg.Endpoint, "://") {
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cfg.Endpoint)}
		if cfg.Insecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		return opts, nil
	}
	u, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse otlp endpoint %q: %w", cfg.Endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("otlp endpoint %q: unsupported scheme %q", cfg.Endpoint, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("otlp endpoint %q: missing host", cfg.Endpoint)
	}
	u.Path = path.Join(u.Path, tracesPath)
	return []otlptracehttp.Option{otlptracehttp.WithEndpointURL(u.String())}, nil
}

// Exporting reports whether an OTLP exporter is attached.
func (p *Provider) Exporting() bool {
	return p != nil && p.exporting
}

// Tracer returns the tracer used for deck spans.
func (p *Provider) Tracer() oteltrace.Tracer {
	return p.provider.Tracer(InstrumentationName)
}

// Shutdown flushes pending spans and closes the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	return p.provider.Shutdown(ctx)
}
