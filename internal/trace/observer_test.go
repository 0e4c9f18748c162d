package trace

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"flashstack/internal/deck"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newRecordingProvider(t *testing.T) (*Provider, *tracetest.SpanRecorder) {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	p, err := Setup(context.Background(), Config{}, sdktrace.WithSpanProcessor(rec))
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Shutdown(context.Background()) })
	return p, rec
}

func spanNames(spans []sdktrace.ReadOnlySpan) []string {
	names := make([]string, len(spans))
	for i, s := range spans {
		names[i] = s.Name()
	}
	return names
}

func attrValue(s sdktrace.ReadOnlySpan, key attribute.Key) (attribute.Value, bool) {
	for _, kv := range s.Attributes() {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestSetup_NoEndpointDoesNotExport(t *testing.T) {
	p, err := Setup(context.Background(), Config{})
	require.NoError(t, err)
	assert.False(t, p.Exporting())
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318")
	t.Setenv("OTEL_SERVICE_NAME", "")

	cfg := ConfigFromEnv()
	assert.Equal(t, "localhost:4318", cfg.Endpoint)
	assert.Equal(t, DefaultServiceName, cfg.ServiceName)
	assert.True(t, cfg.Enabled())
}

// collector is an OTLP/HTTP endpoint that records request paths.
type collector struct {
	mu    sync.Mutex
	paths []string
}

func newCollector(t *testing.T) (*collector, *httptest.Server) {
	t.Helper()
	c := &collector{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.mu.Lock()
		c.paths = append(c.paths, r.Method+" "+r.URL.Path)
		c.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)
	return c, srv
}

func (c *collector) requests() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.paths...)
}

func exportOneSpan(t *testing.T, cfg Config) {
	t.Helper()
	p, err := Setup(context.Background(), cfg)
	require.NoError(t, err)
	require.True(t, p.Exporting())

	_, span := p.Tracer().Start(context.Background(), "deck.flip")
	span.End()
	require.NoError(t, p.Shutdown(context.Background()))
}

func TestSetup_ExportsToEndpointURL(t *testing.T) {
	c, srv := newCollector(t)
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", srv.URL)
	t.Setenv("OTEL_SERVICE_NAME", "")

	exportOneSpan(t, ConfigFromEnv())
	assert.Equal(t, []string{"POST /v1/traces"}, c.requests())
}

func TestSetup_ExportsToEndpointURLWithBasePath(t *testing.T) {
	c, srv := newCollector(t)
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	exportOneSpan(t, Config{Endpoint: srv.URL + "/otlp/"})
	assert.Equal(t, []string{"POST /otlp/v1/traces"}, c.requests())
}

func TestSetup_ExportsToHostPort(t *testing.T) {
	c, srv := newCollector(t)
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	exportOneSpan(t, Config{Endpoint: strings.TrimPrefix(srv.URL, "http://"), Insecure: true})
	assert.Equal(t, []string{"POST /v1/traces"}, c.requests())
}

func TestSetup_RejectsBadEndpointURL(t *testing.T) {
	for _, endpoint := range []string{"grpc://localhost:4317", "http://", "http://local host:4318"} {
		_, err := Setup(context.Background(), Config{Endpoint: endpoint})
		assert.Error(t, err, endpoint)
	}
}

func TestProvider_NilShutdown(t *testing.T) {
	var p *Provider
	assert.NoError(t, p.Shutdown(context.Background()))
	assert.False(t, p.Exporting())
}

func TestTracingObserver_SpanPerOperation(t *testing.T) {
	p, rec := newRecordingProvider(t)
	obs := NewTracingObserver(p.Tracer())
	s := deck.NewSeeded(deck.WithObserver(obs))

	s.Next()
	s.Flip()
	require.NoError(t, s.Select(3))
	s.Add(deck.Draft{Question: "Q", Answer: "A"})
	s.Add(deck.Draft{Question: "", Answer: "A"})
	s.Delete(2)
	obs.End()

	spans := rec.Ended()
	assert.Equal(t, []string{
		"deck.navigate",
		"deck.flip",
		"deck.select",
		"deck.add",
		"deck.add",
		"deck.delete",
		"deck.session",
	}, spanNames(spans))

	session := spans[len(spans)-1]
	ops, ok := attrValue(session, "deck.operations")
	require.True(t, ok)
	assert.Equal(t, int64(6), ops.AsInt64())

	for _, sp := range spans[:len(spans)-1] {
		assert.Equal(t, session.SpanContext().SpanID(), sp.Parent().SpanID(), sp.Name())
		assert.Equal(t, session.SpanContext().TraceID(), sp.SpanContext().TraceID())
	}

	nav := spans[0]
	to, _ := attrValue(nav, AttrIndex)
	assert.Equal(t, int64(1), to.AsInt64())

	added := spans[3]
	id, _ := attrValue(added, AttrCardID)
	assert.Equal(t, int64(6), id.AsInt64())
	assert.Equal(t, codes.Ok, added.Status().Code)

	rejected := spans[4]
	assert.Equal(t, codes.Error, rejected.Status().Code)
	assert.Equal(t, "blank draft", rejected.Status().Description)
}

func TestTracingObserver_AfterEndIsSilent(t *testing.T) {
	p, rec := newRecordingProvider(t)
	obs := NewTracingObserver(p.Tracer())
	obs.End()
	obs.End()

	obs.OnFlip(true)
	assert.Equal(t, []string{"deck.session"}, spanNames(rec.Ended()))
}
