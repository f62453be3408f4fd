package instrumentation

import (
	"context"
	"testing"
	"time"
)

func newTestProvider(t *testing.T, detailedLabels bool) (*Provider, context.Context) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	provider, err := NewProvider(ctx, Config{
		ServiceName:     "test-service",
		ServiceVersion:  "1.0.0",
		Enabled:         true,
		MetricsExporter: "prometheus",
		TracingExporter: "none",
		DetailedLabels:  detailedLabels,
	})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	t.Cleanup(func() { _ = provider.Shutdown(ctx) })

	return provider, ctx
}

func TestMetrics_RecordHTTPRequest(t *testing.T) {
	provider, ctx := newTestProvider(t, false)

	metrics := provider.Metrics()
	if metrics == nil {
		t.Fatal("expected metrics to be non-nil")
	}

	// Should not panic
	metrics.RecordHTTPRequest(ctx, "GET", "/sse", 200, 100*time.Millisecond)
	metrics.RecordHTTPRequest(ctx, "POST", "/message", 500, 50*time.Millisecond)
}

func TestMetrics_RecordGoogleAPIOperation(t *testing.T) {
	provider, ctx := newTestProvider(t, false)
	metrics := provider.Metrics()

	// Should not panic
	metrics.RecordGoogleAPIOperation(ctx, ServiceGmail, OperationSend, StatusSuccess, 200*time.Millisecond)
	metrics.RecordGoogleAPIOperation(ctx, ServiceCalendar, OperationCreate, StatusError, 500*time.Millisecond)
	metrics.RecordGoogleAPIOperation(ctx, ServiceSheets, OperationGet, StatusSuccess, 100*time.Millisecond)
}

func TestMetrics_RecordCLIInvocation(t *testing.T) {
	provider, ctx := newTestProvider(t, false)
	metrics := provider.Metrics()

	// Should not panic
	metrics.RecordCLIInvocation(ctx, ServiceGmail, StatusSuccess, 800*time.Millisecond)
	metrics.RecordCLIInvocation(ctx, ServiceMaps, StatusError, 2*time.Second)
}

func TestMetrics_RecordOAuthAuth(t *testing.T) {
	provider, ctx := newTestProvider(t, false)
	metrics := provider.Metrics()

	// Should not panic
	metrics.RecordOAuthAuth(ctx, OAuthResultSuccess)
	metrics.RecordOAuthAuth(ctx, OAuthResultFailure)
}

func TestMetrics_RecordToolInvocation(t *testing.T) {
	provider, ctx := newTestProvider(t, false)
	metrics := provider.Metrics()

	// Should not panic
	metrics.RecordToolInvocation(ctx, "gmail_send", BackendGogcli, StatusSuccess, 100*time.Millisecond)
	metrics.RecordToolInvocation(ctx, "calendar_create_event", BackendAPI, StatusError, 500*time.Millisecond)
}

func TestMetrics_RecordToolInvocationWithAccount(t *testing.T) {
	provider, ctx := newTestProvider(t, false)
	metrics := provider.Metrics()

	// Account label dropped without detailed labels, should not panic
	metrics.RecordToolInvocationWithAccount(ctx, "gmail_send", BackendGogcli, StatusSuccess, "work", 100*time.Millisecond)
}

func TestMetrics_RecordToolInvocationWithAccount_DetailedLabels(t *testing.T) {
	provider, ctx := newTestProvider(t, true)
	metrics := provider.Metrics()

	// Account label included, should not panic
	metrics.RecordToolInvocationWithAccount(ctx, "gmail_send", BackendGogcli, StatusSuccess, "work", 100*time.Millisecond)
}

func TestMetrics_ActiveSessions(t *testing.T) {
	provider, ctx := newTestProvider(t, false)
	metrics := provider.Metrics()

	// Should not panic
	metrics.IncrementActiveSessions(ctx)
	metrics.IncrementActiveSessions(ctx)
	metrics.DecrementActiveSessions(ctx)
}

func TestMetrics_NoOp_WhenDisabled(t *testing.T) {
	ctx := context.Background()

	provider, err := NewProvider(ctx, Config{
		ServiceName:    "test-service",
		ServiceVersion: "1.0.0",
		Enabled:        false,
	})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}

	metrics := provider.Metrics()
	if metrics == nil {
		t.Fatal("expected metrics to be non-nil even when disabled")
	}

	// All these should not panic even with nil underlying metrics
	metrics.RecordHTTPRequest(ctx, "GET", "/sse", 200, 100*time.Millisecond)
	metrics.RecordGoogleAPIOperation(ctx, ServiceGmail, OperationList, StatusSuccess, 200*time.Millisecond)
	metrics.RecordCLIInvocation(ctx, ServiceGmail, StatusSuccess, 200*time.Millisecond)
	metrics.RecordOAuthAuth(ctx, OAuthResultSuccess)
	metrics.RecordToolInvocation(ctx, "test_tool", BackendGogcli, StatusSuccess, 100*time.Millisecond)
	metrics.RecordToolInvocationWithAccount(ctx, "test_tool", BackendAPI, StatusSuccess, "work", 100*time.Millisecond)
	metrics.IncrementActiveSessions(ctx)
	metrics.DecrementActiveSessions(ctx)
}
