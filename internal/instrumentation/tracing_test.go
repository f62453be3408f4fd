package instrumentation

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSpanAttributeBuilder(t *testing.T) {
	builder := NewSpanAttributeBuilder().
		WithTool("gmail_send").
		WithBackend(BackendAPI).
		WithService(ServiceGmail).
		WithOperation(OperationSend).
		WithAccount("work").
		WithResource("message", "12345").
		WithReadOnly(false)

	attrs := builder.Build()

	if len(attrs) != 8 {
		t.Errorf("expected 8 attributes, got %d", len(attrs))
	}

	attrMap := make(map[string]interface{})
	for _, attr := range attrs {
		attrMap[string(attr.Key)] = attr.Value.AsInterface()
	}

	if attrMap[SpanAttrTool] != "gmail_send" {
		t.Errorf("expected tool 'gmail_send', got %v", attrMap[SpanAttrTool])
	}
	if attrMap[SpanAttrBackend] != BackendAPI {
		t.Errorf("expected backend 'api', got %v", attrMap[SpanAttrBackend])
	}
	if attrMap[SpanAttrService] != ServiceGmail {
		t.Errorf("expected service 'gmail', got %v", attrMap[SpanAttrService])
	}
	if attrMap[SpanAttrOperation] != OperationSend {
		t.Errorf("expected operation 'send', got %v", attrMap[SpanAttrOperation])
	}
	if attrMap[SpanAttrAccount] != "work" {
		t.Errorf("expected account 'work', got %v", attrMap[SpanAttrAccount])
	}
	if attrMap[SpanAttrResourceType] != "message" {
		t.Errorf("expected resource type 'message', got %v", attrMap[SpanAttrResourceType])
	}
	if attrMap[SpanAttrResourceID] != "12345" {
		t.Errorf("expected resource id '12345', got %v", attrMap[SpanAttrResourceID])
	}
	if attrMap[SpanAttrReadOnly] != false {
		t.Errorf("expected read_only false, got %v", attrMap[SpanAttrReadOnly])
	}
}

func TestSpanAttributeBuilder_EmptyValues(t *testing.T) {
	// Empty account, backend, and resource should not be added
	builder := NewSpanAttributeBuilder().
		WithTool("test_tool").
		WithBackend("").
		WithAccount("").
		WithResource("", "")

	attrs := builder.Build()

	if len(attrs) != 1 {
		t.Errorf("expected 1 attribute (only tool), got %d", len(attrs))
	}
}

func newTracingTestProvider(t *testing.T) (*Provider, context.Context) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	provider, err := NewProvider(ctx, Config{
		ServiceName:     "test-service",
		ServiceVersion:  "1.0.0",
		Enabled:         true,
		MetricsExporter: "prometheus",
		TracingExporter: "none",
	})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	t.Cleanup(func() { _ = provider.Shutdown(ctx) })

	return provider, ctx
}

func TestStartSpan(t *testing.T) {
	_, ctx := newTracingTestProvider(t)

	spanCtx, span := StartSpan(ctx, "test-span")
	defer span.End()

	if spanCtx == nil {
		t.Error("expected context to be non-nil")
	}
	if span == nil {
		t.Error("expected span to be non-nil")
	}
}

func TestStartToolSpan(t *testing.T) {
	_, ctx := newTracingTestProvider(t)

	spanCtx, span := StartToolSpan(ctx, "gmail_send")
	defer span.End()

	if spanCtx == nil {
		t.Error("expected context to be non-nil")
	}
	if span == nil {
		t.Error("expected span to be non-nil")
	}
}

func TestStartGoogleAPISpan(t *testing.T) {
	_, ctx := newTracingTestProvider(t)

	spanCtx, span := StartGoogleAPISpan(ctx, ServiceGmail, OperationList)
	defer span.End()

	if spanCtx == nil {
		t.Error("expected context to be non-nil")
	}
	if span == nil {
		t.Error("expected span to be non-nil")
	}
}

func TestStartCLISpan(t *testing.T) {
	_, ctx := newTracingTestProvider(t)

	spanCtx, span := StartCLISpan(ctx, ServiceMaps, "geocode")
	defer span.End()

	if spanCtx == nil {
		t.Error("expected context to be non-nil")
	}
	if span == nil {
		t.Error("expected span to be non-nil")
	}
}

func TestSetSpanError(t *testing.T) {
	_, ctx := newTracingTestProvider(t)

	_, span := StartSpan(ctx, "test-span")

	// Should not panic
	SetSpanError(span, errors.New("test error"))
	SetSpanError(span, nil) // nil error should be safe
	span.End()
}

func TestSetSpanSuccess(t *testing.T) {
	_, ctx := newTracingTestProvider(t)

	_, span := StartSpan(ctx, "test-span")

	// Should not panic
	SetSpanSuccess(span)
	span.End()
}

func TestAddSpanEvent(t *testing.T) {
	_, ctx := newTracingTestProvider(t)

	_, span := StartSpan(ctx, "test-span")

	// Should not panic
	AddSpanEvent(span, "test-event")
	span.End()
}

func TestGetTraceID_NoSpan(t *testing.T) {
	ctx := context.Background()
	if traceID := GetTraceID(ctx); traceID != "" {
		t.Errorf("expected empty trace ID for context without span, got %q", traceID)
	}
}

func TestGetSpanID_NoSpan(t *testing.T) {
	ctx := context.Background()
	if spanID := GetSpanID(ctx); spanID != "" {
		t.Errorf("expected empty span ID for context without span, got %q", spanID)
	}
}
