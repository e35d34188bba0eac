package api

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	todosRoute       = "/api/todos"
	todosSpanName    = "api.todos.list"
	todosEventName   = "todos.request.metrics"
	todosEventDomain = "todo-api"

	severityInfo        = "INFO"
	severityInfoNumber  = 9
	severityError       = "ERROR"
	severityErrorNumber = 17
)

// todoRequestMetrics collects per-request timings and result attributes for
// the todo list route and emits them as one observability event: a span on
// the active tracer plus a structured log entry carrying the trace id.
type todoRequestMetrics struct {
	logger         *log.Logger
	span           trace.Span
	start          time.Time
	fetchDuration  time.Duration
	encodeDuration time.Duration
	statusFilter   string
	sortKey        string
	todosReturned  int
	errorStage     string
}

func newTodoRequestMetrics(ctx context.Context, logger *log.Logger) (*todoRequestMetrics, context.Context) {
	m := &todoRequestMetrics{logger: logger, start: time.Now()}
	spanCtx, span := otel.Tracer(todosEventDomain).Start(ctx, todosSpanName)
	m.span = span
	return m, spanCtx
}

func (m *todoRequestMetrics) ObserveFetch(duration time.Duration) {
	if duration <= 0 {
		return
	}
	m.fetchDuration = duration
}

func (m *todoRequestMetrics) ObserveEncode(duration time.Duration) {
	if duration <= 0 {
		return
	}
	m.encodeDuration = duration
}

func (m *todoRequestMetrics) SetQuery(statusFilter, sortKey string) {
	m.statusFilter = statusFilter
	m.sortKey = sortKey
}

func (m *todoRequestMetrics) SetTodosReturned(count int) {
	if count < 0 {
		count = 0
	}
	m.todosReturned = count
}

func (m *todoRequestMetrics) SetErrorStage(stage string) {
	if stage == "" {
		return
	}
	m.errorStage = stage
}

// Log finishes the span and writes the observability event. It must be
// called exactly once, after the response status is known.
func (m *todoRequestMetrics) Log(status int, err error) {
	if m == nil {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("http.route", todosRoute),
		attribute.Int("http.status_code", status),
		attribute.Float64("todo.todos.total_ms", durationToMillis(time.Since(m.start))),
		attribute.Int("todo.todos.returned", m.todosReturned),
	}
	if m.statusFilter != "" {
		attrs = append(attrs, attribute.String("todo.todos.status_filter", m.statusFilter))
	}
	if m.sortKey != "" {
		attrs = append(attrs, attribute.String("todo.todos.sort_key", m.sortKey))
	}
	if m.fetchDuration > 0 {
		attrs = append(attrs, attribute.Float64("todo.todos.fetch_ms", durationToMillis(m.fetchDuration)))
	}
	if m.encodeDuration > 0 {
		attrs = append(attrs, attribute.Float64("todo.todos.encode_ms", durationToMillis(m.encodeDuration)))
	}
	if m.errorStage != "" {
		attrs = append(attrs, attribute.String("todo.todos.error_stage", m.errorStage))
	}

	severityText := severityInfo
	severityNumber := severityInfoNumber
	if err != nil || status >= 500 {
		severityText = severityError
		severityNumber = severityErrorNumber
	}

	if m.span != nil {
		m.span.SetAttributes(attrs...)
		eventAttrs := append([]attribute.KeyValue{
			attribute.String("event.name", todosEventName),
			attribute.String("event.domain", todosEventDomain),
			attribute.String("severity_text", severityText),
			attribute.Int("severity_number", severityNumber),
		}, attrs...)
		m.span.AddEvent("observability.event", trace.WithAttributes(eventAttrs...))
		if err != nil {
			m.span.RecordError(err)
			m.span.SetStatus(codes.Error, err.Error())
		} else {
			m.span.SetStatus(codes.Ok, "")
		}
		m.span.End()
	}

	if m.logger == nil {
		return
	}
	attrMap := make(map[string]any, len(attrs))
	for _, kv := range attrs {
		attrMap[string(kv.Key)] = kv.Value.AsInterface()
	}
	fields := log.Fields{
		"event.name":      todosEventName,
		"event.domain":    todosEventDomain,
		"attributes":      attrMap,
		"severity_text":   severityText,
		"severity_number": severityNumber,
	}
	if m.span != nil {
		if sc := m.span.SpanContext(); sc.HasTraceID() {
			fields["trace_id"] = sc.TraceID().String()
		}
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	entry := m.logger.WithFields(fields)
	if severityNumber >= severityErrorNumber {
		entry.Error("observability.event")
	} else {
		entry.Info("observability.event")
	}
}

func durationToMillis(d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(d) / float64(time.Millisecond)
}
