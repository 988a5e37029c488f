// Package tracing records the operations observed by an
// events.EventFiringWebDriver as OpenTelemetry spans.
package tracing

import (
	"context"
	"strings"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/wanmail/selenium/v2"
	"github.com/wanmail/selenium/v2/events"
)

// Attribute keys set on spans.
const (
	URLKey          = attribute.Key("selenium.url")
	LocatorByKey    = attribute.Key("selenium.locator.by")
	LocatorValueKey = attribute.Key("selenium.locator.value")
	ScopeKey        = attribute.Key("selenium.scope")
	ScriptAsyncKey  = attribute.Key("selenium.script.async")
	ValueLengthKey  = attribute.Key("selenium.value.length")
	MethodKey       = attribute.Key("selenium.method")
	ErrorCodeKey    = attribute.Key("selenium.error.code")
)

// Option configures a Listener.
type Option func(*Listener)

// WithParent starts spans as children of the span in ctx.
func WithParent(ctx context.Context) Option {
	return func(l *Listener) {
		l.parent = ctx
	}
}

// Listener implements events.Listener. Each paired operation becomes a span
// started by its before notification and ended by its after or failure
// notification. Failures of unpaired calls become spans of their own.
type Listener struct {
	tracer trace.Tracer
	parent context.Context

	mu    sync.Mutex
	spans map[events.Args]trace.Span
}

// NewListener returns a listener creating spans with tracer.
func NewListener(tracer trace.Tracer, opts ...Option) *Listener {
	l := &Listener{
		tracer: tracer,
		parent: context.Background(),
		spans:  make(map[events.Args]trace.Span),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Open returns the number of spans started and not yet ended. A span stays
// open when a handler subscribed after the listener rejects the before
// notification, since the operation then never runs.
func (l *Listener) Open() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.spans)
}

// OnEvent implements events.Listener.
func (l *Listener) OnEvent(kind events.Kind, args events.Args) error {
	switch kind.Phase() {
	case events.Before:
		l.start(kind, args)
	case events.After:
		l.end(args)
	case events.Failure:
		if e, ok := args.(*events.ExceptionArgs); ok {
			l.fail(e)
		}
	}
	return nil
}

func spanName(operation string) string {
	return "selenium." + strings.ReplaceAll(operation, " ", "_")
}

func (l *Listener) start(kind events.Kind, args events.Args) {
	_, span := l.tracer.Start(l.parent, spanName(kind.Operation()),
		trace.WithAttributes(attributes(args)...),
		trace.WithSpanKind(trace.SpanKindClient))
	l.mu.Lock()
	l.spans[args] = span
	l.mu.Unlock()
}

func (l *Listener) take(args events.Args) trace.Span {
	l.mu.Lock()
	defer l.mu.Unlock()
	span, ok := l.spans[args]
	if !ok {
		return nil
	}
	delete(l.spans, args)
	return span
}

func (l *Listener) end(args events.Args) {
	span := l.take(events.Origin(args))
	if span == nil {
		return
	}
	if sr, ok := args.(*events.ShadowRootArgs); ok && sr.ShadowRoot() != nil {
		span.SetAttributes(attribute.Bool("selenium.shadow_root.found", true))
	}
	span.SetStatus(codes.Ok, "")
	span.End()
}

func (l *Listener) fail(e *events.ExceptionArgs) {
	var span trace.Span
	if op := e.Operation(); op != nil {
		span = l.take(op)
	}
	if span == nil {
		_, span = l.tracer.Start(l.parent, spanName(e.Method()), trace.WithSpanKind(trace.SpanKindClient))
	}
	span.SetAttributes(MethodKey.String(e.Method()))
	if code := selenium.ErrorCode(e.Err()); code != "" {
		span.SetAttributes(ErrorCodeKey.String(code))
	}
	span.RecordError(e.Err())
	span.SetStatus(codes.Error, e.Err().Error())
	span.End()
}

func attributes(args events.Args) []attribute.KeyValue {
	switch a := args.(type) {
	case *events.NavigationArgs:
		if a.URL() != "" {
			return []attribute.KeyValue{URLKey.String(a.URL())}
		}
	case *events.ElementValueArgs:
		n := -1
		if v := a.Value(); v != nil {
			n = len(*v)
		}
		return []attribute.KeyValue{ValueLengthKey.Int(n)}
	case *events.FindElementArgs:
		scope := "driver"
		switch {
		case a.Element() != nil:
			scope = "element"
		case a.ShadowRoot() != nil:
			scope = "shadow root"
		}
		return []attribute.KeyValue{
			LocatorByKey.String(a.By()),
			LocatorValueKey.String(a.Value()),
			ScopeKey.String(scope),
		}
	case *events.ScriptArgs:
		return []attribute.KeyValue{ScriptAsyncKey.Bool(a.Async())}
	}
	return nil
}
