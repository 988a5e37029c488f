package events

import (
	"github.com/sirupsen/logrus"
)

// LogListener logs notifications. Before and after notifications are
// logged at debug level, failures at warning level.
type LogListener struct {
	logger logrus.FieldLogger
}

// NewLogListener returns a listener logging to logger.
func NewLogListener(logger logrus.FieldLogger) *LogListener {
	return &LogListener{logger: logger}
}

// OnEvent implements Listener.
func (l *LogListener) OnEvent(kind Kind, args Args) error {
	logger := l.logger.WithFields(Fields(kind, args))
	if e, ok := args.(*ExceptionArgs); ok {
		logger.WithError(e.Err()).Warn("WebDriver call failed")
		return nil
	}
	logger.Debug(kind.String())
	return nil
}

// Fields describes a notification as log fields.
func Fields(kind Kind, args Args) logrus.Fields {
	f := logrus.Fields{
		"event": kind.String(),
		"phase": kind.Phase().String(),
	}
	if op := kind.Operation(); op != "" {
		f["operation"] = op
	}
	switch a := args.(type) {
	case *NavigationArgs:
		if a.URL() != "" {
			f["url"] = a.URL()
		}
	case *ElementValueArgs:
		if v := a.Value(); v != nil {
			f["value"] = *v
		} else {
			f["value"] = nil
		}
	case *FindElementArgs:
		f["by"] = a.By()
		f["selector"] = a.Value()
		switch {
		case a.Element() != nil:
			f["scope"] = "element"
		case a.ShadowRoot() != nil:
			f["scope"] = "shadow root"
		default:
			f["scope"] = "driver"
		}
	case *ScriptArgs:
		f["script"] = a.Script()
		f["async"] = a.Async()
	case *ExceptionArgs:
		f["method"] = a.Method()
		if op := a.OperationName(); op != "" {
			f["failed_operation"] = op
		}
	}
	return f
}
