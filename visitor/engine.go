package visitor

import (
	"github.com/google/uuid"

	"github.com/hupe1980/visitmesh/lineage"
	"github.com/hupe1980/visitmesh/logging"
	"github.com/hupe1980/visitmesh/typeid"
)

// Visitable is any dispatch participant. Entities expose their ancestor
// tables (mutable and read-only probe orders) plus a typed view per listed
// ancestor key. Implementations live in the entity package; custom entity
// kinds only need to satisfy this interface.
type Visitable interface {
	// Lineage returns the mutable probe order, most derived first.
	Lineage() lineage.Lineage
	// ReadOnlyLineage returns the read-only probe order.
	ReadOnlyLineage() lineage.Lineage
	// View returns the typed sub-object backing key, if key is listed.
	// The returned value is a *T for the type T the key identifies.
	View(key typeid.Key) (any, bool)
	// TypeName returns the entity's display name for diagnostics.
	TypeName() string
}

// Options configures an Engine.
type Options struct {
	// Logger receives per-dispatch debug records (invocation ID, entity,
	// matched key). Defaults to NoOpLogger if nil.
	Logger logging.Logger
}

// Engine walks entity ancestor tables against visitor bundles. It is
// stateless apart from its logger: safe for concurrent use and fully
// reentrant. The zero-configuration engine (NewEngine with no options) is
// what the package-level dispatch functions use.
type Engine struct {
	logger logging.Logger
	trace  bool
}

// NewEngine creates an Engine with optional overrides.
func NewEngine(optFns ...func(o *Options)) *Engine {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	_, noop := opts.Logger.(logging.NoOpLogger)
	return &Engine{logger: opts.Logger, trace: !noop}
}

var defaultEngine = NewEngine()

// Dispatch scans target's mutable ancestor table and invokes the first
// handled ancestor. It returns IncompatibleVisitorError if nothing matches,
// or the handler's own error.
func (e *Engine) Dispatch(target Visitable, v *Visitor) error {
	return e.dispatch(target, v, target.Lineage())
}

// DispatchReadOnly is Dispatch over the read-only ancestor table. Only
// handlers declared with ForReadOnly can match.
func (e *Engine) DispatchReadOnly(target Visitable, v *Visitor) error {
	return e.dispatch(target, v, target.ReadOnlyLineage())
}

// DispatchRecursive scans target's mutable ancestor table and invokes every
// handled ancestor until one signals stop. A scan that matches nothing
// returns nil.
func (e *Engine) DispatchRecursive(target Visitable, v *RecursiveVisitor) error {
	return e.dispatchRecursive(target, v, target.Lineage())
}

// DispatchRecursiveReadOnly is DispatchRecursive over the read-only table.
func (e *Engine) DispatchRecursiveReadOnly(target Visitable, v *RecursiveVisitor) error {
	return e.dispatchRecursive(target, v, target.ReadOnlyLineage())
}

func (e *Engine) dispatch(target Visitable, v *Visitor, probe lineage.Lineage) error {
	var id string
	if e.trace {
		id = uuid.NewString()
		e.logger.Debug("dispatch started", "invocation_id", id, "entity", target.TypeName(), "ancestors", probe.Len())
	}
	for _, key := range probe.Keys() {
		visit, ok := v.handlerFor(key)
		if !ok {
			continue
		}
		view, ok := target.View(key)
		if !ok {
			continue
		}
		if e.trace {
			e.logger.Debug("dispatch matched", "invocation_id", id, "entity", target.TypeName(), "key", key.String())
		}
		return visit(view)
	}
	if e.trace {
		e.logger.Debug("dispatch exhausted ancestor table", "invocation_id", id, "entity", target.TypeName())
	}
	return NewIncompatibleVisitorError(target.TypeName())
}

func (e *Engine) dispatchRecursive(target Visitable, v *RecursiveVisitor, probe lineage.Lineage) error {
	var id string
	if e.trace {
		id = uuid.NewString()
		e.logger.Debug("recursive dispatch started", "invocation_id", id, "entity", target.TypeName(), "ancestors", probe.Len())
	}
	for _, key := range probe.Keys() {
		visit, ok := v.handlerFor(key)
		if !ok {
			continue
		}
		view, ok := target.View(key)
		if !ok {
			continue
		}
		stop, err := visit(view)
		if err != nil {
			return err
		}
		if stop {
			if e.trace {
				e.logger.Debug("recursive dispatch stopped", "invocation_id", id, "entity", target.TypeName(), "key", key.String())
			}
			return nil
		}
	}
	return nil
}

// Dispatch runs plain mutable dispatch on the default engine.
func Dispatch(target Visitable, v *Visitor) error {
	return defaultEngine.Dispatch(target, v)
}

// DispatchReadOnly runs plain read-only dispatch on the default engine.
func DispatchReadOnly(target Visitable, v *Visitor) error {
	return defaultEngine.DispatchReadOnly(target, v)
}

// DispatchRecursive runs recursive mutable dispatch on the default engine.
func DispatchRecursive(target Visitable, v *RecursiveVisitor) error {
	return defaultEngine.DispatchRecursive(target, v)
}

// DispatchRecursiveReadOnly runs recursive read-only dispatch on the default
// engine.
func DispatchRecursiveReadOnly(target Visitable, v *RecursiveVisitor) error {
	return defaultEngine.DispatchRecursiveReadOnly(target, v)
}
