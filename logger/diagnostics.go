package logger

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Kind classifies a layout diagnostic.
type Kind uint8

const (
	// MissingContainingBlock is emitted when a box has no containing block,
	// zero defaults are then used.
	MissingContainingBlock Kind = iota + 1
	// DuplicateRoot is emitted when a second box claims to be the root box.
	// The first claim is kept.
	DuplicateRoot
	// UnsupportedValue is emitted for CSS values the engine ignores.
	UnsupportedValue
	// UnexpectedChild is emitted when a box contains a child of a kind
	// it cannot lay out.
	UnexpectedChild
	// ClippedOut is emitted when a box is hidden because its clip region is empty.
	ClippedOut
)

func (k Kind) String() string {
	switch k {
	case MissingContainingBlock:
		return "missing-containing-block"
	case DuplicateRoot:
		return "duplicate-root"
	case UnsupportedValue:
		return "unsupported-value"
	case UnexpectedChild:
		return "unexpected-child"
	case ClippedOut:
		return "clipped-out"
	default:
		return fmt.Sprintf("<kind %d>", k)
	}
}

// Event is a structured diagnostic.
type Event struct {
	Kind    Kind
	Box     int    // identifier of the box in its tree, or -1
	Tag     string // tag of the source element, if any
	Message string
	Run     uuid.UUID // identifies the layout run which emitted the event
}

func (e Event) String() string {
	return fmt.Sprintf("%s (box %d <%s>): %s", e.Kind, e.Box, e.Tag, e.Message)
}

// Sink receives the diagnostics emitted during layout.
type Sink interface {
	Emit(Event)
}

// Default is the sink used when none is provided : events are
// written to [WarningLogger].
var Default Sink = warningSink{}

type warningSink struct{}

func (warningSink) Emit(e Event) {
	WarningLogger.Warnw(e.Message,
		"kind", e.Kind.String(), "box", e.Box, "tag", e.Tag, "run", e.Run.String())
}

// ZapSink writes the events to a zap logger.
type ZapSink struct {
	log *zap.Logger
}

func NewZapSink(log *zap.Logger) ZapSink {
	if log == nil {
		log = zap.NewNop()
	}
	return ZapSink{log: log.Named("layout")}
}

func (s ZapSink) Emit(e Event) {
	s.log.Warn(e.Message,
		zap.Stringer("kind", e.Kind),
		zap.Int("box", e.Box),
		zap.String("tag", e.Tag),
		zap.Stringer("run", e.Run),
	)
}

// Collector stores the events, which is useful for tests and
// for callers wanting to report all diagnostics at once.
type Collector struct {
	Events []Event
}

func (c *Collector) Emit(e Event) { c.Events = append(c.Events, e) }

// Count returns the number of events of the given kind.
func (c *Collector) Count(kind Kind) int {
	n := 0
	for _, e := range c.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Tee forwards the events to all the given sinks.
type Tee []Sink

func (t Tee) Emit(e Event) {
	for _, s := range t {
		s.Emit(e)
	}
}
