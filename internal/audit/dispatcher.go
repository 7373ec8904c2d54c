package audit

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Event struct {
	GimnasioID uuid.UUID
	Action     string
	Entity     string
	EntityID   string
	Metadata   any
}

// Sink recibe los eventos ya fuera del request.
type Sink interface {
	Log(gimnasioID uuid.UUID, action, entity, entityID string, metadata any) error
}

// Dispatcher escribe auditoría fuera del request. La cola tiene buffer fijo
// y descarta si se llena; la auditoría nunca bloquea la API.
type Dispatcher struct {
	sink  Sink
	log   *zap.Logger
	queue chan Event
}

func NewDispatcher(sink Sink, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		log:   log,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.sink.Log(
			ev.GimnasioID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.log.Warn("audit write failed", zap.Error(err))
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event",
			zap.String("action", ev.Action))
	}
}
