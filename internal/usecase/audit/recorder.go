package audit

import (
	"guardbot/internal/app/events"
	"guardbot/internal/domain"
)

// Recorder publishes command outcomes onto the bus. Publishing never
// blocks, so a slow consumer cannot stall dispatch.
type Recorder struct {
	bus *events.Bus
}

func NewRecorder(bus *events.Bus) *Recorder {
	return &Recorder{bus: bus}
}

func (r *Recorder) Record(entry domain.AuditEntry) {
	if r == nil || r.bus == nil {
		return
	}
	r.bus.Publish(events.TopicCommandAudit, events.NewCommandAuditDTO(entry))
}
