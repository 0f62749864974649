package order

import (
	"time"

	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/kernel"
)

// TransitionRecord is one entry of the append-only audit trail. Exactly one
// record is produced per committed state transition; records are never edited
// or deleted. History is best-effort audit: a failed history write is logged
// but does not fail the transition that caused it.
type TransitionRecord struct {
	From    Status
	To      Status
	ActorID kernel.UUID
	Note    string
	At      time.Time
}
