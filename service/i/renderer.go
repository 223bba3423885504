package i

import (
	"github.com/beka-birhanu/vinom-pursuit/game"
	"github.com/google/uuid"
)

// Snapshot is the state of a session between two ticks.
type Snapshot struct {
	SessionID uuid.UUID
	Strategy  string
	State     game.State
	Status    game.Status
}

// Renderer presents snapshots to the user. It only ever sees completed ticks.
type Renderer interface {
	Render(Snapshot) error
}
