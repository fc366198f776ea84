package ability

import (
	"errors"
	"time"

	"github.com/lixenwraith/arena/trajectory"
)

// ErrCastDirection is raised (as a panic) when content reaching activation
// requests no direction source; content validation rejects it at load
var ErrCastDirection = errors.New("ability: cast direction set is empty")

// Data is the immutable, shared configuration of one ability kind
// Referenced by ID from loadouts; never mutated after load
type Data struct {
	ID   string
	Kind Type

	BufferWindow time.Duration
	Delay        time.Duration
	Duration     time.Duration
	Cooldown     time.Duration

	AllowConcurrent    bool
	PreserveVelocity   bool
	CooldownAfterDelay bool
	CastDirection      CastDirection

	// Per-kind tunables, Q32.32; zero means unused by the kind
	Range           int64
	Radius          int64
	Impulse         int64
	Lift            int64
	Speed           int64
	SpeedMultiplier int64
	Stun            time.Duration
	Damage          int

	Trajectory trajectory.Profile
	Payload    trajectory.PayloadProfile
}

// Catalog resolves ability data by id
// Implementations must be deterministic and side-effect free
type Catalog interface {
	Lookup(id string) (*Data, bool)
}
