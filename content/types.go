package content

import "github.com/lixenwraith/arena/vmath"

// Document is one content file: ability data, named loadouts and an optional arena layout
type Document struct {
	Abilities []AbilitySpec       `yaml:"abilities" json:"abilities" jsonschema:"description=Ability data entries referenced by id from loadouts"`
	Loadouts  map[string][]string `yaml:"loadouts,omitempty" json:"loadouts,omitempty" jsonschema:"description=Named lists of ability data ids"`
	Arena     *ArenaSpec          `yaml:"arena,omitempty" json:"arena,omitempty" jsonschema:"description=Actor and ball placement for the sandbox"`
}

// AbilitySpec is the authored form of ability.Data
type AbilitySpec struct {
	ID   string `yaml:"id" json:"id" jsonschema:"required,minLength=1,pattern=^[a-z0-9_-]+$,description=Designer facing identifier"`
	Kind string `yaml:"kind" json:"kind" jsonschema:"required,enum=attack,enum=block,enum=dash,enum=jump,enum=hook,enum=throw_short,enum=throw_long,enum=bomb,enum=trap,enum=speed_boost,enum=stealth"`

	BufferWindow Duration `yaml:"buffer_window,omitempty" json:"buffer_window,omitempty"`
	Delay        Duration `yaml:"delay,omitempty" json:"delay,omitempty"`
	Duration     Duration `yaml:"duration,omitempty" json:"duration,omitempty"`
	Cooldown     Duration `yaml:"cooldown,omitempty" json:"cooldown,omitempty"`

	AllowConcurrent    bool     `yaml:"allow_concurrent,omitempty" json:"allow_concurrent,omitempty"`
	PreserveVelocity   bool     `yaml:"preserve_velocity,omitempty" json:"preserve_velocity,omitempty"`
	CooldownAfterDelay bool     `yaml:"cooldown_after_delay,omitempty" json:"cooldown_after_delay,omitempty"`
	CastDirection      []string `yaml:"cast_direction" json:"cast_direction" jsonschema:"required,minItems=1,description=Direction sources tried in order aim then move then facing"`

	Range           Fixed    `yaml:"range,omitempty" json:"range,omitempty"`
	Radius          Fixed    `yaml:"radius,omitempty" json:"radius,omitempty"`
	Impulse         Fixed    `yaml:"impulse,omitempty" json:"impulse,omitempty"`
	Lift            Fixed    `yaml:"lift,omitempty" json:"lift,omitempty"`
	Speed           Fixed    `yaml:"speed,omitempty" json:"speed,omitempty"`
	SpeedMultiplier Fixed    `yaml:"speed_multiplier,omitempty" json:"speed_multiplier,omitempty"`
	Stun            Duration `yaml:"stun,omitempty" json:"stun,omitempty"`
	Damage          int      `yaml:"damage,omitempty" json:"damage,omitempty" jsonschema:"minimum=0"`

	Trajectory *TrajectorySpec `yaml:"trajectory,omitempty" json:"trajectory,omitempty"`
	Payload    *PayloadSpec    `yaml:"payload,omitempty" json:"payload,omitempty"`
}

// TrajectorySpec overrides trajectory defaults; omitted fields keep the default
type TrajectorySpec struct {
	MinDistance     *Fixed `yaml:"min_distance,omitempty" json:"min_distance,omitempty"`
	MaxDistance     *Fixed `yaml:"max_distance,omitempty" json:"max_distance,omitempty"`
	MinApex         *Fixed `yaml:"min_apex,omitempty" json:"min_apex,omitempty"`
	MaxApex         *Fixed `yaml:"max_apex,omitempty" json:"max_apex,omitempty"`
	SampleCount     *int   `yaml:"sample_count,omitempty" json:"sample_count,omitempty" jsonschema:"minimum=2"`
	Speed           *Fixed `yaml:"speed,omitempty" json:"speed,omitempty"`
	HandoffDistance *Fixed `yaml:"handoff_distance,omitempty" json:"handoff_distance,omitempty"`
	Mode            string `yaml:"mode,omitempty" json:"mode,omitempty" jsonschema:"enum=handoff,enum=simple"`
}

// PayloadSpec overrides payload defaults; omitted fields keep the default
type PayloadSpec struct {
	ExplosionRadius *Fixed    `yaml:"explosion_radius,omitempty" json:"explosion_radius,omitempty"`
	ContactRadius   *Fixed    `yaml:"contact_radius,omitempty" json:"contact_radius,omitempty"`
	Knockback       *Fixed    `yaml:"knockback,omitempty" json:"knockback,omitempty"`
	KnockbackLift   *Fixed    `yaml:"knockback_lift,omitempty" json:"knockback_lift,omitempty"`
	LifeTime        *Duration `yaml:"life_time,omitempty" json:"life_time,omitempty"`
	FuseTime        *Duration `yaml:"fuse_time,omitempty" json:"fuse_time,omitempty"`
	Stun            *Duration `yaml:"stun,omitempty" json:"stun,omitempty"`
	Damage          *int      `yaml:"damage,omitempty" json:"damage,omitempty"`
}

// ArenaSpec places actors and the ball
type ArenaSpec struct {
	Actors []ActorSpec `yaml:"actors" json:"actors"`
	Ball   *Point      `yaml:"ball,omitempty" json:"ball,omitempty"`
}

// ActorSpec is one actor of the arena layout
type ActorSpec struct {
	Team     uint8  `yaml:"team" json:"team" jsonschema:"enum=1,enum=2"`
	Player   *int   `yaml:"player,omitempty" json:"player,omitempty" jsonschema:"description=Input slot; omitted for an idle dummy"`
	Position Point  `yaml:"position" json:"position"`
	Facing   Point  `yaml:"facing,omitempty" json:"facing,omitempty"`
	Loadout  string `yaml:"loadout" json:"loadout" jsonschema:"description=Name of a loadout"`
}

// Point is a world position in metres, Y up
type Point struct {
	X Fixed `yaml:"x" json:"x"`
	Y Fixed `yaml:"y,omitempty" json:"y,omitempty"`
	Z Fixed `yaml:"z" json:"z"`
}

// Vec3 converts to simulation coordinates
func (p Point) Vec3() vmath.Vec3 {
	return vmath.Vec3{X: int64(p.X), Y: int64(p.Y), Z: int64(p.Z)}
}
