package content

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/lixenwraith/arena/ability"
	"github.com/lixenwraith/arena/trajectory"
)

var (
	ErrUnknownKind          = errors.New("unknown ability kind")
	ErrInvalidCastDirection = errors.New("invalid cast direction")
	ErrNegativeDuration     = errors.New("negative duration")
	ErrDuplicateID          = errors.New("duplicate ability id")
	ErrMissingID            = errors.New("missing ability id")
	ErrUnknownLoadoutID     = errors.New("loadout references unknown ability id")
	ErrUnknownLoadout       = errors.New("unknown loadout")
	ErrInvalidTrajectory    = errors.New("invalid trajectory")
)

// castSources maps authored direction names to bits
var castSources = map[string]ability.CastDirection{
	"aim":    ability.CastAim,
	"move":   ability.CastMove,
	"facing": ability.CastFacing,
}

// Catalog is the validated, immutable ability data set
// Implements ability.Catalog
type Catalog struct {
	data     map[string]*ability.Data
	ids      []string
	loadouts map[string][]string
	arena    *ArenaSpec
}

// Lookup resolves ability data by id
func (c *Catalog) Lookup(id string) (*ability.Data, bool) {
	d, ok := c.data[id]
	return d, ok
}

// IDs returns every ability id in sorted order
func (c *Catalog) IDs() []string {
	return slices.Clone(c.ids)
}

// Loadout returns a copy of the named loadout
func (c *Catalog) Loadout(name string) ([]string, error) {
	l, ok := c.loadouts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLoadout, name)
	}
	return slices.Clone(l), nil
}

// LoadoutNames returns loadout names in sorted order
func (c *Catalog) LoadoutNames() []string {
	names := make([]string, 0, len(c.loadouts))
	for n := range c.loadouts {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Arena returns the arena layout, nil if the document had none
func (c *Catalog) Arena() *ArenaSpec { return c.arena }

// Build validates doc and resolves it into a Catalog
// Every problem found is reported, joined into one error
func Build(doc *Document) (*Catalog, error) {
	c := &Catalog{
		data:     make(map[string]*ability.Data, len(doc.Abilities)),
		loadouts: make(map[string][]string, len(doc.Loadouts)),
		arena:    doc.Arena,
	}

	var errs []error
	for i := range doc.Abilities {
		spec := &doc.Abilities[i]
		d, err := resolve(spec)
		if err != nil {
			errs = append(errs, fmt.Errorf("ability %d (%q): %w", i, spec.ID, err))
			continue
		}
		if _, dup := c.data[d.ID]; dup {
			errs = append(errs, fmt.Errorf("ability %d: %w: %q", i, ErrDuplicateID, d.ID))
			continue
		}
		c.data[d.ID] = d
		c.ids = append(c.ids, d.ID)
	}
	slices.Sort(c.ids)

	for name, ids := range doc.Loadouts {
		for _, id := range ids {
			if _, ok := c.data[id]; !ok {
				errs = append(errs, fmt.Errorf("loadout %q: %w: %q", name, ErrUnknownLoadoutID, id))
			}
		}
		c.loadouts[name] = slices.Clone(ids)
	}

	if doc.Arena != nil {
		for i, a := range doc.Arena.Actors {
			if _, ok := doc.Loadouts[a.Loadout]; !ok {
				errs = append(errs, fmt.Errorf("arena actor %d: %w: %q", i, ErrUnknownLoadout, a.Loadout))
			}
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return c, nil
}

// resolve converts one authored entry into ability data
func resolve(spec *AbilitySpec) (*ability.Data, error) {
	if spec.ID == "" {
		return nil, ErrMissingID
	}
	kind, ok := ability.ParseType(spec.Kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, spec.Kind)
	}

	var errs []error
	var cast ability.CastDirection
	for _, name := range spec.CastDirection {
		bit, ok := castSources[name]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidCastDirection, name))
			continue
		}
		cast |= bit
	}
	if cast == 0 && len(errs) == 0 {
		errs = append(errs, fmt.Errorf("%w: no direction source", ErrInvalidCastDirection))
	}

	d := &ability.Data{
		ID:                 spec.ID,
		Kind:               kind,
		BufferWindow:       time.Duration(spec.BufferWindow),
		Delay:              time.Duration(spec.Delay),
		Duration:           time.Duration(spec.Duration),
		Cooldown:           time.Duration(spec.Cooldown),
		AllowConcurrent:    spec.AllowConcurrent,
		PreserveVelocity:   spec.PreserveVelocity,
		CooldownAfterDelay: spec.CooldownAfterDelay,
		CastDirection:      cast,
		Range:              int64(spec.Range),
		Radius:             int64(spec.Radius),
		Impulse:            int64(spec.Impulse),
		Lift:               int64(spec.Lift),
		Speed:              int64(spec.Speed),
		SpeedMultiplier:    int64(spec.SpeedMultiplier),
		Stun:               time.Duration(spec.Stun),
		Damage:             spec.Damage,
		Trajectory:         trajectory.DefaultProfile(),
		Payload:            trajectory.DefaultPayloadProfile(),
	}

	durations := []namedDuration{
		{"buffer_window", d.BufferWindow},
		{"delay", d.Delay},
		{"duration", d.Duration},
		{"cooldown", d.Cooldown},
		{"stun", d.Stun},
	}
	if spec.Damage < 0 {
		errs = append(errs, fmt.Errorf("damage %d is negative", spec.Damage))
	}

	// The ball rides its whole arc; only explosives cede to physics early
	if kind.IsThrow() {
		d.Trajectory.Mode = trajectory.ModeSimple
	}
	if t := spec.Trajectory; t != nil {
		if err := applyTrajectory(&d.Trajectory, t); err != nil {
			errs = append(errs, err)
		}
	}
	if p := spec.Payload; p != nil {
		applyPayload(&d.Payload, p)
		durations = append(durations,
			namedDuration{"payload.life_time", d.Payload.LifeTime},
			namedDuration{"payload.fuse_time", d.Payload.FuseTime},
			namedDuration{"payload.stun", d.Payload.Stun},
		)
	}

	for _, dur := range durations {
		if dur.v < 0 {
			errs = append(errs, fmt.Errorf("%w: %s %v", ErrNegativeDuration, dur.name, dur.v))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return d, nil
}

type namedDuration struct {
	name string
	v    time.Duration
}

func applyTrajectory(p *trajectory.Profile, t *TrajectorySpec) error {
	setFixed(&p.MinDistance, t.MinDistance)
	setFixed(&p.MaxDistance, t.MaxDistance)
	setFixed(&p.MinApex, t.MinApex)
	setFixed(&p.MaxApex, t.MaxApex)
	setFixed(&p.Speed, t.Speed)
	setFixed(&p.HandoffDistance, t.HandoffDistance)
	if t.SampleCount != nil {
		p.SampleCount = *t.SampleCount
	}

	switch t.Mode {
	case "":
	case "handoff":
		p.Mode = trajectory.ModeHandoff
	case "simple":
		p.Mode = trajectory.ModeSimple
	default:
		return fmt.Errorf("%w: mode %q", ErrInvalidTrajectory, t.Mode)
	}

	if p.SampleCount < 2 {
		return fmt.Errorf("%w: sample_count %d below 2", ErrInvalidTrajectory, p.SampleCount)
	}
	if p.MinDistance > p.MaxDistance {
		return fmt.Errorf("%w: min_distance exceeds max_distance", ErrInvalidTrajectory)
	}
	if p.Speed <= 0 {
		return fmt.Errorf("%w: speed must be positive", ErrInvalidTrajectory)
	}
	return nil
}

func applyPayload(p *trajectory.PayloadProfile, s *PayloadSpec) {
	setFixed(&p.ExplosionRadius, s.ExplosionRadius)
	setFixed(&p.ContactRadius, s.ContactRadius)
	setFixed(&p.Knockback, s.Knockback)
	setFixed(&p.KnockbackLift, s.KnockbackLift)
	setDuration(&p.LifeTime, s.LifeTime)
	setDuration(&p.FuseTime, s.FuseTime)
	setDuration(&p.Stun, s.Stun)
	if s.Damage != nil {
		p.Damage = *s.Damage
	}
}

func setFixed(dst *int64, v *Fixed) {
	if v != nil {
		*dst = int64(*v)
	}
}

func setDuration(dst *time.Duration, v *Duration) {
	if v != nil {
		*dst = time.Duration(*v)
	}
}
