package ability

// Type identifies an equippable ability kind
// Doubles as the slot index into Inventory.Slots
type Type int

const TypeNone Type = -1

const (
	Attack Type = iota
	Block
	Dash
	Jump
	Hook
	ThrowShort
	ThrowLong
	Bomb
	Trap
	SpeedBoost
	Stealth

	TypeCount
)

var typeNames = [TypeCount]string{
	Attack:     "attack",
	Block:      "block",
	Dash:       "dash",
	Jump:       "jump",
	Hook:       "hook",
	ThrowShort: "throw_short",
	ThrowLong:  "throw_long",
	Bomb:       "bomb",
	Trap:       "trap",
	SpeedBoost: "speed_boost",
	Stealth:    "stealth",
}

func (t Type) String() string {
	if t < 0 || t >= TypeCount {
		return "none"
	}
	return typeNames[t]
}

// Valid reports whether t indexes a slot
func (t Type) Valid() bool { return t >= 0 && t < TypeCount }

// ParseType resolves a content kind name
func ParseType(name string) (Type, bool) {
	for i, n := range typeNames {
		if n == name {
			return Type(i), true
		}
	}
	return TypeNone, false
}

// TypeNames returns the kind names in slot order
func TypeNames() []string {
	out := make([]string, TypeCount)
	copy(out, typeNames[:])
	return out
}

// Class buckets a type for ownership resolution
type Class uint8

const (
	ClassFixed   Class = iota // Bound by fixed rule (jump, hook, throws)
	ClassMain                 // Competes for main1 / main2
	ClassUtility              // Competes for the utility button
)

var typeClasses = [TypeCount]Class{
	Attack:     ClassMain,
	Block:      ClassMain,
	Bomb:       ClassMain,
	Trap:       ClassMain,
	Dash:       ClassUtility,
	SpeedBoost: ClassUtility,
	Stealth:    ClassUtility,
}

// Class returns the ownership bucket of t
func (t Type) Class() Class {
	if !t.Valid() {
		return ClassFixed
	}
	return typeClasses[t]
}

// IsThrow reports whether t releases the ball
func (t Type) IsThrow() bool { return t == ThrowShort || t == ThrowLong }

// Fallbacks used when a loadout leaves a button unowned
const (
	FallbackMain2   = Block
	FallbackUtility = Dash
)

// CastDirection is a bit set of direction sources, tried aim → move → facing
type CastDirection uint8

const (
	CastAim CastDirection = 1 << iota
	CastMove
	CastFacing
)

// Has reports whether source s is requested
func (c CastDirection) Has(s CastDirection) bool { return c&s != 0 }
