package input

import "github.com/lixenwraith/arena/vmath"

// KeyBehavior classifies how a key is processed
type KeyBehavior uint8

const (
	BehaviorNone KeyBehavior = iota
	BehaviorMove
	BehaviorAim
	BehaviorButton
	BehaviorSystem
)

// IntentType discriminates sandbox-level actions outside the simulation
type IntentType uint8

const (
	IntentNone IntentType = iota
	IntentQuit
	IntentPause
	IntentToggleMute
	IntentReset
)

// KeyEntry describes a key's behaviour without function pointers
type KeyEntry struct {
	Behavior KeyBehavior
	Player   int
	Dir      vmath.Vec3
	Button   Buttons
	Intent   IntentType
}

// KeyTable maps runes to behaviours for a local two-player keyboard
type KeyTable struct {
	Runes map[rune]KeyEntry
}

var (
	dirLeft  = vmath.Vec3{X: -vmath.Scale}
	dirRight = vmath.Vec3{X: vmath.Scale}
	dirUp    = vmath.Vec3{Z: vmath.Scale}
	dirDown  = vmath.Vec3{Z: -vmath.Scale}
)

// DefaultKeyTable returns the default sandbox bindings
// Player 0: wasd move, f/g fire/alt, space jump, e utility, q hook
// Player 1: ijkl move, ;/' fire/alt, n jump, o utility, u hook
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]KeyEntry{
			'a': {Behavior: BehaviorMove, Player: 0, Dir: dirLeft},
			'd': {Behavior: BehaviorMove, Player: 0, Dir: dirRight},
			'w': {Behavior: BehaviorMove, Player: 0, Dir: dirUp},
			's': {Behavior: BehaviorMove, Player: 0, Dir: dirDown},
			'f': {Behavior: BehaviorButton, Player: 0, Button: ButtonFire},
			'g': {Behavior: BehaviorButton, Player: 0, Button: ButtonAlt},
			' ': {Behavior: BehaviorButton, Player: 0, Button: ButtonJump},
			'e': {Behavior: BehaviorButton, Player: 0, Button: ButtonUtility},
			'q': {Behavior: BehaviorButton, Player: 0, Button: ButtonHook},

			'j':  {Behavior: BehaviorMove, Player: 1, Dir: dirLeft},
			'l':  {Behavior: BehaviorMove, Player: 1, Dir: dirRight},
			'i':  {Behavior: BehaviorMove, Player: 1, Dir: dirUp},
			'k':  {Behavior: BehaviorMove, Player: 1, Dir: dirDown},
			';':  {Behavior: BehaviorButton, Player: 1, Button: ButtonFire},
			'\'': {Behavior: BehaviorButton, Player: 1, Button: ButtonAlt},
			'n':  {Behavior: BehaviorButton, Player: 1, Button: ButtonJump},
			'o':  {Behavior: BehaviorButton, Player: 1, Button: ButtonUtility},
			'u':  {Behavior: BehaviorButton, Player: 1, Button: ButtonHook},

			'p': {Behavior: BehaviorSystem, Intent: IntentPause},
			'm': {Behavior: BehaviorSystem, Intent: IntentToggleMute},
			'r': {Behavior: BehaviorSystem, Intent: IntentReset},
		},
	}
}

// Sampler accumulates key events between ticks into per-player samples
// Terminal input has no key-up, so held state lasts HoldTicks ticks after the last repeat
type Sampler struct {
	table   *KeyTable
	players []samplerState
	hold    int
}

type samplerState struct {
	move     vmath.Vec3
	moveTTL  int
	held     [8]int
	lastMove vmath.Vec3
}

// NewSampler creates a sampler for n players with the given hold duration in ticks
func NewSampler(table *KeyTable, n, holdTicks int) *Sampler {
	return &Sampler{table: table, players: make([]samplerState, n), hold: holdTicks}
}

// Key feeds one key press, returning any system intent it maps to
func (s *Sampler) Key(r rune) IntentType {
	entry, ok := s.table.Runes[r]
	if !ok {
		return IntentNone
	}
	if entry.Behavior == BehaviorSystem {
		return entry.Intent
	}
	if entry.Player < 0 || entry.Player >= len(s.players) {
		return IntentNone
	}
	p := &s.players[entry.Player]
	switch entry.Behavior {
	case BehaviorMove:
		p.move = entry.Dir
		p.moveTTL = s.hold
		p.lastMove = entry.Dir
	case BehaviorButton:
		for i := 0; i < 8; i++ {
			if entry.Button&(1<<i) != 0 {
				p.held[i] = s.hold
			}
		}
	}
	return IntentNone
}

// Sample returns the current input for player i and ages held keys by one tick
// Aim follows the last movement direction so throws go where the player last moved
func (s *Sampler) Sample(i int) PlayerInput {
	p := &s.players[i]
	var in PlayerInput
	if p.moveTTL > 0 {
		in.Move = p.move
		p.moveTTL--
	}
	in.Aim = p.lastMove
	for b := 0; b < 8; b++ {
		if p.held[b] > 0 {
			in.Held |= 1 << b
			p.held[b]--
		}
	}
	return in
}
