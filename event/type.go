package event

// EventType represents the type of game event
type EventType int

const (
	// === Engine Event ===

	// EventGameReset restores every actor to its spawn state
	// Trigger: Sandbox reset key, replay harness
	// Consumer: AbilitySystem, BallSystem, ActorSystem | Payload: nil
	EventGameReset EventType = iota

	// === Ability Event ===

	// EventAbilityActivated signals a slot left its buffered state and began its delay
	// Trigger: AbilitySystem after a successful activation
	// Consumer: AudioCue, sandbox log | Payload: *AbilityPayload
	EventAbilityActivated EventType = iota + 100

	// EventAbilityStarted signals the delay handed off to the active duration
	// Trigger: AbilitySystem on IsActiveStartTick
	// Consumer: AudioCue | Payload: *AbilityPayload
	EventAbilityStarted

	// EventAbilityEnded signals the active duration ran out or the slot was stopped
	// Trigger: AbilitySystem on IsActiveEndTick, preemption, incapacitation
	// Consumer: sandbox log | Payload: *AbilityPayload
	EventAbilityEnded

	// EventAbilityHit signals an ability or payload struck an actor
	// Trigger: AbilitySystem behaviours, PayloadSystem detonation
	// Consumer: AudioCue, sandbox HUD | Payload: *HitPayload
	EventAbilityHit

	// EventLoadoutWarning reports an authoring problem found while equipping
	// Trigger: AbilitySystem on equip or reset
	// Consumer: sandbox log | Payload: *LoadoutPayload
	EventLoadoutWarning

	// === Trajectory Event ===

	// EventTrajectoryFinished signals a followed path released its body
	// Trigger: TrajectorySystem on handoff or snap
	// Consumer: sandbox log | Payload: *TrajectoryPayload
	EventTrajectoryFinished

	// EventPayloadArmed signals a landed payload started its ground fuse
	// Trigger: PayloadSystem
	// Consumer: AudioCue | Payload: *PayloadPayload
	EventPayloadArmed

	// EventPayloadExploded signals a detonation, contact or fuse
	// Trigger: PayloadSystem
	// Consumer: AudioCue, sandbox HUD | Payload: *ExplosionPayload
	EventPayloadExploded

	// EventPayloadExpired signals a payload ran out of life without detonating
	// Trigger: PayloadSystem
	// Consumer: sandbox log | Payload: *PayloadPayload
	EventPayloadExpired

	// === Ball Event ===

	// EventBallPickup signals an actor took possession of the ball
	// Trigger: BallSystem
	// Consumer: AudioCue | Payload: *BallPayload
	EventBallPickup

	// EventBallThrown signals the carrier released the ball on a throw arc
	// Trigger: AbilitySystem throw behaviour
	// Consumer: AudioCue | Payload: *BallPayload
	EventBallThrown

	// EventBallDropped signals the carrier lost the ball without throwing
	// Trigger: BallSystem on carrier incapacitation or death
	// Consumer: sandbox log | Payload: *BallPayload
	EventBallDropped

	// === Actor Event ===

	// EventActorDown signals an actor's health reached zero
	// Trigger: ActorSystem lifecycle transition
	// Consumer: AudioCue, sandbox HUD | Payload: *ActorPayload
	EventActorDown

	// EventActorRespawned signals an actor returned to its spawn point
	// Trigger: ActorSystem lifecycle transition
	// Consumer: sandbox HUD | Payload: *ActorPayload
	EventActorRespawned
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
