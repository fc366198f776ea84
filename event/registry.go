package event

import (
	"reflect"
	"sort"
	"sync"
)

var (
	registryOnce  sync.Once
	nameToType    = make(map[string]EventType)
	typeToName    = make(map[EventType]string)
	typeToPayload = make(map[EventType]reflect.Type)
)

// RegisterType maps a name to an EventType and its payload struct type
// payloadInstance is a pointer to the payload struct, nil for payload-less events
func RegisterType(name string, et EventType, payloadInstance any) {
	nameToType[name] = et
	typeToName[et] = name
	if payloadInstance != nil {
		t := reflect.TypeOf(payloadInstance)
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		typeToPayload[et] = t
	}
}

// GetEventType returns the EventType for a registered name
func GetEventType(name string) (EventType, bool) {
	InitRegistry()
	et, ok := nameToType[name]
	return et, ok
}

// GetEventName returns the registered name, "unknown" otherwise
func GetEventName(et EventType) string {
	InitRegistry()
	if name, ok := typeToName[et]; ok {
		return name
	}
	return "unknown"
}

// PayloadType returns the payload struct type of an event, nil if it carries none
func PayloadType(et EventType) reflect.Type {
	InitRegistry()
	return typeToPayload[et]
}

// EventNames returns every registered name sorted
func EventNames() []string {
	InitRegistry()
	names := make([]string, 0, len(nameToType))
	for n := range nameToType {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// InitRegistry populates the registry; safe to call repeatedly
func InitRegistry() {
	registryOnce.Do(func() {
		// Engine
		RegisterType("EventGameReset", EventGameReset, nil)

		// Ability
		RegisterType("EventAbilityActivated", EventAbilityActivated, &AbilityPayload{})
		RegisterType("EventAbilityStarted", EventAbilityStarted, &AbilityPayload{})
		RegisterType("EventAbilityEnded", EventAbilityEnded, &AbilityPayload{})
		RegisterType("EventAbilityHit", EventAbilityHit, &HitPayload{})
		RegisterType("EventLoadoutWarning", EventLoadoutWarning, &LoadoutPayload{})

		// Trajectory
		RegisterType("EventTrajectoryFinished", EventTrajectoryFinished, &TrajectoryPayload{})
		RegisterType("EventPayloadArmed", EventPayloadArmed, &PayloadPayload{})
		RegisterType("EventPayloadExploded", EventPayloadExploded, &ExplosionPayload{})
		RegisterType("EventPayloadExpired", EventPayloadExpired, &PayloadPayload{})

		// Ball
		RegisterType("EventBallPickup", EventBallPickup, &BallPayload{})
		RegisterType("EventBallThrown", EventBallThrown, &BallPayload{})
		RegisterType("EventBallDropped", EventBallDropped, &BallPayload{})

		// Actor
		RegisterType("EventActorDown", EventActorDown, &ActorPayload{})
		RegisterType("EventActorRespawned", EventActorRespawned, &ActorPayload{})
	})
}
