package component

// DeathComponent tags an entity for removal at the end of the tick
type DeathComponent struct{}
