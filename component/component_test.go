package component

import (
	"context"
	"testing"
)

func TestActorLifecycle(t *testing.T) {
	var entered []string
	a := ActorComponent{Lifecycle: NewActorLifecycle(func(s string) { entered = append(entered, s) })}

	if !a.Alive() || a.Incapacitated() {
		t.Fatal("new actor should be alive and free")
	}
	if err := a.Lifecycle.Event(context.Background(), LifecycleRespawn); err == nil {
		t.Fatal("respawn from alive must be refused")
	}

	if err := a.Lifecycle.Event(context.Background(), LifecycleKill); err != nil {
		t.Fatalf("kill: %v", err)
	}
	if a.Alive() || !a.Incapacitated() || a.State() != LifecycleDown {
		t.Fatalf("after kill: alive=%v state=%s", a.Alive(), a.State())
	}
	if a.Lifecycle.Can(LifecycleKill) {
		t.Error("kill from down must not be possible")
	}

	if err := a.Lifecycle.Event(context.Background(), LifecycleRespawn); err != nil {
		t.Fatalf("respawn: %v", err)
	}
	if len(entered) != 2 || entered[0] != LifecycleDown || entered[1] != LifecycleAlive {
		t.Errorf("entered = %v", entered)
	}
}

func TestActorIncapacitated(t *testing.T) {
	var a ActorComponent
	if !a.Alive() {
		t.Fatal("actor without lifecycle is alive")
	}
	a.Stun.Start(1)
	if !a.Incapacitated() {
		t.Error("stunned actor must be incapacitated")
	}
	a.Stun.Stop()
	a.Knockback.Start(1)
	if !a.Incapacitated() {
		t.Error("knocked back actor must be incapacitated")
	}
}
