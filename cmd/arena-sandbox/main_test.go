package main

import (
	"testing"

	"github.com/lixenwraith/arena/event"
)

func TestParseTrace(t *testing.T) {
	if set, err := parseTrace(""); err != nil || set != nil {
		t.Errorf("empty trace = %v, %v", set, err)
	}

	all, err := parseTrace("all")
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != len(event.EventNames()) {
		t.Errorf("all traced %d of %d events", len(all), len(event.EventNames()))
	}

	name := event.GetEventName(event.EventAbilityHit)
	set, err := parseTrace(" " + name + " ")
	if err != nil || !set[event.EventAbilityHit] || len(set) != 1 {
		t.Errorf("single trace = %v, %v", set, err)
	}

	if _, err := parseTrace("nope"); err == nil {
		t.Error("unknown event accepted")
	}
}
