package service

import (
	"errors"
	"slices"
	"testing"
)

type fakeService struct {
	name    string
	deps    []string
	initErr error
	startEr error
	log     *[]string
}

func (f *fakeService) Name() string           { return f.name }
func (f *fakeService) Dependencies() []string { return f.deps }

func (f *fakeService) Init() error {
	*f.log = append(*f.log, "init "+f.name)
	return f.initErr
}

func (f *fakeService) Start() error {
	*f.log = append(*f.log, "start "+f.name)
	return f.startEr
}

func (f *fakeService) Stop() error {
	*f.log = append(*f.log, "stop "+f.name)
	return nil
}

func TestHubLifecycleOrder(t *testing.T) {
	var log []string
	h := NewHub()
	for _, s := range []*fakeService{
		{name: "audio", log: &log},
		{name: "render", deps: []string{"content", "audio"}, log: &log},
		{name: "content", log: &log},
	} {
		if err := h.Register(s); err != nil {
			t.Fatal(err)
		}
	}

	if err := h.InitAll(); err != nil {
		t.Fatalf("InitAll: %v", err)
	}
	if got, want := h.Order(), []string{"audio", "content", "render"}; !slices.Equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
	if err := h.StartAll(); err != nil {
		t.Fatalf("StartAll: %v", err)
	}
	h.StopAll()

	want := []string{
		"init audio", "init content", "init render",
		"start audio", "start content", "start render",
		"stop render", "stop content", "stop audio",
	}
	if !slices.Equal(log, want) {
		t.Errorf("lifecycle = %v\nwant %v", log, want)
	}
}

func TestHubRejectsBadGraphs(t *testing.T) {
	var log []string

	h := NewHub()
	h.Register(&fakeService{name: "a", log: &log})
	if err := h.Register(&fakeService{name: "a", log: &log}); err == nil {
		t.Error("duplicate name accepted")
	}

	h.Register(&fakeService{name: "b", deps: []string{"missing"}, log: &log})
	if err := h.InitAll(); err == nil {
		t.Error("missing dependency accepted")
	}

	c := NewHub()
	c.Register(&fakeService{name: "x", deps: []string{"y"}, log: &log})
	c.Register(&fakeService{name: "y", deps: []string{"x"}, log: &log})
	if err := c.InitAll(); err == nil {
		t.Error("cycle accepted")
	}
}

func TestHubRollsBackFailedStart(t *testing.T) {
	var log []string
	boom := errors.New("no device")

	h := NewHub()
	h.Register(&fakeService{name: "a", log: &log})
	h.Register(&fakeService{name: "b", deps: []string{"a"}, startEr: boom, log: &log})
	if err := h.InitAll(); err != nil {
		t.Fatal(err)
	}
	log = nil

	if err := h.StartAll(); !errors.Is(err, boom) {
		t.Fatalf("StartAll = %v, want %v", err, boom)
	}
	if want := []string{"start a", "start b", "stop a"}; !slices.Equal(log, want) {
		t.Errorf("rollback = %v, want %v", log, want)
	}
}

func TestMustGet(t *testing.T) {
	var log []string
	h := NewHub()
	h.Register(&fakeService{name: "a", log: &log})

	if got := MustGet[*fakeService](h, "a"); got.name != "a" {
		t.Errorf("MustGet = %v", got.name)
	}
	defer func() {
		if recover() == nil {
			t.Error("MustGet of missing service did not panic")
		}
	}()
	MustGet[*fakeService](h, "nope")
}
