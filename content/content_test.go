package content

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/arena/ability"
	"github.com/lixenwraith/arena/trajectory"
	"github.com/lixenwraith/arena/vmath"
)

func TestParseFixed(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"3", vmath.FromInt(3)},
		{"1.25", vmath.FromRatio(5, 4)},
		{"-0.5", -vmath.Half},
		{"+2", vmath.FromInt(2)},
		{".5", vmath.Half},
		{"0.6", vmath.FromRatio(6, 10)},
	}
	for _, tt := range tests {
		got, err := ParseFixed(tt.in)
		if err != nil {
			t.Errorf("ParseFixed(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFixed(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "-", "abc", "1.2.3", "1.1234567891", "1e3"} {
		if _, err := ParseFixed(bad); err == nil {
			t.Errorf("ParseFixed(%q) should fail", bad)
		}
	}
}

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}

	for _, name := range ability.TypeNames() {
		d, ok := c.Lookup(name)
		if !ok {
			t.Errorf("built-in content missing %q", name)
			continue
		}
		if d.Kind.String() != name {
			t.Errorf("%q has kind %v", name, d.Kind)
		}
		if d.CastDirection == 0 {
			t.Errorf("%q has no cast direction", name)
		}
	}

	bomb, _ := c.Lookup("bomb")
	if bomb.Payload.Damage != 35 {
		t.Errorf("bomb damage = %d, want 35", bomb.Payload.Damage)
	}
	if bomb.Payload.ContactRadius != vmath.FromRatio(3, 5) {
		t.Errorf("bomb contact radius = %d", bomb.Payload.ContactRadius)
	}
	if bomb.Payload.FuseTime != 1500*time.Millisecond {
		t.Errorf("bomb fuse = %v", bomb.Payload.FuseTime)
	}
	// Omitted trajectory fields keep defaults
	if bomb.Trajectory.MinApex != trajectory.DefaultProfile().MinApex {
		t.Errorf("bomb min apex not defaulted")
	}

	hook, _ := c.Lookup("hook")
	if !hook.CooldownAfterDelay || hook.Delay != 150*time.Millisecond {
		t.Errorf("hook timing not loaded: %+v", hook)
	}
	if hook.CastDirection != ability.CastAim|ability.CastFacing {
		t.Errorf("hook cast = %b", hook.CastDirection)
	}

	names := c.LoadoutNames()
	if len(names) != 3 || names[0] != "bomber" {
		t.Errorf("loadout names = %v", names)
	}
	striker, err := c.Loadout("striker")
	if err != nil || striker[0] != "attack" {
		t.Errorf("striker loadout = %v, %v", striker, err)
	}
	if _, err := c.Loadout("nope"); !errors.Is(err, ErrUnknownLoadout) {
		t.Errorf("unknown loadout error = %v", err)
	}

	arena := c.Arena()
	if arena == nil || len(arena.Actors) != 3 || arena.Ball == nil {
		t.Fatalf("arena layout = %+v", arena)
	}
	if arena.Actors[2].Player != nil {
		t.Error("dummy actor should have no player slot")
	}
	if got := arena.Actors[0].Position.Vec3(); got.Z != vmath.FromInt(-8) {
		t.Errorf("actor 0 position = %+v", got)
	}
}

func TestThrowsFollowWholeArc(t *testing.T) {
	c := MustDefault()
	for id, want := range map[string]trajectory.Mode{
		"throw_short": trajectory.ModeSimple,
		"throw_long":  trajectory.ModeSimple,
		"bomb":        trajectory.ModeHandoff,
	} {
		d, ok := c.Lookup(id)
		if !ok {
			t.Fatalf("%q missing", id)
		}
		if d.Trajectory.Mode != want {
			t.Errorf("%s mode = %v, want %v", id, d.Trajectory.Mode, want)
		}
	}

	// Kind decides the default, an explicit mode still wins
	doc := `
abilities:
  - id: lob
    kind: throw_long
    cast_direction: [aim]
    trajectory:
      speed: 10
  - id: skip
    kind: throw_short
    cast_direction: [aim]
    trajectory:
      mode: handoff
`
	cat, err := Load([]byte(doc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d, _ := cat.Lookup("lob"); d.Trajectory.Mode != trajectory.ModeSimple {
		t.Errorf("lob mode = %v, want simple", d.Trajectory.Mode)
	}
	if d, _ := cat.Lookup("skip"); d.Trajectory.Mode != trajectory.ModeHandoff {
		t.Errorf("skip mode = %v, want handoff", d.Trajectory.Mode)
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("abilities:\n  - id: x\n    kind: jump\n    colour: red\n"))
	if err == nil {
		t.Fatal("unknown field accepted")
	}
}

func TestParseEmpty(t *testing.T) {
	doc, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil): %v", err)
	}
	c, err := Build(doc)
	if err != nil {
		t.Fatalf("Build(empty): %v", err)
	}
	if len(c.IDs()) != 0 {
		t.Errorf("ids = %v", c.IDs())
	}
}

func TestBuildValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{
			name: "unknown kind",
			yaml: "abilities:\n  - {id: a, kind: fireball, cast_direction: [aim]}\n",
			want: ErrUnknownKind,
		},
		{
			name: "bad cast source",
			yaml: "abilities:\n  - {id: a, kind: attack, cast_direction: [mouse]}\n",
			want: ErrInvalidCastDirection,
		},
		{
			name: "empty cast set",
			yaml: "abilities:\n  - {id: a, kind: attack, cast_direction: []}\n",
			want: ErrInvalidCastDirection,
		},
		{
			name: "negative cooldown",
			yaml: "abilities:\n  - {id: a, kind: attack, cooldown: -1s, cast_direction: [aim]}\n",
			want: ErrNegativeDuration,
		},
		{
			name: "negative payload fuse",
			yaml: "abilities:\n  - {id: a, kind: bomb, cast_direction: [aim], payload: {fuse_time: -2s}}\n",
			want: ErrNegativeDuration,
		},
		{
			name: "duplicate id",
			yaml: "abilities:\n  - {id: a, kind: attack, cast_direction: [aim]}\n  - {id: a, kind: block, cast_direction: [aim]}\n",
			want: ErrDuplicateID,
		},
		{
			name: "loadout references missing id",
			yaml: "abilities:\n  - {id: a, kind: attack, cast_direction: [aim]}\nloadouts:\n  x: [a, b]\n",
			want: ErrUnknownLoadoutID,
		},
		{
			name: "trajectory mode",
			yaml: "abilities:\n  - {id: a, kind: bomb, cast_direction: [aim], trajectory: {mode: spiral}}\n",
			want: ErrInvalidTrajectory,
		},
		{
			name: "arena loadout",
			yaml: "abilities: []\narena:\n  actors:\n    - {team: 1, position: {x: 0, z: 0}, loadout: ghost}\n",
			want: ErrUnknownLoadout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.yaml))
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestBuildReportsAllErrors(t *testing.T) {
	_, err := Load([]byte("abilities:\n  - {id: a, kind: nope, cast_direction: [aim]}\n  - {id: b, kind: attack, cast_direction: [nose]}\n"))
	if !errors.Is(err, ErrUnknownKind) || !errors.Is(err, ErrInvalidCastDirection) {
		t.Fatalf("joined error incomplete: %v", err)
	}
}

func TestManagerOverrides(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"10-tune.yaml": "abilities:\n  - {id: attack, kind: attack, damage: 50, cast_direction: [facing]}\nloadouts:\n  brawler: [attack, block]\n",
		".hidden.yaml": "not: [valid",
		"notes.txt":    "ignored",
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	m := NewManager(dir)
	if err := m.Discover(); err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if got := m.Files(); len(got) != 1 || filepath.Base(got[0]) != "10-tune.yaml" {
		t.Fatalf("files = %v", got)
	}

	c, err := m.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	attack, _ := c.Lookup("attack")
	if attack.Damage != 50 || attack.CastDirection != ability.CastFacing {
		t.Errorf("override not applied: %+v", attack)
	}
	if _, err := c.Loadout("brawler"); err != nil {
		t.Errorf("added loadout missing: %v", err)
	}
	if _, ok := c.Lookup("bomb"); !ok {
		t.Error("built-in ids lost on override")
	}
}

func TestManagerMissingDirectory(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "absent"))
	if err := m.Discover(); err != nil {
		t.Fatalf("Discover: %v", err)
	}
	c, err := m.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(c.IDs()) != int(ability.TypeCount) {
		t.Errorf("ids = %v", c.IDs())
	}
}

func TestSchema(t *testing.T) {
	s := Schema()
	if s.Title == "" {
		t.Error("schema title empty")
	}
	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, want := range []string{`"abilities"`, `"cast_direction"`, `"explosion_radius"`, `"throw_long"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("schema missing %s", want)
		}
	}
}

func TestServiceLoadsOnInit(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(dir)
	if svc.Catalog() != nil {
		t.Fatal("catalog before Init")
	}
	if err := svc.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if _, ok := svc.Catalog().Lookup("bomb"); !ok {
		t.Error("built-in bomb missing")
	}

	bad := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(bad, []byte("abilities:\n  - id: x\n    kind: bomb\n    bogus: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := NewService(dir).Init(); err == nil {
		t.Error("Init accepted an unknown field")
	}
}
