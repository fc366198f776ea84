package trajectory

import (
	"time"

	"github.com/lixenwraith/arena/parameter"
	"github.com/lixenwraith/arena/vmath"
)

// Phase of a followed path; transitions only move forward
type Phase uint8

const (
	PhasePlanned Phase = iota
	PhaseFollowing
	PhaseHandedOff
	PhaseSnapped
)

func (p Phase) String() string {
	switch p {
	case PhaseFollowing:
		return "following"
	case PhaseHandedOff:
		return "handed_off"
	case PhaseSnapped:
		return "snapped"
	}
	return "planned"
}

// State follows one planned path
type State struct {
	Points  [MaxPoints]vmath.Vec3
	Lengths [MaxPoints]int64 // Cumulative path length at each point
	Count   int

	TotalLength     int64
	Traveled        int64
	Speed           int64
	HandoffDistance int64
	Mode            Mode
	Phase           Phase
	Finished        bool

	position vmath.Vec3
	rotation vmath.Rotation
}

// Step is what one Advance produced
type Step struct {
	Position vmath.Vec3
	Rotation vmath.Rotation
	Released bool       // Path ceded to physics this tick
	Velocity vmath.Vec3 // Launch velocity, valid when Released
}

// NewState prepares a path for following at speed (metres per second, Q32.32)
func NewState(path Path, speed, handoffDistance int64, mode Mode) State {
	s := State{
		Count:           path.Count,
		Speed:           speed,
		HandoffDistance: handoffDistance,
		Mode:            mode,
	}
	copy(s.Points[:], path.Points[:path.Count])
	for i := 1; i < s.Count; i++ {
		s.Lengths[i] = s.Lengths[i-1] + vmath.V3Dist(s.Points[i-1], s.Points[i])
	}
	if s.Count > 0 {
		s.TotalLength = s.Lengths[s.Count-1]
		s.position = s.Points[0]
	}
	if i := s.nextSegment(0); i >= 0 {
		s.rotation = vmath.LookRotation(s.segmentDir(i))
	}
	return s
}

// Position returns the interpolated position after the last Advance
func (s *State) Position() vmath.Vec3 { return s.position }

// Rotation returns the tangent orientation after the last Advance
func (s *State) Rotation() vmath.Rotation { return s.rotation }

// Remaining returns path length left to travel
func (s *State) Remaining() int64 { return s.TotalLength - s.Traveled }

// Advance moves along the path by Speed·dt
func (s *State) Advance(dt time.Duration) Step {
	if s.Finished {
		return Step{Position: s.position, Rotation: s.rotation}
	}
	if s.Count < 2 {
		return s.release(vmath.Vec3{}, PhaseSnapped)
	}

	s.Phase = PhaseFollowing
	s.Traveled += vmath.Mul(s.Speed, vmath.FromDuration(dt))
	if s.Traveled > s.TotalLength {
		s.Traveled = s.TotalLength
	}

	if i := s.segmentAt(s.Traveled); i >= 0 {
		segLen := s.Lengths[i+1] - s.Lengths[i]
		t := vmath.Div(s.Traveled-s.Lengths[i], segLen)
		s.position = vmath.V3Lerp(s.Points[i], s.Points[i+1], t)
		s.rotation = vmath.LookRotation(s.segmentDir(i))
	}

	switch {
	case s.Mode == ModeHandoff && s.Remaining() <= s.HandoffDistance:
		return s.release(s.handoffVelocity(), PhaseHandedOff)

	case s.Traveled >= s.TotalLength:
		s.position = s.Points[s.Count-1]
		dir := s.finalDir()
		if !vmath.V3IsZero(dir) {
			s.rotation = vmath.LookRotation(dir)
		}
		return s.release(vmath.V3Scale(dir, s.Speed), PhaseSnapped)
	}

	return Step{Position: s.position, Rotation: s.rotation}
}

func (s *State) release(v vmath.Vec3, phase Phase) Step {
	s.Finished = true
	s.Phase = phase
	return Step{Position: s.position, Rotation: s.rotation, Released: true, Velocity: v}
}

// segmentAt finds the first non-degenerate segment whose end is at or beyond d
func (s *State) segmentAt(d int64) int {
	last := -1
	for i := 0; i < s.Count-1; i++ {
		if s.Lengths[i+1] == s.Lengths[i] {
			continue
		}
		last = i
		if d <= s.Lengths[i+1] {
			return i
		}
	}
	return last
}

// nextSegment returns the first non-degenerate segment at or after i
func (s *State) nextSegment(i int) int {
	for ; i < s.Count-1; i++ {
		if s.Lengths[i+1] != s.Lengths[i] {
			return i
		}
	}
	return -1
}

func (s *State) segmentDir(i int) vmath.Vec3 {
	return vmath.V3Normalize(vmath.V3Sub(s.Points[i+1], s.Points[i]))
}

// finalDir is the direction of the last non-degenerate segment, zero if none
func (s *State) finalDir() vmath.Vec3 {
	for i := s.Count - 2; i >= 0; i-- {
		if s.Lengths[i+1] != s.Lengths[i] {
			return s.segmentDir(i)
		}
	}
	return vmath.Vec3{}
}

// handoffVelocity launches along the final segment with an upward bias proportional to its slope
func (s *State) handoffVelocity() vmath.Vec3 {
	dir := s.finalDir()
	v := vmath.V3Scale(dir, s.Speed)
	v.Y += vmath.Mul(vmath.Mul(vmath.Abs(dir.Y), s.Speed), parameter.HandoffLiftFactor)
	return v
}
