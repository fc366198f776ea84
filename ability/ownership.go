package ability

// Ownership binds the logical buttons to concrete slots
type Ownership struct {
	Main1   Type
	Main2   Type
	Utility Type

	// UtilityCandidates is the number of utility kinds the loadout holds; anything but 1 is an authoring warning
	UtilityCandidates int
}

// Warning reports a loadout without exactly one utility candidate
func (o Ownership) Warning() bool { return o.UtilityCandidates != 1 }

// ResolveOwnership maps populated slots, in the order given, to main1 / main2 / utility
// Pure: identical input yields identical output
func ResolveOwnership(populated []Type) Ownership {
	o := Ownership{Main1: TypeNone, Main2: TypeNone, Utility: TypeNone}

	main1At := -1
	for i, t := range populated {
		if t.Class() == ClassMain {
			o.Main1 = t
			main1At = i
			break
		}
	}

	if main1At >= 0 {
		for _, t := range populated[main1At+1:] {
			if t.Class() == ClassMain && t != o.Main1 {
				o.Main2 = t
				break
			}
		}
	}
	if o.Main2 == TypeNone && o.Main1 != Block && contains(populated, Block) {
		o.Main2 = Block
	}
	if o.Main2 == TypeNone {
		for _, t := range populated {
			if t.Class() == ClassMain && t != o.Main1 {
				o.Main2 = t
				break
			}
		}
	}
	if o.Main2 == TypeNone {
		o.Main2 = FallbackMain2
	}

	for _, t := range populated {
		if t.Class() != ClassUtility {
			continue
		}
		if o.UtilityCandidates == 0 {
			o.Utility = t
		}
		o.UtilityCandidates++
	}
	if o.Utility == TypeNone {
		o.Utility = FallbackUtility
	}
	return o
}

func contains(ts []Type, want Type) bool {
	for _, t := range ts {
		if t == want {
			return true
		}
	}
	return false
}
