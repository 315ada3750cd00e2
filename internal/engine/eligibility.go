package engine

import (
	"sort"

	"github.com/KirkDiggler/reliquary-api/internal/entities/reliquary"
)

// IDSet is a set of effect or compatibility ids
type IDSet map[string]struct{}

// NewIDSet builds a set, skipping empty ids
func NewIDSet(ids ...string) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add inserts a non-empty id
func (s IDSet) Add(id string) {
	if id != "" {
		s[id] = struct{}{}
	}
}

// Has reports membership
func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the members in ascending order
func (s IDSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// EligibleForSlot computes the candidates for one slot. It starts from the
// relic type filtered catalog, drops effects already used in other slots and,
// unless showIllegal is set, drops effects whose compatibility group is
// already taken. Effects without a group are never excluded by group.
// Category filtering is left to the caller.
func EligibleForSlot(
	effects []*reliquary.Effect,
	choice reliquary.TypeChoice,
	blockedCompat IDSet,
	takenIDs IDSet,
	showIllegal bool,
) []*reliquary.Effect {
	out := make([]*reliquary.Effect, 0, len(effects))
	for _, e := range effects {
		if !MatchesRelicType(e, choice) {
			continue
		}
		if takenIDs.Has(e.ID) {
			continue
		}
		if !showIllegal && e.HasCompatibilityGroup() && blockedCompat.Has(e.CompatibilityID) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// SlotConstraints describes what limits a slot given the current selection
type SlotConstraints struct {
	// Locked is set while a slot to the left is still empty
	Locked bool
	// Taken holds the effect ids used by every other filled slot
	Taken IDSet
	// Blocked holds the compatibility groups locked in by filled slots to the left
	Blocked IDSet
}

// ConstraintsForSlot derives the taken and blocked sets for a slot (1-based).
// Slot 1 is never constrained. The slot's own value is never part of its
// taken set, so a caller reopening a slot still sees the effect it holds.
func ConstraintsForSlot(selected [reliquary.SlotCount]*reliquary.Effect, slot int) SlotConstraints {
	c := SlotConstraints{
		Taken:   NewIDSet(),
		Blocked: NewIDSet(),
	}
	if slot <= 1 {
		return c
	}

	for i, e := range selected {
		pos := i + 1
		if pos == slot {
			continue
		}
		if pos < slot && e == nil {
			c.Locked = true
		}
		if e == nil {
			continue
		}
		c.Taken.Add(e.ID)
		if pos < slot {
			c.Blocked.Add(e.CompatibilityID)
		}
	}

	return c
}

// SlotOptions is the computed option list for one slot
type SlotOptions struct {
	Slot    int
	Locked  bool
	Blocked []string
	// Eligible is before category filtering, Options after
	Eligible []*reliquary.Effect
	Options  []*reliquary.Effect
}

// OptionsForSlot runs the eligibility rules and the category filter for one
// slot. A locked slot has no options.
func OptionsForSlot(
	effects []*reliquary.Effect,
	choice reliquary.TypeChoice,
	selected [reliquary.SlotCount]*reliquary.Effect,
	slot int,
	category string,
	showIllegal bool,
) SlotOptions {
	c := ConstraintsForSlot(selected, slot)
	opts := SlotOptions{
		Slot:    slot,
		Locked:  c.Locked,
		Blocked: c.Blocked.Sorted(),
	}
	if c.Locked {
		opts.Eligible = []*reliquary.Effect{}
		opts.Options = []*reliquary.Effect{}
		return opts
	}

	opts.Eligible = EligibleForSlot(effects, choice, c.Blocked, c.Taken, showIllegal)
	opts.Options = FilterByCategory(opts.Eligible, category)
	return opts
}

// Contains reports whether an effect id is among the options
func (o SlotOptions) Contains(id string) bool {
	for _, e := range o.Options {
		if e.ID == id {
			return true
		}
	}
	return false
}
