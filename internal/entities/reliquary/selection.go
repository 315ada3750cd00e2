package reliquary

// SlotCount is the number of effect slots on a relic
const SlotCount = 3

// Selection is the three slot values, each an effect id or empty.
// Slots are 1-based in every method.
type Selection struct {
	Slots [SlotCount]string `json:"slots"`
}

// NewSelection builds a selection from up to three ids
func NewSelection(ids ...string) Selection {
	var s Selection
	for i := 0; i < len(ids) && i < SlotCount; i++ {
		s.Slots[i] = ids[i]
	}
	return s
}

// ValidSlot reports whether slot is in 1..SlotCount
func ValidSlot(slot int) bool {
	return slot >= 1 && slot <= SlotCount
}

// Get returns the effect id in a slot, empty for out of range slots
func (s Selection) Get(slot int) string {
	if !ValidSlot(slot) {
		return ""
	}
	return s.Slots[slot-1]
}

// With returns a copy with the slot set to id
func (s Selection) With(slot int, id string) Selection {
	if ValidSlot(slot) {
		s.Slots[slot-1] = id
	}
	return s
}

// ClearFrom returns a copy with the slot and every slot to its right emptied
func (s Selection) ClearFrom(slot int) Selection {
	if slot < 1 {
		slot = 1
	}
	for i := slot; i <= SlotCount; i++ {
		s.Slots[i-1] = ""
	}
	return s
}

// Filled reports whether the slot holds an effect
func (s Selection) Filled(slot int) bool {
	return s.Get(slot) != ""
}

// Stage is the furthest filled slot. After a cascade the filled slots are
// contiguous from the left, so this equals the count of filled slots.
func (s Selection) Stage() int {
	for slot := SlotCount; slot >= 1; slot-- {
		if s.Filled(slot) {
			return slot
		}
	}
	return 0
}

// ActiveSlot is the first empty slot, or the last slot when all are filled
func (s Selection) ActiveSlot() int {
	for slot := 1; slot <= SlotCount; slot++ {
		if !s.Filled(slot) {
			return slot
		}
	}
	return SlotCount
}

// IsEmpty reports whether no slot is filled
func (s Selection) IsEmpty() bool {
	return s.Stage() == 0
}

// IDs returns the filled ids in slot order
func (s Selection) IDs() []string {
	ids := make([]string, 0, SlotCount)
	for _, id := range s.Slots {
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
