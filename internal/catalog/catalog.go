// Package catalog holds the immutable effect catalog loaded once at startup
package catalog

import (
	"github.com/KirkDiggler/reliquary-api/internal/entities/reliquary"
	"github.com/KirkDiggler/reliquary-api/internal/errors"
)

// Catalog is the read-only list of effects with lookup by id.
// It is never mutated after New, so it is safe for concurrent readers.
type Catalog struct {
	effects []*reliquary.Effect
	byID    map[string]*reliquary.Effect
}

// New validates the records and builds a catalog.
// An empty catalog, an empty id or a duplicate id is rejected.
func New(effects []*reliquary.Effect) (*Catalog, error) {
	if len(effects) == 0 {
		return nil, errors.DataLoss("catalog contains no effects")
	}

	c := &Catalog{
		effects: make([]*reliquary.Effect, 0, len(effects)),
		byID:    make(map[string]*reliquary.Effect, len(effects)),
	}

	for i, e := range effects {
		if e == nil || e.ID == "" {
			return nil, errors.InvalidArgumentf("effect at index %d has no effect id", i).
				WithMeta("index", i)
		}
		if _, exists := c.byID[e.ID]; exists {
			return nil, errors.InvalidArgumentf("duplicate effect id %s", e.ID).
				WithMeta("effect_id", e.ID)
		}
		c.byID[e.ID] = e
		c.effects = append(c.effects, e)
	}

	return c, nil
}

// Effects returns the records in catalog order. The slice is a copy; the
// records are shared and must not be modified.
func (c *Catalog) Effects() []*reliquary.Effect {
	out := make([]*reliquary.Effect, len(c.effects))
	copy(out, c.effects)
	return out
}

// Len returns the number of effects
func (c *Catalog) Len() int {
	return len(c.effects)
}

// Get looks up an effect by id
func (c *Catalog) Get(id string) (*reliquary.Effect, bool) {
	e, ok := c.byID[id]
	return e, ok
}

// Resolve maps each selection slot to its record; empty or unknown slots are nil
func (c *Catalog) Resolve(sel reliquary.Selection) [reliquary.SlotCount]*reliquary.Effect {
	var out [reliquary.SlotCount]*reliquary.Effect
	for i, id := range sel.Slots {
		if id == "" {
			continue
		}
		out[i] = c.byID[id]
	}
	return out
}

// Lookup returns the records for the given ids in order.
// Returns errors.NotFound naming the first unknown id.
func (c *Catalog) Lookup(ids ...string) ([]*reliquary.Effect, error) {
	out := make([]*reliquary.Effect, 0, len(ids))
	for _, id := range ids {
		e, ok := c.byID[id]
		if !ok {
			return nil, errors.NotFoundf("effect %s not found", id).WithMeta("effect_id", id)
		}
		out = append(out, e)
	}
	return out, nil
}
