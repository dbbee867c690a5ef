package game

// ResourceMap counts resources by type. A nil map is an empty map; helpers
// below never mutate their arguments.
type ResourceMap map[ResourceType]int

// Sum returns the total count across all resource types.
func (m ResourceMap) Sum() int {
	total := 0
	for _, n := range m {
		total += n
	}
	return total
}

// Clone returns an independent copy of m.
func (m ResourceMap) Clone() ResourceMap {
	if m == nil {
		return nil
	}
	out := make(ResourceMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Get returns the count for t, treating missing entries as zero.
func (m ResourceMap) Get(t ResourceType) int {
	return m[t]
}

// spendableSum returns the total count of TWIG/RESIN/BERRY/PEBBLE. VP are
// score tokens, never a currency.
func (m ResourceMap) spendableSum() int {
	total := 0
	for t, n := range m {
		if t != ResourceVP {
			total += n
		}
	}
	return total
}

// CardCost is a card's base cost. Costs never include VP.
type CardCost = ResourceMap
