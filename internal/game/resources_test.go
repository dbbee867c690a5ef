package game

import "testing"

func TestResourceMapSum(t *testing.T) {
	var nilMap ResourceMap
	if got := nilMap.Sum(); got != 0 {
		t.Errorf("nil map sum = %d, want 0", got)
	}
	m := ResourceMap{ResourceTwig: 2, ResourceBerry: 3, ResourceVP: 1}
	if got := m.Sum(); got != 6 {
		t.Errorf("sum = %d, want 6", got)
	}
}

func TestResourceMapClone(t *testing.T) {
	m := ResourceMap{ResourceTwig: 2}
	c := m.Clone()
	c[ResourceTwig] = 5
	if m[ResourceTwig] != 2 {
		t.Errorf("clone mutated the original: %d", m[ResourceTwig])
	}
	if ResourceMap(nil).Clone() != nil {
		t.Error("clone of nil should be nil")
	}
}

func TestResourceMapSpendableSum(t *testing.T) {
	m := ResourceMap{ResourceTwig: 1, ResourcePebble: 2}
	if got := m.spendableSum(); got != 3 {
		t.Errorf("spendable sum = %d, want 3", got)
	}
	// VP are score tokens, not a currency.
	m[ResourceVP] = 4
	if got := m.spendableSum(); got != 3 {
		t.Errorf("spendable sum with VP = %d, want 3", got)
	}
	if got := ResourceMap(nil).spendableSum(); got != 0 {
		t.Errorf("nil map spendable sum = %d, want 0", got)
	}
}
