package internal

import (
	"fmt"
	"testing"
)

func tableKeys(h *heap, n int) []*luxString {
	keys := make([]*luxString, n)
	for i := range keys {
		keys[i] = &h.newString(fmt.Sprintf("key%d", i)).str
	}
	return keys
}

func TestTableInsertGet(t *testing.T) {
	var h heap
	defer h.free()
	tb := newTable()
	keys := tableKeys(&h, 100)

	for i, k := range keys {
		if !tb.insert(k, numberValue(float64(i))) {
			t.Fatalf("insert(%s) reported an existing key", k)
		}
	}
	if tb.len() != 100 {
		t.Fatalf("len = %d, want 100", tb.len())
	}
	if tb.capacity() <= 100 {
		t.Errorf("capacity %d did not grow past the entry count", tb.capacity())
	}

	for i, k := range keys {
		v, ok := tb.get(k)
		if !ok || !v.equals(numberValue(float64(i))) {
			t.Errorf("get(%s) = %v, %t, want %d", k, v, ok, i)
		}
	}

	// Lookups compare content, not identity.
	other := h.newString("key42")
	if v, ok := tb.get(&other.str); !ok || v.number != 42 {
		t.Errorf("get with an equal key = %v, %t", v, ok)
	}

	if tb.insert(keys[3], boolValue(true)) {
		t.Error("overwriting key3 reported a new key")
	}
	if v, _ := tb.get(keys[3]); !v.equals(boolValue(true)) {
		t.Errorf("key3 = %v after overwrite, want true", v)
	}
	if tb.len() != 100 {
		t.Errorf("len = %d after overwrite, want 100", tb.len())
	}
}

func TestTableRemove(t *testing.T) {
	var h heap
	defer h.free()
	tb := newTable()
	k := &h.newString("k").str

	if tb.remove(k) {
		t.Error("remove on an empty table returned true")
	}

	tb.insert(k, numberValue(1))
	if !tb.remove(k) {
		t.Fatal("remove(k) returned false")
	}
	if tb.contains(k) || tb.len() != 0 {
		t.Errorf("k still present after remove, len %d", tb.len())
	}
	if tb.remove(k) {
		t.Error("second remove(k) returned true")
	}

	// The tombstone is reused.
	if !tb.insert(k, numberValue(2)) {
		t.Error("insert after remove did not report a new key")
	}
	if v, ok := tb.get(k); !ok || v.number != 2 || tb.len() != 1 {
		t.Errorf("get(k) = %v, %t, len %d", v, ok, tb.len())
	}
}

// collidingKeys returns two keys that share a home slot in a fresh table.
func collidingKeys(h *heap) (*luxString, *luxString) {
	seen := map[uint32]*luxString{}
	for i := 0; ; i++ {
		k := &h.newString(fmt.Sprintf("c%d", i)).str
		slot := k.hash % tableInitialCapacity
		if prev, ok := seen[slot]; ok {
			return prev, k
		}
		seen[slot] = k
	}
}

func TestTableRemoveKeepsProbeChain(t *testing.T) {
	var h heap
	defer h.free()
	tb := newTable()
	a, b := collidingKeys(&h)

	tb.insert(a, numberValue(1))
	tb.insert(b, numberValue(2))
	tb.remove(a)

	if v, ok := tb.get(b); !ok || v.number != 2 {
		t.Errorf("get(%s) = %v, %t after removing %s", b, v, ok, a)
	}

	// Re-inserting b must not create a duplicate in the tombstone.
	if tb.insert(b, numberValue(3)) {
		t.Errorf("insert(%s) reported a new key", b)
	}
	if tb.len() != 1 {
		t.Errorf("len = %d, want 1", tb.len())
	}
}

func TestTableTombstonesTriggerResize(t *testing.T) {
	var h heap
	defer h.free()
	tb := newTable()

	// Without counting tombstones the table would fill up and probing
	// would never find an empty slot.
	for i := 0; i < 1000; i++ {
		k := &h.newString(fmt.Sprintf("t%d", i)).str
		tb.insert(k, nilValue())
		tb.remove(k)
	}
	if tb.len() != 0 {
		t.Errorf("len = %d, want 0", tb.len())
	}
	k := &h.newString("last").str
	if tb.contains(k) {
		t.Error("contains(last) on a table that never held it")
	}
}

func TestTableClear(t *testing.T) {
	var h heap
	defer h.free()
	tb := newTable()
	for _, k := range tableKeys(&h, 20) {
		tb.insert(k, nilValue())
	}
	tb.clear()
	if tb.len() != 0 || tb.capacity() != tableInitialCapacity {
		t.Errorf("after clear: len %d, capacity %d", tb.len(), tb.capacity())
	}
}

func TestEnvGlobals(t *testing.T) {
	var h heap
	defer h.free()
	e := newEnv()
	name := &h.newString("x").str

	if _, err := e.get(name); err != errUndefinedVar {
		t.Errorf("get undefined = %v, want errUndefinedVar", err)
	}
	if err := e.assign(name, numberValue(1)); err != errUndefinedVar {
		t.Errorf("assign undefined = %v, want errUndefinedVar", err)
	}
	if err := e.define(name, numberValue(1)); err != nil {
		t.Fatalf("define = %v", err)
	}
	if err := e.define(name, numberValue(2)); err != errGlobalExists {
		t.Errorf("second define = %v, want errGlobalExists", err)
	}
	if err := e.assign(name, numberValue(3)); err != nil {
		t.Errorf("assign = %v", err)
	}
	if v, err := e.get(name); err != nil || v.number != 3 {
		t.Errorf("get = %v, %v, want 3", v, err)
	}
	e.reset()
	if _, err := e.get(name); err != errUndefinedVar {
		t.Errorf("get after reset = %v, want errUndefinedVar", err)
	}
}
