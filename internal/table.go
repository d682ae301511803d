package internal

const (
	tableInitialCapacity = 8
	tableMaxLoad         = 0.75
)

type slotState uint8

const (
	slotEmpty slotState = iota
	slotTombstone
	slotLive
)

type entry struct {
	state slotState
	key   *luxString
	value Value
}

// table is an open-addressing hash map keyed by strings, probed linearly.
// size counts live entries; used also counts tombstones, which still
// occupy probe chains until the next resize.
type table struct {
	entries []entry
	size    int
	used    int
}

func newTable() *table {
	return &table{entries: make([]entry, tableInitialCapacity)}
}

func (t *table) capacity() int {
	return len(t.entries)
}

func (t *table) len() int {
	return t.size
}

// find returns the slot holding key, or the slot key should be written to:
// the first tombstone on the probe chain if there was one, otherwise the
// empty slot that ended the chain.
func (t *table) find(key *luxString) *entry {
	return findEntry(t.entries, key)
}

func findEntry(entries []entry, key *luxString) *entry {
	index := int(key.hash % uint32(len(entries)))
	var tombstone *entry
	for {
		e := &entries[index]
		switch e.state {
		case slotEmpty:
			if tombstone != nil {
				return tombstone
			}
			return e
		case slotTombstone:
			if tombstone == nil {
				tombstone = e
			}
		case slotLive:
			if e.key.equals(key) {
				return e
			}
		}
		index = (index + 1) % len(entries)
	}
}

// insert stores value under key and reports whether key was new.
func (t *table) insert(key *luxString, value Value) bool {
	t.adjustCapacity()
	e := t.find(key)
	isNew := e.state != slotLive
	if e.state == slotEmpty {
		t.used++
	}
	if isNew {
		t.size++
	}
	e.state = slotLive
	e.key = key
	e.value = value
	return isNew
}

func (t *table) get(key *luxString) (Value, bool) {
	if t.size == 0 {
		return nilValue(), false
	}
	e := t.find(key)
	if e.state != slotLive {
		return nilValue(), false
	}
	return e.value, true
}

func (t *table) contains(key *luxString) bool {
	if t.size == 0 {
		return false
	}
	return t.find(key).state == slotLive
}

// remove leaves a tombstone behind so that keys probed past this slot stay
// reachable.
func (t *table) remove(key *luxString) bool {
	if t.size == 0 {
		return false
	}
	e := t.find(key)
	if e.state != slotLive {
		return false
	}
	e.state = slotTombstone
	e.key = nil
	e.value = nilValue()
	t.size--
	return true
}

func (t *table) clear() {
	t.entries = make([]entry, tableInitialCapacity)
	t.size = 0
	t.used = 0
}

func (t *table) adjustCapacity() {
	if float64(t.used+1) < float64(len(t.entries))*tableMaxLoad {
		return
	}

	// Mostly tombstones: rehash in place instead of growing.
	newCapacity := len(t.entries)
	if float64(t.size+1) >= float64(len(t.entries))*tableMaxLoad {
		newCapacity += len(t.entries) >> 1
	}
	entries := make([]entry, newCapacity)
	for i := range t.entries {
		old := &t.entries[i]
		if old.state != slotLive {
			continue
		}
		dest := findEntry(entries, old.key)
		*dest = *old
	}

	t.entries = entries
	t.used = t.size
}
