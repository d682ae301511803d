package internal

import "fmt"

type objectKind uint8

const (
	objString objectKind = iota
)

func (k objectKind) String() string {
	switch k {
	case objString:
		return "string"
	}
	return fmt.Sprintf("objectKind(%d)", uint8(k))
}

// object is a heap value. kind says which payload field is in use.
type object struct {
	kind objectKind
	str  luxString
}

func (o *object) equals(other *object) bool {
	if o == other {
		return true
	}
	if o.kind != other.kind {
		return false
	}
	switch o.kind {
	case objString:
		return o.str.equals(&other.str)
	}
	return false
}

func (o *object) String() string {
	switch o.kind {
	case objString:
		return o.str.String()
	}
	return fmt.Sprintf("<%s>", o.kind)
}

const heapSlabSize = 64

// heap is an arena for every object allocated while compiling and running
// one chunk. Objects live in fixed-size slabs so their addresses never move.
type heap struct {
	slabs [][]object
	count int
}

func (h *heap) alloc(kind objectKind) *object {
	if len(h.slabs) == 0 || len(h.slabs[len(h.slabs)-1]) == heapSlabSize {
		h.slabs = append(h.slabs, make([]object, 0, heapSlabSize))
	}
	last := len(h.slabs) - 1
	h.slabs[last] = append(h.slabs[last], object{kind: kind})
	h.count++
	return &h.slabs[last][len(h.slabs[last])-1]
}

func (h *heap) newString(s string) *object {
	o := h.alloc(objString)
	o.str = makeLuxString(s)
	return o
}

// free drops every object at once. Values pointing into the heap must not
// be used afterwards.
func (h *heap) free() {
	for _, slab := range h.slabs {
		for i := range slab {
			slab[i] = object{}
		}
	}
	h.slabs = nil
	h.count = 0
}

func (h *heap) len() int {
	return h.count
}
