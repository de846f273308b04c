package octilesearch

import "github.com/katalvlaran/octilebench/octilegrid"

// Comparator orders two cells for the heap: less(a, b) true means a has
// higher priority (pops first).
type Comparator func(a, b octilegrid.CellID) bool

// Heap is an indexed binary min-heap of cell IDs. It maintains the
// heap-index back-reference on the shared Table on every swap, so a cell
// can locate itself in the heap array for DecreaseKey without a separate
// lookup structure.
type Heap struct {
	table *Table
	less  Comparator
	elems []octilegrid.CellID
}

// NewHeap constructs an empty heap over table, ordered by less.
func NewHeap(table *Table, less Comparator) *Heap {
	return &Heap{table: table, less: less, elems: make([]octilegrid.CellID, 0, 64)}
}

// Empty reports whether the heap has no elements.
func (h *Heap) Empty() bool {
	return len(h.elems) == 0
}

// Len returns the number of elements currently in the heap.
func (h *Heap) Len() int {
	return len(h.elems)
}

func (h *Heap) setIndex(id octilegrid.CellID, i int) {
	h.table.at(id).heapIndex = i
}

func (h *Heap) indexOf(id octilegrid.CellID) int {
	return h.table.at(id).heapIndex
}

// swap exchanges the elements at i and j and updates both back-references,
// per the invariant in §4.3.
func (h *Heap) swap(i, j int) {
	h.elems[i], h.elems[j] = h.elems[j], h.elems[i]
	h.setIndex(h.elems[i], i)
	h.setIndex(h.elems[j], j)
}

func parentOf(i int) int { return (i - 1) / 2 }
func leftOf(i int) int   { return 2*i + 1 }
func rightOf(i int) int  { return 2*i + 2 }

func (h *Heap) siftUp(i int) {
	for i > 0 {
		p := parentOf(i)
		if !h.less(h.elems[i], h.elems[p]) {
			break
		}
		h.swap(i, p)
		i = p
	}
}

func (h *Heap) siftDown(i int) {
	n := len(h.elems)
	for {
		left, right := leftOf(i), rightOf(i)
		smallest := i
		if left < n && h.less(h.elems[left], h.elems[smallest]) {
			smallest = left
		}
		if right < n && h.less(h.elems[right], h.elems[smallest]) {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

// Insert appends id at the tail and sifts it up into place.
func (h *Heap) Insert(id octilegrid.CellID) {
	h.elems = append(h.elems, id)
	i := len(h.elems) - 1
	h.setIndex(id, i)
	h.siftUp(i)
}

// ExtractMin removes and returns the highest-priority element. The second
// return value is false if the heap was empty.
func (h *Heap) ExtractMin() (octilegrid.CellID, bool) {
	if h.Empty() {
		return 0, false
	}
	root := h.elems[0]
	last := len(h.elems) - 1
	h.elems[0] = h.elems[last]
	h.elems = h.elems[:last]
	h.setIndex(root, -1)
	if len(h.elems) > 0 {
		h.setIndex(h.elems[0], 0)
		h.siftDown(0)
	}

	return root, true
}

// DecreaseKey re-establishes heap order after id's priority has decreased.
// id must currently be present in the heap (Grey); the driver never calls
// this otherwise.
func (h *Heap) DecreaseKey(id octilegrid.CellID) {
	h.siftUp(h.indexOf(id))
}
