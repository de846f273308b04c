package octilesearch

import (
	"testing"

	"github.com/katalvlaran/octilebench/octilegrid"
)

// TestHeap_IndexInvariant verifies the §8 heap index invariant: at every
// point, for each Grey cell c, heap.elems[table.HeapIndexOf(c)] == c.
func TestHeap_IndexInvariant(t *testing.T) {
	table := NewTable(10)
	table.Reset(0)
	for i := 0; i < 10; i++ {
		table.at(octilegrid.CellID(i)).dist = float64(10 - i)
		table.at(octilegrid.CellID(i)).colour = Grey
	}

	heap := NewHeap(table, DijkstraComparator(table))
	for i := 0; i < 10; i++ {
		heap.Insert(octilegrid.CellID(i))
		assertIndexInvariant(t, heap, table)
	}

	table.at(3).dist = 0.5
	heap.DecreaseKey(3)
	assertIndexInvariant(t, heap, table)

	for !heap.Empty() {
		heap.ExtractMin()
		assertIndexInvariant(t, heap, table)
	}
}

func assertIndexInvariant(t *testing.T, heap *Heap, table *Table) {
	t.Helper()
	for i, id := range heap.elems {
		if table.HeapIndexOf(id) != i {
			t.Fatalf("heap index invariant broken: elems[%d]=%d but table.HeapIndexOf(%d)=%d",
				i, id, id, table.HeapIndexOf(id))
		}
	}
}

// TestHeap_ExtractsInOrder verifies the min-heap pops in non-decreasing
// comparator order.
func TestHeap_ExtractsInOrder(t *testing.T) {
	table := NewTable(5)
	table.Reset(0)
	dists := []float64{5, 3, 1, 4, 2}
	for i, d := range dists {
		table.at(octilegrid.CellID(i)).dist = d
		table.at(octilegrid.CellID(i)).colour = Grey
	}

	heap := NewHeap(table, DijkstraComparator(table))
	for i := range dists {
		heap.Insert(octilegrid.CellID(i))
	}

	var got []float64
	for !heap.Empty() {
		id, _ := heap.ExtractMin()
		got = append(got, table.Dist(id))
	}
	want := []float64{1, 2, 3, 4, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("extraction order = %v; want %v", got, want)
		}
	}
}

func TestHeap_ExtractMin_Empty(t *testing.T) {
	table := NewTable(1)
	table.Reset(0)
	heap := NewHeap(table, DijkstraComparator(table))
	if _, ok := heap.ExtractMin(); ok {
		t.Error("ExtractMin on empty heap returned ok=true")
	}
}
