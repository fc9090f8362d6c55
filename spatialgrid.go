package aya

import (
	"math"
	"sort"

	"github.com/akmonengine/aya/geom"
	"github.com/akmonengine/aya/mathutil"
)

// maxCellSpan bounds the number of cells a box may cover on one axis. Wider boxes, and
// boxes with non-finite bounds, go to the overflow list and are tested against every box.
const maxCellSpan = 32

// maxCellCoord keeps cell coordinates well inside the int range.
const maxCellCoord = 1 << 30

// ============================================================================
// Types
// ============================================================================

// cellKey - integer coordinates of a cell in 3D space
type cellKey struct {
	x, y, z int
}

// cell - indices of the boxes touching a cell
type cell struct {
	indices []int
}

// Pair - two overlapping boxes, A < B
type Pair struct {
	A, B int
}

// BoxGrid - uniform spatial grid hashed into a fixed array of cells.
// Cells far apart may share a slot; every candidate is confirmed with an exact
// overlap test, so collisions only cost time.
type BoxGrid struct {
	cellSize float32
	cells    []cell
	cellMask int

	boxes    []geom.BBox
	present  []bool
	oversize []bool
	inserted []int
	overflow []int
}

// ============================================================================
// Constructor
// ============================================================================

// NewBoxGrid - numCells is rounded up to a power of two
func NewBoxGrid(cellSize float32, numCells int) *BoxGrid {
	mathutil.Assert(cellSize > 0, "grid cell size must be positive")
	numCells = nextPowerOfTwo(numCells)

	cells := make([]cell, numCells)
	for i := range cells {
		cells[i].indices = make([]int, 0, 8)
	}

	return &BoxGrid{
		cellSize: cellSize,
		cells:    cells,
		cellMask: numCells - 1,
	}
}

// nextPowerOfTwo - rounds up to the next power of two
func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++
	return n
}

// Insert - registers box b under index in every cell it touches, or in the overflow list
// when it is unbounded or spans more than maxCellSpan cells on an axis.
// Empty boxes are skipped. An index must not be inserted twice before Clear.
func (g *BoxGrid) Insert(index int, b geom.BBox) {
	if b.IsEmpty() {
		return
	}
	if index >= len(g.boxes) {
		grow := index + 1 - len(g.boxes)
		g.boxes = append(g.boxes, make([]geom.BBox, grow)...)
		g.present = append(g.present, make([]bool, grow)...)
		g.oversize = append(g.oversize, make([]bool, grow)...)
	}
	mathutil.Assert(!g.present[index], "box index inserted twice")

	g.boxes[index] = b
	g.present[index] = true
	g.inserted = append(g.inserted, index)

	lo, hi, ok := g.cellRange(b)
	if !ok {
		g.oversize[index] = true
		g.overflow = append(g.overflow, index)
		return
	}
	g.forEachCell(lo, hi, func(cellIdx int) {
		g.cells[cellIdx].indices = append(g.cells[cellIdx].indices, index)
	})
}

// Clear - empties the grid, keeping its memory
func (g *BoxGrid) Clear() {
	for i := range g.cells {
		g.cells[i].indices = g.cells[i].indices[:0]
	}
	for _, index := range g.inserted {
		g.present[index] = false
		g.oversize[index] = false
	}
	g.inserted = g.inserted[:0]
	g.overflow = g.overflow[:0]
}

// Len - number of boxes in the grid
func (g *BoxGrid) Len() int {
	return len(g.inserted)
}

// Query - sorted indices of every inserted box overlapping b
func (g *BoxGrid) Query(b geom.BBox) []int {
	if b.IsEmpty() {
		return nil
	}

	var result []int
	seen := make([]bool, len(g.boxes))
	test := func(other int) {
		if seen[other] {
			return
		}
		seen[other] = true
		if g.boxes[other].Overlaps(b) {
			result = append(result, other)
		}
	}

	if lo, hi, ok := g.cellRange(b); ok {
		g.forEachCell(lo, hi, func(cellIdx int) {
			for _, other := range g.cells[cellIdx].indices {
				test(other)
			}
		})
		for _, other := range g.overflow {
			test(other)
		}
	} else {
		for _, other := range g.inserted {
			test(other)
		}
	}

	sort.Ints(result)
	return result
}

// Pairs - every overlapping pair once, sorted by (A, B)
func (g *BoxGrid) Pairs() []Pair {
	return g.PairsParallel(1)
}

// PairsParallel - Pairs split over workersCount goroutines
func (g *BoxGrid) PairsParallel(workersCount int) []Pair {
	order := make([]int, len(g.inserted))
	copy(order, g.inserted)
	sort.Ints(order)

	if workersCount < 1 {
		workersCount = defaultWorkers
	}
	results := make([][]Pair, workersCount)

	task(workersCount, len(order), func(worker, start, end int) {
		seen := make([]bool, len(g.boxes))
		var touched []int

		for _, a := range order[start:end] {
			boxA := g.boxes[a]

			// oversized boxes live in no cell: they pair with every grid box, and with
			// the oversized boxes after them
			if g.oversize[a] {
				for _, b := range order {
					if b == a || (g.oversize[b] && b < a) {
						continue
					}
					if boxA.Overlaps(g.boxes[b]) {
						results[worker] = append(results[worker], Pair{A: min(a, b), B: max(a, b)})
					}
				}
				continue
			}

			for _, other := range touched {
				seen[other] = false
			}
			touched = touched[:0]

			lo, hi, _ := g.cellRange(boxA)
			g.forEachCell(lo, hi, func(cellIdx int) {
				for _, b := range g.cells[cellIdx].indices {
					// deterministic order, avoids both (A,B) and (B,A)
					if b <= a || seen[b] {
						continue
					}
					seen[b] = true
					touched = append(touched, b)

					if boxA.Overlaps(g.boxes[b]) {
						results[worker] = append(results[worker], Pair{A: a, B: b})
					}
				}
			})
		}
	})

	var pairs []Pair
	for _, r := range results {
		pairs = append(pairs, r...)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		return pairs[i].B < pairs[j].B
	})
	return pairs
}

// cellRange - first and last cell covered by b. ok is false when a bound is not finite
// or the box spans more than maxCellSpan cells on an axis.
func (g *BoxGrid) cellRange(b geom.BBox) (lo, hi cellKey, ok bool) {
	var l, h [3]int
	for i := 0; i < 3; i++ {
		fl := g.cellCoord(b.Min.At(i))
		fh := g.cellCoord(b.Max.At(i))
		if math.IsNaN(fl) || math.IsNaN(fh) ||
			math.Abs(fl) > maxCellCoord || math.Abs(fh) > maxCellCoord ||
			fh-fl >= maxCellSpan {
			return cellKey{}, cellKey{}, false
		}
		l[i], h[i] = int(fl), int(fh)
	}
	return cellKey{l[0], l[1], l[2]}, cellKey{h[0], h[1], h[2]}, true
}

// forEachCell - calls fn with the slot of every cell in [lo, hi].
// A slot may come up more than once when distinct cells hash together.
func (g *BoxGrid) forEachCell(lo, hi cellKey, fn func(cellIdx int)) {
	for x := lo.x; x <= hi.x; x++ {
		for y := lo.y; y <= hi.y; y++ {
			for z := lo.z; z <= hi.z; z++ {
				fn(g.hashCell(cellKey{x, y, z}))
			}
		}
	}
}

// cellCoord - floor of x in cell units, infinite for infinite x
func (g *BoxGrid) cellCoord(x float32) float64 {
	return math.Floor(float64(x) / float64(g.cellSize))
}

// worldToCell - converts a world position into cell coordinates. pos must be finite.
func (g *BoxGrid) worldToCell(pos geom.Point3) cellKey {
	return cellKey{
		x: int(g.cellCoord(pos.X())),
		y: int(g.cellCoord(pos.Y())),
		z: int(g.cellCoord(pos.Z())),
	}
}

// hashCell - hashes a cell into a slot of the array
func (g *BoxGrid) hashCell(key cellKey) int {
	h := (key.x * 73856093) ^ (key.y * 19349663) ^ (key.z * 83492791)
	return h & g.cellMask
}
