package renderer

import "sync"

// tileSize is the nominal tile edge; tiles against the right/bottom
// image edges are clipped shorter.
const tileSize = 64

// Tile is an axis-aligned pixel rectangle, half-open on the max edge:
// columns [MinX, MaxX) and rows [MinY, MaxY).
type Tile struct {
	ID   int
	MinX, MinY, MaxX, MaxY int
}

// NewTileGrid partitions [0,width) x [0,height) into tileSize x
// tileSize rectangles, clipping the last row/column of tiles to fit the
// image exactly.
func NewTileGrid(width, height int) []Tile {
	var tiles []Tile
	id := 0
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			maxX := x + tileSize
			if maxX > width {
				maxX = width
			}
			maxY := y + tileSize
			if maxY > height {
				maxY = height
			}
			tiles = append(tiles, Tile{ID: id, MinX: x, MinY: y, MaxX: maxX, MaxY: maxY})
			id++
		}
	}
	return tiles
}

// tileQueue is a FIFO of tiles guarded by a single mutex: the only
// mutable state shared across workers. The queue is filled completely
// before any worker starts and workers never add to it, so the lock is
// only ever held for the duration of a single slice-index increment.
type tileQueue struct {
	mu     sync.Mutex
	tiles  []Tile
	cursor int
}

func newTileQueue(tiles []Tile) *tileQueue {
	return &tileQueue{tiles: tiles}
}

// pop returns the next tile and true, or a zero Tile and false once the
// queue is drained.
func (q *tileQueue) pop() (Tile, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.cursor >= len(q.tiles) {
		return Tile{}, false
	}
	tile := q.tiles[q.cursor]
	q.cursor++
	return tile, true
}
