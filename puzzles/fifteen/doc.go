// Package fifteen is the 4×4 sliding-tile puzzle as a search domain.
//
// A Board lists the tile at every position in row-major order. Tiles are
// 1..15 and the blank is encoded as 16, so the goal board holds i+1 at
// position i. A move swaps the blank with an orthogonal neighbor.
package fifteen
