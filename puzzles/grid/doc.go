// Package grid treats a 2D matrix of entry costs as a search domain for
// path planning between two cells. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Terrain maps parsed through a Legend of symbol costs
//   - An admissible, consistent distance heuristic scaled by the cheapest cell
//
// Moving into a cell costs that cell's value, so the cost of a path is the sum
// of the cells it enters (the start cell is free).
package grid
