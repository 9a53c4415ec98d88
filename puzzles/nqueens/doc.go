// Package nqueens is the N-Queens puzzle as a search domain, in two
// formulations:
//
//   - Placement: queens are added one row at a time, only on columns that
//     are safe with respect to the rows above. Any complete board is a
//     solution, so uninformed search solves it.
//   - Repair: every row already holds a queen; a move relocates one queen
//     within its row and the heuristic counts attacking pairs. Local and
//     stochastic engines minimize it to zero.
package nqueens
