// Package tour is the travelling-salesman problem as a search domain, in two
// formulations over one validated distance matrix (an Instance):
//
//   - Complete tours: a Tour is a closed cycle fixed at city 0. Swap, TwoOpt
//     and OrOpt generate neighborhoods for local and stochastic search, and
//     Problem scores a tour by its length.
//   - Partial tours: Construct grows a path one city at a time from city 0,
//     with step costs from the matrix and an admissible lower bound on the
//     remaining length, so A* returns an optimal tour. Order turns the
//     resulting path into city order.
//
// Tour costs are rounded to 1e-9 so that equal tours compare equal across
// summation orders.
package tour
