// Package region implements a 2-D integer region: an arbitrary orthogonal
// (axis-aligned) planar subset of the integer grid, stored as a y-x banded
// list of rectangles, together with the constructive-area-geometry
// operations union, intersection, subtraction and symmetric difference.
//
// The representation and the combining algorithm are the classic ones from
// the X11 server's Region.c: a region is a sorted sequence of bands, each
// band a maximal contiguous horizontal strip holding a sorted, non-touching
// run of rectangles sharing the same (y1,y2). Every mutating operation goes
// through combine, the band walker that scans two such sequences in
// lockstep and produces a new one honouring the same invariants.
//
// The general life-cycle of a Region is:
//
//  - Create it empty, from a Rectangle, from a Box, or by cloning another
//    Region.
//  - Mutate it in place with Union/Intersect/Subtract/Xor.
//  - Query it with IsInside/IsInsideRect/IsIntersecting.
//  - Drop it; there is no Free, the backing storage is ordinary Go memory.
package region
