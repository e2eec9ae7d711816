// Package sweep generates the sample grids driven by measurement
// ranges: a minimum, a maximum, and a step.
//
// A Range is lazy and restartable. Count and At describe the grid
// without materializing it, Values builds the full slice:
//
//	r := sweep.Range{Min: 3000, Max: 9000, Step: 3000}
//	r.Count()  // 3
//	r.At(1)    // 6000
//
// Boundary behavior: the sweep starts at Min and includes every point
// Min + i·Step up to and including Max; an upper bound that is an
// exact multiple of Step away from Min is included even when floating
// point rounding puts it a hair past Max. A step equal to Max−Min
// yields exactly the two endpoints.
package sweep
