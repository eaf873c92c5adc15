// Package engine contains the signal-denoising core: five interchangeable
// transforms over a binary per-position Signal, each run over static
// partitions of the index range. It never imports app, appcore, cli, output,
// table or writers; keep it domain-only.
//
// Algorithms:
//
//   - MovingWindowAverage: thresholded running mean, written at the window centre.
//   - RunLengthEncoding: keeps runs of 1s that reach a minimum length.
//   - DensityClustering: 1-D DBSCAN analogue, membership only.
//   - MedianFilter: centred (upper) median with zero padding.
//   - ConnectedComponentLabeling: gap-tolerant components with a size floor.
//
// Boundary modes:
//
//   - BoundaryHalo (default): workers read past their partition so results
//     equal a single-threaded run for every thread count.
//   - BoundaryIsolated: each worker sees only its own partition. Runs and
//     components split by a partition edge are judged piecewise and the
//     moving average restarts at every edge.
//
// DensityClustering and MedianFilter ignore the boundary mode; they are
// thread-count invariant either way.
package engine
