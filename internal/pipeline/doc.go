// Package pipeline splits an index range into static partitions and runs one
// worker goroutine per partition.
//
// Partitioning is fixed up front: there is no work stealing and no persistent
// pool. Every call spawns its workers and joins them before returning.
package pipeline
