// Package pipeline fans independent simulation replicates over a worker
// pool and streams the results back in replicate order.
//
// Each replicate owns a seed derived from the base seed and its index, so
// the emitted stream is byte-identical for any thread count.
package pipeline
