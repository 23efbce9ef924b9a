// Package filestamp provides file timestamp collection and analysis.
//
// It walks directory trees using fastwalk, hands every candidate file to a
// fixed pool of workers through a FIFO work queue, captures one metadata
// snapshot per file (size plus creation, modification and access times),
// filters the snapshots and returns them stably sorted by a chosen timestamp.
package filestamp
