// SPDX-License-Identifier: MIT

// Package watershed implements marker-controlled watershed segmentation
// (cwatershed) over n-dimensional integer arrays.
//
// Overview:
//
//   - Every nonzero marker is a seed. Its value is both the label that is
//     propagated and the priority with which the seed enters the queue.
//   - A min-priority queue keyed by (priority, insertion order) drives the
//     flood. Equal priorities are served first-in first-out.
//   - A popped position is settled. Each unsettled neighbour reached through
//     the structuring element takes the popped position's label if its own
//     intensity is strictly below the best cost recorded for it so far,
//     and is then queued with that intensity as its priority.
//
// State (per call, discarded on return):
//
//   - cost:   same shape and element type as the image, initialised to the
//     maximum value of the type; seeds start at their own intensity.
//   - status: settled flags, initialised false.
//   - queue:  container/heap min-heap of (priority, seq, index).
//
// Consequences worth knowing:
//
//   - Seeds are ordered by label value, not by image intensity, so with
//     several seeds the one with the smaller label expands first.
//   - Neighbours whose intensity equals the element type's maximum can never
//     improve on the initial cost and stay unlabeled (0).
//   - Positions not connected to any seed through the element stay 0.
//   - A neighbour's label is decided when it is first queued, so among
//     fronts of equal cost the earliest-pushed one wins.
//
// Options:
//
//   - WithLogger(logr.Logger): V(1) summary per call. Default logr.Discard().
//   - WithStats(*Stats):        receives seed/push/settle counters.
//
// Complexity:
//
//   - Time:  O(N·K·d + P·log P) for N elements, K active offsets, d
//     dimensions and P ≤ N queue pushes.
//   - Space: O(N) for result, cost, status and queue.
package watershed
