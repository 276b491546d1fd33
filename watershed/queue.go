// SPDX-License-Identifier: MIT

package watershed

import "golang.org/x/exp/constraints"

// item is one queued position with its priority and insertion order.
type item[T constraints.Integer] struct {
	priority T   // marker label for seeds, image intensity otherwise
	seq      int // insertion counter; breaks priority ties FIFO
	idx      int // linear index into the image
}

// itemPQ is a min-heap of items ordered by (priority, seq) ascending.
type itemPQ[T constraints.Integer] []item[T]

// Len returns the number of queued items.
func (pq itemPQ[T]) Len() int { return len(pq) }

// Less orders by priority, then by insertion order.
func (pq itemPQ[T]) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq itemPQ[T]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x; called by heap.Push.
func (pq *itemPQ[T]) Push(x any) { *pq = append(*pq, x.(item[T])) }

// Pop removes the last element; called by heap.Pop.
func (pq *itemPQ[T]) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
