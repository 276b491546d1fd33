// SPDX-License-Identifier: MIT

package watershed

import (
	"container/heap"

	"github.com/katalvlaran/ndmorph/ndarray"
	"github.com/katalvlaran/ndmorph/strel"
	"golang.org/x/exp/constraints"
)

// CWatershed floods array from the nonzero cells of markers through the
// active offsets of bc and returns the label image.
//
// Preconditions (caller-enforced, see package dispatch): markers has
// array's shape; bc has array's dimensionality.
//
// Behavior:
//  1. Seed: for each nonzero marker p, result[p]=markers[p],
//     cost[p]=array[p], push (markers[p], seq, p).
//  2. Pop the smallest (priority, seq); mark it settled.
//  3. For each unsettled valid neighbour n with array[n] < cost[n]:
//     cost[n]=array[n], result[n]=result[p], push (array[n], seq, n).
//  4. Repeat until the queue is empty.
//
// Returns only allocation errors from the result and cost arrays.
func CWatershed[T constraints.Integer](array, markers, bc *ndarray.Array[T], opts ...Option) (*ndarray.Array[T], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	res, err := ndarray.Like[T](array)
	if err != nil {
		return nil, err
	}
	cost, err := ndarray.Like[T](array)
	if err != nil {
		return nil, err
	}
	cost.Fill(ndarray.MaxValue[T]())

	r := &runner[T]{
		array:   array,
		res:     res,
		cost:    cost,
		status:  make([]bool, array.Len()),
		offsets: strel.Deltas(bc),
		pos:     make(ndarray.Position, array.NDim()),
	}
	r.init(markers)
	r.process()

	if cfg.Stats != nil {
		*cfg.Stats = r.stats
	}
	cfg.Logger.V(1).Info("watershed complete",
		"kind", array.Kind().String(),
		"shape", []int(array.Shape()),
		"offsets", len(r.offsets),
		"seeds", r.stats.Seeds,
		"pushes", r.stats.Pushes,
		"settled", r.stats.Settled,
	)

	return res, nil
}

// runner holds the mutable state for a single CWatershed execution.
type runner[T constraints.Integer] struct {
	array   *ndarray.Array[T]  // input image; read-only
	res     *ndarray.Array[T]  // labels being written
	cost    *ndarray.Array[T]  // lowest intensity recorded per position
	status  []bool             // settled flags by linear index
	offsets []ndarray.Position // active element offsets
	pq      itemPQ[T]          // min-heap of pending positions
	seq     int                // next insertion index
	pos     ndarray.Position   // scratch position for the popped index
	stats   Stats
}

// push queues idx with the given priority and the next insertion index.
func (r *runner[T]) push(priority T, idx int) {
	heap.Push(&r.pq, item[T]{priority: priority, seq: r.seq, idx: idx})
	r.seq++
	r.stats.Pushes++
}

// init writes the seed labels and costs and queues every seed with its
// marker value as priority.
func (r *runner[T]) init(markers *ndarray.Array[T]) {
	heap.Init(&r.pq)
	markers.Each(func(i int, _ ndarray.Position, m T) {
		if m == 0 {
			return
		}
		r.res.SetIndex(i, m)
		r.cost.SetIndex(i, r.array.AtIndex(i))
		r.push(m, i)
		r.stats.Seeds++
	})
}

// process pops until the queue is empty, settling and expanding each position.
func (r *runner[T]) process() {
	for r.pq.Len() > 0 {
		it := heap.Pop(&r.pq).(item[T])
		if r.status[it.idx] {
			continue
		}
		r.status[it.idx] = true
		r.stats.Settled++
		r.relax(it.idx)
	}
}

// relax offers the label of u to every unsettled neighbour whose intensity
// strictly improves on its recorded cost.
func (r *runner[T]) relax(u int) {
	pos := r.array.PositionOf(u, r.pos)
	label := r.res.AtIndex(u)
	for _, d := range r.offsets {
		n, ok := r.array.Neighbor(pos, d)
		if !ok || r.status[n] {
			continue
		}
		c := r.array.AtIndex(n)
		if c >= r.cost.AtIndex(n) {
			continue
		}
		r.cost.SetIndex(n, c)
		r.res.SetIndex(n, label)
		r.push(c, n)
	}
}
