// SPDX-License-Identifier: MIT

package dense

// None marks the end of an adjacency list.
const None int32 = -1

// Arcs is a linked-list adjacency stored in three parallel slices:
//
//	First[v] - head arc of v's list, or None
//	Next[e]  - next arc in the same list, or None
//	To[e]    - head vertex of arc e
//
// Arcs are only ever added in pairs by AddPair, so arc 2k runs u→v and arc
// 2k+1 runs v→u, and Companion(e) == e^1 holds for every arc.
type Arcs struct {
	First []int32
	Next  []int32
	To    []int32
}

// NewArcs allocates an empty structure for n vertices with room for
// pairs companion pairs.
func NewArcs(n, pairs int) *Arcs {
	a := &Arcs{
		First: make([]int32, n),
		Next:  make([]int32, 0, 2*pairs),
		To:    make([]int32, 0, 2*pairs),
	}
	for i := range a.First {
		a.First[i] = None
	}

	return a
}

// AddPair appends arc u→v and its companion v→u, prepending each to its
// tail's list, and returns the id of the forward arc (always even).
func (a *Arcs) AddPair(u, v int32) int32 {
	fwd := int32(len(a.To))
	a.push(u, v)
	a.push(v, u)

	return fwd
}

func (a *Arcs) push(from, to int32) {
	id := int32(len(a.To))
	a.To = append(a.To, to)
	a.Next = append(a.Next, a.First[from])
	a.First[from] = id
}

// Companion returns the reverse arc of e.
func Companion(e int32) int32 { return e ^ 1 }

// Len returns the number of arcs; it is always even.
func (a *Arcs) Len() int { return len(a.To) }

// Vertices returns the number of vertices.
func (a *Arcs) Vertices() int { return len(a.First) }

// Tail returns the vertex arc e leaves from, i.e. the head of its companion.
func (a *Arcs) Tail(e int32) int32 { return a.To[Companion(e)] }
