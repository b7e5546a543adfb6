// SPDX-License-Identifier: MIT

package flow_test

import (
	"fmt"

	"github.com/katalvlaran/lvsolve/core"
	"github.com/katalvlaran/lvsolve/flow"
)

// ExampleDinic_cdn models the throughput of a small content delivery network
// in Gbps. A client feeds two points of presence, each uplinked to two
// origins that drain into the backbone:
//
//	Client→PoP1 10   PoP1→Origin1 5   PoP2→Origin1 10   Origin1→Sink 20
//	Client→PoP2 15   PoP1→Origin2 5   PoP2→Origin2 3    Origin2→Sink 20
//
// PoP1 can forward all 10 it receives; PoP2 can forward only 13 of its 15.
// The minimum cut separates the client and PoP2 from the rest.
func ExampleDinic_cdn() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, l := range []struct {
		from, to string
		gbps     float64
	}{
		{"Client", "PoP1", 10},
		{"Client", "PoP2", 15},
		{"PoP1", "Origin1", 5},
		{"PoP1", "Origin2", 5},
		{"PoP2", "Origin1", 10},
		{"PoP2", "Origin2", 3},
		{"Origin1", "Sink", 20},
		{"Origin2", "Sink", 20},
	} {
		if _, err := g.AddEdge(l.from, l.to, l.gbps); err != nil {
			fmt.Println(err)
			return
		}
	}

	d, err := flow.NewDinic[string, *core.Edge](g)
	if err != nil {
		fmt.Println(err)
		return
	}
	if err = d.ComputeMaxFlow("Client", "Sink"); err != nil {
		fmt.Println(err)
		return
	}
	value, _ := d.MaxFlowValue()
	fmt.Printf("throughput: %g Gbps\n", value)

	view, _ := d.Flow()
	for e, f := range view.All() {
		if f == e.Weight && e.From != "Client" {
			fmt.Printf("saturated: %s→%s\n", e.From, e.To)
		}
	}
	side, _ := d.MinCut()
	fmt.Println("cut:", side)
	// Output:
	// throughput: 23 Gbps
	// saturated: PoP1→Origin1
	// saturated: PoP1→Origin2
	// saturated: PoP2→Origin1
	// saturated: PoP2→Origin2
	// cut: [Client PoP2]
}
