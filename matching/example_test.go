// SPDX-License-Identifier: MIT

package matching_test

import (
	"fmt"

	"github.com/katalvlaran/lvsolve/core"
	"github.com/katalvlaran/lvsolve/matching"
)

// ExampleHopcroftKarp assigns workers to tasks.
func ExampleHopcroftKarp() {
	g := core.NewGraph()
	_, _ = g.AddEdge("ann", "build", 0)
	_, _ = g.AddEdge("bob", "build", 0)
	_, _ = g.AddEdge("bob", "test", 0)
	_, _ = g.AddEdge("cid", "test", 0)

	hk, err := matching.NewHopcroftKarp[string, *core.Edge](g, []string{"ann", "bob", "cid"})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("size:", hk.Size())
	for _, w := range hk.Left() {
		if t, ok := hk.Partner(w); ok {
			fmt.Println(w, "→", t)
		} else {
			fmt.Println(w, "→ -")
		}
	}
	// Output:
	// size: 2
	// ann → build
	// bob → test
	// cid → -
}
