package identify

import (
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/inodb/svtools/internal/chromstring"
)

// Clash is a maximal group of distinct rearrangements that share one
// signature and so cannot be told apart by that observation.
type Clash struct {
	Signature Signature
	Members   []chromstring.ChromString // sorted by notation
}

// FindClashes computes the signature of every distinct rearrangement and
// returns the connected components of the graph joining rearrangements with
// equal signatures. Rearrangements without a clashing partner are not
// reported. Output is sorted and does not depend on worker scheduling.
func (e *Enumerator) FindClashes(strs []chromstring.ChromString, fn SignatureFunc) ([]Clash, error) {
	unique := chromstring.NewSet(strs...).Sorted()

	sigs := make([]Signature, len(unique))
	byKey := make(map[string][]int)
	results := ParallelSignatures(feed(unique), fn, e.workers)
	if err := OrderedCollect(results, func(r WorkResult) error {
		if r.Err != nil {
			return fmt.Errorf("signature of %s: %w", r.Chrom, r.Err)
		}
		sigs[r.Seq] = r.Sig
		key := r.Sig.Key()
		byKey[key] = append(byKey[key], r.Seq)
		return nil
	}); err != nil {
		return nil, err
	}

	// Equal signatures are an equivalence, so chaining each group is enough
	// to make it one component.
	g := simple.NewUndirectedGraph()
	for _, group := range byKey {
		for i := 1; i < len(group); i++ {
			g.SetEdge(g.NewEdge(simple.Node(group[i-1]), simple.Node(group[i])))
		}
	}

	var clashes []Clash
	for _, component := range topo.ConnectedComponents(g) {
		members := make([]chromstring.ChromString, 0, len(component))
		for _, n := range component {
			members = append(members, unique[n.ID()])
		}
		chromstring.Sort(members)
		clashes = append(clashes, Clash{
			Signature: sigs[component[0].ID()],
			Members:   members,
		})
	}
	slices.SortFunc(clashes, func(a, b Clash) int {
		return strings.Compare(a.Members[0].String(), b.Members[0].String())
	})

	e.logger.Info("clash detection complete",
		zap.Int("rearrangements", len(unique)),
		zap.Int("signatures", len(byKey)),
		zap.Int("clashes", len(clashes)))
	return clashes, nil
}

// Clashes enumerates every rearrangement of cs and finds the ones that
// clash under the diagram signature.
func (e *Enumerator) Clashes(cs chromstring.ChromString) ([]Clash, error) {
	all, err := e.Rearrangements(cs)
	if err != nil {
		return nil, err
	}
	return e.FindClashes(all.Sorted(), DiagramSignature(e.codec))
}
