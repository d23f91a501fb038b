package pagelist

import "fmt"

// PageSource paginates through the pages on the same level as the active page.
type PageSource struct {
	listSource
}

// NewPageSource builds the sibling scope of active from pages, the full page
// list in display order. A page with a parent is paged among the direct
// children of that parent; a top-level page among the other top-level pages.
func NewPageSource(pages []Node, active Node) (*PageSource, error) {
	scope := ""
	if active.Parent != "" {
		chain, err := Ancestors(pages, active)
		if err != nil {
			return nil, err
		}
		scope = chain[len(chain)-1].Key
	}
	return &PageSource{listSource: newListSource(childrenOf(pages, scope), active.Key)}, nil
}

// Ancestors returns the parents of n from the outermost down to its direct
// parent. It fails with ErrOrphanPage when a parent is missing from pages or
// the chain loops.
func Ancestors(pages []Node, n Node) ([]Node, error) {
	byKey := make(map[string]Node, len(pages))
	for _, p := range pages {
		byKey[p.Key] = p
	}

	var chain []Node
	seen := map[string]bool{n.Key: true}
	for parent := n.Parent; parent != ""; {
		p, ok := byKey[parent]
		if !ok || seen[parent] {
			return nil, fmt.Errorf("%w: %q (from %q)", ErrOrphanPage, parent, n.Key)
		}
		seen[parent] = true
		chain = append(chain, p)
		parent = p.Parent
	}

	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain, nil
}
