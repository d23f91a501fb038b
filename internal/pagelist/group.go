package pagelist

// GroupSource paginates through the albums sharing a parent with the active one.
type GroupSource struct {
	listSource
}

// NewGroupSource selects from albums the siblings of active: the children of
// its parent, or the top-level albums of the gallery when it has none. albums
// must be in display order. Albums are matched by name (Node.Key); an active
// album missing from albums leaves the current position unresolved.
func NewGroupSource(albums []Node, active Node) *GroupSource {
	return &GroupSource{listSource: newListSource(childrenOf(albums, active.Parent), active.Key)}
}

// childrenOf keeps the nodes whose parent is parent, preserving order.
func childrenOf(nodes []Node, parent string) []Node {
	var children []Node
	for _, n := range nodes {
		if n.Parent == parent {
			children = append(children, n)
		}
	}
	return children
}
