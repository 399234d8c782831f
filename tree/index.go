package tree

// Flatten returns every node of the forest in canonical pre-order: each node
// before its children, children in listed order, roots in slice order. Nodes
// without a NodeID are included so positional neighbor lookups stay correct.
func Flatten(roots []*Node) []*Node {
	var flat []*Node
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		flat = append(flat, n)
		for _, child := range n.Nodes {
			walk(child)
		}
	}
	for _, root := range roots {
		walk(root)
	}
	return flat
}

// IndexByID maps NodeID to node for every node in the forest that carries an
// identifier. Nodes without a NodeID are traversed but never inserted.
//
// Duplicate NodeIDs are a caller error: the index does not detect them, and
// the later occurrence in traversal order overwrites the earlier one
// (last-write-wins). This behavior is part of the contract and tested.
func IndexByID(roots []*Node) map[string]*Node {
	flat := Flatten(roots)
	index := make(map[string]*Node, len(flat))
	for _, n := range flat {
		if n.NodeID == "" {
			continue
		}
		index[n.NodeID] = n
	}
	return index
}

// PageRange is a node together with its derived page span. Start is the
// node's own PageIndex. End is the PageIndex of the node immediately
// following it in pre-order across the whole input; for the last node overall
// it is the caller-supplied maximum page. Either bound may be nil when the
// underlying page numbers are unknown.
type PageRange struct {
	Node  *Node `json:"node" yaml:"node"`
	Start *int  `json:"start_index" yaml:"start_index"`
	End   *int  `json:"end_index" yaml:"end_index"`
}

// PageRanges derives a page span for every identified node in the forest.
//
// Sections only store their start page; where a section ends is implicitly
// where the next section begins. That makes the end bound a positional
// property of the whole traversal, not of any single node, so the full
// pre-order list is materialized before any entry is computed. maxPage closes
// the final node's range and may be nil, leaving that End unset.
//
// Duplicate NodeIDs follow the same last-write-wins contract as IndexByID.
func PageRanges(roots []*Node, maxPage *int) map[string]PageRange {
	flat := Flatten(roots)
	ranges := make(map[string]PageRange, len(flat))
	for i, n := range flat {
		if n.NodeID == "" {
			continue
		}
		end := maxPage
		if i+1 < len(flat) {
			end = flat[i+1].PageIndex
		}
		ranges[n.NodeID] = PageRange{
			Node:  n,
			Start: n.PageIndex,
			End:   end,
		}
	}
	return ranges
}
