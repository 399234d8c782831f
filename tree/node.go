// Package tree provides the document tree model returned by the PageTree API
// and pure transforms over it: pre-order flattening, node indexing, page-range
// derivation, and structural field filtering.
// This package has no dependencies on other pagetree packages.
package tree

import "encoding/json"

// Node is one section of a parsed document. The API returns documents as an
// ordered forest of Nodes; pre-order traversal (node before its children,
// children in listed order) is the canonical document order.
//
// NodeID and PageIndex are optional in API responses. An empty NodeID means
// the node carries no identifier; a nil PageIndex means the start page is
// unknown. Fields the API adds that this struct does not model are kept
// verbatim in Extra and round-trip through JSON unchanged.
type Node struct {
	NodeID    string
	Title     string
	PageIndex *int
	Text      string
	Nodes     []*Node

	// Extra holds unrecognized JSON fields, preserved verbatim.
	Extra map[string]json.RawMessage
}

// Page returns the node's start page and whether it is set.
func (n *Node) Page() (int, bool) {
	if n.PageIndex == nil {
		return 0, false
	}
	return *n.PageIndex, true
}

// UnmarshalJSON decodes a node, routing unknown fields into Extra.
func (n *Node) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	if raw, ok := fields["node_id"]; ok {
		if err := json.Unmarshal(raw, &n.NodeID); err != nil {
			return err
		}
		delete(fields, "node_id")
	}
	if raw, ok := fields["title"]; ok {
		if err := json.Unmarshal(raw, &n.Title); err != nil {
			return err
		}
		delete(fields, "title")
	}
	if raw, ok := fields["page_index"]; ok {
		if err := json.Unmarshal(raw, &n.PageIndex); err != nil {
			return err
		}
		delete(fields, "page_index")
	}
	if raw, ok := fields["text"]; ok {
		if err := json.Unmarshal(raw, &n.Text); err != nil {
			return err
		}
		delete(fields, "text")
	}
	if raw, ok := fields["nodes"]; ok {
		if err := json.Unmarshal(raw, &n.Nodes); err != nil {
			return err
		}
		delete(fields, "nodes")
	}

	if len(fields) > 0 {
		n.Extra = fields
	}
	return nil
}

// MarshalJSON encodes a node, merging Extra back alongside the known fields.
// Known fields win over Extra entries with the same name.
func (n *Node) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(n.Extra)+5)
	for k, v := range n.Extra {
		out[k] = v
	}

	if n.NodeID != "" {
		out["node_id"] = mustRaw(n.NodeID)
	}
	if n.Title != "" {
		out["title"] = mustRaw(n.Title)
	}
	if n.PageIndex != nil {
		out["page_index"] = mustRaw(*n.PageIndex)
	}
	if n.Text != "" {
		out["text"] = mustRaw(n.Text)
	}
	if len(n.Nodes) > 0 {
		raw, err := json.Marshal(n.Nodes)
		if err != nil {
			return nil, err
		}
		out["nodes"] = raw
	}

	return json.Marshal(out)
}

// mustRaw marshals values that cannot fail (strings, ints).
func mustRaw(v any) json.RawMessage {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return raw
}
