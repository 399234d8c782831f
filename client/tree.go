package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pagetree-ai/pagetree-go/tree"
)

// TreeResult is a document's hierarchical section tree.
type TreeResult struct {
	DocumentID string       `json:"doc_id"`
	TotalPages int          `json:"total_pages,omitempty"`
	Roots      []*tree.Node `json:"result"`
}

// MaxPage returns the document's last page for tree.PageRanges, nil when the
// server did not report a page total.
func (r *TreeResult) MaxPage() *int {
	if r.TotalPages <= 0 {
		return nil
	}
	total := r.TotalPages
	return &total
}

// Tree fetches the section tree of a completed document. Node fields this
// client does not model are preserved in each node's Extra bag.
func (c *Client) Tree(ctx context.Context, docID string, opts TreeOptions) (*TreeResult, error) {
	path := "/documents/" + url.PathEscape(docID) + "/tree"
	if opts.IncludeText {
		path += "?include_text=true"
	}

	var result TreeResult
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
