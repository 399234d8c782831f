package client

import (
	"context"
	"fmt"
	"net/http"
)

// Query retrieves the document nodes most relevant to a question.
func (c *Client) Query(ctx context.Context, req QueryRequest) (*QueryResult, error) {
	if req.DocumentID == "" {
		return nil, fmt.Errorf("query requires a document id")
	}
	if req.Question == "" {
		return nil, fmt.Errorf("query requires a question")
	}

	var result QueryResult
	if err := c.doJSON(ctx, http.MethodPost, "/query", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
