package docstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Client is the HTTP wrapper for the remote document-collection API.
type Client struct {
	baseURL     string
	collection  string
	accessToken string
	httpClient  *http.Client
}

// NewClient creates a new document-store HTTP client for one collection.
func NewClient(baseURL, collection, accessToken string) *Client {
	return &Client{
		baseURL:     baseURL,
		collection:  collection,
		accessToken: accessToken,
		httpClient:  &http.Client{},
	}
}

// ListDocuments fetches every document in the collection, ordered by the
// store's creation timestamp so the result is stable across fetches.
func (c *Client) ListDocuments(ctx context.Context) ([]Document, error) {
	u := fmt.Sprintf("%s/api/v1/collections/%s/documents?orderBy=createTime", c.baseURL, c.collection)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build list documents request: %w", err)
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call document store list API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("document store list error %d: %s", resp.StatusCode, string(raw))
	}

	var listResp struct {
		Documents []Document `json:"documents"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listResp); err != nil {
		return nil, fmt.Errorf("failed to decode document store list response: %w", err)
	}
	return listResp.Documents, nil
}

// PatchDocument upserts one document by key with partial-field merge:
// fields absent from the request body are preserved on the stored document.
func (c *Client) PatchDocument(ctx context.Context, key string, fields map[string]any) (*Document, error) {
	u := fmt.Sprintf("%s/api/v1/collections/%s/documents/%s?merge=true",
		c.baseURL, c.collection, url.PathEscape(key))

	body, err := json.Marshal(PatchDocumentRequest{Fields: fields})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal patch document request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPatch, u, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build patch document request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call document store patch API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("document store patch error %d: %s", resp.StatusCode, string(raw))
	}

	var doc Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode document store patch response: %w", err)
	}
	return &doc, nil
}

// DeleteDocument removes one document by key.
func (c *Client) DeleteDocument(ctx context.Context, key string) error {
	u := fmt.Sprintf("%s/api/v1/collections/%s/documents/%s",
		c.baseURL, c.collection, url.PathEscape(key))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build delete document request: %w", err)
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call document store delete API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("document store delete error %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}

// ---- Request/Response types scoped to this package ----

// PatchDocumentRequest is the body for PATCH .../documents/{key}.
type PatchDocumentRequest struct {
	Fields map[string]any `json:"fields"`
}

// Document is the store's document object. Fields is schema-less: legacy
// and partially-shaped documents are expected and handled by the mapper.
type Document struct {
	Key        string         `json:"key"`
	Fields     map[string]any `json:"fields"`
	CreateTime string         `json:"createTime"`
	UpdateTime string         `json:"updateTime"`
}
