package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"blogmosaic/internal/model"
)

// documentGateway implements DocumentGateway against the posts collection.
type documentGateway struct {
	client *Client
}

func NewDocumentGateway(client *Client) DocumentGateway {
	return &documentGateway{client: client}
}

func (g *documentGateway) collectionPath() string {
	return fmt.Sprintf("/collections/%s/documents", url.PathEscape(g.client.collection))
}

func (g *documentGateway) documentPath(id string) string {
	return g.collectionPath() + "/" + url.PathEscape(id)
}

type listResponse struct {
	Documents []model.PostRecord `json:"documents"`
	Total     int                `json:"total"`
}

func (g *documentGateway) List(ctx context.Context, filters []Filter) ([]model.PostRecord, error) {
	path := g.collectionPath()
	if len(filters) > 0 {
		q := url.Values{}
		for _, f := range filters {
			q.Add("filter", f.Field+"="+f.Value)
		}
		path += "?" + q.Encode()
	}

	var res listResponse
	if err := g.client.do(ctx, "list documents", http.MethodGet, path, "", nil, &res); err != nil {
		return nil, err
	}
	return res.Documents, nil
}

// Get returns (nil, nil) when the document does not exist.
func (g *documentGateway) Get(ctx context.Context, id string) (*model.PostRecord, error) {
	resp, err := g.client.doRaw(ctx, "get document", http.MethodGet, g.documentPath(id), "", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if isStatus(resp, http.StatusNotFound) {
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RemoteError{Op: "get document", Message: readRemoteMessage(resp)}
	}

	var doc model.PostRecord
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, &RemoteError{Op: "get document", Message: err.Error()}
	}
	return &doc, nil
}

type documentPayload struct {
	DocumentID string            `json:"documentId,omitempty"`
	Data       *model.PostRecord `json:"data"`
}

func (g *documentGateway) Create(ctx context.Context, doc *model.PostRecord) (*model.PostRecord, error) {
	payload := documentPayload{DocumentID: doc.ID, Data: doc}

	var created model.PostRecord
	if err := g.client.do(ctx, "create document", http.MethodPost, g.collectionPath(), "", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (g *documentGateway) Update(ctx context.Context, id string, doc *model.PostRecord) (*model.PostRecord, error) {
	payload := documentPayload{Data: doc}

	var updated model.PostRecord
	if err := g.client.do(ctx, "update document", http.MethodPatch, g.documentPath(id), "", payload, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (g *documentGateway) Delete(ctx context.Context, id string) error {
	return g.client.do(ctx, "delete document", http.MethodDelete, g.documentPath(id), "", nil, nil)
}
