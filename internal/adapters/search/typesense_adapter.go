package search

import (
	"context"
	"fmt"
	"time"

	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"

	"github.com/avaheights/society-portal/internal/domain/entities"
	"github.com/avaheights/society-portal/internal/domain/repositories"
	tsclient "github.com/avaheights/society-portal/internal/infrastructure/clients/typesense"
)

const collectionName = "notices"

// TypesenseAdapter implements notice search using Typesense
type TypesenseAdapter struct {
	client *tsclient.Client
}

var _ repositories.NoticeSearchRepository = (*TypesenseAdapter)(nil)

// NewTypesenseAdapter creates a new Typesense adapter
func NewTypesenseAdapter(client *tsclient.Client) *TypesenseAdapter {
	return &TypesenseAdapter{client: client}
}

// InitSchema ensures the notices collection exists
func (a *TypesenseAdapter) InitSchema(ctx context.Context) error {
	_, err := a.client.Client().Collection(collectionName).Retrieve(ctx)
	if err == nil {
		return nil
	}

	schema := &api.CollectionSchema{
		Name: collectionName,
		Fields: []api.Field{
			{Name: "id", Type: "string"},
			{Name: "title", Type: "string"},
			{Name: "content", Type: "string"},
			{Name: "date", Type: "int64"},
		},
		DefaultSortingField: pointer.String("date"),
	}

	_, err = a.client.Client().Collections().Create(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create typesense collection: %w", err)
	}

	return nil
}

// Index indexes a notice
func (a *TypesenseAdapter) Index(ctx context.Context, notice *entities.Notice) error {
	document := map[string]interface{}{
		"id":      notice.ID,
		"title":   notice.Title,
		"content": notice.Content,
		"date":    notice.Date.Unix(),
	}

	_, err := a.client.Client().Collection(collectionName).Documents().Upsert(ctx, document)
	if err != nil {
		return fmt.Errorf("failed to index notice: %w", err)
	}

	return nil
}

// Search returns notices matching the query, newest first
func (a *TypesenseAdapter) Search(ctx context.Context, query string) ([]*entities.Notice, error) {
	searchParams := &api.SearchCollectionParams{
		Q:       pointer.String(query),
		QueryBy: pointer.String("title,content"),
		SortBy:  pointer.String("date:desc"),
		PerPage: pointer.Int(50),
	}

	result, err := a.client.Client().Collection(collectionName).Documents().Search(ctx, searchParams)
	if err != nil {
		return nil, fmt.Errorf("failed to search notices: %w", err)
	}

	notices := []*entities.Notice{}
	if result.Hits == nil {
		return notices, nil
	}
	for _, hit := range *result.Hits {
		doc := *hit.Document

		notice := &entities.Notice{}
		if val, ok := doc["id"].(string); ok {
			notice.ID = val
		}
		if val, ok := doc["title"].(string); ok {
			notice.Title = val
		}
		if val, ok := doc["content"].(string); ok {
			notice.Content = val
		}
		if val, ok := doc["date"].(float64); ok {
			notice.Date = time.Unix(int64(val), 0).UTC()
		}

		notices = append(notices, notice)
	}

	return notices, nil
}
