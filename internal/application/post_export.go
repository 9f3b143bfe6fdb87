package application

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"path"
	"time"

	"github.com/google/uuid"

	"github.com/oksasatya/go-ddd-social/internal/domain/entity"
	repo "github.com/oksasatya/go-ddd-social/internal/domain/repository"
)

var ErrExportUnavailable = errors.New("export storage not configured")

// ObjectStore writes a blob and returns its public URL.
type ObjectStore interface {
	Put(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
}

// PostExport is the document written for an author's export.
type PostExport struct {
	ExportedAt time.Time               `json:"exportedAt"`
	Posts      []entity.AggregatedPost `json:"posts"`
}

// PostExporter snapshots an author's posts through the same query pipeline
// as every other read path.
type PostExporter struct {
	Query *PostQuery
	Store ObjectStore
	Now   func() time.Time
}

func NewPostExporter(query *PostQuery, store ObjectStore) *PostExporter {
	return &PostExporter{Query: query, Store: store, Now: time.Now}
}

// Export writes the author's posts as JSON and returns the object URL.
func (e *PostExporter) Export(ctx context.Context, authorID string) (string, error) {
	if e.Store == nil {
		return "", ErrExportUnavailable
	}
	posts, err := e.Query.Run(ctx, repo.PostCriteria{AuthorID: authorID, NewestFirst: true}, authorID)
	if err != nil {
		return "", err
	}
	doc := PostExport{ExportedAt: e.Now().UTC(), Posts: posts}
	b, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	objectPath := path.Join("exports", authorID, uuid.NewString()+".json")
	url, err := e.Store.Put(ctx, objectPath, "application/json", bytes.NewReader(b))
	if err != nil {
		return "", persistence("upload export", err)
	}
	return url, nil
}
