package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bookshare/bookshare-service/internal/model"
	"github.com/bookshare/bookshare-service/pkg/breaker"
)

const defaultMetadataURL = "https://openlibrary.org"

// MetadataClient queries the external book-metadata search API. The circuit
// breaker keeps a flapping upstream from tying up request handlers.
type MetadataClient struct {
	log     *zap.Logger
	client  *http.Client
	baseURL string
	cb      breaker.CircuitBreaker
}

func NewMetadataClient(log *zap.Logger, baseURL string) *MetadataClient {
	if baseURL == "" {
		baseURL = defaultMetadataURL
	}
	return &MetadataClient{
		log:     log.Named("metadata"),
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
		cb:      breaker.New(20, 30*time.Second, 0.5, 5),
	}
}

type searchResponse struct {
	Docs []struct {
		Title            string   `json:"title"`
		AuthorName       []string `json:"author_name"`
		FirstPublishYear int      `json:"first_publish_year"`
		ISBN             []string `json:"isbn"`
		CoverID          int      `json:"cover_i"`
	} `json:"docs"`
}

func (m *MetadataClient) Search(ctx context.Context, query string, limit int) ([]model.MetadataBook, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	var books []model.MetadataBook
	err := m.cb.Call(func() error {
		u := fmt.Sprintf("%s/search.json?q=%s&limit=%d", m.baseURL, url.QueryEscape(query), limit)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return err
		}
		resp, err := m.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return errors.Errorf("metadata search: status %d", resp.StatusCode)
		}

		var sr searchResponse
		if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
			return err
		}

		books = make([]model.MetadataBook, 0, len(sr.Docs))
		for _, doc := range sr.Docs {
			book := model.MetadataBook{
				Title:          doc.Title,
				Authors:        doc.AuthorName,
				FirstPublished: doc.FirstPublishYear,
			}
			if len(doc.ISBN) > 0 {
				book.ISBN = doc.ISBN[0]
			}
			if doc.CoverID != 0 {
				book.CoverURL = fmt.Sprintf("https://covers.openlibrary.org/b/id/%d-M.jpg", doc.CoverID)
			}
			books = append(books, book)
		}
		return nil
	})
	if err != nil {
		m.log.Warn("metadata search", zap.String("q", query), zap.Error(err))
		return nil, err
	}
	return books, nil
}

func (s *Service) SearchMetadata(ctx context.Context, query string, limit int) ([]model.MetadataBook, error) {
	return s.metadata.Search(ctx, query, limit)
}
