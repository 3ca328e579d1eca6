package server

import (
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"word-history-project/logger"
	"word-history-project/metrics"
	"word-history-project/view"
)

// viewStore keeps the pages served to browsers. The least recently used page
// is closed, releasing its charts, once the store is full.
type viewStore struct {
	pages *lru.Cache[string, *view.Page]
}

func newViewStore(size int) (*viewStore, error) {
	pages, err := lru.NewWithEvict(size, func(id string, page *view.Page) {
		if err := page.Close(); err != nil {
			logger.Logger.Warn("failed to release page view", "view_id", id, "err", err)
		}
	})
	if err != nil {
		return nil, err
	}
	return &viewStore{pages: pages}, nil
}

// Add stores page under a new view id
func (s *viewStore) Add(page *view.Page) string {
	id := uuid.NewString()
	s.pages.Add(id, page)
	metrics.LiveViews.Set(float64(s.pages.Len()))
	return id
}

func (s *viewStore) Get(id string) (*view.Page, bool) {
	return s.pages.Get(id)
}

// Remove closes and drops the page stored under id
func (s *viewStore) Remove(id string) bool {
	removed := s.pages.Remove(id)
	metrics.LiveViews.Set(float64(s.pages.Len()))
	return removed
}

// Purge closes every stored page
func (s *viewStore) Purge() {
	s.pages.Purge()
	metrics.LiveViews.Set(0)
}

func (s *viewStore) Len() int {
	return s.pages.Len()
}
