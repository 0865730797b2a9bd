package services

import (
	"context"
	"sync"

	"ocr-translator/internal/config"
	"ocr-translator/internal/logger"
	"ocr-translator/models"
)

// CatalogFetcher is the transport operation the loader depends on.
type CatalogFetcher interface {
	FetchCatalog(ctx context.Context) ([]models.LanguageOption, error)
}

type CatalogStatus string

const (
	CatalogLoading CatalogStatus = "loading"
	CatalogLoaded  CatalogStatus = "loaded"
	CatalogFailed  CatalogStatus = "failed"
)

// CatalogState is a snapshot of the loader. Languages may be empty when
// Loaded; that is a valid catalog, distinct from Failed.
type CatalogState struct {
	Status    CatalogStatus
	Languages []models.LanguageOption
	Message   string
}

// CatalogLoader fetches the language catalog once per activation.
type CatalogLoader struct {
	fetcher CatalogFetcher

	once      sync.Once
	mu        sync.RWMutex
	state     CatalogState
	listeners []func(CatalogState)
}

// NewCatalogLoader creates a loader in the Loading state.
func NewCatalogLoader(fetcher CatalogFetcher) *CatalogLoader {
	return &CatalogLoader{
		fetcher: fetcher,
		state:   CatalogState{Status: CatalogLoading},
	}
}

// OnChange registers a callback invoked with each new state.
func (l *CatalogLoader) OnChange(fn func(CatalogState)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.listeners = append(l.listeners, fn)
}

// State returns the current snapshot.
func (l *CatalogLoader) State() CatalogState {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// Activate issues the single catalog fetch and blocks until it completes.
// Later calls do not fetch again and return the recorded state.
func (l *CatalogLoader) Activate(ctx context.Context) CatalogState {
	l.once.Do(func() {
		languages, err := l.fetcher.FetchCatalog(ctx)
		if err != nil {
			logger.L().Warn().Err(err).Msg("Catalog load failed")
			l.publish(CatalogState{
				Status:    CatalogFailed,
				Languages: []models.LanguageOption{},
				Message:   config.MsgCatalogFailed,
			})
			return
		}

		logger.Info("Catalog loaded: %d languages", len(languages))
		l.publish(CatalogState{Status: CatalogLoaded, Languages: languages})
	})
	return l.State()
}

func (l *CatalogLoader) publish(state CatalogState) {
	l.mu.Lock()
	l.state = state
	listeners := append([]func(CatalogState){}, l.listeners...)
	l.mu.Unlock()

	for _, fn := range listeners {
		fn(state)
	}
}
