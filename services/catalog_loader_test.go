package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"ocr-translator/models"
)

type fakeFetcher struct {
	calls     int32
	languages []models.LanguageOption
	err       error
}

func (f *fakeFetcher) FetchCatalog(ctx context.Context) ([]models.LanguageOption, error) {
	atomic.AddInt32(&f.calls, 1)
	return f.languages, f.err
}

func TestCatalogLoader_InitialState(t *testing.T) {
	l := NewCatalogLoader(&fakeFetcher{})
	if got := l.State().Status; got != CatalogLoading {
		t.Errorf("Status = %q, want loading", got)
	}
}

func TestCatalogLoader_Loaded(t *testing.T) {
	fetcher := &fakeFetcher{languages: []models.LanguageOption{
		{Name: "Spanish", Code: "spa"},
		{Name: "French", Code: "fra"},
	}}
	l := NewCatalogLoader(fetcher)

	state := l.Activate(context.Background())
	if state.Status != CatalogLoaded {
		t.Fatalf("Status = %q, want loaded", state.Status)
	}
	if len(state.Languages) != 2 || state.Languages[0].Code != "spa" || state.Languages[1].Code != "fra" {
		t.Errorf("Languages = %+v, want spa then fra", state.Languages)
	}
	if state.Message != "" {
		t.Errorf("Message = %q, want empty", state.Message)
	}
}

func TestCatalogLoader_EmptyIsLoadedNotFailed(t *testing.T) {
	l := NewCatalogLoader(&fakeFetcher{languages: []models.LanguageOption{}})

	state := l.Activate(context.Background())
	if state.Status != CatalogLoaded {
		t.Errorf("Status = %q, want loaded", state.Status)
	}
	if len(state.Languages) != 0 {
		t.Errorf("Languages = %+v, want empty", state.Languages)
	}
}

func TestCatalogLoader_Failed(t *testing.T) {
	l := NewCatalogLoader(&fakeFetcher{err: &TransportError{Op: "fetch", Status: 503}})

	state := l.Activate(context.Background())
	if state.Status != CatalogFailed {
		t.Fatalf("Status = %q, want failed", state.Status)
	}
	if state.Message != "Failed to load language list from backend." {
		t.Errorf("Message = %q", state.Message)
	}
	if len(state.Languages) != 0 {
		t.Errorf("Languages = %+v, want empty", state.Languages)
	}
}

func TestCatalogLoader_OneFetchPerActivation(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("down")}
	l := NewCatalogLoader(fetcher)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Activate(context.Background())
		}()
	}
	wg.Wait()
	l.Activate(context.Background())

	if got := atomic.LoadInt32(&fetcher.calls); got != 1 {
		t.Errorf("fetch calls = %d, want 1", got)
	}
}

func TestCatalogLoader_OnChange(t *testing.T) {
	l := NewCatalogLoader(&fakeFetcher{languages: []models.LanguageOption{{Name: "German", Code: "deu"}}})

	var seen []CatalogState
	l.OnChange(func(s CatalogState) { seen = append(seen, s) })
	l.Activate(context.Background())

	if len(seen) != 1 {
		t.Fatalf("listener called %d times, want 1", len(seen))
	}
	if seen[0].Status != CatalogLoaded || seen[0].Languages[0].Code != "deu" {
		t.Errorf("seen = %+v", seen[0])
	}
}
