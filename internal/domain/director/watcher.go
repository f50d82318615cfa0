package director

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/turtacn/CineStyle-Engine/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/CineStyle-Engine/pkg/errors"
)

// Provider hands out the current catalog and supports atomic replacement.
// Matching services hold a Provider rather than a *Catalog so a hot-reload
// takes effect on the next request without restarting the process.
type Provider struct {
	mu      sync.RWMutex
	catalog *Catalog
}

// NewProvider wraps an initial catalog.
func NewProvider(c *Catalog) *Provider {
	return &Provider{catalog: c}
}

// Current returns the active catalog.
func (p *Provider) Current() *Catalog {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.catalog
}

// Swap atomically replaces the active catalog.
func (p *Provider) Swap(c *Catalog) {
	if c == nil {
		return
	}
	p.mu.Lock()
	p.catalog = c
	p.mu.Unlock()
}

// WatchCatalogFile monitors path and swaps the provider's catalog whenever
// the file changes and parses/validates cleanly.  A broken edit leaves the
// previous catalog in place and logs a warning; the engine never serves a
// half-loaded catalog.
//
// The watch runs until ctx is cancelled.  It is non-blocking: the watcher
// goroutine is started before returning.
func WatchCatalogFile(ctx context.Context, path string, provider *Provider, log logging.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to create catalog watcher")
	}
	// Watch the directory rather than the file: editors and config-map
	// updates replace the file, which drops a direct file watch.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to watch catalog directory")
	}

	target := filepath.Clean(path)
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				cat, err := LoadCatalogFile(path)
				if err != nil {
					log.Warn("catalog reload rejected, keeping previous catalog",
						logging.String("path", path), logging.Err(err))
					continue
				}
				provider.Swap(cat)
				log.Info("catalog reloaded",
					logging.String("path", path), logging.Int("directors", cat.Len()))
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn("catalog watcher error", logging.Err(err))
			}
		}
	}()
	return nil
}
