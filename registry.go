package jawadb

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/jawadb/go-jawadb/debug"
)

// The registry tracks every open document so a shutdown sweep can flush
// them. Membership carries no ownership: documents join at Open and leave
// at Close, and the sweep only ever calls Save.
var registry = struct {
	mu   sync.Mutex
	docs map[*Document]struct{}
}{docs: map[*Document]struct{}{}}

func registryAdd(d *Document) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.docs[d] = struct{}{}
	if debug.Registry() {
		debug.Logf("jawadb: registered %s (%d open)", d.path, len(registry.docs))
	}
}

func registryRemove(d *Document) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	delete(registry.docs, d)
	if debug.Registry() {
		debug.Logf("jawadb: deregistered %s (%d open)", d.path, len(registry.docs))
	}
}

func registered() []*Document {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	docs := make([]*Document, 0, len(registry.docs))
	for d := range registry.docs {
		docs = append(docs, d)
	}
	return docs
}

// FlushAll saves every registered document, discarding per-document errors
// so one failing flush does not prevent the others. Callers wanting error
// visibility should Save or Close documents individually.
func FlushAll() {
	flushAll(false)
}

func flushAll(skipInFlight bool) {
	for _, d := range registered() {
		if skipInFlight && d.saving.Load() {
			continue
		}
		if err := d.Save(); err != nil && debug.Registry() {
			debug.Logf("jawadb: flush %s: %v", d.path, err)
		}
	}
}

var signalOnce sync.Once

// HandleSignals installs a handler, once per process, that flushes all
// registered documents on SIGINT or SIGTERM, restores default signal
// handling, and exits with status 1. Open installs it automatically.
// Documents whose save is already in flight when the signal arrives are
// skipped rather than reentered.
func HandleSignals() {
	signalOnce.Do(func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
		go func() {
			sig := <-ch
			if debug.Registry() {
				debug.Logf("jawadb: %v received, flushing", sig)
			}
			flushAll(true)
			signal.Reset(sig)
			os.Exit(1)
		}()
	})
}
