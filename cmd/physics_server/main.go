// Headless simulation that streams physics snapshots over a websocket
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"rigidsim/internal/config"
	"rigidsim/internal/stream"
	"rigidsim/internal/world"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "config file (TOML)")
	scenePath := flag.String("scene", "", "scene file to load, overrides the config")
	addr := flag.String("addr", "", "listen address, overrides the config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *scenePath != "" {
		cfg.Scene.Path = *scenePath
	}
	if *addr != "" {
		cfg.Stream.Addr = *addr
	}

	w := world.New(cfg.Physics.GravityVector(), cfg.Physics.TimeStep)
	cfg.Physics.Apply(w.Physics)
	if cfg.Scene.Path != "" {
		if err := w.LoadScene(cfg.Scene.Path); err != nil {
			log.Fatalf("Failed to load scene: %v", err)
		}
	} else if err := w.Apply(world.DemoScene()); err != nil {
		log.Fatalf("Failed to build scene: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A nil channel never fires, so an unwatched scene never reloads
	var changed <-chan struct{}
	if cfg.Scene.Path != "" && cfg.Scene.Watch {
		watcher, err := world.NewWatcher(cfg.Scene.Path)
		if err != nil {
			log.Printf("Scene: hot reload disabled: %v", err)
		} else {
			defer watcher.Close()
			changed = watcher.Changed()
		}
	}

	hub := stream.NewHub()
	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	server := &http.Server{Addr: cfg.Stream.Addr, Handler: mux}

	// The simulation and the snapshots share the world
	var mu sync.Mutex
	start := time.Now()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		simulate(ctx, &mu, w, cfg.Physics.TimeStep, cfg.Scene.Path, changed)
	}()
	go func() {
		defer wg.Done()
		hub.Run(ctx, cfg.Stream.Interval(), func() any {
			mu.Lock()
			defer mu.Unlock()
			return stream.Capture(w.Physics, time.Since(start))
		})
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	log.Printf("Stream: serving %d objects on ws://%s/ws", len(w.Models()), cfg.Stream.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server error: %v", err)
	}
	wg.Wait()
	log.Printf("Stream: stopped after %d ticks", w.Physics.Ticks())
}

// simulate steps the world in real time until ctx is done, reloading
// scenePath whenever changed fires.
func simulate(ctx context.Context, mu *sync.Mutex, w *world.World, timeStep float32, scenePath string, changed <-chan struct{}) {
	ticker := time.NewTicker(time.Duration(float64(timeStep) * float64(time.Second)))
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case <-changed:
			mu.Lock()
			if err := w.LoadScene(scenePath); err != nil {
				log.Printf("Scene: reload failed, keeping current world: %v", err)
			}
			mu.Unlock()
		case now := <-ticker.C:
			mu.Lock()
			w.Update(float32(now.Sub(last).Seconds()))
			mu.Unlock()
			last = now
		}
	}
}
