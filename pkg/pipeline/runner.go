package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/blackroad/agentworld/pkg/cache"
	"github.com/blackroad/agentworld/pkg/layout"
	"github.com/blackroad/agentworld/pkg/observability"
	"github.com/blackroad/agentworld/pkg/world"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete generate → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		RunID:     uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Generate
	genStart := time.Now()
	scene, sceneHit, err := r.GenerateSceneWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	result.Scene = scene
	result.Stats.GenerateTime = time.Since(genStart)
	result.Stats.AgentCount = len(scene.Placements)
	result.CacheInfo.SceneHit = sceneHit

	// Compute scene hash for cache keys and correlation
	if sceneData, err := world.MarshalScene(scene); err == nil {
		result.SceneHash = cache.Hash(sceneData)
	}

	r.Logger.Info("generated scene",
		"run_id", result.RunID,
		"agents", len(scene.Placements),
		"duration", result.Stats.GenerateTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, scene, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"run_id", result.RunID,
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// GenerateSceneWithCacheInfo computes the scene with caching and returns
// cache hit info. Generation itself is a pure function; the cache only
// saves re-validating and re-marshaling on repeated runs of the same
// configuration.
func (r *Runner) GenerateSceneWithCacheInfo(ctx context.Context, opts Options) (world.Scene, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return world.Scene{}, false, err
	}
	r.applyLogger(&opts)

	cfgData, err := json.Marshal(opts.Layout)
	if err != nil {
		return world.Scene{}, false, fmt.Errorf("serialize config for cache key: %w", err)
	}
	cacheKey := r.Keyer.SceneKey(cache.SceneKeyOpts{ConfigHash: cache.Hash(cfgData)})

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if cached, err := world.UnmarshalScene(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "scene")
				return cached, true, nil // Cache hit
			}
			// If deserialization fails, fall through to recompute
		}
		observability.Cache().OnCacheMiss(ctx, "scene")
	}

	// Generate
	start := time.Now()
	observability.Scene().OnGenerateStart(ctx, opts.Layout.TotalAgents())
	scene := layout.GenerateScene(opts.Layout)
	observability.Scene().OnGenerateComplete(ctx, len(scene.Placements), time.Since(start), nil)

	// Cache the result
	if data, err := world.MarshalScene(scene); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLScene)
		observability.Cache().OnCacheSet(ctx, "scene", len(data))
	}

	return scene, false, nil // Cache miss
}

// GenerateScene is a convenience wrapper that calls GenerateSceneWithCacheInfo
// and discards the cache hit info.
func (r *Runner) GenerateScene(ctx context.Context, opts Options) (world.Scene, error) {
	scene, _, err := r.GenerateSceneWithCacheInfo(ctx, opts)
	return scene, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, scene world.Scene, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	sceneData, err := world.MarshalScene(scene)
	if err != nil {
		return nil, false, fmt.Errorf("serialize scene for cache key: %w", err)
	}
	sceneHash := cache.Hash(sceneData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	if !opts.Refresh {
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(sceneHash, opts.artifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
		if allCached && len(artifacts) == len(opts.Formats) {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return artifacts, true, nil // All artifacts from cache
		}
	}

	// Render all formats
	start := time.Now()
	observability.Render().OnRenderStart(ctx, opts.Formats)
	rendered, err := RenderFromScene(scene, opts)
	observability.Render().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(sceneHash, opts.artifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards
// the cache hit info.
func (r *Runner) Render(ctx context.Context, scene world.Scene, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, scene, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// artifactKeyOpts collects the render options that distinguish cached
// artifacts for a format.
func (o *Options) artifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		VizType:   o.VizType,
		Format:    format,
		Style:     o.Style,
		ShowEdges: o.ShowLinks,
		Labels:    o.Layout.ShowLabels,
		Detailed:  o.Detailed,
	}
}
