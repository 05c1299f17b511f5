// Package cache provides the local result cache used by the pipeline.
//
// Generated scenes and rendered artifacts are keyed by content hashes of
// their inputs, so identical configurations are never recomputed. The CLI
// uses a file-backed cache under the XDG cache directory; tests and
// --no-cache runs use the null cache.
package cache

import (
	"context"
	"time"
)

// Cache TTLs per entry type. Scenes are cheap to recompute but rendering
// through Graphviz is not, so artifacts live longer.
const (
	TTLScene    = 7 * 24 * time.Hour
	TTLArtifact = 30 * 24 * time.Hour
)

// Cache is the interface for cache backends.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// =============================================================================
// Keyer - Cache Key Construction
// =============================================================================

// SceneKeyOpts are the layout options that distinguish cached scenes.
type SceneKeyOpts struct {
	ConfigHash string
}

// ArtifactKeyOpts are the render options that distinguish cached artifacts.
type ArtifactKeyOpts struct {
	VizType   string
	Format    string
	Style     string
	ShowEdges bool
	Labels    bool
	Detailed  bool
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// SceneKey generates a key for a generated scene.
	SceneKey(opts SceneKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact.
	ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key scheme: a type prefix plus a SHA-256
// hash of the distinguishing options.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// SceneKey generates a key for a generated scene.
func (k *DefaultKeyer) SceneKey(opts SceneKeyOpts) string {
	return hashKey("scene", opts.ConfigHash)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", sceneHash, opts)
}
