// Package pipeline provides the generate → render pipeline for Agentworld.
//
// This package implements the complete configuration → scene → artifact flow
// used by the CLI. By centralizing this logic, every entry point gets the
// same caching, validation, and logging behavior.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Generate: compute placement records from a layout configuration
//  2. Render: produce output artifacts (SVG, JSON, DOT) from the scene
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Layout:  layout.DefaultConfig(),
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/blackroad/agentworld/pkg/errors"
	"github.com/blackroad/agentworld/pkg/layout"
	"github.com/blackroad/agentworld/pkg/render/sink/styles"
	"github.com/blackroad/agentworld/pkg/world"
)

// =============================================================================
// Default Values - Single Source of Truth for the CLI
// =============================================================================

// Visualization types.
const (
	VizTypeScene     = "scene"
	VizTypeHierarchy = "hierarchy"
)

// DefaultVizType is the default visualization type.
const DefaultVizType = VizTypeScene

// DefaultStyle is the default visual style for scene SVGs.
const DefaultStyle = styles.StyleFlat

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// DefaultFormat is used when no formats are requested.
const DefaultFormat = FormatSVG

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
	FormatDOT:  true,
}

// ValidStyles is the set of supported visual styles.
var ValidStyles = map[string]bool{
	styles.StyleFlat:    true,
	styles.StyleOutline: true,
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	VizTypeScene:     true,
	VizTypeHierarchy: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization, which is also what cache keys
// are derived from.
type Options struct {
	// Layout options
	Layout layout.Config `json:"layout"`

	// Render options
	VizType   string   `json:"viz_type,omitempty"`
	Formats   []string `json:"formats,omitempty"`
	Style     string   `json:"style,omitempty"`
	ShowLinks bool     `json:"show_links,omitempty"` // Draw student-teacher lines in scene SVGs
	Detailed  bool     `json:"detailed,omitempty"`   // Verbose node labels in hierarchy output
	Refresh   bool     `json:"refresh,omitempty"`    // Bypass the cache

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Scene is the generated placement set.
	Scene world.Scene

	// SceneHash is the content hash of the scene.
	SceneHash string

	// RunID correlates log lines for one pipeline execution.
	// It is never part of the scene itself: generation stays deterministic.
	RunID string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	AgentCount   int
	GenerateTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	SceneHit  bool // Whether the scene came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, json, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return errors.New(errors.ErrCodeInvalidStyle,
			"invalid style: %q (must be one of: flat, outline)", style)
	}
	return nil
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid visualization type: %q (must be one of: scene, hierarchy)", vizType)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// IsHierarchy returns true if the options select the hierarchy visualization.
func (o *Options) IsHierarchy() bool { return o.VizType == VizTypeHierarchy }

// ValidateAndSetDefaults validates the options and fills in defaults.
// It is idempotent; the runner calls it on every entry point.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.Layout.Spacing == 0 && o.Layout.AgentSize == 0 {
		o.Layout = layout.DefaultConfig()
	}
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}

	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := o.Layout.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid layout config")
	}

	// DOT output is the hierarchy's interchange format; a scene has no
	// meaningful DOT rendition.
	if !o.IsHierarchy() {
		for _, f := range o.Formats {
			if f == FormatDOT {
				return errors.New(errors.ErrCodeInvalidFormat,
					"format %q requires --type hierarchy", FormatDOT)
			}
		}
	}

	o.validated = true
	return nil
}
