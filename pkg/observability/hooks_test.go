package observability

import (
	"context"
	"testing"
	"time"
)

// recordingSceneHooks counts generate events.
type recordingSceneHooks struct {
	starts, completes int
}

func (h *recordingSceneHooks) OnGenerateStart(context.Context, int) { h.starts++ }
func (h *recordingSceneHooks) OnGenerateComplete(context.Context, int, time.Duration, error) {
	h.completes++
}

// recordingCacheHooks counts cache events.
type recordingCacheHooks struct {
	hits, misses, sets int
}

func (h *recordingCacheHooks) OnCacheHit(context.Context, string)      { h.hits++ }
func (h *recordingCacheHooks) OnCacheMiss(context.Context, string)     { h.misses++ }
func (h *recordingCacheHooks) OnCacheSet(context.Context, string, int) { h.sets++ }

func TestDefaultHooksAreNoop(t *testing.T) {
	Reset()
	ctx := context.Background()

	// Should not panic
	Scene().OnGenerateStart(ctx, 65)
	Scene().OnGenerateComplete(ctx, 65, time.Millisecond, nil)
	Render().OnRenderStart(ctx, []string{"svg"})
	Render().OnRenderComplete(ctx, []string{"svg"}, time.Millisecond, nil)
	Cache().OnCacheHit(ctx, "scene")
	Cache().OnCacheMiss(ctx, "scene")
	Cache().OnCacheSet(ctx, "scene", 100)
}

func TestSetSceneHooks(t *testing.T) {
	defer Reset()
	ctx := context.Background()

	h := &recordingSceneHooks{}
	SetSceneHooks(h)

	Scene().OnGenerateStart(ctx, 10)
	Scene().OnGenerateComplete(ctx, 10, time.Millisecond, nil)

	if h.starts != 1 || h.completes != 1 {
		t.Errorf("expected 1 start and 1 complete, got %d/%d", h.starts, h.completes)
	}
}

func TestSetCacheHooks(t *testing.T) {
	defer Reset()
	ctx := context.Background()

	h := &recordingCacheHooks{}
	SetCacheHooks(h)

	Cache().OnCacheHit(ctx, "artifact")
	Cache().OnCacheMiss(ctx, "scene")
	Cache().OnCacheSet(ctx, "scene", 42)

	if h.hits != 1 || h.misses != 1 || h.sets != 1 {
		t.Errorf("cache hook counts = %d/%d/%d", h.hits, h.misses, h.sets)
	}
}

func TestSetNilHooksIgnored(t *testing.T) {
	defer Reset()

	h := &recordingSceneHooks{}
	SetSceneHooks(h)
	SetSceneHooks(nil)

	// Registered hooks survive a nil set.
	Scene().OnGenerateStart(context.Background(), 1)
	if h.starts != 1 {
		t.Error("nil SetSceneHooks should not replace registered hooks")
	}
}

func TestReset(t *testing.T) {
	h := &recordingSceneHooks{}
	SetSceneHooks(h)
	Reset()

	Scene().OnGenerateStart(context.Background(), 1)
	if h.starts != 0 {
		t.Error("Reset should restore noop hooks")
	}
}
