package sink

import (
	"strings"
	"testing"

	"github.com/blackroad/agentworld/pkg/layout"
	"github.com/blackroad/agentworld/pkg/render/sink/styles"
	"github.com/blackroad/agentworld/pkg/world"
)

func testScene() world.Scene {
	cfg := layout.DefaultConfig()
	cfg.TeacherCount = 2
	cfg.StudentsPerTeacher = 2
	return layout.GenerateScene(cfg)
}

func TestRenderSVGStructure(t *testing.T) {
	svg := string(RenderSVG(testScene()))

	if !strings.HasPrefix(svg, "<svg xmlns=") {
		t.Error("output should start with an svg element")
	}
	if !strings.Contains(svg, "</svg>") {
		t.Error("output should close the svg element")
	}
	if !strings.Contains(svg, `<g class="agents">`) {
		t.Error("output should contain the agents group")
	}

	// One disc per agent: 5 leaders + 2 teachers + 4 students.
	if got := strings.Count(svg, "<circle"); got < 11 {
		t.Errorf("expected at least 11 circles, got %d", got)
	}
}

func TestRenderSVGCrowns(t *testing.T) {
	svg := string(RenderSVG(testScene()))

	// Five leaders, each with a crown polygon.
	if got := strings.Count(svg, "crown"); got < 5 {
		t.Errorf("expected crown markers for 5 leaders, got %d", got)
	}
}

func TestRenderSVGLabels(t *testing.T) {
	scene := testScene()

	// ShowLabels on: labels rendered.
	svg := string(RenderSVG(scene))
	if !strings.Contains(svg, `<g class="labels">`) {
		t.Error("expected labels group when ShowLabels is set")
	}
	if !strings.Contains(svg, ">Leader_phi</text>") {
		t.Error("expected leader label text")
	}

	// WithoutLabels overrides the scene flag.
	svg = string(RenderSVG(scene, WithoutLabels()))
	if strings.Contains(svg, `<g class="labels">`) {
		t.Error("WithoutLabels should suppress the labels group")
	}

	// ShowLabels off: no labels.
	scene.ShowLabels = false
	svg = string(RenderSVG(scene))
	if strings.Contains(svg, `<g class="labels">`) {
		t.Error("expected no labels group when ShowLabels is off")
	}
}

func TestRenderSVGLinks(t *testing.T) {
	scene := testScene()

	svg := string(RenderSVG(scene))
	if strings.Contains(svg, `<g class="links">`) {
		t.Error("links should be off by default")
	}

	svg = string(RenderSVG(scene, WithLinks()))
	if !strings.Contains(svg, `<g class="links">`) {
		t.Error("WithLinks should add the links group")
	}
	// One line per student.
	if got := strings.Count(svg, "<line"); got != 4 {
		t.Errorf("expected 4 links, got %d", got)
	}
}

func TestRenderSVGStyles(t *testing.T) {
	scene := testScene()

	flat := string(RenderSVG(scene, WithStyle(styles.Flat{})))
	outline := string(RenderSVG(scene, WithStyle(styles.Outline{})))
	if flat == outline {
		t.Error("flat and outline styles should differ")
	}
}

func TestRenderSVGEmptyScene(t *testing.T) {
	svg := string(RenderSVG(world.Scene{}))
	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, "</svg>") {
		t.Error("empty scene should still produce a valid document")
	}
}

func TestRenderSVGDeterministic(t *testing.T) {
	scene := testScene()
	a := RenderSVG(scene, WithLinks())
	b := RenderSVG(scene, WithLinks())
	if string(a) != string(b) {
		t.Error("RenderSVG should be deterministic")
	}
}

func TestProjection(t *testing.T) {
	// Elevation lifts agents up the page, depth pushes them down.
	x, y := project(world.Vec3{X: 400, Y: 100, Z: 500})
	if x != 400 || y != -400 {
		t.Errorf("project = (%g, %g), want (400, -400)", x, y)
	}
}
