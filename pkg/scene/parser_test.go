package scene

import (
	"math"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

const minimalScenefile = `
<scenefile>
  <globaldata>
    <diffusecoeff v="0.7"/>
  </globaldata>
  <cameradata>
    <pos x="0" y="0" z="5"/>
    <focus x="0" y="0" z="0"/>
  </cameradata>
  <lightdata>
    <id v="0"/>
    <color r="1" g="1" b="1"/>
    <position x="3" y="4" z="5"/>
  </lightdata>
  <object type="tree" name="root">
    <transblock>
      <translate x="1" y="0" z="0"/>
      <object type="primitive" name="sphere">
        <diffuse r="0.5" g="0.5" b="0.5"/>
      </object>
    </transblock>
  </object>
</scenefile>`

func TestParse_MinimalScene(t *testing.T) {
	tree, err := Parse(strings.NewReader(minimalScenefile), ".")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	// Unspecified coefficients keep their defaults
	if tree.Coefficients.KA != 0.5 || tree.Coefficients.KD != 0.7 || tree.Coefficients.KS != 0.5 {
		t.Errorf("Unexpected coefficients: %+v", tree.Coefficients)
	}

	// Focus point converts to a look direction
	expectedLook := core.NewVec3(0, 0, -5)
	if tree.Camera.Look != expectedLook {
		t.Errorf("Expected look %v, got %v", expectedLook, tree.Camera.Look)
	}
	if math.Abs(tree.Camera.HeightAngle-math.Pi/4) > 1e-9 {
		t.Errorf("Expected default height angle of 45 degrees, got %f radians", tree.Camera.HeightAngle)
	}

	if len(tree.Lights) != 1 {
		t.Fatalf("Expected 1 light, got %d", len(tree.Lights))
	}
	point, ok := tree.Lights[0].(lights.PointLight)
	if !ok {
		t.Fatalf("Expected a point light, got %T", tree.Lights[0])
	}
	if point.Position != core.NewVec3(3, 4, 5) {
		t.Errorf("Unexpected light position: %v", point.Position)
	}
	if point.Attenuation != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected default attenuation (1,0,0), got %v", point.Attenuation)
	}

	if len(tree.Root.Children) != 1 {
		t.Fatalf("Expected 1 transblock under root, got %d", len(tree.Root.Children))
	}
	child := tree.Root.Children[0]
	if len(child.Transformations) != 1 || len(child.Shapes) != 1 {
		t.Fatalf("Expected 1 transformation and 1 shape, got %d and %d",
			len(child.Transformations), len(child.Shapes))
	}
	if child.Shapes[0].Type != geometry.Sphere {
		t.Errorf("Expected a sphere, got type %v", child.Shapes[0].Type)
	}
	if child.Shapes[0].Material.Diffuse != core.NewVec3(0.5, 0.5, 0.5) {
		t.Errorf("Unexpected diffuse color: %v", child.Shapes[0].Material.Diffuse)
	}
}

func TestParse_MasterObjectSharing(t *testing.T) {
	scenefile := `
<scenefile>
  <globaldata/>
  <cameradata/>
  <object type="tree" name="ball">
    <transblock>
      <object type="primitive" name="sphere"/>
    </transblock>
  </object>
  <object type="tree" name="root">
    <transblock>
      <translate x="-1" y="0" z="0"/>
      <object type="master" name="ball"/>
    </transblock>
    <transblock>
      <translate x="1" y="0" z="0"/>
      <object type="master" name="ball"/>
    </transblock>
  </object>
</scenefile>`

	tree, err := Parse(strings.NewReader(scenefile), ".")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(tree.Root.Children) != 2 {
		t.Fatalf("Expected 2 transblocks under root, got %d", len(tree.Root.Children))
	}

	// Both references must resolve to the same shared node
	left, right := tree.Root.Children[0], tree.Root.Children[1]
	if len(left.Children) != 1 || len(right.Children) != 1 {
		t.Fatal("Expected each transblock to hold one master reference")
	}
	if left.Children[0] != right.Children[0] {
		t.Error("Master references must share a single node, not copies")
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name      string
		scenefile string
	}{
		{
			name:      "missing globaldata",
			scenefile: `<scenefile><cameradata/><object type="tree" name="root"/></scenefile>`,
		},
		{
			name:      "missing cameradata",
			scenefile: `<scenefile><globaldata/><object type="tree" name="root"/></scenefile>`,
		},
		{
			name:      "missing root object",
			scenefile: `<scenefile><globaldata/><cameradata/></scenefile>`,
		},
		{
			name: "camera with both focus and look",
			scenefile: `<scenefile><globaldata/>
				<cameradata><look x="1" y="0" z="0"/><focus x="0" y="0" z="0"/></cameradata>
				<object type="tree" name="root"/></scenefile>`,
		},
		{
			name: "directional light with position",
			scenefile: `<scenefile><globaldata/><cameradata/>
				<lightdata><type v="directional"/><position x="1" y="1" z="1"/></lightdata>
				<object type="tree" name="root"/></scenefile>`,
		},
		{
			name: "point light with penumbra",
			scenefile: `<scenefile><globaldata/><cameradata/>
				<lightdata><penumbra v="10"/></lightdata>
				<object type="tree" name="root"/></scenefile>`,
		},
		{
			name: "undefined master object",
			scenefile: `<scenefile><globaldata/><cameradata/>
				<object type="tree" name="root">
					<transblock><object type="master" name="ghost"/></transblock>
				</object></scenefile>`,
		},
		{
			name: "duplicate object names",
			scenefile: `<scenefile><globaldata/><cameradata/>
				<object type="tree" name="root"/>
				<object type="tree" name="root"/></scenefile>`,
		},
		{
			name: "unsupported primitive",
			scenefile: `<scenefile><globaldata/><cameradata/>
				<object type="tree" name="root">
					<transblock><object type="primitive" name="torus"/></transblock>
				</object></scenefile>`,
		},
		{
			name: "unknown top-level tag",
			scenefile: `<scenefile><globaldata/><cameradata/><fogdata/>
				<object type="tree" name="root"/></scenefile>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.scenefile), "."); err == nil {
				t.Error("Expected a parse error, got none")
			}
		})
	}
}

func TestParse_SpotLight(t *testing.T) {
	scenefile := `
<scenefile>
  <globaldata/>
  <cameradata/>
  <lightdata>
    <type v="spot"/>
    <position x="0" y="5" z="0"/>
    <direction x="0" y="-1" z="0"/>
    <angle v="45"/>
    <penumbra v="15"/>
  </lightdata>
  <object type="tree" name="root"/>
</scenefile>`

	tree, err := Parse(strings.NewReader(scenefile), ".")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	spot, ok := tree.Lights[0].(lights.SpotLight)
	if !ok {
		t.Fatalf("Expected a spot light, got %T", tree.Lights[0])
	}
	if math.Abs(spot.Angle-math.Pi/4) > 1e-9 {
		t.Errorf("Expected angle 45 degrees in radians, got %f", spot.Angle)
	}
	if math.Abs(spot.Penumbra-math.Pi/12) > 1e-9 {
		t.Errorf("Expected penumbra 15 degrees in radians, got %f", spot.Penumbra)
	}
}

func TestParse_TexturePathsResolved(t *testing.T) {
	scenefile := `
<scenefile>
  <globaldata/>
  <cameradata/>
  <object type="tree" name="root">
    <transblock>
      <object type="primitive" name="cube">
        <texture file="checker.png" u="2" v="3"/>
        <blend v="0.5"/>
      </object>
    </transblock>
  </object>
</scenefile>`

	tree, err := Parse(strings.NewReader(scenefile), "assets/textures")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	texture := tree.Root.Children[0].Shapes[0].Material.Texture
	if texture == nil {
		t.Fatal("Expected a texture on the cube")
	}
	if !strings.HasSuffix(texture.Filename, "checker.png") || !strings.Contains(texture.Filename, "textures") {
		t.Errorf("Texture path not resolved against the textures dir: %s", texture.Filename)
	}
	if texture.RepeatU != 2 || texture.RepeatV != 3 {
		t.Errorf("Unexpected repeat factors: u=%f v=%f", texture.RepeatU, texture.RepeatV)
	}
	if texture.Blend != 0.5 {
		t.Errorf("Expected blend 0.5, got %f", texture.Blend)
	}
}
