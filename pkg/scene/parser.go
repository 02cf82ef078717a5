package scene

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// element is a generic XML element: scenefiles dispatch on tag names rather
// than a fixed schema, so the document is decoded into this recursive form
// and walked by hand.
type element struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []element  `xml:",any"`
}

func (e *element) attr(name string) (string, bool) {
	for _, attr := range e.Attrs {
		if attr.Name.Local == name {
			return attr.Value, true
		}
	}
	return "", false
}

// floatAttr parses a required float attribute
func floatAttr(e *element, name string) (float64, error) {
	raw, ok := e.attr(name)
	if !ok {
		return 0, fmt.Errorf("<%s> tag must have %q attribute", e.XMLName.Local, name)
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid attribute value for tag <%s> and attribute %q", e.XMLName.Local, name)
	}
	return value, nil
}

// stringAttr parses a required string attribute
func stringAttr(e *element, name string) (string, error) {
	raw, ok := e.attr(name)
	if !ok {
		return "", fmt.Errorf("<%s> tag must have %q attribute", e.XMLName.Local, name)
	}
	return raw, nil
}

// parseVec3 parses three float attributes into a vector
func parseVec3(e *element, x, y, z string) (core.Vec3, error) {
	vx, err := floatAttr(e, x)
	if err != nil {
		return core.Vec3{}, err
	}
	vy, err := floatAttr(e, y)
	if err != nil {
		return core.Vec3{}, err
	}
	vz, err := floatAttr(e, z)
	if err != nil {
		return core.Vec3{}, err
	}
	return core.NewVec3(vx, vy, vz), nil
}

// parseColor accepts either x/y/z or r/g/b attribute triples
func parseColor(e *element) (core.Vec3, error) {
	if color, err := parseVec3(e, "x", "y", "z"); err == nil {
		return color, nil
	}
	return parseVec3(e, "r", "g", "b")
}

// ParseFile parses a TreeScene from a scenefile path. Texture paths in the
// scenefile are resolved relative to texturesDir.
func ParseFile(scenefile, texturesDir string) (*TreeScene, error) {
	file, err := os.Open(scenefile)
	if err != nil {
		return nil, fmt.Errorf("scene: open scenefile: %w", err)
	}
	defer file.Close()

	return Parse(file, texturesDir)
}

// Parse parses a TreeScene from scenefile XML.
func Parse(r io.Reader, texturesDir string) (*TreeScene, error) {
	var root element
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("scene: parse scenefile: %w", err)
	}

	if root.XMLName.Local != "scenefile" {
		return nil, fmt.Errorf("missing <scenefile> tag")
	}

	parser := &parser{texturesDir: texturesDir, objects: make(map[string]*Node)}

	var coefficients *lights.GlobalCoefficients
	var camera *Camera
	var lightSources []lights.Light

	for i := range root.Children {
		child := &root.Children[i]
		switch child.XMLName.Local {
		case "globaldata":
			parsed, err := parseGlobalCoefficients(child)
			if err != nil {
				return nil, err
			}
			coefficients = parsed
		case "cameradata":
			parsed, err := parseCamera(child)
			if err != nil {
				return nil, err
			}
			camera = parsed
		case "lightdata":
			light, err := parseLight(child)
			if err != nil {
				return nil, err
			}
			lightSources = append(lightSources, light)
		case "object":
			if err := parser.parseObject(child); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("unknown tagname <%s>", child.XMLName.Local)
		}
	}

	if coefficients == nil {
		return nil, fmt.Errorf("must have <globaldata> tag")
	}
	if camera == nil {
		return nil, fmt.Errorf("must have <cameradata> tag")
	}

	rootNode, ok := parser.objects["root"]
	if !ok {
		return nil, fmt.Errorf("scene must have a root object")
	}

	return &TreeScene{
		Coefficients: *coefficients,
		Camera:       camera,
		Lights:       lightSources,
		Root:         rootNode,
	}, nil
}

// parser carries the named-object map threaded through object parsing.
type parser struct {
	texturesDir string
	objects     map[string]*Node
}

func parseGlobalCoefficients(e *element) (*lights.GlobalCoefficients, error) {
	coefficients := &lights.GlobalCoefficients{KA: 0.5, KD: 0.5, KS: 0.5}

	for i := range e.Children {
		child := &e.Children[i]
		value, err := floatAttr(child, "v")
		if err != nil {
			return nil, err
		}
		switch child.XMLName.Local {
		case "ambientcoeff":
			coefficients.KA = value
		case "diffusecoeff":
			coefficients.KD = value
		case "specularcoeff":
			coefficients.KS = value
		default:
			return nil, fmt.Errorf("unknown global lighting coefficient tagname: <%s>", child.XMLName.Local)
		}
	}

	return coefficients, nil
}

func parseCamera(e *element) (*Camera, error) {
	position := core.NewVec3(5, 5, 5)
	up := core.NewVec3(0, 1, 0)
	look := core.NewVec3(-1, -1, -1)
	heightAngle := mgl64.DegToRad(45)

	lookFound := false
	focusFound := false

	for i := range e.Children {
		child := &e.Children[i]
		switch child.XMLName.Local {
		case "pos":
			parsed, err := parseVec3(child, "x", "y", "z")
			if err != nil {
				return nil, err
			}
			position = parsed
		case "up":
			parsed, err := parseVec3(child, "x", "y", "z")
			if err != nil {
				return nil, err
			}
			up = parsed
		case "heightangle":
			degrees, err := floatAttr(child, "v")
			if err != nil {
				return nil, err
			}
			heightAngle = mgl64.DegToRad(degrees)
		case "look":
			parsed, err := parseVec3(child, "x", "y", "z")
			if err != nil {
				return nil, err
			}
			look = parsed
			lookFound = true
		case "focus":
			parsed, err := parseVec3(child, "x", "y", "z")
			if err != nil {
				return nil, err
			}
			look = parsed
			focusFound = true
		case "aperture", "focallength":
			fmt.Fprintf(os.Stderr, "Ignoring unsupported camera tagname: <%s>\n", child.XMLName.Local)
		default:
			return nil, fmt.Errorf("unknown camera tagname: <%s>", child.XMLName.Local)
		}
	}

	if focusFound && lookFound {
		return nil, fmt.Errorf("camera cannot have both focus and look")
	}
	if focusFound {
		// A focus point is a position; convert it to a look direction
		look = look.Subtract(position)
	}

	return NewCamera(position, look, up, heightAngle), nil
}

func parseLight(e *element) (lights.Light, error) {
	lightType := "point"
	color := core.NewVec3(1, 1, 1)
	position := core.NewVec3(3, 3, 3)
	attenuation := core.NewVec3(1, 0, 0)
	direction := core.Vec3{}

	var penumbra, angle *float64
	directionFound := false
	positionFound := false

	for i := range e.Children {
		child := &e.Children[i]
		switch child.XMLName.Local {
		case "id":
		case "type":
			parsed, err := stringAttr(child, "v")
			if err != nil {
				return nil, err
			}
			lightType = parsed
		case "color":
			parsed, err := parseColor(child)
			if err != nil {
				return nil, err
			}
			color = parsed
		case "function":
			parsed, err := parseVec3(child, "a", "b", "c")
			if err != nil {
				if parsed, err = parseVec3(child, "x", "y", "z"); err != nil {
					if parsed, err = parseVec3(child, "v1", "v2", "v3"); err != nil {
						return nil, err
					}
				}
			}
			attenuation = parsed
		case "position":
			parsed, err := parseVec3(child, "x", "y", "z")
			if err != nil {
				return nil, err
			}
			position = parsed
			positionFound = true
		case "direction":
			parsed, err := parseVec3(child, "x", "y", "z")
			if err != nil {
				return nil, err
			}
			direction = parsed
			directionFound = true
		case "angle":
			degrees, err := floatAttr(child, "v")
			if err != nil {
				return nil, err
			}
			radians := mgl64.DegToRad(degrees)
			angle = &radians
		case "penumbra":
			degrees, err := floatAttr(child, "v")
			if err != nil {
				return nil, err
			}
			radians := mgl64.DegToRad(degrees)
			penumbra = &radians
		default:
			return nil, fmt.Errorf("unknown light tagname: <%s>", child.XMLName.Local)
		}
	}

	switch lightType {
	case "directional":
		if positionFound {
			return nil, fmt.Errorf("directional light cannot have position")
		}
		if penumbra != nil {
			return nil, fmt.Errorf("directional light cannot have penumbra")
		}
		if angle != nil {
			return nil, fmt.Errorf("directional light cannot have angle")
		}
		return lights.DirectionalLight{Color: color, Direction: direction}, nil
	case "point":
		if directionFound {
			return nil, fmt.Errorf("point light cannot have direction")
		}
		if penumbra != nil {
			return nil, fmt.Errorf("point light cannot have penumbra")
		}
		if angle != nil {
			return nil, fmt.Errorf("point light cannot have angle")
		}
		return lights.PointLight{Color: color, Position: position, Attenuation: attenuation}, nil
	case "spot":
		spot := lights.SpotLight{
			Color:       color,
			Position:    position,
			Direction:   direction,
			Attenuation: attenuation,
		}
		if angle != nil {
			spot.Angle = *angle
		}
		if penumbra != nil {
			spot.Penumbra = *penumbra
		}
		return spot, nil
	default:
		return nil, fmt.Errorf("unknown light type: %q", lightType)
	}
}

// parseObject handles a top-level named <object type="tree">.
func (p *parser) parseObject(e *element) error {
	name, err := stringAttr(e, "name")
	if err != nil {
		return err
	}
	objectType, err := stringAttr(e, "type")
	if err != nil {
		return err
	}
	if objectType != "tree" {
		return fmt.Errorf("top-level <object> elements must be of type \"tree\", not %q", objectType)
	}

	if _, exists := p.objects[name]; exists {
		return fmt.Errorf("cannot have two objects with the same name: %s", name)
	}

	node := &Node{}
	p.objects[name] = node

	return p.parseObjectBody(e, node)
}

// parseObjectBody parses the <transblock> children of an object into child
// nodes of parent.
func (p *parser) parseObjectBody(e *element, parent *Node) error {
	for i := range e.Children {
		child := &e.Children[i]
		if child.XMLName.Local != "transblock" {
			return fmt.Errorf("cannot have tag <%s> in <object>", child.XMLName.Local)
		}

		node := &Node{}
		parent.Children = append(parent.Children, node)
		if err := p.parseTransblock(child, node); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) parseTransblock(e *element, node *Node) error {
	for i := range e.Children {
		child := &e.Children[i]
		switch child.XMLName.Local {
		case "translate":
			offset, err := parseVec3(child, "x", "y", "z")
			if err != nil {
				return err
			}
			node.Transformations = append(node.Transformations, Translate{Offset: offset})
		case "rotate":
			axis, err := parseVec3(child, "x", "y", "z")
			if err != nil {
				return err
			}
			degrees, err := floatAttr(child, "angle")
			if err != nil {
				return err
			}
			node.Transformations = append(node.Transformations, Rotate{Axis: axis, Angle: mgl64.DegToRad(degrees)})
		case "scale":
			factors, err := parseVec3(child, "x", "y", "z")
			if err != nil {
				return err
			}
			node.Transformations = append(node.Transformations, Scale{Factors: factors})
		case "object":
			objectType, err := stringAttr(child, "type")
			if err != nil {
				return err
			}
			switch objectType {
			case "master":
				name, err := stringAttr(child, "name")
				if err != nil {
					return err
				}
				master, ok := p.objects[name]
				if !ok {
					return fmt.Errorf("master object %q is not defined", name)
				}
				// Shared reference: the named subtree becomes a child of
				// this node as well, making the graph a DAG.
				node.Children = append(node.Children, master)
			case "tree":
				if err := p.parseObjectBody(child, node); err != nil {
					return err
				}
			case "primitive":
				if err := p.parsePrimitive(child, node); err != nil {
					return err
				}
			default:
				return fmt.Errorf("cannot have object type %q in <transblock>", objectType)
			}
		default:
			return fmt.Errorf("cannot have tag <%s> in <transblock>", child.XMLName.Local)
		}
	}
	return nil
}

func (p *parser) parsePrimitive(e *element, node *Node) error {
	name, err := stringAttr(e, "name")
	if err != nil {
		return err
	}

	var primitiveType geometry.PrimitiveType
	switch name {
	case "sphere":
		primitiveType = geometry.Sphere
	case "cube":
		primitiveType = geometry.Cube
	case "cylinder":
		primitiveType = geometry.Cylinder
	case "cone":
		primitiveType = geometry.Cone
	default:
		return fmt.Errorf("unsupported primitive type %s", name)
	}

	mat := material.Material{Diffuse: core.NewVec3(1, 1, 1)}
	blend := 0.0

	for i := range e.Children {
		child := &e.Children[i]
		switch child.XMLName.Local {
		case "diffuse":
			if mat.Diffuse, err = parseColor(child); err != nil {
				return err
			}
		case "ambient":
			if mat.Ambient, err = parseColor(child); err != nil {
				return err
			}
		case "specular":
			if mat.Specular, err = parseColor(child); err != nil {
				return err
			}
		case "reflective":
			if mat.Reflective, err = parseColor(child); err != nil {
				return err
			}
		case "shininess":
			if mat.Shininess, err = floatAttr(child, "v"); err != nil {
				return err
			}
		case "texture":
			if mat.Texture, err = p.parseTexture(child); err != nil {
				return err
			}
		case "blend":
			if blend, err = floatAttr(child, "v"); err != nil {
				return err
			}
		default:
			return fmt.Errorf("cannot have <%s> tag in primitive object", child.XMLName.Local)
		}
	}

	if mat.Texture != nil {
		mat.Texture.Blend = blend
	}

	node.Shapes = append(node.Shapes, ParsedShape{Type: primitiveType, Material: mat})
	return nil
}

func (p *parser) parseTexture(e *element) (*material.Texture, error) {
	file, err := stringAttr(e, "file")
	if err != nil {
		return nil, err
	}

	repeatU := 1.0
	if _, ok := e.attr("u"); ok {
		if repeatU, err = floatAttr(e, "u"); err != nil {
			return nil, err
		}
	}
	repeatV := 1.0
	if _, ok := e.attr("v"); ok {
		if repeatV, err = floatAttr(e, "v"); err != nil {
			return nil, err
		}
	}

	return &material.Texture{
		Filename: filepath.Join(p.texturesDir, file),
		RepeatU:  repeatU,
		RepeatV:  repeatV,
	}, nil
}
