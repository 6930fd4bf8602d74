package layout

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/geo"
	"github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/habitat"
	"github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/validation"
)

// DocumentFilename is the conventional name for an exported layout.
const DocumentFilename = "habitat_layout.json"

// Document is the serialized form of a layout. Position components are
// decimal strings with two fractional digits; the format predates this
// implementation and previously exported files must keep round-tripping,
// so the string encoding is load-bearing, not a style choice.
type Document struct {
	Habitat habitat.Shell  `json:"habitat" validate:"required"`
	Zones   []DocumentZone `json:"zones" validate:"dive"`
}

// DocumentZone is one zone entry in a layout document. Ids and presentation
// attributes are not persisted; import assigns fresh ids.
type DocumentZone struct {
	Type     string           `json:"type" validate:"required"`
	Position DocumentPosition `json:"position" validate:"required"`
}

// DocumentPosition holds the string-encoded coordinates.
type DocumentPosition struct {
	X string `json:"x" validate:"required"`
	Y string `json:"y" validate:"required"`
	Z string `json:"z" validate:"required"`
}

// Export renders the layout as a document value.
func Export(l *Layout) Document {
	doc := Document{
		Habitat: l.shell,
		Zones:   make([]DocumentZone, 0, len(l.zones)),
	}
	for _, z := range l.zones {
		doc.Zones = append(doc.Zones, DocumentZone{
			Type: string(z.Type),
			Position: DocumentPosition{
				X: formatCoord(z.Position.X),
				Y: formatCoord(z.Position.Y),
				Z: formatCoord(z.Position.Z),
			},
		})
	}
	return doc
}

// Encode serializes the layout into layout-document JSON.
func Encode(l *Layout) ([]byte, error) {
	data, err := json.MarshalIndent(Export(l), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding layout document: %w", err)
	}
	return data, nil
}

// Import builds the layout a document describes. The result fully replaces
// any previous layout; import is never a merge. Zones are added in file
// order with fresh ids, and their positions are trusted as written even
// when they violate the placement rules (those apply at the next move).
func Import(doc Document) (*Layout, error) {
	if err := validateDocument(&doc); err != nil {
		return nil, err
	}
	l := New(doc.Habitat)
	for i, dz := range doc.Zones {
		pos, err := parsePosition(i, dz.Position)
		if err != nil {
			return nil, err
		}
		l.AddZoneAt(ZoneType(dz.Type), pos)
	}
	return l, nil
}

// Decode parses layout-document JSON and imports it.
func Decode(data []byte) (*Layout, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Err: err}
	}
	return Import(doc)
}

func validateDocument(doc *Document) error {
	err := validation.Struct(doc)
	if err == nil {
		return nil
	}
	fes := validation.FieldErrors(err)
	if len(fes) == 0 {
		return fmt.Errorf("validating layout document: %w", err)
	}
	fe := fes[0]
	reason := ""
	switch fe.Tag() {
	case "required":
		// Missing field, no extra reason needed.
	case "oneof":
		reason = fmt.Sprintf("must be one of: %s", fe.Param())
	case "gt":
		reason = fmt.Sprintf("must be greater than %s", fe.Param())
	case "min":
		reason = fmt.Sprintf("must be at least %s", fe.Param())
	default:
		reason = fmt.Sprintf("failed %s constraint", fe.Tag())
	}
	return &SchemaError{Field: validation.FieldPath(fe), Reason: reason}
}

func parsePosition(i int, p DocumentPosition) (geo.Vec3, error) {
	x, err := parseCoord(i, "x", p.X)
	if err != nil {
		return geo.Vec3{}, err
	}
	y, err := parseCoord(i, "y", p.Y)
	if err != nil {
		return geo.Vec3{}, err
	}
	z, err := parseCoord(i, "z", p.Z)
	if err != nil {
		return geo.Vec3{}, err
	}
	return geo.V3(x, y, z), nil
}

func parseCoord(i int, axis, raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &SchemaError{
			Field:  fmt.Sprintf("zones[%d].position.%s", i, axis),
			Reason: fmt.Sprintf("not a decimal number: %q", raw),
		}
	}
	return v, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
