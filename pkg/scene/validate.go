package scene

import (
	"fmt"

	"github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/validation"
)

// ValidateGraph performs structural validation on an assembled scene graph.
// It checks entity integrity, group index consistency, and bounds enclosure.
func ValidateGraph(g *Graph) *validation.Report {
	r := validation.NewReport()

	if g == nil {
		r.AddError(validation.Result{
			Level:   validation.LevelScene,
			Message: "scene graph is nil",
		})
		return r
	}

	validateEntityIDs(g, r)
	validateGroupIndices(g, r)
	validateGroupMembership(g, r)
	validateBoundsEnclosure(g, r)
	validateEntityDimensions(g, r)

	return r
}

func validateEntityIDs(g *Graph, r *validation.Report) {
	seen := make(map[string]int, len(g.Entities))

	for i, e := range g.Entities {
		if e.ID == "" {
			r.AddError(validation.Result{
				Level:       validation.LevelScene,
				Message:     fmt.Sprintf("entity at index %d has empty ID", i),
				FieldPath:   fmt.Sprintf("entities[%d].id", i),
				ActualValue: "",
				Expected:    "non-empty string",
			})
			continue
		}
		if prev, exists := seen[e.ID]; exists {
			r.AddError(validation.Result{
				Level:       validation.LevelScene,
				Message:     fmt.Sprintf("duplicate entity ID %q at indices %d and %d", e.ID, prev, i),
				FieldPath:   fmt.Sprintf("entities[%d].id", i),
				ActualValue: e.ID,
			})
		}
		seen[e.ID] = i
	}
}

func validateGroupIndices(g *Graph, r *validation.Report) {
	entityIDs := make(map[string]bool, len(g.Entities))
	for _, e := range g.Entities {
		entityIDs[e.ID] = true
	}

	checkGroup := func(groupType, groupName string, ids []string) {
		for _, id := range ids {
			if !entityIDs[id] {
				r.AddError(validation.Result{
					Level:       validation.LevelScene,
					Message:     fmt.Sprintf("group %s.%s references non-existent entity %q", groupType, groupName, id),
					FieldPath:   fmt.Sprintf("groups.%s.%s", groupType, groupName),
					ActualValue: id,
					Expected:    "existing entity ID",
				})
			}
		}
	}

	for kind, ids := range g.Groups.Kinds {
		checkGroup("kinds", string(kind), ids)
	}
	for zt, ids := range g.Groups.ZoneTypes {
		checkGroup("zone_types", zt, ids)
	}
}

func validateGroupMembership(g *Graph, r *validation.Report) {
	kindMembers := make(map[EntityKind]map[string]bool)
	for kind, ids := range g.Groups.Kinds {
		m := make(map[string]bool, len(ids))
		for _, id := range ids {
			m[id] = true
		}
		kindMembers[kind] = m
	}

	typeMembers := make(map[string]map[string]bool)
	for zt, ids := range g.Groups.ZoneTypes {
		m := make(map[string]bool, len(ids))
		for _, id := range ids {
			m[id] = true
		}
		typeMembers[zt] = m
	}

	for _, e := range g.Entities {
		if e.ID == "" {
			continue
		}

		if km, ok := kindMembers[e.Kind]; ok {
			if !km[e.ID] {
				r.AddError(validation.Result{
					Level:       validation.LevelScene,
					Message:     fmt.Sprintf("entity %q has kind %q but is not in kinds group", e.ID, e.Kind),
					FieldPath:   fmt.Sprintf("groups.kinds.%s", e.Kind),
					ActualValue: e.ID,
				})
			}
		} else if e.Kind != "" {
			r.AddError(validation.Result{
				Level:       validation.LevelScene,
				Message:     fmt.Sprintf("entity %q has kind %q but no such kinds group exists", e.ID, e.Kind),
				FieldPath:   "groups.kinds",
				ActualValue: string(e.Kind),
			})
		}

		if e.ZoneType == "" {
			continue
		}
		if tm, ok := typeMembers[e.ZoneType]; ok {
			if !tm[e.ID] {
				r.AddError(validation.Result{
					Level:       validation.LevelScene,
					Message:     fmt.Sprintf("entity %q has zone type %q but is not in zone_types group", e.ID, e.ZoneType),
					FieldPath:   fmt.Sprintf("groups.zone_types.%s", e.ZoneType),
					ActualValue: e.ID,
				})
			}
		} else {
			r.AddError(validation.Result{
				Level:       validation.LevelScene,
				Message:     fmt.Sprintf("entity %q has zone type %q but no such zone_types group exists", e.ID, e.ZoneType),
				FieldPath:   "groups.zone_types",
				ActualValue: e.ZoneType,
			})
		}
	}
}

func validateBoundsEnclosure(g *Graph, r *validation.Report) {
	bounds := g.Metadata.Bounds
	tolerance := 0.5

	for _, e := range g.Entities {
		halfX := e.Dimensions.X / 2
		halfZ := e.Dimensions.Z / 2

		if e.Position.X-halfX < bounds.Min.X-tolerance || e.Position.X+halfX > bounds.Max.X+tolerance {
			r.AddWarning(validation.Result{
				Level:       validation.LevelScene,
				Message:     fmt.Sprintf("entity %q X extent [%.1f, %.1f] outside scene bounds [%.1f, %.1f]", e.ID, e.Position.X-halfX, e.Position.X+halfX, bounds.Min.X, bounds.Max.X),
				FieldPath:   "metadata.bounds",
				ActualValue: e.Position.X,
			})
			break
		}
		if e.Position.Z-halfZ < bounds.Min.Z-tolerance || e.Position.Z+halfZ > bounds.Max.Z+tolerance {
			r.AddWarning(validation.Result{
				Level:       validation.LevelScene,
				Message:     fmt.Sprintf("entity %q Z extent [%.1f, %.1f] outside scene bounds [%.1f, %.1f]", e.ID, e.Position.Z-halfZ, e.Position.Z+halfZ, bounds.Min.Z, bounds.Max.Z),
				FieldPath:   "metadata.bounds",
				ActualValue: e.Position.Z,
			})
			break
		}
	}
}

func validateEntityDimensions(g *Graph, r *validation.Report) {
	for _, e := range g.Entities {
		if e.Dimensions.X <= 0 || e.Dimensions.Y <= 0 || e.Dimensions.Z <= 0 {
			r.AddWarning(validation.Result{
				Level:       validation.LevelScene,
				Message:     fmt.Sprintf("entity %q has zero or negative dimension (%.2f, %.2f, %.2f)", e.ID, e.Dimensions.X, e.Dimensions.Y, e.Dimensions.Z),
				FieldPath:   fmt.Sprintf("entities.%s.dimensions", e.ID),
				ActualValue: fmt.Sprintf("%.2f x %.2f x %.2f", e.Dimensions.X, e.Dimensions.Y, e.Dimensions.Z),
				Expected:    "all dimensions > 0",
			})
		}
	}
}
