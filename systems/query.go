package systems

import (
	"math"

	"github.com/automoto/riftarena/components"
	"github.com/automoto/riftarena/shared/gamemath"
	"github.com/automoto/riftarena/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// overlapSphere returns the living entities of the given categories whose
// collider intersects the sphere. The resolv space narrows the candidates
// on the ground plane and the exact test runs in 3D. Without a space every
// entity of the categories is tested.
func overlapSphere(w donburi.World, center gamemath.Vec3, radius float64, categories ...tags.CollisionCategory) []*donburi.Entry {
	var candidates []*donburi.Entry
	if spaceEntry, ok := components.Space.First(w); ok {
		candidates = spaceCandidates(components.Space.Get(spaceEntry), center, radius, categories)
	} else {
		candidates = scanCandidates(w, categories)
	}

	var hits []*donburi.Entry
	seen := make(map[donburi.Entity]bool, len(candidates))
	for _, e := range candidates {
		if e == nil || !e.Valid() || seen[e.Entity()] {
			continue
		}
		seen[e.Entity()] = true
		if IsDead(e) {
			continue
		}
		if sphereTouches(e, center, radius) {
			hits = append(hits, e)
		}
	}
	return hits
}

func spaceCandidates(space *components.SpaceData, center gamemath.Vec3, radius float64, categories []tags.CollisionCategory) []*donburi.Entry {
	tagNames := make([]string, 0, len(categories))
	for _, c := range categories {
		tagNames = append(tagNames, c.ResolvTag())
	}

	x, y := space.ToSpace(center)
	probe := resolv.NewObject(x-radius, y-radius, radius*2, radius*2, tags.ResolvProbe)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tagNames...)
	if check == nil {
		return nil
	}
	var out []*donburi.Entry
	for _, obj := range check.ObjectsByTags(tagNames...) {
		if e, ok := obj.Data.(*donburi.Entry); ok && e != nil {
			out = append(out, e)
		}
	}
	return out
}

func scanCandidates(w donburi.World, categories []tags.CollisionCategory) []*donburi.Entry {
	var out []*donburi.Entry
	collect := func(e *donburi.Entry) {
		out = append(out, e)
	}
	for _, c := range categories {
		switch c {
		case tags.CategoryPlayer:
			tags.Player.Each(w, collect)
		case tags.CategoryEnemy:
			tags.Enemy.Each(w, collect)
		case tags.CategoryBoss:
			tags.Boss.Each(w, collect)
		case tags.CategoryPickup:
			tags.Pickup.Each(w, collect)
		case tags.CategoryJumpPad:
			tags.JumpPad.Each(w, collect)
		}
	}
	return out
}

// sphereTouches tests the sphere against e's collider cylinder. Entities
// without a collider are treated as points.
func sphereTouches(e *donburi.Entry, center gamemath.Vec3, radius float64) bool {
	pos := components.Transform.Get(e).Position
	var r, h float64
	if e.HasComponent(components.Collider) {
		c := components.Collider.Get(e)
		r, h = c.Radius, c.Height
	}
	if gamemath.HorizontalDistance(center, pos) > radius+r {
		return false
	}
	// Vertical gap between the sphere centre and the cylinder span
	gap := 0.0
	if center.Y < pos.Y {
		gap = pos.Y - center.Y
	} else if center.Y > pos.Y+h {
		gap = center.Y - (pos.Y + h)
	}
	return gap <= radius && !math.IsNaN(gap)
}
