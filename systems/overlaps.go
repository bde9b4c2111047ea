package systems

import (
	"github.com/automoto/thornwood/components"
	"github.com/automoto/thornwood/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateOverlaps is the engine side of the combat mediator: resolv narrows
// candidates by cell, an AABB test confirms the overlap, and the mediator
// decides what happens. Pairs are collected first because damage can change
// an entity's archetype.
func UpdateOverlaps(ecs *ecs.ECS) {
	w := ecs.World
	playerEntry, ok := components.Player.First(w)
	if !ok {
		return
	}
	syncHitbox(playerEntry)

	var hits []*donburi.Entry
	if components.Player.Get(playerEntry).HitboxActive {
		hits = overlappingEntries(components.Hitbox.Get(playerEntry).Object, tags.ResolvEnemy)
	}
	contacts := overlappingEntries(components.Object.Get(playerEntry).Object, tags.ResolvEnemy)

	for _, enemy := range hits {
		OnAttackHitEnemy(w, playerEntry, enemy)
	}
	for _, enemy := range contacts {
		OnEnemyContactPlayer(w, playerEntry, enemy)
	}
}

func overlappingEntries(obj *resolv.Object, tag string) []*donburi.Entry {
	if obj == nil {
		return nil
	}
	check := obj.Check(0, 0, tag)
	if check == nil {
		return nil
	}

	var out []*donburi.Entry
	for _, o := range check.ObjectsByTags(tag) {
		if !overlapsShifted(obj, o, 0, 0) {
			continue
		}
		entry, ok := o.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		out = append(out, entry)
	}
	return out
}
