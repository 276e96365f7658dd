package systems

import (
	"github.com/automoto/riftarena/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects re-syncs every footprint with its transform so the next
// tick's contact queries see final positions.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		syncObject(e)
	}
}
