package config

import "github.com/yohamta/donburi/ecs"

// Default is the only ECS layer. The arena has no separate UI layer.
const Default ecs.LayerID = 0
