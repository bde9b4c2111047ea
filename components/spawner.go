package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type SpawnerData struct {
	Elapsed time.Duration
	Spawned int
}

var Spawner = donburi.NewComponentType[SpawnerData]()
