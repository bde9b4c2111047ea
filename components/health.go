package components

import "github.com/yohamta/donburi"

// HealthData is kept in [0, Max] between ticks.
type HealthData struct {
	Current int
	Max     int
}

var Health = donburi.NewComponentType[HealthData]()
