package components

import "github.com/yohamta/donburi"

// ClockData is the simulation clock singleton. Step is set by the driver
// before each update.
type ClockData struct {
	Step    float64
	Delta   float64
	Elapsed float64
	Tick    int
}

var Clock = donburi.NewComponentType[ClockData]()
