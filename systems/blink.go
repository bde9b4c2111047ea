package systems

import (
	"time"

	"github.com/automoto/thornwood/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// startBlink runs alpha between 1 and low, one tween per half cycle.
func startBlink(e *donburi.Entry, low float64, half time.Duration, halves int) {
	blink := components.Blink.Get(e)
	if halves <= 0 || half <= 0 {
		blink.Seq = nil
		blink.Alpha = 1
		return
	}

	seq := gween.NewSequence()
	from, to := float32(1), float32(low)
	for i := 0; i < halves; i++ {
		seq.Add(gween.New(from, to, float32(half.Seconds()), ease.Linear))
		from, to = to, from
	}
	blink.Seq = seq
	blink.Alpha = 1
}

func stopBlink(e *donburi.Entry) {
	blink := components.Blink.Get(e)
	blink.Seq = nil
	blink.Alpha = 1
}

func UpdateBlink(ecs *ecs.ECS) {
	dt := float32(DeltaTime(ecs.World).Seconds())
	components.Blink.Each(ecs.World, func(e *donburi.Entry) {
		blink := components.Blink.Get(e)
		if blink.Seq == nil {
			return
		}
		v, _, done := blink.Seq.Update(dt)
		blink.Alpha = float64(v)
		if done {
			blink.Seq = nil
			blink.Alpha = 1
		}
	})
}
