package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// droneVoices are the partials of the ambience chord, a low open fifth with its octave
var droneVoices = [...]struct {
	freq float64
	amp  float64
}{
	{55.0, 0.20},
	{82.5, 0.12},
	{110.0, 0.08},
}

const (
	droneSwellHz  = 0.05 // amplitude swell rate
	droneSwellMin = 0.6
	droneDetuneHz = 0.35 // beat between the stereo channels
	droneHeadroom = 0.9
)

// DroneGenerator streams an endless, slowly swelling chord
type DroneGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewDroneGenerator creates a drone at the given sample rate
func NewDroneGenerator(sr beep.SampleRate) *DroneGenerator {
	return &DroneGenerator{sr: sr}
}

func (g *DroneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		swell := droneSwellMin + (1-droneSwellMin)*0.5*(1+math.Sin(2*math.Pi*droneSwellHz*t))

		var left, right float64
		for _, v := range droneVoices {
			left += v.amp * math.Sin(2*math.Pi*v.freq*t)
			right += v.amp * math.Sin(2*math.Pi*(v.freq+droneDetuneHz)*t)
		}
		samples[i][0] = left * swell * droneHeadroom
		samples[i][1] = right * swell * droneHeadroom
		g.pos++
	}
	return len(samples), true
}

func (g *DroneGenerator) Err() error {
	return nil
}
