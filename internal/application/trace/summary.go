package trace

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates a run
type Summary struct {
	Frames        int
	FinalScore    int
	FinalLives    int
	LivesLost     int
	MeanSpeed     float64 // mean |vx|
	SpeedStdDev   float64
	HighestY      float64 // smallest y reached, the screen grows downward
	AirborneRatio float64
}

// Summarize computes run statistics from trace records
func Summarize(records []Record) Summary {
	if len(records) == 0 {
		return Summary{}
	}

	speeds := make([]float64, len(records))
	ys := make([]float64, len(records))
	airborne := 0
	lost := 0
	for i, r := range records {
		speeds[i] = math.Abs(r.PlayerVX)
		ys[i] = r.PlayerY
		if !r.Grounded {
			airborne++
		}
		if i > 0 && r.Lives < records[i-1].Lives {
			lost += records[i-1].Lives - r.Lives
		}
	}

	mean, std := stat.MeanStdDev(speeds, nil)
	if len(records) < 2 {
		std = 0
	}
	last := records[len(records)-1]

	return Summary{
		Frames:        len(records),
		FinalScore:    last.Score,
		FinalLives:    last.Lives,
		LivesLost:     lost,
		MeanSpeed:     mean,
		SpeedStdDev:   std,
		HighestY:      floats.Min(ys),
		AirborneRatio: float64(airborne) / float64(len(records)),
	}
}

// String formats the summary for the headless runner
func (s Summary) String() string {
	return fmt.Sprintf("frames=%d score=%d lives=%d lost=%d mean|vx|=%.3f sd=%.3f minY=%.1f airborne=%.0f%%",
		s.Frames, s.FinalScore, s.FinalLives, s.LivesLost, s.MeanSpeed, s.SpeedStdDev, s.HighestY, s.AirborneRatio*100)
}
