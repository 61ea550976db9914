package simvar

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"time"
)

// Sample is one recorded point of a flight track.
type Sample struct {
	T time.Duration `json:"t"` // offset from track start
	Position
}

type sampleJSON struct {
	Seconds float64 `json:"t"`
	Position
}

// Track replays recorded samples into a Store.
type Track struct {
	Samples []Sample
	Loop    bool

	elapsed time.Duration
}

// LoadTrack reads a JSON array of samples with "t" in seconds.
func LoadTrack(path string) (*Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read track: %w", err)
	}
	var raw []sampleJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse track: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("track %s has no samples", path)
	}
	tr := &Track{Samples: make([]Sample, len(raw))}
	for i, r := range raw {
		tr.Samples[i] = Sample{
			T:        time.Duration(r.Seconds * float64(time.Second)),
			Position: r.Position,
		}
		if i > 0 && tr.Samples[i].T < tr.Samples[i-1].T {
			return nil, fmt.Errorf("track sample %d goes back in time", i)
		}
	}
	return tr, nil
}

// Duration returns the time of the last sample.
func (tr *Track) Duration() time.Duration {
	if len(tr.Samples) == 0 {
		return 0
	}
	return tr.Samples[len(tr.Samples)-1].T
}

// Advance moves the replay clock by dt and writes the interpolated
// position into s.
func (tr *Track) Advance(dt time.Duration, s *Store) {
	if len(tr.Samples) == 0 {
		return
	}
	tr.elapsed += dt
	if d := tr.Duration(); tr.Loop && d > 0 && tr.elapsed > d {
		tr.elapsed %= d
	}
	s.Apply(tr.At(tr.elapsed))
}

// At returns the interpolated position at offset t.
func (tr *Track) At(t time.Duration) Position {
	first := tr.Samples[0]
	if t <= first.T {
		return first.Position
	}
	for i := 1; i < len(tr.Samples); i++ {
		b := tr.Samples[i]
		if t > b.T {
			continue
		}
		a := tr.Samples[i-1]
		span := b.T - a.T
		if span <= 0 {
			return b.Position
		}
		f := float64(t-a.T) / float64(span)
		return Position{
			Lat:      lerp(a.Lat, b.Lat, f),
			Lon:      lerp(a.Lon, b.Lon, f),
			Heading:  lerpAngle(a.Heading, b.Heading, f),
			Track:    lerpAngle(a.Track, b.Track, f),
			OnGround: a.OnGround,
		}
	}
	return tr.Samples[len(tr.Samples)-1].Position
}

func lerp(a, b, f float64) float64 {
	return a + (b-a)*f
}

// lerpAngle interpolates degrees along the shorter arc.
func lerpAngle(a, b, f float64) float64 {
	d := math.Mod(b-a+540, 360) - 180
	return math.Mod(a+d*f+360, 360)
}
