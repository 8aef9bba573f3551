package drawer

const (
	defaultSampleWindow = 6
	defaultFrameRate    = 60
)

// releaseSpeed estimates the horizontal release speed in px/s from the last
// window samples: the mean of consecutive x deltas scaled by the assumed
// frame rate. Fewer than two samples yield 0.
func releaseSpeed(history []PointerSample, window int, fps float64) float64 {
	if window < 2 {
		window = 2
	}
	if len(history) > window {
		history = history[len(history)-window:]
	}
	if len(history) < 2 {
		return 0
	}
	var sum float64
	for i := 1; i < len(history); i++ {
		sum += history[i].X - history[i-1].X
	}
	return sum / float64(len(history)-1) * fps
}
