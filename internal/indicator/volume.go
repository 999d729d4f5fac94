package indicator

import "GoldSentinel/internal/model"

// HighVolumeRatio is the ratio over trailing average volume above which a
// bar counts as high volume.
const HighVolumeRatio = 1.5

// VolumeProfile compares the current volume against its trailing average
// over the given period. A zero average defaults the ratio to 1.0.
func VolumeProfile(volume []float64, period int) (model.VolumeProfile, error) {
	if period <= 0 {
		return model.VolumeProfile{}, errf("volume_profile", "period must be positive, got %d", period)
	}
	n := len(volume)
	if n == 0 {
		return model.VolumeProfile{}, errf("volume_profile", "empty input series")
	}

	start := n - period
	if start < 0 {
		start = 0
	}
	var sum float64
	for i := start; i < n; i++ {
		sum += volume[i]
	}
	avg := sum / float64(n-start)

	current := volume[n-1]
	ratio := 1.0
	if avg > 0 {
		ratio = current / avg
	}
	return model.VolumeProfile{
		Current:    current,
		Average:    avg,
		Ratio:      ratio,
		HighVolume: ratio > HighVolumeRatio,
	}, nil
}
