package forecast

import (
	"testing"

	"github.com/pkg/profile"
)

var benchPredictRes Prediction

func generateBenchTemperatures(n int) []float64 {
	temps := make([]float64, n)
	for i := 0; i < n; i++ {
		temps[i] = 12.0 + 0.15*float64(i) + float64(i%3)*0.4
	}
	return temps
}

func BenchmarkPredictWindow(b *testing.B) {
	temps := generateBenchTemperatures(12)
	for i := 0; i < b.N; i++ {
		benchPredictRes = Predict(temps, DefaultHorizon)
	}
}

func BenchmarkPredictFullSeriesProfile(b *testing.B) {
	temps := generateBenchTemperatures(40)

	defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	for i := 0; i < b.N; i++ {
		benchPredictRes = Predict(temps, DefaultHorizon)
	}
}
