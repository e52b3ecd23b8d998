package weathertrend_test

import (
	"fmt"
	"os"
	"time"

	"github.com/aouyang1/go-weathertrend"
	"github.com/aouyang1/go-weathertrend/observation"
)

func ExampleNewReportFromForecast() {
	f, err := os.Open("observation/testdata/london.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	fc, err := observation.ParseForecast(f)
	if err != nil {
		panic(err)
	}

	opt := weathertrend.NewDefaultOptions()
	opt.Horizon = 3
	r, err := weathertrend.NewReportFromForecast(fc, opt)
	if err != nil {
		panic(err)
	}

	fmt.Println(r.Location(), r.Summary.TemperatureTrend, r.Summary.DominantCondition)
	fmt.Printf("confidence %.1f%% (%s)\n", r.Prediction.Confidence*100, r.Prediction.Level())
	for i, v := range r.Prediction.Temperatures {
		fmt.Printf("%s %.1f\n", r.PredictionTimes[i].Format(time.DateTime), v)
	}
	// Output:
	// London, GB warming Clouds
	// confidence 93.3% (high)
	// 2024-06-01 18:00:00 19.9
	// 2024-06-01 21:00:00 21.0
	// 2024-06-02 00:00:00 22.1
}
