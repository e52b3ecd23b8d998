// Package forecast extrapolates a short window of evenly spaced temperature samples by fitting a
// least squares line against the sample index.
package forecast

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	mat_ "github.com/aouyang1/go-weathertrend/mat"
	"github.com/aouyang1/go-weathertrend/models"
)

var (
	ErrUninitializedForecaster = errors.New("uninitialized forecaster")
	ErrInsufficientSamples     = errors.New("insufficient temperature samples to fit a trend")
	ErrNonFiniteSample         = errors.New("temperature sample is not a finite value")
	ErrDegenerateFit           = errors.New("trend fit produced non-finite values")
	ErrHorizonTooLarge         = errors.New("horizon exceeds the maximum number of predicted steps")
)

// Forecaster fits a linear temperature trend and extrapolates it. A Forecaster holds no state
// between calls and is safe for concurrent use.
type Forecaster struct {
	opt *Options
}

// New creates a new forecaster with the given options. If none are provided a default is used.
func New(opt *Options) (*Forecaster, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid forecaster options, %w", err)
	}
	return &Forecaster{opt: opt}, nil
}

var defaultForecaster = &Forecaster{opt: NewDefaultOptions()}

// Predict extrapolates the temperatures horizon steps using the default options. See
// Forecaster.Predict.
func Predict(temperatures []float64, horizon int) Prediction {
	return defaultForecaster.Predict(temperatures, horizon)
}

// Predict extrapolates the temperatures horizon steps past the last sample. Samples are assumed to
// be evenly spaced. Too few samples or a failed fit returns an empty prediction with a confidence
// of 0 rather than an error. A negative horizon is treated as 0.
func (f *Forecaster) Predict(temperatures []float64, horizon int) Prediction {
	p, err := f.Fit(temperatures, horizon)
	if err != nil {
		if !errors.Is(err, ErrInsufficientSamples) {
			slog.Warn("unable to fit temperature trend, returning no prediction",
				"samples", len(temperatures),
				"horizon", horizon,
				"error", err.Error(),
			)
		}
		return NoPrediction()
	}
	return p
}

// Fit is Predict with the failure reason returned instead of an empty prediction
func (f *Forecaster) Fit(temperatures []float64, horizon int) (Prediction, error) {
	if f == nil || f.opt == nil {
		return Prediction{}, ErrUninitializedForecaster
	}

	n := len(temperatures)
	if n < f.opt.MinSamples {
		return Prediction{}, fmt.Errorf("got %d samples, need %d, %w", n, f.opt.MinSamples, ErrInsufficientSamples)
	}
	for i, v := range temperatures {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Prediction{}, fmt.Errorf("sample %d, %w", i, ErrNonFiniteSample)
		}
	}
	if horizon < 0 {
		horizon = 0
	}
	if horizon > f.opt.MaxHorizon {
		return Prediction{}, fmt.Errorf("got %d, max %d, %w", horizon, f.opt.MaxHorizon, ErrHorizonTooLarge)
	}

	x, err := mat_.IndexDesign(0, n)
	if err != nil {
		return Prediction{}, fmt.Errorf("unable to build training design matrix, %w", err)
	}
	y, err := mat_.ColumnVector(temperatures)
	if err != nil {
		return Prediction{}, fmt.Errorf("unable to build training target, %w", err)
	}

	ols, err := models.NewOLSRegression(models.NewDefaultOLSOptions())
	if err != nil {
		return Prediction{}, fmt.Errorf("unable to initialize regression, %w", err)
	}
	var model models.Model = ols
	if err := model.Fit(x, y); err != nil {
		return Prediction{}, fmt.Errorf("unable to fit temperature trend, %w", err)
	}

	fitted, err := model.Predict(x)
	if err != nil {
		return Prediction{}, fmt.Errorf("unable to evaluate fit over training samples, %w", err)
	}
	scores, err := NewScores(fitted, temperatures, f.opt.ResidualTolerance)
	if err != nil {
		return Prediction{}, fmt.Errorf("unable to score temperature trend, %w", err)
	}

	// the model score is undefined for identical samples, where the tolerance based r-squared
	// from NewScores is kept
	r2, err := model.Score(x, y)
	if err != nil {
		return Prediction{}, fmt.Errorf("unable to score temperature trend, %w", err)
	}
	if !math.IsNaN(r2) && !math.IsInf(r2, 0) {
		scores.R2 = r2
	}

	preds := make([]float64, 0, horizon)
	if horizon > 0 {
		future, err := mat_.IndexDesign(n, horizon)
		if err != nil {
			return Prediction{}, fmt.Errorf("unable to build horizon design matrix, %w", err)
		}
		res, err := model.Predict(future)
		if err != nil {
			return Prediction{}, fmt.Errorf("unable to extrapolate temperature trend, %w", err)
		}
		preds = append(preds, res...)
	}

	slope := model.Coef()[0]
	intercept := model.Intercept()
	for _, v := range append([]float64{slope, intercept, scores.R2}, preds...) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Prediction{}, ErrDegenerateFit
		}
	}

	return Prediction{
		Temperatures: preds,
		Confidence:   scores.R2,
		Slope:        slope,
		Intercept:    intercept,
		Samples:      n,
		Scores:       scores,
	}, nil
}
