package forecast

import (
	"fmt"
	"io"
	"strings"
)

const (
	HighConfidenceThreshold     = 0.8
	ModerateConfidenceThreshold = 0.6
)

// ConfidenceLevel buckets a prediction confidence for display
type ConfidenceLevel int

const (
	LowConfidence ConfidenceLevel = iota
	ModerateConfidence
	HighConfidence
)

func (c ConfidenceLevel) String() string {
	switch c {
	case HighConfidence:
		return "high"
	case ModerateConfidence:
		return "moderate"
	default:
		return "low"
	}
}

func (c ConfidenceLevel) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Prediction is the extrapolated temperature trend. Confidence is the r-squared of the fit over the
// training samples, not of the extrapolated values, and is at most 1.0.
type Prediction struct {
	Temperatures []float64 `json:"predicted_temperatures"`
	Confidence   float64   `json:"confidence"`
	Slope        float64   `json:"slope"`
	Intercept    float64   `json:"intercept"`
	Samples      int       `json:"samples"`
	Scores       *Scores   `json:"scores,omitempty"`
}

// NoPrediction is returned when there is not enough data or the fit failed
func NoPrediction() Prediction {
	return Prediction{
		Temperatures: []float64{},
		Confidence:   0.0,
	}
}

// OK reports whether the trend was fit
func (p Prediction) OK() bool {
	return p.Scores != nil
}

// Level buckets the confidence into high (> 0.8), moderate (> 0.6) or low
func (p Prediction) Level() ConfidenceLevel {
	switch {
	case p.Confidence > HighConfidenceThreshold:
		return HighConfidence
	case p.Confidence > ModerateConfidenceThreshold:
		return ModerateConfidence
	default:
		return LowConfidence
	}
}

// ModelEq returns the fit line in the format of y ~ b + m*x where x is the sample index
func (p Prediction) ModelEq() string {
	if !p.OK() {
		return "y ~ none"
	}
	return fmt.Sprintf("y ~ %.2f%+.2f*x", p.Intercept, p.Slope)
}

// TablePrint writes a human readable version of the prediction
func (p Prediction) TablePrint(w io.Writer, prefix, indent string) error {
	if _, err := fmt.Fprintf(w, "%sTemperature Prediction:\n", prefix); err != nil {
		return err
	}
	if !p.OK() {
		_, err := fmt.Fprintf(w, "%s%sUnavailable\n", prefix, indent)
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%sModel: %s    Samples: %d\n", prefix, indent, p.ModelEq(), p.Samples); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%sConfidence: %.1f%% (%s)    MSE: %.3f    MAPE: %.3f\n",
		prefix, indent,
		p.Confidence*100, p.Level(), p.Scores.MSE, p.Scores.MAPE,
	); err != nil {
		return err
	}

	vals := make([]string, 0, len(p.Temperatures))
	for _, v := range p.Temperatures {
		vals = append(vals, fmt.Sprintf("%.1f", v))
	}
	_, err := fmt.Fprintf(w, "%s%sNext %d: %s\n", prefix, indent, len(p.Temperatures), strings.Join(vals, ", "))
	return err
}
