package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	rlcerror "github.com/msto63/nearestrlc/internal/core/error"
	rlclog "github.com/msto63/nearestrlc/internal/core/log"
	"github.com/msto63/nearestrlc/pkg/engnotation"
	"github.com/msto63/nearestrlc/pkg/eseries"
)

// target is what values are quantized against: a tolerance class or a
// named inventory series from the configuration.
type target struct {
	tol    eseries.Tolerance
	series *eseries.Series
	label  string
}

// resolveTarget picks the series flag over the tolerance flag over the
// configured default tolerance.
func (a *app) resolveTarget(tolFlag, seriesFlag string) (target, error) {
	if seriesFlag != "" {
		s, err := a.cfg.Series(seriesFlag)
		if err != nil {
			return target{}, err
		}
		return target{series: s, label: s.Name()}, nil
	}

	label := tolFlag
	if label == "" {
		label = a.cfg.Quantize.Tolerance
	}
	tol, err := eseries.ParseTolerance(label)
	if err != nil {
		return target{}, err
	}
	return toleranceTarget(tol), nil
}

func toleranceTarget(tol eseries.Tolerance) target {
	return target{tol: tol, series: tol.Series(), label: tol.String()}
}

func (t target) quantize(value float64) (float64, error) {
	if t.tol == 0 {
		return eseries.QuantizeSeries(value, t.series), nil
	}
	return eseries.Quantize(value, t.tol)
}

func (t target) seriesName() string {
	if t.series == nil {
		return "-"
	}
	return t.series.Name()
}

// result is one quantized value, as rendered in tables and JSON.
type result struct {
	Input        string  `json:"input"`
	Value        float64 `json:"value"`
	Tolerance    string  `json:"tolerance"`
	Series       string  `json:"series"`
	Quantized    float64 `json:"quantized"`
	ErrorPercent float64 `json:"error_percent"`
}

func (a *app) quantizeOne(input string, value float64, t target) (result, error) {
	q, err := t.quantize(value)
	if err != nil {
		return result{}, err
	}

	r := result{
		Input:        input,
		Value:        value,
		Tolerance:    t.label,
		Series:       t.seriesName(),
		Quantized:    q,
		ErrorPercent: eseries.ErrorPercent(value, q),
	}
	a.log.Debug("value quantized", rlclog.Fields{
		"input":     input,
		"value":     value,
		"tolerance": r.Tolerance,
		"quantized": q,
	})
	return r, nil
}

func (a *app) digits(flag int) int {
	if flag > 0 {
		return flag
	}
	return a.cfg.Quantize.Digits
}

func (a *app) unit(flag, parsed string) string {
	switch {
	case flag != "":
		return flag
	case parsed != "":
		return parsed
	default:
		return a.cfg.Quantize.Unit
	}
}

func resultRow(r result, unit string, digits int) table.Row {
	return table.Row{
		engnotation.Format(r.Value, unit, digits),
		r.Tolerance,
		r.Series,
		engnotation.Format(r.Quantized, unit, digits),
		formatErrorPercent(r.ErrorPercent),
	}
}

var resultHeader = table.Row{"VALUE", "TOLERANCE", "SERIES", "NEAREST", "ERROR"}

func formatErrorPercent(p float64) string {
	return fmt.Sprintf("%.2f %%", p)
}

func invalidFlag(flag string, value interface{}, reason string) error {
	return rlcerror.Newf("invalid --%s: %s", flag, reason).
		WithCode(rlcerror.CodeInvalidInput).
		WithDetail("flag", flag).
		WithDetail("value", value)
}
