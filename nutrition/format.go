package nutrition

import (
	"fmt"
	"strconv"
)

// FormatHeight renders a height given in centimeters: "180 cm" for metric,
// 5'11" for imperial.
func FormatHeight(cm float64, unitSystem string) (string, error) {
	if err := checkMeasure("height", cm); err != nil {
		return "", err
	}
	switch unitSystem {
	case Metric:
		return formatNumber(cm) + " cm", nil
	case Imperial:
		fi, err := HeightMetricToImperial(cm)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(`%d'%d"`, fi.Feet, fi.Inches), nil
	default:
		return "", unsupportedUnitSystemError(unitSystem)
	}
}

// FormatWeight renders a weight already expressed in unitSystem: "70 kg" or
// "150 lbs".
func FormatWeight(v float64, unitSystem string) (string, error) {
	if err := checkMeasure("weight", v); err != nil {
		return "", err
	}
	switch unitSystem {
	case Metric:
		return formatNumber(v) + " kg", nil
	case Imperial:
		return formatNumber(v) + " lbs", nil
	default:
		return "", unsupportedUnitSystemError(unitSystem)
	}
}

// formatNumber prints the shortest decimal form: 180, 175.5, 70.25.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
