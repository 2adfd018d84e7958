package nutrition

// CalculateBMI returns body mass index rounded to one decimal place. Height
// is in centimeters and weight in kilograms; both must be positive.
func CalculateBMI(weightKG, heightCM float64) (float64, error) {
	if !isFinite(weightKG) || weightKG <= 0 {
		return 0, invalidValueError("weight", "must be a positive number")
	}
	if !isFinite(heightCM) || heightCM <= 0 {
		return 0, invalidValueError("height", "must be a positive number of centimeters")
	}
	m := heightCM / 100
	return round1(weightKG / (m * m)), nil
}

// BMICategory returns the WHO weight category for a BMI value.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}
