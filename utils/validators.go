package utils

import (
	"regexp"
	"time"
)

// Brazilian plate formats: ABC1234 (legacy) and ABC1D23 (Mercosul).
var plateRegex = regexp.MustCompile(`^[A-Z]{3}[0-9][0-9A-Z][0-9]{2}$`)

var cpfRegex = regexp.MustCompile(`^\d{11}$`)

func IsValidPlate(plate string) bool {
	return plateRegex.MatchString(plate)
}

func IsValidChassis(chassis string) bool {
	return len(chassis) == 17
}

func IsValidCPF(cpf string) bool {
	// Format only; the check digits are not verified.
	return cpfRegex.MatchString(cpf)
}

func IsValidYear(year int) bool {
	return year >= 1950 && year <= time.Now().Year()+1
}

func IsValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

func IsValidFuelLevel(level float64) bool {
	return level >= 0 && level <= 100
}

func IsValidMileage(mileage int) bool {
	return mileage > 0
}
