package validators

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/appointment-planner/internal/logger"
)

const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04"
	DateTimeLayout = DateLayout + " " + TimeLayout
)

// ValidateText requires a non-empty value made only of letters, digits
// and spaces.
// TODO: accept punctuation (commas, periods) once the stored data and
// the page templates have been checked for it.
func ValidateText(value, field string) error {
	if value == "" {
		return newValidationError(field, field+" cannot be empty")
	}
	if !IsAlphanumericSpace(value) {
		return newValidationError(field, field+" can only contain letters and/or numbers")
	}
	return nil
}

func IsAlphanumericSpace(value string) bool {
	for _, r := range value {
		if r != ' ' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// CheckFieldSize never fails. Values over max are logged and left for
// the mapper to truncate.
func CheckFieldSize(value string, max int, field string) {
	if n := utf8.RuneCountInString(value); n > max {
		logger.WithFields(logrus.Fields{
			"field":  field,
			"length": n,
			"max":    max,
		}).Warn("users are entering long values, consider updating the database field size")
	}
}

func ValidateDate(date string) error {
	if strings.TrimSpace(date) == "" {
		return newValidationError("date", "Appointment date cannot be empty")
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return newValidationError("date", "Invalid date format")
	}
	return nil
}

func ValidateTime(value string) error {
	if strings.TrimSpace(value) == "" {
		return newValidationError("time", "Appointment time cannot be empty")
	}
	if _, err := time.Parse(TimeLayout, value); err != nil {
		return newValidationError("time", "Invalid time format")
	}
	return nil
}
