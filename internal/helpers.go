package internal

import "time"

const (
	formatDDMMYYYYHHMM = "02.01.2006 15:04"
)

var practiceLocation = loadPracticeLocation()

func loadPracticeLocation() *time.Location {
	location, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		return time.UTC
	}
	return location
}

// Format renders a timestamp the way the practice reads it, in Paris time.
func Format(date time.Time) string {
	return date.In(practiceLocation).Format(formatDDMMYYYYHHMM)
}
