package renderer

import (
	"os"
	"time"
)

// Now is the current time stamped on reports. Tests pin it through the
// KEEPORSELL_TESTING_NOW environment variable.
func Now() time.Time {
	if os.Getenv("KEEPORSELL_TESTING_NOW") != "" {
		t, err := time.Parse("2006-01-02 15:04:05", os.Getenv("KEEPORSELL_TESTING_NOW"))
		if err != nil {
			panic(err)
		}
		return t
	}
	return time.Now()
}
