package astro_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ja-he/soltime/internal/astro"
)

func TestSeasonDates(t *testing.T) {
	testcases := []struct {
		name  string
		event func(int) time.Time
		month time.Month
		days  []int
	}{
		{"march equinox", astro.MarchEquinox, time.March, []int{19, 20, 21}},
		{"june solstice", astro.JuneSolstice, time.June, []int{20, 21, 22}},
		{"september equinox", astro.SeptemberEquinox, time.September, []int{21, 22, 23, 24}},
		{"december solstice", astro.DecemberSolstice, time.December, []int{20, 21, 22, 23}},
	}

	for _, testcase := range testcases {
		for year := 2020; year <= 2030; year++ {
			at := testcase.event(year)
			assert.Equal(t, year, at.Year(), "%s of %d in wrong year", testcase.name, year)
			assert.Equal(t, testcase.month, at.Month(), "%s of %d in wrong month", testcase.name, year)
			assert.Contains(t, testcase.days, at.Day(), "%s of %d on unexpected day", testcase.name, year)
		}
	}
}
