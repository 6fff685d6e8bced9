// Package ident generates the collision-resistant identifiers and form
// date strings the suites feed into the application. Generated names
// combine a truncated date stamp with a random base-36 suffix so that
// repeated runs against a shared environment never collide.
package ident

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

const base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// suffixLen matches the six-character suffix used for generated names.
const suffixLen = 6

// datestamp returns the YYMMDD fragment embedded in generated names.
func datestamp(now time.Time) string {
	return now.Format("060102")
}

func randomSuffix(n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(base36[rand.IntN(len(base36))])
	}
	return b.String()
}

// RandomProjectName returns a globally unique project name such as
// "Automa_Test_231015_AB12CD".
func RandomProjectName(prefix string) string {
	return fmt.Sprintf("%s_%s_%s", prefix, datestamp(time.Now()), randomSuffix(suffixLen))
}

// RandomEmail returns a unique-per-run contact email such as
// "sumit_231015_AB12CD@gmail.com".
func RandomEmail(prefix string) string {
	return fmt.Sprintf("%s_%s_%s@gmail.com", prefix, datestamp(time.Now()), randomSuffix(suffixLen))
}

// WithRandomSuffix appends a short random fragment to a base string,
// used for generated descriptions ("Created via Playwright automation_WX9Y").
func WithRandomSuffix(base string) string {
	return base + "_" + randomSuffix(4)
}

// FormStartDate returns today's date in the DD-MM-YYYY form the project
// modal's date inputs accept.
func FormStartDate(now time.Time) string {
	return now.Format("02-01-2006")
}

// FormEndDate returns the date thirty days out, in DD-MM-YYYY form.
func FormEndDate(now time.Time) string {
	return now.AddDate(0, 0, 30).Format("02-01-2006")
}

// CalendarLabel renders a date the way the date-picker buttons label
// their days: en-GB long form without a leading zero, e.g. "2 January 2006".
func CalendarLabel(t time.Time) string {
	return t.Format("2 January 2006")
}
