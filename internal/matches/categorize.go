// Package matches implements the pure match classification, filtering and
// grouping pipeline. It has no I/O: every function is a plain computation
// over the match list handed to it, recomputed on demand.
package matches

import (
	"sort"
	"time"

	"github.com/karimfs/matchday/internal/models"
)

// finishedWindowDays is the trailing window for the finished bucket.
// Finished matches older than this are dropped from all buckets; that is a
// deliberate windowing policy, not data loss.
const finishedWindowDays = 10

// Categorized is the three-way partition of a match list.
type Categorized struct {
	Live     []models.Match
	Upcoming []models.Match
	Finished []models.Match
}

// Categorize partitions matches into live, upcoming and finished buckets
// relative to now.
//
// A match with the live flag set is live regardless of status or date. A
// non-live match with status "Finished" lands in the finished bucket only if
// its date falls within the trailing window, measured from midnight of
// now minus finishedWindowDays (inclusive, day granularity). Every other
// non-live match is upcoming, postponed fixtures included.
//
// Live and upcoming preserve input order; finished is sorted most recent
// first by date and kickoff time.
func Categorize(ms []models.Match, now time.Time) Categorized {
	cutoff := midnight(now.AddDate(0, 0, -finishedWindowDays))

	var c Categorized
	for _, m := range ms {
		switch {
		case m.IsLive():
			c.Live = append(c.Live, m)
		case m.Status == models.StatusFinished:
			if d, ok := matchDay(m); ok && !d.Before(cutoff) {
				c.Finished = append(c.Finished, m)
			}
		default:
			c.Upcoming = append(c.Upcoming, m)
		}
	}

	sort.SliceStable(c.Finished, func(i, j int) bool {
		return instant(c.Finished[i]).After(instant(c.Finished[j]))
	})
	return c
}

// Bucket returns the matches for one category.
func (c Categorized) Bucket(cat models.Category) []models.Match {
	switch cat {
	case models.CategoryUpcoming:
		return c.Upcoming
	case models.CategoryFinished:
		return c.Finished
	default:
		return c.Live
	}
}

// Recommended returns the category a caller showing active should switch to.
// When nothing is live but upcoming matches exist, a caller sitting on the
// live tab is pointed at upcoming; in every other case the active category
// stands. The caller owns the active-category state and may ignore this.
func (c Categorized) Recommended(active models.Category) models.Category {
	if active == models.CategoryLive && len(c.Live) == 0 && len(c.Upcoming) > 0 {
		return models.CategoryUpcoming
	}
	return active
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// matchDay parses the calendar date of a match. Unparseable dates report
// ok=false and fall out of the finished window.
func matchDay(m models.Match) (time.Time, bool) {
	d, err := time.Parse("2006-01-02", m.Date)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// instant combines date and kickoff time for ordering. A missing or
// malformed time component sorts the match at the start of its day.
func instant(m models.Match) time.Time {
	d, ok := matchDay(m)
	if !ok {
		return time.Time{}
	}
	if t, err := time.Parse("15:04", m.Time); err == nil {
		d = d.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute)
	}
	return d
}
