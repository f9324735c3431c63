package matches_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karimfs/matchday/internal/matches"
	"github.com/karimfs/matchday/internal/models"
)

var now = time.Date(2026, 6, 20, 15, 30, 0, 0, time.UTC)

func day(offset int) string {
	return now.AddDate(0, 0, offset).Format("2006-01-02")
}

func TestCategorize_Partition(t *testing.T) {
	ms := []models.Match{
		{ID: "1", Live: "1", Status: "Finished", Date: day(-20)},
		{ID: "2", Status: "Finished", Date: day(-2)},
		{ID: "3", Status: "", Date: day(1)},
		{ID: "4", Status: "Postponed", Date: day(3)},
		{ID: "5", Status: "Finished", Date: day(-15)},
	}

	c := matches.Categorize(ms, now)

	require.Len(t, c.Live, 1)
	assert.Equal(t, "1", c.Live[0].ID, "live flag wins regardless of status or date")

	require.Len(t, c.Finished, 1)
	assert.Equal(t, "2", c.Finished[0].ID)

	require.Len(t, c.Upcoming, 2)
	assert.Equal(t, "3", c.Upcoming[0].ID, "upcoming preserves input order")
	assert.Equal(t, "4", c.Upcoming[1].ID, "postponed counts as upcoming")

	// Match 5 finished outside the window and appears in no bucket.
	total := len(c.Live) + len(c.Upcoming) + len(c.Finished)
	assert.Equal(t, len(ms)-1, total)
}

func TestCategorize_WindowBoundary(t *testing.T) {
	ms := []models.Match{
		{ID: "edge", Status: "Finished", Date: day(-10)},
		{ID: "past", Status: "Finished", Date: day(-11)},
	}

	c := matches.Categorize(ms, now)

	require.Len(t, c.Finished, 1)
	assert.Equal(t, "edge", c.Finished[0].ID, "exactly ten days old is included")
}

func TestCategorize_FinishedOrdering(t *testing.T) {
	ms := []models.Match{
		{ID: "a", Status: "Finished", Date: day(-5), Time: "12:00"},
		{ID: "b", Status: "Finished", Date: day(-1), Time: "18:00"},
		{ID: "c", Status: "Finished", Date: day(-1), Time: "20:45"},
		{ID: "d", Status: "Finished", Date: day(-3), Time: "16:00"},
	}

	c := matches.Categorize(ms, now)

	require.Len(t, c.Finished, 4)
	got := []string{c.Finished[0].ID, c.Finished[1].ID, c.Finished[2].ID, c.Finished[3].ID}
	assert.Equal(t, []string{"c", "b", "d", "a"}, got, "finished is most recent first")
}

func TestCategorize_MalformedDateDropsFromFinished(t *testing.T) {
	ms := []models.Match{
		{ID: "bad", Status: "Finished", Date: "not-a-date"},
		{ID: "ok", Status: "Finished", Date: day(0)},
	}

	c := matches.Categorize(ms, now)

	require.Len(t, c.Finished, 1)
	assert.Equal(t, "ok", c.Finished[0].ID)
}

func TestRecommended_SwitchesLiveToUpcoming(t *testing.T) {
	c := matches.Categorize([]models.Match{
		{ID: "1", Status: "", Date: day(2)},
	}, now)

	assert.Equal(t, models.CategoryUpcoming, c.Recommended(models.CategoryLive))
	assert.Equal(t, models.CategoryFinished, c.Recommended(models.CategoryFinished),
		"only an active live tab is redirected")
}

func TestRecommended_NoSwitchWhenLiveExists(t *testing.T) {
	c := matches.Categorize([]models.Match{
		{ID: "1", Live: "1"},
		{ID: "2", Status: "", Date: day(2)},
	}, now)

	assert.Equal(t, models.CategoryLive, c.Recommended(models.CategoryLive))
}

func TestRecommended_NoSwitchWhenUpcomingEmpty(t *testing.T) {
	c := matches.Categorize([]models.Match{
		{ID: "1", Status: "Finished", Date: day(-1)},
	}, now)

	assert.Equal(t, models.CategoryLive, c.Recommended(models.CategoryLive))
}

func TestCategorize_LiveRegardlessOfDate(t *testing.T) {
	ms := []models.Match{
		{ID: "wc", CountryName: "Israel", LeagueName: "World Cup", Live: "1", Date: day(-40)},
		{ID: "2", Status: "Finished", Date: day(-1)},
		{ID: "3", Status: "", Date: day(1)},
	}

	c := matches.Categorize(ms, now)

	require.Len(t, c.Live, 1)
	assert.Equal(t, "wc", c.Live[0].ID)
}

func TestBucket(t *testing.T) {
	c := matches.Categorize([]models.Match{
		{ID: "1", Live: "1"},
		{ID: "2", Status: "", Date: day(1)},
		{ID: "3", Status: "Finished", Date: day(-1)},
	}, now)

	assert.Equal(t, "1", c.Bucket(models.CategoryLive)[0].ID)
	assert.Equal(t, "2", c.Bucket(models.CategoryUpcoming)[0].ID)
	assert.Equal(t, "3", c.Bucket(models.CategoryFinished)[0].ID)
}
