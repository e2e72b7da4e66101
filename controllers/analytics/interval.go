package analyticsControllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// dateRange resolves the interval query into a concrete [start, end]
// window. Supported intervals: day, week, month, year, custom (custom
// requires startDate and endDate as unix seconds).
func dateRange(c *gin.Context) (interval string, start, end time.Time, err error) {
	interval = c.DefaultQuery("interval", "month")
	now := time.Now()

	switch interval {
	case "custom":
		startSec, startErr := strconv.ParseInt(c.Query("startDate"), 10, 64)
		endSec, endErr := strconv.ParseInt(c.Query("endDate"), 10, 64)
		if startErr != nil || endErr != nil {
			err = errors.New("startDate and endDate are required for custom interval")
			return
		}
		start = time.Unix(startSec, 0)
		end = time.Unix(endSec, 0)
	case "day":
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		end = start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	case "week":
		weekday := int(now.Weekday())
		start = time.Date(now.Year(), now.Month(), now.Day()-weekday, 0, 0, 0, 0, now.Location())
		end = start.AddDate(0, 0, 7).Add(-time.Nanosecond)
	case "year":
		start = time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		end = start.AddDate(1, 0, 0).Add(-time.Nanosecond)
	default:
		interval = "month"
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	}
	return
}

// previousRange shifts the window back by one interval for
// period-over-period comparison.
func previousRange(interval string, start, end time.Time) (time.Time, time.Time) {
	switch interval {
	case "day":
		return start.AddDate(0, 0, -1), end.AddDate(0, 0, -1)
	case "week":
		return start.AddDate(0, 0, -7), end.AddDate(0, 0, -7)
	case "year":
		return start.AddDate(-1, 0, 0), end.AddDate(-1, 0, 0)
	case "custom":
		span := end.Sub(start)
		return start.Add(-span), start
	default:
		return start.AddDate(0, -1, 0), end.AddDate(0, -1, 0)
	}
}

// percentChange follows the convention that growth from zero reads as
// 100% and zero-to-zero reads as 0%.
func percentChange(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / previous * 100
}
