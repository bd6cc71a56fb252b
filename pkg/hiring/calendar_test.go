package hiring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByDay(t *testing.T) {
	mk := func(name string, at time.Time) Application {
		return Application{Name: name, ScheduledInterviewAt: &at}
	}
	today := time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)

	t.Run("сегодня первым, прошлое в конце", func(t *testing.T) {
		apps := []Application{
			mk("late today", time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)),
			mk("early today", time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)),
			mk("past", time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)),
		}
		buckets := GroupByDay(apps, today, "en")
		require.Len(t, buckets, 2)

		assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), buckets[0].Date)
		require.Len(t, buckets[0].Interviews, 2)
		// Внутри дня по возрастанию времени
		assert.Equal(t, "early today", buckets[0].Interviews[0].Name)
		assert.Equal(t, "late today", buckets[0].Interviews[1].Name)

		assert.Equal(t, time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC), buckets[1].Date)
	})

	t.Run("предстоящие по возрастанию, затем прошлые по убыванию", func(t *testing.T) {
		apps := []Application{
			mk("future", time.Date(2024, 6, 5, 11, 0, 0, 0, time.UTC)),
			mk("today", time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)),
			mk("recent past", time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)),
			mk("older past", time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)),
		}
		buckets := GroupByDay(apps, today, "en")
		require.Len(t, buckets, 4)
		assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), buckets[0].Date)
		assert.Equal(t, time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC), buckets[1].Date)
		assert.Equal(t, time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC), buckets[2].Date)
		assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), buckets[3].Date)
	})

	t.Run("группировка по дате UTC, не по локальному дню", func(t *testing.T) {
		riyadh := time.FixedZone("AST", 3*60*60)
		// 2024-06-02 01:00 AST — это ещё 2024-06-01 22:00 UTC
		apps := []Application{
			mk("utc evening", time.Date(2024, 6, 2, 1, 0, 0, 0, riyadh)),
			mk("utc morning", time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)),
		}
		buckets := GroupByDay(apps, today, "en")
		require.Len(t, buckets, 1)
		assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), buckets[0].Date)
		assert.Len(t, buckets[0].Interviews, 2)
	})

	t.Run("заявки без даты отбрасываются", func(t *testing.T) {
		apps := []Application{
			{Name: "no date"},
			mk("with date", time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)),
		}
		buckets := GroupByDay(apps, today, "en")
		require.Len(t, buckets, 1)
		require.Len(t, buckets[0].Interviews, 1)
		assert.Equal(t, "with date", buckets[0].Interviews[0].Name)
	})

	t.Run("локализованные подписи", func(t *testing.T) {
		apps := []Application{mk("x", time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))}

		en := GroupByDay(apps, today, "en")
		require.Len(t, en, 1)
		assert.Equal(t, "Saturday", en[0].DayName)
		assert.Equal(t, "1 June 2024", en[0].DateLabel)

		ar := GroupByDay(apps, today, "ar")
		require.Len(t, ar, 1)
		assert.Equal(t, "السبت", ar[0].DayName)
		assert.Equal(t, "1 يونيو 2024", ar[0].DateLabel)
	})
}
