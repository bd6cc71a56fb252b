package hiring

import (
	"sort"
	"time"

	"github.com/dreamtoapp/modonty/pkg/i18n"
)

// DayBucket — интервью одного календарного дня для отображения в календаре.
type DayBucket struct {
	Date       time.Time     `json:"date"` // полночь UTC
	DayName    string        `json:"dayName"`
	DateLabel  string        `json:"dateLabel"`
	Interviews []Application `json:"interviews"`
}

// GroupByDay раскладывает запланированные интервью по дням.
//
// Правила (ровно в таком порядке, их легко перепутать с одной сортировкой):
//  1. заявки без даты интервью отбрасываются;
//  2. группировка по календарной дате UTC (усечение даты ISO-метки,
//     НЕ по локальной таймзоне);
//  3. внутри дня — по возрастанию времени;
//  4. дни ≥ today — по возрастанию (ближайшие первыми), затем
//     дни < today — по убыванию (недавнее прошлое первым).
func GroupByDay(apps []Application, today time.Time, locale string) []DayBucket {
	byDate := make(map[time.Time][]Application)
	for _, a := range apps {
		if a.ScheduledInterviewAt == nil {
			continue
		}
		d := truncateUTC(*a.ScheduledInterviewAt)
		byDate[d] = append(byDate[d], a)
	}

	today = truncateUTC(today)
	var upcoming, past []time.Time
	for d := range byDate {
		if d.Before(today) {
			past = append(past, d)
		} else {
			upcoming = append(upcoming, d)
		}
	}
	sort.Slice(upcoming, func(i, j int) bool { return upcoming[i].Before(upcoming[j]) })
	sort.Slice(past, func(i, j int) bool { return past[i].After(past[j]) })

	buckets := make([]DayBucket, 0, len(byDate))
	for _, d := range append(upcoming, past...) {
		items := byDate[d]
		sort.Slice(items, func(i, j int) bool {
			return items[i].ScheduledInterviewAt.Before(*items[j].ScheduledInterviewAt)
		})
		buckets = append(buckets, DayBucket{
			Date:       d,
			DayName:    i18n.DayName(locale, d),
			DateLabel:  i18n.LongDate(locale, d),
			Interviews: items,
		})
	}
	return buckets
}

func truncateUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
