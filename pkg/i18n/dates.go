// Package i18n форматирует даты календаря интервью на арабском и английском.
// Стандартная библиотека не умеет локализованные названия дней/месяцев,
// поэтому таблицы заданы вручную — двух локалей приложению достаточно.
package i18n

import (
	"fmt"
	"time"
)

var arDays = [7]string{"الأحد", "الاثنين", "الثلاثاء", "الأربعاء", "الخميس", "الجمعة", "السبت"}

var arMonths = [12]string{
	"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
	"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
}

// DayName возвращает название дня недели для локали ("ar" или "en").
// Неизвестная локаль трактуется как "en".
func DayName(locale string, t time.Time) string {
	if locale == "ar" {
		return arDays[int(t.Weekday())]
	}
	return t.Weekday().String()
}

// LongDate возвращает длинную форму даты: "2 يناير 2006" / "2 January 2006".
func LongDate(locale string, t time.Time) string {
	if locale == "ar" {
		return fmt.Sprintf("%d %s %d", t.Day(), arMonths[int(t.Month())-1], t.Year())
	}
	return t.Format("2 January 2006")
}
