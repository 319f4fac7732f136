package normalize

import (
	"strings"
	"time"
)

const (
	// Present - конец диапазона для текущих записей.
	Present = "Present"
	// RangeSeparator разделяет начало и конец периода.
	RangeSeparator = " — "

	displayLayout = "Jan 2006"
)

var inputLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.000",
	"2006-01",
}

// FormatDate приводит дату апстрима к виду "Jan 2006".
// Нераспознанная строка возвращается как есть.
func FormatDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(displayLayout)
		}
	}

	return s
}

// FormatDateRange строит подпись периода.
// Флаг ongoing проверяется первым: при нём сохранённая дата окончания игнорируется.
// Без флага и без даты окончания диапазон открытый: "start - ".
func FormatDateRange(start, end string, ongoing bool) string {
	from := FormatDate(start)

	var to string
	switch {
	case ongoing:
		to = Present
	case strings.TrimSpace(end) != "":
		to = FormatDate(end)
	}

	if from == "" {
		return to
	}

	return from + RangeSeparator + to
}
