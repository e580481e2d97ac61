package sheets

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Таблица наполняется руками через Google Forms и несколькими поколениями
// скриптов, поэтому формат строк неоднороден: массивы массивов с шапкой
// или без, массивы объектов с разными названиями колонки даты, обёртки
// {data|bookings|rows: [...]}. Нормализация сводит всё это к плоскому
// множеству ISO дат.

var (
	isoDateRe = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`)
	usDateRe  = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`)
)

// normalizeDateString извлекает из ячейки дату в ISO виде.
// Понимает ISO (YYYY-MM-DD) и американский (M/D/YYYY) форматы.
func normalizeDateString(value string) (string, bool) {
	if match := isoDateRe.FindString(value); match != "" {
		return match, true
	}

	if match := usDateRe.FindStringSubmatch(value); match != nil {
		month, err1 := strconv.Atoi(match[1])
		day, err2 := strconv.Atoi(match[2])
		year, err3 := strconv.Atoi(match[3])
		if err1 != nil || err2 != nil || err3 != nil {
			return "", false
		}
		var b strings.Builder
		b.WriteString(strconv.Itoa(year))
		b.WriteByte('-')
		if month < 10 {
			b.WriteByte('0')
		}
		b.WriteString(strconv.Itoa(month))
		b.WriteByte('-')
		if day < 10 {
			b.WriteByte('0')
		}
		b.WriteString(strconv.Itoa(day))
		return b.String(), true
	}

	return "", false
}

// extractDatesFromRow вытаскивает дату из одной строки листа.
// Строка может быть строкой, массивом ячеек или объектом; берётся первая
// распознанная дата.
func extractDatesFromRow(row interface{}) []string {
	switch v := row.(type) {
	case string:
		if normalized, ok := normalizeDateString(v); ok {
			return []string{normalized}
		}

	case []interface{}:
		for _, cell := range v {
			s, ok := cell.(string)
			if !ok {
				continue
			}
			if normalized, ok := normalizeDateString(s); ok {
				return []string{normalized}
			}
		}

	case map[string]interface{}:
		// Сначала известные названия колонки даты
		for _, key := range candidateDateKeys {
			s, ok := v[key].(string)
			if !ok {
				continue
			}
			if normalized, ok := normalizeDateString(s); ok {
				return []string{normalized}
			}
		}
		// Затем любое строковое значение с распознаваемой датой
		for _, value := range v {
			s, ok := value.(string)
			if !ok {
				continue
			}
			if normalized, ok := normalizeDateString(s); ok {
				return []string{normalized}
			}
		}
	}

	return nil
}

// extractBookedDates разбирает произвольный ответ релея в список ISO дат
func extractBookedDates(data interface{}) []string {
	if data == nil {
		return nil
	}

	var rows []interface{}

	switch v := data.(type) {
	case []interface{}:
		rows = v
	case map[string]interface{}:
		for _, key := range []string{"data", "bookings", "rows"} {
			if container, ok := v[key].([]interface{}); ok {
				rows = container
				break
			}
		}
	}

	if len(rows) == 0 {
		return nil
	}

	// Если первая строка — шапка таблицы (содержит "date"), пропускаем её
	startIndex := 0
	if headerRow, ok := rows[0].([]interface{}); ok {
		for _, cell := range headerRow {
			if s, ok := cell.(string); ok && strings.Contains(strings.ToLower(s), "date") {
				startIndex = 1
				break
			}
		}
	}

	dates := make([]string, 0, len(rows))
	for i := startIndex; i < len(rows); i++ {
		dates = append(dates, extractDatesFromRow(rows[i])...)
	}

	return dates
}

// uniqueSorted убирает дубликаты и сортирует даты
func uniqueSorted(dates []string) []string {
	seen := make(map[string]struct{}, len(dates))
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		if d == "" {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}
