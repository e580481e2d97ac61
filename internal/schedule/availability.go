package schedule

import (
	"time"

	"github.com/godivinity-atl/GOD-BookingService/internal/domain"
)

// IsDateSelectable решает, можно ли вообще открыть дату в календаре для
// выбора слота. Правила проверяются по порядку, первое нарушенное
// останавливает проверку:
//
//  1. дата в прошлом (с точностью до дня; сегодняшний день допустим) — нет;
//  2. дата заблокирована (день занят любой программой) — нет;
//  3. день недели не входит в политику программы — нет.
//
// Неизвестный id программы — false (fail-closed: небронируемая программа
// никогда не должна открывать даты). Текущая дата передаётся явно, функция
// не читает системные часы.
func IsDateSelectable(programID domain.ProgramID, date time.Time, now time.Time, blocked domain.BlockedDates) bool {
	if isDateInPast(date, now) {
		return false
	}

	if blocked.HasDate(date) {
		return false
	}

	p, ok := policyFor(programID)
	if !ok {
		return false
	}

	return p.days.has(date.Weekday())
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
// (время суток обнуляется, сравниваются только календарные дни)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
