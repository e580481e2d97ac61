// Package schedule is the pure scheduling rules engine: per-program policy
// (eligible weekdays, daily windows, session-length catalog), slot
// generation and the date-availability predicate. Everything here is
// deterministic and side-effect free; the current date is always an
// explicit parameter.
package schedule

import (
	"time"

	"github.com/godivinity-atl/GOD-BookingService/internal/domain"
	"github.com/godivinity-atl/GOD-BookingService/pkg/types"
)

// dayMask набор дней недели (бит на каждый time.Weekday)
type dayMask uint8

func maskOf(days ...time.Weekday) dayMask {
	var m dayMask
	for _, d := range days {
		m |= 1 << uint(d)
	}
	return m
}

func (m dayMask) has(d time.Weekday) bool {
	return m&(1<<uint(d)) != 0
}

var (
	weekendOnly      = maskOf(time.Saturday, time.Sunday)
	weekendAndFriday = maskOf(time.Friday, time.Saturday, time.Sunday)
	everyDay         = maskOf(time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday)
)

// window одно дневное окно программы: границы, длительности по ярусам
// и (опционально) собственное ограничение по дням недели
type window struct {
	open      types.TimeString
	close     types.TimeString
	durations []int // минуты, в порядке ярусов генерации

	// days сужает окно до подмножества дней программы;
	// ноль наследует дни программы целиком
	days dayMask
}

// policy политика расписания одной программы
type policy struct {
	days    dayMask
	windows []window
}

// policies единая таблица бизнес-правил: и генератор слотов, и предикат
// доступности читают её. Правило "по каким дням предлагается программа X"
// существует ровно в одном месте.
var policies = map[domain.ProgramID]policy{
	// Radha Kalyanam: только выходные, два фиксированных блока по 3 часа
	domain.ProgramRadhaKalyanam: {
		days: weekendOnly,
		windows: []window{
			{open: "10:00", close: "13:00", durations: []int{180}},
			{open: "16:00", close: "19:00", durations: []int{180}},
		},
	},

	// Nikunja Utsavam: выходные; утро и вечер с перекрывающимися
	// слотами на 1.5 и 2 часа
	domain.ProgramNikunjaUtsavam: {
		days: weekendOnly,
		windows: []window{
			{open: "10:00", close: "12:30", durations: []int{90, 120}},
			{open: "16:00", close: "19:00", durations: []int{90, 120}},
		},
	},

	// Thirumanjanam: выходные, единственное двухчасовое окно церемонии
	domain.ProgramThirumanjanam: {
		days: weekendOnly,
		windows: []window{
			{open: "10:00", close: "12:00", durations: []int{120}},
		},
	},

	// Nama Ruchi: выходные и пятница; утреннее окно только по выходным,
	// вечернее — в любой допустимый день
	domain.ProgramNamaRuchi: {
		days: weekendAndFriday,
		windows: []window{
			{open: "10:00", close: "12:30", durations: []int{60, 120}, days: weekendOnly},
			{open: "16:00", close: "19:00", durations: []int{60, 120}},
		},
	},

	// Nama Bhiksha: каждый день, только вечер, слоты на 30 минут и 1 час
	domain.ProgramNamaBhiksha: {
		days: everyDay,
		windows: []window{
			{open: "16:00", close: "19:30", durations: []int{30, 60}},
		},
	},
}

// policyFor возвращает политику программы.
// Неизвестный id — пустая политика, fail-closed.
func policyFor(id domain.ProgramID) (policy, bool) {
	p, ok := policies[id]
	return p, ok
}
