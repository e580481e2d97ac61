package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/godivinity-atl/GOD-BookingService/internal/domain"
)

var noBlocked = domain.BlockedDates{}

func TestIsDateSelectable_PastDates(t *testing.T) {
	now := time.Date(2026, time.June, 15, 14, 30, 0, 0, time.UTC) // понедельник

	yesterday := now.AddDate(0, 0, -1)
	lastMonth := now.AddDate(0, -1, 0)

	for _, id := range domain.AllProgramIDs {
		assert.False(t, IsDateSelectable(id, yesterday, now, noBlocked), "program %s", id)
		assert.False(t, IsDateSelectable(id, lastMonth, now, noBlocked), "program %s", id)
	}

	// Сегодняшний день не считается прошлым, время суток игнорируется
	assert.True(t, IsDateSelectable(domain.ProgramNamaBhiksha, now, now, noBlocked))
	morning := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
	assert.True(t, IsDateSelectable(domain.ProgramNamaBhiksha, morning, now, noBlocked))
}

func TestIsDateSelectable_BlockedDates(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	blocked := domain.NewBlockedDates([]string{"2026-01-05"})

	jan5 := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC) // понедельник

	// Блокировка действует на все программы, даже на Nama Bhiksha,
	// для которой день недели допустим
	assert.False(t, IsDateSelectable(domain.ProgramNamaBhiksha, jan5, now, blocked))

	jan6 := jan5.AddDate(0, 0, 1)
	assert.True(t, IsDateSelectable(domain.ProgramNamaBhiksha, jan6, now, noBlocked))
}

func TestIsDateSelectable_WeekdayRules(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		program domain.ProgramID
		date    time.Time
		want    bool
	}{
		{domain.ProgramRadhaKalyanam, saturday, true},
		{domain.ProgramRadhaKalyanam, sunday, true},
		{domain.ProgramRadhaKalyanam, friday, false},
		{domain.ProgramRadhaKalyanam, monday, false},

		{domain.ProgramNikunjaUtsavam, sunday, true},
		{domain.ProgramNikunjaUtsavam, tuesday, false},

		{domain.ProgramThirumanjanam, saturday, true},
		{domain.ProgramThirumanjanam, friday, false},

		{domain.ProgramNamaRuchi, friday, true},
		{domain.ProgramNamaRuchi, saturday, true},
		{domain.ProgramNamaRuchi, thursday, false},

		{domain.ProgramNamaBhiksha, monday, true},
		{domain.ProgramNamaBhiksha, thursday, true},
		{domain.ProgramNamaBhiksha, sunday, true},
	}

	for _, tc := range cases {
		got := IsDateSelectable(tc.program, tc.date, now, noBlocked)
		assert.Equal(t, tc.want, got, "program=%s date=%s", tc.program, tc.date.Format(domain.DateFormat))
	}
}

func TestIsDateSelectable_UnknownProgram(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	// Неизвестная программа закрыта всегда, как и в генераторе
	assert.False(t, IsDateSelectable("car-wash", saturday, now, noBlocked))
	assert.False(t, IsDateSelectable("", monday, now, noBlocked))
}

func TestIsDateSelectable_AgreesWithGenerator(t *testing.T) {
	// Таблицы дней недели у предиката и генератора — одна и та же политика:
	// на любой допустимый день генератор обязан выдавать хотя бы один слот
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	week := []time.Time{thursday, friday, saturday, sunday, monday, tuesday}

	for _, id := range domain.AllProgramIDs {
		for _, day := range week {
			selectable := IsDateSelectable(id, day, now, noBlocked)
			slots := GenerateSlots(id, day)
			if selectable {
				assert.NotEmpty(t, slots, "program=%s day=%s", id, day.Weekday())
			} else {
				assert.Empty(t, slots, "program=%s day=%s", id, day.Weekday())
			}
		}
	}
}
