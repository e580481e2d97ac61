package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/godivinity-atl/GOD-BookingService/internal/domain"
)

// Фикстуры: первая неделя 2026 года
// 01.01 Чт, 02.01 Пт, 03.01 Сб, 04.01 Вс, 05.01 Пн, 06.01 Вт
var (
	thursday = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	friday   = time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2026, time.January, 3, 0, 0, 0, 0, time.UTC)
	sunday   = time.Date(2026, time.January, 4, 0, 0, 0, 0, time.UTC)
	monday   = time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	tuesday  = time.Date(2026, time.January, 6, 0, 0, 0, 0, time.UTC)
)

func TestGenerateSlots_RadhaKalyanam(t *testing.T) {
	slots := GenerateSlots(domain.ProgramRadhaKalyanam, saturday)

	require.Len(t, slots, 2)
	assert.Equal(t, domain.TimeSlot{
		Start:         "10:00 AM",
		End:           "1:00 PM",
		DurationLabel: "3 Hours",
		Period:        domain.PeriodMorning,
	}, slots[0])
	assert.Equal(t, domain.TimeSlot{
		Start:         "4:00 PM",
		End:           "7:00 PM",
		DurationLabel: "3 Hours",
		Period:        domain.PeriodEvening,
	}, slots[1])

	assert.Empty(t, GenerateSlots(domain.ProgramRadhaKalyanam, tuesday))
	assert.Empty(t, GenerateSlots(domain.ProgramRadhaKalyanam, friday))
}

func TestGenerateSlots_NikunjaUtsavam(t *testing.T) {
	slots := GenerateSlots(domain.ProgramNikunjaUtsavam, sunday)

	require.Len(t, slots, 12)

	// Утреннее окно 10:00-12:30: сначала ярус 1.5 часа, потом 2 часа
	morning := slots[:5]
	assert.Equal(t, "10:00 AM", morning[0].Start)
	assert.Equal(t, "11:30 AM", morning[0].End)
	assert.Equal(t, "1.5 Hours", morning[0].DurationLabel)
	assert.Equal(t, "11:00 AM", morning[2].Start)
	assert.Equal(t, "12:30 PM", morning[2].End)
	assert.Equal(t, "2 Hours", morning[3].DurationLabel)
	assert.Equal(t, "10:00 AM", morning[3].Start)
	assert.Equal(t, "12:30 PM", morning[4].End)
	for _, s := range morning {
		assert.Equal(t, domain.PeriodMorning, s.Period)
	}

	// Вечернее окно 16:00-19:00: четыре слота по 1.5 часа, три по 2
	evening := slots[5:]
	assert.Equal(t, "4:00 PM", evening[0].Start)
	assert.Equal(t, "5:30 PM", evening[0].End)
	assert.Equal(t, "1.5 Hours", evening[3].DurationLabel)
	assert.Equal(t, "5:30 PM", evening[3].Start)
	assert.Equal(t, "7:00 PM", evening[3].End)
	assert.Equal(t, "2 Hours", evening[4].DurationLabel)
	assert.Equal(t, "7:00 PM", evening[6].End)
	for _, s := range evening {
		assert.Equal(t, domain.PeriodEvening, s.Period)
	}

	assert.Empty(t, GenerateSlots(domain.ProgramNikunjaUtsavam, monday))
}

func TestGenerateSlots_Thirumanjanam(t *testing.T) {
	slots := GenerateSlots(domain.ProgramThirumanjanam, saturday)

	require.Len(t, slots, 1)
	assert.Equal(t, domain.TimeSlot{
		Start:         "10:00 AM",
		End:           "12:00 PM",
		DurationLabel: "2 Hours",
		Period:        domain.PeriodMorning,
	}, slots[0])

	assert.Empty(t, GenerateSlots(domain.ProgramThirumanjanam, friday))
}

func TestGenerateSlots_NamaRuchi(t *testing.T) {
	// Выходной: утро (4 слота по часу + 2 по два часа) и вечер (5 + 3)
	weekend := GenerateSlots(domain.ProgramNamaRuchi, saturday)
	require.Len(t, weekend, 14)

	oneHour := 0
	twoHour := 0
	for _, s := range weekend {
		switch s.DurationLabel {
		case "1 Hour":
			oneHour++
		case "2 Hours":
			twoHour++
		}
	}
	assert.Equal(t, 9, oneHour)
	assert.Equal(t, 5, twoHour)

	// Пятница: утреннего окна нет, только вечер
	fri := GenerateSlots(domain.ProgramNamaRuchi, friday)
	require.Len(t, fri, 8)
	for _, s := range fri {
		assert.Equal(t, domain.PeriodEvening, s.Period)
	}
	assert.Equal(t, "4:00 PM", fri[0].Start)
	assert.Equal(t, "5:00 PM", fri[0].End)
	assert.Equal(t, "7:00 PM", fri[len(fri)-1].End)

	assert.Empty(t, GenerateSlots(domain.ProgramNamaRuchi, thursday))
}

func TestGenerateSlots_NamaBhiksha_EveryDay(t *testing.T) {
	// Программа без ограничения по дням недели: одинаковый непустой
	// результат для каждого дня
	reference := GenerateSlots(domain.ProgramNamaBhiksha, monday)
	require.NotEmpty(t, reference)
	require.Len(t, reference, 13)

	for _, day := range []time.Time{thursday, friday, saturday, sunday, tuesday} {
		assert.Equal(t, reference, GenerateSlots(domain.ProgramNamaBhiksha, day))
	}

	// 7 получасовых стартов (16:00..19:00) + 6 часовых (16:00..18:30)
	halfHour := 0
	fullHour := 0
	for _, s := range reference {
		switch s.DurationLabel {
		case "30 Minutes":
			halfHour++
		case "1 Hour":
			fullHour++
		}
		assert.Equal(t, domain.PeriodEvening, s.Period)
	}
	assert.Equal(t, 7, halfHour)
	assert.Equal(t, 6, fullHour)

	assert.Equal(t, "4:00 PM", reference[0].Start)
	assert.Equal(t, "4:30 PM", reference[0].End)
	assert.Equal(t, "7:00 PM", reference[6].Start)
	assert.Equal(t, "7:30 PM", reference[6].End)
	assert.Equal(t, "7:30 PM", reference[12].End)
}

func TestGenerateSlots_UnknownProgram(t *testing.T) {
	assert.Empty(t, GenerateSlots("kitchen-sink", saturday))
	assert.Empty(t, GenerateSlots("", saturday))
}

func TestGenerateSlots_Idempotent(t *testing.T) {
	for _, id := range domain.AllProgramIDs {
		first := GenerateSlots(id, saturday)
		second := GenerateSlots(id, saturday)
		assert.Equal(t, first, second, "program %s", id)
	}
}

func TestSlotForStart(t *testing.T) {
	slot, ok := SlotForStart(domain.ProgramNamaRuchi, friday, "16:00", 60)
	require.True(t, ok)
	assert.Equal(t, "4:00 PM", slot.Start)
	assert.Equal(t, "5:00 PM", slot.End)
	assert.Equal(t, "1 Hour", slot.DurationLabel)

	// Старт вне сетки шага
	_, ok = SlotForStart(domain.ProgramNamaRuchi, friday, "16:15", 60)
	assert.False(t, ok)

	// Длительность не из каталога программы
	_, ok = SlotForStart(domain.ProgramNamaRuchi, friday, "16:00", 90)
	assert.False(t, ok)

	// Утреннее окно Nama Ruchi недоступно в пятницу
	_, ok = SlotForStart(domain.ProgramNamaRuchi, friday, "10:00", 60)
	assert.False(t, ok)
	_, ok = SlotForStart(domain.ProgramNamaRuchi, saturday, "10:00", 60)
	assert.True(t, ok)
}
