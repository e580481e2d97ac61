package schedule

import (
	"time"

	"github.com/godivinity-atl/GOD-BookingService/internal/domain"
	"github.com/godivinity-atl/GOD-BookingService/pkg/types"
)

// GenerateSlots возвращает упорядоченный список слотов программы на дату.
//
// Функция тотальна: ошибок не возвращает, на неизвестный id программы или
// недопустимый день недели отвечает пустым списком. Слоты внутри окна
// намеренно перекрываются — разные длительности конкурируют за одно и то же
// время ("выберите длину сеанса"), эксклюзивность обеспечивается на уровне
// даты, а не слота.
//
// Порядок эмиссии — контракт: по окнам, внутри окна по ярусам длительности,
// внутри яруса по смещению старта (шаг domain.SlotStrideMinutes).
func GenerateSlots(programID domain.ProgramID, date time.Time) []domain.TimeSlot {
	p, ok := policyFor(programID)
	if !ok {
		return []domain.TimeSlot{}
	}

	day := date.Weekday()
	if !p.days.has(day) {
		return []domain.TimeSlot{}
	}

	slots := make([]domain.TimeSlot, 0, 20)

	for _, w := range p.windows {
		// Окно может быть уже дней программы (утро Nama Ruchi — только выходные)
		if w.days != 0 && !w.days.has(day) {
			continue
		}

		for _, duration := range w.durations {
			slots = append(slots, windowSlots(w, duration)...)
		}
	}

	return slots
}

// windowSlots генерирует ступенчатые слоты одной длительности внутри окна:
// старты с шагом SlotStrideMinutes, пока конец слота не выходит за границу
func windowSlots(w window, durationMinutes int) []domain.TimeSlot {
	out := make([]domain.TimeSlot, 0, 8)

	start := w.open
	for {
		end, err := start.AddMinutes(durationMinutes)
		if err != nil || end.IsAfter(w.close) {
			break
		}

		out = append(out, newSlot(start, end, durationMinutes))

		next, err := start.AddMinutes(domain.SlotStrideMinutes)
		if err != nil {
			break
		}
		start = next
	}

	return out
}

// newSlot собирает value object слота; период выводится только из часа
// начала (< 12 — утро), независимо от принадлежности окну
func newSlot(start, end types.TimeString, durationMinutes int) domain.TimeSlot {
	period := domain.PeriodEvening
	if minutes, err := start.Minutes(); err == nil && minutes < 12*60 {
		period = domain.PeriodMorning
	}

	return domain.TimeSlot{
		Start:         start.Format12Hour(),
		End:           end.Format12Hour(),
		DurationLabel: domain.DurationLabelFor(durationMinutes),
		Period:        period,
	}
}

// SlotForStart возвращает слот программы на дату, начинающийся в указанное
// время с указанной длительностью, если генератор его действительно
// производит. Используется при создании бронирования для проверки, что
// запрошенный слот принадлежит сгенерированному множеству.
func SlotForStart(programID domain.ProgramID, date time.Time, start types.TimeString, durationMinutes int) (domain.TimeSlot, bool) {
	want := domain.TimeSlot{}
	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return want, false
	}
	want = newSlot(start, end, durationMinutes)

	for _, s := range GenerateSlots(programID, date) {
		if s == want {
			return s, true
		}
	}
	return domain.TimeSlot{}, false
}
