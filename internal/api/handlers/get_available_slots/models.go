package get_available_slots

import (
	"time"

	"github.com/godivinity-atl/GOD-BookingService/internal/domain"
	getAvailableSlots "github.com/godivinity-atl/GOD-BookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	ProgramID   string          `json:"programId"`
	ProgramName string          `json:"programName"`
	Date        string          `json:"date"`
	Selectable  bool            `json:"selectable"`
	Slots       []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота в формате виджета
type AvailableSlot struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Duration string `json:"duration"`
	Period   string `json:"period"`
}

// ToUseCaseRequest создает запрос use case из параметров пути и query
func ToUseCaseRequest(programID, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		ProgramID: domain.ProgramID(programID),
		Date:      date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Start:    slot.Start,
			End:      slot.End,
			Duration: slot.DurationLabel,
			Period:   string(slot.Period),
		}
	}

	return &AvailableSlotsResponse{
		ProgramID:   string(resp.ProgramID),
		ProgramName: resp.ProgramName,
		Date:        resp.Date.Format(domain.DateFormat),
		Selectable:  resp.Selectable,
		Slots:       slots,
	}
}
