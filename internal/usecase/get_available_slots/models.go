package get_available_slots

import (
	"time"

	"github.com/godivinity-atl/GOD-BookingService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ProgramID domain.ProgramID // ID программы из закрытого каталога
	Date      time.Time        // Дата для получения слотов (без времени)
}

// Response модель ответа со списком слотов на дату
type Response struct {
	ProgramID   domain.ProgramID  // ID программы
	ProgramName string            // Название программы из каталога
	Date        time.Time         // Дата, на которую запрашивались слоты
	Selectable  bool              // Можно ли вообще открыть дату в календаре
	Slots       []domain.TimeSlot // Список слотов (пустой, если дата недоступна)
}
