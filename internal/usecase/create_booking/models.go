package create_booking

import (
	"time"

	"github.com/godivinity-atl/GOD-BookingService/internal/domain"
	"github.com/godivinity-atl/GOD-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ProgramID       domain.ProgramID // ID программы из закрытого каталога
	Date            time.Time        // Дата бронирования (без времени)
	StartTime       types.TimeString // Время начала слота ("16:00")
	DurationMinutes int              // Длительность выбранного слота в минутах

	// Контактные данные хозяина дома
	HostName  string
	HostEmail string
	HostPhone string
	Street    string
	City      string
	State     string
	ZipCode   string

	Occasion        *string // Повод (опционально)
	AdditionalNotes *string // Дополнительные заметки (опционально)
}

// Response модель ответа с принятым бронированием
type Response struct {
	ID              int64            // ID записи в журнале
	ProgramID       domain.ProgramID // ID программы
	ProgramName     string           // Название программы
	BookingDate     time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах
	SlotDescription string           // "4:00 PM - 5:00 PM (1 Hour)"
	HostName        string           // Имя хозяина
	CreatedAt       time.Time        // Время создания записи
}
