package sheets

import (
	"github.com/godivinity-atl/GOD-BookingService/internal/domain"
	"github.com/godivinity-atl/GOD-BookingService/pkg/ptr"
)

// Названия колонок листа бронирований. Релей пишет запись в таблицу
// строго по этим ключам.
const (
	columnDate     = "Date"
	columnTime     = "Time"
	columnProgram  = "Type of Program"
	columnName     = "Host Name"
	columnAddress  = "Host Address"
	columnPhone    = "Host Phone Number"
	columnEmail    = "Host email"
	columnOccasion = "Occasion"
	columnNotes    = "Additional Notes"
)

// candidateDateKeys варианты названия колонки даты, встречающиеся в
// исторических версиях листа
var candidateDateKeys = []string{
	"Date",
	"date",
	"Date of Program",
	"Date of Program (YYYY-MM-DD)",
	"Program Date",
}

// submitPayload собирает JSON тело POST запроса к релею из записи брони
func submitPayload(booking *domain.Booking, postToken string) map[string]string {
	return map[string]string{
		"token":        postToken,
		columnDate:     booking.DateString(),
		columnTime:     booking.SlotDescription,
		columnProgram:  booking.ProgramName,
		columnName:     booking.HostName,
		columnAddress:  booking.FullAddress(),
		columnPhone:    booking.HostPhone,
		columnEmail:    booking.HostEmail,
		columnOccasion: ptr.Deref(booking.Occasion),
		columnNotes:    ptr.Deref(booking.AdditionalNotes),
	}
}
