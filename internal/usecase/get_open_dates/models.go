package get_open_dates

import (
	"github.com/mlevasseur/salon-booking-service/pkg/types"
)

// Request модель запроса на поиск дат со свободными слотами
type Request struct {
	ServiceID int64 // ID услуги
	Days      int   // Глубина сканирования в днях; 0 - значение по умолчанию
}

// OpenDate состояние одной открытой даты. Полностью занятая дата остается
// в списке с HasAvailableSlots=false - клиент различает "занято" и "закрыто".
type OpenDate struct {
	Date              types.DateString // Дата
	IsOpen            bool             // Всегда true: закрытые даты в список не попадают
	HasAvailableSlots bool             // Есть ли хотя бы один свободный слот
}

// Response модель ответа со списком открытых дат.
// Закрытые даты в список не попадают.
type Response struct {
	ServiceID       int64            // ID услуги
	DurationMinutes int              // Длительность услуги в минутах
	StartDate       types.DateString // Первая просканированная дата (завтра)
	Days            int              // Фактическая глубина сканирования
	Dates           []OpenDate       // Открытые даты с признаком наличия слотов
}
