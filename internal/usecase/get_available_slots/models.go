package get_available_slots

import (
	"github.com/mlevasseur/salon-booking-service/internal/domain"
	"github.com/mlevasseur/salon-booking-service/pkg/types"
)

// Request модель запроса на получение слотов одной даты
type Request struct {
	Date      string // Дата в формате YYYY-MM-DD
	ServiceID int64  // ID услуги (длительность берется из нее)
}

// Response модель ответа со списком слотов
type Response struct {
	Date            types.DateString // Дата, на которую запрашивались слоты
	ServiceID       int64            // ID услуги
	DurationMinutes int              // Длительность услуги в минутах
	Slots           []domain.Slot    // Все кандидаты дня с флагом доступности
}
