package dashboard

import "github.com/m04kA/SMC-LuxeBook/internal/domain"

// ConfirmedRevenue суммирует цены подтвержденных записей.
// Берется текущая цена услуги; если услуга удалена - цена из снимка записи.
func ConfirmedRevenue(appointments []domain.Appointment, services []domain.Service) (float64, int) {
	prices := make(map[string]float64, len(services))
	for _, s := range services {
		prices[s.ID] = s.Price
	}

	var (
		revenue float64
		count   int
	)
	for _, a := range appointments {
		if a.Status != domain.StatusConfirmed {
			continue
		}
		count++
		if price, ok := prices[a.ServiceID]; ok {
			revenue += price
			continue
		}
		revenue += a.ServicePrice
	}

	return revenue, count
}
