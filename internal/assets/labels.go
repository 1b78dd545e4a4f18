package assets

import "kiosk-backend/internal/models"

// MoveTypeLabel: hareket türünün operatör arayüzündeki karşılığı. Depoda
// ince ayrımlı enum tutulur, kaba gruplama yalnızca görüntüleme katmanındadır.
func MoveTypeLabel(t models.MoveType) string {
	switch t {
	case models.MoveTypeDeploy:
		return "Kurulum"
	case models.MoveTypeReturn:
		return "İade"
	case models.MoveTypeTransfer:
		return "Transfer"
	case models.MoveTypeMaintenance:
		return "Bakım"
	case models.MoveTypeRepairComplete:
		return "Tamir tamamlandı"
	case models.MoveTypeResale:
		return "Yeniden satış"
	case models.MoveTypeDisposal:
		return "İmha"
	case models.MoveTypeStorage:
		return "Depoya çekildi"
	default:
		return string(t)
	}
}
