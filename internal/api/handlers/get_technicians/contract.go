package get_technicians

import "github.com/m04kA/SMC-TintingService/internal/service/catalog/models"

type TechnicianService interface {
	GetTechnicians() []models.TechnicianResponse
}
