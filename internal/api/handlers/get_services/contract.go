package get_services

import "github.com/m04kA/SMC-TintingService/internal/service/catalog/models"

type CatalogService interface {
	GetServices(search, tag string) []models.ServiceResponse
	GetPackages(search, tag string) []models.PackageResponse
	GetPackage(id string) (*models.PackageDetailsResponse, error)
	GetTags() []string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
