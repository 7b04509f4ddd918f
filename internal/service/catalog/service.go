package catalog

import (
	"strings"

	"github.com/m04kA/SMC-TintingService/internal/catalog"
	"github.com/m04kA/SMC-TintingService/internal/service/catalog/models"
)

// Service сервис справочных данных: услуги, пакеты, теги, техники, автомобили
// Работает поверх неизменяемого справочника, поэтому не использует контекст и не возвращает внутренних ошибок
type Service struct {
	catalog *catalog.Catalog
	logger  Logger
}

// NewService создает новый экземпляр сервиса
func NewService(c *catalog.Catalog, logger Logger) *Service {
	return &Service{
		catalog: c,
		logger:  logger,
	}
}

// GetServices возвращает услуги, отфильтрованные по подстроке (название или описание, без учёта регистра) и тегу
func (s *Service) GetServices(search, tag string) []models.ServiceResponse {
	result := make([]models.ServiceResponse, 0, len(s.catalog.Services))
	for i := range s.catalog.Services {
		svc := &s.catalog.Services[i]
		if !matches(svc.Name, svc.Description, search) {
			continue
		}
		if tag != "" && !svc.HasTag(tag) {
			continue
		}
		result = append(result, models.FromDomainService(svc))
	}

	s.logger.Info("GetServices: search=%q, tag=%q, found %d", search, tag, len(result))
	return result
}

// GetPackages возвращает пакеты с включёнными в них услугами
func (s *Service) GetPackages(search, tag string) []models.PackageResponse {
	result := make([]models.PackageResponse, 0, len(s.catalog.Packages))
	for i := range s.catalog.Packages {
		pkg := &s.catalog.Packages[i]
		if !matches(pkg.Name, pkg.Description, search) {
			continue
		}
		if tag != "" && !pkg.HasTag(tag) {
			continue
		}

		services := make([]models.PackageServiceSummary, 0, len(pkg.Items))
		for _, item := range pkg.Items {
			if !item.IsIncluded {
				continue
			}
			svc, ok := s.catalog.Service(item.ServiceID)
			if !ok {
				continue
			}
			services = append(services, models.PackageServiceSummary{
				ID:            svc.ID,
				Name:          svc.Name,
				Price:         svc.Price,
				EstimatedTime: svc.EstimatedMinutes,
			})
		}

		result = append(result, models.PackageResponse{
			ID:            pkg.ID,
			Name:          pkg.Name,
			Description:   pkg.Description,
			TotalPrice:    pkg.TotalPrice,
			EstimatedTime: pkg.EstimatedMinutes,
			Tags:          pkg.Tags,
			Services:      services,
		})
	}

	s.logger.Info("GetPackages: search=%q, tag=%q, found %d", search, tag, len(result))
	return result
}

// GetPackage возвращает пакет со всеми услугами, включая опциональные
func (s *Service) GetPackage(id string) (*models.PackageDetailsResponse, error) {
	pkg, ok := s.catalog.Package(id)
	if !ok {
		s.logger.Warn("GetPackage: package id=%s not found", id)
		return nil, ErrPackageNotFound
	}

	services := make([]models.PackageServiceDetails, 0, len(pkg.Items))
	for _, item := range pkg.Items {
		svc, ok := s.catalog.Service(item.ServiceID)
		if !ok {
			continue
		}
		services = append(services, models.PackageServiceDetails{
			ID:            svc.ID,
			Name:          svc.Name,
			Description:   svc.Description,
			Price:         svc.Price,
			EstimatedTime: svc.EstimatedMinutes,
			IsIncluded:    item.IsIncluded,
			Tags:          svc.Tags,
		})
	}

	return &models.PackageDetailsResponse{
		ID:            pkg.ID,
		Name:          pkg.Name,
		Description:   pkg.Description,
		TotalPrice:    pkg.TotalPrice,
		EstimatedTime: pkg.EstimatedMinutes,
		Tags:          pkg.Tags,
		Services:      services,
	}, nil
}

// GetTags возвращает все теги услуг
func (s *Service) GetTags() []string {
	return append(make([]string, 0, len(s.catalog.Tags)), s.catalog.Tags...)
}

// GetTechnicians возвращает техников с недельным расписанием
func (s *Service) GetTechnicians() []models.TechnicianResponse {
	result := make([]models.TechnicianResponse, len(s.catalog.Technicians))
	for i := range s.catalog.Technicians {
		result[i] = models.FromDomainTechnician(&s.catalog.Technicians[i])
	}
	return result
}

func matches(name, description, search string) bool {
	if search == "" {
		return true
	}
	search = strings.ToLower(search)
	return strings.Contains(strings.ToLower(name), search) ||
		strings.Contains(strings.ToLower(description), search)
}

