package catalog

// GetYears возвращает модельные годы
func (s *Service) GetYears() []string {
	years := s.catalog.Vehicles.Years
	result := make([]string, len(years))
	for i, y := range years {
		result[i] = y.Year
	}
	return result
}

// GetMakes возвращает производителей; year - модельный год ("2023")
// Неизвестный год даёт пустой список
func (s *Service) GetMakes(year string) []string {
	makes := s.catalog.Vehicles.Makes
	result := make([]string, 0, len(makes))

	if year == "" {
		for _, m := range makes {
			result = append(result, m.Name)
		}
		return result
	}

	yearID, ok := s.yearID(year)
	if !ok {
		s.logger.Info("GetMakes: unknown year %q", year)
		return result
	}

	for i := range makes {
		if makes[i].AvailableIn(yearID) {
			result = append(result, makes[i].Name)
		}
	}
	return result
}

// GetModels возвращает модели с фильтрами по году и производителю (по названию)
// Неизвестное значение фильтра игнорируется
func (s *Service) GetModels(year, makeName string) []string {
	yearID, filterYear := s.yearID(year)
	makeID, filterMake := s.makeID(makeName)

	models := s.catalog.Vehicles.Models
	result := make([]string, 0, len(models))
	for i := range models {
		m := &models[i]
		if filterYear && !m.AvailableIn(yearID) {
			continue
		}
		if filterMake && m.MakeID != makeID {
			continue
		}
		result = append(result, m.Name)
	}
	return result
}

// GetTypes возвращает типы кузова
func (s *Service) GetTypes() []string {
	types := s.catalog.Vehicles.Types
	result := make([]string, len(types))
	for i, t := range types {
		result[i] = t.Name
	}
	return result
}

func (s *Service) yearID(year string) (string, bool) {
	if year == "" {
		return "", false
	}
	for _, y := range s.catalog.Vehicles.Years {
		if y.Year == year {
			return y.ID, true
		}
	}
	return "", false
}

func (s *Service) makeID(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	for _, m := range s.catalog.Vehicles.Makes {
		if m.Name == name {
			return m.ID, true
		}
	}
	return "", false
}
