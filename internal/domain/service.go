package domain

import "slices"

// Service отдельная услуга (тонировка, проверка и т.д.) с оценкой длительности
type Service struct {
	ID               string   `toml:"id"`
	Name             string   `toml:"name"`
	Description      string   `toml:"description"`
	Price            float64  `toml:"price"`
	EstimatedMinutes int      `toml:"estimated_minutes"`
	Tags             []string `toml:"tags"`
	IsActive         bool     `toml:"is_active"`
}

// HasTag проверяет наличие тега у услуги
func (s *Service) HasTag(tag string) bool {
	return slices.Contains(s.Tags, tag)
}

// PackageItem услуга в составе пакета
type PackageItem struct {
	ServiceID  string `toml:"service_id"`
	IsIncluded bool   `toml:"is_included"` // false - опциональная услуга
}

// Package пакет услуг с общей ценой
type Package struct {
	ID               string        `toml:"id"`
	Name             string        `toml:"name"`
	Description      string        `toml:"description"`
	Items            []PackageItem `toml:"items"`
	TotalPrice       float64       `toml:"total_price"`
	EstimatedMinutes int           `toml:"estimated_minutes"`
	Tags             []string      `toml:"tags"`
	IsActive         bool          `toml:"is_active"`
}

// HasTag проверяет наличие тега у пакета
func (p *Package) HasTag(tag string) bool {
	return slices.Contains(p.Tags, tag)
}

// DurationCatalog оценка длительности услуг: ID услуги -> минуты
type DurationCatalog map[string]int

// Total суммирует длительность выбранных услуг
// Повторяющиеся ID учитываются столько раз, сколько встречаются.
// Неизвестные ID дают 0 минут и возвращаются во втором значении
func (c DurationCatalog) Total(serviceIDs []string) (int, []string) {
	total := 0
	var unknown []string

	for _, id := range serviceIDs {
		minutes, ok := c[id]
		if !ok {
			unknown = append(unknown, id)
			continue
		}
		total += minutes
	}

	return total, unknown
}
