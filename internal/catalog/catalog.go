package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-TintingService/internal/domain"
	"github.com/m04kA/SMC-TintingService/pkg/types"
)

// ErrInvalidCatalog возвращается, если справочные данные противоречивы
var ErrInvalidCatalog = errors.New("catalog: invalid reference data")

// Catalog справочные данные сервиса: услуги, пакеты, теги, техники, автомобили
// После создания через New не изменяется, поэтому безопасен для конкурентного чтения
type Catalog struct {
	Services    []domain.Service    `toml:"services"`
	Packages    []domain.Package    `toml:"packages"`
	Tags        []string            `toml:"tags"`
	Technicians []domain.Technician `toml:"technicians"`
	Vehicles    Vehicles            `toml:"vehicles"`

	servicesByID    map[string]*domain.Service
	packagesByID    map[string]*domain.Package
	techniciansByID map[string]*domain.Technician
	durations       domain.DurationCatalog
}

// Vehicles справочник автомобилей
type Vehicles struct {
	Years  []domain.VehicleYear  `toml:"years"`
	Makes  []domain.VehicleMake  `toml:"makes"`
	Models []domain.VehicleModel `toml:"models"`
	Types  []domain.VehicleType  `toml:"types"`
}

// New валидирует данные и строит индексы
func New(c Catalog) (*Catalog, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	c.servicesByID = make(map[string]*domain.Service, len(c.Services))
	c.durations = make(domain.DurationCatalog, len(c.Services))
	for i := range c.Services {
		s := &c.Services[i]
		c.servicesByID[s.ID] = s
		c.durations[s.ID] = s.EstimatedMinutes
	}

	c.packagesByID = make(map[string]*domain.Package, len(c.Packages))
	for i := range c.Packages {
		c.packagesByID[c.Packages[i].ID] = &c.Packages[i]
	}

	c.techniciansByID = make(map[string]*domain.Technician, len(c.Technicians))
	for i := range c.Technicians {
		c.techniciansByID[c.Technicians[i].ID] = &c.Technicians[i]
	}

	return &c, nil
}

// LoadFile читает справочник из TOML файла
func LoadFile(path string) (*Catalog, error) {
	var c Catalog
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return nil, fmt.Errorf("catalog: decode %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalidCatalog, path, strings.Join(keys, ", "))
	}

	return New(c)
}

// Validate проверяет уникальность идентификаторов, ссылки и формат расписаний
func (c *Catalog) Validate() error {
	serviceIDs := make(map[string]struct{}, len(c.Services))
	for _, s := range c.Services {
		if s.ID == "" {
			return fmt.Errorf("%w: service with empty id", ErrInvalidCatalog)
		}
		if _, dup := serviceIDs[s.ID]; dup {
			return fmt.Errorf("%w: duplicate service id %q", ErrInvalidCatalog, s.ID)
		}
		if s.EstimatedMinutes < 0 {
			return fmt.Errorf("%w: service %q has negative duration", ErrInvalidCatalog, s.ID)
		}
		serviceIDs[s.ID] = struct{}{}
	}

	packageIDs := make(map[string]struct{}, len(c.Packages))
	for _, p := range c.Packages {
		if _, dup := packageIDs[p.ID]; dup {
			return fmt.Errorf("%w: duplicate package id %q", ErrInvalidCatalog, p.ID)
		}
		packageIDs[p.ID] = struct{}{}

		for _, item := range p.Items {
			if _, ok := serviceIDs[item.ServiceID]; !ok {
				return fmt.Errorf("%w: package %q references unknown service %q", ErrInvalidCatalog, p.ID, item.ServiceID)
			}
		}
	}

	technicianIDs := make(map[string]struct{}, len(c.Technicians))
	for _, t := range c.Technicians {
		if _, dup := technicianIDs[t.ID]; dup {
			return fmt.Errorf("%w: duplicate technician id %q", ErrInvalidCatalog, t.ID)
		}
		technicianIDs[t.ID] = struct{}{}

		if err := validateWeek(t.Availability); err != nil {
			return fmt.Errorf("%w: technician %q: %v", ErrInvalidCatalog, t.ID, err)
		}
	}

	makeIDs := make(map[string]struct{}, len(c.Vehicles.Makes))
	for _, m := range c.Vehicles.Makes {
		makeIDs[m.ID] = struct{}{}
	}
	for _, m := range c.Vehicles.Models {
		if _, ok := makeIDs[m.MakeID]; !ok {
			return fmt.Errorf("%w: model %q references unknown make %q", ErrInvalidCatalog, m.ID, m.MakeID)
		}
	}

	return nil
}

func validateWeek(week domain.WeeklyAvailability) error {
	days := []domain.DaySchedule{
		week.Sunday, week.Monday, week.Tuesday, week.Wednesday,
		week.Thursday, week.Friday, week.Saturday,
	}

	for _, day := range days {
		if day.Start == "" && day.End == "" {
			continue
		}
		if day.Start == "" || day.End == "" {
			return fmt.Errorf("both start and end must be set, got %q-%q", day.Start, day.End)
		}

		start, err := types.NewTimeStringFromString(day.Start)
		if err != nil {
			return err
		}
		end, err := types.NewTimeStringFromString(day.End)
		if err != nil {
			return err
		}
		if !start.IsBefore(end) {
			return fmt.Errorf("start %s must be before end %s", start, end)
		}
	}

	return nil
}

// DurationCatalog длительности услуг для расчёта слотов
func (c *Catalog) DurationCatalog() domain.DurationCatalog {
	return c.durations
}

// Service ищет услугу по ID
func (c *Catalog) Service(id string) (*domain.Service, bool) {
	s, ok := c.servicesByID[id]
	return s, ok
}

// Package ищет пакет по ID
func (c *Catalog) Package(id string) (*domain.Package, bool) {
	p, ok := c.packagesByID[id]
	return p, ok
}

// Technician ищет техника по ID
func (c *Catalog) Technician(id string) (*domain.Technician, bool) {
	t, ok := c.techniciansByID[id]
	return t, ok
}
