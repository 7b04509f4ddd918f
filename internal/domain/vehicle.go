package domain

import "slices"

// VehicleYear модельный год
type VehicleYear struct {
	ID   string `toml:"id"`
	Year string `toml:"year"`
}

// VehicleMake производитель, выпускавшийся в указанные годы
type VehicleMake struct {
	ID      string   `toml:"id"`
	Name    string   `toml:"name"`
	YearIDs []string `toml:"year_ids"`
}

// VehicleModel модель производителя
type VehicleModel struct {
	ID      string   `toml:"id"`
	Name    string   `toml:"name"`
	MakeID  string   `toml:"make_id"`
	YearIDs []string `toml:"year_ids"`
}

// VehicleType тип кузова
type VehicleType struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
}

// AvailableIn проверяет, выпускался ли производитель в указанный год
func (m *VehicleMake) AvailableIn(yearID string) bool {
	return slices.Contains(m.YearIDs, yearID)
}

// AvailableIn проверяет, выпускалась ли модель в указанный год
func (m *VehicleModel) AvailableIn(yearID string) bool {
	return slices.Contains(m.YearIDs, yearID)
}
