package get_vehicles

type VehicleService interface {
	GetYears() []string
	GetMakes(year string) []string
	GetModels(year, makeName string) []string
	GetTypes() []string
}
