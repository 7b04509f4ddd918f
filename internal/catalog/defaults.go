package catalog

import "github.com/m04kA/SMC-TintingService/internal/domain"

// Default встроенный справочник, используется если файл справочника не задан
func Default() *Catalog {
	c, err := New(defaultCatalog())
	if err != nil {
		panic(err)
	}
	return c
}

func defaultCatalog() Catalog {
	weekdays := func(start, end string) domain.DaySchedule {
		return domain.DaySchedule{Start: start, End: end}
	}
	dayOff := domain.DaySchedule{}
	allYears := []string{"1", "2", "3"}

	return Catalog{
		Services: []domain.Service{
			{ID: "1", Name: "Oil Change", Description: "Standard oil change service with filter replacement.", Price: 49.99, EstimatedMinutes: 30, Tags: []string{"maintenance", "essential"}, IsActive: true},
			{ID: "2", Name: "Tire Rotation", Description: "Rotate tires to ensure even wear and extend tire life.", Price: 29.99, EstimatedMinutes: 20, Tags: []string{"maintenance", "tires"}, IsActive: true},
			{ID: "3", Name: "Brake Inspection", Description: "Comprehensive brake system inspection and adjustment.", Price: 39.99, EstimatedMinutes: 45, Tags: []string{"maintenance", "safety", "brakes"}, IsActive: true},
			{ID: "4", Name: "Battery Check", Description: "Test battery condition and charging system.", Price: 19.99, EstimatedMinutes: 15, Tags: []string{"maintenance", "electrical"}, IsActive: true},
			{ID: "5", Name: "AC Service", Description: "Air conditioning system check and recharge.", Price: 89.99, EstimatedMinutes: 60, Tags: []string{"comfort", "seasonal"}, IsActive: true},
		},
		Packages: []domain.Package{
			{
				ID:          "1",
				Name:        "Basic Service Package",
				Description: "Essential maintenance for your vehicle.",
				Items: []domain.PackageItem{
					{ServiceID: "1", IsIncluded: true},
					{ServiceID: "2", IsIncluded: true},
					{ServiceID: "4", IsIncluded: true},
				},
				TotalPrice:       89.99,
				EstimatedMinutes: 60,
				Tags:             []string{"maintenance", "essential", "value"},
				IsActive:         true,
			},
			{
				ID:          "2",
				Name:        "Comprehensive Service Package",
				Description: "Complete vehicle maintenance and safety check.",
				Items: []domain.PackageItem{
					{ServiceID: "1", IsIncluded: true},
					{ServiceID: "2", IsIncluded: true},
					{ServiceID: "3", IsIncluded: true},
					{ServiceID: "4", IsIncluded: true},
					{ServiceID: "5", IsIncluded: false},
				},
				TotalPrice:       129.99,
				EstimatedMinutes: 110,
				Tags:             []string{"maintenance", "safety", "value"},
				IsActive:         true,
			},
			{
				ID:          "3",
				Name:        "Summer Ready Package",
				Description: "Prepare your vehicle for summer driving.",
				Items: []domain.PackageItem{
					{ServiceID: "1", IsIncluded: true},
					{ServiceID: "2", IsIncluded: true},
					{ServiceID: "4", IsIncluded: true},
					{ServiceID: "5", IsIncluded: true},
				},
				TotalPrice:       169.99,
				EstimatedMinutes: 120,
				Tags:             []string{"seasonal", "comfort", "summer"},
				IsActive:         true,
			},
		},
		Tags: []string{
			"maintenance", "essential", "tires", "safety", "brakes",
			"electrical", "comfort", "seasonal", "value", "summer",
		},
		Technicians: []domain.Technician{
			{
				ID:          "1",
				Name:        "John Smith",
				Email:       "john.smith@example.com",
				Phone:       "555-123-4567",
				Specialties: []string{"oil change", "tire rotation", "brake repair"},
				Availability: domain.WeeklyAvailability{
					Monday:    weekdays("08:00", "16:00"),
					Tuesday:   weekdays("08:00", "16:00"),
					Wednesday: weekdays("08:00", "16:00"),
					Thursday:  weekdays("08:00", "16:00"),
					Friday:    weekdays("08:00", "16:00"),
					Saturday:  weekdays("10:00", "14:00"),
					Sunday:    dayOff,
				},
				IsActive: true,
			},
			{
				ID:          "2",
				Name:        "Jane Doe",
				Email:       "jane.doe@example.com",
				Phone:       "555-987-6543",
				Specialties: []string{"electrical", "diagnostics", "ac service"},
				Availability: domain.WeeklyAvailability{
					Monday:    weekdays("09:00", "17:00"),
					Tuesday:   weekdays("09:00", "17:00"),
					Wednesday: weekdays("09:00", "17:00"),
					Thursday:  weekdays("09:00", "17:00"),
					Friday:    weekdays("09:00", "17:00"),
					Saturday:  dayOff,
					Sunday:    weekdays("10:00", "14:00"),
				},
				IsActive: true,
			},
			{
				ID:          "3",
				Name:        "Mike Johnson",
				Email:       "mike.johnson@example.com",
				Phone:       "555-456-7890",
				Specialties: []string{"engine repair", "transmission", "suspension"},
				Availability: domain.WeeklyAvailability{
					Monday:    weekdays("07:00", "15:00"),
					Tuesday:   weekdays("07:00", "15:00"),
					Wednesday: weekdays("07:00", "15:00"),
					Thursday:  weekdays("07:00", "15:00"),
					Friday:    weekdays("07:00", "15:00"),
					Saturday:  weekdays("08:00", "12:00"),
					Sunday:    dayOff,
				},
				IsActive: true,
			},
		},
		Vehicles: Vehicles{
			Years: []domain.VehicleYear{
				{ID: "1", Year: "2022"},
				{ID: "2", Year: "2023"},
				{ID: "3", Year: "2024"},
			},
			Makes: []domain.VehicleMake{
				{ID: "1", Name: "Toyota", YearIDs: allYears},
				{ID: "2", Name: "Honda", YearIDs: allYears},
				{ID: "3", Name: "Ford", YearIDs: allYears},
				{ID: "4", Name: "Chevrolet", YearIDs: allYears},
			},
			Models: []domain.VehicleModel{
				{ID: "1", Name: "Corolla", MakeID: "1", YearIDs: allYears},
				{ID: "2", Name: "Camry", MakeID: "1", YearIDs: allYears},
				{ID: "3", Name: "Civic", MakeID: "2", YearIDs: allYears},
				{ID: "4", Name: "Accord", MakeID: "2", YearIDs: allYears},
				{ID: "5", Name: "F-150", MakeID: "3", YearIDs: allYears},
				{ID: "6", Name: "Mustang", MakeID: "3", YearIDs: allYears},
				{ID: "7", Name: "Silverado", MakeID: "4", YearIDs: allYears},
				{ID: "8", Name: "Malibu", MakeID: "4", YearIDs: allYears},
			},
			Types: []domain.VehicleType{
				{ID: "1", Name: "Sedan"},
				{ID: "2", Name: "SUV"},
				{ID: "3", Name: "Truck"},
				{ID: "4", Name: "Van"},
				{ID: "5", Name: "Coupe"},
				{ID: "6", Name: "Convertible"},
			},
		},
	}
}
