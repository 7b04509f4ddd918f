package domain

import "time"

// Contact клиент
type Contact struct {
	ID                    int64
	Name                  string
	Email                 string
	Phone                 string
	AdditionalInformation *string
	Notes                 *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ContactsFilter фильтр списка клиентов
type ContactsFilter struct {
	Search string // подстрока имени, email или телефона (без учета регистра)
	Page   int
	Limit  int
}

// PageMeta метаданные постраничной выдачи
type PageMeta struct {
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// NewPageMeta считает количество страниц
func NewPageMeta(total int64, page, limit int) PageMeta {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return PageMeta{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

// Offset смещение для страницы page размером limit
func Offset(page, limit int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * limit
}
