package models

import (
	"time"

	"github.com/m04kA/SMC-TintingService/internal/domain"
)

// Request модели

// CreateContactRequest запрос на создание клиента
type CreateContactRequest struct {
	Name                  string  `json:"name" validate:"required,max=200"`
	Email                 string  `json:"email" validate:"required,email"`
	Phone                 string  `json:"phone" validate:"required,max=50"`
	AdditionalInformation *string `json:"additionalInformation,omitempty" validate:"omitempty,max=2000"`
	Notes                 *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// ToDomain конвертирует запрос в domain модель
func (r *CreateContactRequest) ToDomain() *domain.Contact {
	return &domain.Contact{
		Name:                  r.Name,
		Email:                 r.Email,
		Phone:                 r.Phone,
		AdditionalInformation: r.AdditionalInformation,
		Notes:                 r.Notes,
	}
}

// UpdateContactRequest частичное обновление: nil поля не меняются
type UpdateContactRequest struct {
	Name                  *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Email                 *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone                 *string `json:"phone,omitempty" validate:"omitempty,min=1,max=50"`
	AdditionalInformation *string `json:"additionalInformation,omitempty" validate:"omitempty,max=2000"`
	Notes                 *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// Apply применяет изменения к клиенту
func (r *UpdateContactRequest) Apply(c *domain.Contact) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Email != nil {
		c.Email = *r.Email
	}
	if r.Phone != nil {
		c.Phone = *r.Phone
	}
	if r.AdditionalInformation != nil {
		c.AdditionalInformation = r.AdditionalInformation
	}
	if r.Notes != nil {
		c.Notes = r.Notes
	}
}

// ListContactsRequest запрос страницы клиентов
type ListContactsRequest struct {
	Search string
	Page   int
	Limit  int
}

// Response модели

// ContactResponse ответ с данными клиента
type ContactResponse struct {
	ID                    int64     `json:"id"`
	Name                  string    `json:"name"`
	Email                 string    `json:"email"`
	Phone                 string    `json:"phone"`
	AdditionalInformation *string   `json:"additionalInformation,omitempty"`
	Notes                 *string   `json:"notes,omitempty"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// PageMetaResponse метаданные страницы
type PageMetaResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// ContactListResponse страница клиентов
type ContactListResponse struct {
	Data []ContactResponse `json:"data"`
	Meta PageMetaResponse  `json:"meta"`
}

// MessageResponse ответ с сообщением
type MessageResponse struct {
	Message string `json:"message"`
}

// Методы конвертации

// FromDomainContact конвертирует domain модель в DTO
func FromDomainContact(c *domain.Contact) *ContactResponse {
	if c == nil {
		return nil
	}
	return &ContactResponse{
		ID:                    c.ID,
		Name:                  c.Name,
		Email:                 c.Email,
		Phone:                 c.Phone,
		AdditionalInformation: c.AdditionalInformation,
		Notes:                 c.Notes,
		CreatedAt:             c.CreatedAt,
		UpdatedAt:             c.UpdatedAt,
	}
}

// FromDomainPageMeta конвертирует метаданные страницы
func FromDomainPageMeta(m domain.PageMeta) PageMetaResponse {
	return PageMetaResponse{
		Total:      m.Total,
		Page:       m.Page,
		Limit:      m.Limit,
		TotalPages: m.TotalPages,
	}
}
