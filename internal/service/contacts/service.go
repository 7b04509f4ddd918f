package contacts

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TintingService/internal/domain"
	contactRepo "github.com/m04kA/SMC-TintingService/internal/infra/storage/contact"
	"github.com/m04kA/SMC-TintingService/internal/service/contacts/models"
	"github.com/m04kA/SMC-TintingService/pkg/validation"
)

// Service сервис для работы с клиентами
type Service struct {
	contactRepo ContactRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(contactRepo ContactRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		contactRepo: contactRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// List возвращает страницу клиентов
func (s *Service) List(ctx context.Context, req *models.ListContactsRequest) (*models.ContactListResponse, error) {
	page, limit := normalizePage(req.Page, req.Limit)
	s.logger.Info("List: fetching contacts page=%d, limit=%d, search=%q", page, limit, req.Search)

	contacts, total, err := s.contactRepo.List(ctx, domain.ContactsFilter{
		Search: req.Search,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &models.ContactListResponse{
		Data: make([]models.ContactResponse, len(contacts)),
		Meta: models.FromDomainPageMeta(domain.NewPageMeta(total, page, limit)),
	}
	for i, c := range contacts {
		resp.Data[i] = *models.FromDomainContact(c)
	}

	s.logger.Info("List: fetched %d of %d contacts", len(contacts), total)
	return resp, nil
}

// GetByID получает клиента по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ContactResponse, error) {
	c, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, contactRepo.ErrContactNotFound) {
			s.logger.Warn("GetByID: contact id=%d not found", id)
			return nil, ErrContactNotFound
		}
		s.logger.Error("GetByID: repository error for contact id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainContact(c), nil
}

// Create создает клиента
func (s *Service) Create(ctx context.Context, req *models.CreateContactRequest) (*models.ContactResponse, error) {
	if err := validation.Struct(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	c, err := s.contactRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created contact id=%d", c.ID)
	return models.FromDomainContact(c), nil
}

// Update частично обновляет клиента
// Чтение и запись выполняются в одной транзакции
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateContactRequest) (*models.ContactResponse, error) {
	if err := validation.Struct(req); err != nil {
		s.logger.Warn("Update: validation failed for contact id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var updated *domain.Contact
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		c, err := s.contactRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		req.Apply(c)

		updated, err = s.contactRepo.Update(ctx, c)
		return err
	})
	if err != nil {
		if errors.Is(err, contactRepo.ErrContactNotFound) {
			s.logger.Warn("Update: contact id=%d not found", id)
			return nil, ErrContactNotFound
		}
		s.logger.Error("Update: repository error for contact id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: updated contact id=%d", id)
	return models.FromDomainContact(updated), nil
}

// Delete удаляет клиента
func (s *Service) Delete(ctx context.Context, id int64) (*models.MessageResponse, error) {
	if err := s.contactRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, contactRepo.ErrContactNotFound) {
			s.logger.Warn("Delete: contact id=%d not found", id)
			return nil, ErrContactNotFound
		}
		s.logger.Error("Delete: repository error for contact id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted contact id=%d", id)
	return &models.MessageResponse{Message: "Contact successfully deleted"}, nil
}

// normalizePage подставляет значения по умолчанию и ограничивает размер страницы
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = domain.DefaultPage
	}
	if limit < 1 {
		limit = domain.DefaultLimit
	}
	if limit > domain.MaxLimit {
		limit = domain.MaxLimit
	}
	return page, limit
}
