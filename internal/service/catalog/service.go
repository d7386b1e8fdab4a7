package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mlevasseur/salon-booking-service/internal/domain"
	serviceRepo "github.com/mlevasseur/salon-booking-service/internal/infra/storage/service"
	"github.com/mlevasseur/salon-booking-service/internal/service/catalog/models"
	"github.com/mlevasseur/salon-booking-service/pkg/ptr"
)

// Service сервис администрирования каталога услуг
type Service struct {
	serviceRepo ServiceRepository
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	serviceRepo ServiceRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Create добавляет услугу в каталог. Новая услуга сразу активна.
func (s *Service) Create(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Create: creating service name=%q, addon=%v", req.Name, req.IsAddon)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.PriceCents <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}
	if req.DurationMinutes < 0 {
		return nil, fmt.Errorf("%w: duration must not be negative", ErrInvalidInput)
	}

	created, err := s.serviceRepo.Create(ctx, &domain.Service{
		Name:            name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		PriceCents:      req.PriceCents,
		IsAddon:         req.IsAddon,
		IsActive:        true,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: service created id=%d, name=%q", created.ID, created.Name)
	return models.FromDomainService(created), nil
}

// Update частично обновляет услугу: меняются только переданные поля.
// Чтение и запись выполняются в одной транзакции.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Update: updating service id=%d", id)

	if err := s.validatePatch(req); err != nil {
		s.logger.Warn("Update: validation failed for service id=%d: %v", id, err)
		return nil, err
	}

	var updated *domain.Service
	txErr := s.txManager.Do(ctx, func(txCtx context.Context) error {
		svc, err := s.getByID(txCtx, id, "Update")
		if err != nil {
			return err
		}

		applyPatch(svc, req)

		if err := s.serviceRepo.Update(txCtx, svc); err != nil {
			s.logger.Error("Update: repository error for service id=%d: %v", id, err)
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		updated, err = s.getByID(txCtx, id, "Update")
		return err
	})
	if txErr != nil {
		return nil, txErr
	}

	s.logger.Info("Update: service updated id=%d, active=%v", updated.ID, updated.IsActive)
	return models.FromDomainService(updated), nil
}

// Delete удаляет услугу из каталога. Услуга с активными бронированиями
// не удаляется - ее следует деактивировать. Проверка и удаление выполняются
// в одной транзакции.
func (s *Service) Delete(ctx context.Context, id int64) (*models.DeleteServiceResponse, error) {
	s.logger.Info("Delete: deleting service id=%d", id)

	txErr := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.getByID(txCtx, id, "Delete"); err != nil {
			return err
		}

		active, err := s.bookingRepo.CountWithFilter(txCtx, domain.BookingsFilter{
			ServiceID: ptr.Ptr(id),
			Statuses:  domain.BlockingStatuses,
		})
		if err != nil {
			s.logger.Error("Delete: failed to count bookings for service id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - failed to count bookings: %v", ErrInternal, err)
		}
		if active > 0 {
			s.logger.Warn("Delete: service id=%d has %d active bookings", id, active)
			return ErrServiceHasActiveBookings
		}

		if err := s.serviceRepo.Delete(txCtx, id); err != nil {
			s.logger.Error("Delete: repository error for service id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.logger.Info("Delete: service deleted id=%d", id)
	return &models.DeleteServiceResponse{Success: true}, nil
}

// Вспомогательные методы

func (s *Service) getByID(ctx context.Context, id int64, method string) (*domain.Service, error) {
	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("%s: service id=%d not found", method, id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("%s: repository error for service id=%d: %v", method, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return svc, nil
}

func (s *Service) validatePatch(req *models.UpdateServiceRequest) error {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}
	if req.PriceCents != nil && *req.PriceCents <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}
	if req.DurationMinutes != nil && *req.DurationMinutes < 0 {
		return fmt.Errorf("%w: duration must not be negative", ErrInvalidInput)
	}
	return nil
}

// applyPatch переносит заданные поля запроса в модель
func applyPatch(svc *domain.Service, req *models.UpdateServiceRequest) {
	if req.Name != nil {
		svc.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		svc.Description = req.Description
	}
	if req.DurationMinutes != nil {
		svc.DurationMinutes = *req.DurationMinutes
	}
	if req.PriceCents != nil {
		svc.PriceCents = *req.PriceCents
	}
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}
}
