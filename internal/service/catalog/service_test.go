package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlevasseur/salon-booking-service/internal/domain"
	serviceRepo "github.com/mlevasseur/salon-booking-service/internal/infra/storage/service"
	"github.com/mlevasseur/salon-booking-service/internal/service/catalog/models"
	"github.com/mlevasseur/salon-booking-service/pkg/ptr"
)

type fakeServiceRepo struct {
	services map[int64]*domain.Service
	nextID   int64
}

func newFakeServiceRepo(services ...*domain.Service) *fakeServiceRepo {
	repo := &fakeServiceRepo{services: make(map[int64]*domain.Service), nextID: 1}
	for _, svc := range services {
		repo.services[svc.ID] = svc
		if svc.ID >= repo.nextID {
			repo.nextID = svc.ID + 1
		}
	}
	return repo
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	copied := *svc
	return &copied, nil
}

func (f *fakeServiceRepo) Create(_ context.Context, svc *domain.Service) (*domain.Service, error) {
	svc.ID = f.nextID
	f.nextID++
	stored := *svc
	f.services[svc.ID] = &stored
	return svc, nil
}

func (f *fakeServiceRepo) Update(_ context.Context, svc *domain.Service) error {
	if _, ok := f.services[svc.ID]; !ok {
		return serviceRepo.ErrServiceNotFound
	}
	stored := *svc
	f.services[svc.ID] = &stored
	return nil
}

func (f *fakeServiceRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.services[id]; !ok {
		return serviceRepo.ErrServiceNotFound
	}
	delete(f.services, id)
	return nil
}

type fakeBookingRepo struct {
	count      int
	lastFilter domain.BookingsFilter
}

func (f *fakeBookingRepo) CountWithFilter(_ context.Context, filter domain.BookingsFilter) (int, error) {
	f.lastFilter = filter
	return f.count, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(repo *fakeServiceRepo, bookings *fakeBookingRepo) *Service {
	return NewService(repo, bookings, fakeTxManager{}, nopLogger{})
}

func TestCreate_Success(t *testing.T) {
	repo := newFakeServiceRepo()
	svc := newTestService(repo, &fakeBookingRepo{})

	resp, err := svc.Create(context.Background(), &models.CreateServiceRequest{
		Name:            "  Coupe femme ",
		Description:     ptr.Ptr("Coupe et brushing"),
		DurationMinutes: 60,
		PriceCents:      4500,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Coupe femme", resp.Name)
	assert.Equal(t, 4500, resp.PriceCents)
	assert.False(t, resp.IsAddon)
	assert.True(t, resp.IsActive, "new service is active immediately")
	require.Contains(t, repo.services, int64(1))
}

func TestCreate_AddonWithZeroDuration(t *testing.T) {
	svc := newTestService(newFakeServiceRepo(), &fakeBookingRepo{})

	resp, err := svc.Create(context.Background(), &models.CreateServiceRequest{
		Name:       "Soin",
		PriceCents: 1500,
		IsAddon:    true,
	})
	require.NoError(t, err)

	assert.True(t, resp.IsAddon)
	assert.Equal(t, 0, resp.DurationMinutes)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.CreateServiceRequest
	}{
		{name: "empty name", req: models.CreateServiceRequest{Name: "   ", PriceCents: 1000}},
		{name: "zero price", req: models.CreateServiceRequest{Name: "Coupe", PriceCents: 0}},
		{name: "negative price", req: models.CreateServiceRequest{Name: "Coupe", PriceCents: -100}},
		{name: "negative duration", req: models.CreateServiceRequest{Name: "Coupe", PriceCents: 1000, DurationMinutes: -30}},
	}

	svc := newTestService(newFakeServiceRepo(), &fakeBookingRepo{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdate_PartialPatch(t *testing.T) {
	repo := newFakeServiceRepo(&domain.Service{
		ID: 1, Name: "Coupe", Description: ptr.Ptr("Classique"),
		DurationMinutes: 30, PriceCents: 2500, IsActive: true,
	})
	svc := newTestService(repo, &fakeBookingRepo{})

	resp, err := svc.Update(context.Background(), 1, &models.UpdateServiceRequest{
		PriceCents: ptr.Ptr(3000),
		IsActive:   ptr.Ptr(false),
	})
	require.NoError(t, err)

	// Только переданные поля изменились
	assert.Equal(t, "Coupe", resp.Name)
	assert.Equal(t, ptr.Ptr("Classique"), resp.Description)
	assert.Equal(t, 30, resp.DurationMinutes)
	assert.Equal(t, 3000, resp.PriceCents)
	assert.False(t, resp.IsActive)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := newTestService(newFakeServiceRepo(), &fakeBookingRepo{})

	_, err := svc.Update(context.Background(), 42, &models.UpdateServiceRequest{
		Name: ptr.Ptr("Nouvelle coupe"),
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestUpdate_Validation(t *testing.T) {
	repo := newFakeServiceRepo(&domain.Service{ID: 1, Name: "Coupe", PriceCents: 2500, IsActive: true})
	svc := newTestService(repo, &fakeBookingRepo{})

	_, err := svc.Update(context.Background(), 1, &models.UpdateServiceRequest{Name: ptr.Ptr("  ")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(context.Background(), 1, &models.UpdateServiceRequest{PriceCents: ptr.Ptr(0)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Модель не изменилась
	assert.Equal(t, "Coupe", repo.services[1].Name)
	assert.Equal(t, 2500, repo.services[1].PriceCents)
}

func TestDelete_Success(t *testing.T) {
	repo := newFakeServiceRepo(&domain.Service{ID: 1, Name: "Ancienne", PriceCents: 2000})
	bookings := &fakeBookingRepo{}
	svc := newTestService(repo, bookings)

	resp, err := svc.Delete(context.Background(), 1)
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.NotContains(t, repo.services, int64(1))

	// Проверяются именно блокирующие бронирования этой услуги
	require.NotNil(t, bookings.lastFilter.ServiceID)
	assert.Equal(t, int64(1), *bookings.lastFilter.ServiceID)
	assert.Equal(t, domain.BlockingStatuses, bookings.lastFilter.Statuses)
}

func TestDelete_WithActiveBookings(t *testing.T) {
	repo := newFakeServiceRepo(&domain.Service{ID: 1, Name: "Coupe", PriceCents: 2500, IsActive: true})
	svc := newTestService(repo, &fakeBookingRepo{count: 2})

	_, err := svc.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, ErrServiceHasActiveBookings)
	assert.Contains(t, repo.services, int64(1), "service stays in the catalog")
}

func TestDelete_NotFound(t *testing.T) {
	svc := newTestService(newFakeServiceRepo(), &fakeBookingRepo{})

	_, err := svc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}
