package slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labims/LIMS-BookingService/internal/domain"
	slotStorage "github.com/labims/LIMS-BookingService/internal/infra/storage/slot"
	"github.com/labims/LIMS-BookingService/internal/integrations/userservice"
	"github.com/labims/LIMS-BookingService/internal/service/slots/models"
	"github.com/labims/LIMS-BookingService/pkg/types"
)

type mockSlotRepo struct {
	createFn        func(ctx context.Context, s *domain.Slot) (*domain.Slot, error)
	getByIdentityFn func(ctx context.Context, date time.Time, start, end types.TimeString) (*domain.Slot, error)
	listInRangeFn   func(ctx context.Context, startDate, endDate time.Time) ([]*domain.Slot, error)
}

func (m *mockSlotRepo) Create(ctx context.Context, s *domain.Slot) (*domain.Slot, error) {
	return m.createFn(ctx, s)
}

func (m *mockSlotRepo) GetByIdentity(ctx context.Context, date time.Time, start, end types.TimeString) (*domain.Slot, error) {
	return m.getByIdentityFn(ctx, date, start, end)
}

func (m *mockSlotRepo) ListInRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.Slot, error) {
	return m.listInRangeFn(ctx, startDate, endDate)
}

func (m *mockSlotRepo) ListOnDate(ctx context.Context, date time.Time) ([]*domain.Slot, error) {
	return m.listInRangeFn(ctx, date, date)
}

type mockBookingRepo struct {
	takenSlotIDs []int64
}

func (m *mockBookingRepo) ListActiveSlotIDs(ctx context.Context, rt domain.ResourceType, resourceID int64, date time.Time) ([]int64, error) {
	return m.takenSlotIDs, nil
}

type mockUserClient struct {
	users map[int64]*userservice.User
}

func (m *mockUserClient) GetUser(ctx context.Context, userID int64) (*userservice.User, error) {
	u, ok := m.users[userID]
	if !ok {
		return nil, userservice.ErrUserNotFound
	}
	return u, nil
}

type nopLogger struct{}

func (l *nopLogger) Info(format string, v ...interface{})  {}
func (l *nopLogger) Warn(format string, v ...interface{})  {}
func (l *nopLogger) Error(format string, v ...interface{}) {}

var testDate = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func testUsers() map[int64]*userservice.User {
	return map[int64]*userservice.User{
		1: {ID: 1, Username: "student1", Role: "STUDENT", Lab: "IVE"},
		4: {ID: 4, Username: "manager1", Role: "LAB_MANAGER", Lab: "IVE"},
	}
}

func newTestService(slotRepo *mockSlotRepo, bookingRepo *mockBookingRepo) *Service {
	return NewService(slotRepo, bookingRepo, &mockUserClient{users: testUsers()}, &nopLogger{})
}

func findOrCreateRequest(actorID int64) *models.FindOrCreateSlotRequest {
	return &models.FindOrCreateSlotRequest{
		ActorID:   actorID,
		Date:      "2025-06-02",
		StartTime: "09:00",
		EndTime:   "10:00",
	}
}

func TestFindOrCreate_ExistingSlotNeedsNoPermission(t *testing.T) {
	// Для уже существующего слота прав create_slot не требуется
	repo := &mockSlotRepo{
		getByIdentityFn: func(ctx context.Context, date time.Time, start, end types.TimeString) (*domain.Slot, error) {
			return &domain.Slot{ID: 10, Date: date, StartTime: start, EndTime: end}, nil
		},
	}
	svc := newTestService(repo, &mockBookingRepo{})

	resp, err := svc.FindOrCreate(context.Background(), findOrCreateRequest(1))
	require.NoError(t, err)
	assert.False(t, resp.Created)
	assert.Equal(t, int64(10), resp.Slot.ID)
	assert.Equal(t, "09:00:00", resp.Slot.StartTime)
}

func TestFindOrCreate_ManagerCreatesSlot(t *testing.T) {
	repo := &mockSlotRepo{
		getByIdentityFn: func(ctx context.Context, date time.Time, start, end types.TimeString) (*domain.Slot, error) {
			return nil, slotStorage.ErrSlotNotFound
		},
		createFn: func(ctx context.Context, s *domain.Slot) (*domain.Slot, error) {
			s.ID = 11
			return s, nil
		},
	}
	svc := newTestService(repo, &mockBookingRepo{})

	resp, err := svc.FindOrCreate(context.Background(), findOrCreateRequest(4))
	require.NoError(t, err)
	assert.True(t, resp.Created)
	assert.Equal(t, int64(11), resp.Slot.ID)
}

func TestFindOrCreate_StudentCannotCreate(t *testing.T) {
	repo := &mockSlotRepo{
		getByIdentityFn: func(ctx context.Context, date time.Time, start, end types.TimeString) (*domain.Slot, error) {
			return nil, slotStorage.ErrSlotNotFound
		},
	}
	svc := newTestService(repo, &mockBookingRepo{})

	_, err := svc.FindOrCreate(context.Background(), findOrCreateRequest(1))
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestFindOrCreate_LostRaceRefetchesSlot(t *testing.T) {
	// Конкурентный запрос создал ту же тройку первым
	missed := true
	repo := &mockSlotRepo{
		getByIdentityFn: func(ctx context.Context, date time.Time, start, end types.TimeString) (*domain.Slot, error) {
			if missed {
				missed = false
				return nil, slotStorage.ErrSlotNotFound
			}
			return &domain.Slot{ID: 12, Date: date, StartTime: start, EndTime: end}, nil
		},
		createFn: func(ctx context.Context, s *domain.Slot) (*domain.Slot, error) {
			return nil, slotStorage.ErrSlotExists
		},
	}
	svc := newTestService(repo, &mockBookingRepo{})

	resp, err := svc.FindOrCreate(context.Background(), findOrCreateRequest(4))
	require.NoError(t, err)
	assert.False(t, resp.Created)
	assert.Equal(t, int64(12), resp.Slot.ID)
}

func TestFindOrCreate_InvalidRange(t *testing.T) {
	svc := newTestService(&mockSlotRepo{}, &mockBookingRepo{})

	req := findOrCreateRequest(4)
	req.StartTime = "10:00"
	req.EndTime = "09:00"

	_, err := svc.FindOrCreate(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidSlotRange)
}

func TestFindOrCreate_InvalidDate(t *testing.T) {
	svc := newTestService(&mockSlotRepo{}, &mockBookingRepo{})

	req := findOrCreateRequest(4)
	req.Date = "02.06.2025"

	_, err := svc.FindOrCreate(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAvailableSlots_ExcludesTaken(t *testing.T) {
	allSlots := []*domain.Slot{
		{ID: 1, Date: testDate, StartTime: "09:00:00", EndTime: "10:00:00"},
		{ID: 2, Date: testDate, StartTime: "10:00:00", EndTime: "11:00:00"},
		{ID: 3, Date: testDate, StartTime: "11:00:00", EndTime: "12:00:00"},
	}
	repo := &mockSlotRepo{
		listInRangeFn: func(ctx context.Context, startDate, endDate time.Time) ([]*domain.Slot, error) {
			return allSlots, nil
		},
	}
	svc := newTestService(repo, &mockBookingRepo{takenSlotIDs: []int64{2}})

	resp, err := svc.AvailableSlots(context.Background(), &models.AvailableSlotsRequest{
		ResourceType: "EQUIPMENT",
		ResourceID:   5,
		Date:         testDate,
	})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, int64(1), resp.Slots[0].ID)
	assert.Equal(t, int64(3), resp.Slots[1].ID)
}

func TestAvailableSlots_InvalidResourceType(t *testing.T) {
	svc := newTestService(&mockSlotRepo{}, &mockBookingRepo{})

	_, err := svc.AvailableSlots(context.Background(), &models.AvailableSlotsRequest{
		ResourceType: "VEHICLE",
		ResourceID:   5,
		Date:         testDate,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListInRange_EndBeforeStart(t *testing.T) {
	svc := newTestService(&mockSlotRepo{}, &mockBookingRepo{})

	_, err := svc.ListInRange(context.Background(), &models.ListSlotsRequest{
		StartDate: testDate,
		EndDate:   testDate.AddDate(0, 0, -1),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
