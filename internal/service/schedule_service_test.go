package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rentx/internal/db"
	"rentx/internal/entities"
	apperrors "rentx/internal/errors"
	"rentx/internal/repository/mocks"
)

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) NotifyScheduleCreated(user entities.UserResponse, schedule entities.ScheduleByUser, total int64) {
	m.Called(user, schedule, total)
}

type mockCheckout struct {
	mock.Mock
}

func (m *mockCheckout) CreateCheckoutSession(amount int64, description, customerEmail string) (string, string, error) {
	ret := m.Called(amount, description, customerEmail)
	return ret.String(0), ret.String(1), ret.Error(2)
}

type scheduleFixture struct {
	repo     *mocks.ScheduleRepository
	cars     *mocks.CarRepository
	users    *mocks.UserRepository
	keys     *mocks.IdempotencyStore
	payments *mocks.PaymentRepository
	checkout *mockCheckout
	notifier *mockNotifier
}

func newScheduleFixture() *scheduleFixture {
	return &scheduleFixture{
		repo:     &mocks.ScheduleRepository{},
		cars:     &mocks.CarRepository{},
		users:    &mocks.UserRepository{},
		keys:     &mocks.IdempotencyStore{},
		payments: &mocks.PaymentRepository{},
		checkout: &mockCheckout{},
		notifier: &mockNotifier{},
	}
}

func (f *scheduleFixture) service() ScheduleService {
	return NewScheduleService(f.repo, f.cars, f.users, f.keys, f.payments, f.checkout, f.notifier)
}

func (f *scheduleFixture) bareService() ScheduleService {
	return NewScheduleService(f.repo, f.cars, f.users, nil, f.payments, nil, nil)
}

var lancer = entities.CarDTO{
	ID:    "car-1",
	Brand: "Mitsubishi",
	Name:  "Lancer Evo X",
	Rent:  entities.Rent{Period: "Ao dia", Price: 120},
}

func storedSchedule(t *testing.T, id, userID int64) *db.UserSchedule {
	t.Helper()
	snapshot, err := json.Marshal(lancer)
	require.NoError(t, err)
	return &db.UserSchedule{
		ID:          id,
		UserID:      userID,
		CarID:       lancer.ID,
		CarSnapshot: snapshot,
		StartDate:   time.Date(2022, time.May, 11, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2022, time.May, 13, 0, 0, 0, 0, time.UTC),
		Status:      StatusActive,
	}
}

func TestScheduleService_GetByCarWithoutRecord(t *testing.T) {
	f := newScheduleFixture()
	f.repo.On("GetByCar", mock.Anything, "car-1").Return(nil, fmt.Errorf("schedule: %w", apperrors.ErrNotFound))

	got, err := f.service().GetByCar(context.Background(), "car-1")

	require.NoError(t, err)
	assert.Equal(t, &entities.ScheduleByCar{ID: "car-1", UnavailableDates: []string{}}, got)
}

func TestScheduleService_GetByCar(t *testing.T) {
	f := newScheduleFixture()
	f.repo.On("GetByCar", mock.Anything, "car-1").
		Return(&db.CarSchedule{CarID: "car-1", UnavailableDates: []string{"10-05-2022"}, Version: 4}, nil)

	got, err := f.service().GetByCar(context.Background(), "car-1")

	require.NoError(t, err)
	assert.Equal(t, []string{"10-05-2022"}, got.UnavailableDates)
	assert.Equal(t, int64(4), got.Version)
}

func TestScheduleService_GetByCarPropagatesErrors(t *testing.T) {
	f := newScheduleFixture()
	f.repo.On("GetByCar", mock.Anything, "car-1").Return(nil, errors.New("db down"))

	_, err := f.service().GetByCar(context.Background(), "car-1")

	assert.EqualError(t, err, "db down")
}

func TestScheduleService_UpdateByCarKeepsDuplicates(t *testing.T) {
	f := newScheduleFixture()
	dates := []string{"10-05-2022", "10-05-2022", "2022-05-11"}
	version := int64(2)
	f.repo.On("SaveByCar", mock.Anything, "car-1", dates, &version).Return(int64(3), nil)

	got, err := f.service().UpdateByCar(context.Background(), "car-1",
		entities.ScheduleByCar{ID: "car-1", UnavailableDates: dates}, &version)

	require.NoError(t, err)
	assert.Equal(t, dates, got.UnavailableDates)
	assert.Equal(t, int64(3), got.Version)
}

func TestScheduleService_UpdateByCarRejectsBadInput(t *testing.T) {
	f := newScheduleFixture()
	svc := f.service()

	_, err := svc.UpdateByCar(context.Background(), "car-1", entities.ScheduleByCar{ID: "car-2"}, nil)
	assert.Equal(t, 400, apperrors.StatusFor(err))

	_, err = svc.UpdateByCar(context.Background(), "car-1",
		entities.ScheduleByCar{ID: "car-1", UnavailableDates: []string{"tomorrow"}}, nil)
	assert.Equal(t, 400, apperrors.StatusFor(err))

	f.repo.AssertNotCalled(t, "SaveByCar", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestScheduleService_UpdateByCarStaleVersion(t *testing.T) {
	f := newScheduleFixture()
	version := int64(1)
	f.repo.On("SaveByCar", mock.Anything, "car-1", []string{"10-05-2022"}, &version).
		Return(int64(0), fmt.Errorf("changed: %w", apperrors.ErrConflict))

	_, err := f.service().UpdateByCar(context.Background(), "car-1",
		entities.ScheduleByCar{UnavailableDates: []string{"10-05-2022"}}, &version)

	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestScheduleService_CreateUserSchedule(t *testing.T) {
	f := newScheduleFixture()
	ctx := context.Background()
	key := "key-1"

	f.keys.On("Lookup", mock.Anything, key).Return(int64(0), false, nil)
	f.repo.On("GetUserScheduleByKey", mock.Anything, key).Return(nil, apperrors.ErrNotFound)
	f.cars.On("GetByID", mock.Anything, "car-1").Return(&db.Car{ID: "car-1", RentPrice: 120}, nil)
	f.repo.On("CreateUserSchedule", mock.Anything, mock.MatchedBy(func(s *db.UserSchedule) bool {
		return s.UserID == 7 &&
			s.CarID == "car-1" &&
			s.StartDate.Equal(time.Date(2022, time.May, 11, 0, 0, 0, 0, time.UTC)) &&
			s.EndDate.Equal(time.Date(2022, time.May, 13, 0, 0, 0, 0, time.UTC)) &&
			s.Status == StatusActive &&
			s.IdempotencyKey == key
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*db.UserSchedule).ID = 10
	}).Return(nil)
	f.keys.On("Remember", mock.Anything, key, int64(10)).Return(nil)
	f.users.On("GetByID", mock.Anything, int64(7)).
		Return(&db.User{ID: 7, Name: "Ana", Email: "ana@example.com", Phone: "+5511999999999"}, nil)
	f.checkout.On("CreateCheckoutSession", int64(36000), mock.Anything, "ana@example.com").
		Return("https://checkout.test/cs_1", "cs_1", nil)
	f.payments.On("SetCheckoutSession", mock.Anything, int64(10), "cs_1", "https://checkout.test/cs_1", paymentPending).Return(nil)
	f.notifier.On("NotifyScheduleCreated",
		entities.UserResponse{ID: 7, Name: "Ana", Email: "ana@example.com", Phone: "+5511999999999"},
		mock.AnythingOfType("entities.ScheduleByUser"), int64(360)).Return()

	got, created, err := f.service().CreateUserSchedule(ctx, 7, entities.ScheduleByUserRequest{
		UserID:    1,
		Car:       lancer,
		StartDate: "11-05-2022",
		EndDate:   "13-05-2022",
	}, key)

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(10), got.ID)
	assert.Equal(t, int64(7), got.UserID)
	assert.Equal(t, "11-05-2022", got.StartDate)
	assert.Equal(t, "13-05-2022", got.EndDate)
	assert.Equal(t, lancer, got.Car)
	assert.Equal(t, "https://checkout.test/cs_1", got.CheckoutURL)
	assert.Equal(t, paymentPending, got.PaymentStatus)
	f.notifier.AssertExpectations(t)
	f.payments.AssertExpectations(t)
	f.keys.AssertExpectations(t)
}

func TestScheduleService_CreateUserScheduleReplaysCachedKey(t *testing.T) {
	f := newScheduleFixture()
	f.keys.On("Lookup", mock.Anything, "key-1").Return(int64(10), true, nil)
	f.repo.On("GetUserSchedule", mock.Anything, int64(10)).Return(storedSchedule(t, 10, 7), nil)

	got, created, err := f.service().CreateUserSchedule(context.Background(), 7, entities.ScheduleByUserRequest{
		Car: lancer, StartDate: "11-05-2022", EndDate: "13-05-2022",
	}, "key-1")

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, int64(10), got.ID)
	f.repo.AssertNotCalled(t, "CreateUserSchedule", mock.Anything, mock.Anything)
	f.checkout.AssertNotCalled(t, "CreateCheckoutSession", mock.Anything, mock.Anything, mock.Anything)
}

func TestScheduleService_CreateUserScheduleReplaysStoredKeyWithoutCache(t *testing.T) {
	f := newScheduleFixture()
	f.repo.On("GetUserScheduleByKey", mock.Anything, "key-1").Return(storedSchedule(t, 10, 7), nil)

	got, created, err := f.bareService().CreateUserSchedule(context.Background(), 7, entities.ScheduleByUserRequest{
		Car: lancer, StartDate: "11-05-2022", EndDate: "13-05-2022",
	}, "key-1")

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, int64(10), got.ID)
	f.repo.AssertNotCalled(t, "CreateUserSchedule", mock.Anything, mock.Anything)
}

func TestScheduleService_CreateUserScheduleKeyOfAnotherUser(t *testing.T) {
	f := newScheduleFixture()
	f.repo.On("GetUserScheduleByKey", mock.Anything, "key-1").Return(storedSchedule(t, 10, 99), nil)

	_, _, err := f.bareService().CreateUserSchedule(context.Background(), 7, entities.ScheduleByUserRequest{
		Car: lancer, StartDate: "11-05-2022", EndDate: "13-05-2022",
	}, "key-1")

	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestScheduleService_CreateUserScheduleConcurrentKey(t *testing.T) {
	f := newScheduleFixture()
	f.repo.On("GetUserScheduleByKey", mock.Anything, "key-1").Return(nil, apperrors.ErrNotFound).Once()
	f.cars.On("GetByID", mock.Anything, "car-1").Return(&db.Car{ID: "car-1", RentPrice: 120}, nil)
	f.repo.On("CreateUserSchedule", mock.Anything, mock.Anything).Return(fmt.Errorf("dup: %w", apperrors.ErrConflict))
	f.repo.On("GetUserScheduleByKey", mock.Anything, "key-1").Return(storedSchedule(t, 11, 7), nil).Once()

	got, created, err := f.bareService().CreateUserSchedule(context.Background(), 7, entities.ScheduleByUserRequest{
		Car: lancer, StartDate: "11-05-2022", EndDate: "13-05-2022",
	}, "key-1")

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, int64(11), got.ID)
}

func TestScheduleService_CreateUserScheduleWithoutKey(t *testing.T) {
	f := newScheduleFixture()
	f.cars.On("GetByID", mock.Anything, "car-1").Return(&db.Car{ID: "car-1", RentPrice: 120}, nil)
	f.repo.On("CreateUserSchedule", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*db.UserSchedule).ID = 12
	}).Return(nil)

	got, created, err := f.bareService().CreateUserSchedule(context.Background(), 7, entities.ScheduleByUserRequest{
		Car: lancer, StartDate: "2022-05-11", EndDate: "2022-05-11",
	}, "")

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(12), got.ID)
	assert.Equal(t, "11-05-2022", got.EndDate)
	f.repo.AssertNotCalled(t, "GetUserScheduleByKey", mock.Anything, mock.Anything)
}

func TestScheduleService_CreateUserScheduleCheckoutFailureKeepsReservation(t *testing.T) {
	f := newScheduleFixture()
	f.cars.On("GetByID", mock.Anything, "car-1").Return(&db.Car{ID: "car-1", RentPrice: 100}, nil)
	f.repo.On("CreateUserSchedule", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*db.UserSchedule).ID = 13
	}).Return(nil)
	f.users.On("GetByID", mock.Anything, int64(7)).Return(&db.User{ID: 7, Email: "ana@example.com"}, nil)
	f.checkout.On("CreateCheckoutSession", int64(10000), mock.Anything, "ana@example.com").Return("", "", errors.New("stripe down"))
	f.notifier.On("NotifyScheduleCreated", mock.Anything, mock.Anything, int64(100)).Return()

	svc := NewScheduleService(f.repo, f.cars, f.users, nil, f.payments, f.checkout, f.notifier)
	got, created, err := svc.CreateUserSchedule(context.Background(), 7, entities.ScheduleByUserRequest{
		Car: lancer, StartDate: "11-05-2022", EndDate: "11-05-2022",
	}, "")

	require.NoError(t, err)
	assert.True(t, created)
	assert.Empty(t, got.CheckoutURL)
	f.payments.AssertNotCalled(t, "SetCheckoutSession", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestScheduleService_CreateUserScheduleValidation(t *testing.T) {
	f := newScheduleFixture()
	svc := f.bareService()
	ctx := context.Background()

	cases := map[string]entities.ScheduleByUserRequest{
		"missing car": {StartDate: "11-05-2022", EndDate: "12-05-2022"},
		"bad start":   {Car: lancer, StartDate: "soon", EndDate: "12-05-2022"},
		"bad end":     {Car: lancer, StartDate: "11-05-2022", EndDate: "later"},
		"end before":  {Car: lancer, StartDate: "12-05-2022", EndDate: "11-05-2022"},
	}
	for name, req := range cases {
		_, _, err := svc.CreateUserSchedule(ctx, 7, req, "")
		assert.Equal(t, 400, apperrors.StatusFor(err), name)
	}
}

func TestScheduleService_CreateUserScheduleUnknownCar(t *testing.T) {
	f := newScheduleFixture()
	f.cars.On("GetByID", mock.Anything, "car-1").Return(nil, fmt.Errorf("car: %w", apperrors.ErrNotFound))

	_, _, err := f.bareService().CreateUserSchedule(context.Background(), 7, entities.ScheduleByUserRequest{
		Car: lancer, StartDate: "11-05-2022", EndDate: "12-05-2022",
	}, "")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestScheduleService_ListUserSchedules(t *testing.T) {
	f := newScheduleFixture()
	f.repo.On("ListUserSchedules", mock.Anything, int64(7)).Return([]db.UserSchedule{*storedSchedule(t, 10, 7)}, nil)

	got, err := f.service().ListUserSchedules(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Lancer Evo X", got[0].Car.Name)
	assert.Equal(t, "11-05-2022", got[0].StartDate)
}

func TestScheduleService_MarkPaidBySession(t *testing.T) {
	f := newScheduleFixture()
	f.payments.On("UpdatePaymentStatusBySessionID", mock.Anything, "cs_1", paymentPaid).Return(nil)

	require.NoError(t, f.service().MarkPaidBySession(context.Background(), "cs_1"))
	f.payments.AssertExpectations(t)
}
