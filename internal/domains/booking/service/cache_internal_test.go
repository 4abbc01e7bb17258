package service

import (
	"context"
	"encoding/json"
	"rideflow/config"
	"rideflow/infras/metrics"
	otelMocks "rideflow/infras/otel/mocks"
	"rideflow/internal/domains/booking/mocks"
	"rideflow/internal/domains/booking/model"
	"rideflow/internal/domains/booking/model/dto"
	fareService "rideflow/internal/domains/fare/service"
	"rideflow/shared/cache"
	"rideflow/shared/constant"
	gDto "rideflow/shared/dto"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type memoryCache struct {
	mu       sync.Mutex
	items    map[string][]byte
	counters map[string]int64
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: map[string][]byte{}, counters: map[string]int64{}}
}

func (m *memoryCache) Save(_ context.Context, key string, value any, _ int) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[key] = raw

	return nil
}

func (m *memoryCache) Get(_ context.Context, key string, value any) error {
	m.mu.Lock()
	raw, ok := m.items[key]
	m.mu.Unlock()

	if !ok {
		return cache.Nil
	}

	return json.Unmarshal(raw, value)
}

func (m *memoryCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.items, key)

	return nil
}

func (m *memoryCache) Clear(_ context.Context, pattern string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	prefix := strings.TrimSuffix(pattern, constant.Asterix)
	for key := range m.items {
		if strings.HasPrefix(key, prefix) {
			delete(m.items, key)
		}
	}

	return nil
}

func (m *memoryCache) Increment(_ context.Context, key string, _ int) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.counters[key]++

	return m.counters[key], nil
}

type storedBooking struct {
	mu      sync.Mutex
	booking model.Booking
}

func (s *storedBooking) get() model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.booking
}

func (s *storedBooking) set(booking model.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.booking = booking
}

type cacheFixture struct {
	svc    *serviceImpl
	store  *memoryCache
	row    *storedBooking
	queued []func()
}

func newCacheFixture(t *testing.T) *cacheFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockBooking(ctrl)
	publisher := mocks.NewMockPublisher(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 300

	otel := otelMocks.NewOtel()
	m := metrics.New()

	f := &cacheFixture{
		store: newMemoryCache(),
		row: &storedBooking{booking: model.Booking{
			ID:            "b-1",
			RiderID:       "rider-1",
			VehicleType:   "sedan",
			Status:        model.StatusPending,
			PaymentMethod: model.PaymentMethodCash,
			PaymentStatus: model.PaymentStatusPending,
			Version:       1,
		}},
	}

	svc, ok := New(repo, fareService.New(cfg, otel, m), publisher, cfg, f.store, m, otel).(*serviceImpl)
	require.True(t, ok)

	svc.async = func(fn func()) { f.queued = append(f.queued, fn) }
	f.svc = svc

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, gDto.FilterGroup, ...string) (model.Booking, error) {
			return f.row.get(), nil
		}).AnyTimes()
	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil).AnyTimes()
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, gDto.QueryParams, gDto.FilterGroup, ...string) ([]model.Booking, error) {
			return []model.Booking{f.row.get()}, nil
		}).AnyTimes()
	repo.EXPECT().UpdateAffected(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, changes map[string]any, _ gDto.FilterGroup) (int64, error) {
			booking := f.row.get()
			booking.Status = model.Status(changes[model.FieldStatus].(string))
			booking.Version++
			f.row.set(booking)

			return 1, nil
		}).AnyTimes()
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).AnyTimes()

	return f
}

// drainReversed runs the deferred work newest first, the worst ordering goroutines can produce.
func (f *cacheFixture) drainReversed() {
	for i := len(f.queued) - 1; i >= 0; i-- {
		f.queued[i]()
	}

	f.queued = nil
}

func (f *cacheFixture) statuses(t *testing.T) (string, string) {
	t.Helper()

	ctx := context.Background()

	got, err := f.svc.GetByID(ctx, "b-1", "rider-1")
	require.NoError(t, err)

	list, err := f.svc.ListForRider(ctx, "rider-1", nil, gDto.QueryParams{})
	require.NoError(t, err)
	require.Len(t, list.Bookings, 1)

	return got.Status, list.Bookings[0].Status
}

func TestCancelReadsOwnWriteWhateverTheAsyncOrder(t *testing.T) {
	f := newCacheFixture(t)

	single, listed := f.statuses(t)
	require.Equal(t, "pending", single)
	require.Equal(t, "pending", listed)

	_, err := f.svc.Cancel(context.Background(), "b-1", "rider-1", dto.CancelBookingRequest{})
	require.NoError(t, err)

	single, listed = f.statuses(t)
	assert.Equal(t, "cancelled", single)
	assert.Equal(t, "cancelled", listed)

	f.drainReversed()

	single, listed = f.statuses(t)
	assert.Equal(t, "cancelled", single)
	assert.Equal(t, "cancelled", listed)
}

func TestMutationEvictsPageSavedByConcurrentRead(t *testing.T) {
	f := newCacheFixture(t)
	ctx := context.Background()

	stale := dto.BookingResponse{}
	stale.FromModel(f.row.get())

	_, err := f.svc.Cancel(ctx, "b-1", "rider-1", dto.CancelBookingRequest{})
	require.NoError(t, err)

	// a read that loaded the row before the update lands its save after the first eviction
	require.NoError(t, f.store.Save(ctx, "booking:get:b-1", stale, 300))

	f.drainReversed()

	got, err := f.svc.GetByID(ctx, "b-1", "rider-1")
	require.NoError(t, err)
	assert.Equal(t, "cancelled", got.Status)
}
