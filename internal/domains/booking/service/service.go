package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"rideflow/config"
	"rideflow/infras/metrics"
	"rideflow/infras/otel"
	"rideflow/internal/domains/booking/event"
	"rideflow/internal/domains/booking/model"
	"rideflow/internal/domains/booking/model/dto"
	"rideflow/internal/domains/booking/repository"
	fareModel "rideflow/internal/domains/fare/model"
	fareService "rideflow/internal/domains/fare/service"
	"rideflow/shared"
	"rideflow/shared/cache"
	"rideflow/shared/constant"
	gDto "rideflow/shared/dto"
	"rideflow/shared/failure"
	"rideflow/shared/timezone"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	cacheGetBooking    = "booking:get"
	cacheRiderBookings = "booking:rider"
)

var (
	errBookingNotFound = failure.NotFound("booking not found")
	errNotYourBooking  = failure.Forbidden("you are not allowed to access this booking")
	errStaleBooking    = failure.Conflict("booking was modified by another request, reload and retry")
)

type Booking interface {
	Create(ctx context.Context, riderID string, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	ListForRider(ctx context.Context, riderID string, status *model.Status, params gDto.QueryParams) (dto.GetBookingsResponse, error)
	GetByID(ctx context.Context, id, callerID string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id, callerID string, req dto.CancelBookingRequest) (dto.BookingResponse, error)
	Confirm(ctx context.Context, id, callerID string, req dto.ConfirmBookingRequest) (dto.BookingResponse, error)
	Rate(ctx context.Context, id, callerID string, req dto.RateBookingRequest) (dto.BookingResponse, error)
	Export(ctx context.Context, riderID string, status *model.Status) ([]byte, error)

	ListForDriver(ctx context.Context, driverID string, status *model.Status) (dto.DriverBookingsResponse, error)
	Accept(ctx context.Context, id, driverID string) (dto.BookingResponse, error)
	Arrive(ctx context.Context, id, driverID string) (dto.BookingResponse, error)
	Start(ctx context.Context, id, driverID string) (dto.BookingResponse, error)
	Complete(ctx context.Context, id, driverID string, req dto.CompleteBookingRequest) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo      repository.Booking
	fare      fareService.Fare
	publisher event.Publisher
	cfg       *config.Config
	cache     cache.RedisCache
	metrics   *metrics.Metrics
	otel      otel.Otel
	lifecycle model.Lifecycle
	async     func(func())
}

func New(
	repo repository.Booking,
	fare fareService.Fare,
	publisher event.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	metrics *metrics.Metrics,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:      repo,
		fare:      fare,
		publisher: publisher,
		cfg:       cfg,
		cache:     cache,
		metrics:   metrics,
		otel:      otel,
		lifecycle: model.NewLifecycle(cfg.Fare.PermissiveTransition),
		async:     func(f func()) { go f() },
	}
}

func (s *serviceImpl) Create(ctx context.Context, riderID string, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if strings.TrimSpace(req.PickupLocation.Address) == constant.Empty {
		return res, failure.BadRequestFromString("pickup address is required")
	}

	if strings.TrimSpace(req.DropLocation.Address) == constant.Empty {
		return res, failure.BadRequestFromString("drop address is required")
	}

	scheduledTime := timezone.Now()

	if req.ScheduledTime != nil && *req.ScheduledTime != constant.Empty {
		scheduledTime, err = timezone.ParseTimestamp(*req.ScheduledTime)
		if err != nil {
			return res, failure.BadRequestFromString("scheduledTime must be an ISO-8601 timestamp")
		}
	}

	booking := req.ToModel(riderID, scheduledTime)

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.metrics.BookingsCreated.WithLabelValues(booking.VehicleType).Inc()

	created, err := s.load(ctx, booking.ID)
	if err != nil {
		return res, err
	}

	s.afterMutation(ctx, created, model.NewEvent(created, created.CreatedAt))

	res.FromModel(created)

	return res, nil
}

func (s *serviceImpl) ListForRider(ctx context.Context, riderID string, status *model.Status, params gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListForRider")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params = newestFirst(params)
	params.Clamp()
	filter := repository.OwnerFilter(model.FieldRiderID, riderID, status)
	cacheKey := shared.BuildCacheKeyWithQuery(riderCachePrefix(riderID), params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for rider bookings")

		return res, nil
	}

	var (
		total    int
		bookings []model.Booking
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		count, err := s.repo.Count(groupCtx, filter)
		if err != nil {
			return fmt.Errorf("failed to count bookings: %w", err)
		}

		total = count

		return nil
	})

	group.Go(func() error {
		page, err := s.repo.GetAll(groupCtx, params, filter)
		if err != nil {
			return fmt.Errorf("failed to get bookings: %w", err)
		}

		bookings = page

		return nil
	})

	if err = group.Wait(); err != nil {
		log.Error().Err(err).Str("rider_id", riderID).Msg("failed to list rider bookings")

		return res, err
	}

	res.FromModels(bookings, total, params)

	s.remember(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) GetByID(ctx context.Context, id, callerID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByID")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		if res.Rider.ID != callerID && (res.Driver == nil || res.Driver.ID != callerID) {
			return dto.BookingResponse{}, errNotYourBooking
		}

		return res, nil
	}

	booking, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	s.remember(ctx, cacheKey, res)

	if !booking.IsParticipant(callerID) {
		return dto.BookingResponse{}, errNotYourBooking
	}

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id, callerID string, req dto.CancelBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	changes := map[string]any{}
	if req.Reason != nil {
		changes[model.FieldCancellationReason] = strings.TrimSpace(*req.Reason)
	}

	updated, err := s.transition(ctx, booking, model.StatusCancelled, callerID, changes)
	if err != nil {
		return res, err
	}

	res.FromModel(updated)

	return res, nil
}

func (s *serviceImpl) Confirm(ctx context.Context, id, callerID string, req dto.ConfirmBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Confirm")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	if !booking.CanBeMovedBy(callerID, model.StatusConfirmed) {
		return res, errNotYourBooking
	}

	if err = s.lifecycle.Check(booking.Status, model.StatusConfirmed); err != nil {
		return res, err
	}

	promoCode := constant.Empty
	if req.PromoCode != nil {
		promoCode = strings.ToUpper(strings.TrimSpace(*req.PromoCode))
	}

	fare, err := s.fare.Quote(ctx, fareModel.VehicleClass(booking.VehicleType), *req.Distance, *req.Duration, promoCode)
	if err != nil {
		return res, fmt.Errorf("failed to price booking: %w", err)
	}

	changes := dto.FareColumns(fare)
	changes[model.FieldDistanceKm] = *req.Distance
	changes[model.FieldEstimatedDuration] = *req.Duration

	if req.PaymentMethod != constant.Empty {
		changes[model.FieldPaymentMethod] = req.PaymentMethod
	}

	if promoCode != constant.Empty {
		changes[model.FieldPromoCode] = promoCode
	}

	updated, err := s.transition(ctx, booking, model.StatusConfirmed, callerID, changes)
	if err != nil {
		return res, err
	}

	res.FromModel(updated)

	return res, nil
}

func (s *serviceImpl) Rate(ctx context.Context, id, callerID string, req dto.RateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Rate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	if !booking.IsParticipant(callerID) {
		return res, errNotYourBooking
	}

	if booking.Status != model.StatusCompleted {
		return res, failure.InvalidState("only completed bookings can be rated")
	}

	changes := map[string]any{}

	if booking.RiderID == callerID {
		if booking.UserRating != nil {
			return res, failure.Conflict("you have already rated this booking")
		}

		changes[model.FieldUserRating] = req.Rating
		if req.Feedback != nil {
			changes[model.FieldUserFeedback] = strings.TrimSpace(*req.Feedback)
		}
	} else {
		if booking.DriverRating != nil {
			return res, failure.Conflict("you have already rated this booking")
		}

		changes[model.FieldDriverRating] = req.Rating
		if req.Feedback != nil {
			changes[model.FieldDriverFeedback] = strings.TrimSpace(*req.Feedback)
		}
	}

	updated, err := s.apply(ctx, booking, callerID, changes)
	if err != nil {
		return res, err
	}

	s.afterMutation(ctx, updated, model.NewEventOfType(model.EventRated, updated, updated.ModifiedAt))

	res.FromModel(updated)

	return res, nil
}

func (s *serviceImpl) Export(ctx context.Context, riderID string, status *model.Status) (res []byte, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Export")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := newestFirst(gDto.QueryParams{})

	bookings, err := s.repo.GetAll(ctx, params, repository.OwnerFilter(model.FieldRiderID, riderID, status))
	if err != nil {
		log.Error().Err(err).Str("rider_id", riderID).Msg("failed to load bookings for export")

		return nil, fmt.Errorf("failed to load bookings for export: %w", err)
	}

	res, err = buildWorkbook(bookings)
	if err != nil {
		log.Error().Err(err).Msg("failed to build bookings workbook")

		return nil, fmt.Errorf("failed to build bookings workbook: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) ListForDriver(ctx context.Context, driverID string, status *model.Status) (res dto.DriverBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListForDriver")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookings, err := s.repo.GetAll(ctx, newestFirst(gDto.QueryParams{}), repository.OwnerFilter(model.FieldDriverID, driverID, status))
	if err != nil {
		log.Error().Err(err).Str("driver_id", driverID).Msg("failed to list driver bookings")

		return res, fmt.Errorf("failed to list driver bookings: %w", err)
	}

	res.FromModels(bookings)

	return res, nil
}

func (s *serviceImpl) Accept(ctx context.Context, id, driverID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Accept")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	if booking.DriverID != nil {
		if booking.IsAssignedTo(driverID) {
			return res, failure.InvalidState("booking is already assigned to you")
		}

		return res, failure.Conflict("booking already has a driver")
	}

	updated, err := s.transition(ctx, booking, model.StatusDriverAssigned, driverID, map[string]any{
		model.FieldDriverID: driverID,
	})
	if err != nil {
		return res, err
	}

	res.FromModel(updated)

	return res, nil
}

func (s *serviceImpl) Arrive(ctx context.Context, id, driverID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Arrive")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.advance(ctx, id, driverID, model.StatusPickup, map[string]any{})
}

func (s *serviceImpl) Start(ctx context.Context, id, driverID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Start")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.advance(ctx, id, driverID, model.StatusInProgress, map[string]any{})
}

func (s *serviceImpl) Complete(ctx context.Context, id, driverID string, req dto.CompleteBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Complete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	changes := map[string]any{}
	if req.ActualDuration != nil {
		changes[model.FieldActualDuration] = *req.ActualDuration
	}

	return s.advance(ctx, id, driverID, model.StatusCompleted, changes)
}

// advance moves a booking along on behalf of its assigned driver.
func (s *serviceImpl) advance(ctx context.Context, id, driverID string, next model.Status, changes map[string]any) (res dto.BookingResponse, err error) {
	booking, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	// Cash is collected by the driver at drop-off.
	if next == model.StatusCompleted && booking.PaymentMethod == model.PaymentMethodCash {
		changes[model.FieldPaymentStatus] = model.PaymentStatusCompleted
	}

	updated, err := s.transition(ctx, booking, next, driverID, changes)
	if err != nil {
		return res, err
	}

	res.FromModel(updated)

	return res, nil
}

func (s *serviceImpl) load(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, errBookingNotFound
	}

	return booking, nil
}

// transition checks the lifecycle, persists next together with changes, and fans out the side effects.
func (s *serviceImpl) transition(ctx context.Context, booking model.Booking, next model.Status, actorID string, changes map[string]any) (model.Booking, error) {
	if !booking.CanBeMovedBy(actorID, next) {
		return booking, errNotYourBooking
	}

	if err := s.lifecycle.Check(booking.Status, next); err != nil {
		return booking, err
	}

	changes[model.FieldStatus] = string(next)

	updated, err := s.apply(ctx, booking, actorID, changes)
	if err != nil {
		return booking, err
	}

	s.metrics.BookingTransitions.WithLabelValues(booking.Status.String(), next.String()).Inc()
	s.afterMutation(ctx, updated, model.NewEvent(updated, updated.ModifiedAt))

	return updated, nil
}

// apply writes changes only if nobody else bumped the version since booking was read.
func (s *serviceImpl) apply(ctx context.Context, booking model.Booking, actorID string, changes map[string]any) (model.Booking, error) {
	changes[model.FieldVersion] = booking.Version + 1
	changes[constant.FieldModifiedAt] = timezone.Now()
	changes[constant.FieldModifiedBy] = actorID

	affected, err := s.repo.UpdateAffected(ctx, changes, repository.VersionedFilter(booking.ID, booking.Version))
	if err != nil {
		log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to update booking")

		return booking, fmt.Errorf("failed to update booking: %w", err)
	}

	if affected == 0 {
		log.Warn().Str("booking_id", booking.ID).Int("version", booking.Version).Msg("booking version moved underneath update")

		return booking, errStaleBooking
	}

	return s.load(ctx, booking.ID)
}

// afterMutation evicts the caches before the caller returns, then publishes evt and evicts once
// more, dropping pages a concurrent read loaded before the write and saved after the first pass.
func (s *serviceImpl) afterMutation(ctx context.Context, booking model.Booking, evt model.Event) {
	s.invalidate(ctx, booking)

	s.async(func() {
		c := context.WithoutCancel(ctx)

		s.publisher.Publish(c, evt)
		s.invalidate(c, booking)
	})
}

func (s *serviceImpl) invalidate(ctx context.Context, booking model.Booking) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetBooking, booking.ID)); err != nil {
		log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to delete booking from cache")
	}

	shared.InvalidateCaches(ctx, s.cache, riderCachePrefix(booking.RiderID)+":")
}

// remember caches value on the request path so a later mutation always evicts it.
func (s *serviceImpl) remember(ctx context.Context, key string, value any) {
	if err := s.cache.Save(ctx, key, value, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Str("cacheKey", key).Msg("failed to save to cache")
	}
}

func riderCachePrefix(riderID string) string {
	return shared.BuildCacheKey(cacheRiderBookings, riderID)
}

// newestFirst pins ordering to creation time; client supplied sort columns are ignored.
func newestFirst(params gDto.QueryParams) gDto.QueryParams {
	params.SortBy = model.SortNewestFirst
	params.SortDir = gDto.SortDirDesc

	return params
}
