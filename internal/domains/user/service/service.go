package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"rideflow/config"
	"rideflow/infras/otel"
	"rideflow/infras/s3"
	"rideflow/internal/domains/user/model"
	"rideflow/internal/domains/user/model/dto"
	"rideflow/internal/domains/user/repository"
	"rideflow/shared"
	"rideflow/shared/base64"
	"rideflow/shared/cache"
	"rideflow/shared/constant"
	"rideflow/shared/failure"
	"rideflow/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetUser     = "user:get"
	profileDirectory = "profiles"
)

var (
	errUserNotFound = failure.NotFound("user not found")
	errNotADriver   = failure.Forbidden("only drivers can report a location")

	imageExtensions = map[string]string{
		"image/png":  ".png",
		"image/jpeg": ".jpg",
	}
)

type User interface {
	GetProfile(ctx context.Context, userID string) (dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (dto.UserResponse, error)
	UploadProfileImage(ctx context.Context, userID string, req dto.UploadImageRequest) (dto.UploadImageResponse, error)
	NearbyDrivers(ctx context.Context, req dto.NearbyDriversRequest) (dto.NearbyDriversResponse, error)
	UpdateLocation(ctx context.Context, driverID string, req dto.UpdateLocationRequest) error
}

type serviceImpl struct {
	repo    repository.User
	storage s3.S3
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
	async   func(func())
}

func New(repo repository.User, storage s3.S3, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) User {
	return &serviceImpl{
		repo:    repo,
		storage: storage,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
		async:   func(f func()) { go f() },
	}
}

func (s *serviceImpl) GetProfile(ctx context.Context, userID string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetProfile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetUser, userID)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for user")

		return res, nil
	}

	user, err := s.load(ctx, userID)
	if err != nil {
		return res, err
	}

	res.FromModel(user)

	s.async(func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save user to cache")
		}
	})

	return res, nil
}

func (s *serviceImpl) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateProfile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return res, failure.BadRequestFromString("update request cannot be empty")
	}

	if _, err = s.load(ctx, userID); err != nil {
		return res, err
	}

	if err = s.update(ctx, userID, shared.TransformFields(req, userID)); err != nil {
		return res, err
	}

	user, err := s.load(ctx, userID)
	if err != nil {
		return res, err
	}

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) UploadProfileImage(ctx context.Context, userID string, req dto.UploadImageRequest) (res dto.UploadImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadProfileImage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	contentType, raw, err := base64.Decode(req.Image)
	if err != nil {
		return res, failure.BadRequestFromString("image must be a base64 data url")
	}

	ext, ok := imageExtensions[contentType]
	if !ok {
		return res, failure.BadRequestFromString("image must be a png or jpeg")
	}

	user, err := s.load(ctx, userID)
	if err != nil {
		return res, err
	}

	fileName := fmt.Sprintf("%s-%d%s", userID, timezone.Now().UnixMilli(), ext)

	url, err := s.storage.UploadFileBytes(ctx, constant.Empty, profileDirectory, fileName, contentType, raw)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("failed to upload profile image")

		return res, fmt.Errorf("failed to upload profile image: %w", err)
	}

	if err = s.update(ctx, userID, map[string]any{
		model.FieldProfileImage:  url,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: userID,
	}); err != nil {
		return res, err
	}

	if user.ProfileImage != nil {
		previous := s.storage.ObjectKeyFromURL(*user.ProfileImage)

		if previous != constant.Empty {
			s.async(func() {
				if err := s.storage.DeleteFile(context.WithoutCancel(ctx), constant.Empty, previous); err != nil {
					log.Warn().Err(err).Str("key", previous).Msg("failed to delete previous profile image")
				}
			})
		}
	}

	res.ProfileImage = url

	return res, nil
}

func (s *serviceImpl) NearbyDrivers(ctx context.Context, req dto.NearbyDriversRequest) (res dto.NearbyDriversResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".NearbyDrivers")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	drivers, err := s.repo.FindNearbyDrivers(ctx, req.Coordinates[0], req.Coordinates[1], req.RadiusOrDefault(), model.MaxNearbyDrivers)
	if err != nil {
		log.Error().Err(err).Msg("failed to find nearby drivers")

		return res, fmt.Errorf("failed to find nearby drivers: %w", err)
	}

	res.FromModels(drivers)

	return res, nil
}

func (s *serviceImpl) UpdateLocation(ctx context.Context, driverID string, req dto.UpdateLocationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateLocation")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.load(ctx, driverID)
	if err != nil {
		return err
	}

	if !user.IsDriver() {
		return errNotADriver
	}

	fields := req.ToFields()
	fields[constant.FieldModifiedAt] = timezone.Now()
	fields[constant.FieldModifiedBy] = driverID

	return s.update(ctx, driverID, fields)
}

func (s *serviceImpl) load(ctx context.Context, userID string) (model.User, error) {
	user, err := s.repo.Get(ctx, shared.FilterByID(userID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("failed to get user")

		return user, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return user, errUserNotFound
	}

	return user, nil
}

func (s *serviceImpl) update(ctx context.Context, userID string, fields map[string]any) error {
	if err := s.repo.Update(ctx, fields, shared.FilterByID(userID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("failed to update user")

		return fmt.Errorf("failed to update user: %w", err)
	}

	s.async(func() {
		if err := s.cache.Delete(context.WithoutCancel(ctx), shared.BuildCacheKey(cacheGetUser, userID)); err != nil {
			log.Error().Err(err).Msg("failed to delete user from cache")
		}
	})

	return nil
}
