package service_test

import (
	"context"
	"errors"
	"rideflow/config"
	s3Mocks "rideflow/infras/s3/mocks"
	otelMocks "rideflow/infras/otel/mocks"
	userMocks "rideflow/internal/domains/user/mocks"
	"rideflow/internal/domains/user/model"
	"rideflow/internal/domains/user/model/dto"
	"rideflow/internal/domains/user/service"
	"rideflow/shared/cache"
	cacheMocks "rideflow/shared/cache/mocks"
	"rideflow/shared/constant"
	"rideflow/shared/failure"
	"strings"
	"testing"

	"github.com/AlekSi/pointer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	userID   = "user-1"
	cacheKey = "user:get:user-1"
	pngImage = "data:image/png;base64,iVBORw0KGgo="
)

type fixture struct {
	repo    *userMocks.MockUser
	storage *s3Mocks.MockS3
	cache   *cacheMocks.MockRedisCache
	svc     service.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 300

	f := &fixture{
		repo:    userMocks.NewMockUser(ctrl),
		storage: s3Mocks.NewMockS3(ctrl),
		cache:   cacheMocks.NewMockRedisCache(ctrl),
	}

	f.svc = service.NewInline(f.repo, f.storage, cfg, f.cache, otelMocks.NewOtel())

	return f
}

func sampleUser(role string) model.User {
	return model.User{
		ID:       userID,
		Name:     "Asha",
		Email:    "asha@example.com",
		Phone:    "+919000000001",
		Role:     role,
		IsActive: true,
	}
}

func TestGetProfile(t *testing.T) {
	t.Run("cache hit", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), cacheKey, gomock.Any()).DoAndReturn(func(_ context.Context, _ string, value any) error {
			res, _ := value.(*dto.UserResponse)
			res.ID = userID
			res.Name = "Asha"

			return nil
		})

		res, err := f.svc.GetProfile(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, "Asha", res.Name)
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		f := newFixture(t)

		driver := sampleUser(constant.RoleDriver)
		driver.LocationLng = pointer.ToFloat64(72.8777)
		driver.LocationLat = pointer.ToFloat64(19.076)

		f.cache.EXPECT().Get(gomock.Any(), cacheKey, gomock.Any()).Return(cache.Nil)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(driver, nil)
		f.cache.EXPECT().Save(gomock.Any(), cacheKey, gomock.Any(), 300).Return(nil)

		res, err := f.svc.GetProfile(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, constant.RoleDriver, res.Role)
		require.NotNil(t, res.Location)
		assert.Equal(t, "Point", res.Location.Type)
		assert.Equal(t, []float64{72.8777, 19.076}, res.Location.Coordinates)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), cacheKey, gomock.Any()).Return(cache.Nil)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)

		_, err := f.svc.GetProfile(context.Background(), userID)
		assert.True(t, failure.IsKind(err, failure.KindNotFound))
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Run("empty request", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.UpdateProfile(context.Background(), userID, dto.UpdateProfileRequest{})
		assert.True(t, failure.IsKind(err, failure.KindValidation))
	})

	t.Run("updates only provided fields", func(t *testing.T) {
		f := newFixture(t)

		updated := sampleUser(constant.RoleRider)
		updated.Name = "Asha Rao"

		gomock.InOrder(
			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sampleUser(constant.RoleRider), nil),
			f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, "Asha Rao", fields[model.FieldName])
				assert.NotContains(t, fields, model.FieldPhone)
				assert.Equal(t, userID, fields[constant.FieldModifiedBy])

				return nil
			}),
			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(updated, nil),
		)
		f.cache.EXPECT().Delete(gomock.Any(), cacheKey).Return(nil)

		res, err := f.svc.UpdateProfile(context.Background(), userID, dto.UpdateProfileRequest{Name: pointer.To("Asha Rao")})
		require.NoError(t, err)
		assert.Equal(t, "Asha Rao", res.Name)
	})
}

func TestUploadProfileImage(t *testing.T) {
	t.Run("replaces previous image", func(t *testing.T) {
		f := newFixture(t)

		user := sampleUser(constant.RoleRider)
		user.ProfileImage = pointer.To("https://cdn.rideflow.app/profiles/old.png")

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
		f.storage.EXPECT().
			UploadFileBytes(gomock.Any(), "", "profiles", gomock.Any(), "image/png", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, fileName, _ string, _ []byte) (string, error) {
				assert.True(t, strings.HasPrefix(fileName, userID+"-"))
				assert.True(t, strings.HasSuffix(fileName, ".png"))

				return "https://cdn.rideflow.app/profiles/new.png", nil
			})
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.cache.EXPECT().Delete(gomock.Any(), cacheKey).Return(nil)
		f.storage.EXPECT().ObjectKeyFromURL("https://cdn.rideflow.app/profiles/old.png").Return("profiles/old.png")
		f.storage.EXPECT().DeleteFile(gomock.Any(), "", "profiles/old.png").Return(errors.New("gone"))

		res, err := f.svc.UploadProfileImage(context.Background(), userID, dto.UploadImageRequest{Image: pngImage})
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.rideflow.app/profiles/new.png", res.ProfileImage)
	})

	t.Run("rejects non image payload", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.UploadProfileImage(context.Background(), userID, dto.UploadImageRequest{Image: "data:text/plain;base64,aGk="})
		assert.True(t, failure.IsKind(err, failure.KindValidation))
	})

	t.Run("upload failure", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sampleUser(constant.RoleRider), nil)
		f.storage.EXPECT().UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("timeout"))

		_, err := f.svc.UploadProfileImage(context.Background(), userID, dto.UploadImageRequest{Image: pngImage})
		require.Error(t, err)
		assert.Equal(t, 500, failure.GetCode(err))
	})
}

func TestNearbyDrivers(t *testing.T) {
	t.Run("default radius", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			FindNearbyDrivers(gomock.Any(), 72.8777, 19.076, float64(5000), model.MaxNearbyDrivers).
			Return([]model.NearbyDriver{
				{ID: "d-1", Name: "Ravi", Phone: "+919000000002", LocationLng: 72.88, LocationLat: 19.07, Distance: 420.5},
				{ID: "d-2", Name: "Meera", Phone: "+919000000003", LocationLng: 72.9, LocationLat: 19.1, Distance: 3100},
			}, nil)

		res, err := f.svc.NearbyDrivers(context.Background(), dto.NearbyDriversRequest{Coordinates: []float64{72.8777, 19.076}})
		require.NoError(t, err)
		require.Len(t, res.Drivers, 2)
		assert.Equal(t, "Ravi", res.Drivers[0].Name)
		assert.Equal(t, []float64{72.88, 19.07}, res.Drivers[0].Location.Coordinates)
	})

	t.Run("explicit radius and empty result", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			FindNearbyDrivers(gomock.Any(), 77.5946, 12.9716, float64(1000), model.MaxNearbyDrivers).
			Return([]model.NearbyDriver{}, nil)

		res, err := f.svc.NearbyDrivers(context.Background(), dto.NearbyDriversRequest{
			Coordinates: []float64{77.5946, 12.9716},
			Radius:      pointer.ToFloat64(1000),
		})
		require.NoError(t, err)
		assert.NotNil(t, res.Drivers)
		assert.Empty(t, res.Drivers)
	})

	t.Run("store failure", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().FindNearbyDrivers(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("extension earthdistance does not exist"))

		_, err := f.svc.NearbyDrivers(context.Background(), dto.NearbyDriversRequest{Coordinates: []float64{0, 0}})
		assert.Equal(t, 500, failure.GetCode(err))
	})
}

func TestUpdateLocation(t *testing.T) {
	req := dto.UpdateLocationRequest{Coordinates: []float64{73.8567, 18.5204}}

	t.Run("driver", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sampleUser(constant.RoleDriver), nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
			assert.InDelta(t, 73.8567, fields[model.FieldLocationLng], 1e-9)
			assert.InDelta(t, 18.5204, fields[model.FieldLocationLat], 1e-9)

			return nil
		})
		f.cache.EXPECT().Delete(gomock.Any(), cacheKey).Return(nil)

		require.NoError(t, f.svc.UpdateLocation(context.Background(), userID, req))
	})

	t.Run("rider is forbidden", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sampleUser(constant.RoleRider), nil)

		err := f.svc.UpdateLocation(context.Background(), userID, req)
		assert.True(t, failure.IsKind(err, failure.KindForbidden))
	})
}
