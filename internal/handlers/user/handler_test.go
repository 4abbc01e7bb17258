package user_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	otelMocks "rideflow/infras/otel/mocks"
	bookingDto "rideflow/internal/domains/booking/model/dto"
	bookingMocks "rideflow/internal/domains/booking/service/mocks"
	"rideflow/internal/domains/user/model/dto"
	userMocks "rideflow/internal/domains/user/service/mocks"
	"rideflow/internal/handlers/user"
	"rideflow/shared/constant"
	gDto "rideflow/shared/dto"
	"rideflow/shared/failure"
	"strings"
	"testing"

	"github.com/AlekSi/pointer"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const (
	userID = "user-1"
	// 1x1 transparent png
	pngDataURL = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII="
)

type fixture struct {
	router   http.Handler
	users    *userMocks.MockUser
	bookings *bookingMocks.MockBooking
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{
		users:    userMocks.NewMockUser(ctrl),
		bookings: bookingMocks.NewMockBooking(ctrl),
	}

	handler := user.New(f.users, f.bookings, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), constant.ContextKeyUserID, userID)))
		})
	})
	handler.Router(router)
	f.router = router

	return f
}

func (f fixture) do(method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))

	return rec
}

func TestGetProfile(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newFixture(t)

		f.users.EXPECT().GetProfile(gomock.Any(), userID).Return(dto.UserResponse{ID: userID, Name: "Asha"}, nil)

		rec := f.do(http.MethodGet, "/users/profile", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"Asha"`)
	})

	t.Run("deleted account", func(t *testing.T) {
		f := newFixture(t)

		f.users.EXPECT().GetProfile(gomock.Any(), userID).Return(dto.UserResponse{}, failure.NotFound("user not found"))

		rec := f.do(http.MethodGet, "/users/profile", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		f := newFixture(t)

		f.users.EXPECT().
			UpdateProfile(gomock.Any(), userID, dto.UpdateProfileRequest{Phone: pointer.To("9123456780")}).
			Return(dto.UserResponse{ID: userID, Phone: "9123456780"}, nil)

		rec := f.do(http.MethodPut, "/users/profile", `{"phone":"9123456780"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("name too short", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPut, "/users/profile", `{"name":"A"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUploadProfileImage(t *testing.T) {
	t.Run("uploaded", func(t *testing.T) {
		f := newFixture(t)

		f.users.EXPECT().
			UploadProfileImage(gomock.Any(), userID, dto.UploadImageRequest{Image: pngDataURL}).
			Return(dto.UploadImageResponse{ProfileImage: "https://cdn.example.com/profiles/user-1.png"}, nil)

		rec := f.do(http.MethodPut, "/users/profile/image", `{"image":"`+pngDataURL+`"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "profiles/user-1.png")
	})

	t.Run("not an image", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPut, "/users/profile/image", `{"image":"data:text/plain;base64,aGVsbG8="}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetBookings(t *testing.T) {
	f := newFixture(t)

	f.bookings.EXPECT().
		ListForRider(gomock.Any(), userID, nil, gDto.QueryParams{Page: 1, Limit: constant.DefaultValueLimit}).
		Return(bookingDto.GetBookingsResponse{Total: 0, TotalPages: 1, CurrentPage: 1}, nil)

	rec := f.do(http.MethodGet, "/users/bookings", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}
