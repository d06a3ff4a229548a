package resources

import (
	"context"
	"net/http"
	"testing"
	"time"
	_ "time/tzdata"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slotbook/slotbook-sdk-go/internal/httpx"
	"github.com/slotbook/slotbook-sdk-go/internal/testutil"
	"github.com/slotbook/slotbook-sdk-go/slotbook/datetime"
	"github.com/slotbook/slotbook-sdk-go/slotbook/types"
)

func newTestTransport(ms *testutil.MockServer) *httpx.Transport {
	return httpx.NewTransport(httpx.Config{
		BaseURL:     ms.URL,
		AccessToken: "tok_test",
	})
}

func TestUsers_Register(t *testing.T) {
	ms := testutil.NewMockServer(t)
	ms.HandleJSON(http.MethodPost, "/api/v1/client/users/register/", http.StatusCreated, map[string]any{
		"id": 1, "external_id": "u-1", "user_id": 77, "email": "ada@example.com",
	})

	users := NewUsersResource(newTestTransport(ms))
	got, err := users.Register(context.Background(), &types.RegisterUserRequest{
		ExternalID: "u-1",
		Email:      "ada@example.com",
		FirstName:  "Ada",
	})
	require.NoError(t, err)
	assert.Equal(t, 77, got.UserID)

	var body map[string]any
	ms.ParseLastRequestBody(t, &body)
	assert.Equal(t, "u-1", body["external_id"])
	assert.Equal(t, "Ada", body["first_name"])
	assert.Equal(t, "Bearer tok_test", ms.LastRequest(t).Headers.Get("Authorization"))
}

func TestUsers_Register_InvalidEmail(t *testing.T) {
	ms := testutil.NewMockServer(t)
	users := NewUsersResource(newTestTransport(ms))

	for _, email := range []string{"", "not-an-email"} {
		_, err := users.Register(context.Background(), &types.RegisterUserRequest{
			ExternalID: "u-1",
			Email:      openapi_types.Email(email),
		})
		require.Error(t, err)
		assert.True(t, httpx.IsValidationError(err))
		e, ok := httpx.AsError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, e.StatusCode)
		assert.Contains(t, e.Fields, "email")
	}

	_, err := users.Register(context.Background(), nil)
	assert.True(t, httpx.IsValidationError(err))
	ms.AssertRequestCount(t, 0)
}

func TestUsers_Lookup(t *testing.T) {
	ms := testutil.NewMockServer(t)
	ms.HandleJSON(http.MethodGet, "/api/v1/client/users/lookup/", http.StatusOK, map[string]any{
		"id": 1, "external_id": "u 1", "user_id": 77,
	})

	got, err := NewUsersResource(newTestTransport(ms)).Lookup(context.Background(), "u 1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "u 1", got.ExternalID)
	ms.AssertLastRequest(t, http.MethodGet, "/api/v1/client/users/lookup/", "external_id=u+1")
}

func TestLookup_NotFoundIsNil(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"404", http.StatusNotFound, `{"detail":"Not found."}`},
		{"400 user not found", http.StatusBadRequest, `{"error":"User not found"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms := testutil.NewMockServer(t)
			ms.HandleRaw(http.MethodGet, "/api/v1/client/users/lookup/", tt.status, tt.body)

			got, err := NewUsersResource(newTestTransport(ms)).Lookup(context.Background(), "ghost")
			assert.NoError(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestLookup_OtherErrorsPropagate(t *testing.T) {
	ms := testutil.NewMockServer(t)
	ms.HandleRaw(http.MethodGet, "/api/v1/client/venues/lookup/", http.StatusUnauthorized, `{"detail":"Invalid token."}`)

	got, err := NewVenuesResource(newTestTransport(ms)).Lookup(context.Background(), "v-1")
	assert.Nil(t, got)
	assert.True(t, httpx.IsAuthenticationError(err))
}

func TestResources_List(t *testing.T) {
	ms := testutil.NewMockServer(t)
	ms.HandleJSON(http.MethodGet, "/api/v1/resources/", http.StatusOK, map[string]any{
		"count":   1,
		"results": []map[string]any{{"id": 9, "venue": 5, "name": "Court 1", "is_bookable": true}},
	})

	page, err := NewResourcesResource(newTestTransport(ms)).List(context.Background(), &types.ListResourcesParams{
		Venue:      types.Int(5),
		IsBookable: types.Bool(true),
	})
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "Court 1", page.Results[0].Name)
	ms.AssertLastRequest(t, http.MethodGet, "/api/v1/resources/", "venue=5&is_bookable=true")
}

func TestResources_Register(t *testing.T) {
	ms := testutil.NewMockServer(t)
	ms.HandleJSON(http.MethodPost, "/api/v1/client/resources/register/", http.StatusCreated, map[string]any{
		"id": 3, "external_id": "court-a", "resource_id": 9,
	})

	got, err := NewResourcesResource(newTestTransport(ms)).Register(context.Background(), &types.RegisterResourceRequest{
		ExternalID: "court-a",
		ResourceID: 9,
	})
	require.NoError(t, err)
	assert.Equal(t, 9, got.ResourceID)
}

func TestVenues_ListQueryOrder(t *testing.T) {
	ms := testutil.NewMockServer(t)
	ms.HandleJSON(http.MethodGet, "/api/v1/venues/", http.StatusOK, map[string]any{"count": 0, "results": []any{}})

	_, err := NewVenuesResource(newTestTransport(ms)).List(context.Background(), &types.ListVenuesParams{
		City:     types.String("Berlin"),
		Search:   types.String("padel club"),
		IsActive: types.Bool(true),
		PageSize: types.Int(50),
	})
	require.NoError(t, err)
	ms.AssertLastRequest(t, http.MethodGet, "/api/v1/venues/", "city=Berlin&search=padel+club&is_active=true&page_size=50")
}

func TestVenues_WithResources(t *testing.T) {
	ms := testutil.NewMockServer(t)
	ms.HandleJSON(http.MethodGet, "/api/v1/venues/resources/", http.StatusOK, map[string]any{
		"venue":     map[string]any{"id": 5, "name": "Center", "slug": "center"},
		"resources": []map[string]any{{"id": 9, "name": "Court 1"}, {"id": 10, "name": "Court 2"}},
	})

	got, err := NewVenuesResource(newTestTransport(ms)).WithResources(context.Background(), "v-ext")
	require.NoError(t, err)
	assert.Equal(t, "center", got.Venue.Slug)
	assert.Len(t, got.Resources, 2)
	ms.AssertLastRequest(t, http.MethodGet, "/api/v1/venues/resources/", "venue_external_id=v-ext")
}

func TestVenues_GetBySlug(t *testing.T) {
	ms := testutil.NewMockServer(t)
	ms.HandleJSON(http.MethodGet, "/api/v1/venues/", http.StatusOK, map[string]any{
		"count": 2,
		"results": []map[string]any{
			{"id": 4, "name": "Center Court Annex", "slug": "center-court-annex"},
			{"id": 5, "name": "Center Court", "slug": "center-court"},
		},
	})
	ms.HandleJSON(http.MethodGet, "/api/v1/venues/5/", http.StatusOK, map[string]any{
		"id": 5, "name": "Center Court", "slug": "center-court", "amenities": []string{"parking"},
	})

	got, err := NewVenuesResource(newTestTransport(ms)).GetBySlug(context.Background(), "center-court")
	require.NoError(t, err)
	assert.Equal(t, 5, got.ID)
	assert.Equal(t, []string{"parking"}, got.Amenities)
	ms.AssertRequestCount(t, 2)
}

func TestVenues_GetBySlug_NoExactMatch(t *testing.T) {
	ms := testutil.NewMockServer(t)
	ms.HandleJSON(http.MethodGet, "/api/v1/venues/", http.StatusOK, map[string]any{
		"count":   1,
		"results": []map[string]any{{"id": 4, "slug": "center-court-annex"}},
	})

	got, err := NewVenuesResource(newTestTransport(ms)).GetBySlug(context.Background(), "center-court")
	assert.Nil(t, got)
	require.Error(t, err)
	assert.True(t, httpx.IsNotFoundError(err))
	assert.Contains(t, err.Error(), "center-court")
	ms.AssertRequestCount(t, 1)
}

func TestAvailability_ForResource(t *testing.T) {
	ms := testutil.NewMockServer(t)
	ms.HandleJSON(http.MethodGet, "/api/v1/resources/9/availability/", http.StatusOK, map[string]any{
		"resource_id": 9,
		"timezone":    "Europe/Berlin",
		"availability": []map[string]any{
			{"date": "2025-07-15", "start_time": "10:00", "end_time": "11:00", "is_available": true},
		},
	})

	start := time.Date(2025, 7, 15, 12, 0, 0, 0, time.Local)
	end := time.Date(2025, 7, 16, 12, 0, 0, 0, time.Local)
	got, err := NewAvailabilityResource(newTestTransport(ms)).ForResource(context.Background(), 9, &types.AvailabilityParams{
		StartDate: start,
		EndDate:   end,
	})
	require.NoError(t, err)
	assert.Len(t, got.Available(), 1)
	ms.AssertLastRequest(t, http.MethodGet, "/api/v1/resources/9/availability/", "start_date=2025-07-15&end_date=2025-07-16")
}

func TestAvailability_ForExternalResource(t *testing.T) {
	ms := testutil.NewMockServer(t)
	ms.HandleJSON(http.MethodGet, "/api/v1/resources/availability/", http.StatusOK, map[string]any{"resource_id": 9})

	start := time.Date(2025, 7, 15, 12, 0, 0, 0, time.Local)
	_, err := NewAvailabilityResource(newTestTransport(ms)).ForExternalResource(context.Background(), "court-a", &types.AvailabilityParams{
		StartDate: start,
	})
	require.NoError(t, err)
	ms.AssertLastRequest(t, http.MethodGet, "/api/v1/resources/availability/", "resource_external_id=court-a&start_date=2025-07-15")

	_, err = NewAvailabilityResource(newTestTransport(ms)).ForExternalResource(context.Background(), "court-a", nil)
	require.NoError(t, err)
	ms.AssertLastRequest(t, http.MethodGet, "/api/v1/resources/availability/", "resource_external_id=court-a")
}

func TestBookings_Create(t *testing.T) {
	for name, f := range map[string]datetime.Formatter{"default": nil, "components": datetime.Components{}} {
		t.Run(name, func(t *testing.T) {
			ms := testutil.NewMockServer(t)
			ms.HandleJSON(http.MethodPost, "/api/v1/bookings/", http.StatusCreated, map[string]any{
				"id": 42, "booking_reference": "BK-1", "resource": 9, "status": "pending", "payment_status": "pending",
			})

			bookings := NewBookingsResource(newTestTransport(ms), f)
			got, err := bookings.Create(context.Background(), &types.CreateBookingParams{
				UserExternalID: "u-1",
				ResourceID:     9,
				Start:          time.Date(2025, 7, 15, 10, 0, 0, 0, time.UTC),
				End:            time.Date(2025, 7, 15, 11, 30, 0, 0, time.UTC),
				Timezone:       "Europe/Berlin",
				Metadata:       types.JSONObject{"source": "kiosk"},
			})
			require.NoError(t, err)
			assert.True(t, got.IsPending())

			req := ms.LastRequest(t)
			assert.Equal(t, "u-1", req.Headers.Get(UserExternalIDHeader))

			var body map[string]any
			ms.ParseLastRequestBody(t, &body)
			assert.Equal(t, float64(9), body["resource"])
			assert.Equal(t, "2025-07-15T10:00:00+02:00", body["start_time"])
			assert.Equal(t, "2025-07-15T11:30:00+02:00", body["end_time"])
			assert.Equal(t, "Europe/Berlin", body["timezone"])
			assert.Equal(t, map[string]any{"source": "kiosk"}, body["metadata"])
			assert.NotContains(t, body, "resource_external_id")
			assert.NotContains(t, body, "notes")
		})
	}
}

func TestBookings_Create_ZoneFromStart(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	ms := testutil.NewMockServer(t)
	ms.HandleJSON(http.MethodPost, "/api/v1/bookings/", http.StatusCreated, map[string]any{"id": 1})

	_, err = NewBookingsResource(newTestTransport(ms), nil).Create(context.Background(), &types.CreateBookingParams{
		UserExternalID:     "u-1",
		ResourceExternalID: "court-a",
		Start:              time.Date(2025, 1, 15, 18, 0, 0, 0, kolkata),
		End:                time.Date(2025, 1, 15, 19, 0, 0, 0, kolkata),
	})
	require.NoError(t, err)

	var body map[string]any
	ms.ParseLastRequestBody(t, &body)
	assert.Equal(t, "Asia/Kolkata", body["timezone"])
	assert.Equal(t, "court-a", body["resource_external_id"])
	assert.Equal(t, "2025-01-15T18:00:00+05:30", body["start_time"])
	assert.NotContains(t, body, "resource")
}

func TestBookings_Create_UnknownZone(t *testing.T) {
	ms := testutil.NewMockServer(t)

	_, err := NewBookingsResource(newTestTransport(ms), nil).Create(context.Background(), &types.CreateBookingParams{
		UserExternalID: "u-1",
		ResourceID:     9,
		Start:          time.Date(2025, 7, 15, 10, 0, 0, 0, time.UTC),
		End:            time.Date(2025, 7, 15, 11, 0, 0, 0, time.UTC),
		Timezone:       "Mars/Olympus_Mons",
	})
	require.Error(t, err)
	assert.True(t, httpx.IsValidationError(err))
	e, ok := httpx.AsError(err)
	require.True(t, ok)
	assert.Contains(t, e.Fields, "timezone")
	ms.AssertRequestCount(t, 0)
}

func TestBookings_Create_SlotTaken(t *testing.T) {
	ms := testutil.NewMockServer(t)
	ms.HandleRaw(http.MethodPost, "/api/v1/bookings/", http.StatusBadRequest, `{"error":"This slot is not available"}`)

	_, err := NewBookingsResource(newTestTransport(ms), nil).Create(context.Background(), &types.CreateBookingParams{
		UserExternalID: "u-1",
		ResourceID:     9,
		Start:          time.Date(2025, 7, 15, 10, 0, 0, 0, time.UTC),
		End:            time.Date(2025, 7, 15, 11, 0, 0, 0, time.UTC),
		Timezone:       "UTC",
	})
	assert.True(t, httpx.IsSlotNotAvailableError(err))
}

func TestBookings_Create_NilParams(t *testing.T) {
	ms := testutil.NewMockServer(t)

	got, err := NewBookingsResource(newTestTransport(ms), nil).Create(context.Background(), nil)
	assert.Nil(t, got)
	require.Error(t, err)
	assert.True(t, httpx.IsValidationError(err))
	ms.AssertRequestCount(t, 0)
}

func TestBookings_RequireUserExternalID(t *testing.T) {
	ctx := context.Background()
	calls := map[string]func(*BookingsResource) error{
		"create": func(r *BookingsResource) error {
			_, err := r.Create(ctx, &types.CreateBookingParams{
				ResourceID: 9,
				Start:      time.Date(2025, 7, 15, 10, 0, 0, 0, time.UTC),
				End:        time.Date(2025, 7, 15, 11, 0, 0, 0, time.UTC),
				Timezone:   "UTC",
			})
			return err
		},
		"create payment intent": func(r *BookingsResource) error {
			_, err := r.CreatePaymentIntent(ctx, 42, "")
			return err
		},
		"cancel": func(r *BookingsResource) error {
			_, err := r.Cancel(ctx, 42, &types.CancelBookingParams{Reason: "weather"})
			return err
		},
		"cancel nil params": func(r *BookingsResource) error {
			_, err := r.Cancel(ctx, 42, nil)
			return err
		},
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			ms := testutil.NewMockServer(t)

			err := call(NewBookingsResource(newTestTransport(ms), nil))
			require.Error(t, err)
			assert.True(t, httpx.IsValidationError(err))
			e, ok := httpx.AsError(err)
			require.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, e.StatusCode)
			assert.Contains(t, e.Fields, "user_external_id")
			ms.AssertRequestCount(t, 0)
		})
	}
}

func TestBookings_List(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"bare list", `[{"id":1},{"id":2}]`, 2},
		{"envelope", `{"count":3,"next":null,"results":[{"id":1},{"id":2},{"id":3}]}`, 3},
		{"envelope without results", `{"count":0}`, 0},
		{"empty body", ``, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms := testutil.NewMockServer(t)
			ms.HandleRaw(http.MethodGet, "/api/v1/bookings/", http.StatusOK, tt.body)

			status := types.BookingStatusConfirmed
			got, err := NewBookingsResource(newTestTransport(ms), nil).List(context.Background(), &types.ListBookingsParams{
				Status:         &status,
				Upcoming:       types.Bool(true),
				UserExternalID: "u-1",
			})
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Len(t, got, tt.want)
			ms.AssertLastRequest(t, http.MethodGet, "/api/v1/bookings/", "status=confirmed&upcoming=true")
			assert.Equal(t, "u-1", ms.LastRequest(t).Headers.Get(UserExternalIDHeader))
		})
	}
}

func TestDecodeBookingList_Malformed(t *testing.T) {
	_, err := decodeBookingList(&httpx.Response{Body: []byte(`{"results": "nope"}`)})
	assert.Error(t, err)
}

func TestBookings_Get(t *testing.T) {
	ms := testutil.NewMockServer(t)
	ms.HandleJSON(http.MethodGet, "/api/v1/bookings/42/", http.StatusOK, map[string]any{"id": 42, "status": "confirmed"})

	got, err := NewBookingsResource(newTestTransport(ms), nil).Get(context.Background(), 42, "")
	require.NoError(t, err)
	assert.True(t, got.IsConfirmed())
	assert.Empty(t, ms.LastRequest(t).Headers.Get(UserExternalIDHeader))

	_, err = NewBookingsResource(newTestTransport(ms), nil).Get(context.Background(), 43, "u-1")
	assert.True(t, httpx.IsNotFoundError(err))
}

func TestBookings_CreatePaymentIntent(t *testing.T) {
	ms := testutil.NewMockServer(t)
	ms.HandleJSON(http.MethodPost, "/api/v1/bookings/42/create-payment-intent/", http.StatusOK, map[string]any{
		"payment_intent_id": "pi_1", "client_secret": "pi_1_secret", "amount": 4500, "currency": "eur",
	})

	got, err := NewBookingsResource(newTestTransport(ms), nil).CreatePaymentIntent(context.Background(), 42, "u-1")
	require.NoError(t, err)
	assert.Equal(t, int64(4500), got.Amount)
	assert.Equal(t, "pi_1_secret", got.ClientSecret)
	assert.Equal(t, "u-1", ms.LastRequest(t).Headers.Get(UserExternalIDHeader))
}

func TestBookings_Cancel(t *testing.T) {
	tests := []struct {
		name       string
		params     *types.CancelBookingParams
		wantReason string
	}{
		{"empty reason", &types.CancelBookingParams{UserExternalID: "u-1"}, types.DefaultCancellationReason},
		{"explicit reason", &types.CancelBookingParams{UserExternalID: "u-1", Reason: "weather", Notes: "rain"}, "weather"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms := testutil.NewMockServer(t)
			ms.HandleJSON(http.MethodPost, "/api/v1/bookings/42/cancel/", http.StatusOK, map[string]any{"id": 42, "status": "cancelled"})

			got, err := NewBookingsResource(newTestTransport(ms), nil).Cancel(context.Background(), 42, tt.params)
			require.NoError(t, err)
			assert.True(t, got.IsCancelled())

			assert.Equal(t, "u-1", ms.LastRequest(t).Headers.Get(UserExternalIDHeader))

			var body map[string]any
			ms.ParseLastRequestBody(t, &body)
			assert.Equal(t, tt.wantReason, body["reason"])
		})
	}
}
