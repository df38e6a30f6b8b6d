package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/leasedesk/internal/api"
	"github.com/MrJamesThe3rd/leasedesk/internal/contract"
	"github.com/MrJamesThe3rd/leasedesk/internal/session"
)

func newServer(t *testing.T, h http.HandlerFunc) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return srv
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestClient_AttachesHeaders(t *testing.T) {
	var gotAuth, gotRequestID string

	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	store := session.New("")
	client := api.New(srv.URL, store, 0)

	require.NoError(t, client.Health(context.Background()))
	assert.Empty(t, gotAuth)

	_, err := uuid.Parse(gotRequestID)
	assert.NoError(t, err)

	require.NoError(t, store.Set("secret", nil))
	require.NoError(t, client.Health(context.Background()))
	assert.Equal(t, "Bearer secret", gotAuth)
}

func TestClient_ErrorBody(t *testing.T) {
	type testCase struct {
		name        string
		status      int
		body        string
		wantMessage string
		wantUnauth  bool
	}

	tests := []testCase{
		{
			name:        "Unauthorized",
			status:      http.StatusUnauthorized,
			body:        `{"error":"Invalid credentials"}`,
			wantMessage: "Invalid credentials",
			wantUnauth:  true,
		},
		{
			name:        "BadGatewayWithDetail",
			status:      http.StatusBadGateway,
			body:        `{"error":"IA service unavailable","detail":"timeout"}`,
			wantMessage: "IA service unavailable",
		},
		{
			name:        "NoBody",
			status:      http.StatusInternalServerError,
			body:        ``,
			wantMessage: "fallback",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := api.New(srv.URL, nil, 0).Login(context.Background(), api.LoginRequest{})
			require.Error(t, err)

			var apiErr *api.Error
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantUnauth, errors.Is(err, api.ErrUnauthorized))
			assert.Equal(t, tt.wantMessage, api.Message(err, "fallback"))
		})
	}
}

func TestClient_LoginAndRegister(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			var req api.LoginRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "ana@example.com", req.Email)
			writeJSON(w, http.StatusOK, map[string]any{"token": "t1"})
		case "/auth/register":
			var req api.RegisterRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			writeJSON(w, http.StatusCreated, map[string]any{
				"token": "t2",
				"user":  map[string]any{"id": 3, "firstName": req.FirstName, "lastName": req.LastName, "email": req.Email},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	client := api.New(srv.URL+"/", nil, 0)

	res, err := client.Login(context.Background(), api.LoginRequest{Email: "ana@example.com", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, "t1", res.Token)
	assert.Nil(t, res.User)

	res, err = client.Register(context.Background(), api.RegisterRequest{FirstName: "Ana", LastName: "Gómez", Email: "ana@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "t2", res.Token)
	require.NotNil(t, res.User)
	assert.Equal(t, int64(3), res.User.ID)
}

func TestClient_LoginWithoutToken(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{})
	})

	_, err := api.New(srv.URL, nil, 0).Login(context.Background(), api.LoginRequest{})
	assert.Error(t, err)
}

func TestContractRepository(t *testing.T) {
	var created api.CreateRequest

	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, []map[string]any{
				{
					"id": "C-2", "propertyLabel": "AV. X 1", "ownerName": "O", "tenantName": "T",
					"startDate": "2025-01-01", "endDate": "2026-01-01", "amount": 550000, "currency": "ARS",
					"adjustment": map[string]any{"type": "IPC_QUARTERLY", "frequencyMonths": 3},
				},
				{
					"id": "C-1", "propertyLabel": "AV. Y 2", "ownerName": "O", "tenantName": "T",
					"startDate": "2025-01-01", "endDate": "2025-06-30", "amount": 900, "currency": "USD",
				},
			})
		case http.MethodPost:
			require.NoError(t, json.NewDecoder(r.Body).Decode(&created))
			writeJSON(w, http.StatusCreated, map[string]string{"id": "C-3"})
		}
	})

	repo := api.NewContractRepository(api.New(srv.URL, nil, 0))

	list, err := repo.ListContracts(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "C-2", list[0].ID)
	assert.Equal(t, contract.CurrencyARS, list[0].Currency)
	require.NotNil(t, list[0].Adjustment)
	assert.Equal(t, 3, *list[0].Adjustment.FrequencyMonths)
	assert.Nil(t, list[1].Adjustment)
	assert.Equal(t, "2025-06-30", contract.FormatDate(list[1].EndDate))

	id, err := repo.CreateContract(context.Background(), validParams())
	require.NoError(t, err)
	assert.Equal(t, "C-3", id)
	assert.Equal(t, "2025-11-12", created.StartDate)
	assert.Equal(t, "2026-11-12", created.EndDate)
	assert.Equal(t, "ARS", created.Currency)
}

func TestContractRepository_BadEndDate(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{{"id": "C-1", "endDate": "soon"}})
	})

	_, err := api.NewContractRepository(api.New(srv.URL, nil, 0)).ListContracts(context.Background())
	assert.Error(t, err)
}

func TestContractRepository_NullEndDate(t *testing.T) {
	now := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)

	srv := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{
			{"id": "C-2", "startDate": "2025-01-01", "endDate": "2027-01-01", "amount": 1, "currency": "ARS"},
			{"id": "C-1", "startDate": "2025-01-01", "endDate": nil, "amount": 1, "currency": "ARS"},
		})
	})

	list, err := api.NewContractRepository(api.New(srv.URL, nil, 0)).ListContracts(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[1].EndDate.IsZero())
	assert.Equal(t, contract.StatusExpired, list[1].Status(now))
	assert.Equal(t, contract.StatusActive, list[0].Status(now))
}

func validParams() contract.CreateParams {
	start, _ := contract.ParseDate("2025-11-12")
	end, _ := contract.ParseDate("2026-11-12")

	return contract.CreateParams{
		PropertyLabel: "AV. FEDERICO LACROZE 3060",
		OwnerName:     "María Fernández",
		TenantName:    "Juan Pérez",
		StartDate:     start,
		EndDate:       end,
		Amount:        550000,
		Currency:      contract.CurrencyARS,
	}
}

func TestExtractor(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/contracts/upload", r.URL.Path)

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		data, _ := io.ReadAll(file)
		assert.Equal(t, "lease.txt", header.Filename)
		assert.Equal(t, "LOCADOR: Juan", string(data))

		_, _ = io.WriteString(w, `{
			"extracted": {"tenantName": "Juan Pérez", "ownerName": null, "endDate": "2027-03-01",
				"startDate": "not a date", "amount": 900, "currency": "USD"},
			"textPreview": "LOCADOR"
		}`)
	})

	ext, err := api.New(srv.URL, nil, 0).Extractor().Extract(context.Background(), "/tmp/lease.txt", strings.NewReader("LOCADOR: Juan"))
	require.NoError(t, err)

	assert.Equal(t, "LOCADOR", ext.TextPreview)
	require.NotNil(t, ext.Contract.TenantName)
	assert.Equal(t, "Juan Pérez", *ext.Contract.TenantName)
	assert.Nil(t, ext.Contract.OwnerName)
	assert.Nil(t, ext.Contract.StartDate)
	require.NotNil(t, ext.Contract.EndDate)
	assert.Equal(t, "2027-03-01", contract.FormatDate(*ext.Contract.EndDate))
	require.NotNil(t, ext.Contract.Currency)
	assert.Equal(t, contract.CurrencyUSD, *ext.Contract.Currency)

	params := ext.Contract.CreateParams()
	assert.Equal(t, 900.0, params.Amount)
	assert.Empty(t, params.OwnerName)
}

func TestExtractor_RejectsTypeWithoutRequest(t *testing.T) {
	called := false

	srv := newServer(t, func(http.ResponseWriter, *http.Request) { called = true })

	_, err := api.New(srv.URL, nil, 0).Extractor().Extract(context.Background(), "photo.png", strings.NewReader(""))
	assert.ErrorIs(t, err, api.ErrUnsupportedType)
	assert.False(t, called)
}

func TestAllowed(t *testing.T) {
	assert.True(t, api.Allowed("a.PDF"))
	assert.True(t, api.Allowed("dir/b.docx"))
	assert.True(t, api.Allowed("c.txt"))
	assert.False(t, api.Allowed("d.doc"))
	assert.False(t, api.Allowed("noext"))
}
