package investmentdelivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-petr/pet-invest/internal/domain"
	"github.com/go-petr/pet-invest/internal/middleware"
	"github.com/go-petr/pet-invest/pkg/errorspkg"
	"github.com/go-petr/pet-invest/pkg/web"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func setupServer(service Service, identity domain.Identity) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	h := NewHandler(service)
	server := gin.New()

	server.Use(func(gctx *gin.Context) {
		gctx.Set(middleware.IdentityKey, identity)
	})

	server.POST("/investments", h.Create)
	server.GET("/investments", h.List)
	server.GET("/investments/notifications", h.Notifications)
	server.GET("/investments/:id", h.Get)
	server.POST("/investments/:id/cancel", h.Cancel)
	server.POST("/investments/:id/read", h.MarkRead)

	return server
}

func decodeResponse(t *testing.T, recorder *httptest.ResponseRecorder) web.Response {
	t.Helper()

	var res web.Response
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&res))

	return res
}

func TestCreateAPI(t *testing.T) {
	identity := domain.Identity{UserID: uuid.New(), Balance: decimal.NewFromInt(10_000)}
	productID := uuid.New()

	result := domain.LedgerResult{
		Investment: domain.Investment{
			ID:             uuid.New(),
			UserID:         identity.UserID,
			ProductID:      productID,
			Amount:         decimal.NewFromInt(2000),
			ExpectedReturn: decimal.NewFromInt(2240),
			Status:         domain.StatusActive,
		},
		Balance: decimal.NewFromInt(8000),
	}

	testCases := []struct {
		name       string
		body       gin.H
		buildStubs func(service *MockService)
		wantCode   int
		wantError  string
	}{
		{
			name: "Created",
			body: gin.H{"product_id": productID.String(), "amount": "2000"},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Eq(identity), gomock.Eq(productID), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ any, _ domain.Identity, _ uuid.UUID, amount decimal.Decimal) (domain.LedgerResult, error) {
						require.True(t, decimal.NewFromInt(2000).Equal(amount))
						return result, nil
					})
			},
			wantCode: http.StatusCreated,
		},
		{
			name: "MissingProduct",
			body: gin.H{"amount": "2000"},
			buildStubs: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantCode:  http.StatusBadRequest,
			wantError: "ProductID field is required",
		},
		{
			name: "MalformedProductID",
			body: gin.H{"product_id": "42", "amount": "2000"},
			buildStubs: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantCode:  http.StatusBadRequest,
			wantError: "ProductID must be a valid uuid",
		},
		{
			name: "MalformedAmount",
			body: gin.H{"product_id": productID.String(), "amount": "two thousand"},
			buildStubs: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantCode:  http.StatusBadRequest,
			wantError: domain.ErrInvalidAmount.Error(),
		},
		{
			name: "AboveMaximum",
			body: gin.H{"product_id": productID.String(), "amount": "6000"},
			buildStubs: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(1).
					Return(domain.LedgerResult{}, domain.AboveMaximumError(decimal.NewFromInt(5000)))
			},
			wantCode:  http.StatusBadRequest,
			wantError: "amount above maximum investment: maximum is 5000.00",
		},
		{
			name: "ProductNotFound",
			body: gin.H{"product_id": productID.String(), "amount": "2000"},
			buildStubs: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(1).
					Return(domain.LedgerResult{}, domain.ErrProductNotFound)
			},
			wantCode:  http.StatusNotFound,
			wantError: domain.ErrProductNotFound.Error(),
		},
		{
			name: "TransactionFailed",
			body: gin.H{"product_id": productID.String(), "amount": "2000"},
			buildStubs: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(1).
					Return(domain.LedgerResult{}, domain.ErrTransactionFailed)
			},
			wantCode:  http.StatusServiceUnavailable,
			wantError: domain.ErrTransactionFailed.Error(),
		},
		{
			name: "InternalError",
			body: gin.H{"product_id": productID.String(), "amount": "2000"},
			buildStubs: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(1).
					Return(domain.LedgerResult{}, errorspkg.ErrInternal)
			},
			wantCode:  http.StatusInternalServerError,
			wantError: errorspkg.ErrInternal.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			tc.buildStubs(service)

			data, err := json.Marshal(tc.body)
			require.NoError(t, err)

			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodPost, "/investments", bytes.NewReader(data))

			setupServer(service, identity).ServeHTTP(recorder, request)

			require.Equal(t, tc.wantCode, recorder.Code)

			res := decodeResponse(t, recorder)
			require.Equal(t, tc.wantError, res.Error)

			if tc.wantCode == http.StatusCreated {
				require.NotNil(t, res.Data)
			}
		})
	}
}

func TestCancelAPI(t *testing.T) {
	identity := domain.Identity{UserID: uuid.New()}
	investmentID := uuid.New()

	testCases := []struct {
		name       string
		path       string
		buildStubs func(service *MockService)
		wantCode   int
	}{
		{
			name: "OK",
			path: "/investments/" + investmentID.String() + "/cancel",
			buildStubs: func(service *MockService) {
				service.EXPECT().Cancel(gomock.Any(), gomock.Eq(identity), gomock.Eq(investmentID)).Times(1).
					Return(domain.LedgerResult{Balance: decimal.NewFromInt(10_000)}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "MalformedID",
			path: "/investments/abc/cancel",
			buildStubs: func(service *MockService) {
				service.EXPECT().Cancel(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "NotFound",
			path: "/investments/" + investmentID.String() + "/cancel",
			buildStubs: func(service *MockService) {
				service.EXPECT().Cancel(gomock.Any(), gomock.Any(), gomock.Any()).Times(1).
					Return(domain.LedgerResult{}, domain.ErrInvestmentNotFound)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "AccessDenied",
			path: "/investments/" + investmentID.String() + "/cancel",
			buildStubs: func(service *MockService) {
				service.EXPECT().Cancel(gomock.Any(), gomock.Any(), gomock.Any()).Times(1).
					Return(domain.LedgerResult{}, domain.ErrAccessDenied)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "InvalidState",
			path: "/investments/" + investmentID.String() + "/cancel",
			buildStubs: func(service *MockService) {
				service.EXPECT().Cancel(gomock.Any(), gomock.Any(), gomock.Any()).Times(1).
					Return(domain.LedgerResult{}, domain.InvalidStateError(domain.StatusCancelled))
			},
			wantCode: http.StatusConflict,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			tc.buildStubs(service)

			recorder := httptest.NewRecorder()
			setupServer(service, identity).ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, tc.path, nil))

			require.Equal(t, tc.wantCode, recorder.Code)
		})
	}
}

func TestListAPI(t *testing.T) {
	identity := domain.Identity{UserID: uuid.New()}

	testCases := []struct {
		name       string
		query      string
		buildStubs func(service *MockService)
		wantCode   int
	}{
		{
			name:  "All",
			query: "",
			buildStubs: func(service *MockService) {
				service.EXPECT().List(gomock.Any(), gomock.Eq(identity), domain.InvestmentStatus(""), int32(0), int32(0)).
					Times(1).Return([]domain.Investment{}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:  "ActivePaged",
			query: "?status=active&limit=5&offset=10",
			buildStubs: func(service *MockService) {
				service.EXPECT().List(gomock.Any(), gomock.Any(), domain.StatusActive, int32(5), int32(10)).
					Times(1).Return([]domain.Investment{}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:  "UnknownStatus",
			query: "?status=pending",
			buildStubs: func(service *MockService) {
				service.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:  "LimitTooLarge",
			query: "?limit=1000",
			buildStubs: func(service *MockService) {
				service.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			tc.buildStubs(service)

			recorder := httptest.NewRecorder()
			setupServer(service, identity).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/investments"+tc.query, nil))

			require.Equal(t, tc.wantCode, recorder.Code)
		})
	}
}

func TestNotificationsAndMarkReadAPI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	identity := domain.Identity{UserID: uuid.New()}
	matured := domain.Investment{ID: uuid.New(), UserID: identity.UserID, Status: domain.StatusMatured}

	service := NewMockService(ctrl)
	service.EXPECT().Notifications(gomock.Any(), gomock.Eq(identity)).Times(1).Return([]domain.Investment{matured}, nil)
	service.EXPECT().MarkRead(gomock.Any(), gomock.Eq(identity), gomock.Eq(matured.ID)).Times(1).
		Return(domain.Investment{ID: matured.ID, NotificationRead: true}, nil)

	server := setupServer(service, identity)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/investments/notifications", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var list struct {
		Data []domain.Investment `json:"data"`
	}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&list))
	require.Len(t, list.Data, 1)
	require.Equal(t, matured.ID, list.Data[0].ID)

	recorder = httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/investments/"+matured.ID.String()+"/read", nil))
	require.Equal(t, http.StatusOK, recorder.Code)
}

func TestGetAPI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	identity := domain.Identity{UserID: uuid.New()}
	investmentID := uuid.New()

	service := NewMockService(ctrl)
	service.EXPECT().Get(gomock.Any(), gomock.Eq(identity), gomock.Eq(investmentID)).Times(1).
		Return(domain.Investment{}, domain.ErrAccessDenied)

	recorder := httptest.NewRecorder()
	setupServer(service, identity).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/investments/"+investmentID.String(), nil))

	require.Equal(t, http.StatusForbidden, recorder.Code)
	require.Equal(t, domain.ErrAccessDenied.Error(), decodeResponse(t, recorder).Error)
}
