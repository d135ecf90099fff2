package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-petr/pet-invest/pkg/configpkg"
	"github.com/go-petr/pet-invest/pkg/randompkg"
	"github.com/go-petr/pet-invest/pkg/tokenpkg"
	"github.com/go-petr/pet-invest/pkg/web"
	"github.com/google/uuid"
)

func newMaker(t *testing.T, tokenType string) tokenpkg.Maker {
	t.Helper()

	key := randompkg.String(32)

	maker, err := tokenpkg.NewMaker(tokenType, key)
	if err != nil {
		t.Fatalf("tokenpkg.NewMaker(%q, %q) returned error: %v", tokenType, key, err)
	}

	return maker
}

func bearer(t *testing.T, maker tokenpkg.Maker, scheme string, userID uuid.UUID, d time.Duration) string {
	t.Helper()

	token, _, err := maker.CreateToken(userID, d)
	if err != nil {
		t.Fatalf("maker.CreateToken(%v, %v) returned error: %v", userID, d, err)
	}

	return scheme + " " + token
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.ReleaseMode)

	for _, tokenType := range []string{configpkg.TokenPaseto, configpkg.TokenJWT} {
		tokenType := tokenType

		t.Run(tokenType, func(t *testing.T) {
			maker := newMaker(t, tokenType)
			foreign := newMaker(t, tokenType)
			investorID := uuid.New()

			testCases := []struct {
				name           string
				header         func(t *testing.T) string
				wantStatusCode int
				wantError      string
			}{
				{
					name:           "MissingHeader",
					header:         func(t *testing.T) string { return "" },
					wantStatusCode: http.StatusUnauthorized,
					wantError:      ErrAuthHeaderNotFound.Error(),
				},
				{
					name:           "TokenWithoutScheme",
					header:         func(t *testing.T) string { return bearer(t, maker, "", investorID, time.Minute) },
					wantStatusCode: http.StatusUnauthorized,
					wantError:      ErrBadAuthHeaderFormat.Error(),
				},
				{
					name:           "BasicScheme",
					header:         func(t *testing.T) string { return "Basic aW52ZXN0b3I6c2VjcmV0" },
					wantStatusCode: http.StatusUnauthorized,
					wantError:      ErrUnsupportedAuthType.Error(),
				},
				{
					name:           "ExpiredToken",
					header:         func(t *testing.T) string { return bearer(t, maker, AuthTypeBearer, investorID, -time.Minute) },
					wantStatusCode: http.StatusUnauthorized,
					wantError:      tokenpkg.ErrExpiredToken.Error(),
				},
				{
					name:           "SignedWithAnotherKey",
					header:         func(t *testing.T) string { return bearer(t, foreign, AuthTypeBearer, investorID, time.Minute) },
					wantStatusCode: http.StatusUnauthorized,
					wantError:      tokenpkg.ErrInvalidToken.Error(),
				},
				{
					name:           "CapitalizedScheme",
					header:         func(t *testing.T) string { return bearer(t, maker, "Bearer", investorID, time.Minute) },
					wantStatusCode: http.StatusOK,
				},
				{
					name:           "OK",
					header:         func(t *testing.T) string { return bearer(t, maker, AuthTypeBearer, investorID, time.Minute) },
					wantStatusCode: http.StatusOK,
				},
			}

			for i := range testCases {
				tc := testCases[i]

				t.Run(tc.name, func(t *testing.T) {
					reached := false

					engine := gin.New()
					engine.GET("/portfolio/summary", AuthMiddleware(maker), func(gctx *gin.Context) {
						reached = true

						payload, ok := gctx.MustGet(AuthPayloadKey).(*tokenpkg.Payload)
						if !ok || payload.UserID != investorID {
							t.Errorf("payload = %+v, want user %v", payload, investorID)
						}

						gctx.JSON(http.StatusOK, web.Response{})
					})

					req, err := http.NewRequest(http.MethodGet, "/portfolio/summary", nil)
					if err != nil {
						t.Fatalf("http.NewRequest returned error: %v", err)
					}

					if h := tc.header(t); h != "" {
						req.Header.Set(AuthHeaderKey, h)
					}

					w := httptest.NewRecorder()
					engine.ServeHTTP(w, req)

					if w.Code != tc.wantStatusCode {
						t.Errorf("status = %v, want %v", w.Code, tc.wantStatusCode)
					}

					if reached != (tc.wantStatusCode == http.StatusOK) {
						t.Errorf("handler reached = %v, want %v", reached, !reached)
					}

					var res web.Response
					if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
						t.Fatalf("Decoding response body error: %v", err)
					}

					if res.Error != tc.wantError {
						t.Errorf("res.Error = %q, want %q", res.Error, tc.wantError)
					}
				})
			}
		})
	}
}

func TestAddAuthorization(t *testing.T) {
	maker := newMaker(t, configpkg.TokenPaseto)
	userID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/wallet", nil)
	if err := AddAuthorization(req, maker, AuthTypeBearer, userID, time.Minute); err != nil {
		t.Fatalf("AddAuthorization returned error: %v", err)
	}

	header := req.Header.Get(AuthHeaderKey)
	if len(header) <= len(AuthTypeBearer)+1 || header[:len(AuthTypeBearer)+1] != AuthTypeBearer+" " {
		t.Fatalf("header = %q, want %q prefix", header, AuthTypeBearer+" ")
	}

	payload, err := maker.VerifyToken(header[len(AuthTypeBearer)+1:])
	if err != nil {
		t.Fatalf("maker.VerifyToken returned error: %v", err)
	}

	if payload.UserID != userID {
		t.Errorf("payload.UserID = %v, want %v", payload.UserID, userID)
	}
}
