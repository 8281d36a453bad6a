package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/solusi-cipta-media/taraje-hotel/internal/config"
	"github.com/solusi-cipta-media/taraje-hotel/internal/domain"
	"github.com/solusi-cipta-media/taraje-hotel/internal/store"
)

func newTestAPI() *API {
	st := store.New()
	store.Seed(st)
	return NewAPI(st, config.Env{JWTSecret: "test-secret"})
}

func postJSON(handler gin.HandlerFunc, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	handler(c)
	return w
}

func TestLoginStatusMapping(t *testing.T) {
	a := newTestAPI()

	ok := postJSON(a.Login, `{"email":"admin@barutaraje.com","password":"admin123"}`)
	if ok.Code != http.StatusOK {
		t.Fatalf("login valid = %d, harusnya 200: %s", ok.Code, ok.Body.String())
	}
	if !strings.Contains(ok.Body.String(), `"token"`) {
		t.Fatalf("response login tanpa token: %s", ok.Body.String())
	}

	// Kredensial salah selalu 401, bukan 400.
	bad := postJSON(a.Login, `{"email":"admin@barutaraje.com","password":"salah"}`)
	if bad.Code != http.StatusUnauthorized {
		t.Fatalf("password salah = %d, harusnya 401", bad.Code)
	}
	unknown := postJSON(a.Login, `{"email":"tidakada@barutaraje.com","password":"admin123"}`)
	if unknown.Code != http.StatusUnauthorized {
		t.Fatalf("email asing = %d, harusnya 401", unknown.Code)
	}
}

func TestRespondDomainErrorStatuses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err  error
		want int
	}{
		{domain.ValidationError{Msg: "salah"}, http.StatusBadRequest},
		{domain.NotFoundError{Resource: "booking"}, http.StatusNotFound},
		{domain.ReferentialError{Resource: "tamu", Dependent: "booking"}, http.StatusConflict},
		{domain.ConflictError{Resource: "kamar"}, http.StatusConflict},
		// Kegagalan internal (misal penandatanganan token) naik sebagai 500,
		// tidak ikut tersamar jadi 401.
		{domain.InternalError{Msg: "gagal membuat token"}, http.StatusInternalServerError},
	}
	for _, c := range cases {
		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		RespondDomainError(ctx, c.err)
		if w.Code != c.want {
			t.Fatalf("status untuk %T = %d, harusnya %d", c.err, w.Code, c.want)
		}
	}
}
