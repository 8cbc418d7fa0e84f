package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avaheights/society-portal/internal/api/handlers"
	"github.com/avaheights/society-portal/internal/api/middleware"
	"github.com/avaheights/society-portal/internal/domain/entities"
)

type stubSessionService struct {
	current   *entities.Identity
	signOuts  int
	signInErr error
}

func (s *stubSessionService) SignIn(ctx context.Context, username string, role entities.Role) (*entities.Identity, error) {
	if s.signInErr != nil {
		return nil, s.signInErr
	}
	s.current = &entities.Identity{ID: "user-test", Username: username, Role: role}
	return s.current, nil
}

func (s *stubSessionService) SignOut(ctx context.Context) error {
	s.signOuts++
	s.current = nil
	return nil
}

func (s *stubSessionService) Current() *entities.Identity {
	return s.current
}

func TestAuthHandler_Login_Success(t *testing.T) {
	service := &stubSessionService{}
	handler := handlers.NewAuthHandler(service)

	body := `{"username":"ramesh","password":"secret","role":"tenant"}`
	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.Login(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		Token    string            `json:"token"`
		Identity entities.Identity `json:"identity"`
	}
	err := json.NewDecoder(w.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "user-test", response.Token)
	assert.Equal(t, response.Identity.ID, response.Token)
	assert.Equal(t, "ramesh", response.Identity.Username)
	assert.Equal(t, entities.RoleTenant, response.Identity.Role)
}

func TestAuthHandler_Login_Validation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing username", `{"password":"secret","role":"tenant"}`},
		{"blank username", `{"username":"   ","password":"secret","role":"tenant"}`},
		{"missing password", `{"username":"ramesh","role":"tenant"}`},
		{"unknown role", `{"username":"ramesh","password":"secret","role":"owner"}`},
		{"missing role", `{"username":"ramesh","password":"secret"}`},
		{"malformed json", `{"username":`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			service := &stubSessionService{}
			handler := handlers.NewAuthHandler(service)

			req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(tc.body))
			w := httptest.NewRecorder()

			handler.Login(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Nil(t, service.current)
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	service := &stubSessionService{current: &entities.Identity{ID: "user-test"}}
	handler := handlers.NewAuthHandler(service)

	req := httptest.NewRequest("POST", "/api/auth/logout", nil)
	w := httptest.NewRecorder()

	handler.Logout(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 1, service.signOuts)
	assert.Nil(t, service.current)
}

func TestAuthHandler_Session(t *testing.T) {
	identity := &entities.Identity{ID: "user-test", Username: "ramesh", Role: entities.RoleTenant}
	handler := handlers.NewAuthHandler(&stubSessionService{current: identity})

	req := httptest.NewRequest("GET", "/api/auth/session", nil)
	req = req.WithContext(middleware.ContextWithIdentity(req.Context(), identity))
	w := httptest.NewRecorder()

	handler.Session(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response entities.Identity
	err := json.NewDecoder(w.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "ramesh", response.Username)
}
