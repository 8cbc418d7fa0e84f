package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/avaheights/society-portal/internal/api/handlers"
	"github.com/avaheights/society-portal/internal/api/middleware"
	"github.com/avaheights/society-portal/internal/domain/entities"
	apperrors "github.com/avaheights/society-portal/pkg/errors"
)

type stubServiceRequestService struct {
	submitted []*entities.ServiceRequest
	requests  []*entities.ServiceRequest
	handled   []string
	markErr   error
}

func (s *stubServiceRequestService) Submit(ctx context.Context, request *entities.ServiceRequest) error {
	if request.ID == "" {
		request.ID = "service-test"
	}
	s.submitted = append(s.submitted, request)
	return nil
}

func (s *stubServiceRequestService) List(ctx context.Context) ([]*entities.ServiceRequest, error) {
	return s.requests, nil
}

func (s *stubServiceRequestService) MarkHandled(ctx context.Context, id string) error {
	if s.markErr != nil {
		return s.markErr
	}
	s.handled = append(s.handled, id)
	return nil
}

func asTenant(req *http.Request) *http.Request {
	identity := &entities.Identity{ID: "user-1", Username: "ramesh", Role: entities.RoleTenant}
	return req.WithContext(middleware.ContextWithIdentity(req.Context(), identity))
}

func TestServiceRequestHandler_SubmitRequest_Success(t *testing.T) {
	service := &stubServiceRequestService{}
	handler := handlers.NewServiceRequestHandler(service)

	body := `{"flat_number":"A-101","service_type":"plumbing","date":"2023-06-15","time_slot":"10:00-12:00"}`
	req := asTenant(httptest.NewRequest("POST", "/api/service-requests", strings.NewReader(body)))
	w := httptest.NewRecorder()

	handler.SubmitRequest(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, service.submitted, 1)

	submitted := service.submitted[0]
	assert.Equal(t, "A-101", submitted.FlatNumber)
	assert.Equal(t, time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC), submitted.Date)

	// The requester comes from the session, not the payload
	assert.Equal(t, "ramesh", submitted.RequestedBy)
}

func TestServiceRequestHandler_SubmitRequest_Validation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing flat_number", `{"service_type":"plumbing","date":"2023-06-15","time_slot":"10:00-12:00"}`},
		{"missing service_type", `{"flat_number":"A-101","date":"2023-06-15","time_slot":"10:00-12:00"}`},
		{"missing date", `{"flat_number":"A-101","service_type":"plumbing","time_slot":"10:00-12:00"}`},
		{"missing time_slot", `{"flat_number":"A-101","service_type":"plumbing","date":"2023-06-15"}`},
		{"bad date", `{"flat_number":"A-101","service_type":"plumbing","date":"15/06/2023","time_slot":"10:00-12:00"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			service := &stubServiceRequestService{}
			handler := handlers.NewServiceRequestHandler(service)

			req := asTenant(httptest.NewRequest("POST", "/api/service-requests", strings.NewReader(tc.body)))
			w := httptest.NewRecorder()

			handler.SubmitRequest(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(t, service.submitted)
		})
	}
}

func TestServiceRequestHandler_ListRequests(t *testing.T) {
	service := &stubServiceRequestService{requests: []*entities.ServiceRequest{
		{ID: "service-2", FlatNumber: "B-204"},
		{ID: "service-1", FlatNumber: "A-101"},
	}}
	handler := handlers.NewServiceRequestHandler(service)

	req := httptest.NewRequest("GET", "/api/service-requests", nil)
	w := httptest.NewRecorder()

	handler.ListRequests(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		ServiceRequests []entities.ServiceRequest `json:"service_requests"`
		Count           int                       `json:"count"`
	}
	err := json.NewDecoder(w.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, 2, response.Count)
}

func TestServiceRequestHandler_MarkHandled_Success(t *testing.T) {
	service := &stubServiceRequestService{}
	handler := handlers.NewServiceRequestHandler(service)

	req := httptest.NewRequest("POST", "/api/service-requests/service-1/handled", nil)
	req.SetPathValue("id", "service-1")
	w := httptest.NewRecorder()

	handler.MarkHandled(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"service-1"}, service.handled)

	var response map[string]string
	err := json.NewDecoder(w.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "handled", response["status"])
}

func TestServiceRequestHandler_MarkHandled_UnknownID(t *testing.T) {
	service := &stubServiceRequestService{markErr: apperrors.NewNotFoundError("no record with id service-404")}
	handler := handlers.NewServiceRequestHandler(service)

	req := httptest.NewRequest("POST", "/api/service-requests/service-404/handled", nil)
	req.SetPathValue("id", "service-404")
	w := httptest.NewRecorder()

	handler.MarkHandled(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
