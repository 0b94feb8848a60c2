package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	provisioningdomain "github.com/julinemart/vendorid/internal/provisioning/domain"
	vendordomain "github.com/julinemart/vendorid/internal/vendors/domain"
)

type fakeProvisioningService struct {
	called bool
	result *provisioningdomain.Result
	err    error
}

func (f *fakeProvisioningService) Provision(ctx context.Context, req provisioningdomain.Request) (*provisioningdomain.Result, error) {
	f.called = true
	_ = ctx
	_ = req
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func newProvisionRouter(svc provisioningdomain.Service) http.Handler {
	gin.SetMode(gin.TestMode)
	srv := &Server{provisioningsvc: svc}

	router := NewEngine()
	router.POST("/api/vendors/provision", srv.ProvisionVendor)
	return router
}

func TestProvisionHandlerMissingFieldsReturns400(t *testing.T) {
	svc := &fakeProvisioningService{}
	router := newProvisionRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/vendors/provision",
		bytes.NewBufferString(`{"vendor_code":"ABC","vendor_name":"Acme Co"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	if svc.called {
		t.Fatal("expected provisioning service not to be called on invalid input")
	}
}

func TestProvisionHandlerSuccess(t *testing.T) {
	svc := &fakeProvisioningService{
		result: &provisioningdomain.Result{
			VendorCode:  "ABC",
			VendorName:  "Acme Co",
			Email:       "owner@acme.com",
			IsNewVendor: true,
			AuthCreated: true,
			EmailSent:   true,
			UserID:      "user-1",
			RedirectURL: "https://sku-test.netlify.app/vendor/index.html",
		},
	}
	router := newProvisionRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/vendors/provision",
		bytes.NewBufferString(`{"vendor_code":"abc","vendor_name":"Acme Co","email":"Owner@Acme.com"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var payload ProvisionResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !payload.Success {
		t.Fatal("expected success to be true")
	}
	if payload.VendorCode != "ABC" || payload.Email != "owner@acme.com" {
		t.Fatalf("unexpected normalization: %+v", payload)
	}
	if !payload.AuthCreated || !payload.EmailSent {
		t.Fatalf("unexpected auth flags: %+v", payload)
	}
	if payload.Message != "Invitation email sent to owner@acme.com" {
		t.Fatalf("unexpected message: %q", payload.Message)
	}
}

func TestProvisionHandlerPartialSuccessMessage(t *testing.T) {
	svc := &fakeProvisioningService{
		result: &provisioningdomain.Result{
			VendorCode:  "ABC",
			IsNewVendor: true,
			AuthCreated: true,
			EmailSent:   false,
		},
	}
	router := newProvisionRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/vendors/provision",
		bytes.NewBufferString(`{"vendor_code":"ABC","vendor_name":"Acme Co","email":"owner@acme.com"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var payload ProvisionResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.EmailSent {
		t.Fatal("expected emailSent to be false")
	}
	if payload.Message != "Auth created but email failed - check email configuration" {
		t.Fatalf("unexpected message: %q", payload.Message)
	}
}

func TestProvisionHandlerFatalStoreErrorReturns500(t *testing.T) {
	svc := &fakeProvisioningService{err: errors.New("connection refused")}
	router := newProvisionRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/vendors/provision",
		bytes.NewBufferString(`{"vendor_code":"ABC","vendor_name":"Acme Co","email":"owner@acme.com"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.Code)
	}
	if !bytes.Contains(resp.Body.Bytes(), []byte("connection refused")) {
		t.Fatalf("expected underlying error message in response, got %s", resp.Body.String())
	}
}

func TestProvisionHandlerRejectsNonPost(t *testing.T) {
	router := newProvisionRouter(&fakeProvisioningService{})

	req := httptest.NewRequest(http.MethodGet, "/api/vendors/provision", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", resp.Code)
	}
}

func TestProvisionHandlerAnswersPreflight(t *testing.T) {
	router := newProvisionRouter(&fakeProvisioningService{})

	req := httptest.NewRequest(http.MethodOptions, "/api/vendors/provision", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}
	if resp.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Fatal("expected CORS headers on preflight response")
	}
}

func TestProvisionHandlerValidationFromOrchestrator(t *testing.T) {
	svc := &fakeProvisioningService{err: vendordomain.ErrInvalidEmail}
	router := newProvisionRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/vendors/provision",
		bytes.NewBufferString(`{"vendor_code":"ABC","vendor_name":"Acme Co","email":"nomail"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}
