package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"staffaudit/internal/logger"
	"staffaudit/internal/middleware"
	"staffaudit/internal/models"
	"staffaudit/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test", "error")
	validator.Register()
}

// --- mock audit service ---

type recordedAudit struct {
	action   models.AuditAction
	employee models.Employee
}

type mockAuditService struct {
	recordFn func(action models.AuditAction, employee *models.Employee) (*models.AuditLogEntry, error)
	calls    []recordedAudit
}

func (m *mockAuditService) Record(_ context.Context, action models.AuditAction, employee *models.Employee) (*models.AuditLogEntry, error) {
	m.calls = append(m.calls, recordedAudit{action: action, employee: *employee})
	if m.recordFn != nil {
		return m.recordFn(action, employee)
	}
	return &models.AuditLogEntry{RowKey: "row", PartitionKey: employee.Department, Action: action}, nil
}

// doRequest makes an HTTP request against the router and returns the recorder.
func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// assertErrorCode checks the error code in a JSON error body.
func assertErrorCode(t *testing.T, body map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := body["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object, got %v", body)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %s, got %v", code, errObj["code"])
	}
}

// newTestRouter wires the handler behind the same middleware as production.
func newTestRouter(handler *EmployeeHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	employees := r.Group("/employees")
	employees.GET("/:id", handler.GetEmployee)
	employees.POST("", handler.CreateEmployee)
	employees.PUT("/:id", handler.UpdateEmployee)
	employees.DELETE("/:id", handler.DeleteEmployee)
	return r
}
