package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"monitor-srv/internal/model"
	"monitor-srv/internal/monitor"
	"monitor-srv/pkg/log"
)

type mockUseCase struct {
	registerInput monitor.RegisterTriggerInput
	registerScope model.Scope
	registerErr   error

	deactivatedID string
	deactivateErr error

	processInput monitor.ProcessAccountListInput
	processErr   error

	started bool
	stopped bool
}

func (m *mockUseCase) Start(ctx context.Context) error {
	m.started = true
	return nil
}

func (m *mockUseCase) Stop(ctx context.Context) error {
	m.stopped = true
	return nil
}

func (m *mockUseCase) RegisterTrigger(ctx context.Context, sc model.Scope, ip monitor.RegisterTriggerInput) (model.Trigger, error) {
	m.registerScope = sc
	m.registerInput = ip
	if m.registerErr != nil {
		return model.Trigger{}, m.registerErr
	}
	return model.Trigger{ID: "trig-1", OrgID: sc.OrgID, Name: ip.Name}, nil
}

func (m *mockUseCase) ListTriggers(ctx context.Context, sc model.Scope) ([]model.Trigger, error) {
	return nil, nil
}

func (m *mockUseCase) DeactivateTrigger(ctx context.Context, sc model.Scope, id string) error {
	m.deactivatedID = id
	return m.deactivateErr
}

func (m *mockUseCase) GetAlerts(ctx context.Context, sc model.Scope, ip monitor.GetAlertsInput) (monitor.GetAlertsOutput, error) {
	return monitor.GetAlertsOutput{}, nil
}

func (m *mockUseCase) AcknowledgeAlert(ctx context.Context, sc model.Scope, id string) error {
	return nil
}

func (m *mockUseCase) RecordAlertAction(ctx context.Context, sc model.Scope, ip monitor.RecordAlertActionInput) error {
	return nil
}

func (m *mockUseCase) Dashboard(ctx context.Context, sc model.Scope) (monitor.DashboardOutput, error) {
	return monitor.DashboardOutput{}, nil
}

func (m *mockUseCase) Digest(ctx context.Context, sc model.Scope) error {
	return nil
}

func (m *mockUseCase) ProcessAccountList(ctx context.Context, sc model.Scope, ip monitor.ProcessAccountListInput) (monitor.ProcessAccountListOutput, error) {
	m.processInput = ip
	if m.processErr != nil {
		return monitor.ProcessAccountListOutput{}, m.processErr
	}
	return monitor.ProcessAccountListOutput{}, nil
}

func setupRouter(uc monitor.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := log.Init(log.ZapConfig{Level: "error", Mode: "production", Encoding: "json"})

	r := gin.New()
	MapMonitorRoutes(r.Group("/api/v1/monitor"), New(l, uc))
	return r
}

func doJSON(r *gin.Engine, method, path string, headers map[string]string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func orgHeaders() map[string]string {
	return map[string]string{"X-Org-ID": "org-1", "X-User-ID": "u1"}
}

func TestRegisterTriggerEndpoint(t *testing.T) {
	uc := &mockUseCase{}
	r := setupRouter(uc)

	body := map[string]any{
		"name": "pricing spike",
		"conditions": []map[string]any{
			{"field": "pricing_page_visits", "operator": "increases_by", "threshold": 20, "window": "24h"},
		},
		"actions":  []map[string]any{{"type": "notify_team"}},
		"priority": "high",
	}
	w := doJSON(r, http.MethodPost, "/api/v1/monitor/triggers", orgHeaders(), body)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if uc.registerScope.OrgID != "org-1" || uc.registerScope.UserID != "u1" {
		t.Errorf("scope = %+v", uc.registerScope)
	}
	ip := uc.registerInput
	if len(ip.Conditions) != 1 || ip.Conditions[0].Window.Hours() != 24 {
		t.Errorf("conditions = %+v, want parsed 24h window", ip.Conditions)
	}
	if ip.Conditions[0].Operator != model.OperatorIncreasesBy {
		t.Errorf("operator = %s", ip.Conditions[0].Operator)
	}
}

func TestRegisterTriggerMissingOrg(t *testing.T) {
	uc := &mockUseCase{}
	r := setupRouter(uc)

	w := doJSON(r, http.MethodPost, "/api/v1/monitor/triggers", nil, map[string]any{"name": "x"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 without X-Org-ID", w.Code)
	}
	if uc.registerInput.Name != "" {
		t.Error("usecase reached despite missing scope")
	}
}

func TestRegisterTriggerBadWindow(t *testing.T) {
	uc := &mockUseCase{}
	r := setupRouter(uc)

	body := map[string]any{
		"name": "bad window",
		"conditions": []map[string]any{
			{"field": "velocity", "operator": "increases_by", "threshold": 5, "window": "yesterday"},
		},
	}
	w := doJSON(r, http.MethodPost, "/api/v1/monitor/triggers", orgHeaders(), body)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for an unparseable window", w.Code)
	}
}

func TestRegisterTriggerValidationErrorCode(t *testing.T) {
	uc := &mockUseCase{registerErr: monitor.ErrInvalidCondition}
	r := setupRouter(uc)

	body := map[string]any{
		"name":       "bad",
		"conditions": []map[string]any{{"field": "velocity", "operator": "greater_than"}},
	}
	w := doJSON(r, http.MethodPost, "/api/v1/monitor/triggers", orgHeaders(), body)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var resp struct {
		ErrorCode int `json:"error_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.ErrorCode == 0 {
		t.Errorf("body = %s, want a mapped error code", w.Body.String())
	}
}

func TestDeactivateTriggerNotFound(t *testing.T) {
	uc := &mockUseCase{deactivateErr: monitor.ErrTriggerNotFound}
	r := setupRouter(uc)

	w := doJSON(r, http.MethodPatch, "/api/v1/monitor/triggers/trig-404/deactivate", orgHeaders(), nil)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if uc.deactivatedID != "trig-404" {
		t.Errorf("deactivated id = %q", uc.deactivatedID)
	}
}

func TestSchedulerEndpoints(t *testing.T) {
	uc := &mockUseCase{}
	r := setupRouter(uc)

	if w := doJSON(r, http.MethodPost, "/api/v1/monitor/scheduler/start", nil, nil); w.Code != http.StatusOK {
		t.Fatalf("start status = %d", w.Code)
	}
	if w := doJSON(r, http.MethodPost, "/api/v1/monitor/scheduler/stop", nil, nil); w.Code != http.StatusOK {
		t.Fatalf("stop status = %d", w.Code)
	}
	if !uc.started || !uc.stopped {
		t.Errorf("started = %v stopped = %v", uc.started, uc.stopped)
	}
}

func TestProcessAccountsEndpoint(t *testing.T) {
	uc := &mockUseCase{}
	r := setupRouter(uc)

	body := map[string]any{
		"accounts": []map[string]any{
			{"id": "acc-1", "name": "Acme", "domain": "acme.io"},
		},
	}
	w := doJSON(r, http.MethodPost, "/api/v1/monitor/accounts/process", orgHeaders(), body)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if len(uc.processInput.Accounts) != 1 || uc.processInput.Accounts[0].Domain != "acme.io" {
		t.Errorf("input = %+v", uc.processInput)
	}
}
