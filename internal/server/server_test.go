package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/streamlens/profit-forecast/pkg/constants"
	"go.uber.org/zap"
)

const testConfigYAML = `---
assumptions:
  monthlyActiveUsers: 1000000
  dailyActivePercent: 20
  uploadPercent: 5
  videoLengthSeconds: 30
  subscriptionPrice: 7.99
  subscriptionPercent: 2.0
  adRpm: 0.10
  dataConsumptionGb: 0.7
scenarios:
  - name: growth
    active: true
    assumptions:
      monthlyActiveUsers: 5000000
`

func TestHandleEstimateSuccess(t *testing.T) {
	handler := NewHandler(zap.NewNop(), constants.DefaultMaxUploadSizeBytes, "test")

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", "config.yaml")
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write([]byte(testConfigYAML)); err != nil {
		t.Fatalf("failed to write form data: %v", err)
	}

	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/estimate", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp estimateResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(resp.Scenarios) != 2 {
		t.Fatalf("got scenarios %v, expected baseline and growth", resp.Scenarios)
	}
	if resp.Scenarios[0] != constants.BaselineScenarioName || resp.Scenarios[1] != "growth" {
		t.Errorf("unexpected scenario names: %v", resp.Scenarios)
	}
	if len(resp.Reports) != 2 {
		t.Fatalf("got %d reports, expected 2", len(resp.Reports))
	}
	if resp.Reports[0].Report.SubscriptionRevenue != 159800.0 {
		t.Errorf("baseline subscription revenue = %v, expected 159800", resp.Reports[0].Report.SubscriptionRevenue)
	}
	if len(resp.Reports[0].Metrics) == 0 {
		t.Errorf("expected formatted metrics in the response")
	}
	if resp.CSV == "" {
		t.Errorf("expected CSV in the response")
	}
	if resp.ConfigYAML == "" {
		t.Errorf("expected the submitted config to be echoed back")
	}
}

func TestHandleEstimateMissingFile(t *testing.T) {
	handler := NewHandler(zap.NewNop(), constants.DefaultMaxUploadSizeBytes, "test")

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/estimate", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
}

func TestHandleEstimateMethodNotAllowed(t *testing.T) {
	handler := NewHandler(zap.NewNop(), constants.DefaultMaxUploadSizeBytes, "test")

	req := httptest.NewRequest(http.MethodGet, "/api/estimate", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rr.Code)
	}
}

func TestHandleEstimateEditor(t *testing.T) {
	handler := NewHandler(zap.NewNop(), constants.DefaultMaxUploadSizeBytes, "test")

	payload := map[string]interface{}{
		"config": map[string]interface{}{
			"assumptions": map[string]interface{}{
				"monthlyActiveUsers":  1000000,
				"dailyActivePercent":  20,
				"uploadPercent":       5,
				"videoLengthSeconds":  30,
				"subscriptionPrice":   7.99,
				"subscriptionPercent": 2.0,
				"adRpm":               0.10,
				"dataConsumptionGb":   0.7,
			},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/editor/estimate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp estimateResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(resp.Reports) != 1 {
		t.Fatalf("got %d reports, expected baseline only", len(resp.Reports))
	}
	report := resp.Reports[0].Report
	if report.SubscriptionRevenue != 159800.0 {
		t.Errorf("subscription revenue = %v, expected 159800", report.SubscriptionRevenue)
	}
	if !report.AdEligible {
		t.Errorf("fixture configuration should be ad eligible")
	}
	if !strings.Contains(report.AdEligibilityMessage, "eligible for AdSense") {
		t.Errorf("unexpected eligibility message: %q", report.AdEligibilityMessage)
	}
}

func TestHandleEstimateEditorInvalidPayloads(t *testing.T) {
	handler := NewHandler(zap.NewNop(), constants.DefaultMaxUploadSizeBytes, "test")

	tests := []struct {
		name string
		body string
	}{
		{"not JSON", "not json"},
		{"config not an object", `{"config": "scalar"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/editor/estimate", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", rr.Code)
			}
		})
	}
}

func TestHandleConfigExportOrdering(t *testing.T) {
	handler := NewHandler(zap.NewNop(), constants.DefaultMaxUploadSizeBytes, "test")

	payload := map[string]interface{}{
		"output":      map[string]interface{}{"format": "csv"},
		"assumptions": map[string]interface{}{"monthlyActiveUsers": 1000000},
		"pricing":     map[string]interface{}{"storagePricePerGbMonth": 0.02},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/editor/export", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	yamlText := resp["configYaml"]
	assumptionsIdx := strings.Index(yamlText, "assumptions:")
	pricingIdx := strings.Index(yamlText, "pricing:")
	outputIdx := strings.Index(yamlText, "output:")
	if assumptionsIdx == -1 || pricingIdx == -1 || outputIdx == -1 {
		t.Fatalf("exported YAML missing sections:\n%s", yamlText)
	}
	if !(assumptionsIdx < pricingIdx && pricingIdx < outputIdx) {
		t.Errorf("exported YAML sections out of order:\n%s", yamlText)
	}
}

func TestHandleBounds(t *testing.T) {
	handler := NewHandler(zap.NewNop(), constants.DefaultMaxUploadSizeBytes, "test")

	req := httptest.NewRequest(http.MethodGet, "/api/bounds", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	var resp struct {
		Parameters []struct {
			Name    string  `json:"name"`
			Min     float64 `json:"min"`
			Max     float64 `json:"max"`
			Step    float64 `json:"step"`
			Default float64 `json:"default"`
		} `json:"parameters"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(resp.Parameters) != 8 {
		t.Fatalf("got %d parameters, expected 8", len(resp.Parameters))
	}
	if resp.Parameters[0].Name != "monthlyActiveUsers" || resp.Parameters[0].Max != 20000000 {
		t.Errorf("unexpected first parameter: %+v", resp.Parameters[0])
	}
}

func TestHandleVersion(t *testing.T) {
	handler := NewHandler(zap.NewNop(), constants.DefaultMaxUploadSizeBytes, "v1.2.3")

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["version"] != "v1.2.3" {
		t.Errorf("version = %q, expected v1.2.3", resp["version"])
	}
}

func TestNewHandlerDefaults(t *testing.T) {
	// Nil logger and non-positive upload size fall back to safe defaults.
	handler := NewHandler(nil, 0, "  ")

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["version"] != "dev" {
		t.Errorf("version = %q, expected dev fallback", resp["version"])
	}
}
