package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/team-telnyx/netbox/netboxd/circuit"
	"github.com/team-telnyx/netbox/netboxd/components"
)

func TestAPISwapHandler(t *testing.T) {
	tests := []struct {
		name       string
		circuitID  string
		token      string
		swapErr    error
		wantStatus int
	}{
		{
			name:       "Success",
			circuitID:  swapTestCircuitID,
			token:      "ops-token",
			wantStatus: http.StatusOK,
		},
		{
			name:       "Forbidden",
			circuitID:  swapTestCircuitID,
			token:      "readonly-token",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "NoToken",
			circuitID:  swapTestCircuitID,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "NoTerminationsConflict",
			circuitID:  swapTestCircuitID,
			token:      "ops-token",
			swapErr:    circuit.ErrNoTerminations,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "SwapErrorServes500",
			circuitID:  swapTestCircuitID,
			token:      "ops-token",
			swapErr:    circuit.ErrTerminationInternalDB,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "UnknownCircuit404",
			circuitID:  "nosuch",
			token:      "ops-token",
			wantStatus: http.StatusNotFound,
		},
		{
			// existence must not be observable without the capability
			name:       "UnknownCircuitNoToken403",
			circuitID:  "nosuch",
			wantStatus: http.StatusForbidden,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			setupTestChecker()

			handler := APISwapHandler{
				GetCircuit: testGetCircuit,
				Swap: func(_ string) error {
					return testCase.swapErr
				},
			}

			request := httptest.NewRequest(http.MethodPost,
				"/api/circuit/"+testCase.circuitID+"/terminations/swap", nil)
			request.SetPathValue("id", testCase.circuitID)

			if testCase.token != "" {
				request.Header.Set("Authorization", "Bearer "+testCase.token)
			}

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			if recorder.Code != testCase.wantStatus {
				t.Errorf("status = %v, want %v", recorder.Code, testCase.wantStatus)
			}

			if testCase.wantStatus == http.StatusOK {
				var got components.Circuit

				err := json.Unmarshal(recorder.Body.Bytes(), &got)
				if err != nil {
					t.Fatalf("error decoding response: %s", err)
				}

				if got.ID != swapTestCircuitID {
					t.Errorf("got circuit %v, want %v", got.ID, swapTestCircuitID)
				}
			}
		})
	}
}

func TestAPICircuitHandlerNotFound(t *testing.T) {
	handler := APICircuitHandler{
		GetCircuit: testGetCircuit,
	}

	request := httptest.NewRequest(http.MethodGet, "/api/circuit/nosuch", nil)
	request.SetPathValue("id", "nosuch")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusNotFound {
		t.Errorf("status = %v, want %v", recorder.Code, http.StatusNotFound)
	}
}
