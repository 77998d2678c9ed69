package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/team-telnyx/netbox/netboxd/auth"
	"github.com/team-telnyx/netbox/netboxd/circuit"
	"github.com/team-telnyx/netbox/netboxd/components"
)

const swapTestCircuitID = "f219ec59-cda7-4c7c-a57b-84ca3f063c39"

func testGetCircuit(circuitID string) (components.Circuit, error) {
	if circuitID != swapTestCircuitID {
		return components.Circuit{}, errors.New("circuit not found") //nolint:err113
	}

	return components.Circuit{
		ID:  swapTestCircuitID,
		CID: "NTT-DFW-0001",
		TerminationA: &components.Termination{
			Side:     "A",
			SiteName: "DFW1",
		},
		TerminationZ: &components.Termination{
			Side:     "Z",
			SiteName: "AUS1",
		},
	}, nil
}

func setupTestChecker() {
	SetAuthChecker(auth.NewStaticChecker(map[string][]string{
		"ops-token":      {auth.CapChangeTermination},
		"readonly-token": {},
	}))
}

//nolint:funlen
func TestSwapHandler(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		target       string
		token        string
		form         url.Values
		swapErr      error
		wantStatus   int
		wantSwapped  bool
		wantLocation string
	}{
		{
			name:        "GetServesConfirmation",
			method:      http.MethodGet,
			target:      "/circuit/" + swapTestCircuitID + "/terminations/swap",
			token:       "ops-token",
			wantStatus:  http.StatusOK,
			wantSwapped: false,
		},
		{
			name:        "GetForbiddenWithoutToken",
			method:      http.MethodGet,
			target:      "/circuit/" + swapTestCircuitID + "/terminations/swap",
			wantStatus:  http.StatusForbidden,
			wantSwapped: false,
		},
		{
			name:        "PostForbiddenWithoutCapability",
			method:      http.MethodPost,
			target:      "/circuit/" + swapTestCircuitID + "/terminations/swap",
			token:       "readonly-token",
			form:        url.Values{"confirm": {"true"}},
			wantStatus:  http.StatusForbidden,
			wantSwapped: false,
		},
		{
			name:        "PostWithoutConfirmReRenders",
			method:      http.MethodPost,
			target:      "/circuit/" + swapTestCircuitID + "/terminations/swap",
			token:       "ops-token",
			form:        url.Values{},
			wantStatus:  http.StatusOK,
			wantSwapped: false,
		},
		{
			name:         "PostConfirmSwapsAndRedirects",
			method:       http.MethodPost,
			target:       "/circuit/" + swapTestCircuitID + "/terminations/swap",
			token:        "ops-token",
			form:         url.Values{"confirm": {"true"}},
			wantStatus:   http.StatusSeeOther,
			wantSwapped:  true,
			wantLocation: "/circuit/" + swapTestCircuitID,
		},
		{
			name:         "PostNoTerminationsRedirectsWithMessage",
			method:       http.MethodPost,
			target:       "/circuit/" + swapTestCircuitID + "/terminations/swap",
			token:        "ops-token",
			form:         url.Values{"confirm": {"true"}},
			swapErr:      circuit.ErrNoTerminations,
			wantStatus:   http.StatusSeeOther,
			wantSwapped:  true,
			wantLocation: "/circuit/" + swapTestCircuitID,
		},
		{
			name:        "PostSwapErrorServes500",
			method:      http.MethodPost,
			target:      "/circuit/" + swapTestCircuitID + "/terminations/swap",
			token:       "ops-token",
			form:        url.Values{"confirm": {"true"}},
			swapErr:     circuit.ErrTerminationInternalDB,
			wantStatus:  http.StatusInternalServerError,
			wantSwapped: true,
		},
		{
			name:        "UnknownCircuit404",
			method:      http.MethodGet,
			target:      "/circuit/nosuch/terminations/swap",
			token:       "ops-token",
			wantStatus:  http.StatusNotFound,
			wantSwapped: false,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			setupTestChecker()

			swapCalled := false

			handler := SwapHandler{
				GetCircuit: testGetCircuit,
				Swap: func(circuitID string) error {
					swapCalled = true

					if circuitID != swapTestCircuitID {
						t.Errorf("Swap() called with circuitID %v", circuitID)
					}

					return testCase.swapErr
				},
			}

			var request *http.Request

			if testCase.form != nil {
				request = httptest.NewRequest(testCase.method, testCase.target,
					strings.NewReader(testCase.form.Encode()))
				request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			} else {
				request = httptest.NewRequest(testCase.method, testCase.target, nil)
			}

			if testCase.token != "" {
				request.Header.Set("Authorization", "Bearer "+testCase.token)
			}

			mux := http.NewServeMux()
			mux.Handle("/circuit/{id}/terminations/swap", handler)

			recorder := httptest.NewRecorder()
			mux.ServeHTTP(recorder, request)

			if recorder.Code != testCase.wantStatus {
				t.Errorf("status = %v, want %v", recorder.Code, testCase.wantStatus)
			}

			if swapCalled != testCase.wantSwapped {
				t.Errorf("swap called = %v, want %v", swapCalled, testCase.wantSwapped)
			}

			if testCase.wantLocation != "" {
				location := recorder.Header().Get("Location")
				if location != testCase.wantLocation {
					t.Errorf("Location = %v, want %v", location, testCase.wantLocation)
				}
			}
		})
	}
}

func TestSwapHandlerConfirmationPageContent(t *testing.T) {
	setupTestChecker()

	handler := SwapHandler{
		GetCircuit: testGetCircuit,
		Swap: func(_ string) error {
			t.Error("swap must not run on GET")

			return nil
		},
	}

	request := httptest.NewRequest(http.MethodGet, "/circuit/"+swapTestCircuitID+"/terminations/swap", nil)
	request.SetPathValue("id", swapTestCircuitID)
	request.Header.Set("Authorization", "Bearer ops-token")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	body := recorder.Body.String()
	if !strings.Contains(body, "NTT-DFW-0001") {
		t.Errorf("confirmation page does not mention the circuit: %v", body)
	}

	if !strings.Contains(body, "confirm") {
		t.Errorf("confirmation page has no confirm field: %v", body)
	}
}
