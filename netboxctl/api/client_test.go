package api

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
)

func pointClientAt(t *testing.T, ts *httptest.Server) {
	t.Helper()

	host, portStr, err := net.SplitHostPort(ts.Listener.Addr().String())
	if err != nil {
		t.Fatal(err)
	}

	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		t.Fatal(err)
	}

	ServerName = host
	ServerPort = uint16(port)
	ServerTimeout = 2
}

func TestGetCircuits(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path != "/api/circuits" {
			t.Errorf("unexpected path %v", request.URL.Path)
		}

		if request.URL.Query().Get("provider") != "ntt" {
			t.Errorf("unexpected provider filter %v", request.URL.Query().Get("provider"))
		}

		_ = json.NewEncoder(writer).Encode([]Circuit{
			{ID: "c1", CID: "NTT-DFW-0001", ProviderName: "NTT Communications"},
		})
	}))
	defer ts.Close()

	pointClientAt(t, ts)

	circuits, err := GetCircuits(context.Background(), "ntt", "")
	if err != nil {
		t.Fatalf("GetCircuits() error = %v", err)
	}

	if len(circuits) != 1 || circuits[0].CID != "NTT-DFW-0001" {
		t.Errorf("GetCircuits() = %+v", circuits)
	}
}

func TestSwapTerminations(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.Method != http.MethodPost {
			t.Errorf("unexpected method %v", request.Method)
		}

		if request.Header.Get("Authorization") != "Bearer ops-token" {
			writer.WriteHeader(http.StatusForbidden)

			return
		}

		_ = json.NewEncoder(writer).Encode(Circuit{
			ID:  "c1",
			CID: "NTT-DFW-0001",
			TerminationA: &Termination{
				Side:     "A",
				SiteName: "AUS1",
			},
			TerminationZ: &Termination{
				Side:     "Z",
				SiteName: "DFW1",
			},
		})
	}))
	defer ts.Close()

	pointClientAt(t, ts)

	Token = ""

	_, err := SwapTerminations(context.Background(), "c1")
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("SwapTerminations() without token error = %v, want %v", err, ErrForbidden)
	}

	Token = "ops-token"
	defer func() { Token = "" }()

	aCircuit, err := SwapTerminations(context.Background(), "c1")
	if err != nil {
		t.Fatalf("SwapTerminations() error = %v", err)
	}

	if aCircuit.TerminationA == nil || aCircuit.TerminationA.SiteName != "AUS1" {
		t.Errorf("SwapTerminations() = %+v", aCircuit)
	}
}

func TestSwapTerminationsConflict(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusConflict)
	}))
	defer ts.Close()

	pointClientAt(t, ts)

	Token = "ops-token"
	defer func() { Token = "" }()

	_, err := SwapTerminations(context.Background(), "c1")
	if !errors.Is(err, ErrNoTerminations) {
		t.Errorf("SwapTerminations() error = %v, want %v", err, ErrNoTerminations)
	}
}

func TestGetCircuitNotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	pointClientAt(t, ts)

	_, err := GetCircuit(context.Background(), "nosuch")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetCircuit() error = %v, want %v", err, ErrNotFound)
	}
}
