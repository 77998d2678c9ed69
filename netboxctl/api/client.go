// Package api is the HTTP client for the netboxd JSON API.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

var ServerName = "localhost"
var ServerPort uint16 = 8000
var ServerTimeout uint64 = 5
var Token string

var ErrNotFound = errors.New("not found")
var ErrForbidden = errors.New("permission denied")
var ErrNoTerminations = errors.New("circuit has no terminations")
var ErrServer = errors.New("server error")

type Provider struct {
	ID           string
	Name         string
	Slug         string
	ASN          uint32
	Account      string
	PortalURL    string
	NocContact   string
	AdminContact string
	Comments     string
	CircuitCount int64
}

type CircuitType struct {
	ID           string
	Name         string
	Slug         string
	CircuitCount int64
}

type Termination struct {
	ID         string
	CircuitID  string
	Side       string
	SiteName   string
	PortSpeed  uint64
	XConnectID string
	PPInfo     string
}

type Circuit struct {
	ID           string
	CID          string
	ProviderID   string
	ProviderName string
	TypeID       string
	TypeName     string
	InstallDate  string
	CommitRate   uint64
	Comments     string
	TerminationA *Termination
	TerminationZ *Termination
}

func baseURL() string {
	return "http://" + net.JoinHostPort(ServerName, strconv.FormatUint(uint64(ServerPort), 10))
}

func httpClient() *http.Client {
	return &http.Client{
		Timeout: time.Duration(ServerTimeout) * time.Second,
	}
}

func statusToError(status int) error {
	switch status {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusConflict:
		return ErrNoTerminations
	default:
		return fmt.Errorf("%w: status %d", ErrServer, status)
	}
}

func doJSON(ctx context.Context, method string, path string, target interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, baseURL()+path, nil)
	if err != nil {
		return fmt.Errorf("error building request: %w", err)
	}

	if Token != "" {
		req.Header.Set("Authorization", "Bearer "+Token)
	}

	resp, err := httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("error talking to server: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return statusToError(resp.StatusCode)
	}

	if target == nil {
		return nil
	}

	err = json.NewDecoder(resp.Body).Decode(target)
	if err != nil {
		return fmt.Errorf("error decoding response: %w", err)
	}

	return nil
}

func GetProviders(ctx context.Context) ([]Provider, error) {
	var providers []Provider

	err := doJSON(ctx, http.MethodGet, "/api/providers", &providers)
	if err != nil {
		return nil, err
	}

	return providers, nil
}

func GetCircuitTypes(ctx context.Context) ([]CircuitType, error) {
	var circuitTypes []CircuitType

	err := doJSON(ctx, http.MethodGet, "/api/circuit-types", &circuitTypes)
	if err != nil {
		return nil, err
	}

	return circuitTypes, nil
}

// GetCircuits filters by provider and type slug, both optional.
func GetCircuits(ctx context.Context, providerSlug string, typeSlug string) ([]Circuit, error) {
	values := url.Values{}

	if providerSlug != "" {
		values.Set("provider", providerSlug)
	}

	if typeSlug != "" {
		values.Set("type", typeSlug)
	}

	path := "/api/circuits"
	if len(values) > 0 {
		path += "?" + values.Encode()
	}

	var circuits []Circuit

	err := doJSON(ctx, http.MethodGet, path, &circuits)
	if err != nil {
		return nil, err
	}

	return circuits, nil
}

func GetCircuit(ctx context.Context, circuitID string) (Circuit, error) {
	var aCircuit Circuit

	err := doJSON(ctx, http.MethodGet, "/api/circuit/"+url.PathEscape(circuitID), &aCircuit)
	if err != nil {
		return Circuit{}, err
	}

	return aCircuit, nil
}

// SwapTerminations swaps the A and Z sides and returns the post-swap
// circuit.
func SwapTerminations(ctx context.Context, circuitID string) (Circuit, error) {
	var aCircuit Circuit

	err := doJSON(ctx, http.MethodPost,
		"/api/circuit/"+url.PathEscape(circuitID)+"/terminations/swap", &aCircuit)
	if err != nil {
		return Circuit{}, err
	}

	return aCircuit, nil
}
