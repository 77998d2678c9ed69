package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/team-telnyx/netbox/netboxd/auth"
	"github.com/team-telnyx/netbox/netboxd/circuit"
	"github.com/team-telnyx/netbox/netboxd/components"
	"github.com/team-telnyx/netbox/netboxd/util"
)

func writeJSON(writer http.ResponseWriter, request *http.Request, payload interface{}) {
	writer.Header().Set("Content-Type", "application/json")

	err := json.NewEncoder(writer).Encode(payload)
	if err != nil {
		util.LogError(err, request.RemoteAddr)
	}
}

func writeJSONError(writer http.ResponseWriter, status int, message string) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)

	_ = json.NewEncoder(writer).Encode(map[string]string{"error": message})
}

// requireAPICapability is the JSON variant of requireCapability, no HTML
// error page.
func requireAPICapability(writer http.ResponseWriter, request *http.Request, capability string) bool {
	if checker == nil {
		writeJSONError(writer, http.StatusForbidden, "forbidden")

		return false
	}

	token := auth.TokenFromRequest(request)
	if !checker.Allowed(token, capability) {
		writeJSONError(writer, http.StatusForbidden, "forbidden")

		return false
	}

	return true
}

type APIProvidersHandler struct {
	GetProviders func() ([]components.Provider, error)
}

func NewAPIProvidersHandler() APIProvidersHandler {
	return APIProvidersHandler{
		GetProviders: GetProviders,
	}
}

func (a APIProvidersHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	providers, err := a.GetProviders()
	if err != nil {
		util.LogError(err, request.RemoteAddr)
		writeJSONError(writer, http.StatusInternalServerError, err.Error())

		return
	}

	writeJSON(writer, request, providers)
}

type APICircuitTypesHandler struct {
	GetCircuitTypes func() ([]components.CircuitType, error)
}

func NewAPICircuitTypesHandler() APICircuitTypesHandler {
	return APICircuitTypesHandler{
		GetCircuitTypes: GetCircuitTypes,
	}
}

func (a APICircuitTypesHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	circuitTypes, err := a.GetCircuitTypes()
	if err != nil {
		util.LogError(err, request.RemoteAddr)
		writeJSONError(writer, http.StatusInternalServerError, err.Error())

		return
	}

	writeJSON(writer, request, circuitTypes)
}

type APICircuitsHandler struct {
	GetCircuits func(string, string) ([]components.Circuit, error)
}

func NewAPICircuitsHandler() APICircuitsHandler {
	return APICircuitsHandler{
		GetCircuits: GetCircuits,
	}
}

func (a APICircuitsHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	providerID, typeID := resolveFilters(request)

	circuits, err := a.GetCircuits(providerID, typeID)
	if err != nil {
		util.LogError(err, request.RemoteAddr)
		writeJSONError(writer, http.StatusInternalServerError, err.Error())

		return
	}

	writeJSON(writer, request, circuits)
}

type APICircuitHandler struct {
	GetCircuit func(string) (components.Circuit, error)
}

func NewAPICircuitHandler() APICircuitHandler {
	return APICircuitHandler{
		GetCircuit: GetCircuit,
	}
}

func (a APICircuitHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	aCircuit, err := a.GetCircuit(request.PathValue("id"))
	if err != nil {
		writeJSONError(writer, http.StatusNotFound, "circuit not found")

		return
	}

	writeJSON(writer, request, aCircuit)
}

type APISwapHandler struct {
	GetCircuit func(string) (components.Circuit, error)
	Swap       func(string) error
}

func NewAPISwapHandler() APISwapHandler {
	return APISwapHandler{
		GetCircuit: GetCircuit,
		Swap:       circuit.SwapTerminations,
	}
}

func (a APISwapHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	// capability first, a 404 here would leak which circuit IDs exist
	if !requireAPICapability(writer, request, auth.CapChangeTermination) {
		return
	}

	aCircuit, err := a.GetCircuit(request.PathValue("id"))
	if err != nil {
		writeJSONError(writer, http.StatusNotFound, "circuit not found")

		return
	}

	err = a.Swap(aCircuit.ID)
	if err != nil {
		if errors.Is(err, circuit.ErrNoTerminations) {
			writeJSONError(writer, http.StatusConflict, "no terminations defined")

			return
		}

		util.LogError(err, request.RemoteAddr)
		writeJSONError(writer, http.StatusInternalServerError, err.Error())

		return
	}

	// return the post-swap state
	aCircuit, err = a.GetCircuit(aCircuit.ID)
	if err != nil {
		util.LogError(err, request.RemoteAddr)
		writeJSONError(writer, http.StatusInternalServerError, err.Error())

		return
	}

	writeJSON(writer, request, aCircuit)
}
