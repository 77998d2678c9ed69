package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/team-telnyx/netbox/netboxd/auth"
	"github.com/team-telnyx/netbox/netboxd/circuit"
	"github.com/team-telnyx/netbox/netboxd/circuittype"
	"github.com/team-telnyx/netbox/netboxd/components"
	"github.com/team-telnyx/netbox/netboxd/flash"
	"github.com/team-telnyx/netbox/netboxd/provider"
	"github.com/team-telnyx/netbox/netboxd/util"
)

const installDateFormat = "2006-01-02"

func terminationToComponent(term *circuit.Termination) *components.Termination {
	if term == nil {
		return nil
	}

	return &components.Termination{
		ID:         term.ID,
		CircuitID:  term.CircuitID,
		Side:       term.TermSide,
		SiteName:   term.SiteName,
		PortSpeed:  term.PortSpeed,
		XConnectID: term.XConnectID,
		PPInfo:     term.PPInfo,
	}
}

func circuitToComponent(aCircuit *circuit.Circuit) components.Circuit {
	returnCircuit := components.Circuit{
		ID:         aCircuit.ID,
		CID:        aCircuit.CID,
		ProviderID: aCircuit.ProviderID,
		TypeID:     aCircuit.TypeID,
		CommitRate: aCircuit.CommitRate,
		Comments:   aCircuit.Comments,
	}

	if aCircuit.InstallDate.Valid {
		returnCircuit.InstallDate = aCircuit.InstallDate.Time.Format(installDateFormat)
	}

	aProvider, err := provider.GetByID(aCircuit.ProviderID)
	if err == nil {
		returnCircuit.ProviderName = aProvider.Name
	}

	if aCircuit.TypeID != "" {
		aType, err := circuittype.GetByID(aCircuit.TypeID)
		if err == nil {
			returnCircuit.TypeName = aType.Name
		}
	}

	return returnCircuit
}

func GetCircuits(providerID string, typeID string) ([]components.Circuit, error) {
	allCircuits := circuit.GetFiltered(providerID, typeID)

	returnCircuits := make([]components.Circuit, 0, len(allCircuits))

	for _, aCircuit := range allCircuits {
		returnCircuits = append(returnCircuits, circuitToComponent(aCircuit))
	}

	return returnCircuits, nil
}

// GetCircuit returns a circuit with both termination panels populated.
func GetCircuit(circuitID string) (components.Circuit, error) {
	aCircuit, err := circuit.GetByID(circuitID)
	if err != nil {
		return components.Circuit{}, fmt.Errorf("error getting circuit: %w", err)
	}

	returnCircuit := circuitToComponent(aCircuit)

	termA, err := circuit.GetTermination(circuitID, circuit.SideA)
	if err != nil && !errors.Is(err, circuit.ErrTerminationNotFound) {
		return components.Circuit{}, fmt.Errorf("error getting circuit: %w", err)
	}

	termZ, err := circuit.GetTermination(circuitID, circuit.SideZ)
	if err != nil && !errors.Is(err, circuit.ErrTerminationNotFound) {
		return components.Circuit{}, fmt.Errorf("error getting circuit: %w", err)
	}

	returnCircuit.TerminationA = terminationToComponent(termA)
	returnCircuit.TerminationZ = terminationToComponent(termZ)

	return returnCircuit, nil
}

// resolveFilters maps the provider and type slugs from the query string to
// IDs for the circuit list filter.
func resolveFilters(request *http.Request) (string, string) {
	var providerID, typeID string

	providerSlug := request.URL.Query().Get("provider")
	if providerSlug != "" {
		aProvider, err := provider.GetBySlug(providerSlug)
		if err == nil {
			providerID = aProvider.ID
		}
	}

	typeSlug := request.URL.Query().Get("type")
	if typeSlug != "" {
		aType, err := circuittype.GetBySlug(typeSlug)
		if err == nil {
			typeID = aType.ID
		}
	}

	return providerID, typeID
}

func circuitFromForm(request *http.Request) (*circuit.Circuit, error) {
	providerSlug := request.PostFormValue("provider")

	aProvider, err := provider.GetBySlug(providerSlug)
	if err != nil {
		return nil, fmt.Errorf("unknown provider %v: %w", providerSlug, err)
	}

	newCircuit := &circuit.Circuit{
		CID:        request.PostFormValue("cid"),
		ProviderID: aProvider.ID,
		Comments:   request.PostFormValue("comments"),
	}

	typeSlug := request.PostFormValue("type")
	if typeSlug != "" {
		aType, err := circuittype.GetBySlug(typeSlug)
		if err != nil {
			return nil, fmt.Errorf("unknown circuit type %v: %w", typeSlug, err)
		}

		newCircuit.TypeID = aType.ID
	}

	commitRate, err := strconv.ParseUint(request.PostFormValue("commit_rate"), 10, 64)
	if err == nil {
		newCircuit.CommitRate = commitRate
	}

	installDate, err := time.Parse(installDateFormat, request.PostFormValue("install_date"))
	if err == nil {
		newCircuit.InstallDate = sql.NullTime{Time: installDate, Valid: true}
	}

	return newCircuit, nil
}

type CircuitsHandler struct {
	GetCircuits func(string, string) ([]components.Circuit, error)
}

func NewCircuitsHandler() CircuitsHandler {
	return CircuitsHandler{
		GetCircuits: GetCircuits,
	}
}

func (c CircuitsHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	switch request.Method {
	case http.MethodPost:
		if !requireCapability(writer, request, auth.CapAddCircuit) {
			return
		}

		err := request.ParseForm()
		if err != nil {
			util.LogError(err, request.RemoteAddr)
			serveError(writer, request, err)

			return
		}

		newCircuit, err := circuitFromForm(request)
		if err != nil {
			util.LogError(err, request.RemoteAddr)
			serveError(writer, request, err)

			return
		}

		err = circuit.Create(newCircuit)
		if err != nil {
			util.LogError(err, request.RemoteAddr)
			serveError(writer, request, err)

			return
		}

		circuit.UpdateCircuitsGauge()

		flash.Set(writer, "Created circuit "+newCircuit.CID+".")
		http.Redirect(writer, request, "/circuit/"+newCircuit.ID, http.StatusSeeOther)
	default:
		providerID, typeID := resolveFilters(request)

		circuits, err := c.GetCircuits(providerID, typeID)
		if err != nil {
			util.LogError(err, request.RemoteAddr)
			serveError(writer, request, err)

			return
		}

		flashMessage := flash.Pop(writer, request)

		templ.Handler(components.Circuits(circuits, flashMessage)).ServeHTTP(writer, request)
	}
}

type CircuitHandler struct {
	GetCircuit func(string) (components.Circuit, error)
}

func NewCircuitHandler() CircuitHandler {
	return CircuitHandler{
		GetCircuit: GetCircuit,
	}
}

func (c CircuitHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	circuitID := request.PathValue("id")

	aCircuit, err := c.GetCircuit(circuitID)
	if err != nil {
		util.LogError(err, request.RemoteAddr)
		serveNotFound(writer, request, "Circuit")

		return
	}

	switch request.Method {
	case http.MethodDelete:
		if !requireCapability(writer, request, auth.CapDeleteCircuit) {
			return
		}

		err = circuit.Delete(aCircuit.ID)
		if err != nil {
			util.LogError(err, request.RemoteAddr)
			serveError(writer, request, err)

			return
		}

		circuit.UpdateCircuitsGauge()

		writer.Header().Set("HX-Redirect", "/circuits")
		writer.WriteHeader(http.StatusOK)
	case http.MethodPost:
		if !requireCapability(writer, request, auth.CapChangeCircuit) {
			return
		}

		err = request.ParseForm()
		if err != nil {
			util.LogError(err, request.RemoteAddr)
			serveError(writer, request, err)

			return
		}

		dbCircuit, err := circuit.GetByID(aCircuit.ID)
		if err != nil {
			util.LogError(err, request.RemoteAddr)
			serveNotFound(writer, request, "Circuit")

			return
		}

		if cid := request.PostFormValue("cid"); cid != "" {
			dbCircuit.CID = cid
		}

		if comments, ok := request.PostForm["comments"]; ok && len(comments) > 0 {
			dbCircuit.Comments = comments[0]
		}

		commitRate, err := strconv.ParseUint(request.PostFormValue("commit_rate"), 10, 64)
		if err == nil {
			dbCircuit.CommitRate = commitRate
		}

		installDate, err := time.Parse(installDateFormat, request.PostFormValue("install_date"))
		if err == nil {
			dbCircuit.InstallDate = sql.NullTime{Time: installDate, Valid: true}
		}

		err = dbCircuit.Save()
		if err != nil {
			util.LogError(err, request.RemoteAddr)
			serveError(writer, request, err)

			return
		}

		flash.Set(writer, "Updated circuit "+dbCircuit.CID+".")
		http.Redirect(writer, request, "/circuit/"+dbCircuit.ID, http.StatusSeeOther)
	default:
		flashMessage := flash.Pop(writer, request)

		templ.Handler(components.CircuitDetail(aCircuit, flashMessage)).ServeHTTP(writer, request)
	}
}
