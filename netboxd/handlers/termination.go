package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	"github.com/team-telnyx/netbox/netboxd/auth"
	"github.com/team-telnyx/netbox/netboxd/circuit"
	"github.com/team-telnyx/netbox/netboxd/components"
	"github.com/team-telnyx/netbox/netboxd/flash"
	"github.com/team-telnyx/netbox/netboxd/util"
)

type SwapHandler struct {
	GetCircuit func(string) (components.Circuit, error)
	Swap       func(string) error
}

func NewSwapHandler() SwapHandler {
	return SwapHandler{
		GetCircuit: GetCircuit,
		Swap:       circuit.SwapTerminations,
	}
}

// ServeHTTP serves the confirmation page on GET and performs the swap on
// POST. A POST without confirm=true re-renders the confirmation page
// instead of mutating.
func (s SwapHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	circuitID := request.PathValue("id")

	aCircuit, err := s.GetCircuit(circuitID)
	if err != nil {
		util.LogError(err, request.RemoteAddr)
		serveNotFound(writer, request, "Circuit")

		return
	}

	if !requireCapability(writer, request, auth.CapChangeTermination) {
		return
	}

	if request.Method != http.MethodPost {
		templ.Handler(components.SwapConfirm(aCircuit)).ServeHTTP(writer, request)

		return
	}

	err = request.ParseForm()
	if err != nil {
		util.LogError(err, request.RemoteAddr)
		serveError(writer, request, err)

		return
	}

	if request.PostFormValue("confirm") != "true" {
		templ.Handler(components.SwapConfirm(aCircuit)).ServeHTTP(writer, request)

		return
	}

	err = s.Swap(aCircuit.ID)
	if err != nil {
		if errors.Is(err, circuit.ErrNoTerminations) {
			flash.Set(writer, "No terminations to swap for circuit "+aCircuit.CID+".")
			http.Redirect(writer, request, "/circuit/"+aCircuit.ID, http.StatusSeeOther)

			return
		}

		util.LogError(err, request.RemoteAddr)
		serveError(writer, request, err)

		return
	}

	flash.Set(writer, "Swapped terminations for circuit "+aCircuit.CID+".")
	http.Redirect(writer, request, "/circuit/"+aCircuit.ID, http.StatusSeeOther)
}

type TerminationHandler struct {
	GetCircuit func(string) (components.Circuit, error)
}

func NewTerminationHandler() TerminationHandler {
	return TerminationHandler{
		GetCircuit: GetCircuit,
	}
}

//nolint:cyclop,funlen
func (t TerminationHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	circuitID := request.PathValue("id")
	side := request.PathValue("side")

	aCircuit, err := t.GetCircuit(circuitID)
	if err != nil {
		util.LogError(err, request.RemoteAddr)
		serveNotFound(writer, request, "Circuit")

		return
	}

	if !circuit.ValidSide(side) {
		serveNotFound(writer, request, "Termination")

		return
	}

	switch request.Method {
	case http.MethodDelete:
		if !requireCapability(writer, request, auth.CapChangeTermination) {
			return
		}

		err = circuit.DeleteTermination(aCircuit.ID, side)
		if err != nil {
			util.LogError(err, request.RemoteAddr)
			serveError(writer, request, err)

			return
		}

		writer.Header().Set("HX-Redirect", "/circuit/"+aCircuit.ID)
		writer.WriteHeader(http.StatusOK)
	case http.MethodPost:
		if !requireCapability(writer, request, auth.CapChangeTermination) {
			return
		}

		err = request.ParseForm()
		if err != nil {
			util.LogError(err, request.RemoteAddr)
			serveError(writer, request, err)

			return
		}

		term, err := circuit.GetTermination(aCircuit.ID, side)
		if errors.Is(err, circuit.ErrTerminationNotFound) {
			term = &circuit.Termination{
				CircuitID: aCircuit.ID,
				TermSide:  side,
			}

			applyTerminationForm(term, request)

			err = circuit.CreateTermination(term)
			if err != nil {
				util.LogError(err, request.RemoteAddr)
				serveError(writer, request, err)

				return
			}

			flash.Set(writer, "Created termination "+side+" for circuit "+aCircuit.CID+".")
			http.Redirect(writer, request, "/circuit/"+aCircuit.ID, http.StatusSeeOther)

			return
		}

		if err != nil {
			util.LogError(err, request.RemoteAddr)
			serveError(writer, request, err)

			return
		}

		applyTerminationForm(term, request)

		err = term.Save()
		if err != nil {
			util.LogError(err, request.RemoteAddr)
			serveError(writer, request, err)

			return
		}

		flash.Set(writer, "Updated termination "+side+" for circuit "+aCircuit.CID+".")
		http.Redirect(writer, request, "/circuit/"+aCircuit.ID, http.StatusSeeOther)
	default:
		term, err := circuit.GetTermination(aCircuit.ID, side)
		if err != nil {
			// render an empty form so the side can be created
			term = &circuit.Termination{
				CircuitID: aCircuit.ID,
				TermSide:  side,
			}
		}

		termComponent := terminationToComponent(term)

		templ.Handler(components.TerminationEdit(aCircuit, *termComponent)).ServeHTTP(writer, request)
	}
}

func applyTerminationForm(term *circuit.Termination, request *http.Request) {
	term.SiteName = request.PostFormValue("site_name")
	term.XConnectID = request.PostFormValue("xconnect_id")
	term.PPInfo = request.PostFormValue("pp_info")

	portSpeed, err := strconv.ParseUint(request.PostFormValue("port_speed"), 10, 64)
	if err == nil {
		term.PortSpeed = portSpeed
	}
}
