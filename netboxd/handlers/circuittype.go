package handlers

import (
	"fmt"
	"net/http"

	"github.com/a-h/templ"

	"github.com/team-telnyx/netbox/netboxd/auth"
	"github.com/team-telnyx/netbox/netboxd/circuit"
	"github.com/team-telnyx/netbox/netboxd/circuittype"
	"github.com/team-telnyx/netbox/netboxd/components"
	"github.com/team-telnyx/netbox/netboxd/flash"
	"github.com/team-telnyx/netbox/netboxd/util"
)

func GetCircuitTypes() ([]components.CircuitType, error) {
	allTypes := circuittype.GetAll()

	returnTypes := make([]components.CircuitType, 0, len(allTypes))

	for _, aType := range allTypes {
		count, err := circuit.CountByType(aType.ID)
		if err != nil {
			return nil, fmt.Errorf("error getting circuit types: %w", err)
		}

		returnTypes = append(returnTypes, components.CircuitType{
			ID:           aType.ID,
			Name:         aType.Name,
			Slug:         aType.Slug,
			CircuitCount: count,
		})
	}

	return returnTypes, nil
}

func GetCircuitType(slug string) (components.CircuitType, error) {
	aType, err := circuittype.GetBySlug(slug)
	if err != nil {
		return components.CircuitType{}, fmt.Errorf("error getting circuit type: %w", err)
	}

	count, err := circuit.CountByType(aType.ID)
	if err != nil {
		return components.CircuitType{}, fmt.Errorf("error getting circuit type: %w", err)
	}

	return components.CircuitType{
		ID:           aType.ID,
		Name:         aType.Name,
		Slug:         aType.Slug,
		CircuitCount: count,
	}, nil
}

type CircuitTypesHandler struct {
	GetCircuitTypes func() ([]components.CircuitType, error)
}

func NewCircuitTypesHandler() CircuitTypesHandler {
	return CircuitTypesHandler{
		GetCircuitTypes: GetCircuitTypes,
	}
}

func (c CircuitTypesHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	switch request.Method {
	case http.MethodPost:
		if !requireCapability(writer, request, auth.CapChangeCircuitType) {
			return
		}

		err := request.ParseForm()
		if err != nil {
			util.LogError(err, request.RemoteAddr)
			serveError(writer, request, err)

			return
		}

		newType := &circuittype.CircuitType{
			Name: request.PostFormValue("name"),
			Slug: request.PostFormValue("slug"),
		}

		err = circuittype.Create(newType)
		if err != nil {
			util.LogError(err, request.RemoteAddr)
			serveError(writer, request, err)

			return
		}

		flash.Set(writer, "Created circuit type "+newType.Name+".")
		http.Redirect(writer, request, "/circuit-type/"+newType.Slug, http.StatusSeeOther)
	default:
		circuitTypes, err := c.GetCircuitTypes()
		if err != nil {
			util.LogError(err, request.RemoteAddr)
			serveError(writer, request, err)

			return
		}

		templ.Handler(components.CircuitTypes(circuitTypes)).ServeHTTP(writer, request)
	}
}

type CircuitTypeHandler struct {
	GetCircuitType func(string) (components.CircuitType, error)
}

func NewCircuitTypeHandler() CircuitTypeHandler {
	return CircuitTypeHandler{
		GetCircuitType: GetCircuitType,
	}
}

func (c CircuitTypeHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	aType, err := c.GetCircuitType(request.PathValue("slug"))
	if err != nil {
		util.LogError(err, request.RemoteAddr)
		serveNotFound(writer, request, "Circuit Type")

		return
	}

	switch request.Method {
	case http.MethodDelete:
		if !requireCapability(writer, request, auth.CapChangeCircuitType) {
			return
		}

		err = circuittype.Delete(aType.ID, aType.CircuitCount)
		if err != nil {
			util.LogError(err, request.RemoteAddr)
			serveError(writer, request, err)

			return
		}

		writer.Header().Set("HX-Redirect", "/circuit-types")
		writer.WriteHeader(http.StatusOK)
	case http.MethodPost:
		if !requireCapability(writer, request, auth.CapChangeCircuitType) {
			return
		}

		err = request.ParseForm()
		if err != nil {
			util.LogError(err, request.RemoteAddr)
			serveError(writer, request, err)

			return
		}

		dbType, err := circuittype.GetByID(aType.ID)
		if err != nil {
			util.LogError(err, request.RemoteAddr)
			serveNotFound(writer, request, "Circuit Type")

			return
		}

		dbType.Name = request.PostFormValue("name")

		err = dbType.Save()
		if err != nil {
			util.LogError(err, request.RemoteAddr)
			serveError(writer, request, err)

			return
		}

		flash.Set(writer, "Updated circuit type "+dbType.Name+".")
		http.Redirect(writer, request, "/circuit-type/"+dbType.Slug, http.StatusSeeOther)
	default:
		circuits, err := GetCircuits("", aType.ID)
		if err != nil {
			util.LogError(err, request.RemoteAddr)
			serveError(writer, request, err)

			return
		}

		flashMessage := flash.Pop(writer, request)

		templ.Handler(components.CircuitTypeDetail(aType, circuits, flashMessage)).ServeHTTP(writer, request)
	}
}
