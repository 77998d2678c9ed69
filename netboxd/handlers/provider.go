package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	"github.com/team-telnyx/netbox/netboxd/auth"
	"github.com/team-telnyx/netbox/netboxd/circuit"
	"github.com/team-telnyx/netbox/netboxd/components"
	"github.com/team-telnyx/netbox/netboxd/flash"
	"github.com/team-telnyx/netbox/netboxd/provider"
	"github.com/team-telnyx/netbox/netboxd/util"
)

func providerToComponent(aProvider *provider.Provider) components.Provider {
	return components.Provider{
		ID:           aProvider.ID,
		Name:         aProvider.Name,
		Slug:         aProvider.Slug,
		ASN:          aProvider.ASN,
		Account:      aProvider.Account,
		PortalURL:    aProvider.PortalURL,
		NocContact:   aProvider.NocContact,
		AdminContact: aProvider.AdminContact,
		Comments:     aProvider.Comments,
	}
}

func GetProviders() ([]components.Provider, error) {
	allProviders := provider.GetAll()

	returnProviders := make([]components.Provider, 0, len(allProviders))

	for _, aProvider := range allProviders {
		count, err := circuit.CountByProvider(aProvider.ID)
		if err != nil {
			return nil, fmt.Errorf("error getting providers: %w", err)
		}

		providerComponent := providerToComponent(aProvider)
		providerComponent.CircuitCount = count

		returnProviders = append(returnProviders, providerComponent)
	}

	return returnProviders, nil
}

func GetProvider(slug string) (components.Provider, error) {
	aProvider, err := provider.GetBySlug(slug)
	if err != nil {
		return components.Provider{}, fmt.Errorf("error getting provider: %w", err)
	}

	returnProvider := providerToComponent(aProvider)

	returnProvider.CircuitCount, err = circuit.CountByProvider(aProvider.ID)
	if err != nil {
		return components.Provider{}, fmt.Errorf("error getting provider: %w", err)
	}

	return returnProvider, nil
}

type ProvidersHandler struct {
	GetProviders func() ([]components.Provider, error)
}

func NewProvidersHandler() ProvidersHandler {
	return ProvidersHandler{
		GetProviders: GetProviders,
	}
}

func (p ProvidersHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	switch request.Method {
	case http.MethodPost:
		if !requireCapability(writer, request, auth.CapChangeProvider) {
			return
		}

		err := request.ParseForm()
		if err != nil {
			util.LogError(err, request.RemoteAddr)
			serveError(writer, request, err)

			return
		}

		newProvider := &provider.Provider{
			Name:         request.PostFormValue("name"),
			Slug:         request.PostFormValue("slug"),
			Account:      request.PostFormValue("account"),
			PortalURL:    request.PostFormValue("portal_url"),
			NocContact:   request.PostFormValue("noc_contact"),
			AdminContact: request.PostFormValue("admin_contact"),
			Comments:     request.PostFormValue("comments"),
		}

		asn, err := strconv.ParseUint(request.PostFormValue("asn"), 10, 32)
		if err == nil {
			newProvider.ASN = uint32(asn)
		}

		err = provider.Create(newProvider)
		if err != nil {
			util.LogError(err, request.RemoteAddr)
			serveError(writer, request, err)

			return
		}

		flash.Set(writer, "Created provider "+newProvider.Name+".")
		http.Redirect(writer, request, "/provider/"+newProvider.Slug, http.StatusSeeOther)
	default:
		providers, err := p.GetProviders()
		if err != nil {
			util.LogError(err, request.RemoteAddr)
			serveError(writer, request, err)

			return
		}

		templ.Handler(components.Providers(providers)).ServeHTTP(writer, request)
	}
}

type ProviderHandler struct {
	GetProvider func(string) (components.Provider, error)
}

func NewProviderHandler() ProviderHandler {
	return ProviderHandler{
		GetProvider: GetProvider,
	}
}

//nolint:cyclop
func (p ProviderHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	slug := request.PathValue("slug")

	aProvider, err := p.GetProvider(slug)
	if err != nil {
		util.LogError(err, request.RemoteAddr)
		serveNotFound(writer, request, "Provider")

		return
	}

	switch request.Method {
	case http.MethodDelete:
		if !requireCapability(writer, request, auth.CapChangeProvider) {
			return
		}

		err = provider.Delete(aProvider.ID, aProvider.CircuitCount)
		if err != nil {
			util.LogError(err, request.RemoteAddr)
			serveError(writer, request, err)

			return
		}

		writer.Header().Set("HX-Redirect", "/providers")
		writer.WriteHeader(http.StatusOK)
	case http.MethodPost:
		if !requireCapability(writer, request, auth.CapChangeProvider) {
			return
		}

		err = request.ParseForm()
		if err != nil {
			util.LogError(err, request.RemoteAddr)
			serveError(writer, request, err)

			return
		}

		dbProvider, err := provider.GetByID(aProvider.ID)
		if err != nil {
			util.LogError(err, request.RemoteAddr)
			serveNotFound(writer, request, "Provider")

			return
		}

		dbProvider.Name = request.PostFormValue("name")
		dbProvider.Account = request.PostFormValue("account")
		dbProvider.PortalURL = request.PostFormValue("portal_url")
		dbProvider.NocContact = request.PostFormValue("noc_contact")
		dbProvider.AdminContact = request.PostFormValue("admin_contact")
		dbProvider.Comments = request.PostFormValue("comments")

		asn, err := strconv.ParseUint(request.PostFormValue("asn"), 10, 32)
		if err == nil {
			dbProvider.ASN = uint32(asn)
		}

		err = dbProvider.Save()
		if err != nil {
			util.LogError(err, request.RemoteAddr)
			serveError(writer, request, err)

			return
		}

		flash.Set(writer, "Updated provider "+dbProvider.Name+".")
		http.Redirect(writer, request, "/provider/"+dbProvider.Slug, http.StatusSeeOther)
	default:
		circuits, err := GetCircuits(aProvider.ID, "")
		if err != nil {
			util.LogError(err, request.RemoteAddr)
			serveError(writer, request, err)

			return
		}

		flashMessage := flash.Pop(writer, request)

		templ.Handler(components.ProviderDetail(aProvider, circuits, flashMessage)).ServeHTTP(writer, request)
	}
}
