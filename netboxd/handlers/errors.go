package handlers

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/team-telnyx/netbox/netboxd/auth"
	"github.com/team-telnyx/netbox/netboxd/components"
	"github.com/team-telnyx/netbox/netboxd/util"
)

var checker auth.Checker

// SetAuthChecker installs the token checker used by mutating handlers.
func SetAuthChecker(c auth.Checker) {
	checker = c
}

func serveNotFound(writer http.ResponseWriter, request *http.Request, kind string) {
	templ.Handler(
		components.NotFoundComponent(kind),
		templ.WithStatus(http.StatusNotFound),
	).ServeHTTP(writer, request)
}

func serveError(writer http.ResponseWriter, request *http.Request, err error) {
	util.LogError(err, request.RemoteAddr)

	templ.Handler(
		components.ErrorComponent(err.Error()),
		templ.WithStatus(http.StatusInternalServerError),
	).ServeHTTP(writer, request)
}

func serveForbidden(writer http.ResponseWriter, request *http.Request) {
	templ.Handler(
		components.ForbiddenComponent(),
		templ.WithStatus(http.StatusForbidden),
	).ServeHTTP(writer, request)
}

// requireCapability reports whether the request may proceed, serving a 403
// page when it may not.
func requireCapability(writer http.ResponseWriter, request *http.Request, capability string) bool {
	if checker == nil {
		serveForbidden(writer, request)

		return false
	}

	token := auth.TokenFromRequest(request)
	if !checker.Allowed(token, capability) {
		serveForbidden(writer, request)

		return false
	}

	return true
}
