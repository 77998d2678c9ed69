package handlers

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/team-telnyx/netbox/netboxd/components"
)

type HomeHandler struct{}

func NewHomeHandler() HomeHandler {
	return HomeHandler{}
}

func (h HomeHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	if request.URL.Path != "/" && request.URL.Path != "/home" {
		serveNotFound(writer, request, "Page")

		return
	}

	templ.Handler(components.Home()).ServeHTTP(writer, request)
}
