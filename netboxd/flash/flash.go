// Package flash carries one-shot notification messages across a redirect
// using a cookie, cleared on the next read.
package flash

import (
	"encoding/base64"
	"net/http"
)

const cookieName = "netbox_flash"

func Set(writer http.ResponseWriter, message string) {
	http.SetCookie(writer, &http.Cookie{
		Name:     cookieName,
		Value:    base64.URLEncoding.EncodeToString([]byte(message)),
		Path:     "/",
		HttpOnly: true,
	})
}

// Pop returns the pending message, if any, and expires the cookie.
func Pop(writer http.ResponseWriter, request *http.Request) string {
	flashCookie, err := request.Cookie(cookieName)
	if err != nil {
		return ""
	}

	http.SetCookie(writer, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	message, err := base64.URLEncoding.DecodeString(flashCookie.Value)
	if err != nil {
		return ""
	}

	return string(message)
}
