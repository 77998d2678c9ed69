package components

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

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

func Providers(providers []Provider) templ.Component {
	return page("Providers", "", templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<h1>Providers</h1>\n<table>\n<tr><th>Name</th><th>ASN</th><th>Account</th><th>Circuits</th></tr>\n") //nolint:lll
		if err != nil {
			return fmt.Errorf("error rendering page: %w", err)
		}

		for _, aProvider := range providers {
			_, err = fmt.Fprintf(w, "<tr><td><a href=\"/provider/%s\">%s</a></td><td>%d</td><td>%s</td><td>%d</td></tr>\n",
				templ.EscapeString(aProvider.Slug),
				templ.EscapeString(aProvider.Name),
				aProvider.ASN,
				templ.EscapeString(aProvider.Account),
				aProvider.CircuitCount,
			)
			if err != nil {
				return fmt.Errorf("error rendering page: %w", err)
			}
		}

		_, err = io.WriteString(w, "</table>\n")
		if err != nil {
			return fmt.Errorf("error rendering page: %w", err)
		}

		return nil
	}))
}

func ProviderDetail(aProvider Provider, circuits []Circuit, flashMessage string) templ.Component {
	return page(aProvider.Name, flashMessage, templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<h1>%s</h1>
<table>
<tr><th>ASN</th><td>%s</td></tr>
<tr><th>Account</th><td>%s</td></tr>
<tr><th>Portal</th><td>%s</td></tr>
<tr><th>NOC Contact</th><td>%s</td></tr>
<tr><th>Admin Contact</th><td>%s</td></tr>
<tr><th>Comments</th><td>%s</td></tr>
</table>
`,
			templ.EscapeString(aProvider.Name),
			templ.EscapeString(asnString(aProvider.ASN)),
			templ.EscapeString(aProvider.Account),
			templ.EscapeString(aProvider.PortalURL),
			templ.EscapeString(aProvider.NocContact),
			templ.EscapeString(aProvider.AdminContact),
			templ.EscapeString(aProvider.Comments),
		)
		if err != nil {
			return fmt.Errorf("error rendering page: %w", err)
		}

		err = writeCircuitTable(w, circuits)
		if err != nil {
			return err
		}

		return nil
	}))
}

func asnString(asn uint32) string {
	if asn == 0 {
		return ""
	}

	return "AS" + strconv.FormatUint(uint64(asn), 10)
}
