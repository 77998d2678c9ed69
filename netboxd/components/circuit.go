package components

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/dustin/go-humanize"
)

type Circuit struct {
	ID           string
	CID          string
	ProviderID   string
	ProviderName string
	TypeID       string
	TypeName     string
	InstallDate  string
	CommitRate   uint64 // kbps
	Comments     string
	TerminationA *Termination
	TerminationZ *Termination
}

type Termination struct {
	ID         string
	CircuitID  string
	Side       string
	SiteName   string
	PortSpeed  uint64 // kbps
	XConnectID string
	PPInfo     string
}

// RateString renders a kbps rate the way the UI shows it, e.g. "10 Gbps".
func RateString(kbps uint64) string {
	if kbps == 0 {
		return ""
	}

	return humanize.SI(float64(kbps)*1000, "bps")
}

func writeCircuitTable(w io.Writer, circuits []Circuit) error {
	_, err := io.WriteString(w, "<table>\n<tr><th>Circuit ID</th><th>Provider</th><th>Type</th><th>Commit Rate</th></tr>\n") //nolint:lll
	if err != nil {
		return fmt.Errorf("error rendering page: %w", err)
	}

	for _, aCircuit := range circuits {
		_, err = fmt.Fprintf(w, "<tr><td><a href=\"/circuit/%s\">%s</a></td><td>%s</td><td>%s</td><td>%s</td></tr>\n",
			templ.EscapeString(aCircuit.ID),
			templ.EscapeString(aCircuit.CID),
			templ.EscapeString(aCircuit.ProviderName),
			templ.EscapeString(aCircuit.TypeName),
			templ.EscapeString(RateString(aCircuit.CommitRate)),
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
}

func Circuits(circuits []Circuit, flashMessage string) templ.Component {
	return page("Circuits", flashMessage, templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<h1>Circuits</h1>\n")
		if err != nil {
			return fmt.Errorf("error rendering page: %w", err)
		}

		return writeCircuitTable(w, circuits)
	}))
}

func writeTerminationPanel(w io.Writer, aCircuit Circuit, side string, term *Termination) error {
	_, err := fmt.Fprintf(w, "<div class=\"termination\">\n<h2>Termination %s</h2>\n", templ.EscapeString(side))
	if err != nil {
		return fmt.Errorf("error rendering page: %w", err)
	}

	if term == nil {
		_, err = io.WriteString(w, "<p>Not defined</p>\n</div>\n")
		if err != nil {
			return fmt.Errorf("error rendering page: %w", err)
		}

		return nil
	}

	_, err = fmt.Fprintf(w, `<table>
<tr><th>Site</th><td>%s</td></tr>
<tr><th>Port Speed</th><td>%s</td></tr>
<tr><th>Cross-Connect</th><td>%s</td></tr>
<tr><th>Patch Panel/Port</th><td>%s</td></tr>
</table>
<a href="/circuit/%s/termination/%s/edit">Edit</a>
</div>
`,
		templ.EscapeString(term.SiteName),
		templ.EscapeString(RateString(term.PortSpeed)),
		templ.EscapeString(term.XConnectID),
		templ.EscapeString(term.PPInfo),
		templ.EscapeString(aCircuit.ID),
		templ.EscapeString(side),
	)
	if err != nil {
		return fmt.Errorf("error rendering page: %w", err)
	}

	return nil
}

func CircuitDetail(aCircuit Circuit, flashMessage string) templ.Component {
	return page(aCircuit.CID, flashMessage, templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<h1>%s</h1>
<table>
<tr><th>Provider</th><td><a href="/provider/%s">%s</a></td></tr>
<tr><th>Type</th><td>%s</td></tr>
<tr><th>Install Date</th><td>%s</td></tr>
<tr><th>Commit Rate</th><td>%s</td></tr>
<tr><th>Comments</th><td>%s</td></tr>
</table>
`,
			templ.EscapeString(aCircuit.CID),
			templ.EscapeString(aCircuit.ProviderID),
			templ.EscapeString(aCircuit.ProviderName),
			templ.EscapeString(aCircuit.TypeName),
			templ.EscapeString(aCircuit.InstallDate),
			templ.EscapeString(RateString(aCircuit.CommitRate)),
			templ.EscapeString(aCircuit.Comments),
		)
		if err != nil {
			return fmt.Errorf("error rendering page: %w", err)
		}

		err = writeTerminationPanel(w, aCircuit, "A", aCircuit.TerminationA)
		if err != nil {
			return err
		}

		err = writeTerminationPanel(w, aCircuit, "Z", aCircuit.TerminationZ)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(w, "<a href=\"/circuit/%s/terminations/swap\">Swap Terminations</a>\n",
			templ.EscapeString(aCircuit.ID))
		if err != nil {
			return fmt.Errorf("error rendering page: %w", err)
		}

		return nil
	}))
}

// SwapConfirm is the confirmation page shown before a swap is performed.
func SwapConfirm(aCircuit Circuit) templ.Component {
	return page("Swap Terminations", "", templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<h1>Swap Terminations</h1>
<p>Swap the A and Z side terminations of circuit %s?</p>
<form method="post" action="/circuit/%s/terminations/swap">
<input type="hidden" name="confirm" value="true"/>
<button type="submit">Swap</button>
<a href="/circuit/%s">Cancel</a>
</form>
`,
			templ.EscapeString(aCircuit.CID),
			templ.EscapeString(aCircuit.ID),
			templ.EscapeString(aCircuit.ID),
		)
		if err != nil {
			return fmt.Errorf("error rendering page: %w", err)
		}

		return nil
	}))
}

func TerminationEdit(aCircuit Circuit, term Termination) templ.Component {
	return page("Edit Termination", "", templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<h1>%s Termination %s</h1>
<form method="post" action="/circuit/%s/termination/%s/edit">
<label>Site <input type="text" name="site_name" value="%s"/></label>
<label>Port Speed (kbps) <input type="text" name="port_speed" value="%d"/></label>
<label>Cross-Connect <input type="text" name="xconnect_id" value="%s"/></label>
<label>Patch Panel/Port <input type="text" name="pp_info" value="%s"/></label>
<button type="submit">Save</button>
</form>
`,
			templ.EscapeString(aCircuit.CID),
			templ.EscapeString(term.Side),
			templ.EscapeString(aCircuit.ID),
			templ.EscapeString(term.Side),
			templ.EscapeString(term.SiteName),
			term.PortSpeed,
			templ.EscapeString(term.XConnectID),
			templ.EscapeString(term.PPInfo),
		)
		if err != nil {
			return fmt.Errorf("error rendering page: %w", err)
		}

		return nil
	}))
}

func CircuitImport() templ.Component {
	return page("Import Circuits", "", templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<h1>Import Circuits</h1>
<p>Paste CSV with columns: cid,provider_slug,type_slug,commit_rate,comments</p>
<form method="post" action="/circuits/import">
<textarea name="csv" rows="20" cols="80"></textarea>
<button type="submit">Import</button>
</form>
`)
		if err != nil {
			return fmt.Errorf("error rendering page: %w", err)
		}

		return nil
	}))
}
