package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/team-telnyx/netbox/netboxd/auth"
	"github.com/team-telnyx/netbox/netboxd/circuit"
	"github.com/team-telnyx/netbox/netboxd/circuittype"
	"github.com/team-telnyx/netbox/netboxd/components"
	"github.com/team-telnyx/netbox/netboxd/flash"
	"github.com/team-telnyx/netbox/netboxd/provider"
	"github.com/team-telnyx/netbox/netboxd/util"
)

const importColumns = 5 // cid, provider_slug, type_slug, commit_rate, comments

type CircuitImportHandler struct {
	ImportAll func([]*circuit.Circuit) error
}

func NewCircuitImportHandler() CircuitImportHandler {
	return CircuitImportHandler{
		ImportAll: circuit.ImportAll,
	}
}

// parseImportCSV resolves provider and type slugs per row. Any bad row
// fails the whole parse so nothing is partially imported.
func parseImportCSV(csvData string) ([]*circuit.Circuit, error) {
	reader := csv.NewReader(strings.NewReader(csvData))
	reader.FieldsPerRecord = importColumns

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error parsing import: %w", err)
	}

	circuits := make([]*circuit.Circuit, 0, len(records))

	for lineNum, record := range records {
		if lineNum == 0 && record[0] == "cid" {
			// header row
			continue
		}

		aProvider, err := provider.GetBySlug(record[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: unknown provider %v: %w", lineNum+1, record[1], err)
		}

		newCircuit := &circuit.Circuit{
			CID:        record[0],
			ProviderID: aProvider.ID,
			Comments:   record[4],
		}

		if record[2] != "" {
			aType, err := circuittype.GetBySlug(record[2])
			if err != nil {
				return nil, fmt.Errorf("line %d: unknown circuit type %v: %w", lineNum+1, record[2], err)
			}

			newCircuit.TypeID = aType.ID
		}

		if record[3] != "" {
			commitRate, err := strconv.ParseUint(record[3], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad commit rate %v: %w", lineNum+1, record[3], err)
			}

			newCircuit.CommitRate = commitRate
		}

		circuits = append(circuits, newCircuit)
	}

	return circuits, nil
}

func (c CircuitImportHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	if !requireCapability(writer, request, auth.CapAddCircuit) {
		return
	}

	if request.Method != http.MethodPost {
		templ.Handler(components.CircuitImport()).ServeHTTP(writer, request)

		return
	}

	err := request.ParseForm()
	if err != nil {
		util.LogError(err, request.RemoteAddr)
		serveError(writer, request, err)

		return
	}

	circuits, err := parseImportCSV(request.PostFormValue("csv"))
	if err != nil {
		util.LogError(err, request.RemoteAddr)
		serveError(writer, request, err)

		return
	}

	err = c.ImportAll(circuits)
	if err != nil {
		util.LogError(err, request.RemoteAddr)
		serveError(writer, request, err)

		return
	}

	circuit.UpdateCircuitsGauge()

	flash.Set(writer, fmt.Sprintf("Imported %d circuits.", len(circuits)))
	http.Redirect(writer, request, "/circuits", http.StatusSeeOther)
}
