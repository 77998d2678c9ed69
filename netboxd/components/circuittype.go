package components

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

type CircuitType struct {
	ID           string
	Name         string
	Slug         string
	CircuitCount int64
}

func CircuitTypes(circuitTypes []CircuitType) templ.Component {
	return page("Circuit Types", "", templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<h1>Circuit Types</h1>\n<table>\n<tr><th>Name</th><th>Circuits</th></tr>\n")
		if err != nil {
			return fmt.Errorf("error rendering page: %w", err)
		}

		for _, aCircuitType := range circuitTypes {
			_, err = fmt.Fprintf(w, "<tr><td><a href=\"/circuit-type/%s\">%s</a></td><td>%d</td></tr>\n",
				templ.EscapeString(aCircuitType.Slug),
				templ.EscapeString(aCircuitType.Name),
				aCircuitType.CircuitCount,
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

func CircuitTypeDetail(aCircuitType CircuitType, circuits []Circuit, flashMessage string) templ.Component {
	return page(aCircuitType.Name, flashMessage, templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, "<h1>%s</h1>\n", templ.EscapeString(aCircuitType.Name))
		if err != nil {
			return fmt.Errorf("error rendering page: %w", err)
		}

		return writeCircuitTable(w, circuits)
	}))
}
