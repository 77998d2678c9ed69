package circuit

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/team-telnyx/netbox/netboxd/util"
)

// ImportAll creates a batch of circuits atomically. One bad row aborts
// the whole import.
func ImportAll(circuits []*Circuit) error {
	if len(circuits) == 0 {
		return nil
	}

	for _, circuitInst := range circuits {
		if !util.ValidCircuitID(circuitInst.CID) {
			return fmt.Errorf("%w: %v", ErrCircuitInvalidCID, circuitInst.CID)
		}

		if circuitInst.ProviderID == "" {
			return ErrCircuitInvalidProvider
		}
	}

	db := GetCircuitDB()

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, circuitInst := range circuits {
			res := tx.Create(circuitInst)
			if res.Error != nil {
				return res.Error
			}

			if res.RowsAffected != 1 {
				return ErrCircuitInternalDB
			}
		}

		return nil
	})
	if err != nil {
		slog.Error("circuit import error", "err", err)

		return fmt.Errorf("error importing circuits: %w", err)
	}

	if importsCounter != nil {
		importsCounter.Add(float64(len(circuits)))
	}

	return nil
}
