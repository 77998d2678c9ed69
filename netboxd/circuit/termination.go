package circuit

import (
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"
)

const (
	SideA = "A"
	SideZ = "Z"
	// staging value used only inside the swap transaction, never visible
	// to other connections
	sidePlaceholder = "_"
)

// Termination is one end of a circuit. The unique index on
// (circuit_id, term_side) means a circuit has at most one A side and one
// Z side.
type Termination struct {
	gorm.Model
	ID         string `gorm:"uniqueIndex;not null;default:null"`
	CircuitID  string `gorm:"not null;default:null;index:idx_terminations_circuit_side,unique"`
	TermSide   string `gorm:"not null;default:null;index:idx_terminations_circuit_side,unique"`
	SiteName   string
	PortSpeed  uint64 // kbps
	XConnectID string
	PPInfo     string // patch panel/port(s)
}

func ValidSide(side string) bool {
	return side == SideA || side == SideZ
}

func GetTermination(circuitID string, side string) (*Termination, error) {
	if circuitID == "" {
		return nil, ErrTerminationNotFound
	}

	if !ValidSide(side) {
		return nil, ErrTerminationInvalidSide
	}

	var aTermination *Termination

	db := GetCircuitDB()

	res := db.Limit(1).Find(&aTermination, "circuit_id = ? AND term_side = ?", circuitID, side)
	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected != 1 {
		return nil, ErrTerminationNotFound
	}

	return aTermination, nil
}

func CreateTermination(termInst *Termination) error {
	if termInst.CircuitID == "" {
		return ErrCircuitIDEmpty
	}

	if !ValidSide(termInst.TermSide) {
		return ErrTerminationInvalidSide
	}

	_, err := GetTermination(termInst.CircuitID, termInst.TermSide)
	if err == nil {
		slog.Error("termination exists in DB",
			"circuit", termInst.CircuitID, "side", termInst.TermSide,
		)

		return ErrTerminationExists
	}

	if !errors.Is(err, ErrTerminationNotFound) {
		return err
	}

	db := GetCircuitDB()

	res := db.Create(&termInst)
	if res.RowsAffected != 1 {
		return fmt.Errorf("incorrect number of rows affected, err: %w", res.Error)
	}

	if res.Error != nil {
		return res.Error
	}

	return nil
}

func (t *Termination) Save() error {
	db := GetCircuitDB()

	res := db.Model(&t).
		Updates(map[string]interface{}{
			"site_name":    &t.SiteName,
			"port_speed":   &t.PortSpeed,
			"x_connect_id": &t.XConnectID,
			"pp_info":      &t.PPInfo,
		},
		)

	if res.Error != nil {
		slog.Error("error updating termination", "res", res)

		return ErrTerminationInternalDB
	}

	return nil
}

func DeleteTermination(circuitID string, side string) error {
	dTermination, err := GetTermination(circuitID, side)
	if err != nil {
		return fmt.Errorf("termination not found: %w", err)
	}

	db := GetCircuitDB()

	res := db.Limit(1).Unscoped().Delete(&dTermination)
	if res.RowsAffected != 1 {
		slog.Error("termination delete error", "RowsAffected", res.RowsAffected)

		return ErrTerminationInternalDB
	}

	return nil
}

func setTermSide(tx *gorm.DB, term *Termination, side string) error {
	res := tx.Model(&term).Update("term_side", side)
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected != 1 {
		return ErrTerminationInternalDB
	}

	term.TermSide = side

	return nil
}

// SwapTerminations exchanges the A and Z side labels of a circuit's
// terminations. With both sides present a direct exchange would trip the
// unique index on (circuit_id, term_side) after the first UPDATE, since
// SQLite enforces the index per statement. The A side is therefore staged
// through a placeholder label, with all three UPDATEs in one transaction
// so no other connection ever observes the placeholder or a duplicate
// side.
func SwapTerminations(circuitID string) error {
	termA, err := GetTermination(circuitID, SideA)
	if err != nil && !errors.Is(err, ErrTerminationNotFound) {
		return err
	}

	termZ, err := GetTermination(circuitID, SideZ)
	if err != nil && !errors.Is(err, ErrTerminationNotFound) {
		return err
	}

	if termA == nil && termZ == nil {
		return ErrNoTerminations
	}

	db := GetCircuitDB()

	switch {
	case termA != nil && termZ != nil:
		err = db.Transaction(func(tx *gorm.DB) error {
			if txErr := setTermSide(tx, termA, sidePlaceholder); txErr != nil {
				return txErr
			}

			if txErr := setTermSide(tx, termZ, SideA); txErr != nil {
				return txErr
			}

			return setTermSide(tx, termA, SideZ)
		})
	case termA != nil:
		err = setTermSide(db, termA, SideZ)
	default:
		err = setTermSide(db, termZ, SideA)
	}

	if err != nil {
		slog.Error("error swapping terminations", "circuit", circuitID, "err", err)

		return fmt.Errorf("error swapping terminations: %w", err)
	}

	if swapsCounter != nil {
		swapsCounter.Inc()
	}

	return nil
}
