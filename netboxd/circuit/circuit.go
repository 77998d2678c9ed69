package circuit

import (
	"database/sql"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/team-telnyx/netbox/netboxd/util"
)

// Circuit is a physical connection purchased from a provider, identified
// by the provider's circuit ID (CID).
type Circuit struct {
	gorm.Model
	ID          string `gorm:"uniqueIndex;not null;default:null"`
	CID         string `gorm:"not null;default:null;index:idx_circuits_provider_cid,unique"`
	ProviderID  string `gorm:"not null;index:idx_circuits_provider_cid,unique"`
	TypeID      string `gorm:"index"`
	InstallDate sql.NullTime
	CommitRate  uint64 // kbps
	Comments    string
}

func Create(circuitInst *Circuit) error {
	if !util.ValidCircuitID(circuitInst.CID) {
		return ErrCircuitInvalidCID
	}

	if circuitInst.ProviderID == "" {
		return ErrCircuitInvalidProvider
	}

	existing, err := GetByCID(circuitInst.ProviderID, circuitInst.CID)
	if err == nil && existing.ID != "" {
		slog.Error("circuit exists in DB", "cid", circuitInst.CID, "provider", circuitInst.ProviderID)

		return ErrCircuitExists
	}

	db := GetCircuitDB()

	res := db.Create(&circuitInst)
	if res.RowsAffected != 1 {
		return fmt.Errorf("incorrect number of rows affected, err: %w", res.Error)
	}

	if res.Error != nil {
		return res.Error
	}

	return nil
}

func GetAll() []*Circuit {
	var result []*Circuit

	db := GetCircuitDB()
	db.Order("cid").Find(&result)

	return result
}

// GetFiltered narrows the circuit list by provider and/or type, both
// optional. An empty filter returns everything, same as GetAll.
func GetFiltered(providerID string, typeID string) []*Circuit {
	var result []*Circuit

	db := GetCircuitDB().Order("cid")

	if providerID != "" {
		db = db.Where("provider_id = ?", providerID)
	}

	if typeID != "" {
		db = db.Where("type_id = ?", typeID)
	}

	db.Find(&result)

	return result
}

func GetByID(circuitID string) (*Circuit, error) {
	if circuitID == "" {
		return nil, ErrCircuitNotFound
	}

	var aCircuit *Circuit

	db := GetCircuitDB()

	res := db.Limit(1).Find(&aCircuit, "id = ?", circuitID)
	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected != 1 {
		return nil, ErrCircuitNotFound
	}

	return aCircuit, nil
}

func GetByCID(providerID string, cid string) (*Circuit, error) {
	if providerID == "" || cid == "" {
		return nil, ErrCircuitNotFound
	}

	var aCircuit *Circuit

	db := GetCircuitDB()

	res := db.Limit(1).Find(&aCircuit, "provider_id = ? AND cid = ?", providerID, cid)
	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected != 1 {
		return nil, ErrCircuitNotFound
	}

	return aCircuit, nil
}

func CountByProvider(providerID string) (int64, error) {
	var count int64

	db := GetCircuitDB()

	res := db.Model(&Circuit{}).Where("provider_id = ?", providerID).Count(&count)
	if res.Error != nil {
		return 0, res.Error
	}

	return count, nil
}

func CountByType(typeID string) (int64, error) {
	var count int64

	db := GetCircuitDB()

	res := db.Model(&Circuit{}).Where("type_id = ?", typeID).Count(&count)
	if res.Error != nil {
		return 0, res.Error
	}

	return count, nil
}

func (c *Circuit) Save() error {
	db := GetCircuitDB()

	res := db.Model(&c).
		Updates(map[string]interface{}{
			"cid":          &c.CID,
			"provider_id":  &c.ProviderID,
			"type_id":      &c.TypeID,
			"install_date": &c.InstallDate,
			"commit_rate":  &c.CommitRate,
			"comments":     &c.Comments,
		},
		)

	if res.Error != nil {
		slog.Error("error updating circuit", "res", res)

		return ErrCircuitInternalDB
	}

	return nil
}

// Delete removes the circuit and its terminations in one transaction.
func Delete(circuitID string) error {
	if circuitID == "" {
		return ErrCircuitIDEmpty
	}

	dCircuit, err := GetByID(circuitID)
	if err != nil {
		return fmt.Errorf("circuit %v not found: %w", circuitID, err)
	}

	db := GetCircuitDB()

	err = db.Transaction(func(tx *gorm.DB) error {
		res := tx.Unscoped().Where("circuit_id = ?", circuitID).Delete(&Termination{})
		if res.Error != nil {
			return res.Error
		}

		res = tx.Limit(1).Unscoped().Delete(&dCircuit)
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected != 1 {
			return ErrCircuitInternalDB
		}

		return nil
	})
	if err != nil {
		slog.Error("circuit delete error", "err", err)

		return fmt.Errorf("error deleting circuit: %w", err)
	}

	return nil
}
