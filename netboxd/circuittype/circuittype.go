package circuittype

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/team-telnyx/netbox/netboxd/util"
)

// CircuitType classifies circuits (transit, peering, dark fiber, ...).
type CircuitType struct {
	gorm.Model
	ID   string `gorm:"uniqueIndex;not null;default:null"`
	Name string `gorm:"uniqueIndex;not null;default:null"`
	Slug string `gorm:"uniqueIndex;not null;default:null"`
}

func Create(typeInst *CircuitType) error {
	if !util.ValidObjectName(typeInst.Name) {
		return ErrTypeInvalidName
	}

	if typeInst.Slug == "" {
		typeInst.Slug = util.Slugify(typeInst.Name)
	}

	if !util.ValidSlug(typeInst.Slug) {
		return ErrTypeInvalidSlug
	}

	_, err := GetBySlug(typeInst.Slug)
	if err == nil {
		slog.Error("circuit type exists in DB", "slug", typeInst.Slug)

		return ErrTypeExists
	}

	db := GetCircuitTypeDB()

	res := db.Create(&typeInst)
	if res.RowsAffected != 1 {
		return fmt.Errorf("incorrect number of rows affected, err: %w", res.Error)
	}

	if res.Error != nil {
		return res.Error
	}

	return nil
}

func GetAll() []*CircuitType {
	var result []*CircuitType

	db := GetCircuitTypeDB()
	db.Order("name").Find(&result)

	return result
}

func GetByID(typeID string) (*CircuitType, error) {
	if typeID == "" {
		return nil, ErrTypeNotFound
	}

	var aType *CircuitType

	db := GetCircuitTypeDB()

	res := db.Limit(1).Find(&aType, "id = ?", typeID)
	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected != 1 {
		return nil, ErrTypeNotFound
	}

	return aType, nil
}

func GetBySlug(slug string) (*CircuitType, error) {
	if slug == "" {
		return nil, ErrTypeNotFound
	}

	var aType *CircuitType

	db := GetCircuitTypeDB()

	res := db.Limit(1).Find(&aType, "slug = ?", slug)
	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected != 1 {
		return nil, ErrTypeNotFound
	}

	return aType, nil
}

func (c *CircuitType) Save() error {
	db := GetCircuitTypeDB()

	res := db.Model(&c).
		Updates(map[string]interface{}{
			"name": &c.Name,
			"slug": &c.Slug,
		},
		)

	if res.Error != nil {
		slog.Error("error updating circuit type", "res", res)

		return ErrTypeInternalDB
	}

	return nil
}

// Delete refuses while circuits still reference the type; callers check
// with their circuit count first.
func Delete(typeID string, circuitCount int64) error {
	if typeID == "" {
		return ErrTypeIDEmpty
	}

	if circuitCount > 0 {
		return ErrTypeInUse
	}

	dType, err := GetByID(typeID)
	if err != nil {
		return fmt.Errorf("circuit type %v not found: %w", typeID, err)
	}

	db := GetCircuitTypeDB()

	res := db.Limit(1).Unscoped().Delete(&dType)
	if res.RowsAffected != 1 {
		slog.Error("circuit type delete error", "RowsAffected", res.RowsAffected)

		return ErrTypeInternalDB
	}

	return nil
}
