package provider

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/team-telnyx/netbox/netboxd/util"
)

// Provider is an upstream carrier from which circuits are purchased.
type Provider struct {
	gorm.Model
	ID           string `gorm:"uniqueIndex;not null;default:null"`
	Name         string `gorm:"uniqueIndex;not null;default:null"`
	Slug         string `gorm:"uniqueIndex;not null;default:null"`
	ASN          uint32
	Account      string
	PortalURL    string
	NocContact   string
	AdminContact string
	Comments     string
}

func Create(providerInst *Provider) error {
	if !util.ValidObjectName(providerInst.Name) {
		return ErrProviderInvalidName
	}

	if providerInst.Slug == "" {
		providerInst.Slug = util.Slugify(providerInst.Name)
	}

	if !util.ValidSlug(providerInst.Slug) {
		return ErrProviderInvalidSlug
	}

	providerAlreadyExists, err := Exists(providerInst.Slug)
	if err != nil {
		slog.Error("error checking db for provider", "slug", providerInst.Slug, "err", err)

		return err
	}

	if providerAlreadyExists {
		slog.Error("provider exists in DB", "slug", providerInst.Slug)

		return ErrProviderExists
	}

	db := GetProviderDB()

	res := db.Create(&providerInst)
	if res.RowsAffected != 1 {
		return fmt.Errorf("incorrect number of rows affected, err: %w", res.Error)
	}

	if res.Error != nil {
		return res.Error
	}

	return nil
}

func GetAll() []*Provider {
	var result []*Provider

	db := GetProviderDB()
	db.Order("name").Find(&result)

	return result
}

func GetByID(providerID string) (*Provider, error) {
	if providerID == "" {
		return nil, ErrProviderNotFound
	}

	var aProvider *Provider

	db := GetProviderDB()

	res := db.Limit(1).Find(&aProvider, "id = ?", providerID)
	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected != 1 {
		return nil, ErrProviderNotFound
	}

	return aProvider, nil
}

func GetBySlug(slug string) (*Provider, error) {
	if slug == "" {
		return nil, ErrProviderNotFound
	}

	var aProvider *Provider

	db := GetProviderDB()

	res := db.Limit(1).Find(&aProvider, "slug = ?", slug)
	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected != 1 {
		return nil, ErrProviderNotFound
	}

	return aProvider, nil
}

func Exists(slug string) (bool, error) {
	var count int64

	db := GetProviderDB()

	res := db.Model(&Provider{}).Where("slug = ?", slug).Count(&count)
	if res.Error != nil {
		return false, res.Error
	}

	return count > 0, nil
}

func (p *Provider) Save() error {
	db := GetProviderDB()

	res := db.Model(&p).
		Updates(map[string]interface{}{
			"name":          &p.Name,
			"slug":          &p.Slug,
			"asn":           &p.ASN,
			"account":       &p.Account,
			"portal_url":    &p.PortalURL,
			"noc_contact":   &p.NocContact,
			"admin_contact": &p.AdminContact,
			"comments":      &p.Comments,
		},
		)

	if res.Error != nil {
		slog.Error("error updating provider", "res", res)

		return ErrProviderInternalDB
	}

	return nil
}

// Delete refuses while circuits still reference the provider; callers
// check with their circuit count first.
func Delete(providerID string, circuitCount int64) error {
	if providerID == "" {
		return ErrProviderIDEmpty
	}

	if circuitCount > 0 {
		return ErrProviderInUse
	}

	dProvider, err := GetByID(providerID)
	if err != nil {
		return fmt.Errorf("provider %v not found: %w", providerID, err)
	}

	db := GetProviderDB()

	res := db.Limit(1).Unscoped().Delete(&dProvider)
	if res.RowsAffected != 1 {
		slog.Error("provider delete error", "RowsAffected", res.RowsAffected)

		return ErrProviderInternalDB
	}

	return nil
}
