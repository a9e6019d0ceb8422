// internal/domain/catalog/entity.go
package catalog

import (
	"time"

	"gorm.io/gorm"
)

// Item represents a sellable catalog product
type Item struct {
	ID             string         `gorm:"primaryKey;size:64" json:"id"`
	Name           string         `gorm:"not null;size:255" json:"name"`
	Description    string         `gorm:"type:text" json:"description"`
	BasePrice      int64          `gorm:"not null" json:"base_price"`          // Price in cents
	EffectivePrice *int64         `json:"effective_price,omitempty"`           // Discounted price in cents, overrides BasePrice
	Available      bool           `gorm:"not null" json:"available"`
	Category       string         `gorm:"not null;size:100;index" json:"category"`
	Image          string         `gorm:"size:500" json:"image,omitempty"`
	Popular        bool           `gorm:"not null" json:"popular"`
	SortOrder      int            `gorm:"default:0" json:"sort_order"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Variations []Variation `gorm:"foreignKey:ItemID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"variations"`
	AddOns     []AddOn     `gorm:"foreignKey:ItemID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"add_ons"`
}

// Variation is a mutually exclusive size/tier choice priced on top of the item
type Variation struct {
	ID         string `gorm:"primaryKey;size:64" json:"id"`
	ItemID     string `gorm:"not null;size:64;index" json:"-"`
	Name       string `gorm:"not null;size:255" json:"name"`
	PriceDelta int64  `gorm:"not null;default:0" json:"price_delta"` // Added to the item price, in cents
	SortOrder  int    `gorm:"default:0" json:"sort_order"`
}

// AddOn is an optional extra that can be selected several times, priced per unit
type AddOn struct {
	ID        string `gorm:"primaryKey;size:64" json:"id"`
	ItemID    string `gorm:"not null;size:64;index" json:"-"`
	Name      string `gorm:"not null;size:255" json:"name"`
	Price     int64  `gorm:"not null;default:0" json:"price"` // Per unit, in cents
	Category  string `gorm:"size:100" json:"category"`
	SortOrder int    `gorm:"default:0" json:"sort_order"`
}

// Category groups items on the browsing surface
type Category struct {
	ID        string    `gorm:"primaryKey;size:100" json:"id"`
	Name      string    `gorm:"not null;size:255" json:"name"`
	Icon      string    `gorm:"size:50" json:"icon"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	Active    bool      `gorm:"not null" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PaymentMethod is a way the shopper intends to pay, shown on checkout only
type PaymentMethod struct {
	ID            string    `gorm:"primaryKey;size:64" json:"id"`
	Name          string    `gorm:"not null;size:255" json:"name"`
	AccountNumber string    `gorm:"size:100" json:"account_number"`
	AccountName   string    `gorm:"size:255" json:"account_name"`
	QRCodeURL     string    `gorm:"size:500" json:"qr_code_url"`
	Active        bool      `gorm:"not null" json:"active"`
	SortOrder     int       `gorm:"default:0" json:"sort_order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SiteSetting is a key/value row of storefront settings
type SiteSetting struct {
	Key       string    `gorm:"primaryKey;size:100" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SiteSettings is the typed view over the site_settings table
type SiteSettings struct {
	StoreName       string `json:"store_name"`
	DeliveryEnabled bool   `json:"delivery_enabled"`
	Currency        string `json:"currency"`
}

// Known site setting keys
const (
	SettingStoreName       = "site_name"
	SettingDeliveryEnabled = "delivery_enabled"
	SettingCurrency        = "currency"
)

// TableName overrides
func (Item) TableName() string          { return "catalog_items" }
func (Variation) TableName() string     { return "catalog_variations" }
func (AddOn) TableName() string         { return "catalog_add_ons" }
func (Category) TableName() string      { return "categories" }
func (PaymentMethod) TableName() string { return "payment_methods" }
func (SiteSetting) TableName() string   { return "site_settings" }

// FindVariation returns the item's variation with the given id
func (i *Item) FindVariation(id string) (*Variation, bool) {
	for k := range i.Variations {
		if i.Variations[k].ID == id {
			return &i.Variations[k], true
		}
	}
	return nil, false
}

// FindAddOn returns the item's add-on with the given id
func (i *Item) FindAddOn(id string) (*AddOn, bool) {
	for k := range i.AddOns {
		if i.AddOns[k].ID == id {
			return &i.AddOns[k], true
		}
	}
	return nil, false
}

// IsCustomizable reports whether adding the item needs a customization step
func (i *Item) IsCustomizable() bool {
	return len(i.Variations) > 0 || len(i.AddOns) > 0
}
