// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-engine/internal/domain/catalog"
	"gorm.io/gorm"
)

// Migration handles database migrations
type Migration struct {
	db  *gorm.DB
	log *logrus.Logger
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB, log *logrus.Logger) *Migration {
	return &Migration{
		db:  db,
		log: log,
	}
}

// Models lists every persisted model in dependency order
func Models() []interface{} {
	return []interface{}{
		&catalog.Category{},
		&catalog.Item{},
		&catalog.Variation{},
		&catalog.AddOn{},
		&catalog.PaymentMethod{},
		&catalog.SiteSetting{},
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	m.log.Info("Running database auto-migrations")

	for _, model := range Models() {
		m.log.Debugf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	m.log.Info("Database auto-migrations completed")
	return nil
}

// CreateIndexes creates additional indexes for the browsing queries
func (m *Migration) CreateIndexes() error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_catalog_items_category_sort ON catalog_items(category, sort_order)",
		"CREATE INDEX IF NOT EXISTS idx_catalog_items_available ON catalog_items(available)",
		"CREATE INDEX IF NOT EXISTS idx_catalog_items_lower_name ON catalog_items(LOWER(name))",
		"CREATE INDEX IF NOT EXISTS idx_catalog_variations_item_sort ON catalog_variations(item_id, sort_order)",
		"CREATE INDEX IF NOT EXISTS idx_catalog_add_ons_item_sort ON catalog_add_ons(item_id, sort_order)",
		"CREATE INDEX IF NOT EXISTS idx_categories_active_sort ON categories(active, sort_order)",
		"CREATE INDEX IF NOT EXISTS idx_payment_methods_active_sort ON payment_methods(active, sort_order)",
	}

	failed := 0
	for _, indexSQL := range indexes {
		if err := m.db.Exec(indexSQL).Error; err != nil {
			m.log.WithError(err).Warn("Failed to create index")
			failed++
		}
	}

	m.log.WithFields(logrus.Fields{
		"created": len(indexes) - failed,
		"failed":  failed,
	}).Info("Database indexes created")
	return nil
}

// SeedInitialData inserts default settings and a sample catalog
func (m *Migration) SeedInitialData() error {
	m.log.Info("Seeding initial data")

	if err := m.seedSiteSettings(); err != nil {
		return fmt.Errorf("failed to seed site settings: %w", err)
	}
	if err := m.seedCategories(); err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}
	if err := m.seedItems(); err != nil {
		return fmt.Errorf("failed to seed items: %w", err)
	}

	m.log.Info("Initial data seeded")
	return nil
}

func (m *Migration) seedSiteSettings() error {
	settings := []catalog.SiteSetting{
		{Key: catalog.SettingStoreName, Value: "Botika RBT"},
		{Key: catalog.SettingDeliveryEnabled, Value: "true"},
		{Key: catalog.SettingCurrency, Value: "PHP"},
	}
	for _, s := range settings {
		if err := m.createIfMissing(&catalog.SiteSetting{}, "key = ?", s.Key, &s); err != nil {
			return err
		}
	}
	return nil
}

func (m *Migration) seedCategories() error {
	categories := []catalog.Category{
		{ID: "medicines", Name: "Medicines", Icon: "💊", SortOrder: 1, Active: true},
		{ID: "vitamins", Name: "Vitamins", Icon: "🍊", SortOrder: 2, Active: true},
		{ID: "personal-care", Name: "Personal Care", Icon: "🧴", SortOrder: 3, Active: true},
	}
	for _, c := range categories {
		if err := m.createIfMissing(&catalog.Category{}, "id = ?", c.ID, &c); err != nil {
			return err
		}
	}
	return nil
}

func (m *Migration) seedItems() error {
	discounted := int64(1800)

	items := []catalog.Item{
		{
			ID: "paracetamol-500", Name: "Paracetamol 500mg", Description: "Fever and pain relief tablet",
			BasePrice: 500, Available: true, Category: "medicines", Popular: true, SortOrder: 1,
			Variations: []catalog.Variation{
				{ID: "paracetamol-500-strip", Name: "Strip of 10", PriceDelta: 4000, SortOrder: 0},
				{ID: "paracetamol-500-box", Name: "Box of 100", PriceDelta: 39000, SortOrder: 1},
			},
		},
		{
			ID: "cough-syrup", Name: "Cough Syrup", Description: "Non-drowsy expectorant",
			BasePrice: 12000, Available: true, Category: "medicines", SortOrder: 2,
			Variations: []catalog.Variation{
				{ID: "cough-syrup-60", Name: "60 ml", PriceDelta: 0, SortOrder: 0},
				{ID: "cough-syrup-120", Name: "120 ml", PriceDelta: 9500, SortOrder: 1},
			},
			AddOns: []catalog.AddOn{
				{ID: "cough-syrup-spoon", Name: "Dosing Spoon", Price: 1500, Category: "Accessories", SortOrder: 0},
			},
		},
		{
			ID: "vitamin-c", Name: "Vitamin C 500mg", Description: "Ascorbic acid, daily immune support",
			BasePrice: 2000, EffectivePrice: &discounted, Available: true, Category: "vitamins", Popular: true, SortOrder: 3,
		},
		{
			ID: "face-mask", Name: "Face Mask", Description: "3-ply disposable surgical mask",
			BasePrice: 1000, Available: true, Category: "personal-care", SortOrder: 4,
			AddOns: []catalog.AddOn{
				{ID: "face-mask-sanitizer", Name: "Hand Sanitizer 50ml", Price: 4500, Category: "Hygiene", SortOrder: 0},
				{ID: "face-mask-wipes", Name: "Wet Wipes", Price: 3500, Category: "Hygiene", SortOrder: 1},
				{ID: "face-mask-pouch", Name: "Mask Pouch", Price: 2000, Category: "Accessories", SortOrder: 2},
			},
		},
	}

	for _, item := range items {
		var existing catalog.Item
		err := m.db.Unscoped().Where("id = ?", item.ID).First(&existing).Error
		if err == nil {
			m.log.WithField("item_id", item.ID).Debug("Item already exists")
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := m.db.Create(&item).Error; err != nil {
			return fmt.Errorf("failed to create item %s: %w", item.ID, err)
		}
		m.log.WithField("item_id", item.ID).Info("Seeded catalog item")
	}

	return nil
}

// createIfMissing inserts row unless a record matching query already exists
func (m *Migration) createIfMissing(model interface{}, query string, arg interface{}, row interface{}) error {
	var count int64
	if err := m.db.Model(model).Where(query, arg).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return m.db.Create(row).Error
}

// DropAllTables drops all tables (use with extreme caution)
func (m *Migration) DropAllTables() error {
	m.log.Warn("Dropping all database tables")

	tables := []string{
		"catalog_add_ons",
		"catalog_variations",
		"catalog_items",
		"categories",
		"payment_methods",
		"site_settings",
	}

	for _, table := range tables {
		if err := m.db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", table)).Error; err != nil {
			m.log.WithError(err).WithField("table", table).Warn("Failed to drop table")
		}
	}

	return nil
}
