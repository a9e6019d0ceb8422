// internal/domain/catalog/service.go
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-engine/internal/config"
	"gorm.io/gorm"
)

// ErrItemNotFound is returned when a catalog item does not exist
var ErrItemNotFound = errors.New("catalog item not found")

// Cache keys
const (
	itemsCacheKey          = "catalog:items"
	categoriesCacheKey     = "catalog:categories"
	paymentMethodsCacheKey = "catalog:payment_methods"
	settingsCacheKey       = "catalog:site_settings"
)

// Reader is the read side of the catalog used by the storefront surfaces
type Reader interface {
	ListItems(ctx context.Context, filter ListFilter) ([]Item, error)
	GetItem(ctx context.Context, id string) (*Item, error)
	ListCategories(ctx context.Context) ([]Category, error)
	ListPaymentMethods(ctx context.Context) ([]PaymentMethod, error)
	GetSiteSettings(ctx context.Context) (*SiteSettings, error)
}

// Cache stores JSON-encoded catalog views. A miss is reported as redis.Nil.
type Cache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) error
	SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// Service handles catalog reads and admin maintenance
type Service struct {
	db     *gorm.DB
	cache  Cache
	config *config.Config
	log    *logrus.Logger
}

// NewService creates a new catalog service. cache may be nil, in which case
// every read goes to the database.
func NewService(db *gorm.DB, cache Cache, cfg *config.Config, log *logrus.Logger) *Service {
	return &Service{
		db:     db,
		cache:  cache,
		config: cfg,
		log:    log,
	}
}

// ListItems returns catalog items matching the filter, in display order
func (s *Service) ListItems(ctx context.Context, filter ListFilter) ([]Item, error) {
	items, err := s.loadItems(ctx)
	if err != nil {
		return nil, err
	}
	return FilterItems(items, filter), nil
}

// GetItem returns a single catalog item with its variations and add-ons
func (s *Service) GetItem(ctx context.Context, id string) (*Item, error) {
	items, err := s.loadItems(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, ErrItemNotFound
}

// ListCategories returns active categories in display order
func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := s.cached(ctx, categoriesCacheKey, &categories, func() error {
		return s.db.WithContext(ctx).
			Where("active = ?", true).
			Order("sort_order ASC, name ASC").
			Find(&categories).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve categories: %w", err)
	}
	return categories, nil
}

// ListPaymentMethods returns active payment methods in display order
func (s *Service) ListPaymentMethods(ctx context.Context) ([]PaymentMethod, error) {
	var methods []PaymentMethod
	err := s.cached(ctx, paymentMethodsCacheKey, &methods, func() error {
		return s.db.WithContext(ctx).
			Where("active = ?", true).
			Order("sort_order ASC").
			Find(&methods).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payment methods: %w", err)
	}
	return methods, nil
}

// GetSiteSettings returns the typed storefront settings
func (s *Service) GetSiteSettings(ctx context.Context) (*SiteSettings, error) {
	var settings SiteSettings
	err := s.cached(ctx, settingsCacheKey, &settings, func() error {
		var rows []SiteSetting
		if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
			return err
		}
		settings = settingsFromRows(rows, s.config.App.StoreName)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve site settings: %w", err)
	}
	return &settings, nil
}

func (s *Service) loadItems(ctx context.Context) ([]Item, error) {
	var items []Item
	err := s.cached(ctx, itemsCacheKey, &items, func() error {
		return s.db.WithContext(ctx).
			Preload("Variations", func(db *gorm.DB) *gorm.DB {
				return db.Order("sort_order ASC")
			}).
			Preload("AddOns", func(db *gorm.DB) *gorm.DB {
				return db.Order("sort_order ASC")
			}).
			Order("sort_order ASC, name ASC").
			Find(&items).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve catalog items: %w", err)
	}
	return items, nil
}

// cached reads key into dest, falling back to load and repopulating the cache.
// Redis problems are logged and never fail the read.
func (s *Service) cached(ctx context.Context, key string, dest interface{}, load func() error) error {
	if s.cache != nil {
		err := s.cache.GetJSON(ctx, key, dest)
		if err == nil {
			return nil
		}
		if !errors.Is(err, redis.Nil) {
			s.log.WithError(err).WithField("key", key).Warn("Catalog cache read failed")
		}
	}

	if err := load(); err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, dest, s.config.Catalog.CacheTTL); err != nil {
			s.log.WithError(err).WithField("key", key).Warn("Catalog cache write failed")
		}
	}
	return nil
}

// invalidate drops every cached catalog view
func (s *Service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	err := s.cache.Del(ctx, itemsCacheKey, categoriesCacheKey, paymentMethodsCacheKey, settingsCacheKey)
	if err != nil {
		s.log.WithError(err).Warn("Catalog cache invalidation failed")
	}
}

func settingsFromRows(rows []SiteSetting, defaultStoreName string) SiteSettings {
	settings := SiteSettings{
		StoreName: defaultStoreName,
		Currency:  "PHP",
	}
	for _, row := range rows {
		switch row.Key {
		case SettingStoreName:
			if row.Value != "" {
				settings.StoreName = row.Value
			}
		case SettingDeliveryEnabled:
			enabled, err := strconv.ParseBool(row.Value)
			settings.DeliveryEnabled = err == nil && enabled
		case SettingCurrency:
			if row.Value != "" {
				settings.Currency = row.Value
			}
		}
	}
	return settings
}
