// internal/domain/catalog/admin.go
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-engine/internal/pkg/money"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrInvalidItem is returned when an admin item payload is rejected
var ErrInvalidItem = errors.New("invalid catalog item")

// UpsertItemRequest represents admin create-or-replace item data. Prices are
// decimal strings in major units, e.g. "149.50".
type UpsertItemRequest struct {
	Name           string                   `json:"name" binding:"required"`
	Description    string                   `json:"description"`
	BasePrice      string                   `json:"base_price" binding:"required"`
	EffectivePrice *string                  `json:"effective_price"`
	Available      bool                     `json:"available"`
	Category       string                   `json:"category" binding:"required"`
	Image          string                   `json:"image"`
	Popular        bool                     `json:"popular"`
	SortOrder      int                      `json:"sort_order"`
	Variations     []UpsertVariationRequest `json:"variations"`
	AddOns         []UpsertAddOnRequest     `json:"add_ons"`
}

// UpsertVariationRequest represents a variation in an item payload
type UpsertVariationRequest struct {
	ID         string `json:"id" binding:"required"`
	Name       string `json:"name" binding:"required"`
	PriceDelta string `json:"price_delta"`
}

// UpsertAddOnRequest represents an add-on in an item payload
type UpsertAddOnRequest struct {
	ID       string `json:"id" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Price    string `json:"price" binding:"required"`
	Category string `json:"category"`
}

// BuildItem converts an admin payload into an Item, parsing every price
func BuildItem(id string, req *UpsertItemRequest) (*Item, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidItem)
	}

	basePrice, err := money.Parse(req.BasePrice)
	if err != nil {
		return nil, fmt.Errorf("%w: base_price: %v", ErrInvalidItem, err)
	}

	item := &Item{
		ID:          id,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		BasePrice:   basePrice,
		Available:   req.Available,
		Category:    strings.TrimSpace(req.Category),
		Image:       req.Image,
		Popular:     req.Popular,
		SortOrder:   req.SortOrder,
	}
	if item.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidItem)
	}

	if req.EffectivePrice != nil && strings.TrimSpace(*req.EffectivePrice) != "" {
		effective, err := money.Parse(*req.EffectivePrice)
		if err != nil {
			return nil, fmt.Errorf("%w: effective_price: %v", ErrInvalidItem, err)
		}
		item.EffectivePrice = &effective
	}

	seen := make(map[string]struct{})
	for i, v := range req.Variations {
		if _, dup := seen[v.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate variation id %q", ErrInvalidItem, v.ID)
		}
		seen[v.ID] = struct{}{}

		var delta int64
		if strings.TrimSpace(v.PriceDelta) != "" {
			if delta, err = money.Parse(v.PriceDelta); err != nil {
				return nil, fmt.Errorf("%w: variation %q price_delta: %v", ErrInvalidItem, v.ID, err)
			}
		}
		item.Variations = append(item.Variations, Variation{
			ID:         v.ID,
			ItemID:     id,
			Name:       v.Name,
			PriceDelta: delta,
			SortOrder:  i,
		})
	}

	seen = make(map[string]struct{})
	for i, a := range req.AddOns {
		if _, dup := seen[a.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate add-on id %q", ErrInvalidItem, a.ID)
		}
		seen[a.ID] = struct{}{}

		price, err := money.Parse(a.Price)
		if err != nil {
			return nil, fmt.Errorf("%w: add-on %q price: %v", ErrInvalidItem, a.ID, err)
		}
		item.AddOns = append(item.AddOns, AddOn{
			ID:        a.ID,
			ItemID:    id,
			Name:      a.Name,
			Price:     price,
			Category:  a.Category,
			SortOrder: i,
		})
	}

	return item, nil
}

// UpsertItem creates or replaces an item together with its variations and add-ons
func (s *Service) UpsertItem(ctx context.Context, id string, req *UpsertItemRequest) (*Item, error) {
	item, err := BuildItem(id, req)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Omit(clause.Associations).Save(item).Error; err != nil {
			return err
		}
		if err := tx.Where("item_id = ?", item.ID).Delete(&Variation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("item_id = ?", item.ID).Delete(&AddOn{}).Error; err != nil {
			return err
		}
		if len(item.Variations) > 0 {
			if err := tx.Create(&item.Variations).Error; err != nil {
				return err
			}
		}
		if len(item.AddOns) > 0 {
			if err := tx.Create(&item.AddOns).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save catalog item: %w", err)
	}

	s.invalidate(ctx)
	s.log.WithFields(logrus.Fields{
		"item_id":    item.ID,
		"variations": len(item.Variations),
		"add_ons":    len(item.AddOns),
	}).Info("Catalog item saved")

	return item, nil
}

// SetAvailability marks an item as available or unavailable
func (s *Service) SetAvailability(ctx context.Context, id string, available bool) error {
	result := s.db.WithContext(ctx).Model(&Item{}).Where("id = ?", id).Update("available", available)
	if result.Error != nil {
		return fmt.Errorf("failed to update availability: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}

	s.invalidate(ctx)
	s.log.WithFields(logrus.Fields{
		"item_id":   id,
		"available": available,
	}).Info("Catalog item availability changed")

	return nil
}
