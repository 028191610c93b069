package engine

import (
	"context"

	"github.com/aa0979783096-byte/hamster-island/internal/storage"
)

// ShopCatalog is the fixed island shop. Purchases are cosmetic: bought items
// land in the profile's item list and are never consumed.
var ShopCatalog = []storage.Item{
	{ID: "sunflower-house", Name: "Sunflower House", Type: "habitat", Cost: 120},
	{ID: "oak-wheel", Name: "Oak Running Wheel", Type: "habitat", Cost: 60},
	{ID: "wheat-garland", Name: "Wheat Garland", Type: "decoration", Cost: 40},
	{ID: "firefly-lantern", Name: "Firefly Lantern", Type: "decoration", Cost: 30},
	{ID: "blueberry-jam", Name: "Blueberry Jam", Type: "food", Cost: 25},
	{ID: "pumpkin-seeds", Name: "Roasted Pumpkin Seeds", Type: "food", Cost: 15},
}

// CatalogItem returns the shop entry with the given id, or nil.
func CatalogItem(id string) *storage.Item {
	for i := range ShopCatalog {
		if ShopCatalog[i].ID == id {
			return &ShopCatalog[i]
		}
	}
	return nil
}

// OwnsItem reports whether the profile already bought the item.
func (s *Service) OwnsItem(id string) bool {
	for _, it := range s.profile.Items {
		if it.ID == id {
			return true
		}
	}
	return false
}

// PurchaseItem buys a catalog item with seeds. Buying an already-owned item
// is a no-op; an unknown id returns nil.
func (s *Service) PurchaseItem(ctx context.Context, id string) (*storage.Item, error) {
	item := CatalogItem(id)
	if item == nil {
		return nil, nil
	}
	if s.OwnsItem(id) {
		return item, nil
	}
	if s.profile.Coins < item.Cost {
		return nil, InsufficientCoinsError{Needed: item.Cost, Have: s.profile.Coins}
	}

	owned := *item
	owned.Owned = true
	s.profile.Coins -= item.Cost
	s.profile.Items = append(s.profile.Items, owned)
	s.persist(ctx, kvPair{storage.KeyProfile, s.profile})
	return &owned, nil
}
