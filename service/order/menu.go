package order

import (
	"encoding/json"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/amanda-debetaz/PandaExpressPOS/config"
	"github.com/amanda-debetaz/PandaExpressPOS/core/cache"
	menuEntity "github.com/amanda-debetaz/PandaExpressPOS/model/entity/menu"
	menuRepo "github.com/amanda-debetaz/PandaExpressPOS/model/repository/menu"
)

const (
	menuCacheKey = "kiosk:menu"
	menuCacheTTL = 60 * time.Second
)

// MenuEntry is one selectable menu item on the kiosk.
type MenuEntry struct {
	MenuItemID uint    `json:"menu_item_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
}

// KioskMenu groups active items the way the kiosk screens do.
type KioskMenu struct {
	Entrees    []MenuEntry `json:"entrees"`
	Appetizers []MenuEntry `json:"appetizers"`
	ALaCarte   []MenuEntry `json:"a_la_carte"`
	Sides      []MenuEntry `json:"sides"`
}

// GetKioskMenu returns the grouped active menu. Served from Redis when
// configured, the in-process cache otherwise; a miss falls through to the DB.
func GetKioskMenu(db *gorm.DB) (*KioskMenu, error) {
	if cached := menuFromCache(); cached != nil {
		return cached, nil
	}

	items, err := menuRepo.NewMenuRepository(db).FindActive()
	if err != nil {
		return nil, err
	}

	grouped := &KioskMenu{
		Entrees:    []MenuEntry{},
		Appetizers: []MenuEntry{},
		ALaCarte:   []MenuEntry{},
		Sides:      []MenuEntry{},
	}
	for _, item := range items {
		entry := MenuEntry{MenuItemID: item.MenuItemID, Name: item.Name, Price: item.Price}
		switch item.CategoryID {
		case menuEntity.CategoryEntree:
			grouped.Entrees = append(grouped.Entrees, entry)
		case menuEntity.CategoryAppetizer:
			grouped.Appetizers = append(grouped.Appetizers, entry)
		case menuEntity.CategoryALaCarte:
			grouped.ALaCarte = append(grouped.ALaCarte, entry)
		case menuEntity.CategorySide:
			grouped.Sides = append(grouped.Sides, entry)
		}
	}

	menuToCache(grouped)
	return grouped, nil
}

// InvalidateMenuCache drops the cached menu (manager edited an item).
func InvalidateMenuCache() {
	if config.RedisClient != nil {
		if err := config.RedisClient.Del(config.RedisCtx(), menuCacheKey).Err(); err != nil {
			log.Printf("menu cache: redis del failed: %v", err)
		}
	}
	cache.GetInstance().InvalidateTag("menu")
}

func menuFromCache() *KioskMenu {
	if config.RedisClient != nil {
		raw, err := config.RedisClient.Get(config.RedisCtx(), menuCacheKey).Bytes()
		if err == nil {
			var m KioskMenu
			if json.Unmarshal(raw, &m) == nil {
				return &m
			}
		}
		return nil
	}
	if v, ok := cache.GetInstance().Get(menuCacheKey); ok {
		if m, ok := v.(*KioskMenu); ok {
			return m
		}
	}
	return nil
}

func menuToCache(m *KioskMenu) {
	if config.RedisClient != nil {
		raw, err := json.Marshal(m)
		if err != nil {
			return
		}
		if err := config.RedisClient.Set(config.RedisCtx(), menuCacheKey, raw, menuCacheTTL).Err(); err != nil {
			log.Printf("menu cache: redis set failed: %v", err)
		}
		return
	}
	cache.GetInstance().Set(menuCacheKey, m, int64(menuCacheTTL/time.Second), []string{"menu"})
}
