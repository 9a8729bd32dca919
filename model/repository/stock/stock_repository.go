package stock

import (
	"gorm.io/gorm"

	stockEntity "github.com/amanda-debetaz/PandaExpressPOS/model/entity/stock"
)

// StockRepository covers the read paths of prepared stock. All mutation goes
// through service/stock, which owns the transactional invariants.
type StockRepository struct {
	db *gorm.DB
}

func NewStockRepository(db *gorm.DB) *StockRepository {
	return &StockRepository{db: db}
}

// FindAll returns every prepared stock counter.
func (r *StockRepository) FindAll() ([]stockEntity.PreparedStock, error) {
	var rows []stockEntity.PreparedStock
	err := r.db.Order("menu_item_id").Find(&rows).Error
	return rows, err
}

// FindByMenuItem returns the counter for one menu item, or
// gorm.ErrRecordNotFound if nothing was ever cooked for it.
func (r *StockRepository) FindByMenuItem(menuItemID uint) (*stockEntity.PreparedStock, error) {
	var row stockEntity.PreparedStock
	err := r.db.Where("menu_item_id = ?", menuItemID).First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// IsOrderConsumed reports whether a consumption marker exists for the order.
func (r *StockRepository) IsOrderConsumed(orderID uint) (bool, error) {
	var n int64
	err := r.db.Model(&stockEntity.OrderConsumption{}).
		Where("order_id = ?", orderID).
		Count(&n).Error
	return n > 0, err
}
