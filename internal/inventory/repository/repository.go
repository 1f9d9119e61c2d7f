package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tair/stock-ledger/internal/inventory/domain"
)

// lotNaturalKey is the conflict target for the lot upsert.
var lotNaturalKey = []clause.Column{
	{Name: "product_code"},
	{Name: "size"},
	{Name: "purchase_price"},
}

// translateDuplicate maps a unique-constraint breach that escaped the upsert
// path onto the domain sentinel. Needs TranslateError enabled on the gorm
// connection.
func translateDuplicate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateLot
	}
	return err
}

type GormLedgerRepository struct {
	db *gorm.DB
}

func NewGormLedgerRepository(db *gorm.DB) *GormLedgerRepository {
	return &GormLedgerRepository{db: db}
}

func (r *GormLedgerRepository) AutoMigrate() error {
	return r.db.AutoMigrate(
		&domain.Lot{},
		&domain.StockInEvent{},
		&domain.StockOutEvent{},
		&domain.Adjustment{},
	)
}

// RecordStockIn appends the event and upserts the lot in one transaction. The
// upsert is a single conditional write keyed by the natural key, so concurrent
// stock-ins to the same key cannot race a read-then-write.
func (r *GormLedgerRepository) RecordStockIn(event *domain.StockInEvent) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(event).Error; err != nil {
			return err
		}

		lot := domain.Lot{
			Category:      event.Category,
			ProductCode:   event.ProductCode,
			Size:          event.Size,
			PurchasePrice: event.PurchasePrice,
			Quantity:      event.Quantity,
		}
		return translateDuplicate(tx.Clauses(clause.OnConflict{
			Columns: lotNaturalKey,
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity": gorm.Expr("lots.quantity + ?", event.Quantity),
				"category": event.Category,
			}),
		}).Create(&lot).Error)
	})
}

// RecordStockOut locks the lot row, writes the event with the captured lot
// attributes, and decrements the quantity. The decrement carries a
// quantity >= ? guard so the row can never go negative even under a weaker
// isolation level.
func (r *GormLedgerRepository) RecordStockOut(lotID uint, sellPrice float64, quantity int) (*domain.StockOutEvent, error) {
	var event *domain.StockOutEvent

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var lot domain.Lot
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&lot, lotID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrInsufficientStock
		}
		if err != nil {
			return err
		}
		if lot.Quantity < quantity {
			return domain.ErrInsufficientStock
		}

		event = &domain.StockOutEvent{
			Category:      lot.Category,
			ProductCode:   lot.ProductCode,
			Size:          lot.Size,
			PurchasePrice: lot.PurchasePrice,
			SellPrice:     sellPrice,
			Quantity:      quantity,
			Profit:        domain.Profit(sellPrice, lot.PurchasePrice, quantity),
			CreatedAt:     time.Now(),
		}
		if err := tx.Create(event).Error; err != nil {
			return err
		}

		result := tx.Model(&domain.Lot{}).
			Where("id = ? AND quantity >= ?", lotID, quantity).
			Update("quantity", gorm.Expr("quantity - ?", quantity))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrInsufficientStock
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return event, nil
}

// ReverseStockOut restores the event's quantity onto the lot matching its
// natural key and deletes the event. A lot that can no longer be found is
// recreated; an existing lot keeps its current category.
func (r *GormLedgerRepository) ReverseStockOut(eventID uint) (*domain.StockOutEvent, error) {
	var event domain.StockOutEvent

	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&event, eventID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrEventNotFound
		}
		if err != nil {
			return err
		}

		lot := domain.Lot{
			Category:      event.Category,
			ProductCode:   event.ProductCode,
			Size:          event.Size,
			PurchasePrice: event.PurchasePrice,
			Quantity:      event.Quantity,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: lotNaturalKey,
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity": gorm.Expr("lots.quantity + ?", event.Quantity),
			}),
		}).Create(&lot).Error; err != nil {
			return err
		}

		return tx.Delete(&domain.StockOutEvent{}, eventID).Error
	})
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// AdjustLotQuantity is the silent write-off: it decrements the lot and leaves
// only an internal adjustment row behind, no movement event.
func (r *GormLedgerRepository) AdjustLotQuantity(lotID uint, quantity int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var lot domain.Lot
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&lot, lotID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrLotNotFound
		}
		if err != nil {
			return err
		}
		if quantity > lot.Quantity {
			return domain.ErrQuantityExceedsStock
		}

		result := tx.Model(&domain.Lot{}).
			Where("id = ? AND quantity >= ?", lotID, quantity).
			Update("quantity", gorm.Expr("quantity - ?", quantity))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrQuantityExceedsStock
		}

		return tx.Create(&domain.Adjustment{
			LotID:     lotID,
			Quantity:  quantity,
			CreatedAt: time.Now(),
		}).Error
	})
}

func (r *GormLedgerRepository) FindLotByID(id uint) (*domain.Lot, error) {
	var lot domain.Lot
	err := r.db.First(&lot, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrLotNotFound
	}
	if err != nil {
		return nil, err
	}
	return &lot, nil
}

func (r *GormLedgerRepository) FindLots(category string) ([]domain.Lot, error) {
	var lots []domain.Lot
	query := r.db.Where("quantity > 0")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	err := query.Order("product_code, size").Find(&lots).Error
	return lots, err
}

func (r *GormLedgerRepository) SearchLotsByCode(code string) ([]domain.Lot, error) {
	var lots []domain.Lot
	err := r.db.Where("product_code LIKE ? AND quantity > 0", "%"+code+"%").
		Order("product_code, size").
		Find(&lots).Error
	return lots, err
}

func (r *GormLedgerRepository) ListStockInEvents() ([]domain.StockInEvent, error) {
	var events []domain.StockInEvent
	err := r.db.Order("created_at DESC, id DESC").Find(&events).Error
	return events, err
}

func (r *GormLedgerRepository) ListStockOutEvents() ([]domain.StockOutEvent, error) {
	var events []domain.StockOutEvent
	err := r.db.Order("created_at DESC, id DESC").Find(&events).Error
	return events, err
}

func (r *GormLedgerRepository) TotalValue() (float64, error) {
	var total float64
	err := r.db.Model(&domain.Lot{}).
		Where("quantity > 0").
		Select("COALESCE(SUM(purchase_price * quantity), 0)").
		Scan(&total).Error
	return total, err
}

// PeriodSummary buckets stock-out events by true date truncation rather than
// string prefixes, so bucket ordering never depends on timestamp formatting.
func (r *GormLedgerRepository) PeriodSummary(granularity domain.Granularity) ([]domain.PeriodBucket, error) {
	trunc, label := "month", "YYYY-MM"
	if granularity == domain.GranularityYear {
		trunc, label = "year", "YYYY"
	}

	query := fmt.Sprintf(`
		SELECT to_char(date_trunc('%[1]s', created_at), '%[2]s') AS period,
		       SUM(sell_price * quantity)                        AS revenue,
		       SUM(purchase_price * quantity)                    AS cost,
		       SUM(profit)                                       AS total_profit,
		       SUM(quantity)                                     AS total_quantity
		FROM stock_out_events
		GROUP BY date_trunc('%[1]s', created_at)
		ORDER BY date_trunc('%[1]s', created_at) DESC`, trunc, label)

	var buckets []domain.PeriodBucket
	err := r.db.Raw(query).Scan(&buckets).Error
	return buckets, err
}
