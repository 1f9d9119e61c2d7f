package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tair/stock-ledger/internal/inventory/domain"
)

var tracer = otel.Tracer("ledger-repository")

// GormLedgerRepositoryWithTracing wraps GormLedgerRepository with tracing
type GormLedgerRepositoryWithTracing struct {
	*GormLedgerRepository
}

// NewGormLedgerRepositoryWithTracing creates a new repository with tracing
func NewGormLedgerRepositoryWithTracing(db *gorm.DB) *GormLedgerRepositoryWithTracing {
	return &GormLedgerRepositoryWithTracing{
		GormLedgerRepository: NewGormLedgerRepository(db),
	}
}

// RecordStockIn with tracing
func (r *GormLedgerRepositoryWithTracing) RecordStockInWithContext(ctx context.Context, event *domain.StockInEvent) error {
	_, span := tracer.Start(ctx, "repository.RecordStockIn",
		trace.WithAttributes(
			attribute.String("lot.product_code", event.ProductCode),
			attribute.String("lot.size", event.Size),
			attribute.Float64("lot.purchase_price", event.PurchasePrice),
			attribute.Int("movement.quantity", event.Quantity),
		),
	)
	defer span.End()

	err := r.GormLedgerRepository.RecordStockIn(event)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("event.id", int(event.ID)))
	return nil
}

// RecordStockOut with tracing
func (r *GormLedgerRepositoryWithTracing) RecordStockOutWithContext(ctx context.Context, lotID uint, sellPrice float64, quantity int) (*domain.StockOutEvent, error) {
	_, span := tracer.Start(ctx, "repository.RecordStockOut",
		trace.WithAttributes(
			attribute.Int("lot.id", int(lotID)),
			attribute.Float64("movement.sell_price", sellPrice),
			attribute.Int("movement.quantity", quantity),
		),
	)
	defer span.End()

	event, err := r.GormLedgerRepository.RecordStockOut(lotID, sellPrice, quantity)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("event.id", int(event.ID)),
		attribute.Float64("event.profit", event.Profit),
	)
	return event, nil
}

// ReverseStockOut with tracing
func (r *GormLedgerRepositoryWithTracing) ReverseStockOutWithContext(ctx context.Context, eventID uint) (*domain.StockOutEvent, error) {
	_, span := tracer.Start(ctx, "repository.ReverseStockOut",
		trace.WithAttributes(
			attribute.Int("event.id", int(eventID)),
		),
	)
	defer span.End()

	event, err := r.GormLedgerRepository.ReverseStockOut(eventID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("lot.product_code", event.ProductCode),
		attribute.Int("movement.quantity", event.Quantity),
	)
	return event, nil
}

// AdjustLotQuantity with tracing
func (r *GormLedgerRepositoryWithTracing) AdjustLotQuantityWithContext(ctx context.Context, lotID uint, quantity int) error {
	_, span := tracer.Start(ctx, "repository.AdjustLotQuantity",
		trace.WithAttributes(
			attribute.Int("lot.id", int(lotID)),
			attribute.Int("movement.quantity", quantity),
		),
	)
	defer span.End()

	err := r.GormLedgerRepository.AdjustLotQuantity(lotID, quantity)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

// PeriodSummary with tracing
func (r *GormLedgerRepositoryWithTracing) PeriodSummaryWithContext(ctx context.Context, granularity domain.Granularity) ([]domain.PeriodBucket, error) {
	_, span := tracer.Start(ctx, "repository.PeriodSummary",
		trace.WithAttributes(
			attribute.String("summary.granularity", string(granularity)),
		),
	)
	defer span.End()

	buckets, err := r.GormLedgerRepository.PeriodSummary(granularity)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(buckets)))
	return buckets, nil
}
