package lotevent

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/muhammadchandra19/auctionhouse/pkg/errors"
	"github.com/muhammadchandra19/auctionhouse/pkg/logger"
	"github.com/muhammadchandra19/auctionhouse/pkg/postgresql"
)

// repository persists lot events to the lot_events table.
type repository struct {
	db     postgresql.PostgreSQLClient
	logger logger.Interface
}

// NewRepository creates a new repository.
func NewRepository(db postgresql.PostgreSQLClient, logger logger.Interface) *repository {
	return &repository{
		db:     db,
		logger: logger,
	}
}

// Store stores a single lot event.
func (r *repository) Store(ctx context.Context, event *LotEvent) error {
	query := `INSERT INTO lot_events (id, lot_id, event_type, module_ref, payload, occurred_at) VALUES ($1, $2, $3, $4, $5, $6)`

	cmd, err := r.db.Exec(ctx, query,
		event.ID,
		event.LotID,
		event.EventType,
		event.ModuleRef,
		event.Payload,
		event.OccurredAt,
	)
	if err != nil {
		r.logger.Error(err, logger.Field{
			Key:   "error",
			Value: err.Error(),
		})
		return errors.TracerFromError(err)
	}

	r.logger.Info("Inserted lot event", logger.Field{
		Key:   "commandTag",
		Value: cmd.String(),
	})

	return nil
}

// StoreBatch stores a batch of lot events.
func (r *repository) StoreBatch(ctx context.Context, events []*LotEvent) error {
	copyCount, err := r.db.CopyFrom(ctx, pgx.Identifier{"lot_events"}, []string{
		"id",
		"lot_id",
		"event_type",
		"module_ref",
		"payload",
		"occurred_at",
	}, pgx.CopyFromSlice(len(events), func(i int) ([]any, error) {
		event := events[i]
		return []any{
			event.ID,
			event.LotID,
			event.EventType,
			event.ModuleRef,
			event.Payload,
			event.OccurredAt,
		}, nil
	}))

	if err != nil {
		r.logger.Error(err, logger.Field{
			Key:   "error",
			Value: err.Error(),
		})
		return errors.TracerFromError(err)
	}

	r.logger.Info("Inserted batch of lot events", logger.Field{
		Key:   "copyCount",
		Value: copyCount,
	})

	return nil
}

// GetByID gets a lot event by its ulid.
func (r *repository) GetByID(ctx context.Context, id string) (*LotEvent, error) {
	query := `SELECT id, lot_id, event_type, module_ref, payload, occurred_at FROM lot_events WHERE id = $1`

	event := &LotEvent{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&event.ID,
		&event.LotID,
		&event.EventType,
		&event.ModuleRef,
		&event.Payload,
		&event.OccurredAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, errors.TracerFromError(err)
	}

	return event, nil
}

// List lists lot events matching the filter. Records come back newest first
// unless the filter asks for ascending order.
func (r *repository) List(ctx context.Context, filter Filter) ([]*LotEvent, error) {
	qb := postgresql.NewQueryBuilder().
		Select("id", "lot_id", "event_type", "module_ref", "payload", "occurred_at").
		From("lot_events")

	if filter.LotID != 0 {
		qb = qb.Where("lot_id = ?", int64(filter.LotID))
	}

	if filter.EventType != "" {
		qb = qb.Where("event_type = ?", filter.EventType)
	}

	if filter.ModuleRef != "" {
		qb = qb.Where("module_ref = ?", filter.ModuleRef)
	}

	if filter.From != nil {
		qb = qb.Where("occurred_at >= ?", *filter.From)
	}

	if filter.To != nil {
		qb = qb.Where("occurred_at <= ?", *filter.To)
	}

	qb = qb.OrderBy("occurred_at", filter.SortDirection != "ASC")

	if filter.Limit > 0 {
		qb = qb.Limit(filter.Limit)
	}

	if filter.Offset > 0 {
		qb = qb.Offset(filter.Offset)
	}

	query, args := qb.Build()

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error(err, logger.Field{
			Key:   "error query",
			Value: err.Error(),
		})
		return nil, errors.TracerFromError(err)
	}
	defer rows.Close()

	events := []*LotEvent{}
	for rows.Next() {
		event := &LotEvent{}
		err := rows.Scan(
			&event.ID,
			&event.LotID,
			&event.EventType,
			&event.ModuleRef,
			&event.Payload,
			&event.OccurredAt,
		)
		if err != nil {
			r.logger.Error(err, logger.Field{
				Key:   "error scan",
				Value: err.Error(),
			})
			return nil, errors.TracerFromError(err)
		}
		events = append(events, event)
	}

	return events, nil
}
