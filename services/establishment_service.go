package services

import (
	"context"
	"fmt"
	"time"

	"bigode_server/database"
	"bigode_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

// EstablishmentService resolves the singleton establishment row every other
// entity hangs off. The original data model allows several rows but every
// deployment uses exactly one, looked up as "first row".
type EstablishmentService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewEstablishmentService(logger *gecho.Logger, db *database.DB) *EstablishmentService {
	return &EstablishmentService{
		logger: logger,
		db:     db,
	}
}

func (es *EstablishmentService) GetCurrent(ctx context.Context) (*tables.Establishment, error) {
	establishment, err := database.Query[tables.Establishment](es.db).
		OrderBy("created_at", database.ASC).
		Timeout(5 * time.Second).
		First(ctx)
	if err != nil {
		es.logger.Error("Failed to fetch establishment", gecho.Field("error", err))
		return nil, fmt.Errorf("failed to fetch establishment: %w", err)
	}
	if establishment == nil {
		return nil, fmt.Errorf("no establishment configured")
	}
	return establishment, nil
}

// Update changes the establishment profile shown on the storefront header.
func (es *EstablishmentService) Update(ctx context.Context, fields map[string]any) (*tables.Establishment, error) {
	current, err := es.GetCurrent(ctx)
	if err != nil {
		return nil, err
	}

	fields["updated_at"] = time.Now()

	rows, err := database.Query[tables.Establishment](es.db).
		Where("id", current.Id).
		UpdateReturning(ctx, fields)
	if err != nil {
		es.logger.Error("Failed to update establishment", gecho.Field("error", err))
		return nil, fmt.Errorf("failed to update establishment: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("establishment not found")
	}
	return &rows[0], nil
}
