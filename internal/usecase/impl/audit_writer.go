package impl

import (
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "printshop/internal/delivery/context"
	"printshop/internal/domain/entity"
	"printshop/internal/domain/repository"
	"printshop/internal/pkg/clock"
)

// AuditActors lists the identities an audit row may be attributed to, in precedence order.
type AuditActors struct {
	// Explicit is set by flows that run before a session exists.
	Explicit entity.Actor
	// Session is the caller resolved from its token at the HTTP boundary.
	Session entity.Actor
}

// AuditWriter appends audit rows inside the caller's transaction. A failed
// write is logged and dropped; it never fails the business operation.
type AuditWriter struct {
	systemActorID int64
	clock         clock.Clock
	logger        *slog.Logger
}

// NewAuditWriter creates the writer. systemActorID is the employee account
// used when no caller identity is known; zero disables the fallback.
func NewAuditWriter(systemActorID int64, clk clock.Clock, logger *slog.Logger) *AuditWriter {
	return &AuditWriter{
		systemActorID: systemActorID,
		clock:         clk,
		logger:        logger,
	}
}

func (w *AuditWriter) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, w.logger)
}

// resolveActor returns the zero actor when nobody can be held accountable.
func (w *AuditWriter) resolveActor(actors AuditActors) entity.Actor {
	if !actors.Explicit.IsZero() {
		return actors.Explicit
	}
	if !actors.Session.IsZero() {
		return actors.Session
	}
	if w.systemActorID > 0 {
		return entity.EmployeeActor(w.systemActorID)
	}

	return entity.Actor{}
}

// Write records entry and reports whether a row was stored. The insert runs in
// a savepoint so a failure leaves the surrounding transaction usable.
func (w *AuditWriter) Write(ctx context.Context, repos repository.RepositoryFactory, actors AuditActors, entry entity.AuditEntry) bool {
	logger := w.log(ctx).With(
		slog.String("action", string(entry.Action)),
		slog.String("entity_type", entry.EntityType),
		slog.String("entity_id", entry.EntityID),
	)

	actor := w.resolveActor(actors)
	if actor.IsZero() {
		logger.Warn("Audit write skipped, no actor resolved")

		return false
	}

	record := &entity.AuditLog{
		CustomerID:    actor.CustomerID(),
		EmployeeID:    actor.EmployeeID(),
		Action:        entry.Action,
		EntityType:    entry.EntityType,
		EntityID:      entry.EntityID,
		Before:        w.snapshot(logger, "before", entry.Before),
		After:         w.snapshot(logger, "after", entry.After),
		CriticalValue: entry.CriticalValue,
		CreatedAt:     w.clock.Now(),
	}

	err := repos.Savepoint(ctx, func(sp repository.RepositoryFactory) error {
		return sp.AuditRepo().Create(ctx, record)
	})
	if err != nil {
		logger.Warn("Audit write dropped", slog.Any("error", err))

		return false
	}

	return true
}

func (w *AuditWriter) snapshot(logger *slog.Logger, field string, value any) json.RawMessage {
	if value == nil {
		return nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		logger.Warn("Audit snapshot not serializable", slog.String("field", field), slog.Any("error", err))

		return nil
	}

	return raw
}
