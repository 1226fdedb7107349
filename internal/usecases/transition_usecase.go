package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"vendorhub.backend/internal/domain/entities"
	domainerrors "vendorhub.backend/internal/domain/errors"
	"vendorhub.backend/internal/domain/events"
	"vendorhub.backend/internal/domain/repositories"
	"vendorhub.backend/internal/domain/statemachine"
	"vendorhub.backend/pkg/logger"
	"vendorhub.backend/pkg/metrics"
)

// TransitionUsecase applies validated status transitions. It is the only
// code path that writes an entity's status field.
type TransitionUsecase struct {
	merchantRepo     repositories.MerchantRepository
	bookingRepo      repositories.BookingRepository
	reservationRepo  repositories.ReservationRepository
	serviceOrderRepo repositories.ServiceOrderRepository
	statusLogRepo    repositories.MerchantStatusLogRepository
	uow              repositories.UnitOfWork
	publisher        events.Publisher
}

// NewTransitionUsecase creates a new transition usecase
func NewTransitionUsecase(
	merchantRepo repositories.MerchantRepository,
	bookingRepo repositories.BookingRepository,
	reservationRepo repositories.ReservationRepository,
	serviceOrderRepo repositories.ServiceOrderRepository,
	statusLogRepo repositories.MerchantStatusLogRepository,
	uow repositories.UnitOfWork,
	publisher events.Publisher,
) *TransitionUsecase {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &TransitionUsecase{
		merchantRepo:     merchantRepo,
		bookingRepo:      bookingRepo,
		reservationRepo:  reservationRepo,
		serviceOrderRepo: serviceOrderRepo,
		statusLogRepo:    statusLogRepo,
		uow:              uow,
		publisher:        publisher,
	}
}

// TransitionResult is the snapshot returned after a committed transition
type TransitionResult struct {
	EntityKind statemachine.EntityKind `json:"entityKind"`
	EntityID   uuid.UUID               `json:"entityId"`
	From       string                  `json:"from"`
	To         string                  `json:"to"`
	Entity     interface{}             `json:"entity"`
}

// Apply validates and applies a status transition to the entity identified by
// kind and id. Status mutation, timestamp stamping, the merchant audit entry,
// and persistence happen inside one transaction; the notification event is
// published only after the transaction commits.
func (u *TransitionUsecase) Apply(ctx context.Context, kind statemachine.EntityKind, id uuid.UUID, target, reason string, actorID *uuid.UUID) (*TransitionResult, error) {
	if !statemachine.IsKnownKind(kind) {
		return nil, domainerrors.NewUnknownEntityError(string(kind), "")
	}
	if !statemachine.IsKnownStatus(kind, target) {
		return nil, domainerrors.NewUnknownEntityError(string(kind), target)
	}

	var result *TransitionResult
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		lockCtx := u.uow.WithLock(txCtx)

		var applyErr error
		switch kind {
		case statemachine.KindMerchant:
			result, applyErr = u.applyMerchant(lockCtx, id, target, reason, actorID)
		case statemachine.KindBooking:
			result, applyErr = u.applyBooking(lockCtx, id, target)
		case statemachine.KindReservation:
			result, applyErr = u.applyReservation(lockCtx, id, target)
		case statemachine.KindServiceOrder:
			result, applyErr = u.applyServiceOrder(lockCtx, id, target)
		}
		return applyErr
	})
	if err != nil {
		var illegal *domainerrors.IllegalTransitionError
		if errors.As(err, &illegal) {
			metrics.IllegalTransitionsTotal.WithLabelValues(string(kind)).Inc()
		}
		return nil, err
	}

	u.notify(ctx, result)
	metrics.StatusTransitionsTotal.WithLabelValues(string(kind), result.To).Inc()
	return result, nil
}

func (u *TransitionUsecase) notify(ctx context.Context, result *TransitionResult) {
	evt := events.StatusChangedEvent{
		EntityKind: string(result.EntityKind),
		EntityID:   result.EntityID,
		From:       result.From,
		To:         result.To,
		OccurredAt: time.Now(),
	}
	if err := u.publisher.Publish(ctx, evt); err != nil {
		logger.Warn(ctx, "failed to publish status change event",
			zap.String("entity", string(result.EntityKind)),
			zap.String("entity_id", result.EntityID.String()),
			zap.Error(err),
		)
		metrics.NotificationPublishFailures.Inc()
	}
}

func (u *TransitionUsecase) applyMerchant(ctx context.Context, id uuid.UUID, target, reason string, actorID *uuid.UUID) (*TransitionResult, error) {
	merchant, err := u.merchantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	from := string(merchant.Status)
	if !statemachine.IsLegalTransition(statemachine.KindMerchant, from, target) {
		return nil, domainerrors.NewIllegalTransitionError(string(statemachine.KindMerchant), from, target)
	}
	reason = strings.TrimSpace(reason)
	if statemachine.RequiresReason(statemachine.KindMerchant, target) && reason == "" {
		return nil, domainerrors.NewMissingReasonError(string(statemachine.KindMerchant), target)
	}

	now := time.Now()
	merchant.Status = entities.MerchantStatus(target)
	merchant.StatusChangedAt = null.TimeFrom(now)
	switch merchant.Status {
	case entities.MerchantStatusApproved:
		merchant.ApprovedAt = null.TimeFrom(now)
	case entities.MerchantStatusRejected, entities.MerchantStatusSuspended:
		merchant.StatusReason = null.StringFrom(reason)
	}

	if err := u.merchantRepo.Update(ctx, merchant); err != nil {
		return nil, domainerrors.NewPersistenceError("merchant update", err)
	}

	logEntry := &entities.MerchantStatusLog{
		MerchantID: merchant.ID,
		FromStatus: null.StringFrom(from),
		ToStatus:   target,
		ChangedBy:  actorID,
		CreatedAt:  now,
	}
	if reason != "" {
		logEntry.Reason = null.StringFrom(reason)
	}
	if err := u.statusLogRepo.Create(ctx, logEntry); err != nil {
		return nil, domainerrors.NewPersistenceError("status log append", err)
	}

	return &TransitionResult{
		EntityKind: statemachine.KindMerchant,
		EntityID:   merchant.ID,
		From:       from,
		To:         target,
		Entity:     merchant,
	}, nil
}

func (u *TransitionUsecase) applyBooking(ctx context.Context, id uuid.UUID, target string) (*TransitionResult, error) {
	booking, err := u.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	from := string(booking.Status)
	if !statemachine.IsLegalTransition(statemachine.KindBooking, from, target) {
		return nil, domainerrors.NewIllegalTransitionError(string(statemachine.KindBooking), from, target)
	}

	now := time.Now()
	booking.Status = entities.BookingStatus(target)
	switch booking.Status {
	case entities.BookingStatusConfirmed:
		booking.ConfirmedAt = null.TimeFrom(now)
	case entities.BookingStatusCancelled:
		booking.CancelledAt = null.TimeFrom(now)
	case entities.BookingStatusCompleted:
		booking.CompletedAt = null.TimeFrom(now)
	}

	if err := u.bookingRepo.Update(ctx, booking); err != nil {
		return nil, domainerrors.NewPersistenceError("booking update", err)
	}

	return &TransitionResult{
		EntityKind: statemachine.KindBooking,
		EntityID:   booking.ID,
		From:       from,
		To:         target,
		Entity:     booking,
	}, nil
}

func (u *TransitionUsecase) applyReservation(ctx context.Context, id uuid.UUID, target string) (*TransitionResult, error) {
	reservation, err := u.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	from := string(reservation.Status)
	if !statemachine.IsLegalTransition(statemachine.KindReservation, from, target) {
		return nil, domainerrors.NewIllegalTransitionError(string(statemachine.KindReservation), from, target)
	}

	now := time.Now()
	reservation.Status = entities.ReservationStatus(target)
	switch reservation.Status {
	case entities.ReservationStatusConfirmed:
		reservation.ConfirmedAt = null.TimeFrom(now)
	case entities.ReservationStatusCheckedIn:
		reservation.CheckedInAt = null.TimeFrom(now)
	case entities.ReservationStatusCheckedOut:
		reservation.CheckedOutAt = null.TimeFrom(now)
	case entities.ReservationStatusCancelled:
		reservation.CancelledAt = null.TimeFrom(now)
	}

	if err := u.reservationRepo.Update(ctx, reservation); err != nil {
		return nil, domainerrors.NewPersistenceError("reservation update", err)
	}

	return &TransitionResult{
		EntityKind: statemachine.KindReservation,
		EntityID:   reservation.ID,
		From:       from,
		To:         target,
		Entity:     reservation,
	}, nil
}

func (u *TransitionUsecase) applyServiceOrder(ctx context.Context, id uuid.UUID, target string) (*TransitionResult, error) {
	order, err := u.serviceOrderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	from := string(order.Status)
	if !statemachine.IsLegalTransition(statemachine.KindServiceOrder, from, target) {
		return nil, domainerrors.NewIllegalTransitionError(string(statemachine.KindServiceOrder), from, target)
	}

	now := time.Now()
	order.Status = entities.ServiceOrderStatus(target)
	switch order.Status {
	case entities.ServiceOrderStatusReceived:
		order.ReceivedAt = null.TimeFrom(now)
	case entities.ServiceOrderStatusCompleted:
		order.CompletedAt = null.TimeFrom(now)
	case entities.ServiceOrderStatusCancelled:
		order.CancelledAt = null.TimeFrom(now)
	}

	if err := u.serviceOrderRepo.Update(ctx, order); err != nil {
		return nil, domainerrors.NewPersistenceError("service order update", err)
	}

	return &TransitionResult{
		EntityKind: statemachine.KindServiceOrder,
		EntityID:   order.ID,
		From:       from,
		To:         target,
		Entity:     order,
	}, nil
}
