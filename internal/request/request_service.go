package request

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/alex-morcg/horarios-vacaciones/internal/bootstrap"
	"github.com/alex-morcg/horarios-vacaciones/internal/employee"
	"github.com/alex-morcg/horarios-vacaciones/internal/events"
	"github.com/alex-morcg/horarios-vacaciones/internal/messaging/kafka"
	"github.com/alex-morcg/horarios-vacaciones/internal/planning"
	requesterrors "github.com/alex-morcg/horarios-vacaciones/internal/request/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Actor identifies who performs an operation, lifted from the JWT claims.
type Actor struct {
	Code    string
	Name    string
	IsAdmin bool
}

//go:generate mockgen -source=request_service.go -destination=mock/request_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actor Actor, req CreateRequestRequest) (CreateRequestResponse, error)
	GetAll(ctx context.Context) ([]RequestResponse, error)
	GetByEmployee(ctx context.Context, code string) ([]RequestResponse, error)
	Approve(ctx context.Context, id string, actor Actor) (RequestResponse, error)
	Deny(ctx context.Context, id string, actor Actor) (RequestResponse, error)
	Delete(ctx context.Context, id string, actor Actor) error
}

type service struct {
	db        *sql.DB
	repo      Repository
	outbox    kafka.OutboxRepository
	planning  planning.Service
	employees employee.Repository
	audit     bootstrap.AuditLogger
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, outbox kafka.OutboxRepository, planningSvc planning.Service, employees employee.Repository, audit bootstrap.AuditLogger, logger ...*zap.Logger) Service {
	l := zap.L().Named("request.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("request.service")
	}
	return &service{db: db, repo: repo, outbox: outbox, planning: planningSvc, employees: employees, audit: audit, logger: l}
}

// targetFor resolves whose request is being filed. Admins may name any
// employee; everyone else files for themselves.
func (s *service) targetFor(ctx context.Context, actor Actor, requested string) (code, name string, err error) {
	code = strings.ToUpper(strings.TrimSpace(requested))
	if code == "" || code == actor.Code {
		return actor.Code, actor.Name, nil
	}
	if !actor.IsAdmin {
		return "", "", requesterrors.ErrOnBehalfForbidden
	}
	emp, err := s.employees.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", requesterrors.ErrUnknownEmployee
		}
		return "", "", err
	}
	return emp.Code, emp.FullName, nil
}

// Create validates and stores a new request. Overlap with the actor's own
// active requests is a hard failure; overlap with department-mates is only
// reported back as an advisory warning alongside the stored request.
func (s *service) Create(ctx context.Context, actor Actor, req CreateRequestRequest) (CreateRequestResponse, error) {
	if req.Type != TypeVacation && req.Type != TypeOther {
		return CreateRequestResponse{}, requesterrors.ErrInvalidRequestType
	}

	// "other" is an admin-only category; a regular employee asking for it
	// gets a plain vacation request instead.
	reqType := req.Type
	if reqType == TypeOther && !actor.IsAdmin {
		reqType = TypeVacation
	}

	targetCode, targetName, err := s.targetFor(ctx, actor, req.EmployeeCode)
	if err != nil {
		return CreateRequestResponse{}, err
	}

	candidate, err := planning.CandidateDates(planning.ConflictPreviewRequest{
		IsRange:   req.IsRange,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Dates:     req.Dates,
	})
	if err != nil {
		return CreateRequestResponse{}, err
	}

	// Self-overlap compares weekend-inclusive on both sides: a range that
	// spans a weekend still occupies those days against a second request.
	selfDates := req.Dates
	if req.IsRange {
		selfDates = planning.ExpandRange(req.StartDate, req.EndDate, true)
	}
	active, err := s.repo.FindActiveByEmployee(ctx, targetCode)
	if err != nil {
		return CreateRequestResponse{}, err
	}
	if overlapsAny(selfDates, active) {
		return CreateRequestResponse{}, requesterrors.ErrOverlapsOwnRequest
	}

	conflicts, err := s.planning.ConflictsFor(ctx, candidate, targetCode)
	if err != nil {
		return CreateRequestResponse{}, err
	}

	entity := Request{
		ID:           uuid.New(),
		EmployeeCode: targetCode,
		Type:         reqType,
		Status:       StatusPending,
		IsRange:      req.IsRange,
		Comment:      req.Comment,
	}
	if req.IsRange {
		start, _ := time.Parse("2006-01-02", req.StartDate)
		end, _ := time.Parse("2006-01-02", req.EndDate)
		entity.StartDate = &start
		entity.EndDate = &end
	} else {
		for _, d := range req.Dates {
			day, _ := time.Parse("2006-01-02", d)
			entity.Dates = append(entity.Dates, RequestDate{ID: uuid.New(), RequestID: entity.ID, Date: day})
		}
	}

	// Admins logging "other" absences skip the approval queue.
	if actor.IsAdmin && reqType == TypeOther {
		now := time.Now()
		entity.Status = StatusApproved
		entity.ApprovedByCode = actor.Code
		entity.ApprovedByName = actor.Name
		entity.DecidedAt = &now
	}

	event := events.RequestCreatedEvent{
		EventType:    events.EventRequestCreated,
		RequestID:    entity.ID.String(),
		EmployeeCode: targetCode,
		EmployeeName: targetName,
		Type:         entity.Type,
		IsRange:      entity.IsRange,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Dates:        req.Dates,
		Comment:      req.Comment,
		Conflicts:    summarizeConflicts(conflicts),
		OccurredAt:   time.Now().UTC(),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CreateRequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, &entity); err != nil {
		return CreateRequestResponse{}, err
	}
	if err := s.enqueueEvent(ctx, tx, entity.ID.String(), events.EventRequestCreated, event); err != nil {
		return CreateRequestResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return CreateRequestResponse{}, err
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "request.create",
		Message: "request submitted",
		Meta: map[string]any{
			"request_id":    entity.ID.String(),
			"employee_code": targetCode,
			"created_by":    actor.Code,
			"type":          entity.Type,
			"status":        entity.Status,
			"conflicts":     len(conflicts),
		},
	})

	return CreateRequestResponse{
		Request:   mapToResponse(entity),
		Conflicts: mapPlanningConflicts(conflicts),
	}, nil
}

func (s *service) GetAll(ctx context.Context) ([]RequestResponse, error) {
	requests, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(requests), nil
}

func (s *service) GetByEmployee(ctx context.Context, code string) ([]RequestResponse, error) {
	requests, err := s.repo.FindByEmployee(ctx, code)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(requests), nil
}

func (s *service) Approve(ctx context.Context, id string, actor Actor) (RequestResponse, error) {
	return s.decide(ctx, id, actor, StatusApproved)
}

func (s *service) Deny(ctx context.Context, id string, actor Actor) (RequestResponse, error) {
	return s.decide(ctx, id, actor, StatusDenied)
}

func (s *service) decide(ctx context.Context, id string, actor Actor, status string) (RequestResponse, error) {
	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RequestResponse{}, requesterrors.ErrRequestNotFound
		}
		return RequestResponse{}, err
	}
	if entity.Status != StatusPending {
		return RequestResponse{}, requesterrors.ErrAlreadyDecided
	}

	now := time.Now()
	entity.Status = status
	entity.ApprovedByCode = actor.Code
	entity.ApprovedByName = actor.Name
	entity.DecidedAt = &now

	event := events.RequestDecidedEvent{
		EventType:      events.EventRequestDecided,
		RequestID:      entity.ID.String(),
		EmployeeCode:   entity.EmployeeCode,
		Status:         status,
		ApprovedByCode: actor.Code,
		ApprovedByName: actor.Name,
		IsRange:        entity.IsRange,
		OccurredAt:     now.UTC(),
	}
	if entity.StartDate != nil {
		event.StartDate = entity.StartDate.Format("2006-01-02")
	}
	if entity.EndDate != nil {
		event.EndDate = entity.EndDate.Format("2006-01-02")
	}
	for _, d := range entity.Dates {
		event.Dates = append(event.Dates, d.Date.Format("2006-01-02"))
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Update(ctx, entity); err != nil {
		return RequestResponse{}, err
	}
	if err := s.enqueueEvent(ctx, tx, entity.ID.String(), events.EventRequestDecided, event); err != nil {
		return RequestResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return RequestResponse{}, err
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "request.decide",
		Message: "request " + status,
		Meta: map[string]any{
			"request_id":    entity.ID.String(),
			"employee_code": entity.EmployeeCode,
			"decided_by":    actor.Code,
			"status":        status,
		},
	})

	return mapToResponse(*entity), nil
}

// Delete removes a request. Owners may only withdraw while pending; admins
// may delete anything, which is how an approved absence gets reverted.
func (s *service) Delete(ctx context.Context, id string, actor Actor) error {
	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return requesterrors.ErrRequestNotFound
		}
		return err
	}

	if !actor.IsAdmin {
		if entity.EmployeeCode != actor.Code {
			return requesterrors.ErrNotRequestOwner
		}
		if entity.Status != StatusPending {
			return requesterrors.ErrDecidedNotDeletable
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "request.delete",
		Message: "request deleted",
		Meta: map[string]any{
			"request_id":    id,
			"employee_code": entity.EmployeeCode,
			"deleted_by":    actor.Code,
		},
	})
	return nil
}

func (s *service) enqueueEvent(ctx context.Context, tx *sql.Tx, requestID, eventType string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     requestID,
		AggregateType: "request",
		AggregateID:   requestID,
		EventType:     eventType,
		Topic:         events.RequestLifecycleTopic,
		Payload:       body,
		Status:        kafka.OutboxStatusPending,
	})
}

func overlapsAny(candidate []string, active []Request) bool {
	set := make(map[string]struct{}, len(candidate))
	for _, d := range candidate {
		set[d] = struct{}{}
	}
	for _, r := range active {
		var days []string
		if r.IsRange && r.StartDate != nil && r.EndDate != nil {
			days = planning.ExpandRange(r.StartDate.Format("2006-01-02"), r.EndDate.Format("2006-01-02"), true)
		} else {
			for _, d := range r.Dates {
				days = append(days, d.Date.Format("2006-01-02"))
			}
		}
		for _, day := range days {
			if _, hit := set[day]; hit {
				return true
			}
		}
	}
	return false
}

func summarizeConflicts(conflicts []planning.Conflict) []events.ConflictSummary {
	var out []events.ConflictSummary
	for _, c := range conflicts {
		out = append(out, events.ConflictSummary{
			EmployeeCode:      c.EmployeeCode,
			EmployeeName:      c.EmployeeName,
			Status:            c.Status,
			Days:              len(c.Dates),
			SharedDepartments: c.SharedDepartments,
		})
	}
	return out
}

func mapPlanningConflicts(conflicts []planning.Conflict) []planning.ConflictResponse {
	out := make([]planning.ConflictResponse, 0, len(conflicts))
	for _, c := range conflicts {
		out = append(out, planning.ConflictResponse{
			EmployeeCode:      c.EmployeeCode,
			EmployeeName:      c.EmployeeName,
			Status:            c.Status,
			Dates:             c.Dates,
			SharedDepartments: c.SharedDepartments,
		})
	}
	return out
}
