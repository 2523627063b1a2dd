// file: internals/features/events/events/controller/event_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "wasitku_backend/internals/features/events/events/dto"
	model "wasitku_backend/internals/features/events/events/model"
	svc "wasitku_backend/internals/features/events/events/service"
	helper "wasitku_backend/internals/helpers"
)

type EventController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Status    *svc.StatusService
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{
		DB:        db,
		Validator: validator.New(),
		Status:    svc.NewStatusService(svc.NewGormStore(db)),
	}
}

/* =======================================================================
   Pengajuan & lifecycle
======================================================================= */

// POST /events
func (h *EventController) CreateEvent(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	ev := req.ToModel(actorID)
	if err := h.Status.Submit(c.UserContext(), ev); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "gagal mengajukan event: "+err.Error())
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Event berhasil diajukan", dto.FromModel(ev))
}

// POST /events/:id/approve
func (h *EventController) ApproveEvent(c *fiber.Ctx) error {
	return h.doTransition(c, func(eventID, actorID uuid.UUID, notes *string) (*model.Event, error) {
		return h.Status.Approve(c.UserContext(), eventID, actorID, notes)
	}, "Event disetujui")
}

// POST /events/:id/reject
func (h *EventController) RejectEvent(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid id")
	}

	var req dto.RejectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	ev, err := h.Status.Reject(c.UserContext(), eventID, actorID, req.Notes)
	if err != nil {
		return h.mapTransitionError(c, err)
	}
	return helper.Success(c, "Event ditolak", dto.FromModel(ev))
}

// POST /events/:id/complete
func (h *EventController) CompleteEvent(c *fiber.Ctx) error {
	return h.doTransition(c, func(eventID, actorID uuid.UUID, notes *string) (*model.Event, error) {
		return h.Status.Complete(c.UserContext(), eventID, actorID, notes)
	}, "Event diselesaikan")
}

func (h *EventController) doTransition(
	c *fiber.Ctx,
	fn func(eventID, actorID uuid.UUID, notes *string) (*model.Event, error),
	successMsg string,
) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid id")
	}

	var req dto.TransitionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
		}
	}

	ev, err := fn(eventID, actorID, req.Notes)
	if err != nil {
		return h.mapTransitionError(c, err)
	}
	return helper.Success(c, successMsg, dto.FromModel(ev))
}

func (h *EventController) mapTransitionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, svc.ErrEventNotFound):
		return helper.Error(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, svc.ErrInvalidTransition), errors.Is(err, svc.ErrNotesRequired):
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	default:
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
}

/* =======================================================================
   Read
======================================================================= */

// GET /events/:id
func (h *EventController) GetEventByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid id")
	}
	var ev model.Event
	if err := h.DB.WithContext(c.UserContext()).
		First(&ev, "event_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "event tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.FromModel(&ev))
}

// GET /events?status=&kabupaten_kota_id=&page=&per_page=
func (h *EventController) ListEvents(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.UserContext()).Model(&model.Event{})
	if status := c.Query("status"); status != "" {
		q = q.Where("event_status = ?", status)
	}
	if kabKota := c.Query("kabupaten_kota_id"); kabKota != "" {
		id, err := uuid.Parse(kabKota)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "kabupaten_kota_id tidak valid")
		}
		q = q.Where("event_kabupaten_kota_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var events []model.Event
	if err := q.Order("event_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&events).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"events":     dto.FromModels(events),
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// GET /events/:id/approvals — jejak audit transisi (append-only)
func (h *EventController) ListApprovals(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid id")
	}
	var approvals []model.EventApproval
	if err := h.DB.WithContext(c.UserContext()).
		Where("approval_event_id = ?", id).
		Order("approval_created_at ASC").
		Find(&approvals).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", approvals)
}
