package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "wasitku_backend/internals/features/events/events/dto"
	model "wasitku_backend/internals/features/events/events/model"
	helper "wasitku_backend/internals/helpers"
)

// POST /events/:id/assignments — tugaskan wasit ke event (admin)
func (h *EventController) AssignWasit(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid id")
	}

	var req dto.AssignWasitRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var ev model.Event
	if err := h.DB.WithContext(c.UserContext()).
		First(&ev, "event_id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "event tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	posisi := strings.TrimSpace(req.AssignmentPosisi)
	if posisi == "" {
		posisi = "wasit"
	}

	assignment := model.EventAssignment{
		AssignmentEventID: eventID,
		AssignmentWasitID: req.AssignmentWasitID,
		AssignmentPosisi:  posisi,
	}
	if err := h.DB.WithContext(c.UserContext()).Create(&assignment).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "23505") {
			return helper.Error(c, fiber.StatusConflict, "wasit sudah ditugaskan ke event ini")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Wasit berhasil ditugaskan", assignment)
}

// GET /events/:id/assignments
func (h *EventController) ListAssignments(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid id")
	}
	var assignments []model.EventAssignment
	if err := h.DB.WithContext(c.UserContext()).
		Where("assignment_event_id = ?", eventID).
		Order("assignment_created_at ASC").
		Find(&assignments).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", assignments)
}

// DELETE /events/:id/assignments/:assignment_id
func (h *EventController) RemoveAssignment(c *fiber.Ctx) error {
	assignmentID, err := uuid.Parse(c.Params("assignment_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid assignment id")
	}
	res := h.DB.WithContext(c.UserContext()).
		Delete(&model.EventAssignment{}, "assignment_id = ?", assignmentID)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "penugasan tidak ditemukan")
	}
	return helper.Success(c, "Penugasan dihapus", nil)
}
