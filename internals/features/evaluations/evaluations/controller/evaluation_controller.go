// file: internals/features/evaluations/evaluations/controller/evaluation_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "wasitku_backend/internals/features/evaluations/evaluations/dto"
	model "wasitku_backend/internals/features/evaluations/evaluations/model"
	svc "wasitku_backend/internals/features/evaluations/evaluations/service"
	helper "wasitku_backend/internals/helpers"
)

type EvaluationController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Service   *svc.EvaluationService
}

func NewEvaluationController(db *gorm.DB) *EvaluationController {
	return &EvaluationController{
		DB:        db,
		Validator: validator.New(),
		Service:   svc.NewEvaluationService(svc.NewGormStore(db)),
	}
}

// POST /evaluations
func (ctl *EvaluationController) CreateEvaluation(c *fiber.Ctx) error {
	evaluatorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateEvaluationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	eval, err := ctl.Service.Create(c.UserContext(), req.EventID, req.WasitID, evaluatorID)
	if err != nil {
		return ctl.mapEvaluationError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Evaluasi dibuat", dto.FromModel(eval))
}

// PUT /evaluations/:id/scores
func (ctl *EvaluationController) UpsertScores(c *fiber.Ctx) error {
	evaluatorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid id")
	}

	var req dto.UpsertScoresRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	inputs := make([]svc.ScoreInput, 0, len(req.Scores))
	for _, item := range req.Scores {
		inputs = append(inputs, svc.ScoreInput{CriteriaID: item.CriteriaID, Value: item.Value})
	}
	if err := ctl.Service.UpsertScores(c.UserContext(), id, evaluatorID, inputs); err != nil {
		return ctl.mapEvaluationError(c, err)
	}
	return helper.Success(c, "Nilai tersimpan", nil)
}

// POST /evaluations/:id/submit
func (ctl *EvaluationController) SubmitEvaluation(c *fiber.Ctx) error {
	evaluatorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid id")
	}

	// body opsional
	var req dto.SubmitEvaluationRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
		}
	}

	eval, err := ctl.Service.Submit(c.UserContext(), id, evaluatorID, req.Notes)
	if err != nil {
		return ctl.mapEvaluationError(c, err)
	}
	return helper.Success(c, "Evaluasi diajukan", dto.FromModel(eval))
}

// POST /evaluations/:id/review (admin)
func (ctl *EvaluationController) ReviewEvaluation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid id")
	}

	eval, err := ctl.Service.Review(c.UserContext(), id)
	if err != nil {
		return ctl.mapEvaluationError(c, err)
	}
	return helper.Success(c, "Evaluasi ditinjau", dto.FromModel(eval))
}

// GET /evaluations/:id — detail + nilai per kriteria
func (ctl *EvaluationController) GetEvaluation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid id")
	}

	var eval model.Evaluation
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&eval, "evaluation_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Evaluasi tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var scores []model.EvaluationScore
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("score_evaluation_id = ?", id).
		Find(&scores).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"evaluation": dto.FromModel(&eval),
		"scores":     scores,
	})
}

// GET /evaluations?wasit_id=&event_id=&status=
func (ctl *EvaluationController) ListEvaluations(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.Evaluation{})
	if wasit := c.Query("wasit_id"); wasit != "" {
		id, err := uuid.Parse(wasit)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "wasit_id tidak valid")
		}
		q = q.Where("evaluation_wasit_id = ?", id)
	}
	if event := c.Query("event_id"); event != "" {
		id, err := uuid.Parse(event)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "event_id tidak valid")
		}
		q = q.Where("evaluation_event_id = ?", id)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("evaluation_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var evals []model.Evaluation
	if err := q.Order("evaluation_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&evals).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"evaluations": dto.FromModels(evals),
		"pagination":  helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// GET /evaluation-criteria
func (ctl *EvaluationController) ListCriteria(c *fiber.Ctx) error {
	var criteria []model.EvaluationCriteria
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("criteria_is_active = ?", true).
		Order("criteria_name ASC").
		Find(&criteria).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", criteria)
}

/* ===================== error mapping ===================== */

func (ctl *EvaluationController) mapEvaluationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, svc.ErrEvaluationNotFound):
		return helper.Error(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, svc.ErrNotEvaluator):
		return helper.Error(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, svc.ErrNotDraft),
		errors.Is(err, svc.ErrNotSubmitted),
		errors.Is(err, svc.ErrScoreOutOfRange):
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	default:
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
}
