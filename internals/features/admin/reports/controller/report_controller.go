// file: internals/features/admin/reports/controller/report_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "wasitku_backend/internals/helpers"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

type reportScope struct {
	kabupatenKotaID *uuid.UUID
	from, to        *time.Time
}

// GET /reports?type=summary|income|events&kabupaten_kota_id=&from=&to=
func (ctl *ReportController) GetReport(c *fiber.Ctx) error {
	scope, err := ctl.parseScope(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	switch c.Query("type", "summary") {
	case "summary":
		return ctl.summaryReport(c, scope)
	case "income":
		return ctl.incomeReport(c, scope)
	case "events":
		return ctl.eventsReport(c, scope)
	default:
		return helper.Error(c, fiber.StatusBadRequest, "type harus summary, income, atau events")
	}
}

// summary: jumlah entitas per jenis + total honor terverifikasi.
func (ctl *ReportController) summaryReport(c *fiber.Ctx, scope reportScope) error {
	db := ctl.DB.WithContext(c.UserContext())

	var totalEvents, totalWasit, totalEvaluations, totalHonors int64

	eventQ := db.Table("events").Where("event_deleted_at IS NULL")
	if scope.kabupatenKotaID != nil {
		eventQ = eventQ.Where("event_kabupaten_kota_id = ?", *scope.kabupatenKotaID)
	}
	if err := eventQ.Count(&totalEvents).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	wasitQ := db.Table("users").Where("user_role = ? AND user_deleted_at IS NULL", "wasit")
	if scope.kabupatenKotaID != nil {
		wasitQ = wasitQ.Where("user_kabupaten_kota_id = ?", *scope.kabupatenKotaID)
	}
	if err := wasitQ.Count(&totalWasit).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := db.Table("evaluations").
		Where("evaluation_deleted_at IS NULL").
		Count(&totalEvaluations).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := db.Table("honors").
		Where("honor_deleted_at IS NULL").
		Count(&totalHonors).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var verifiedAmount struct {
		Total int64
	}
	honorQ := db.Table("honors").
		Select("COALESCE(SUM(honor_amount_idr), 0) AS total").
		Where("honor_status = ? AND honor_deleted_at IS NULL", "verified")
	if scope.from != nil {
		honorQ = honorQ.Where("honor_verified_at >= ?", *scope.from)
	}
	if scope.to != nil {
		honorQ = honorQ.Where("honor_verified_at <= ?", *scope.to)
	}
	if err := honorQ.Scan(&verifiedAmount).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"total_events":              totalEvents,
		"total_wasit":               totalWasit,
		"total_evaluations":         totalEvaluations,
		"total_honors":              totalHonors,
		"verified_honor_amount_idr": verifiedAmount.Total,
	})
}

// income: total honor terverifikasi per bulan.
func (ctl *ReportController) incomeReport(c *fiber.Ctx, scope reportScope) error {
	type monthlyIncome struct {
		Month string `json:"month"`
		Total int64  `json:"total_idr"`
		Count int64  `json:"count"`
	}

	q := ctl.DB.WithContext(c.UserContext()).
		Table("honors").
		Select("to_char(honor_verified_at, 'YYYY-MM') AS month, COALESCE(SUM(honor_amount_idr), 0) AS total, COUNT(*) AS count").
		Where("honor_status = ? AND honor_verified_at IS NOT NULL AND honor_deleted_at IS NULL", "verified")
	if scope.from != nil {
		q = q.Where("honor_verified_at >= ?", *scope.from)
	}
	if scope.to != nil {
		q = q.Where("honor_verified_at <= ?", *scope.to)
	}

	var rows []monthlyIncome
	if err := q.Group("month").Order("month DESC").Scan(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", rows)
}

// events: jumlah event per status.
func (ctl *ReportController) eventsReport(c *fiber.Ctx, scope reportScope) error {
	type statusCount struct {
		Status string `json:"status"`
		Count  int64  `json:"count"`
	}

	q := ctl.DB.WithContext(c.UserContext()).
		Table("events").
		Select("event_status AS status, COUNT(*) AS count").
		Where("event_deleted_at IS NULL")
	if scope.kabupatenKotaID != nil {
		q = q.Where("event_kabupaten_kota_id = ?", *scope.kabupatenKotaID)
	}
	if scope.from != nil {
		q = q.Where("event_created_at >= ?", *scope.from)
	}
	if scope.to != nil {
		q = q.Where("event_created_at <= ?", *scope.to)
	}

	var rows []statusCount
	if err := q.Group("event_status").Order("count DESC").Scan(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", rows)
}

func (ctl *ReportController) parseScope(c *fiber.Ctx) (reportScope, error) {
	var scope reportScope

	if kab := c.Query("kabupaten_kota_id"); kab != "" {
		id, err := uuid.Parse(kab)
		if err != nil {
			return scope, fiber.NewError(fiber.StatusBadRequest, "kabupaten_kota_id tidak valid")
		}
		scope.kabupatenKotaID = &id
	}
	if from := c.Query("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return scope, fiber.NewError(fiber.StatusBadRequest, "from harus format YYYY-MM-DD")
		}
		scope.from = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return scope, fiber.NewError(fiber.StatusBadRequest, "to harus format YYYY-MM-DD")
		}
		end := t.Add(24*time.Hour - time.Nanosecond)
		scope.to = &end
	}
	return scope, nil
}
