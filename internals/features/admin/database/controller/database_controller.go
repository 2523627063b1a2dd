// file: internals/features/admin/database/controller/database_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "wasitku_backend/internals/features/admin/database/dto"
	svc "wasitku_backend/internals/features/admin/database/service"
	helper "wasitku_backend/internals/helpers"
)

type DatabaseController struct {
	Validator *validator.Validate
	Export    *svc.ExportService
	Import    *svc.ImportService
}

func NewDatabaseController(db *gorm.DB) *DatabaseController {
	store := svc.NewGormStore(db)
	return &DatabaseController{
		Validator: validator.New(),
		Export:    svc.NewExportService(store),
		Import:    svc.NewImportService(store),
	}
}

// POST /database/export
func (ctl *DatabaseController) ExportDatabase(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.ExportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	bundle, err := ctl.Export.Export(c.UserContext(), actorID, req.Tables, req.Format, req.From, req.To)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.Success(c, "Ekspor selesai", bundle)
}

// POST /database/import
func (ctl *DatabaseController) ImportDatabase(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.ImportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	payload := req.Data
	if req.Format == svc.FormatCSV {
		payload = make(map[string][]map[string]interface{}, len(req.CSVData))
		for table, raw := range req.CSVData {
			records, err := svc.DecodeCSV([]byte(raw))
			if err != nil {
				return helper.Error(c, fiber.StatusBadRequest, "CSV tabel "+table+" tidak valid: "+err.Error())
			}
			payload[table] = records
		}
	}
	if len(payload) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "tidak ada data untuk diimpor")
	}

	results, err := ctl.Import.Import(c.UserContext(), actorID, payload, req.Strategy)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.Success(c, "Impor selesai", results)
}
