package dto

import "time"

type ExportRequest struct {
	Tables []string   `json:"tables" validate:"omitempty,dive,required"`
	Format string     `json:"format" validate:"required,oneof=json csv"`
	From   *time.Time `json:"from,omitempty"`
	To     *time.Time `json:"to,omitempty"`
}

type ImportRequest struct {
	Strategy string                              `json:"strategy" validate:"required,oneof=skip update"`
	Format   string                              `json:"format" validate:"required,oneof=json csv"`
	Data     map[string][]map[string]interface{} `json:"data,omitempty"`
	CSVData  map[string]string                   `json:"csv_data,omitempty"`
}
