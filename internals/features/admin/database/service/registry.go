package service

import (
	"wasitku_backend/internals/constants"
)

// TableSpec metadata satu tabel untuk pipeline ekspor/impor.
// AllowedColumns adalah proyeksi allow-list: kolom impor di luar daftar ini
// dibuang, bukan sebaliknya (deny-list).
type TableSpec struct {
	Name            string
	IDColumn        string
	CreatedAtColumn string
	AllowedColumns  []string
}

var tableRegistry = map[string]TableSpec{
	"events": {
		Name:            "events",
		IDColumn:        "event_id",
		CreatedAtColumn: "event_created_at",
		AllowedColumns: []string{
			"event_id", "event_name", "event_date", "event_location",
			"event_category", "event_description", "event_status",
			"event_created_by", "event_kabupaten_kota_id",
		},
	},
	"event_approvals": {
		Name:            "event_approvals",
		IDColumn:        "approval_id",
		CreatedAtColumn: "approval_created_at",
		AllowedColumns: []string{
			"approval_id", "approval_event_id", "approval_action",
			"approval_from_status", "approval_to_status",
			"approval_actor_id", "approval_notes",
		},
	},
	"event_assignments": {
		Name:            "event_assignments",
		IDColumn:        "assignment_id",
		CreatedAtColumn: "assignment_created_at",
		AllowedColumns: []string{
			"assignment_id", "assignment_event_id", "assignment_wasit_id",
			"assignment_posisi",
		},
	},
	"honors": {
		Name:            "honors",
		IDColumn:        "honor_id",
		CreatedAtColumn: "honor_created_at",
		AllowedColumns: []string{
			"honor_id", "honor_wasit_id", "honor_event_id", "honor_amount_idr",
			"honor_notes", "honor_status", "honor_submitted_at",
			"honor_verified_at", "honor_verified_by", "honor_verification_notes",
			"honor_payout_reference",
		},
	},
	"evaluations": {
		Name:            "evaluations",
		IDColumn:        "evaluation_id",
		CreatedAtColumn: "evaluation_created_at",
		AllowedColumns: []string{
			"evaluation_id", "evaluation_event_id", "evaluation_wasit_id",
			"evaluation_evaluator_id", "evaluation_status",
			"evaluation_total_score", "evaluation_notes",
			"evaluation_submitted_at",
		},
	},
	"evaluation_scores": {
		Name:            "evaluation_scores",
		IDColumn:        "score_id",
		CreatedAtColumn: "score_created_at",
		AllowedColumns: []string{
			"score_id", "score_evaluation_id", "score_criteria_id", "score_value",
		},
	},
	"evaluation_criteria": {
		Name:            "evaluation_criteria",
		IDColumn:        "criteria_id",
		CreatedAtColumn: "criteria_created_at",
		AllowedColumns: []string{
			"criteria_id", "criteria_name", "criteria_weight", "criteria_is_active",
		},
	},
	"users": {
		Name:            "users",
		IDColumn:        "user_id",
		CreatedAtColumn: "user_created_at",
		// user_password sengaja tidak pernah ikut: hash tidak boleh keluar
		// lewat ekspor maupun masuk lewat impor.
		AllowedColumns: []string{
			"user_id", "user_email", "user_full_name", "user_role",
			"user_kabupaten_kota_id", "user_is_active", "user_photo_url",
			"user_bank_name", "user_bank_account",
		},
	},
	"kabupaten_kota": {
		Name:            "kabupaten_kota",
		IDColumn:        "kabupaten_kota_id",
		CreatedAtColumn: "kabupaten_kota_created_at",
		AllowedColumns: []string{
			"kabupaten_kota_id", "kabupaten_kota_name", "kabupaten_kota_province",
			"kabupaten_kota_slug",
		},
	},
	"learning_materials": {
		Name:            "learning_materials",
		IDColumn:        "material_id",
		CreatedAtColumn: "material_created_at",
		AllowedColumns: []string{
			"material_id", "material_title", "material_slug", "material_category",
			"material_content", "material_tags", "material_file_url",
			"material_is_published", "material_created_by",
		},
	},
	"forum_threads": {
		Name:            "forum_threads",
		IDColumn:        "thread_id",
		CreatedAtColumn: "thread_created_at",
		AllowedColumns: []string{
			"thread_id", "thread_title", "thread_slug", "thread_category",
			"thread_created_by", "thread_is_pinned", "thread_is_locked",
		},
	},
	"forum_posts": {
		Name:            "forum_posts",
		IDColumn:        "post_id",
		CreatedAtColumn: "post_created_at",
		AllowedColumns: []string{
			"post_id", "post_thread_id", "post_content", "post_created_by",
		},
	},
	"referee_reviews": {
		Name:            "referee_reviews",
		IDColumn:        "review_id",
		CreatedAtColumn: "review_created_at",
		AllowedColumns: []string{
			"review_id", "review_wasit_id", "review_event_id",
			"review_rating", "review_comment", "review_author_name",
		},
	},
}

// LookupTable mengembalikan spec tabel kalau nama lolos allow-list di
// internals/constants; registry hanya metadata kolom per tabel.
func LookupTable(name string) (TableSpec, bool) {
	if !constants.IsExportableTable(name) {
		return TableSpec{}, false
	}
	spec, ok := tableRegistry[name]
	return spec, ok
}
