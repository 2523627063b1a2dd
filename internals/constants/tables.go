package constants

// Daftar tabel yang boleh diekspor/diimpor lewat endpoint database ops.
// Nama di luar daftar ini ditolak di boundary, tidak pernah sampai ke query.
var ExportableTables = []string{
	"events",
	"event_approvals",
	"event_assignments",
	"honors",
	"evaluations",
	"evaluation_scores",
	"evaluation_criteria",
	"users",
	"kabupaten_kota",
	"learning_materials",
	"forum_threads",
	"forum_posts",
	"referee_reviews",
}

func IsExportableTable(name string) bool {
	for _, t := range ExportableTables {
		if t == name {
			return true
		}
	}
	return false
}
