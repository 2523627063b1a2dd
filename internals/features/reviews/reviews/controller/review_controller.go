// file: internals/features/reviews/reviews/controller/review_controller.go
package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "wasitku_backend/internals/features/reviews/reviews/dto"
	model "wasitku_backend/internals/features/reviews/reviews/model"
	helper "wasitku_backend/internals/helpers"
	"wasitku_backend/internals/metrics"
	"wasitku_backend/internals/search"
)

type ReviewController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Search    *search.Client
}

func NewReviewController(db *gorm.DB, searchClient *search.Client) *ReviewController {
	return &ReviewController{
		DB:        db,
		Validator: validator.New(),
		Search:    searchClient,
	}
}

// POST /reviews (publik, dibatasi rate limiter ketat)
func (ctl *ReviewController) CreateReview(c *fiber.Ctx) error {
	var req dto.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// wasit harus ada dan ber-role wasit
	var count int64
	if err := ctl.DB.WithContext(c.UserContext()).
		Table("users").
		Where("user_id = ? AND user_role = ? AND user_deleted_at IS NULL", req.WasitID, "wasit").
		Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if count == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Wasit tidak ditemukan")
	}

	review := model.RefereeReview{
		ReviewWasitID:    req.WasitID,
		ReviewEventID:    req.EventID,
		ReviewRating:     req.Rating,
		ReviewComment:    req.Comment,
		ReviewAuthorName: req.AuthorName,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&review).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	// pengindeksan best-effort: gagal indeks tidak membatalkan ulasan
	if err := ctl.Search.IndexReview(c.UserContext(), search.ReviewDocument{
		ReviewID:   review.ReviewID.String(),
		WasitID:    review.ReviewWasitID.String(),
		Rating:     review.ReviewRating,
		Comment:    review.ReviewComment,
		AuthorName: review.ReviewAuthorName,
		CreatedAt:  review.CreatedAt.Format(time.RFC3339),
	}); err != nil {
		log.Printf("[WARN] gagal mengindeks ulasan %s: %v", review.ReviewID, err)
	} else {
		metrics.ReviewIndexed.Inc()
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Ulasan terkirim", dto.FromModel(&review))
}

// GET /reviews/wasit/:id (publik)
func (ctl *ReviewController) ListReviewsByWasit(c *fiber.Ctx) error {
	wasitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid id")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).
		Model(&model.RefereeReview{}).
		Where("review_wasit_id = ?", wasitID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var reviews []model.RefereeReview
	if err := q.Order("review_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&reviews).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var avg struct {
		Rating float64
	}
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&model.RefereeReview{}).
		Select("COALESCE(AVG(review_rating), 0) AS rating").
		Where("review_wasit_id = ?", wasitID).
		Scan(&avg).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"reviews":        dto.FromModels(reviews),
		"average_rating": avg.Rating,
		"pagination":     helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// GET /reviews/search?q=&wasit_id= (publik, butuh Elasticsearch)
func (ctl *ReviewController) SearchReviews(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return helper.Error(c, fiber.StatusBadRequest, "parameter q wajib diisi")
	}

	docs, err := ctl.Search.SearchReviews(c.UserContext(), query, c.Query("wasit_id"), c.QueryInt("size", 20))
	if err != nil {
		return helper.Error(c, fiber.StatusServiceUnavailable, err.Error())
	}
	return helper.Success(c, "OK", docs)
}
