package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	locationModel "travelku_backend/internals/features/travel/locations/model"
	"travelku_backend/internals/features/travel/tours/dto"
	"travelku_backend/internals/features/travel/tours/model"
	helper "travelku_backend/internals/helpers"
)

type TourController struct {
	DB *gorm.DB
}

func NewTourController(db *gorm.DB) *TourController {
	return &TourController{DB: db}
}

// GET /api/admin/tours
func (ctrl *TourController) GetAllTours(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 10, 100)

	var total int64
	if err := ctrl.DB.Model(&model.TourModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count tours")
	}

	var tours []model.TourModel
	if err := ctrl.DB.
		Preload("Location").
		Order("tour_created_at DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&tours).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve tours")
	}

	result := make([]dto.TourDTO, 0, len(tours))
	for _, t := range tours {
		result = append(result, dto.ToTourDTO(t))
	}
	return helper.JsonList(c, "", result, helper.BuildPagination(total, pg, len(result)))
}

// POST /api/admin/tours
func (ctrl *TourController) CreateTour(c *fiber.Ctx) error {
	var req dto.TourRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	locationID, start, end, fieldErrs, err := ctrl.validateRequest(req)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to validate tour")
	}
	if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	tour := model.TourModel{}
	req.ApplyTo(&tour, locationID, start, end)

	if file, ferr := c.FormFile("image"); ferr == nil && file != nil {
		url, uerr := helper.SaveUploadedImage("tours", file)
		if uerr != nil {
			return imageUploadError(c, uerr)
		}
		tour.TourImageURL = &url
	}

	if err := ctrl.DB.Create(&tour).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create tour")
	}
	return helper.JsonCreated(c, "Tour created", dto.ToTourDTO(tour))
}

// POST /api/admin/tours/:id
func (ctrl *TourController) UpdateTour(c *fiber.Ctx) error {
	id := c.Params("id")

	var tour model.TourModel
	if err := ctrl.DB.First(&tour, "tour_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tour not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load tour")
	}

	var req dto.TourRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	locationID, start, end, fieldErrs, err := ctrl.validateRequest(req)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to validate tour")
	}
	if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	req.ApplyTo(&tour, locationID, start, end)

	if file, ferr := c.FormFile("image"); ferr == nil && file != nil {
		if tour.TourImageURL != nil {
			if derr := helper.DeleteStoredImage(*tour.TourImageURL); derr != nil {
				log.Printf("[ERROR] delete old tour image: %v", derr)
				return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to replace image")
			}
		}
		url, uerr := helper.SaveUploadedImage("tours", file)
		if uerr != nil {
			return imageUploadError(c, uerr)
		}
		tour.TourImageURL = &url
	}

	if err := ctrl.DB.Save(&tour).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update tour")
	}
	return helper.JsonUpdated(c, "Tour updated", dto.ToTourDTO(tour))
}

// DELETE /api/admin/tours/:id
func (ctrl *TourController) DeleteTour(c *fiber.Ctx) error {
	id := c.Params("id")

	var tour model.TourModel
	if err := ctrl.DB.First(&tour, "tour_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tour not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load tour")
	}

	if tour.TourImageURL != nil {
		if err := helper.DeleteStoredImage(*tour.TourImageURL); err != nil {
			log.Printf("[ERROR] delete tour image: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete image")
		}
	}

	if err := ctrl.DB.Delete(&model.TourModel{}, "tour_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete tour")
	}
	return helper.JsonDeleted(c, "Tour deleted", fiber.Map{"tour_id": id})
}

// validateRequest runs the shared create/update checks: struct validation,
// date ordering (end >= start, equal allowed), location existence. A non-nil
// fieldErrs map means 422; a non-nil err means the DB lookup itself failed.
func (ctrl *TourController) validateRequest(req dto.TourRequest) (locationID uuid.UUID, start, end time.Time, fieldErrs map[string][]string, err error) {
	if verr := helper.Validate(req); verr != nil {
		return uuid.Nil, start, end, helper.ValidatorMessages(verr), nil
	}

	start, end, perr := req.Dates()
	if perr != nil {
		return uuid.Nil, start, end, helper.FieldError("tour_start_date", "must be a date in YYYY-MM-DD format."), nil
	}
	if end.Before(start) {
		return uuid.Nil, start, end, helper.FieldError("tour_end_date", "must be on or after tour_start_date."), nil
	}

	locationID, perr = uuid.Parse(req.TourLocationID)
	if perr != nil {
		return uuid.Nil, start, end, helper.FieldError("tour_location_id", "must be a valid id."), nil
	}
	var count int64
	if derr := ctrl.DB.Model(&locationModel.LocationModel{}).
		Where("location_id = ?", locationID).Count(&count).Error; derr != nil {
		return uuid.Nil, start, end, nil, derr
	}
	if count == 0 {
		return uuid.Nil, start, end, helper.FieldError("tour_location_id", "referenced location does not exist."), nil
	}

	return locationID, start, end, nil, nil
}

func imageUploadError(c *fiber.Ctx, err error) error {
	if errors.Is(err, helper.ErrImageTooLarge) || errors.Is(err, helper.ErrImageBadFormat) {
		return helper.JsonValidationError(c, helper.FieldError("image", err.Error()))
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store image")
}
