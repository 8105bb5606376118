package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"travelku_backend/internals/features/travel/locations/dto"
	"travelku_backend/internals/features/travel/locations/model"
	helper "travelku_backend/internals/helpers"
)

type LocationController struct {
	DB *gorm.DB
}

func NewLocationController(db *gorm.DB) *LocationController {
	return &LocationController{DB: db}
}

// GET /api/admin/locations
func (ctrl *LocationController) GetAllLocations(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 10, 100)

	var total int64
	if err := ctrl.DB.Model(&model.LocationModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count locations")
	}

	var locations []model.LocationModel
	if err := ctrl.DB.
		Order("location_created_at DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&locations).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve locations")
	}

	result := make([]dto.LocationDTO, 0, len(locations))
	for _, l := range locations {
		result = append(result, dto.ToLocationDTO(l))
	}
	return helper.JsonList(c, "", result, helper.BuildPagination(total, pg, len(result)))
}

// POST /api/admin/locations
func (ctrl *LocationController) CreateLocation(c *fiber.Ctx) error {
	var req dto.LocationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorMessages(err))
	}

	location := req.ToModel()

	if file, err := c.FormFile("image"); err == nil && file != nil {
		url, err := helper.SaveUploadedImage("locations", file)
		if err != nil {
			return imageUploadError(c, err)
		}
		location.LocationImageURL = &url
	}

	if err := ctrl.DB.Create(&location).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create location")
	}
	return helper.JsonCreated(c, "Location created", dto.ToLocationDTO(location))
}

// POST /api/admin/locations/:id
func (ctrl *LocationController) UpdateLocation(c *fiber.Ctx) error {
	id := c.Params("id")

	var location model.LocationModel
	if err := ctrl.DB.First(&location, "location_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Location not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load location")
	}

	var req dto.LocationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorMessages(err))
	}
	req.ApplyTo(&location)

	if file, err := c.FormFile("image"); err == nil && file != nil {
		// old file goes first so the record never references two files
		if location.LocationImageURL != nil {
			if err := helper.DeleteStoredImage(*location.LocationImageURL); err != nil {
				log.Printf("[ERROR] delete old location image: %v", err)
				return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to replace image")
			}
		}
		url, err := helper.SaveUploadedImage("locations", file)
		if err != nil {
			return imageUploadError(c, err)
		}
		location.LocationImageURL = &url
	}

	if err := ctrl.DB.Save(&location).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update location")
	}
	return helper.JsonUpdated(c, "Location updated", dto.ToLocationDTO(location))
}

// DELETE /api/admin/locations/:id
func (ctrl *LocationController) DeleteLocation(c *fiber.Ctx) error {
	id := c.Params("id")

	var location model.LocationModel
	if err := ctrl.DB.First(&location, "location_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Location not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load location")
	}

	if location.LocationImageURL != nil {
		if err := helper.DeleteStoredImage(*location.LocationImageURL); err != nil {
			log.Printf("[ERROR] delete location image: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete image")
		}
	}

	if err := ctrl.DB.Delete(&model.LocationModel{}, "location_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete location")
	}
	return helper.JsonDeleted(c, "Location deleted", fiber.Map{"location_id": id})
}

func imageUploadError(c *fiber.Ctx, err error) error {
	if errors.Is(err, helper.ErrImageTooLarge) || errors.Is(err, helper.ErrImageBadFormat) {
		return helper.JsonValidationError(c, helper.FieldError("image", err.Error()))
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store image")
}
