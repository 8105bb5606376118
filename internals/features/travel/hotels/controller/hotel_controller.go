package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"travelku_backend/internals/features/travel/hotels/dto"
	"travelku_backend/internals/features/travel/hotels/model"
	locationModel "travelku_backend/internals/features/travel/locations/model"
	helper "travelku_backend/internals/helpers"
)

type HotelController struct {
	DB *gorm.DB
}

func NewHotelController(db *gorm.DB) *HotelController {
	return &HotelController{DB: db}
}

// GET /api/admin/hotels
func (ctrl *HotelController) GetAllHotels(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 10, 100)

	var total int64
	if err := ctrl.DB.Model(&model.HotelModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count hotels")
	}

	var hotels []model.HotelModel
	if err := ctrl.DB.
		Preload("Location").
		Order("hotel_created_at DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&hotels).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve hotels")
	}

	result := make([]dto.HotelDTO, 0, len(hotels))
	for _, h := range hotels {
		result = append(result, dto.ToHotelDTO(h))
	}
	return helper.JsonList(c, "", result, helper.BuildPagination(total, pg, len(result)))
}

// POST /api/admin/hotels
func (ctrl *HotelController) CreateHotel(c *fiber.Ctx) error {
	var req dto.HotelRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorMessages(err))
	}

	locationID, err := ctrl.resolveLocation(req.HotelLocationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonValidationError(c, helper.FieldError("hotel_location_id", "referenced location does not exist."))
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to verify location")
	}

	hotel := model.HotelModel{}
	req.ApplyTo(&hotel, locationID)

	if file, ferr := c.FormFile("image"); ferr == nil && file != nil {
		url, uerr := helper.SaveUploadedImage("hotels", file)
		if uerr != nil {
			return imageUploadError(c, uerr)
		}
		hotel.HotelImageURL = &url
	}

	if err := ctrl.DB.Create(&hotel).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create hotel")
	}
	return helper.JsonCreated(c, "Hotel created", dto.ToHotelDTO(hotel))
}

// POST /api/admin/hotels/:id
func (ctrl *HotelController) UpdateHotel(c *fiber.Ctx) error {
	id := c.Params("id")

	var hotel model.HotelModel
	if err := ctrl.DB.First(&hotel, "hotel_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Hotel not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load hotel")
	}

	var req dto.HotelRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorMessages(err))
	}

	locationID, err := ctrl.resolveLocation(req.HotelLocationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonValidationError(c, helper.FieldError("hotel_location_id", "referenced location does not exist."))
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to verify location")
	}
	req.ApplyTo(&hotel, locationID)

	if file, ferr := c.FormFile("image"); ferr == nil && file != nil {
		if hotel.HotelImageURL != nil {
			if derr := helper.DeleteStoredImage(*hotel.HotelImageURL); derr != nil {
				log.Printf("[ERROR] delete old hotel image: %v", derr)
				return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to replace image")
			}
		}
		url, uerr := helper.SaveUploadedImage("hotels", file)
		if uerr != nil {
			return imageUploadError(c, uerr)
		}
		hotel.HotelImageURL = &url
	}

	if err := ctrl.DB.Save(&hotel).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update hotel")
	}
	return helper.JsonUpdated(c, "Hotel updated", dto.ToHotelDTO(hotel))
}

// DELETE /api/admin/hotels/:id
func (ctrl *HotelController) DeleteHotel(c *fiber.Ctx) error {
	id := c.Params("id")

	var hotel model.HotelModel
	if err := ctrl.DB.First(&hotel, "hotel_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Hotel not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load hotel")
	}

	if hotel.HotelImageURL != nil {
		if err := helper.DeleteStoredImage(*hotel.HotelImageURL); err != nil {
			log.Printf("[ERROR] delete hotel image: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete image")
		}
	}

	if err := ctrl.DB.Delete(&model.HotelModel{}, "hotel_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete hotel")
	}
	return helper.JsonDeleted(c, "Hotel deleted", fiber.Map{"hotel_id": id})
}

func (ctrl *HotelController) resolveLocation(raw string) (uuid.UUID, error) {
	locationID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, err
	}
	var count int64
	if err := ctrl.DB.Model(&locationModel.LocationModel{}).
		Where("location_id = ?", locationID).Count(&count).Error; err != nil {
		return uuid.Nil, err
	}
	if count == 0 {
		return uuid.Nil, gorm.ErrRecordNotFound
	}
	return locationID, nil
}

func imageUploadError(c *fiber.Ctx, err error) error {
	if errors.Is(err, helper.ErrImageTooLarge) || errors.Is(err, helper.ErrImageBadFormat) {
		return helper.JsonValidationError(c, helper.FieldError("image", err.Error()))
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store image")
}
