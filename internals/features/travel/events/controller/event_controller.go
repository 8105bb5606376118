package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"travelku_backend/internals/features/travel/events/dto"
	"travelku_backend/internals/features/travel/events/model"
	locationModel "travelku_backend/internals/features/travel/locations/model"
	helper "travelku_backend/internals/helpers"
)

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

// GET /api/admin/events
func (ctrl *EventController) GetAllEvents(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 10, 100)

	var total int64
	if err := ctrl.DB.Model(&model.EventModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count events")
	}

	var events []model.EventModel
	if err := ctrl.DB.
		Preload("Location").
		Order("event_created_at DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve events")
	}

	result := make([]dto.EventDTO, 0, len(events))
	for _, e := range events {
		result = append(result, dto.ToEventDTO(e))
	}
	return helper.JsonList(c, "", result, helper.BuildPagination(total, pg, len(result)))
}

// POST /api/admin/events
func (ctrl *EventController) CreateEvent(c *fiber.Ctx) error {
	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	locationID, start, end, fieldErrs, err := ctrl.validateRequest(req)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to validate event")
	}
	if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	event := model.EventModel{}
	req.ApplyTo(&event, locationID, start, end)

	if file, ferr := c.FormFile("image"); ferr == nil && file != nil {
		url, uerr := helper.SaveUploadedImage("events", file)
		if uerr != nil {
			return imageUploadError(c, uerr)
		}
		event.EventImageURL = &url
	}

	if err := ctrl.DB.Create(&event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create event")
	}
	return helper.JsonCreated(c, "Event created", dto.ToEventDTO(event))
}

// POST /api/admin/events/:id
func (ctrl *EventController) UpdateEvent(c *fiber.Ctx) error {
	id := c.Params("id")

	var event model.EventModel
	if err := ctrl.DB.First(&event, "event_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load event")
	}

	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	locationID, start, end, fieldErrs, err := ctrl.validateRequest(req)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to validate event")
	}
	if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	req.ApplyTo(&event, locationID, start, end)

	if file, ferr := c.FormFile("image"); ferr == nil && file != nil {
		if event.EventImageURL != nil {
			if derr := helper.DeleteStoredImage(*event.EventImageURL); derr != nil {
				log.Printf("[ERROR] delete old event image: %v", derr)
				return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to replace image")
			}
		}
		url, uerr := helper.SaveUploadedImage("events", file)
		if uerr != nil {
			return imageUploadError(c, uerr)
		}
		event.EventImageURL = &url
	}

	if err := ctrl.DB.Save(&event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update event")
	}
	return helper.JsonUpdated(c, "Event updated", dto.ToEventDTO(event))
}

// DELETE /api/admin/events/:id
func (ctrl *EventController) DeleteEvent(c *fiber.Ctx) error {
	id := c.Params("id")

	var event model.EventModel
	if err := ctrl.DB.First(&event, "event_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load event")
	}

	if event.EventImageURL != nil {
		if err := helper.DeleteStoredImage(*event.EventImageURL); err != nil {
			log.Printf("[ERROR] delete event image: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete image")
		}
	}

	if err := ctrl.DB.Delete(&model.EventModel{}, "event_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete event")
	}
	return helper.JsonDeleted(c, "Event deleted", fiber.Map{"event_id": id})
}

func (ctrl *EventController) validateRequest(req dto.EventRequest) (locationID uuid.UUID, start, end time.Time, fieldErrs map[string][]string, err error) {
	if verr := helper.Validate(req); verr != nil {
		return uuid.Nil, start, end, helper.ValidatorMessages(verr), nil
	}

	start, end, perr := req.Dates()
	if perr != nil {
		return uuid.Nil, start, end, helper.FieldError("event_start_date", "must be a date in YYYY-MM-DD format."), nil
	}
	if end.Before(start) {
		return uuid.Nil, start, end, helper.FieldError("event_end_date", "must be on or after event_start_date."), nil
	}

	locationID, perr = uuid.Parse(req.EventLocationID)
	if perr != nil {
		return uuid.Nil, start, end, helper.FieldError("event_location_id", "must be a valid id."), nil
	}
	var count int64
	if derr := ctrl.DB.Model(&locationModel.LocationModel{}).
		Where("location_id = ?", locationID).Count(&count).Error; derr != nil {
		return uuid.Nil, start, end, nil, derr
	}
	if count == 0 {
		return uuid.Nil, start, end, helper.FieldError("event_location_id", "referenced location does not exist."), nil
	}

	return locationID, start, end, nil, nil
}

func imageUploadError(c *fiber.Ctx, err error) error {
	if errors.Is(err, helper.ErrImageTooLarge) || errors.Is(err, helper.ErrImageBadFormat) {
		return helper.JsonValidationError(c, helper.FieldError("image", err.Error()))
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store image")
}
