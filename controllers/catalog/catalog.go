package catalogController

import (
	"campus/database"
	"campus/middleware"
	"campus/models"
	"log"

	"github.com/gofiber/fiber/v2"
)

// CreateClass submits a new listing; every listing starts out pending review
func CreateClass(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedClass").(*struct {
		Name            string  `json:"name"`
		Image           string  `json:"image"`
		Description     string  `json:"description"`
		InstructorName  string  `json:"instructor_name"`
		InstructorEmail string  `json:"instructor_email"`
		Price           float64 `json:"price"`
		AvailableSeats  int     `json:"available_seats"`
		VideoLink       string  `json:"video_link"`
	})
	if !ok {
		return middleware.ErrorJson(c, fiber.StatusBadRequest, middleware.KindValidation, "Invalid request data!")
	}

	newClass := models.Class{
		Name:            reqData.Name,
		Image:           reqData.Image,
		Description:     reqData.Description,
		InstructorName:  reqData.InstructorName,
		InstructorEmail: reqData.InstructorEmail,
		Price:           reqData.Price,
		AvailableSeats:  reqData.AvailableSeats,
		Status:          models.ClassPending,
		VideoLink:       reqData.VideoLink,
	}

	if err := database.Database.Db.Create(&newClass).Error; err != nil {
		log.Printf("Error saving class to database: %v", err)
		return middleware.ErrorJson(c, fiber.StatusInternalServerError, middleware.KindStore, "Failed to create class!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Class submitted for review!", newClass)
}

// GetAllClasses lists every live listing regardless of status
func GetAllClasses(c *fiber.Ctx) error {
	var classes []models.Class
	if err := database.Database.Db.Where("is_deleted = false").Order("created_at desc").Find(&classes).Error; err != nil {
		return middleware.ErrorJson(c, fiber.StatusInternalServerError, middleware.KindStore, "Failed to fetch classes!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Classes fetched successfully!", classes)
}

// GetClassesByInstructor lists an instructor's own listings
func GetClassesByInstructor(c *fiber.Ctx) error {
	email := c.Params("email")

	var classes []models.Class
	if err := database.Database.Db.Where("instructor_email = ? AND is_deleted = false", email).
		Order("created_at desc").Find(&classes).Error; err != nil {
		return middleware.ErrorJson(c, fiber.StatusInternalServerError, middleware.KindStore, "Failed to fetch classes!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Classes fetched successfully!", classes)
}

// GetApprovedClasses lists the public storefront
func GetApprovedClasses(c *fiber.Ctx) error {
	var classes []models.Class
	if err := database.Database.Db.Where("status = ? AND is_deleted = false", models.ClassApproved).
		Order("created_at desc").Find(&classes).Error; err != nil {
		return middleware.ErrorJson(c, fiber.StatusInternalServerError, middleware.KindStore, "Failed to fetch classes!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Classes fetched successfully!", classes)
}

// GetClassesManage lists everything for the review dashboard
func GetClassesManage(c *fiber.Ctx) error {
	var classes []models.Class
	if err := database.Database.Db.Where("is_deleted = false").Order("created_at asc").Find(&classes).Error; err != nil {
		return middleware.ErrorJson(c, fiber.StatusInternalServerError, middleware.KindStore, "Failed to fetch classes!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Classes fetched successfully!", classes)
}

// GetClassByID fetches a single listing
func GetClassByID(c *fiber.Ctx) error {
	classID, ok := c.Locals("classID").(int)
	if !ok {
		return middleware.ErrorJson(c, fiber.StatusBadRequest, middleware.KindValidation, "Invalid class ID!")
	}

	var class models.Class
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", classID).First(&class).Error; err != nil {
		return middleware.ErrorJson(c, fiber.StatusNotFound, middleware.KindNotFound, "Class not found!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class fetched successfully!", class)
}

// ChangeStatus moves a listing through the review workflow.
// Allowed: pending->approved, pending->denied, approved->denied, denied->approved.
func ChangeStatus(c *fiber.Ctx) error {
	classID, ok := c.Locals("classID").(int)
	if !ok {
		return middleware.ErrorJson(c, fiber.StatusBadRequest, middleware.KindValidation, "Invalid class ID!")
	}

	reqData, ok := c.Locals("validatedStatus").(*struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	})
	if !ok {
		return middleware.ErrorJson(c, fiber.StatusBadRequest, middleware.KindValidation, "Invalid request data!")
	}

	db := database.Database.Db

	var class models.Class
	if err := db.Where("id = ? AND is_deleted = false", classID).First(&class).Error; err != nil {
		return middleware.ErrorJson(c, fiber.StatusNotFound, middleware.KindNotFound, "Class not found!")
	}

	if !models.ValidStatusTransition(class.Status, reqData.Status) {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"status": "Cannot move class from " + class.Status + " to " + reqData.Status + "!",
		})
	}

	class.Status = reqData.Status
	if reqData.Status == models.ClassDenied {
		class.Reason = reqData.Reason
	} else {
		class.Reason = ""
	}

	if err := db.Save(&class).Error; err != nil {
		log.Printf("Error updating class status: %v", err)
		return middleware.ErrorJson(c, fiber.StatusInternalServerError, middleware.KindStore, "Failed to update class status!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class status updated successfully!", class)
}

// UpdateClass replaces the editable fields of a listing
func UpdateClass(c *fiber.Ctx) error {
	classID, ok := c.Locals("classID").(int)
	if !ok {
		return middleware.ErrorJson(c, fiber.StatusBadRequest, middleware.KindValidation, "Invalid class ID!")
	}

	reqData, ok := c.Locals("validatedClassUpdate").(*struct {
		Name           string   `json:"name"`
		Image          string   `json:"image"`
		Description    string   `json:"description"`
		Price          *float64 `json:"price"`
		AvailableSeats *int     `json:"available_seats"`
		TotalEnrolled  *int     `json:"total_enrolled"`
		VideoLink      string   `json:"video_link"`
	})
	if !ok {
		return middleware.ErrorJson(c, fiber.StatusBadRequest, middleware.KindValidation, "Invalid request data!")
	}

	db := database.Database.Db

	var class models.Class
	if err := db.Where("id = ? AND is_deleted = false", classID).First(&class).Error; err != nil {
		return middleware.ErrorJson(c, fiber.StatusNotFound, middleware.KindNotFound, "Class not found!")
	}

	class.Name = reqData.Name
	class.Image = reqData.Image
	class.Description = reqData.Description
	class.Price = *reqData.Price
	class.AvailableSeats = *reqData.AvailableSeats
	class.TotalEnrolled = *reqData.TotalEnrolled
	class.VideoLink = reqData.VideoLink

	if err := db.Save(&class).Error; err != nil {
		log.Printf("Error updating class: %v", err)
		return middleware.ErrorJson(c, fiber.StatusInternalServerError, middleware.KindStore, "Failed to update class!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class updated successfully!", class)
}
