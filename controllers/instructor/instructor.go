package instructorController

import (
	"campus/database"
	"campus/middleware"
	"campus/models"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Apply submits an instructor application; one pending application per email
func Apply(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedApplication").(*struct {
		Name       string `json:"name"`
		Email      string `json:"email"`
		Experience string `json:"experience"`
	})
	if !ok {
		return middleware.ErrorJson(c, fiber.StatusBadRequest, middleware.KindValidation, "Invalid request data!")
	}

	db := database.Database.Db

	var existing models.InstructorApplication
	if err := db.Where("applicant_email = ? AND status = ? AND is_deleted = false",
		reqData.Email, models.ApplicationPending).First(&existing).Error; err == nil {
		return middleware.ErrorJson(c, fiber.StatusConflict, middleware.KindConflict, "You already have a pending application!")
	}

	application := models.InstructorApplication{
		ApplicantEmail: reqData.Email,
		Name:           reqData.Name,
		Experience:     reqData.Experience,
		Status:         models.ApplicationPending,
	}
	if err := db.Create(&application).Error; err != nil {
		log.Printf("Error saving application: %v", err)
		return middleware.ErrorJson(c, fiber.StatusInternalServerError, middleware.KindStore, "Failed to submit application!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Application submitted successfully!", application)
}

// AppliedByEmail lists a user's applications
func AppliedByEmail(c *fiber.Ctx) error {
	email := c.Params("email")

	var applications []models.InstructorApplication
	if err := database.Database.Db.Where("applicant_email = ? AND is_deleted = false", email).
		Order("created_at desc").Find(&applications).Error; err != nil {
		return middleware.ErrorJson(c, fiber.StatusInternalServerError, middleware.KindStore, "Failed to fetch applications!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Applications fetched successfully!", applications)
}

// ChangeApplicationStatus approves or denies an application; approval also
// promotes the applicant's role, so both writes share a transaction
func ChangeApplicationStatus(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return middleware.ErrorJson(c, fiber.StatusBadRequest, middleware.KindValidation, "Invalid application ID!")
	}

	reqData, ok := c.Locals("validatedApplicationStatus").(*struct {
		Status string `json:"status"`
	})
	if !ok {
		return middleware.ErrorJson(c, fiber.StatusBadRequest, middleware.KindValidation, "Invalid request data!")
	}

	db := database.Database.Db

	var application models.InstructorApplication
	if err := db.Where("id = ? AND is_deleted = false", id).First(&application).Error; err != nil {
		return middleware.ErrorJson(c, fiber.StatusNotFound, middleware.KindNotFound, "Application not found!")
	}

	if application.Status != models.ApplicationPending {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"status": "Application has already been " + application.Status + "!",
		})
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		application.Status = reqData.Status
		if err := tx.Save(&application).Error; err != nil {
			return err
		}

		if reqData.Status == models.ApplicationApproved {
			if err := tx.Model(&models.User{}).
				Where("email = ? AND is_deleted = false", application.ApplicantEmail).
				Update("role", models.RoleInstructor).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("Error updating application: %v", err)
		return middleware.ErrorJson(c, fiber.StatusInternalServerError, middleware.KindStore, "Failed to update application!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Application updated successfully!", application)
}
