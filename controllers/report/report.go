package reportController

import (
	"campus/database"
	"campus/middleware"
	"campus/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

const popularLimit = 6

// PopularClasses returns the top approved classes by enrollment,
// ties broken by insertion order
func PopularClasses(c *fiber.Ctx) error {
	var classes []models.Class
	if err := database.Database.Db.
		Where("status = ? AND is_deleted = false", models.ClassApproved).
		Order("total_enrolled desc, id asc").
		Limit(popularLimit).
		Find(&classes).Error; err != nil {
		return middleware.ErrorJson(c, fiber.StatusInternalServerError, middleware.KindStore, "Failed to fetch popular classes!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Popular classes fetched successfully!", classes)
}

// PopularInstructors ranks instructors by the summed enrollment of their
// classes, ties broken by email ascending
func PopularInstructors(c *fiber.Ctx) error {
	db := database.Database.Db

	type instructorTotal struct {
		InstructorEmail string `json:"instructor_email"`
		Enrolled        int64  `json:"enrolled"`
	}

	var rows []instructorTotal
	if err := db.Model(&models.Class{}).
		Select("instructor_email, SUM(total_enrolled) as enrolled").
		Where("is_deleted = false").
		Group("instructor_email").
		Order("enrolled desc, instructor_email asc").
		Limit(popularLimit).
		Scan(&rows).Error; err != nil {
		return middleware.ErrorJson(c, fiber.StatusInternalServerError, middleware.KindStore, "Failed to fetch popular instructors!")
	}

	emails := make([]string, 0, len(rows))
	for _, row := range rows {
		emails = append(emails, row.InstructorEmail)
	}

	userByEmail := make(map[string]models.User)
	if len(emails) > 0 {
		var users []models.User
		if err := db.Where("email IN ?", emails).Find(&users).Error; err != nil {
			return middleware.ErrorJson(c, fiber.StatusInternalServerError, middleware.KindStore, "Failed to fetch instructor profiles!")
		}
		for _, u := range users {
			userByEmail[u.Email] = u
		}
	}

	result := make([]fiber.Map, 0, len(rows))
	for _, row := range rows {
		entry := fiber.Map{
			"instructor_email": row.InstructorEmail,
			"total_enrolled":   row.Enrolled,
		}
		if u, found := userByEmail[row.InstructorEmail]; found {
			entry["instructor"] = u
		}
		result = append(result, entry)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Popular instructors fetched successfully!", result)
}

// AdminStats computes dashboard counts as aggregates, never by materializing
// full collections
func AdminStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var approvedClasses, pendingClasses, instructors, totalClasses, totalEnrollments int64

	if err := db.Model(&models.Class{}).Where("status = ? AND is_deleted = false", models.ClassApproved).
		Count(&approvedClasses).Error; err != nil {
		return middleware.ErrorJson(c, fiber.StatusInternalServerError, middleware.KindStore, "Failed to compute stats!")
	}
	if err := db.Model(&models.Class{}).Where("status = ? AND is_deleted = false", models.ClassPending).
		Count(&pendingClasses).Error; err != nil {
		return middleware.ErrorJson(c, fiber.StatusInternalServerError, middleware.KindStore, "Failed to compute stats!")
	}
	if err := db.Model(&models.User{}).Where("role = ? AND is_deleted = false", models.RoleInstructor).
		Count(&instructors).Error; err != nil {
		return middleware.ErrorJson(c, fiber.StatusInternalServerError, middleware.KindStore, "Failed to compute stats!")
	}
	if err := db.Model(&models.Class{}).Where("is_deleted = false").Count(&totalClasses).Error; err != nil {
		return middleware.ErrorJson(c, fiber.StatusInternalServerError, middleware.KindStore, "Failed to compute stats!")
	}
	if err := db.Model(&models.Enrollment{}).Count(&totalEnrollments).Error; err != nil {
		return middleware.ErrorJson(c, fiber.StatusInternalServerError, middleware.KindStore, "Failed to compute stats!")
	}

	var monthRevenue float64
	if err := db.Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("date >= ?", now.BeginningOfMonth()).
		Scan(&monthRevenue).Error; err != nil {
		return middleware.ErrorJson(c, fiber.StatusInternalServerError, middleware.KindStore, "Failed to compute stats!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats computed successfully!", fiber.Map{
		"approved_classes":  approvedClasses,
		"pending_classes":   pendingClasses,
		"instructors":       instructors,
		"total_classes":     totalClasses,
		"total_enrollments": totalEnrollments,
		"month_revenue":     monthRevenue,
	})
}

// EnrolledClasses lists the classes a user has settled purchases for
func EnrolledClasses(c *fiber.Ctx) error {
	email := c.Params("email")

	db := database.Database.Db

	var classIDs []uint
	if err := db.Model(&models.EnrollmentClass{}).
		Joins("JOIN enrollments ON enrollments.id = enrollment_classes.enrollment_id").
		Where("enrollments.user_email = ?", email).
		Pluck("enrollment_classes.class_id", &classIDs).Error; err != nil {
		return middleware.ErrorJson(c, fiber.StatusInternalServerError, middleware.KindStore, "Failed to fetch enrollments!")
	}

	var classes []models.Class
	if len(classIDs) > 0 {
		if err := db.Where("id IN ? AND is_deleted = false", classIDs).Find(&classes).Error; err != nil {
			return middleware.ErrorJson(c, fiber.StatusInternalServerError, middleware.KindStore, "Failed to fetch enrolled classes!")
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled classes fetched successfully!", classes)
}
