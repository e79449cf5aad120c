package userController

import (
	"campus/database"
	"campus/middleware"
	"campus/models"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// CreateUser stores a profile row for an externally authenticated user
func CreateUser(c *fiber.Ctx) error {
	var reqData models.User
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.ErrorJson(c, fiber.StatusBadRequest, middleware.KindValidation, "Invalid request body!")
	}
	if reqData.Email == "" {
		return middleware.ValidationErrorResponse(c, map[string]string{"email": "Email is required!"})
	}

	db := database.Database.Db

	var existing models.User
	if err := db.Where("email = ?", reqData.Email).First(&existing).Error; err == nil {
		return middleware.ErrorJson(c, fiber.StatusConflict, middleware.KindConflict, "User already exists!")
	}

	newUser := models.User{
		Name:    reqData.Name,
		Email:   reqData.Email,
		Role:    models.RoleStudent,
		Photo:   reqData.Photo,
		Address: reqData.Address,
		Phone:   reqData.Phone,
		Gender:  reqData.Gender,
		About:   reqData.About,
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.ErrorJson(c, fiber.StatusInternalServerError, middleware.KindStore, "Failed to create user!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User created successfully!", newUser)
}

// GetUsers lists all users
func GetUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.Database.Db.Where("is_deleted = false").Order("created_at desc").Find(&users).Error; err != nil {
		return middleware.ErrorJson(c, fiber.StatusInternalServerError, middleware.KindStore, "Failed to fetch users!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", users)
}

// GetUserByID fetches one user by numeric id
func GetUserByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return middleware.ErrorJson(c, fiber.StatusBadRequest, middleware.KindValidation, "Invalid user ID!")
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", id).First(&user).Error; err != nil {
		return middleware.ErrorJson(c, fiber.StatusNotFound, middleware.KindNotFound, "User not found!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully!", user)
}

// GetUserByEmail fetches one user by email
func GetUserByEmail(c *fiber.Ctx) error {
	email := c.Params("email")

	var user models.User
	if err := database.Database.Db.Where("email = ? AND is_deleted = false", email).First(&user).Error; err != nil {
		return middleware.ErrorJson(c, fiber.StatusNotFound, middleware.KindNotFound, "User not found!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully!", user)
}

// UpdateUser replaces profile fields of one user
func UpdateUser(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return middleware.ErrorJson(c, fiber.StatusBadRequest, middleware.KindValidation, "Invalid user ID!")
	}

	var reqData models.User
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.ErrorJson(c, fiber.StatusBadRequest, middleware.KindValidation, "Invalid request body!")
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", id).First(&user).Error; err != nil {
		return middleware.ErrorJson(c, fiber.StatusNotFound, middleware.KindNotFound, "User not found!")
	}

	user.Name = reqData.Name
	user.Photo = reqData.Photo
	user.Address = reqData.Address
	user.Phone = reqData.Phone
	user.Gender = reqData.Gender
	user.About = reqData.About

	if err := db.Save(&user).Error; err != nil {
		log.Printf("Error updating user: %v", err)
		return middleware.ErrorJson(c, fiber.StatusInternalServerError, middleware.KindStore, "Failed to update user!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User updated successfully!", user)
}

// DeleteUser soft-deletes one user
func DeleteUser(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return middleware.ErrorJson(c, fiber.StatusBadRequest, middleware.KindValidation, "Invalid user ID!")
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", id).First(&user).Error; err != nil {
		return middleware.ErrorJson(c, fiber.StatusNotFound, middleware.KindNotFound, "User not found!")
	}

	user.IsDeleted = true
	if err := db.Save(&user).Error; err != nil {
		return middleware.ErrorJson(c, fiber.StatusInternalServerError, middleware.KindStore, "Failed to delete user!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully!", nil)
}
