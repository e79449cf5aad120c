package cartController

import (
	"campus/database"
	"campus/middleware"
	"campus/models"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// AddToCart adds one class to the caller's cart
func AddToCart(c *fiber.Ctx) error {
	userEmail, ok := c.Locals("email").(string)
	if !ok || userEmail == "" {
		return middleware.ErrorJson(c, fiber.StatusUnauthorized, middleware.KindUnauthorized, "Unauthorized!")
	}

	reqData, ok := c.Locals("validatedCartAdd").(*struct {
		ClassID uint `json:"class_id"`
	})
	if !ok {
		return middleware.ErrorJson(c, fiber.StatusBadRequest, middleware.KindValidation, "Invalid request data!")
	}

	db := database.Database.Db

	var class models.Class
	if err := db.Where("id = ? AND is_deleted = false", reqData.ClassID).First(&class).Error; err != nil {
		return middleware.ErrorJson(c, fiber.StatusNotFound, middleware.KindNotFound, "Class not found!")
	}

	// One live entry per (user, class)
	var existing models.CartItem
	if err := db.Where("user_email = ? AND class_id = ? AND is_deleted = false", userEmail, reqData.ClassID).
		First(&existing).Error; err == nil {
		return middleware.ErrorJson(c, fiber.StatusConflict, middleware.KindConflict, "Class is already in your cart!")
	}

	item := models.CartItem{
		UserEmail: userEmail,
		ClassID:   reqData.ClassID,
	}
	if err := db.Create(&item).Error; err != nil {
		log.Printf("Error saving cart item: %v", err)
		return middleware.ErrorJson(c, fiber.StatusInternalServerError, middleware.KindStore, "Failed to add class to cart!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Class added to cart!", item)
}

// GetCartByEmail lists a user's cart items resolved to full class records
func GetCartByEmail(c *fiber.Ctx) error {
	email := c.Params("email")

	db := database.Database.Db

	var items []models.CartItem
	if err := db.Where("user_email = ? AND is_deleted = false", email).Order("created_at desc").Find(&items).Error; err != nil {
		return middleware.ErrorJson(c, fiber.StatusInternalServerError, middleware.KindStore, "Failed to fetch cart!")
	}

	classIDs := make([]uint, 0, len(items))
	for _, item := range items {
		classIDs = append(classIDs, item.ClassID)
	}

	classByID := make(map[uint]models.Class)
	if len(classIDs) > 0 {
		var classes []models.Class
		if err := db.Where("id IN ? AND is_deleted = false", classIDs).Find(&classes).Error; err != nil {
			return middleware.ErrorJson(c, fiber.StatusInternalServerError, middleware.KindStore, "Failed to fetch cart classes!")
		}
		for _, cl := range classes {
			classByID[cl.ID] = cl
		}
	}

	result := make([]fiber.Map, 0, len(items))
	for _, item := range items {
		cl, found := classByID[item.ClassID]
		if !found {
			continue
		}
		result = append(result, fiber.Map{
			"cart_item_id": item.ID,
			"class":        cl,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cart fetched successfully!", result)
}

// GetCartItem fetches one cart entry by its own id, scoped like deletes to
// the owner or an admin
func GetCartItem(c *fiber.Ctx) error {
	userEmail, ok := c.Locals("email").(string)
	if !ok || userEmail == "" {
		return middleware.ErrorJson(c, fiber.StatusUnauthorized, middleware.KindUnauthorized, "Unauthorized!")
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return middleware.ErrorJson(c, fiber.StatusBadRequest, middleware.KindValidation, "Invalid cart item ID!")
	}

	var item models.CartItem
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", id).First(&item).Error; err != nil {
		return middleware.ErrorJson(c, fiber.StatusNotFound, middleware.KindNotFound, "Cart item not found!")
	}

	role, _ := c.Locals("role").(string)
	if item.UserEmail != userEmail && role != models.RoleAdmin {
		return middleware.ErrorJson(c, fiber.StatusForbidden, middleware.KindForbidden, "You can only view your own cart items!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cart item fetched successfully!", item)
}

// DeleteCartItem removes one entry; deletes are scoped to the owner so a
// shared class id can never remove another user's cart row
func DeleteCartItem(c *fiber.Ctx) error {
	userEmail, ok := c.Locals("email").(string)
	if !ok || userEmail == "" {
		return middleware.ErrorJson(c, fiber.StatusUnauthorized, middleware.KindUnauthorized, "Unauthorized!")
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return middleware.ErrorJson(c, fiber.StatusBadRequest, middleware.KindValidation, "Invalid cart item ID!")
	}

	db := database.Database.Db

	var item models.CartItem
	if err := db.Where("id = ? AND is_deleted = false", id).First(&item).Error; err != nil {
		return middleware.ErrorJson(c, fiber.StatusNotFound, middleware.KindNotFound, "Cart item not found!")
	}

	role, _ := c.Locals("role").(string)
	if item.UserEmail != userEmail && role != models.RoleAdmin {
		return middleware.ErrorJson(c, fiber.StatusForbidden, middleware.KindForbidden, "You can only remove your own cart items!")
	}

	if err := db.Delete(&item).Error; err != nil {
		return middleware.ErrorJson(c, fiber.StatusInternalServerError, middleware.KindStore, "Failed to remove cart item!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cart item removed successfully!", nil)
}
