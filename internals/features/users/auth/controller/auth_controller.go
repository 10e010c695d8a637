// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"absensiku_backend/internals/constants"
	"absensiku_backend/internals/features/users/auth/dto"
	"absensiku_backend/internals/features/users/auth/service"
	adminModel "absensiku_backend/internals/features/users/admin/model"
	staffModel "absensiku_backend/internals/features/users/staff/model"
	helper "absensiku_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

var validate = validator.New()

/* ===================== REGISTER (STAFF) ===================== */
// POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var existing staffModel.StaffModel
	err := ctrl.DB.Where("staff_email = ?", req.Email).First(&existing).Error
	if err == nil {
		return helper.Error(c, fiber.StatusBadRequest, "User already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa email")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal hash password")
	}

	staff := staffModel.StaffModel{
		StaffName:     req.Name,
		StaffEmail:    req.Email,
		StaffPassword: string(hashed),
		StaffStatus:   constants.StaffStatusActive,
	}
	if err := ctrl.DB.Create(&staff).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "User registered successfully", nil)
}

/* ===================== LOGIN (STAFF) ===================== */
// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var staff staffModel.StaffModel
	if err := ctrl.DB.Where("staff_email = ?", req.Email).First(&staff).Error; err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(staff.StaffPassword), []byte(req.Password)) != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid credentials")
	}

	token, err := service.CreateToken(staff.StaffID, service.RoleStaff)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.Success(c, "OK", dto.LoginResponse{
		Token: token,
		User: dto.UserPayload{
			ID:    staff.StaffID,
			Name:  staff.StaffName,
			Email: staff.StaffEmail,
			Role:  service.RoleStaff,
		},
	})
}

/* ===================== LOGIN (ADMIN) ===================== */
// POST /api/admin/login
func (ctrl *AuthController) AdminLogin(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var admin adminModel.AdminModel
	if err := ctrl.DB.Where("admin_email = ?", req.Email).First(&admin).Error; err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.AdminPassword), []byte(req.Password)) != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid credentials")
	}

	token, err := service.CreateToken(admin.AdminID, service.RoleAdmin)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.Success(c, "OK", dto.LoginResponse{
		Token: token,
		User: dto.UserPayload{
			ID:    admin.AdminID,
			Name:  admin.AdminName,
			Email: admin.AdminEmail,
			Role:  service.RoleAdmin,
		},
	})
}
