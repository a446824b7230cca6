// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"khatm_backend/internals/configs"
	"khatm_backend/internals/features/users/auth/dto"
	"khatm_backend/internals/features/users/auth/model"
	helper "khatm_backend/internals/helpers"
)

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validator: validator.New()}
}

/*
=========================================================

	REGISTER
	POST /api/auth/register
	=========================================================
*/
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "validation failed")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to hash password")
	}

	user := model.UserModel{
		UserName:         strings.TrimSpace(req.Name),
		UserEmail:        strings.ToLower(strings.TrimSpace(req.Email)),
		UserPasswordHash: hash,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&user).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate key") || strings.Contains(msg, "23505") {
			return helper.JsonError(c, fiber.StatusConflict, "email already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create user")
	}

	token, err := ctl.issueToken(&user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to issue token")
	}
	return helper.JsonCreated(c, "registered", dto.AuthResponse{Token: token, Name: user.UserName, Email: user.UserEmail})
}

/*
=========================================================

	LOGIN
	POST /api/auth/login
	=========================================================
*/
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "validation failed")
	}

	var user model.UserModel
	err := ctl.DB.WithContext(c.UserContext()).
		First(&user, "user_email = ?", strings.ToLower(strings.TrimSpace(req.Email))).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "invalid credentials")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "login failed")
	}
	if bcrypt.CompareHashAndPassword(user.UserPasswordHash, []byte(req.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	token, err := ctl.issueToken(&user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to issue token")
	}
	return helper.JsonOK(c, "ok", dto.AuthResponse{Token: token, Name: user.UserName, Email: user.UserEmail})
}

func (ctl *AuthController) issueToken(user *model.UserModel) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.UserID.String(),
		"name": user.UserName,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(configs.JWTSecret))
}
