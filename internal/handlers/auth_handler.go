package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/item_management/configs"
	"github.com/item_management/internal/auth"
	"github.com/item_management/internal/models"
	"github.com/item_management/pkg/db"
	"github.com/item_management/pkg/utils"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=255"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

type UserInfo struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Register godoc
// @Summary 用户注册
// @Description 创建新用户，密码使用 bcrypt 哈希后存储
// @Tags auth
// @Accept  json
// @Produce  json
// @Param credentials body RegisterRequest true "注册凭证"
// @Success 201 {object} utils.SuccessResponse{data=UserInfo} "注册成功"
// @Failure 400 {object} utils.ErrorResponse "请求参数错误"
// @Failure 409 {object} utils.ErrorResponse "用户名已存在"
// @Failure 500 {object} utils.ErrorResponse "服务器内部错误"
// @Router /auth/register [post]
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	if err := utils.ValidateCredentials(req.Username, req.Password); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	// 用户名唯一性校验
	var existing models.User
	if err := db.GetDB().Where("username = ?", req.Username).First(&existing).Error; err == nil {
		utils.RespondConflictError(c, "用户名已存在")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondInternalServerError(c, "注册失败", err.Error())
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondInternalServerError(c, "注册失败", err.Error())
		return
	}

	user := models.User{
		Username:     req.Username,
		PasswordHash: string(hashedPassword),
		Role:         "user",
	}
	if err := db.GetDB().Create(&user).Error; err != nil {
		utils.RespondInternalServerError(c, "注册失败", err.Error())
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, UserInfo{
		Username: user.Username,
		Role:     user.Role,
	}, "注册成功")
}

// Login godoc
// @Summary 用户登录
// @Description 验证用户凭证并返回 JWT
// @Tags auth
// @Accept  json
// @Produce  json
// @Param credentials body LoginRequest true "登录凭证"
// @Success 200 {object} utils.SuccessResponse{data=LoginResponse} "登录成功，返回 Token 和用户信息"
// @Failure 400 {object} utils.ErrorResponse "请求参数错误"
// @Failure 401 {object} utils.ErrorResponse "无效的用户名或密码"
// @Failure 500 {object} utils.ErrorResponse "无法生成Token"
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	var user models.User
	if err := db.GetDB().Where("username = ?", req.Username).First(&user).Error; err != nil {
		utils.RespondUnauthorizedError(c, "无效的用户名或密码")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		utils.RespondUnauthorizedError(c, "无效的用户名或密码")
		return
	}

	expirationTime := time.Now().Add(24 * time.Hour)
	claims := &auth.Claims{
		UserID:   uint(user.ID),
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.Username,
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			Issuer:    "item_catalog", // 可选，签发者
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(configs.AppConfig.JWTSecret))
	if err != nil {
		utils.RespondInternalServerError(c, "无法生成Token", err.Error())
		return
	}

	loginResp := LoginResponse{
		Token: tokenString,
		User: UserInfo{
			Username: user.Username,
			Role:     user.Role,
		},
	}
	utils.RespondSuccess(c, http.StatusOK, loginResp, "登录成功")
}

// LogoutHandler godoc
// @Summary 用户登出
// @Description 将当前 Token 的 JTI 加入拒绝列表使其失效
// @Tags auth
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Success 200 {object} utils.SuccessResponse "成功登出"
// @Failure 400 {object} utils.ErrorResponse "错误的请求 (例如，上下文中缺少JTI或EXP)"
// @Router /auth/logout [post]
func LogoutHandler(c *gin.Context) {
	jtiVal, jtiExists := c.Get("jti")
	expVal, expExists := c.Get("exp")

	if !jtiExists || !expExists {
		utils.RespondError(c, http.StatusBadRequest, "Logout context error: JTI or EXP not found in context")
		return
	}

	jti, okJTI := jtiVal.(string)
	exp, okEXP := expVal.(time.Time)

	if !okJTI || jti == "" {
		utils.RespondError(c, http.StatusBadRequest, "Logout context error: Invalid JTI")
		return
	}
	if !okEXP {
		utils.RespondError(c, http.StatusBadRequest, "Logout context error: Invalid EXP")
		return
	}

	auth.AddToDenylist(jti, exp)
	utils.RespondSuccess(c, http.StatusOK, nil, "成功登出")
}
