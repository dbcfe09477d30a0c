package controller

import (
	"quiz_api_backend/internal/model"
	"quiz_api_backend/internal/service"
	"quiz_api_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	Service *service.QuizService
}

func NewQuizController(s *service.QuizService) *QuizController {
	return &QuizController{Service: s}
}

// swagger:model QuizRequest
type QuizRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description"`
	CategoryID  uint   `json:"categoryId" binding:"required"`
	IsActive    *bool  `json:"isActive"`
}

type quizPatchRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	CategoryID  *uint   `json:"categoryId"`
	IsActive    *bool   `json:"isActive"`
}

// List godoc
// @Summary 测验列表（管理端，仅激活）
// @Tags 测验管理
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Quiz}
// @Router /quizzes [get]
func (c *QuizController) List(ctx *gin.Context) {
	quizzes, err := c.Service.ListActive(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, quizzes)
}

// ListActive godoc
// @Summary 活动测验列表（所有已认证用户）
// @Tags 答题
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Quiz}
// @Router /quizzes/active [get]
func (c *QuizController) ListActive(ctx *gin.Context) {
	quizzes, err := c.Service.ListActive(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, quizzes)
}

// Create godoc
// @Summary 新建测验
// @Tags 测验管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body QuizRequest true "测验信息"
// @Success 201 {object} util.Response{data=model.Quiz}
// @Failure 400 {object} util.Response
// @Router /quizzes [post]
func (c *QuizController) Create(ctx *gin.Context) {
	var req QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	quiz := &model.Quiz{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		CreatedByID: claims.UserID,
		IsActive:    true,
	}
	if req.IsActive != nil {
		quiz.IsActive = *req.IsActive
	}

	if err := c.Service.Create(ctx.Request.Context(), quiz); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, quiz)
}

// Get godoc
// @Summary 测验详情（含题目与选项）
// @Tags 测验管理
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "测验ID"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Failure 404 {object} util.Response
// @Router /quizzes/{id} [get]
func (c *QuizController) Get(ctx *gin.Context) {
	quiz, err := c.Service.Get(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, quiz)
}

// Update godoc
// @Summary 更新测验
// @Tags 测验管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "测验ID"
// @Param body body QuizRequest true "测验信息"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Router /quizzes/{id} [put]
func (c *QuizController) Update(ctx *gin.Context) {
	quiz, err := c.Service.Get(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.NotFound(ctx)
		return
	}

	var req QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz.Title = req.Title
	quiz.Description = req.Description
	quiz.CategoryID = req.CategoryID
	if req.IsActive != nil {
		quiz.IsActive = *req.IsActive
	}

	if err := c.Service.Update(ctx.Request.Context(), quiz); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

// Patch godoc
// @Summary 局部更新测验
// @Tags 测验管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "测验ID"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Router /quizzes/{id} [patch]
func (c *QuizController) Patch(ctx *gin.Context) {
	quiz, err := c.Service.Get(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.NotFound(ctx)
		return
	}

	var req quizPatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if req.Title != nil {
		quiz.Title = *req.Title
	}
	if req.Description != nil {
		quiz.Description = *req.Description
	}
	if req.CategoryID != nil {
		quiz.CategoryID = *req.CategoryID
	}
	if req.IsActive != nil {
		quiz.IsActive = *req.IsActive
	}

	if err := c.Service.Update(ctx.Request.Context(), quiz); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

// ToggleActive godoc
// @Summary 翻转测验 active 标志
// @Tags 测验管理
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "测验ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /quizzes/{id}/toggle-active [patch]
func (c *QuizController) ToggleActive(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if _, err := c.Service.Get(id); err != nil {
		util.NotFound(ctx)
		return
	}

	active, err := c.Service.ToggleActive(ctx.Request.Context(), id)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"isActive": active})
}

// Delete godoc
// @Summary 删除测验
// @Tags 测验管理
// @Security ApiKeyAuth
// @Param id path int true "测验ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /quizzes/{id} [delete]
func (c *QuizController) Delete(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if _, err := c.Service.Get(id); err != nil {
		util.NotFound(ctx)
		return
	}

	if err := c.Service.Delete(ctx.Request.Context(), id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.NoContent(ctx)
}
