package controller

import (
	"errors"

	"quiz_api_backend/internal/model"
	"quiz_api_backend/internal/service"
	"quiz_api_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CategoryController struct {
	Service *service.CategoryService
}

func NewCategoryController(s *service.CategoryService) *CategoryController {
	return &CategoryController{Service: s}
}

// swagger:model CategoryRequest
type CategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
}

type categoryPatchRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// List godoc
// @Summary 分类列表
// @Tags 分类管理
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Category}
// @Router /categories [get]
func (c *CategoryController) List(ctx *gin.Context) {
	categories, err := c.Service.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, categories)
}

// Create godoc
// @Summary 新建分类
// @Tags 分类管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CategoryRequest true "分类信息"
// @Success 201 {object} util.Response{data=model.Category}
// @Failure 400 {object} util.Response
// @Router /categories [post]
func (c *CategoryController) Create(ctx *gin.Context) {
	var req CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	category := &model.Category{Name: req.Name, Description: req.Description}
	if err := c.Service.Create(category); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, category)
}

// Get godoc
// @Summary 分类详情
// @Tags 分类管理
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "分类ID"
// @Success 200 {object} util.Response{data=model.Category}
// @Failure 404 {object} util.Response
// @Router /categories/{id} [get]
func (c *CategoryController) Get(ctx *gin.Context) {
	category, err := c.Service.Get(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, category)
}

// Update godoc
// @Summary 更新分类
// @Tags 分类管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "分类ID"
// @Param body body CategoryRequest true "分类信息"
// @Success 200 {object} util.Response{data=model.Category}
// @Router /categories/{id} [put]
func (c *CategoryController) Update(ctx *gin.Context) {
	category, err := c.Service.Get(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.NotFound(ctx)
		return
	}

	var req CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	category.Name = req.Name
	category.Description = req.Description
	if err := c.Service.Update(category); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, category)
}

// Patch godoc
// @Summary 局部更新分类
// @Tags 分类管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "分类ID"
// @Success 200 {object} util.Response{data=model.Category}
// @Router /categories/{id} [patch]
func (c *CategoryController) Patch(ctx *gin.Context) {
	category, err := c.Service.Get(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.NotFound(ctx)
		return
	}

	var req categoryPatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if err := c.Service.Update(category); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, category)
}

// Delete godoc
// @Summary 删除分类
// @Description 级联删除分类下的测验及其题目、选项、提交记录
// @Tags 分类管理
// @Security ApiKeyAuth
// @Param id path int true "分类ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /categories/{id} [delete]
func (c *CategoryController) Delete(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if _, err := c.Service.Get(id); err != nil {
		util.NotFound(ctx)
		return
	}

	if err := c.Service.Delete(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.NoContent(ctx)
}
