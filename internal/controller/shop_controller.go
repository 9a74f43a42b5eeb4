package controller

import (
	"kidslearn_backend/internal/service"
	"kidslearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ShopController struct {
	CollectibleService *service.CollectibleService
	ChildService       *service.ChildService
}

func NewShopController(collectibleService *service.CollectibleService, childService *service.ChildService) *ShopController {
	return &ShopController{CollectibleService: collectibleService, ChildService: childService}
}

func (c *ShopController) effectiveChild(ctx *gin.Context) (uint, bool) {
	childID, claims, ok := requireChild(ctx)
	if !ok {
		return 0, false
	}
	if claims.ChildID == 0 {
		if _, err := c.ChildService.Get(claims.UserID, childID); err != nil {
			respondError(ctx, err)
			return 0, false
		}
	}
	return childID, true
}

// Catalog godoc
// @Summary Shop catalog with unlock state
// @Tags shop
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]service.ShopItem}
// @Router /api/kid/shop [get]
func (c *ShopController) Catalog(ctx *gin.Context) {
	childID, ok := c.effectiveChild(ctx)
	if !ok {
		return
	}
	items, err := c.CollectibleService.Catalog(childID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, items)
}

// Wallet godoc
// @Summary Coin balance and streak
// @Tags shop
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.Wallet}
// @Router /api/kid/wallet [get]
func (c *ShopController) Wallet(ctx *gin.Context) {
	childID, ok := c.effectiveChild(ctx)
	if !ok {
		return
	}
	wallet, err := c.CollectibleService.Wallet(childID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, wallet)
}

// Purchase godoc
// @Summary Spend coins to unlock a collectible
// @Tags shop
// @Produce json
// @Security BearerAuth
// @Param id path int true "collectible id"
// @Success 200 {object} util.Response{data=model.Wallet} "updated wallet"
// @Failure 409 {object} util.Response "already unlocked or insufficient coins"
// @Router /api/kid/shop/{id}/purchase [post]
func (c *ShopController) Purchase(ctx *gin.Context) {
	childID, ok := c.effectiveChild(ctx)
	if !ok {
		return
	}
	wallet, err := c.CollectibleService.Purchase(childID, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, wallet)
}
