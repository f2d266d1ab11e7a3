package controllers

import (
	"github.com/gin-gonic/gin"

	"managehotel/models"
	"managehotel/services"
	"managehotel/utils"
)

type ServiceController struct {
	Services *services.ServiceService
	Products *services.ProductService
}

func NewServiceController(svc *services.ServiceService, products *services.ProductService) *ServiceController {
	return &ServiceController{Services: svc, Products: products}
}

type BuyServicePayload struct {
	BookingCode string `json:"bookingCode" binding:"required"`
	ProductID   uint   `json:"productId" binding:"required"`
	Amount      int    `json:"amount" binding:"required"`
}

func (ctl *ServiceController) BuyService(c *gin.Context) {
	var payload BuyServicePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONBadRequest(c, err.Error())
		return
	}

	purchase, err := ctl.Services.Buy(payload.BookingCode, payload.ProductID, payload.Amount)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONSuccess(c, purchase)
}

func (ctl *ServiceController) GetProducts(c *gin.Context) {
	products, err := ctl.Products.GetAll()
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONSuccess(c, products)
}

type ProductPayload struct {
	Title      string  `json:"title" binding:"required"`
	Price      float64 `json:"price" binding:"required"`
	Amount     int     `json:"amount"`
	CategoryID *uint   `json:"categoryId"`
}

func (ctl *ServiceController) CreateProduct(c *gin.Context) {
	var payload ProductPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONBadRequest(c, err.Error())
		return
	}

	product, err := ctl.Products.Create(models.Product{
		Title:      payload.Title,
		Price:      payload.Price,
		Amount:     payload.Amount,
		CategoryID: payload.CategoryID,
	})
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONSuccess(c, product)
}
