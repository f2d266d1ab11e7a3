package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"managehotel/services"
	"managehotel/utils"
)

type PaymentController struct {
	Payments *services.PaymentService
	Invoices *services.InvoiceService
}

func NewPaymentController(payments *services.PaymentService, invoices *services.InvoiceService) *PaymentController {
	return &PaymentController{Payments: payments, Invoices: invoices}
}

func (ctl *PaymentController) InvoicePreview(c *gin.Context) {
	view, err := ctl.Invoices.Preview(c.Param("bookingCode"))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONSuccess(c, view)
}

type paymentURLResult struct {
	URL string `json:"url"`
}

func (ctl *PaymentController) CreatePayment(c *gin.Context) {
	amount, err := strconv.ParseFloat(c.Query("amount"), 64)
	if err != nil {
		utils.JSONBadRequest(c, "invalid amount")
		return
	}
	bookingCode := c.Query("bookingCode")
	if bookingCode == "" {
		utils.JSONBadRequest(c, "bookingCode is required")
		return
	}

	url, err := ctl.Payments.CreatePayment(bookingCode, amount, c.Query("bankCode"), utils.ClientIP(c))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONSuccess(c, paymentURLResult{URL: url})
}

// Callback handles the unauthenticated gateway webhook. The gateway
// expects HTTP 200 regardless of outcome; success or failure travels in
// the body code (1000 ok, 99 failed).
func (ctl *PaymentController) Callback(c *gin.Context) {
	params := map[string]string{}
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}

	if params[utils.VnpResponseCode] != "00" {
		c.JSON(http.StatusOK, utils.APIResponse{Code: utils.PaymentFailedCode, Message: utils.PaymentFailedReason})
		return
	}

	if err := ctl.Payments.CompletePayment(params); err != nil {
		utils.ErrorWithStack(err)
		c.JSON(http.StatusOK, utils.APIResponse{Code: utils.PaymentFailedCode, Message: utils.PaymentFailedReason})
		return
	}

	c.JSON(http.StatusOK, utils.APIResponse{Code: utils.SuccessCode})
}
