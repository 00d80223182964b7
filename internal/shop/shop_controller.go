package shop

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/ShubhamJagtap-29/gamersden/config"
	"github.com/ShubhamJagtap-29/gamersden/internal/middleware"
	"github.com/ShubhamJagtap-29/gamersden/pkg/responses"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// ShopController handles product listing and manual-payment checkout
type ShopController struct {
	repo      Repository
	appConfig *config.Config
}

// NewShopController creates a new shop controller
func NewShopController(repo Repository, appConfig *config.Config) *ShopController {
	return &ShopController{repo: repo, appConfig: appConfig}
}

type CreateProductRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=150"`
	Description string `json:"description" binding:"max=2000"`
	PriceCents  int64  `json:"price_cents" binding:"required,gt=0"`
}

type CheckoutRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gte=1,lte=20"`
}

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// GetProducts godoc
// @Summary List active shop products
// @Tags Shop
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]Product} "Products"
// @Router /shop/products [get]
func (sc *ShopController) GetProducts(c *gin.Context) {
	page, limit := pageParams(c)
	products, total, err := sc.repo.GetActiveProducts(page, limit)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve products: "+err.Error())
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Products retrieved successfully", products, total, page, limit)
}

// Checkout godoc
// @Summary Place an order for a product
// @Description Creates an order and returns bank transfer instructions. Payment is confirmed manually by an admin.
// @Tags Shop
// @Accept json
// @Produce json
// @Param body body CheckoutRequest true "Order Data"
// @Success 201 {object} responses.SuccessResponse{data=Order} "Order created"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 404 {object} responses.ErrorResponse "Product not found"
// @Security ApiKeyAuth
// @Router /shop/checkout [post]
func (sc *ShopController) Checkout(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	product, err := sc.repo.GetProductByID(req.ProductID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to load product: "+err.Error())
		return
	}
	if product == nil || !product.Active {
		responses.SendError(c, http.StatusNotFound, "Product not found")
		return
	}

	orderNumber := uuid.NewString()
	total := product.PriceCents * int64(req.Quantity)
	order := Order{
		OrderNumber: orderNumber,
		UserID:      userID,
		ProductID:   product.ID,
		Quantity:    req.Quantity,
		TotalCents:  total,
		Status:      OrderStatusAwaitingPayment,
		PaymentInstructions: fmt.Sprintf(
			"Transfer %.2f EUR to %s, IBAN %s, reference %s",
			float64(total)/100,
			sc.appConfig.Shop.BankAccountName,
			sc.appConfig.Shop.BankIBAN,
			orderNumber,
		),
	}
	if err := sc.repo.CreateOrder(&order); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create order: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Order created successfully", order)
}

// GetMyOrders godoc
// @Summary List the authenticated user's orders
// @Tags Shop
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]Order} "Orders"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Security ApiKeyAuth
// @Router /shop/orders [get]
func (sc *ShopController) GetMyOrders(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	page, limit := pageParams(c)
	orders, total, err := sc.repo.GetOrdersByUserID(userID, page, limit)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve orders: "+err.Error())
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Orders retrieved successfully", orders, total, page, limit)
}

// AdminCreateProduct godoc
// @Summary Create a shop product (admin)
// @Tags Admin
// @Accept json
// @Produce json
// @Param product body CreateProductRequest true "Product Data"
// @Success 201 {object} responses.SuccessResponse{data=Product} "Product created"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Security ApiKeyAuth
// @Router /admin/shop/products [post]
func (sc *ShopController) AdminCreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	product := Product{
		Name:        req.Name,
		Slug:        slug.Make(req.Name),
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Active:      true,
	}
	if err := sc.repo.CreateProduct(&product); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create product: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Product created successfully", product)
}

// AdminMarkOrderPaid godoc
// @Summary Mark an order as paid (admin)
// @Description Confirms a manual bank transfer was received.
// @Tags Admin
// @Produce json
// @Param order_id path uint true "Order ID"
// @Success 200 {object} responses.SuccessResponse{data=Order} "Order updated"
// @Failure 400 {object} responses.ErrorResponse "Order not awaiting payment"
// @Failure 404 {object} responses.ErrorResponse "Order not found"
// @Security ApiKeyAuth
// @Router /admin/shop/orders/{order_id}/paid [put]
func (sc *ShopController) AdminMarkOrderPaid(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("order_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid order ID")
		return
	}

	order, err := sc.repo.GetOrderByID(uint(orderID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to load order: "+err.Error())
		return
	}
	if order == nil {
		responses.SendError(c, http.StatusNotFound, "Order not found")
		return
	}
	if order.Status != OrderStatusAwaitingPayment {
		responses.SendError(c, http.StatusBadRequest, "Order is not awaiting payment")
		return
	}

	order.Status = OrderStatusPaid
	if err := sc.repo.UpdateOrder(order); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to update order: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Order marked as paid", order)
}
