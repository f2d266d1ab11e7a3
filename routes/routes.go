package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"managehotel/config"
	"managehotel/controllers"
	"managehotel/middleware"
	"managehotel/models"
	"managehotel/services"
)

// SetupRouter wires the HTTP surface. The gateway callback and guest
// feedback stay unauthenticated; everything else is staff-only behind the
// JWT middleware.
func SetupRouter(
	cfg config.Config,
	authSvc *services.AuthService,
	ac *controllers.AuthController,
	bc *controllers.BookingController,
	rc *controllers.RoomController,
	pc *controllers.PaymentController,
	sc *controllers.ServiceController,
	fc *controllers.FeedbackController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	origins := cfg.CORS.Origins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Gateway redirect initiation and callback are reached by guests and
	// the payment provider without credentials.
	r.GET("/vn-pay", pc.CreatePayment)
	r.GET("/vn-pay-callback", pc.Callback)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", ac.Login)
		}

		api.POST("/feedback", fc.CreateFeedback)

		staff := api.Group("")
		staff.Use(middleware.Authenticate(authSvc))
		staff.Use(middleware.RequireRole(models.RoleAdmin, models.RoleReceptionist))
		{
			bookings := staff.Group("/booking")
			{
				bookings.POST("", bc.CreateBooking)
				bookings.DELETE("", bc.DeleteBookings)
				bookings.POST("/checkin", bc.CheckIn)
				bookings.POST("/unpaid", bc.FindUnpaid)
			}

			rooms := staff.Group("/rooms")
			{
				rooms.GET("", rc.GetRooms)
				rooms.GET("/:roomNo", rc.GetRoom)
				rooms.POST("", rc.CreateRoom)
				rooms.PUT("/:roomNo", rc.UpdateRoom)
				rooms.DELETE("/:roomNo", rc.DeleteRoom)
			}

			staff.GET("/payment/:bookingCode/invoice-preview", pc.InvoicePreview)

			staff.POST("/service", sc.BuyService)
			staff.GET("/products", sc.GetProducts)
			staff.POST("/products", sc.CreateProduct)

			staff.GET("/feedback", fc.GetFeedback)

			staff.GET("/users", middleware.RequireRole(models.RoleAdmin), ac.GetStaff)
		}
	}

	return r
}
