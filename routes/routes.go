package routes

import (
	"html/template"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"hotel-booking/controllers"
	"hotel-booking/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func sessionSecret() []byte {
	secret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if secret == "" {
		secret = "your_secret_key"
	}
	return []byte(secret)
}

// SetupRouter wires middleware, templates and the route table.
func SetupRouter(
	pc *controllers.PublicController,
	ac *controllers.AuthController,
	uc *controllers.UserController,
	bc *controllers.BookingController,
	rc *controllers.RoomController,
	sc *controllers.StaffController,
	blc *controllers.BillingController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(sessions.Sessions("hotel_session", cookie.NewStore(sessionSecret())))

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.SetFuncMap(template.FuncMap{
		// select-option comparisons against nullable FK columns
		"derefUint": func(p *uint) uint {
			if p == nil {
				return 0
			}
			return *p
		},
	})
	r.LoadHTMLGlob("templates/*.html")
	r.Static("/static", "./static")

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public pages
	r.GET("/", pc.Home)
	r.GET("/about", pc.About)
	r.GET("/contact", pc.ContactForm)
	r.POST("/contact", pc.Contact)
	r.GET("/rooms", pc.RoomList)
	r.GET("/booking/:room_id", pc.BookingForm)
	r.POST("/booking/:room_id", pc.CreateBooking)

	// Admin session
	r.GET("/admin/login", ac.LoginForm)
	r.POST("/admin/login", ac.Login)
	r.GET("/admin/logout", ac.Logout)

	admin := r.Group("/admin", middleware.AdminRequired())
	{
		admin.GET("", uc.Panel)

		users := admin.Group("/users")
		{
			users.GET("/create", uc.CreateForm)
			users.POST("/create", uc.Create)
			users.GET("/:id/edit", uc.EditForm)
			users.POST("/:id/edit", uc.Edit)
			users.POST("/:id/delete", uc.Delete)
		}

		phones := admin.Group("/user_phones")
		{
			phones.GET("", uc.PhoneList)
			phones.GET("/create", uc.PhoneCreateForm)
			phones.POST("/create", uc.PhoneCreate)
			phones.POST("/delete", uc.PhoneDelete)
		}

		bookings := admin.Group("/bookings")
		{
			bookings.GET("", bc.List)
			bookings.GET("/create", bc.CreateForm)
			bookings.POST("/create", bc.Create)
			bookings.GET("/:id/edit", bc.EditForm)
			bookings.POST("/:id/edit", bc.Edit)
			bookings.POST("/:id/delete", bc.Delete)
			bookings.POST("/:id/checkin", bc.CheckIn)
			bookings.POST("/:id/checkout", bc.CheckOut)
			bookings.POST("/:id/cancel", bc.Cancel)
		}

		belongTo := admin.Group("/belong_to")
		{
			belongTo.GET("", bc.AssignmentList)
			belongTo.GET("/create", bc.AssignmentCreateForm)
			belongTo.POST("/create", bc.AssignmentCreate)
			belongTo.POST("/delete", bc.AssignmentDelete)
		}

		roomTypes := admin.Group("/room_types")
		{
			roomTypes.GET("", rc.TypeList)
			roomTypes.GET("/create", rc.TypeCreateForm)
			roomTypes.POST("/create", rc.TypeCreate)
			roomTypes.GET("/:id/edit", rc.TypeEditForm)
			roomTypes.POST("/:id/edit", rc.TypeEdit)
			roomTypes.POST("/:id/delete", rc.TypeDelete)
		}

		roomUnits := admin.Group("/room_units")
		{
			roomUnits.GET("", rc.UnitList)
			roomUnits.GET("/create", rc.UnitCreateForm)
			roomUnits.POST("/create", rc.UnitCreate)
			roomUnits.GET("/:id/edit", rc.UnitEditForm)
			roomUnits.POST("/:id/edit", rc.UnitEdit)
			roomUnits.POST("/:id/delete", rc.UnitDelete)
		}

		employees := admin.Group("/employees")
		{
			employees.GET("", sc.EmployeeList)
			employees.GET("/create", sc.EmployeeCreateForm)
			employees.POST("/create", sc.EmployeeCreate)
			employees.GET("/:id/edit", sc.EmployeeEditForm)
			employees.POST("/:id/edit", sc.EmployeeEdit)
			employees.POST("/:id/delete", sc.EmployeeDelete)
		}

		hiredAs := admin.Group("/hired_as")
		{
			hiredAs.GET("", sc.HiredAsList)
			hiredAs.GET("/create", sc.HiredAsCreateForm)
			hiredAs.POST("/create", sc.HiredAsCreate)
			hiredAs.GET("/:id/edit", sc.HiredAsEditForm)
			hiredAs.POST("/:id/edit", sc.HiredAsEdit)
			hiredAs.POST("/:id/delete", sc.HiredAsDelete)
		}

		svcRoutes := admin.Group("/services")
		{
			svcRoutes.GET("", blc.ServiceList)
			svcRoutes.GET("/create", blc.ServiceCreateForm)
			svcRoutes.POST("/create", blc.ServiceCreate)
			svcRoutes.GET("/:id/edit", blc.ServiceEditForm)
			svcRoutes.POST("/:id/edit", blc.ServiceEdit)
			svcRoutes.POST("/:id/delete", blc.ServiceDelete)
		}

		invoices := admin.Group("/invoices")
		{
			invoices.GET("", blc.InvoiceList)
			invoices.GET("/create", blc.InvoiceCreateForm)
			invoices.POST("/create", blc.InvoiceCreate)
			invoices.GET("/:id/edit", blc.InvoiceEditForm)
			invoices.POST("/:id/edit", blc.InvoiceEdit)
			invoices.POST("/:id/delete", blc.InvoiceDelete)
		}

		guests := admin.Group("/guests")
		{
			guests.GET("", blc.GuestList)
			guests.GET("/create", blc.GuestCreateForm)
			guests.POST("/create", blc.GuestCreate)
			guests.GET("/:id/edit", blc.GuestEditForm)
			guests.POST("/:id/edit", blc.GuestEdit)
			guests.POST("/:id/delete", blc.GuestDelete)
		}
	}

	return r
}
