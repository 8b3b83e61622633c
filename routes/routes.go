package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"peminjaman-console/apiclient"
	"peminjaman-console/app"
	"peminjaman-console/controllers"
	"peminjaman-console/models"
)

// resource is what a mounted admin screen exposes.
type resource interface {
	List(*gin.Context)
	Create(*gin.Context)
	Update(*gin.Context)
	Delete(*gin.Context)
}

func mount(g *gin.RouterGroup, path string, ctl resource) {
	grp := g.Group(path)
	grp.GET("", ctl.List)
	grp.POST("", ctl.Create)
	grp.PUT("/:id", ctl.Update)
	grp.DELETE("/:id", ctl.Delete)
}

func RegisterRoutes(r *gin.Engine, a *app.App) {
	s := controllers.NewSrv(a)
	auth := controllers.NewAuthController(s)
	dash := controllers.NewDashboardController(s)
	produk := controllers.NewProductController(s)
	user := controllers.NewUserController(s)
	peminjaman := controllers.NewLoanController(s)

	// The six name-only master screens are instances of the one generic
	// controller; only the endpoint adapters and messages differ.
	jurusan := controllers.NewMasterController(s, controllers.MasterConfig[models.Major]{
		Entity:   "jurusan",
		EmptyMsg: "Nama jurusan tidak boleh kosong",
		List: func(ctx context.Context, api *apiclient.Client) ([]models.Major, error) {
			return api.ListMajors(ctx)
		},
		Create: func(ctx context.Context, api *apiclient.Client, name string) error {
			return api.CreateMajor(ctx, name)
		},
		Update: func(ctx context.Context, api *apiclient.Client, id int, name string) error {
			return api.UpdateMajor(ctx, id, name)
		},
		Delete: func(ctx context.Context, api *apiclient.Client, id int) error {
			return api.DeleteMajor(ctx, id)
		},
	})
	kelas := controllers.NewMasterController(s, controllers.MasterConfig[models.Class]{
		Entity:   "kelas",
		EmptyMsg: "Nama kelas tidak boleh kosong",
		List: func(ctx context.Context, api *apiclient.Client) ([]models.Class, error) {
			return api.ListClasses(ctx)
		},
		Create: func(ctx context.Context, api *apiclient.Client, name string) error {
			return api.CreateClass(ctx, name)
		},
		Update: func(ctx context.Context, api *apiclient.Client, id int, name string) error {
			return api.UpdateClass(ctx, id, name)
		},
		Delete: func(ctx context.Context, api *apiclient.Client, id int) error {
			return api.DeleteClass(ctx, id)
		},
	})
	statusPeminjam := controllers.NewMasterController(s, controllers.MasterConfig[models.BorrowerStatus]{
		Entity:   "status",
		EmptyMsg: "Nama status tidak boleh kosong",
		List: func(ctx context.Context, api *apiclient.Client) ([]models.BorrowerStatus, error) {
			return api.ListStatuses(ctx)
		},
		Create: func(ctx context.Context, api *apiclient.Client, name string) error {
			return api.CreateStatus(ctx, name)
		},
		Update: func(ctx context.Context, api *apiclient.Client, id int, name string) error {
			return api.UpdateStatus(ctx, id, name)
		},
		Delete: func(ctx context.Context, api *apiclient.Client, id int) error {
			return api.DeleteStatus(ctx, id)
		},
	})
	lokasi := controllers.NewMasterController(s, controllers.MasterConfig[models.Location]{
		Entity:   "lokasi",
		EmptyMsg: "Nama lokasi tidak boleh kosong",
		List: func(ctx context.Context, api *apiclient.Client) ([]models.Location, error) {
			return api.ListLocations(ctx)
		},
		Create: func(ctx context.Context, api *apiclient.Client, name string) error {
			return api.CreateLocation(ctx, name)
		},
		Update: func(ctx context.Context, api *apiclient.Client, id int, name string) error {
			return api.UpdateLocation(ctx, id, name)
		},
		Delete: func(ctx context.Context, api *apiclient.Client, id int) error {
			return api.DeleteLocation(ctx, id)
		},
	})
	kategori := controllers.NewMasterController(s, controllers.MasterConfig[models.Category]{
		Entity:   "kategori",
		EmptyMsg: "Nama kategori tidak boleh kosong",
		List: func(ctx context.Context, api *apiclient.Client) ([]models.Category, error) {
			return api.ListCategories(ctx)
		},
		Create: func(ctx context.Context, api *apiclient.Client, name string) error {
			return api.CreateCategory(ctx, name)
		},
		Update: func(ctx context.Context, api *apiclient.Client, id int, name string) error {
			return api.UpdateCategory(ctx, id, name)
		},
		Delete: func(ctx context.Context, api *apiclient.Client, id int) error {
			return api.DeleteCategory(ctx, id)
		},
	})
	role := controllers.NewMasterController(s, controllers.MasterConfig[models.Role]{
		Entity:   "role",
		EmptyMsg: "Nama role tidak boleh kosong",
		List: func(ctx context.Context, api *apiclient.Client) ([]models.Role, error) {
			return api.ListRoles(ctx)
		},
		Create: func(ctx context.Context, api *apiclient.Client, name string) error {
			return api.CreateRole(ctx, name)
		},
		Update: func(ctx context.Context, api *apiclient.Client, id int, name string) error {
			return api.UpdateRole(ctx, id, name)
		},
		Delete: func(ctx context.Context, api *apiclient.Client, id int) error {
			return api.DeleteRole(ctx, id)
		},
	})

	authMW := app.AuthRequired(a.Sessions())
	adminMW := app.AdminOnly()
	seenMW := app.TouchSession(a.Sessions(), 5*time.Minute)

	toDashboard := func(c *app.Ctx) { c.Redirect(http.StatusFound, "/admin/dashboard") }

	// Public
	r.GET("/login", func(c *app.Ctx) {
		c.JSON(http.StatusOK, app.H{"message": "Silahkan login dengan akun anda"})
	})
	r.POST("/login", auth.Login)
	r.GET("/metrics", app.MetricsHandler())

	r.POST("/logout", authMW, auth.Logout)
	r.GET("/", authMW, adminMW, toDashboard)

	admin := r.Group("/admin", authMW, adminMW, seenMW)
	{
		admin.GET("", toDashboard)
		admin.GET("/dashboard", dash.Summary)

		mount(admin, "/jurusan", jurusan)
		mount(admin, "/kelas", kelas)
		mount(admin, "/status-peminjam", statusPeminjam)
		mount(admin, "/lokasi", lokasi)
		mount(admin, "/categories", kategori)
		mount(admin, "/role", role)
		mount(admin, "/product", produk)
		mount(admin, "/user", user)

		mount(admin, "/peminjaman", peminjaman)
		admin.GET("/peminjaman/export", peminjaman.Export)

		admin.GET("/profil", auth.Profile)
		admin.PUT("/profil", auth.UpdateProfile)
	}

	r.NoRoute(func(c *app.Ctx) {
		c.JSON(http.StatusNotFound, app.H{
			"message":   "Halaman tidak ditemukan",
			"dashboard": "/admin/dashboard",
		})
	})
}
