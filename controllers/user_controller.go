package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"peminjaman-console/apiclient"
	"peminjaman-console/app"
	"peminjaman-console/listview"
	"peminjaman-console/models"
)

type UserController struct{ srv *Srv }

func NewUserController(s *Srv) *UserController { return &UserController{srv: s} }

// List loads users and the role lookup in parallel. Search matches name or
// email; ?role_id= filters exactly.
func (uc *UserController) List(c *gin.Context) {
	api := uc.srv.api(c)
	g, ctx := errgroup.WithContext(c.Request.Context())

	var users []models.User
	var roles []models.Role
	g.Go(func() (err error) { users, err = api.ListUsers(ctx); return })
	g.Go(func() (err error) { roles, err = api.ListRoles(ctx); return })
	if err := g.Wait(); err != nil {
		fetchError(c, "user")
		return
	}

	q := c.Query("q")
	roleID := c.Query("role_id")
	filtered := listview.Filter(users, func(u models.User) bool {
		if !listview.MatchFold(u.Name, q) && !listview.MatchFold(u.Email, q) {
			return false
		}
		return roleID == "" || strconv.Itoa(u.RoleID) == roleID
	})
	view := listview.Paginate(filtered, len(users), listview.ParsePage(c.Query("page")), listview.DefaultPageSize)

	c.JSON(http.StatusOK, userListResponse{View: view, Roles: roles})
}

type userListResponse struct {
	listview.View[models.User]
	Roles []models.Role `json:"roles"`
}

type userInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   int    `json:"role_id"`
}

func (uc *UserController) Create(c *gin.Context) {
	var in userInput
	_ = c.ShouldBindJSON(&in)
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" {
		c.JSON(http.StatusBadRequest, app.H{"message": "Nama dan Email tidak boleh kosong"})
		return
	}
	if strings.TrimSpace(in.Password) == "" {
		c.JSON(http.StatusBadRequest, app.H{"message": "Password tidak boleh kosong"})
		return
	}
	err := uc.srv.api(c).CreateUser(c.Request.Context(), apiclient.UserInput{
		Name: name, Email: email, Password: in.Password, RoleID: in.RoleID,
	})
	if err != nil {
		mutationError(c, err, "Gagal menyimpan user")
		return
	}
	uc.respondFresh(c, http.StatusCreated)
}

func (uc *UserController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"message": "id tidak valid"})
		return
	}
	var in userInput
	_ = c.ShouldBindJSON(&in)
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" {
		c.JSON(http.StatusBadRequest, app.H{"message": "Nama dan Email tidak boleh kosong"})
		return
	}
	err = uc.srv.api(c).UpdateUser(c.Request.Context(), id, apiclient.UserInput{
		Name: name, Email: email, RoleID: in.RoleID,
	})
	if err != nil {
		mutationError(c, err, "Gagal menyimpan user")
		return
	}
	uc.respondFresh(c, http.StatusOK)
}

// Delete removes the user through the backend and revokes any console
// sessions that user still holds. Deleting your own account is refused so
// an admin cannot lock themself out mid-session.
func (uc *UserController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"message": "id tidak valid"})
		return
	}
	if id == app.UserFrom(c).ID {
		c.JSON(http.StatusBadRequest, app.H{"message": "Tidak dapat menghapus akun sendiri"})
		return
	}
	if err := uc.srv.api(c).DeleteUser(c.Request.Context(), id); err != nil {
		mutationError(c, err, "Gagal menghapus user")
		return
	}
	if err := uc.srv.Sessions.RevokeAllForUser(c.Request.Context(), id); err != nil {
		uc.srv.Log.Warn("revoke sessions", zap.Int("user_id", id), zap.Error(err))
	}
	uc.respondFresh(c, http.StatusOK)
}

func (uc *UserController) respondFresh(c *gin.Context, status int) {
	users, err := uc.srv.api(c).ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(status, app.H{"error": "Gagal mengambil data user", "data": []models.User{}})
		return
	}
	c.JSON(status, app.H{"data": users, "total": len(users)})
}
