package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"peminjaman-console/apiclient"
	"peminjaman-console/app"
)

type AuthController struct{ srv *Srv }

func NewAuthController(s *Srv) *AuthController { return &AuthController{srv: s} }

// Login authenticates against the backend and, only for administrators,
// creates a console session holding the returned token and user record.
// A non-admin account never gets a session or a stored token.
func (ac *AuthController) Login(c *gin.Context) {
	var in struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"message": "Email dan password wajib diisi"})
		return
	}

	res, err := ac.srv.API.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		c.JSON(apiclient.StatusOf(err, http.StatusBadGateway), app.H{
			"message": apiclient.Message(err, "Gagal login"),
		})
		return
	}
	if !res.User.IsAdmin() {
		c.JSON(http.StatusUnauthorized, app.H{"message": "Hanya admin yang bisa login di web ini."})
		return
	}

	sid := uuid.NewString()
	if err := ac.srv.Sessions.Create(c.Request.Context(), sid, res.Token, res.User); err != nil {
		ac.srv.Log.Error("create session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, app.H{"message": "Gagal membuat sesi"})
		return
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     app.SessionCookie,
		Value:    sid,
		Path:     "/",
		MaxAge:   int(ac.srv.Cfg.SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   ac.srv.Cfg.SecureCookies(),
	})
	c.JSON(http.StatusOK, app.H{"message": res.Message, "user": res.User})
}

// Logout drops the console session. The backend is not called; its token
// simply stops being stored anywhere.
func (ac *AuthController) Logout(c *gin.Context) {
	if ck, err := c.Request.Cookie(app.SessionCookie); err == nil && ck.Value != "" {
		_ = ac.srv.Sessions.Delete(c.Request.Context(), ck.Value)
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     app.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   ac.srv.Cfg.SecureCookies(),
	})
	c.JSON(http.StatusOK, app.H{"ok": true})
}

// Profile returns the session user record.
func (ac *AuthController) Profile(c *gin.Context) {
	c.JSON(http.StatusOK, app.H{"user": app.UserFrom(c)})
}

// UpdateProfile edits the logged-in admin's own name and email through the
// backend, then rewrites the session record so the header shows the new
// name immediately.
func (ac *AuthController) UpdateProfile(c *gin.Context) {
	var in struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	_ = c.ShouldBindJSON(&in)
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" {
		c.JSON(http.StatusBadRequest, app.H{"message": "Nama dan Email tidak boleh kosong"})
		return
	}

	u := app.UserFrom(c)
	err := ac.srv.api(c).UpdateUser(c.Request.Context(), u.ID, apiclient.UserInput{
		Name:   name,
		Email:  email,
		RoleID: u.RoleID,
	})
	if err != nil {
		mutationError(c, err, "Gagal menyimpan profil")
		return
	}

	u.Name = name
	u.Email = email
	if sid := c.GetString(app.CtxSessionID); sid != "" {
		if err := ac.srv.Sessions.Update(c.Request.Context(), sid, u); err != nil {
			ac.srv.Log.Warn("refresh session user", zap.Error(err))
		}
	}
	c.JSON(http.StatusOK, app.H{"user": u})
}
