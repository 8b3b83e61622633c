package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"peminjaman-console/apiclient"
	"peminjaman-console/app"
	"peminjaman-console/session"
)

// Srv bundles the dependencies every controller needs.
type Srv struct {
	API      *apiclient.Client
	Sessions *session.Store
	Cfg      app.Config
	Log      *zap.Logger
}

func NewSrv(a *app.App) *Srv {
	return &Srv{API: a.API, Sessions: a.Sessions(), Cfg: a.Config, Log: a.Log}
}

// api returns the backend client scoped to this request's session token.
func (s *Srv) api(c *gin.Context) *apiclient.Client {
	return s.API.WithToken(app.TokenFrom(c))
}

// fetchError is the inline page-level error shown when a list load fails:
// an error string and an emptied list, never a blocking alert.
func fetchError(c *gin.Context, entity string) {
	c.JSON(http.StatusBadGateway, app.H{
		"error": "Gagal mengambil data " + entity,
		"data":  []any{},
	})
}

// mutationError is the blocking-alert error for a rejected create, update or
// delete: the backend message when it sent one, otherwise the fallback.
func mutationError(c *gin.Context, err error, fallback string) {
	c.JSON(apiclient.StatusOf(err, http.StatusBadGateway), app.H{
		"message": apiclient.Message(err, fallback),
	})
}
