package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"peminjaman-console/app"
	"peminjaman-console/models"
)

type DashboardController struct{ srv *Srv }

func NewDashboardController(s *Srv) *DashboardController { return &DashboardController{srv: s} }

// Summary fans out to the product, user and loan lists and derives the
// dashboard numbers client-side-style: totals, loans currently out, overdue
// loans, the per-calendar-month histogram and the recent returns. Any one
// request failing fails the whole join with a single error.
func (dc *DashboardController) Summary(c *gin.Context) {
	api := dc.srv.api(c)
	g, ctx := errgroup.WithContext(c.Request.Context())

	var products []models.Product
	var users []models.User
	var loans []models.Loan
	g.Go(func() (err error) { products, err = api.ListProducts(ctx); return })
	g.Go(func() (err error) { users, err = api.ListUsers(ctx); return })
	g.Go(func() (err error) { loans, err = api.ListLoans(ctx); return })
	if err := g.Wait(); err != nil {
		fetchError(c, "dashboard")
		return
	}

	now := time.Now()
	var dipinjam, terlambat int
	for _, l := range loans {
		if l.Status == models.StatusDipinjam {
			dipinjam++
		}
		if l.IsOverdue(now) {
			terlambat++
		}
	}

	c.JSON(http.StatusOK, app.H{
		"nama":                 app.UserFrom(c).Name,
		"total_produk":         len(products),
		"total_user":           len(users),
		"sedang_dipinjam":      dipinjam,
		"terlambat":            terlambat,
		"peminjaman_per_bulan": models.MonthlyCounts(loans),
		"peminjaman_terbaru":   models.RecentReturned(loans, 5),
	})
}
