package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"peminjaman-console/apiclient"
	"peminjaman-console/app"
	"peminjaman-console/listview"
	"peminjaman-console/models"
	"peminjaman-console/report"
)

type LoanController struct{ srv *Srv }

func NewLoanController(s *Srv) *LoanController { return &LoanController{srv: s} }

// filterLoans applies the loan screen's live filters: free-text search over
// borrower and product name, exact product/location/status filters, and a
// date that must fall inside the loan period.
func filterLoans(c *gin.Context, loans []models.Loan) []models.Loan {
	q := c.Query("q")
	productID := c.Query("product_id")
	locationID := c.Query("location_id")
	status := c.Query("status")

	var day time.Time
	var hasDay bool
	if raw := c.Query("date"); raw != "" {
		day, hasDay = models.ParseDate(raw)
	}

	return listview.Filter(loans, func(l models.Loan) bool {
		if !listview.MatchFold(l.User.Name, q) && !listview.MatchFold(l.Product.ProductName, q) {
			return false
		}
		if productID != "" && strconv.Itoa(l.Product.ID) != productID {
			return false
		}
		if locationID != "" && strconv.Itoa(l.Location.ID) != locationID {
			return false
		}
		if status != "" && l.Status != status {
			return false
		}
		if hasDay && !l.Contains(day) {
			return false
		}
		return true
	})
}

// List loads loans plus the product and location lookups in parallel.
func (lc *LoanController) List(c *gin.Context) {
	api := lc.srv.api(c)
	g, ctx := errgroup.WithContext(c.Request.Context())

	var loans []models.Loan
	var products []models.Product
	var locations []models.Location
	g.Go(func() (err error) { loans, err = api.ListLoans(ctx); return })
	g.Go(func() (err error) { products, err = api.ListProducts(ctx); return })
	g.Go(func() (err error) { locations, err = api.ListLocations(ctx); return })
	if err := g.Wait(); err != nil {
		fetchError(c, "peminjaman")
		return
	}

	filtered := filterLoans(c, loans)
	view := listview.Paginate(filtered, len(loans), listview.ParsePage(c.Query("page")), listview.DefaultPageSize)

	c.JSON(http.StatusOK, loanListResponse{View: view, Products: products, Locations: locations})
}

type loanListResponse struct {
	listview.View[models.Loan]
	Products  []models.Product  `json:"products"`
	Locations []models.Location `json:"locations"`
}

type loanInput struct {
	UserID     int    `json:"user_id"`
	ProductID  int    `json:"product_id"`
	LocationID int    `json:"location_id"`
	Qty        int    `json:"qty"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Status     string `json:"status"`
	Note       string `json:"note"`
}

func (in loanInput) validate() (apiclient.LoanInput, string) {
	if in.UserID == 0 || in.ProductID == 0 || in.LocationID == 0 || in.StartDate == "" || in.EndDate == "" {
		return apiclient.LoanInput{}, "Data peminjaman wajib diisi"
	}
	status := in.Status
	if status == "" {
		status = models.StatusDipinjam
	}
	if status != models.StatusDipinjam && status != models.StatusDikembalikan {
		return apiclient.LoanInput{}, "Status peminjaman tidak valid"
	}
	return apiclient.LoanInput{
		UserID:     in.UserID,
		ProductID:  in.ProductID,
		LocationID: in.LocationID,
		Qty:        in.Qty,
		StartDate:  in.StartDate,
		EndDate:    in.EndDate,
		Status:     status,
		Note:       in.Note,
	}, ""
}

func (lc *LoanController) Create(c *gin.Context) {
	var in loanInput
	_ = c.ShouldBindJSON(&in)
	payload, msg := in.validate()
	if msg != "" {
		c.JSON(http.StatusBadRequest, app.H{"message": msg})
		return
	}
	if err := lc.srv.api(c).CreateLoan(c.Request.Context(), payload); err != nil {
		mutationError(c, err, "Gagal menyimpan peminjaman")
		return
	}
	lc.respondFresh(c, http.StatusCreated)
}

func (lc *LoanController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"message": "id tidak valid"})
		return
	}
	var in loanInput
	_ = c.ShouldBindJSON(&in)
	payload, msg := in.validate()
	if msg != "" {
		c.JSON(http.StatusBadRequest, app.H{"message": msg})
		return
	}
	if err := lc.srv.api(c).UpdateLoan(c.Request.Context(), id, payload); err != nil {
		mutationError(c, err, "Gagal menyimpan peminjaman")
		return
	}
	lc.respondFresh(c, http.StatusOK)
}

func (lc *LoanController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"message": "id tidak valid"})
		return
	}
	if err := lc.srv.api(c).DeleteLoan(c.Request.Context(), id); err != nil {
		mutationError(c, err, "Gagal menghapus peminjaman")
		return
	}
	lc.respondFresh(c, http.StatusOK)
}

func (lc *LoanController) respondFresh(c *gin.Context, status int) {
	loans, err := lc.srv.api(c).ListLoans(c.Request.Context())
	if err != nil {
		c.JSON(status, app.H{"error": "Gagal mengambil data peminjaman", "data": []models.Loan{}})
		return
	}
	c.JSON(status, app.H{"data": loans, "total": len(loans)})
}

// Export streams the currently filtered list, never a single page of it, as
// a styled spreadsheet. An empty filtered list aborts with a blocking
// message and no file.
func (lc *LoanController) Export(c *gin.Context) {
	loans, err := lc.srv.api(c).ListLoans(c.Request.Context())
	if err != nil {
		fetchError(c, "peminjaman")
		return
	}
	filtered := filterLoans(c, loans)
	if len(filtered) == 0 {
		c.JSON(http.StatusBadRequest, app.H{"message": "Tidak ada data untuk diexport"})
		return
	}

	now := time.Now()
	f, err := report.BuildLaporanPeminjaman(filtered, now)
	if err != nil {
		lc.srv.Log.Error("build report", zap.Error(err))
		c.JSON(http.StatusInternalServerError, app.H{"message": "Gagal membuat laporan"})
		return
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		lc.srv.Log.Error("write report", zap.Error(err))
		c.JSON(http.StatusInternalServerError, app.H{"message": "Gagal membuat laporan"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+report.Filename(now)+`"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
