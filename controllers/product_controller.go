package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"peminjaman-console/apiclient"
	"peminjaman-console/app"
	"peminjaman-console/listview"
	"peminjaman-console/models"
)

type ProductController struct{ srv *Srv }

func NewProductController(s *Srv) *ProductController { return &ProductController{srv: s} }

// List loads products and the category lookup in parallel; one failing
// request fails the whole screen load. Search matches the product name,
// ?category_id= filters exactly.
func (pc *ProductController) List(c *gin.Context) {
	api := pc.srv.api(c)
	g, ctx := errgroup.WithContext(c.Request.Context())

	var products []models.Product
	var categories []models.Category
	g.Go(func() (err error) { products, err = api.ListProducts(ctx); return })
	g.Go(func() (err error) { categories, err = api.ListCategories(ctx); return })
	if err := g.Wait(); err != nil {
		fetchError(c, "produk")
		return
	}

	q := c.Query("q")
	categoryID := c.Query("category_id")
	filtered := listview.Filter(products, func(p models.Product) bool {
		if !listview.MatchFold(p.ProductName, q) {
			return false
		}
		return categoryID == "" || strconv.Itoa(p.CategoryID) == categoryID
	})
	view := listview.Paginate(filtered, len(products), listview.ParsePage(c.Query("page")), listview.DefaultPageSize)

	c.JSON(http.StatusOK, productListResponse{View: view, Categories: categories})
}

type productListResponse struct {
	listview.View[models.Product]
	Categories []models.Category `json:"categories"`
}

type productInput struct {
	ProductName string `json:"product_name"`
	Qty         int    `json:"qty"`
	CategoryID  int    `json:"category_id"`
}

func (in productInput) validate() (apiclient.ProductInput, bool) {
	name := strings.TrimSpace(in.ProductName)
	if name == "" || in.CategoryID == 0 {
		return apiclient.ProductInput{}, false
	}
	return apiclient.ProductInput{ProductName: name, Qty: in.Qty, CategoryID: in.CategoryID}, true
}

func (pc *ProductController) Create(c *gin.Context) {
	var in productInput
	_ = c.ShouldBindJSON(&in)
	payload, ok := in.validate()
	if !ok {
		c.JSON(http.StatusBadRequest, app.H{"message": "Nama dan kategori produk wajib diisi"})
		return
	}
	if err := pc.srv.api(c).CreateProduct(c.Request.Context(), payload); err != nil {
		mutationError(c, err, "Gagal menyimpan produk")
		return
	}
	pc.respondFresh(c, http.StatusCreated)
}

func (pc *ProductController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"message": "id tidak valid"})
		return
	}
	var in productInput
	_ = c.ShouldBindJSON(&in)
	payload, ok := in.validate()
	if !ok {
		c.JSON(http.StatusBadRequest, app.H{"message": "Nama dan kategori produk wajib diisi"})
		return
	}
	if err := pc.srv.api(c).UpdateProduct(c.Request.Context(), id, payload); err != nil {
		mutationError(c, err, "Gagal menyimpan produk")
		return
	}
	pc.respondFresh(c, http.StatusOK)
}

func (pc *ProductController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"message": "id tidak valid"})
		return
	}
	if err := pc.srv.api(c).DeleteProduct(c.Request.Context(), id); err != nil {
		mutationError(c, err, "Gagal menghapus produk")
		return
	}
	pc.respondFresh(c, http.StatusOK)
}

func (pc *ProductController) respondFresh(c *gin.Context, status int) {
	products, err := pc.srv.api(c).ListProducts(c.Request.Context())
	if err != nil {
		c.JSON(status, app.H{"error": "Gagal mengambil data produk", "data": []models.Product{}})
		return
	}
	c.JSON(status, app.H{"data": products, "total": len(products)})
}
