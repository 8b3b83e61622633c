package controllers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"peminjaman-console/apiclient"
	"peminjaman-console/app"
	"peminjaman-console/listview"
	"peminjaman-console/models"
)

// MasterConfig adapts one name-only master-data resource (jurusan, kelas,
// status peminjam, lokasi, kategori, role) onto the shared screen pattern.
type MasterConfig[T models.Named] struct {
	// Entity is the lowercase label used in error strings, e.g. "jurusan".
	Entity string
	// EmptyMsg is the blocking validation message for a blank name.
	EmptyMsg string

	List   func(ctx context.Context, api *apiclient.Client) ([]T, error)
	Create func(ctx context.Context, api *apiclient.Client, name string) error
	Update func(ctx context.Context, api *apiclient.Client, id int, name string) error
	Delete func(ctx context.Context, api *apiclient.Client, id int) error
}

// MasterController is the generic list-resource controller the screens used
// to duplicate by hand: fetch all, filter by name, paginate by five, and
// re-fetch the full collection after every mutation.
type MasterController[T models.Named] struct {
	srv *Srv
	cfg MasterConfig[T]
}

func NewMasterController[T models.Named](s *Srv, cfg MasterConfig[T]) *MasterController[T] {
	return &MasterController[T]{srv: s, cfg: cfg}
}

func (mc *MasterController[T]) fetch(c *gin.Context) ([]T, error) {
	return mc.cfg.List(c.Request.Context(), mc.srv.api(c))
}

// List renders one page of the collection, filtered by ?q= and paged by
// ?page=.
func (mc *MasterController[T]) List(c *gin.Context) {
	items, err := mc.fetch(c)
	if err != nil {
		fetchError(c, mc.cfg.Entity)
		return
	}
	q := c.Query("q")
	filtered := listview.Filter(items, func(it T) bool {
		return listview.MatchFold(it.Name(), q)
	})
	view := listview.Paginate(filtered, len(items), listview.ParsePage(c.Query("page")), listview.DefaultPageSize)
	c.JSON(http.StatusOK, view)
}

type nameInput struct {
	Name string `json:"name"`
}

func (mc *MasterController[T]) Create(c *gin.Context) {
	var in nameInput
	_ = c.ShouldBindJSON(&in)
	name := strings.TrimSpace(in.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, app.H{"message": mc.cfg.EmptyMsg})
		return
	}
	if err := mc.cfg.Create(c.Request.Context(), mc.srv.api(c), name); err != nil {
		mutationError(c, err, "Gagal menyimpan "+mc.cfg.Entity)
		return
	}
	mc.respondFresh(c, http.StatusCreated)
}

func (mc *MasterController[T]) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"message": "id tidak valid"})
		return
	}
	var in nameInput
	_ = c.ShouldBindJSON(&in)
	name := strings.TrimSpace(in.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, app.H{"message": mc.cfg.EmptyMsg})
		return
	}
	if err := mc.cfg.Update(c.Request.Context(), mc.srv.api(c), id, name); err != nil {
		mutationError(c, err, "Gagal menyimpan "+mc.cfg.Entity)
		return
	}
	mc.respondFresh(c, http.StatusOK)
}

func (mc *MasterController[T]) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"message": "id tidak valid"})
		return
	}
	if err := mc.cfg.Delete(c.Request.Context(), mc.srv.api(c), id); err != nil {
		mutationError(c, err, "Gagal menghapus "+mc.cfg.Entity)
		return
	}
	mc.respondFresh(c, http.StatusOK)
}

// respondFresh re-fetches the full collection after a successful mutation.
// The screens never merge locally; the backend's list is the truth.
func (mc *MasterController[T]) respondFresh(c *gin.Context, status int) {
	items, err := mc.fetch(c)
	if err != nil {
		c.JSON(status, app.H{"error": "Gagal mengambil data " + mc.cfg.Entity, "data": []T{}})
		return
	}
	c.JSON(status, app.H{"data": items, "total": len(items)})
}
