package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"peminjaman-console/models"
)

// LoginResult is the login endpoint response. The backend also returns the
// authenticated user's role so callers can reject non-admins before a
// session exists.
type LoginResult struct {
	Message string             `json:"message"`
	User    models.SessionUser `json:"user"`
	Token   string             `json:"token"`
}

// loginUser tolerates both role shapes the backend has emitted: a plain role
// name and a nested {role_name} object.
type loginUser struct {
	ID     int      `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	RoleID int      `json:"role_id"`
	Role   roleName `json:"role"`
}

type roleName string

func (r *roleName) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*r = roleName(s)
		return nil
	}
	var obj struct {
		RoleName string `json:"role_name"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	*r = roleName(obj.RoleName)
	return nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var res struct {
		Message string    `json:"message"`
		User    loginUser `json:"user"`
		Token   string    `json:"token"`
	}
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/login", body, &res); err != nil {
		return nil, err
	}
	return &LoginResult{
		Message: res.Message,
		Token:   res.Token,
		User: models.SessionUser{
			ID:     res.User.ID,
			Name:   res.User.Name,
			Email:  res.User.Email,
			RoleID: res.User.RoleID,
			Role:   string(res.User.Role),
		},
	}, nil
}

// Majors (jurusan)

func (c *Client) ListMajors(ctx context.Context) ([]models.Major, error) {
	return list[models.Major](ctx, c, "/major/")
}

func (c *Client) CreateMajor(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodPost, "/major/create", map[string]string{"major_name": name}, nil)
}

func (c *Client) UpdateMajor(ctx context.Context, id int, name string) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/major/%d/update", id), map[string]string{"major_name": name}, nil)
}

func (c *Client) DeleteMajor(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/major/%d/delete", id), nil, nil)
}

// Classes (kelas)

func (c *Client) ListClasses(ctx context.Context) ([]models.Class, error) {
	return list[models.Class](ctx, c, "/class")
}

func (c *Client) CreateClass(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodPost, "/class/create", map[string]string{"class_name": name}, nil)
}

func (c *Client) UpdateClass(ctx context.Context, id int, name string) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/class/%d/update", id), map[string]string{"class_name": name}, nil)
}

func (c *Client) DeleteClass(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/class/%d/delete", id), nil, nil)
}

// Borrower statuses (status peminjam)

func (c *Client) ListStatuses(ctx context.Context) ([]models.BorrowerStatus, error) {
	return list[models.BorrowerStatus](ctx, c, "/status/")
}

func (c *Client) CreateStatus(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodPost, "/status/create", map[string]string{"status_name": name}, nil)
}

func (c *Client) UpdateStatus(ctx context.Context, id int, name string) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/status/%d/update", id), map[string]string{"status_name": name}, nil)
}

func (c *Client) DeleteStatus(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/status/%d/delete", id), nil, nil)
}

// Locations (lokasi)

func (c *Client) ListLocations(ctx context.Context) ([]models.Location, error) {
	return list[models.Location](ctx, c, "/location")
}

func (c *Client) CreateLocation(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodPost, "/location/create", map[string]string{"location_name": name}, nil)
}

func (c *Client) UpdateLocation(ctx context.Context, id int, name string) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/location/%d/update", id), map[string]string{"location_name": name}, nil)
}

func (c *Client) DeleteLocation(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/location/%d/delete", id), nil, nil)
}

// Categories (kategori)

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	return list[models.Category](ctx, c, "/categories")
}

func (c *Client) CreateCategory(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodPost, "/categories/create", map[string]string{"category_name": name}, nil)
}

func (c *Client) UpdateCategory(ctx context.Context, id int, name string) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/categories/%d/update", id), map[string]string{"category_name": name}, nil)
}

func (c *Client) DeleteCategory(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/categories/%d/delete", id), nil, nil)
}

// Roles

func (c *Client) ListRoles(ctx context.Context) ([]models.Role, error) {
	return list[models.Role](ctx, c, "/role")
}

func (c *Client) CreateRole(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodPost, "/role/create-role", map[string]string{"role_name": name}, nil)
}

func (c *Client) UpdateRole(ctx context.Context, id int, name string) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/role/%d/update", id), map[string]string{"role_name": name}, nil)
}

func (c *Client) DeleteRole(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/role/%d/delete", id), nil, nil)
}

// Products

type ProductInput struct {
	ProductName string `json:"product_name"`
	Qty         int    `json:"qty"`
	CategoryID  int    `json:"category_id"`
}

func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	return list[models.Product](ctx, c, "/product")
}

func (c *Client) CreateProduct(ctx context.Context, in ProductInput) error {
	return c.do(ctx, http.MethodPost, "/product/create", in, nil)
}

func (c *Client) UpdateProduct(ctx context.Context, id int, in ProductInput) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/product/%d/update", id), in, nil)
}

func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/product/%d/delete", id), nil, nil)
}

// Users

type UserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	RoleID   int    `json:"role_id"`
}

func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	return list[models.User](ctx, c, "/user/")
}

func (c *Client) CreateUser(ctx context.Context, in UserInput) error {
	return c.do(ctx, http.MethodPost, "/user/create-user", in, nil)
}

func (c *Client) UpdateUser(ctx context.Context, id int, in UserInput) error {
	// Updates never carry a password.
	in.Password = ""
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/user/%d/update", id), in, nil)
}

func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/user/%d/delete", id), nil, nil)
}

// Loans (peminjaman)

type LoanInput struct {
	UserID     int    `json:"user_id"`
	ProductID  int    `json:"product_id"`
	LocationID int    `json:"location_id"`
	Qty        int    `json:"qty"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Status     string `json:"status"`
	Note       string `json:"note"`
}

func (c *Client) ListLoans(ctx context.Context) ([]models.Loan, error) {
	return list[models.Loan](ctx, c, "/peminjaman/all")
}

func (c *Client) CreateLoan(ctx context.Context, in LoanInput) error {
	return c.do(ctx, http.MethodPost, "/peminjaman/create", in, nil)
}

func (c *Client) UpdateLoan(ctx context.Context, id int, in LoanInput) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/peminjaman/%d/update", id), in, nil)
}

func (c *Client) DeleteLoan(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/peminjaman/%d/delete", id), nil, nil)
}
