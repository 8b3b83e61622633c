package models

const AdminRoleID = 1

// User as returned by the backend user list. The role sub-object may be
// absent when the backend has no matching role row.
type User struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	RoleID int    `json:"role_id"`
	Role   *Role  `json:"role,omitempty"`
}

// SessionUser is the normalized record held in the console session,
// mirroring what the login endpoint returns.
type SessionUser struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	RoleID int    `json:"role_id"`
	Role   string `json:"role"`
}

func (u SessionUser) IsAdmin() bool { return u.RoleID == AdminRoleID }

type Product struct {
	ID          int       `json:"id"`
	ProductName string    `json:"product_name"`
	Qty         int       `json:"qty"`
	CategoryID  int       `json:"category_id"`
	Category    *Category `json:"category,omitempty"`
}
