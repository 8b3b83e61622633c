package models

// Master data records. The backend owns every id; the console never mints one.
// Wire field names follow the backend (major_name, class_name, ...); the
// Name() accessor is what the shared list controller filters on.

type Major struct {
	ID        int    `json:"id"`
	MajorName string `json:"major_name"`
}

type Class struct {
	ID        int    `json:"id"`
	ClassName string `json:"class_name"`
}

type BorrowerStatus struct {
	ID         int    `json:"id"`
	StatusName string `json:"status_name"`
}

type Location struct {
	ID           int    `json:"id"`
	LocationName string `json:"location_name"`
}

type Category struct {
	ID           int    `json:"id"`
	CategoryName string `json:"category_name"`
}

type Role struct {
	ID       int    `json:"id"`
	RoleName string `json:"role_name"`
}

func (m Major) Name() string          { return m.MajorName }
func (c Class) Name() string          { return c.ClassName }
func (s BorrowerStatus) Name() string { return s.StatusName }
func (l Location) Name() string       { return l.LocationName }
func (c Category) Name() string       { return c.CategoryName }
func (r Role) Name() string           { return r.RoleName }

// Named is satisfied by every master-data record.
type Named interface {
	Name() string
}
