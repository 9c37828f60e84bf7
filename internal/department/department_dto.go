package department

type CreateDepartmentRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
}

type UpdateDepartmentRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
}

type DepartmentResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}
