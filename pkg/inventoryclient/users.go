package inventoryclient

// User is the registered user row exposed by the API
type User struct {
	ID     string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Active bool   `json:"active"`
	RoleID int    `json:"role"`
}

// GetUsers lists registered users, cached under the Users tag
func (c *InventoryClient) GetUsers() ([]User, error) {
	var response []User

	if err := c.getJSON("/users", nil, TagUsers, &response); err != nil {
		return nil, err
	}

	return response, nil
}
