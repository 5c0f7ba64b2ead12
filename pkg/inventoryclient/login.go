package inventoryclient

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the session token issued on login
type LoginResponse struct {
	Token string `json:"token"`
}

// Login authenticates against the API and stores the returned token for
// the following requests
func (c *InventoryClient) Login(email, password string) (string, error) {
	var response LoginResponse

	err := c.postJSON("/login", loginRequest{Email: email, Password: password}, &response)
	if err != nil {
		return "", err
	}

	c.SetToken(response.Token)

	return response.Token, nil
}
