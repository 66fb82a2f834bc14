package api

// Login checks credentials against the backend. The endpoint answers with a
// bare success/error envelope; an error envelope means the credentials were
// rejected.
func (c *Client) Login(username, password string) error {
	form := map[string]string{
		"user_id":       username,
		"user_password": password,
	}
	return c.postForm("/login.php", form, nil)
}
