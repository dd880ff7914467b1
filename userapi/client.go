package userapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// User 用户服务返回的记录。
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewUser 创建用户时提交的字段。
type NewUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Client 一个简化的用户服务客户端；默认不发起真实网络调用，HTTPClient 可注入 httptest。
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// FetchUser 调用 GET /users/{id} 获取用户。
func (c *Client) FetchUser(id int64) (User, error) {
	var u User
	if c == nil || c.HTTPClient == nil {
		return u, fmt.Errorf("http client not set")
	}
	endpoint := fmt.Sprintf("%s/users/%d", c.BaseURL, id)
	req, _ := http.NewRequest(http.MethodGet, endpoint, nil)
	if c.APIKey != "" {
		req.Header.Set("X-API-KEY", c.APIKey)
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return u, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return u, fmt.Errorf("fetch user status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return u, err
	}
	if u.ID == 0 {
		return u, fmt.Errorf("empty user id")
	}
	return u, nil
}

// CreateUser 调用 POST /users 创建用户。
func (c *Client) CreateUser(nu NewUser) (User, error) {
	var u User
	if c == nil || c.HTTPClient == nil {
		return u, fmt.Errorf("http client not set")
	}
	body, err := json.Marshal(nu)
	if err != nil {
		return u, err
	}
	req, _ := http.NewRequest(http.MethodPost, c.BaseURL+"/users", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("X-API-KEY", c.APIKey)
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return u, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return u, fmt.Errorf("create user status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return u, err
	}
	if u.ID == 0 {
		return u, fmt.Errorf("empty user id")
	}
	return u, nil
}

// NewDefaultHTTPClient 提供一个带超时的 http.Client。
func NewDefaultHTTPClient() *http.Client {
	return &http.Client{Timeout: 10 * time.Second}
}
