package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
)

// MockUserAPI 模拟用户服务端，记录请求并可注入失败。
type MockUserAPI struct {
	mu         sync.Mutex
	users      map[int64]mockUser
	nextID     int64
	fetchCalls int
	failAll    bool

	server *httptest.Server
}

type mockUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewMockUserAPI 启动一个内存用户服务。
func NewMockUserAPI() *MockUserAPI {
	m := &MockUserAPI{
		users:  make(map[int64]mockUser),
		nextID: 1000,
	}
	m.server = httptest.NewServer(http.HandlerFunc(m.handle))
	return m
}

// URL 返回服务地址，注入给 userapi.Client。
func (m *MockUserAPI) URL() string {
	return m.server.URL
}

// Close 关闭底层 httptest 服务。
func (m *MockUserAPI) Close() {
	m.server.Close()
}

// AddUser 预置一个用户。
func (m *MockUserAPI) AddUser(id int64, name, email string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[id] = mockUser{ID: id, Name: name, Email: email}
}

// FailAll 之后的所有请求都返回 500。
func (m *MockUserAPI) FailAll(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failAll = fail
}

// FetchCalls 返回 GET /users/{id} 的调用次数。
func (m *MockUserAPI) FetchCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fetchCalls
}

// Reset 清空状态。
func (m *MockUserAPI) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users = make(map[int64]mockUser)
	m.fetchCalls = 0
	m.failAll = false
}

func (m *MockUserAPI) handle(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failAll {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	switch {
	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/users/"):
		m.fetchCalls++
		id, err := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, "/users/"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		u, ok := m.users[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(u)
	case r.Method == http.MethodPost && r.URL.Path == "/users":
		var u mockUser
		if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		m.nextID++
		u.ID = m.nextID
		m.users[u.ID] = u
		_ = json.NewEncoder(w).Encode(u)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}
