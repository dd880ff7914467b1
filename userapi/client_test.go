package userapi

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientFetchUser(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Fatalf("unexpected method %s", r.Method)
		}
		gotPath = r.URL.Path
		if r.Header.Get("X-API-KEY") != "key" {
			t.Fatalf("missing api key header")
		}
		io.WriteString(w, `{"id":123,"name":"John Doe","email":"john@example.com"}`)
	}))
	defer ts.Close()

	cli := &Client{BaseURL: ts.URL, APIKey: "key", HTTPClient: ts.Client()}
	u, err := cli.FetchUser(123)
	if err != nil {
		t.Fatalf("fetch err: %v", err)
	}
	if u.Name != "John Doe" || u.Email != "john@example.com" {
		t.Fatalf("unexpected user %+v", u)
	}
	if gotPath != "/users/123" {
		t.Fatalf("unexpected path %s", gotPath)
	}
}

func TestClientFetchUserNotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	cli := &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
	if _, err := cli.FetchUser(999); err == nil {
		t.Fatalf("expected error for 404")
	}
}

func TestClientCreateUser(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/users" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var nu NewUser
		if err := json.NewDecoder(r.Body).Decode(&nu); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		json.NewEncoder(w).Encode(User{ID: 456, Name: nu.Name, Email: nu.Email})
	}))
	defer ts.Close()

	cli := &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
	u, err := cli.CreateUser(NewUser{Name: "Jane Doe", Email: "jane@example.com"})
	if err != nil {
		t.Fatalf("create err: %v", err)
	}
	if u.ID != 456 || u.Name != "Jane Doe" {
		t.Fatalf("unexpected user %+v", u)
	}
}

func TestClientWithoutHTTPClient(t *testing.T) {
	cli := &Client{BaseURL: "http://unused"}
	if _, err := cli.FetchUser(1); err == nil {
		t.Fatalf("expected error without http client")
	}
	if _, err := cli.CreateUser(NewUser{}); err == nil {
		t.Fatalf("expected error without http client")
	}
}
