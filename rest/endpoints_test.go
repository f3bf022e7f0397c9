package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestServerInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/info" {
			t.Errorf("expected /api/info, got %s", r.URL.Path)
		}
		w.Write([]byte(`{"info":{"version":"6.4.1"},"success":true}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	info, err := c.ServerInfo(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Version != "6.4.1" {
		t.Errorf("expected version 6.4.1, got %q", info.Version)
	}
}

func TestServerInfo_TopLevelVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"version":"7.0.0","success":true}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	info, err := c.ServerInfo(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Version != "7.0.0" {
		t.Errorf("expected version 7.0.0, got %q", info.Version)
	}
}

func TestServiceConfigurations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/service.configurations" {
			t.Errorf("expected /api/v1/service.configurations, got %s", r.URL.Path)
		}
		w.Write([]byte(`{"configurations":[
			{"service":"github","clientId":"gh-id","scope":"user"},
			{"service":"google","clientId":"g-id"},
			{"clientId":"orphan"}
		],"success":true}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	services, err := c.ServiceConfigurations(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(services) != 2 {
		t.Fatalf("expected 2 services, got %d", len(services))
	}
	github := services["github"]
	if github["clientId"] != "gh-id" || github["scope"] != "user" {
		t.Errorf("unexpected github fields: %v", github)
	}
	if _, ok := github["service"]; ok {
		t.Error("service key must not appear in the field map")
	}
	if services["google"]["clientId"] != "g-id" {
		t.Errorf("unexpected google fields: %v", services["google"])
	}
}

func TestOauthSettings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/settings.oauth" {
			t.Errorf("expected /api/v1/settings.oauth, got %s", r.URL.Path)
		}
		w.Write([]byte(`{"services":[{"_id":"1","name":"github","service":"github","clientId":"gh-id","custom":false}],"success":true}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	settings, err := c.OauthSettings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(settings.Services) != 1 {
		t.Fatalf("expected 1 service, got %d", len(settings.Services))
	}
	if settings.Services[0].ClientID != "gh-id" {
		t.Errorf("unexpected service: %+v", settings.Services[0])
	}
}

func TestPublicSettings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/settings.public" {
			t.Errorf("expected /api/v1/settings.public, got %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("count") != "0" {
			t.Errorf("expected count=0, got %q", q.Get("count"))
		}
		if q.Get("fields") != `{"type":1}` {
			t.Errorf("unexpected fields param: %q", q.Get("fields"))
		}
		if q.Get("query") != "" {
			t.Errorf("expected no query param, got %q", q.Get("query"))
		}
		w.Write([]byte(`{"settings":[
			{"_id":"Site_Name","type":"string","value":"My Chat"},
			{"_id":"Message_AllowEditing","type":"boolean","value":true}
		],"success":true}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	settings, err := c.PublicSettings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(settings) != 2 {
		t.Fatalf("expected 2 settings, got %d", len(settings))
	}
	if settings["Site_Name"].Value != "My Chat" {
		t.Errorf("unexpected Site_Name: %+v", settings["Site_Name"])
	}
	if settings["Message_AllowEditing"].Value != true {
		t.Errorf("unexpected Message_AllowEditing: %+v", settings["Message_AllowEditing"])
	}
}

func TestPublicSettings_ByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("query")
		if !strings.Contains(query, `"$in":["Site_Name"]`) {
			t.Errorf("expected $in filter for Site_Name, got %q", query)
		}
		w.Write([]byte(`{"settings":[{"_id":"Site_Name","type":"string","value":"My Chat"}],"success":true}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	settings, err := c.PublicSettings(context.Background(), "Site_Name")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := settings["Site_Name"]; !ok {
		t.Errorf("expected Site_Name in result, got %v", settings)
	}
}

func TestServerInfo_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(404)
		w.Write([]byte(`{"errorType":"not-found","error":"nope"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.ServerInfo(context.Background())
	if !IsAPI(err) {
		t.Fatalf("expected api error, got %v", err)
	}
}
