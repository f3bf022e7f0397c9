package rest

import (
	"context"
	"encoding/json"
	"net/http"
)

// ServerInfo fetches the server build information from /api/info.
func (c *Client) ServerInfo(ctx context.Context) (ServerInfo, error) {
	req := Request{
		Method: http.MethodGet,
		URL:    BuildURL(c.config.ServerURL, "api", "info"),
	}
	resp, err := Call[serverInfoResponse](ctx, c, req)
	if err != nil {
		return ServerInfo{}, err
	}
	info := resp.Info
	if info.Version == "" {
		info.Version = resp.Version
	}
	return info, nil
}

// ServiceConfigurations fetches the configured external services and
// returns them keyed by service name, with the remaining fields of each
// entry as its value map.
func (c *Client) ServiceConfigurations(ctx context.Context) (map[string]map[string]string, error) {
	req := Request{
		Method: http.MethodGet,
		URL:    BuildURL(c.config.ServerURL, "api", "v1", "service.configurations"),
	}
	resp, err := Call[serviceConfigurationsResponse](ctx, c, req)
	if err != nil {
		return nil, err
	}

	services := make(map[string]map[string]string, len(resp.Configurations))
	for _, entry := range resp.Configurations {
		name, ok := entry["service"]
		if !ok {
			continue
		}
		fields := make(map[string]string, len(entry)-1)
		for k, v := range entry {
			if k != "service" {
				fields[k] = v
			}
		}
		services[name] = fields
	}
	return services, nil
}

// OauthSettings fetches the server's OAuth provider settings.
func (c *Client) OauthSettings(ctx context.Context) (OauthSettings, error) {
	req := Request{
		Method: http.MethodGet,
		URL:    BuildURL(c.config.ServerURL, "api", "v1", "settings.oauth"),
	}
	return Call[OauthSettings](ctx, c, req)
}

// PublicSettings fetches public server settings keyed by setting id.
// When ids are given, only those settings are requested.
func (c *Client) PublicSettings(ctx context.Context, ids ...string) (map[string]PublicSetting, error) {
	query := map[string]string{
		"count":  "0",
		"fields": `{"type":1}`,
	}
	if len(ids) > 0 {
		filter, err := json.Marshal(map[string]any{"_id": map[string]any{"$in": ids}})
		if err != nil {
			return nil, err
		}
		query["query"] = string(filter)
	}

	req := Request{
		Method: http.MethodGet,
		URL:    BuildURL(c.config.ServerURL, "api", "v1", "settings.public"),
		Query:  query,
	}
	resp, err := Call[publicSettingsResponse](ctx, c, req)
	if err != nil {
		return nil, err
	}

	settings := make(map[string]PublicSetting, len(resp.Settings))
	for _, s := range resp.Settings {
		settings[s.ID] = s
	}
	return settings, nil
}
