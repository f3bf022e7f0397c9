package rest

// ServerInfo describes the server build reported by /api/info.
type ServerInfo struct {
	Version string `json:"version"`
}

// serverInfoResponse is the wire shape of /api/info. Older servers nest
// the info object; newer ones report the version top-level.
type serverInfoResponse struct {
	Info    ServerInfo `json:"info"`
	Version string     `json:"version"`
	Success bool       `json:"success"`
}

// serviceConfigurationsResponse is the wire shape of
// /api/v1/service.configurations: a list of string-valued maps, each
// carrying a "service" key.
type serviceConfigurationsResponse struct {
	Configurations []map[string]string `json:"configurations"`
	Success        bool                `json:"success"`
}

// OauthService describes one configured OAuth provider.
type OauthService struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Service     string `json:"service"`
	ClientID    string `json:"clientId"`
	ButtonLabel string `json:"buttonLabelText"`
	ButtonColor string `json:"buttonColor"`
	Custom      bool   `json:"custom"`
}

// OauthSettings is the response of /api/v1/settings.oauth.
type OauthSettings struct {
	Services []OauthService `json:"services"`
	Success  bool           `json:"success"`
}

// PublicSetting is a single public server setting.
type PublicSetting struct {
	ID    string `json:"_id"`
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// publicSettingsResponse is the wire shape of /api/v1/settings.public.
type publicSettingsResponse struct {
	Settings []PublicSetting `json:"settings"`
	Success  bool            `json:"success"`
}
