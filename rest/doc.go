// Package rest is a typed REST client for a chat-server backend. It
// builds authenticated requests, bridges the asynchronous transport into
// blocking typed calls, and maps HTTP/JSON error shapes into a small
// error taxonomy callers can branch on.
//
// # Basic Usage
//
//	client, err := rest.New(rest.Config{
//	    ServerURL: "https://chat.example.com",
//	})
//
//	info, err := client.ServerInfo(ctx)
//
// Arbitrary endpoints go through the generic bridge:
//
//	page, err := rest.Call[HistoryPage](ctx, client, rest.Request{
//	    Method: http.MethodGet,
//	    URL:    rest.BuildURL(cfg.ServerURL, "api", "v1", rest.APIMethodName(rest.RoomTypeChannel, "history")),
//	})
//
// Errors classify into network, invalid-response, invalid-protocol,
// auth, two-factor-required, and API kinds; see the Is* helpers.
package rest
