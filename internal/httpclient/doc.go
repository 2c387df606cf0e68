// Package httpclient provides HTTP request construction and response
// classification for postvolley.
//
// # Request Building
//
// Use [NewRequestBuilder] to bind a builder to the configured base URL and
// shared headers, then [RequestBuilder.Build] per call:
//
//	builder, err := httpclient.NewRequestBuilder(cfg)
//	if err != nil {
//		return err
//	}
//	req, err := builder.Build(ctx, "/api/posts", payload)
//
// Requests are always POSTs with Content-Type: application/json. When
// request ids are enabled each request carries a unique X-Request-Id so
// calls can be matched to server logs.
//
// # HTTP Client
//
// The [NewClient] function creates an HTTP client with pooled connections
// and the per-request timeout applied:
//
//	client := httpclient.NewClient(5 * time.Second)
//	resp, err := client.Do(req)
//
// # Response Classification
//
// [ReadResult] reads a response and applies the success contract: a 2xx
// status yields the body, anything else yields an [*HTTPError] whose message
// renders as "HTTP <code>: <body>".
package httpclient
