package handler

import (
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"ticketpilot.app/bridge/core/config"
	"ticketpilot.app/bridge/internal/http/dto"
)

// EmbedHandler implements the Zendesk signed-request shim. Zendesk always
// loads the sidebar iframe with a POST carrying the signed token; browsers
// will not render a page router behind a POST, so the shim replays the
// request as a same-origin GET and streams the response back.
type EmbedHandler struct {
	cfg    config.EmbedConfig
	client *http.Client
}

func NewEmbedHandler(cfg config.EmbedConfig, client *http.Client) *EmbedHandler {
	if client == nil {
		client = http.DefaultClient
	}
	return &EmbedHandler{cfg: cfg, client: client}
}

// Post extracts the token from the form body (JSON fallback) and proxies
// GET /copilot?token=… against the forwarded host. A missing token is the
// one fatal boundary error this service has.
func (h *EmbedHandler) Post(c *gin.Context) {
	ctx := c.Request.Context()

	token := c.PostForm("token")
	if token == "" {
		var req dto.SignedRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			token = req.Token
		}
	}
	if token == "" {
		slog.WarnContext(ctx, "signed request without token")
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing token"})
		return
	}

	host := c.GetHeader(h.cfg.ForwardedHostHeader)
	if host == "" {
		host = c.Request.Host
	}

	target := fmt.Sprintf("%s://%s/copilot?token=%s", h.cfg.ProxyScheme, host, url.QueryEscape(token))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		slog.ErrorContext(ctx, "building embed proxy request", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	resp, err := h.client.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, "embed proxy request failed", "error", err, "host", host)
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream unavailable"})
		return
	}
	defer resp.Body.Close()

	c.Status(resp.StatusCode)
	if ct := resp.Header.Get("Content-Type"); ct != "" {
		c.Header("Content-Type", ct)
	}
	if _, err := io.Copy(c.Writer, resp.Body); err != nil {
		slog.WarnContext(ctx, "streaming embed response interrupted", "error", err)
	}
}

var embedPage = template.Must(template.New("embed").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Copilot</title></head>
<body data-token="{{.Token}}">
<div id="copilot-root"></div>
</body>
</html>
`))

// Get serves the embed shell with the token echoed on the body; the hosted
// Copilot bundle reads it from there.
func (h *EmbedHandler) Get(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := embedPage.Execute(c.Writer, gin.H{"Token": c.Query("token")}); err != nil {
		slog.ErrorContext(c.Request.Context(), "rendering embed page", "error", err)
	}
}
