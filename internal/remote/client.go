// Package remote implements api.API over JSON/HTTP against the RentTrack
// REST server.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/iliyamo/renttrack/internal/api"
	"github.com/iliyamo/renttrack/internal/model"
	"github.com/iliyamo/renttrack/internal/session"
)

const maxErrorBody = 1 << 20

// Client talks to the server under BaseURL, authenticating with the token
// held in the session.
type Client struct {
	base    string
	http    *http.Client
	session *session.Session
}

var _ api.API = (*Client)(nil)

// New returns a client for baseURL (e.g. http://localhost:8081/api).  A
// nil httpClient gets a 15 second timeout.
func New(baseURL string, httpClient *http.Client, sess *session.Session) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{base: strings.TrimRight(baseURL, "/"), http: httpClient, session: sess}
}

// BaseURL returns the server address the client was built with.
func (c *Client) BaseURL() string { return c.base }

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.session != nil {
		token, err := c.session.Token(ctx)
		if err != nil {
			return nil, err
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

// send executes req and turns transport failures and non-2xx answers into
// errors matching the api sentinels.
func (c *Client) send(req *http.Request) (*http.Response, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %s %s: %w", api.ErrBackendUnavailable, req.Method, req.URL.Path, err)
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	he := &api.HTTPError{Status: resp.StatusCode, Body: body}
	var eb api.ErrorBody
	if json.Unmarshal(body, &eb) == nil {
		he.Code = eb.Code
		he.Message = eb.Error
	} else {
		he.Message = strings.TrimSpace(string(body))
	}
	return nil, he
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}
	req, err := c.newRequest(ctx, method, path, body, contentType)
	if err != nil {
		return err
	}
	resp, err := c.send(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s: %w", api.ErrBackendUnavailable, path, err)
	}
	return nil
}

func seg(id string) string { return url.PathEscape(id) }

func (c *Client) Login(ctx context.Context, email, password string) (model.AuthResult, error) {
	var out model.AuthResult
	err := c.do(ctx, http.MethodPost, "/auth/login", api.LoginInput{Email: email, Password: password}, &out)
	return out, err
}

func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/auth/forgot-password", api.ForgotPasswordInput{Email: email}, nil)
}

// CurrentUser fails locally with ErrNotAuthenticated when no token is
// stored.
func (c *Client) CurrentUser(ctx context.Context) (model.User, error) {
	if c.session != nil {
		token, err := c.session.Token(ctx)
		if err != nil {
			return model.User{}, err
		}
		if token == "" {
			return model.User{}, api.ErrNotAuthenticated
		}
	}
	var out model.User
	err := c.do(ctx, http.MethodGet, "/auth/me", nil, &out)
	return out, err
}

// UploadFile posts the document as multipart field "file".
func (c *Client) UploadFile(ctx context.Context, file api.FileUpload) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, file.Name))
	ct := file.Type
	if ct == "" {
		ct = "application/octet-stream"
	}
	h.Set("Content-Type", ct)
	part, err := w.CreatePart(h)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(file.Data); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/uploads", &buf, w.FormDataContentType())
	if err != nil {
		return "", err
	}
	resp, err := c.send(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	var out api.UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: decode upload: %w", api.ErrBackendUnavailable, err)
	}
	if out.ID == "" {
		return "", fmt.Errorf("%w: upload response without id", api.ErrBackendUnavailable)
	}
	return out.ID, nil
}

func (c *Client) GetUploadParsed(ctx context.Context, id string) (model.Upload, error) {
	var out model.Upload
	err := c.do(ctx, http.MethodGet, "/uploads/"+seg(id), nil, &out)
	return out, err
}

func (c *Client) DeleteUpload(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/uploads/"+seg(id), nil, nil)
}

func (c *Client) ReprocessFailedOCR(ctx context.Context) (int, error) {
	var out api.CountResult
	err := c.do(ctx, http.MethodPost, "/uploads/reprocess", nil, &out)
	return out.Count, err
}

func (c *Client) ListTenants(ctx context.Context) ([]model.Tenant, error) {
	var out []model.Tenant
	err := c.do(ctx, http.MethodGet, "/tenants", nil, &out)
	return out, err
}

func (c *Client) GetTenant(ctx context.Context, id string) (model.Tenant, error) {
	var out model.Tenant
	err := c.do(ctx, http.MethodGet, "/tenants/"+seg(id), nil, &out)
	return out, err
}

func (c *Client) CreateTenant(ctx context.Context, in api.TenantInput) (model.Tenant, error) {
	var out model.Tenant
	err := c.do(ctx, http.MethodPost, "/tenants", in, &out)
	return out, err
}

func (c *Client) TenantLedger(ctx context.Context, tenantID string) ([]model.Payment, error) {
	var out []model.Payment
	err := c.do(ctx, http.MethodGet, "/tenants/"+seg(tenantID)+"/payments", nil, &out)
	return out, err
}

func (c *Client) ListProperties(ctx context.Context) ([]model.Property, error) {
	var out []model.Property
	err := c.do(ctx, http.MethodGet, "/properties", nil, &out)
	return out, err
}

func (c *Client) GetProperty(ctx context.Context, id string) (model.Property, error) {
	var out model.Property
	err := c.do(ctx, http.MethodGet, "/properties/"+seg(id), nil, &out)
	return out, err
}

func (c *Client) CreateProperty(ctx context.Context, in api.PropertyInput) (model.Property, error) {
	var out model.Property
	err := c.do(ctx, http.MethodPost, "/properties", in, &out)
	return out, err
}

func (c *Client) UpdateProperty(ctx context.Context, id string, patch api.PropertyPatch) (model.Property, error) {
	var out model.Property
	err := c.do(ctx, http.MethodPatch, "/properties/"+seg(id), patch, &out)
	return out, err
}

func (c *Client) ListPayments(ctx context.Context) ([]model.Payment, error) {
	var out []model.Payment
	err := c.do(ctx, http.MethodGet, "/payments", nil, &out)
	return out, err
}

func (c *Client) MarkPaymentPaid(ctx context.Context, id string, in api.MarkPaidInput) (model.Payment, error) {
	var out model.Payment
	err := c.do(ctx, http.MethodPost, "/payments/"+seg(id)+"/mark-paid", in, &out)
	return out, err
}

func (c *Client) RecordManualPayment(ctx context.Context, in api.ManualPaymentInput) (model.Payment, error) {
	var out model.Payment
	err := c.do(ctx, http.MethodPost, "/payments/manual", in, &out)
	return out, err
}

func (c *Client) SweepOverduePayments(ctx context.Context, asOf string) (int, error) {
	var out api.CountResult
	err := c.do(ctx, http.MethodPost, "/payments/sweep-overdue", api.SweepInput{AsOf: asOf}, &out)
	return out.Count, err
}

func (c *Client) DashboardStats(ctx context.Context) (model.DashboardStats, error) {
	var out model.DashboardStats
	err := c.do(ctx, http.MethodGet, "/dashboard/stats", nil, &out)
	return out, err
}

func (c *Client) RecentActivity(ctx context.Context) ([]model.Activity, error) {
	var out []model.Activity
	err := c.do(ctx, http.MethodGet, "/activity", nil, &out)
	return out, err
}

func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	var out []model.User
	err := c.do(ctx, http.MethodGet, "/users", nil, &out)
	return out, err
}

func (c *Client) ExportTenantsCSV(ctx context.Context) (api.Export, error) {
	return c.download(ctx, "/exports/"+api.TenantsCSVName, api.TenantsCSVName)
}

func (c *Client) ExportPaymentsCSV(ctx context.Context) (api.Export, error) {
	return c.download(ctx, "/exports/"+api.PaymentsCSVName, api.PaymentsCSVName)
}

func (c *Client) download(ctx context.Context, path, fallback string) (api.Export, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return api.Export{}, err
	}
	req.Header.Set("Accept", api.CSVContentType)
	resp, err := c.send(req)
	if err != nil {
		return api.Export{}, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return api.Export{}, fmt.Errorf("%w: read %s: %w", api.ErrBackendUnavailable, path, err)
	}
	exp := api.Export{Filename: fallback, ContentType: api.CSVContentType, Data: data}
	if mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type")); err == nil {
		exp.ContentType = mt
	}
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil && params["filename"] != "" {
		exp.Filename = params["filename"]
	}
	return exp, nil
}

func (c *Client) GetSettings(ctx context.Context) (model.Settings, error) {
	var out model.Settings
	err := c.do(ctx, http.MethodGet, "/settings", nil, &out)
	return out, err
}

func (c *Client) UpdateSettings(ctx context.Context, s model.Settings) (model.Settings, error) {
	var out model.Settings
	err := c.do(ctx, http.MethodPut, "/settings", s, &out)
	return out, err
}

// IsUnavailable reports whether err means the server could not be reached
// or answered with a 5xx gateway status.
func IsUnavailable(err error) bool {
	return errors.Is(err, api.ErrBackendUnavailable)
}
