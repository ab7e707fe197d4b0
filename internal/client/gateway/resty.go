package gateway

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/rosetta/internal/client/models"
	"github.com/dmitrijs2005/rosetta/internal/client/session"
	"github.com/dmitrijs2005/rosetta/internal/common"
	"github.com/go-resty/resty/v2"
)

// Client implements Gateway over the backend's REST API using resty.
// The bearer token is read from the session on every request.
type Client struct {
	http *resty.Client
	sess *session.Session
}

// NewClient builds a Client for the given base URL. A zero timeout disables
// the per-request deadline.
func NewClient(baseURL string, timeout time.Duration, sess *session.Session) *Client {
	hc := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json")
	if timeout > 0 {
		hc.SetTimeout(timeout)
	}
	hc.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if token := sess.Token(); token != "" {
			req.SetHeader("Authorization", "Bearer "+token)
		}
		return nil
	})
	return &Client{http: hc, sess: sess}
}

// checkResponse maps transport and HTTP failures to sentinel errors.
func checkResponse(resp *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if !resp.IsError() {
		return nil
	}
	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return common.ErrUnauthorized
	case http.StatusNotFound:
		return common.ErrNotFound
	}
	return fmt.Errorf("server returned %s: %s", resp.Status(), resp.String())
}

func (c *Client) Login(ctx context.Context, usernameOrEmail, password string) (string, error) {
	var out authResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(loginRequest{UsernameOrEmail: usernameOrEmail, Password: password}).
		SetResult(&out).
		Post("/auth/login")
	if err := checkResponse(resp, err); err != nil {
		return "", err
	}
	if out.AccessToken == "" {
		return "", common.ErrInvalidToken
	}
	return out.AccessToken, nil
}

func (c *Client) Register(ctx context.Context, username, email, password string) error {
	var out apiResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(registerRequest{Username: username, Email: email, Password: password}).
		SetResult(&out).
		Post("/auth/register")
	return checkResponse(resp, err)
}

func (c *Client) CreateTranslation(ctx context.Context, p CreateTranslationPayload) (models.TranslationRecord, error) {
	var out translationResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(p).
		SetResult(&out).
		Post("/translations")
	if err := checkResponse(resp, err); err != nil {
		return models.TranslationRecord{}, err
	}
	return out.toRecord(), nil
}

func (c *Client) GetTranslations(ctx context.Context, page, size int) (models.Page[models.TranslationRecord], error) {
	var out models.Page[translationResponse]
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"page": strconv.Itoa(page),
			"size": strconv.Itoa(size),
		}).
		SetResult(&out).
		Get("/translations")
	if err := checkResponse(resp, err); err != nil {
		return models.Page[models.TranslationRecord]{}, err
	}
	return mapPage(out, translationResponse.toRecord), nil
}

func (c *Client) DeleteTranslation(ctx context.Context, id string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete("/translations/" + id)
	return checkResponse(resp, err)
}

func (c *Client) ToggleFavoriteTranslation(ctx context.Context, id string) (models.TranslationRecord, error) {
	var out translationResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Patch("/translations/" + id + "/favorite")
	if err := checkResponse(resp, err); err != nil {
		return models.TranslationRecord{}, err
	}
	return out.toRecord(), nil
}

func (c *Client) CreateFolder(ctx context.Context, name, parentFolderID string) (models.FolderRecord, error) {
	var out folderResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(folderCreateRequest{Name: name, ParentFolderID: parentFolderID}).
		SetResult(&out).
		Post("/folders")
	if err := checkResponse(resp, err); err != nil {
		return models.FolderRecord{}, err
	}
	return out.toRecord(), nil
}

func (c *Client) GetFolders(ctx context.Context, parentFolderID string) ([]models.FolderRecord, error) {
	var out []folderResponse
	req := c.http.R().SetContext(ctx).SetResult(&out)
	if parentFolderID != "" {
		req.SetQueryParam("parentFolderId", parentFolderID)
	}
	resp, err := req.Get("/folders")
	if err := checkResponse(resp, err); err != nil {
		return nil, err
	}
	records := make([]models.FolderRecord, 0, len(out))
	for _, f := range out {
		records = append(records, f.toRecord())
	}
	return records, nil
}

func (c *Client) UpdateFolder(ctx context.Context, id, name string) (models.FolderRecord, error) {
	var out folderResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(folderUpdateRequest{Name: name}).
		SetResult(&out).
		Put("/folders/" + id)
	if err := checkResponse(resp, err); err != nil {
		return models.FolderRecord{}, err
	}
	return out.toRecord(), nil
}

func (c *Client) DeleteFolder(ctx context.Context, id string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete("/folders/" + id)
	return checkResponse(resp, err)
}

func (c *Client) CreateSavedItem(ctx context.Context, p SavedItemCreatePayload) (models.SavedItemRecord, error) {
	var out savedItemResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(p).
		SetResult(&out).
		Post("/saved-items")
	if err != nil {
		return models.SavedItemRecord{}, err
	}
	// The backend answers a duplicate save with a conflict; older revisions
	// used 400 with an "already saved" message.
	if resp.StatusCode() == http.StatusConflict ||
		(resp.IsError() && strings.Contains(strings.ToLower(resp.String()), "already saved")) {
		return models.SavedItemRecord{}, common.ErrAlreadySaved
	}
	if err := checkResponse(resp, nil); err != nil {
		return models.SavedItemRecord{}, err
	}
	return out.toRecord(), nil
}

func (c *Client) GetSavedItems(ctx context.Context, q SavedItemQuery) (models.Page[models.SavedItemRecord], error) {
	params := map[string]string{
		"page": strconv.Itoa(q.Page),
		"size": strconv.Itoa(q.Size),
	}
	if q.Category != "" {
		params["category"] = string(q.Category)
	}
	if q.FolderID != "" {
		params["folderId"] = q.FolderID
	}

	var out models.Page[savedItemResponse]
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&out).
		Get("/saved-items")
	if err := checkResponse(resp, err); err != nil {
		return models.Page[models.SavedItemRecord]{}, err
	}
	return mapPage(out, savedItemResponse.toRecord), nil
}

func (c *Client) UpdateSavedItem(ctx context.Context, id string, p SavedItemUpdatePayload) (models.SavedItemRecord, error) {
	var out savedItemResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(p).
		SetResult(&out).
		Put("/saved-items/" + id)
	if err := checkResponse(resp, err); err != nil {
		return models.SavedItemRecord{}, err
	}
	return out.toRecord(), nil
}

func (c *Client) DeleteSavedItem(ctx context.Context, id string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete("/saved-items/" + id)
	return checkResponse(resp, err)
}

// mapPage converts a wire page into a domain page, element by element.
func mapPage[W, T any](in models.Page[W], f func(W) T) models.Page[T] {
	out := models.Page[T]{
		Number:        in.Number,
		Size:          in.Size,
		TotalPages:    in.TotalPages,
		TotalElements: in.TotalElements,
		Last:          in.Last,
	}
	out.Content = make([]T, 0, len(in.Content))
	for _, w := range in.Content {
		out.Content = append(out.Content, f(w))
	}
	return out
}
