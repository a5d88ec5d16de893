package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/flicky/flowerstore-client/internal/dto"
	"github.com/flicky/flowerstore-client/internal/event"
	"github.com/flicky/flowerstore-client/internal/model"
)

type ProfileClient struct {
	api *Client
	bus *event.Bus
}

func NewProfileClient(api *Client, bus *event.Bus) *ProfileClient {
	return &ProfileClient{api: api, bus: bus}
}

// ProfileUpdate is the multipart payload of a profile edit. Text fields are
// always sent; the backend treats an empty string as "no change", not as an
// omission. Avatar is attached only when non-empty.
type ProfileUpdate struct {
	FirstName    string
	LastName     string
	MobileNumber string
	Avatar       []byte
	AvatarName   string
}

func (p *ProfileClient) Get(ctx context.Context, userID int64) (*model.UserProfile, error) {
	var resp dto.Envelope[model.UserProfile]
	path := fmt.Sprintf("/users/%d/profile", userID)
	if err := p.api.send(ctx, http.MethodGet, path, nil, nil, &resp, true); err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &resp.Data, nil
}

// Update sends the multipart profile edit and stores the returned profile in
// the session so every screen sees the new identity.
func (p *ProfileClient) Update(ctx context.Context, userID int64, upd ProfileUpdate) (*model.UserProfile, error) {
	if err := p.api.requireToken(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := writeProfileForm(w, upd); err != nil {
		return nil, fmt.Errorf("encode profile form: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("encode profile form: %w", err)
	}

	var updated model.UserProfile
	path := fmt.Sprintf("/users/%d/profile", userID)
	if err := p.api.sendMultipart(ctx, http.MethodPut, path, &buf, w.FormDataContentType(), &updated, true); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	if err := p.api.session.SetUser(&updated); err != nil {
		return nil, fmt.Errorf("store user: %w", err)
	}
	p.bus.Publish(event.SessionChanged)
	return &updated, nil
}

func writeProfileForm(w *multipart.Writer, upd ProfileUpdate) error {
	fields := map[string]string{
		"firstName":    upd.FirstName,
		"lastName":     upd.LastName,
		"mobileNumber": upd.MobileNumber,
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return err
		}
	}
	if len(upd.Avatar) == 0 {
		return nil
	}
	name := upd.AvatarName
	if name == "" {
		name = "avatar"
	}
	part, err := w.CreateFormFile("avatar", name)
	if err != nil {
		return err
	}
	_, err = part.Write(upd.Avatar)
	return err
}
