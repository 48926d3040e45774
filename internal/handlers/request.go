package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/shariqrahman/Products-Management/internal/validation"
)

// maxUploadSize caps multipart bodies (form fields plus the profile image).
const maxUploadSize = 10 << 20 // 10MB

// userPayload is the decoded request body for register and update. Every
// scalar is a three-state validation.Field so the handlers can tell a field
// that was never sent apart from one sent empty.
type userPayload struct {
	FirstName    validation.Field `json:"fname"`
	LastName     validation.Field `json:"lname"`
	Email        validation.Field `json:"email"`
	Phone        validation.Field `json:"phone"`
	Password     validation.Field `json:"password"`
	ProfileImage validation.Field `json:"profileImage"`
	Address      addressPayload   `json:"address"`

	empty bool
}

// hasData reports whether the body carried anything at all (after the
// uploaded-image URL, if any, has been staged into ProfileImage).
func (p *userPayload) hasData() bool {
	return !p.empty || p.ProfileImage.Present()
}

// addressPayload distinguishes a missing address, a malformed one (sent as
// something other than an object) and a well-formed object with optional
// shipping/billing parts.
type addressPayload struct {
	present   bool
	malformed bool

	Shipping addressPartPayload
	Billing  addressPartPayload
}

func (a *addressPayload) UnmarshalJSON(data []byte) error {
	a.present = true
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		a.malformed = true
		return nil
	}
	var obj struct {
		Shipping addressPartPayload `json:"shipping"`
		Billing  addressPartPayload `json:"billing"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		a.malformed = true
		return nil
	}
	a.Shipping = obj.Shipping
	a.Billing = obj.Billing
	return nil
}

// addressPartPayload is one of the shipping/billing sub-objects with
// individually optional leaves.
type addressPartPayload struct {
	present   bool
	malformed bool

	Street  validation.Field `json:"street"`
	City    validation.Field `json:"city"`
	Pincode validation.Field `json:"pincode"`
}

func (p *addressPartPayload) UnmarshalJSON(data []byte) error {
	p.present = true
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		p.malformed = true
		return nil
	}
	var obj struct {
		Street  validation.Field `json:"street"`
		City    validation.Field `json:"city"`
		Pincode validation.Field `json:"pincode"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		p.malformed = true
		return nil
	}
	p.Street = obj.Street
	p.City = obj.City
	p.Pincode = obj.Pincode
	return nil
}

// hasLeaves reports whether at least one of street/city/pincode was supplied.
func (p *addressPartPayload) hasLeaves() bool {
	return p.Street.Present() || p.City.Present() || p.Pincode.Present()
}

// parseUserRequest decodes the request into a userPayload plus the uploaded
// file, if any. Multipart bodies carry scalar fields as form values and the
// address as a JSON-encoded string; everything else is treated as a JSON
// body (no file).
func parseUserRequest(r *http.Request) (*userPayload, *multipart.FileHeader, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if strings.HasPrefix(mediaType, "multipart/") {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			return nil, nil, fmt.Errorf("invalid multipart form: %w", err)
		}
		payload := payloadFromForm(r.MultipartForm.Value)

		var file *multipart.FileHeader
		for _, headers := range r.MultipartForm.File {
			if len(headers) > 0 {
				file = headers[0]
				break
			}
		}
		return payload, file, nil
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxUploadSize))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read body: %w", err)
	}

	payload := &userPayload{}
	if len(bytes.TrimSpace(body)) == 0 {
		payload.empty = true
		return payload, nil, nil
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(body, &keys); err != nil {
		return nil, nil, fmt.Errorf("invalid JSON body: %w", err)
	}
	if err := json.Unmarshal(body, payload); err != nil {
		return nil, nil, fmt.Errorf("invalid JSON body: %w", err)
	}
	payload.empty = len(keys) == 0
	return payload, nil, nil
}

func payloadFromForm(values map[string][]string) *userPayload {
	payload := &userPayload{empty: len(values) == 0}

	fields := map[string]*validation.Field{
		"fname":        &payload.FirstName,
		"lname":        &payload.LastName,
		"email":        &payload.Email,
		"phone":        &payload.Phone,
		"password":     &payload.Password,
		"profileImage": &payload.ProfileImage,
	}
	for key, field := range fields {
		if vs, ok := values[key]; ok && len(vs) > 0 {
			*field = validation.NewField(vs[0])
		}
	}

	if vs, ok := values["address"]; ok && len(vs) > 0 {
		// The address arrives as a JSON string inside the form; a value
		// that does not decode to an object is treated as malformed.
		if err := json.Unmarshal([]byte(vs[0]), &payload.Address); err != nil {
			payload.Address.present = true
			payload.Address.malformed = true
		}
	}
	return payload
}
