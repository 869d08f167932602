package handlers

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jayempx/vcard2qr/internal/render"
	"github.com/jayempx/vcard2qr/internal/vcard"
)

// ContactRequest carries the contact form fields of a render request.
type ContactRequest struct {
	FirstName    string            `json:"firstName"`
	LastName     string            `json:"lastName"`
	Organization string            `json:"organization"`
	Title        string            `json:"title"`
	Email        string            `json:"email"`
	Mobile       string            `json:"mobile"`
	Work         string            `json:"work"`
	Home         string            `json:"home"`
	Address      string            `json:"address"`
	LinkedIn     string            `json:"linkedin"`
	Custom       map[string]string `json:"custom"`
}

// Record converts the request into a ContactRecord. Phone slots are emitted
// mobile, work, home so repeated requests serialize identically.
func (r ContactRequest) Record() vcard.ContactRecord {
	rec := vcard.ContactRecord{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Organization: r.Organization,
		Title:        r.Title,
		Email:        r.Email,
		Address:      r.Address,
		LinkedIn:     r.LinkedIn,
		Custom:       r.Custom,
	}
	for _, p := range []vcard.Phone{
		{Type: vcard.PhoneMobile, Number: r.Mobile},
		{Type: vcard.PhoneWork, Number: r.Work},
		{Type: vcard.PhoneHome, Number: r.Home},
	} {
		if strings.TrimSpace(p.Number) != "" {
			rec.Phones = append(rec.Phones, p)
		}
	}
	return rec
}

// QRRequest is a ContactRequest plus styling options.
type QRRequest struct {
	ContactRequest
	ModuleSize  int     `json:"moduleSize"`
	Radius      float64 `json:"radius"` // fraction of module size
	Foreground  string  `json:"fg"`
	Background  string  `json:"bg"`
	Transparent bool    `json:"transparent"`
	Format      string  `json:"format"` // png (default) or svg
	Size        int     `json:"size"`   // optional exact output side in px
}

// Style maps the request's style fields onto render options. Unparseable
// colors fall back to the defaults rather than failing the render.
func (r QRRequest) Style() render.Style {
	st := render.DefaultStyle()
	if r.ModuleSize > 0 {
		st.ModuleSize = r.ModuleSize
	}
	st.CornerRadius = r.Radius
	st.Foreground = parseColorParam(r.Foreground, color.RGBA{0, 0, 0, 255})
	st.Background = parseColorParam(r.Background, color.RGBA{255, 255, 255, 255})
	st.Transparent = r.Transparent
	return st
}

// VCardHandler returns the vCard 3.0 payload for the posted contact fields.
func (h *Handler) VCardHandler(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	payload, err := vcard.Build(req.Record())
	if err != nil {
		if errors.Is(err, vcard.ErrEmptyContact) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "add at least one field first"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "text/vcard; charset=utf-8", []byte(payload))
}

// QRCodeHandler renders the posted contact as a styled QR image.
func (h *Handler) QRCodeHandler(c *gin.Context) {
	var req QRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	payload, err := vcard.Build(req.Record())
	if err != nil {
		if errors.Is(err, vcard.ErrEmptyContact) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "add at least one field first"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	style := req.Style()

	format := strings.ToLower(req.Format)
	if format != "svg" {
		format = "png"
	}

	if format == "svg" {
		data, err := render.SVG(payload, style)
		if err != nil {
			h.renderError(c, err)
			return
		}
		c.Data(http.StatusOK, "image/svg+xml", data)
		return
	}

	img, err := render.Image(payload, style)
	if err != nil {
		h.renderError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, render.FitTo(img, req.Size)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode PNG"})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func (h *Handler) renderError(c *gin.Context, err error) {
	if errors.Is(err, render.ErrPayloadTooLarge) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "contact data exceeds QR capacity, try shortening some fields",
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// parseColorParam parses a hex color parameter, falling back to defaultColor
// on empty or malformed input. "transparent" maps to a zero-alpha color.
func parseColorParam(param string, defaultColor color.RGBA) color.RGBA {
	if param == "" {
		return defaultColor
	}
	if strings.ToLower(param) == "transparent" {
		return color.RGBA{0, 0, 0, 0}
	}
	col, err := render.ParseHexColor(param)
	if err != nil {
		return defaultColor
	}
	return col
}
