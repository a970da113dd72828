package utils

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"edura/config"
)

const (
	certWidth  = 1123 // A4 landscape at ~96dpi
	certHeight = 794
)

// CertificateRenderer draws completion certificates as PNG images. A TTF can be
// supplied through config; without one the renderer falls back to gg's built-in
// bitmap face.
type CertificateRenderer struct {
	ttf *truetype.Font
}

func NewCertificateRenderer(cfg *config.Config) *CertificateRenderer {
	r := &CertificateRenderer{}

	if cfg.CertificateFont != "" {
		raw, err := os.ReadFile(cfg.CertificateFont)
		if err != nil {
			log.Printf("could not read certificate font %s: %v", cfg.CertificateFont, err)
			return r
		}
		f, err := truetype.Parse(raw)
		if err != nil {
			log.Printf("could not parse certificate font %s: %v", cfg.CertificateFont, err)
			return r
		}
		r.ttf = f
	}

	return r
}

func (r *CertificateRenderer) face(size float64) font.Face {
	if r.ttf == nil {
		return nil
	}
	return truetype.NewFace(r.ttf, &truetype.Options{Size: size})
}

func (r *CertificateRenderer) drawString(dc *gg.Context, s string, size, x, y float64) {
	if face := r.face(size); face != nil {
		dc.SetFontFace(face)
	}
	dc.DrawStringAnchored(s, x, y, 0.5, 0.5)
}

// Render produces the certificate PNG for a completed course
func (r *CertificateRenderer) Render(studentName, courseTitle, serial string, issuedAt time.Time) ([]byte, error) {
	dc := gg.NewContext(certWidth, certHeight)

	// Background and border
	dc.SetHexColor("#f0f9ff")
	dc.Clear()
	dc.SetHexColor("#2563eb")
	dc.SetLineWidth(5)
	dc.DrawRectangle(20, 20, certWidth-40, certHeight-40)
	dc.Stroke()

	cx := float64(certWidth) / 2

	dc.SetHexColor("#1e3a8a")
	r.drawString(dc, "CERTIFICATE OF COMPLETION", 40, cx, 180)

	dc.SetHexColor("#000000")
	r.drawString(dc, "This certifies that", 20, cx, 280)

	dc.SetHexColor("#2563eb")
	r.drawString(dc, studentName, 30, cx, 360)

	dc.SetHexColor("#000000")
	r.drawString(dc, fmt.Sprintf("has successfully completed the course: %s", courseTitle), 20, cx, 440)
	r.drawString(dc, fmt.Sprintf("Date: %s", issuedAt.Format("January 2, 2006")), 15, cx, 540)

	dc.SetHexColor("#64748b")
	r.drawString(dc, fmt.Sprintf("Serial: %s", serial), 12, cx, certHeight-60)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode certificate: %w", err)
	}

	return buf.Bytes(), nil
}
