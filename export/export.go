// Package export renders shareable artifacts for a recipe: a printable
// PDF card and a QR code for the share link.
package export

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"strings"

	"savora/models"
	"savora/recipes"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

type Handler struct {
	Loader *recipes.Loader
}

func NewHandler(loader *recipes.Loader) *Handler {
	return &Handler{Loader: loader}
}

func (h *Handler) findApproved(r *http.Request, id string) (models.Recipe, bool) {
	merged, _ := h.Loader.Load(r.Context())
	for _, rec := range merged {
		if rec.ID == id && rec.Status == models.StatusApproved {
			return rec, true
		}
	}
	return models.Recipe{}, false
}

func shareURL(id string) string {
	base := os.Getenv("PUBLIC_BASE_URL")
	if base == "" {
		base = "http://localhost:8080"
	}
	return strings.TrimRight(base, "/") + "/recipes/" + id
}

// GET /api/recipes/:id/print: recipe card PDF.
func (h *Handler) PrintRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	rec, ok := h.findApproved(r, ps.ByName("id"))
	if !ok {
		http.Error(w, "Recipe not found", http.StatusNotFound)
		return
	}

	qrPNG, err := qrcode.Encode(shareURL(rec.ID), qrcode.Medium, 128)
	if err != nil {
		http.Error(w, "Failed to generate share code", http.StatusInternalServerError)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 15, rec.Title, "", 1, "C", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Arial", "I", 11)
	meta := fmt.Sprintf("%s  |  %s", rec.Category, rec.Difficulty)
	if rec.CookingTime != nil {
		meta += fmt.Sprintf("  |  %d min", *rec.CookingTime)
	}
	pdf.CellFormat(0, 8, meta, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 12)
	if rec.Description != "" {
		pdf.MultiCell(0, 7, rec.Description, "", "L", false)
		pdf.Ln(3)
	}

	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 8, "Ingredients", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	for _, ing := range rec.Ingredients {
		pdf.MultiCell(0, 6, "- "+ing, "", "L", false)
	}
	pdf.Ln(3)

	if len(rec.Steps) > 0 {
		pdf.SetFont("Arial", "B", 13)
		pdf.CellFormat(0, 8, "Steps", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		for i, step := range rec.Steps {
			pdf.MultiCell(0, 6, fmt.Sprintf("%d. %s", i+1, step), "", "L", false)
		}
	}

	imgOpts := gofpdf.ImageOptions{ImageType: "png"}
	pdf.RegisterImageOptionsReader("qr", imgOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 160, 20, 30, 30, false, imgOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=recipe-"+rec.ID+".pdf")
	w.Write(buf.Bytes())
}

// GET /api/recipes/:id/qr: share QR as PNG.
func (h *Handler) ShareQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	rec, ok := h.findApproved(r, ps.ByName("id"))
	if !ok {
		http.Error(w, "Recipe not found", http.StatusNotFound)
		return
	}

	png, err := qrcode.Encode(shareURL(rec.ID), qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate share code", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
