package handlers

import (
	"bytes"

	"langnghe/internal/catalog"
	"langnghe/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/tealeg/xlsx"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var exportHeaders = []string{
	"ID", "Name", "Slug", "CategoryID", "Price", "SalePrice",
	"EffectivePrice", "InStock", "Featured", "Village", "CreatedAt",
}

// buildProductWorkbook writes one row per product under a header row.
func buildProductWorkbook(products []models.Product) (*xlsx.File, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		return nil, err
	}

	headerRow := sheet.AddRow()
	for _, h := range exportHeaders {
		headerRow.AddCell().SetString(h)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetInt(int(p.ID))
		row.AddCell().SetString(p.Name)
		row.AddCell().SetString(p.Slug)
		row.AddCell().SetInt(int(p.CategoryID))
		row.AddCell().SetFloat(p.Price)
		if p.SalePrice != nil {
			row.AddCell().SetFloat(*p.SalePrice)
		} else {
			row.AddCell().SetString("")
		}
		row.AddCell().SetFloat(p.EffectivePrice())
		row.AddCell().SetBool(p.InStock)
		row.AddCell().SetBool(p.IsFeatured)
		row.AddCell().SetString(p.Village)
		row.AddCell().SetString(p.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return file, nil
}

// HandleExportProducts streams the catalog as an Excel workbook.
func (h *ProductHandler) HandleExportProducts(c *fiber.Ctx) error {
	products, err := h.service.ListProducts(catalog.Filter{}, catalog.SortFeatured)
	if err != nil {
		return respondError(c, err, "", "Failed to fetch products")
	}

	file, err := buildProductWorkbook(products)
	if err != nil {
		return respondError(c, err, "", "Failed to create Excel sheet")
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return respondError(c, err, "", "Failed to write Excel file")
	}

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, "attachment; filename=products.xlsx")
	return c.Send(buf.Bytes())
}
