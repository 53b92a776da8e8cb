package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"food-order-api/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const (
	exportSheet       = "Orders"
	xlsxContentType   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportFileNameFmt = "orders-%s.xlsx"
)

var exportHeader = []any{"ID", "Owner", "User ID", "Restaurant", "Food", "Drink", "Created At", "Updated At"}

// GetAllOrders returns every order in the system (Admin only).
func (h *Handler) GetAllOrders(c *gin.Context) {
	orders, err := h.store.ListOrders(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// ExportOrders downloads every order as an xlsx workbook (Admin only).
func (h *Handler) ExportOrders(c *gin.Context) {
	orders, err := h.store.ListOrders(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	buf, err := writeOrdersXLSX(orders)
	if err != nil {
		h.respondError(c, err)
		return
	}

	name := fmt.Sprintf(exportFileNameFmt, time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func writeOrdersXLSX(orders []models.Order) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return nil, fmt.Errorf("export header: %w", err)
	}
	for i, o := range orders {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("export row %d: %w", i, err)
		}
		row := []any{
			o.ID, o.Owner, o.UserID, o.Restaurant, o.Food, o.Drink,
			o.CreatedAt.UTC().Format(time.RFC3339), o.UpdatedAt.UTC().Format(time.RFC3339),
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("export row %d: %w", i, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("export write: %w", err)
	}
	return buf, nil
}
