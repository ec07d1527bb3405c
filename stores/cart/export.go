package cart

import (
	"io"

	"github.com/tealeg/xlsx"

	"github.com/MRxhaqq/Luxury-Hijabi/models"
)

// ExportOrders writes the whole order history as an xlsx workbook, one row
// per ordered line.
func (s *Store) ExportOrders(w io.Writer) error {
	return writeOrdersSheet(w, s.Orders())
}

func writeOrdersSheet(w io.Writer, orders []models.Order) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		return err
	}

	headers := []string{
		"OrderID", "DatePlaced", "OrderTotal",
		"ProductID", "Name", "Price", "Qty", "ShippingCost", "DeliveryDate",
	}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetValue(h)
	}

	for _, order := range orders {
		for _, line := range order.Items {
			row := sheet.AddRow()
			row.AddCell().SetValue(order.ID)
			row.AddCell().SetValue(order.DatePlaced.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(order.Total)
			row.AddCell().SetValue(line.ProductID)
			row.AddCell().SetValue(line.Name)
			row.AddCell().SetValue(line.Price)
			row.AddCell().SetValue(line.Qty)
			row.AddCell().SetValue(line.ShippingCost)
			row.AddCell().SetValue(line.DeliveryDate)
		}
	}

	return file.Write(w)
}
