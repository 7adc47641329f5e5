package productControllers

import (
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/QuantumLuke/QuantumShopsBE/response"
	"github.com/QuantumLuke/QuantumShopsBE/services"
)

// GET /products/export — admin spreadsheet download of the whole catalog.
func ExportProductsToExcel(products *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := products.GetAllProducts()
		if err != nil {
			response.Error(c, err)
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			response.Error(c, err)
			return
		}

		headers := []string{"ID", "Name", "Brand", "Price", "Inventory", "Description", "Category", "CreatedAt"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range list {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Brand)
			row.AddCell().SetValue(p.Price.StringFixed(2))
			row.AddCell().SetValue(p.Inventory)
			row.AddCell().SetValue(p.Description)
			if p.Category != nil {
				row.AddCell().SetValue(p.Category.Name)
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")

		if err := file.Write(c.Writer); err != nil {
			response.Error(c, err)
			return
		}
	}
}
