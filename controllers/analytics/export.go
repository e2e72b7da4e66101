package analyticsControllers

import (
	"net/http"

	"github.com/IskDev0/organick-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// GET /analytics/orders/export-excel, dumps orders in the selected
// interval as a spreadsheet.
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, start, end, err := dateRange(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var orders []models.Order
		if err := db.
			Where("created_at BETWEEN ? AND ?", start, end).
			Preload("User").
			Preload("Payment").
			Preload("ShippingAddress").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Customer", "Email", "Status", "TotalAmount",
			"PaymentMethod", "PaymentStatus", "Country", "City", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, order := range orders {
			row := sheet.AddRow()
			row.AddCell().SetValue(order.ID)
			row.AddCell().SetValue(order.User.FirstName + " " + order.User.LastName)
			row.AddCell().SetValue(order.User.Email)
			row.AddCell().SetValue(string(order.Status))
			row.AddCell().SetValue(order.TotalAmount)
			if order.Payment != nil {
				row.AddCell().SetValue(order.Payment.PaymentMethod)
				row.AddCell().SetValue(string(order.Payment.PaymentStatus))
			} else {
				row.AddCell().SetValue("")
				row.AddCell().SetValue("")
			}
			if order.ShippingAddress != nil {
				row.AddCell().SetValue(order.ShippingAddress.Country)
				row.AddCell().SetValue(order.ShippingAddress.City)
			} else {
				row.AddCell().SetValue("")
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(order.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to write Excel file"})
			return
		}
	}
}
