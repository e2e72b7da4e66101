package productControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/IskDev0/organick-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// GET /products/export-excel
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Category").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Name", "Description", "Price", "Discount",
			"Stock", "CategoryID", "Image", "CreatedAt", "UpdatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.Discount)
			row.AddCell().SetValue(p.Stock)
			row.AddCell().SetValue(p.CategoryID)
			row.AddCell().SetValue(p.Image)
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(p.UpdatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to write Excel file"})
			return
		}
	}
}

// POST /products/import-excel, upserts rows by id; rows missing required
// columns are skipped.
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			name := get(1)
			price, priceErr := strconv.ParseFloat(get(3), 64)
			categoryID, categoryErr := strconv.ParseUint(get(6), 10, 32)
			if name == "" || priceErr != nil || categoryErr != nil {
				skippedCount++
				continue
			}

			discount, _ := strconv.ParseFloat(get(4), 64)
			stock, _ := strconv.Atoi(get(5))

			product := models.Product{
				Name:        name,
				Description: get(2),
				Price:       price,
				Discount:    discount,
				Stock:       stock,
				CategoryID:  uint(categoryID),
				Image:       get(7),
			}

			if id, err := strconv.ParseUint(get(0), 10, 32); err == nil && id > 0 {
				var existing models.Product
				if db.First(&existing, "id = ?", id).Error == nil {
					if err := db.Model(&existing).Updates(&product).Error; err != nil {
						skippedCount++
						continue
					}
					updatedCount++
					continue
				}
			}

			if err := db.Create(&product).Error; err != nil {
				skippedCount++
				continue
			}
			createdCount++
		}

		c.JSON(http.StatusOK, gin.H{
			"created": createdCount,
			"updated": updatedCount,
			"skipped": skippedCount,
		})
	}
}
