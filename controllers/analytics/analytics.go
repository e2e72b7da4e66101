package analyticsControllers

import (
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/IskDev0/organick-backend/models"
	"github.com/IskDev0/organick-backend/utils/sqlerr"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type customerActivity struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	TotalSpent  float64 `json:"totalSpent"`
	Image       string  `json:"image"`
	TotalOrders int     `json:"totalOrders"`
}

// GET /analytics/customers, segmentation and spend over the customer base.
func GetCustomerAnalytics(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var customers []models.User
		if err := db.
			Where("role_id = ?", models.RoleCustomer).
			Preload("Orders").
			Find(&customers).Error; err != nil {
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		totalCustomers := len(customers)
		newCustomers, returningCustomers := 0, 0
		totalSpent := 0.0
		activity := make([]customerActivity, 0, totalCustomers)

		for _, customer := range customers {
			switch {
			case len(customer.Orders) == 1:
				newCustomers++
			case len(customer.Orders) > 1:
				returningCustomers++
			}

			spent := 0.0
			for _, order := range customer.Orders {
				spent += order.TotalAmount
			}
			totalSpent += spent

			activity = append(activity, customerActivity{
				ID:          customer.ID,
				Name:        customer.FirstName + " " + customer.LastName,
				TotalSpent:  spent,
				Image:       customer.Image,
				TotalOrders: len(customer.Orders),
			})
		}

		sort.Slice(activity, func(i, j int) bool {
			if activity[i].TotalSpent != activity[j].TotalSpent {
				return activity[i].TotalSpent > activity[j].TotalSpent
			}
			return activity[i].TotalOrders > activity[j].TotalOrders
		})
		if len(activity) > 5 {
			activity = activity[:5]
		}

		newPct, returningPct, avgSpent, repeatRate := 0.0, 0.0, 0.0, 0.0
		if totalCustomers > 0 {
			newPct = float64(newCustomers) / float64(totalCustomers) * 100
			returningPct = float64(returningCustomers) / float64(totalCustomers) * 100
			avgSpent = totalSpent / float64(totalCustomers)
			repeatRate = returningPct
		}

		c.JSON(http.StatusOK, gin.H{
			"totalCustomers": totalCustomers,
			"customerSegments": gin.H{
				"newCustomersPercentage":       fmt.Sprintf("%.2f", newPct),
				"returningCustomersPercentage": fmt.Sprintf("%.2f", returningPct),
			},
			"averageSpentPerCustomer": fmt.Sprintf("%.2f", avgSpent),
			"repeatPurchaseRate":      fmt.Sprintf("%.2f", repeatRate),
			"highActivityCustomers":   activity,
		})
	}
}

type productStats struct {
	Name         string  `json:"name"`
	Image        string  `json:"image"`
	TotalRevenue float64 `json:"totalRevenue"`
	TotalSold    int     `json:"totalSold"`
}

func aggregateProducts(orders []models.Order) map[uint]*productStats {
	stats := make(map[uint]*productStats)
	for _, order := range orders {
		for _, item := range order.Items {
			entry, ok := stats[item.ProductID]
			if !ok {
				entry = &productStats{
					Name:  item.Product.Name,
					Image: item.Product.Image,
				}
				stats[item.ProductID] = entry
			}
			entry.TotalRevenue += item.Price * float64(item.Quantity)
			entry.TotalSold += item.Quantity
		}
	}
	return stats
}

func ordersInRange(db *gorm.DB, start, end time.Time, preload bool) ([]models.Order, error) {
	query := db.Where("created_at BETWEEN ? AND ?", start, end)
	if preload {
		query = query.Preload("Items.Product")
	}
	var orders []models.Order
	err := query.Find(&orders).Error
	return orders, err
}

// GET /analytics/products, per-product revenue over an interval with a
// period-over-period comparison.
func GetProductAnalytics(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		interval, start, end, err := dateRange(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		orders, err := ordersInRange(db, start, end, true)
		if err != nil {
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		if len(orders) == 0 {
			c.JSON(http.StatusOK, gin.H{
				"interval":         interval,
				"startDate":        start,
				"endDate":          end,
				"totalRevenue":     0,
				"totalSales":       0,
				"revenueChange":    "0.00%",
				"salesChange":      "0.00%",
				"topProducts":      []productStats{},
				"productAnalytics": []productStats{},
			})
			return
		}

		stats := aggregateProducts(orders)
		analytics := make([]productStats, 0, len(stats))
		totalRevenue, totalSales := 0.0, 0
		for _, entry := range stats {
			analytics = append(analytics, *entry)
			totalRevenue += entry.TotalRevenue
			totalSales += entry.TotalSold
		}
		sort.Slice(analytics, func(i, j int) bool {
			return analytics[i].TotalSold > analytics[j].TotalSold
		})

		prevStart, prevEnd := previousRange(interval, start, end)
		previousOrders, err := ordersInRange(db, prevStart, prevEnd, true)
		if err != nil {
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		previousRevenue, previousSales := 0.0, 0
		for _, entry := range aggregateProducts(previousOrders) {
			previousRevenue += entry.TotalRevenue
			previousSales += entry.TotalSold
		}

		topProducts := analytics
		if len(topProducts) > 5 {
			topProducts = topProducts[:5]
		}

		c.JSON(http.StatusOK, gin.H{
			"interval":         interval,
			"startDate":        start,
			"endDate":          end,
			"totalRevenue":     fmt.Sprintf("%.2f", totalRevenue),
			"totalSales":       totalSales,
			"revenueChange":    fmt.Sprintf("%.2f%%", percentChange(totalRevenue, previousRevenue)),
			"salesChange":      fmt.Sprintf("%.2f%%", percentChange(float64(totalSales), float64(previousSales))),
			"topProducts":      topProducts,
			"productAnalytics": analytics,
		})
	}
}

type countEntry struct {
	Label string
	Count int
}

func sortedCounts(counts map[string]int) []countEntry {
	entries := make([]countEntry, 0, len(counts))
	for label, count := range counts {
		entries = append(entries, countEntry{Label: label, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}

// GET /analytics/orders reports revenue, average checkout and popularity
// breakdowns over an interval.
func GetOrderAnalytics(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		interval, start, end, err := dateRange(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var orders []models.Order
		if err := db.
			Where("created_at BETWEEN ? AND ?", start, end).
			Preload("Items.Product").
			Preload("Payment").
			Preload("ShippingAddress").
			Find(&orders).Error; err != nil {
			status, message := sqlerr.HTTPStatus(err)
			c.JSON(status, gin.H{"message": message})
			return
		}

		totalRevenue := 0.0
		paymentMethods := make(map[string]int)
		deliveryCountries := make(map[string]int)
		for _, order := range orders {
			totalRevenue += order.TotalAmount
			if order.Payment != nil {
				paymentMethods[order.Payment.PaymentMethod]++
			}
			if order.ShippingAddress != nil {
				deliveryCountries[order.ShippingAddress.Country]++
			}
		}

		averageCheckout := 0.0
		if len(orders) > 0 {
			averageCheckout = totalRevenue / float64(len(orders))
		}

		type categoryCount struct {
			Name  string `json:"name"`
			Count int    `json:"count"`
		}
		var categories []categoryCount
		if len(orders) > 0 {
			if err := db.Model(&models.Category{}).
				Select("categories.name, COUNT(products.id) AS count").
				Joins("LEFT JOIN products ON products.category_id = categories.id").
				Group("categories.id, categories.name").
				Scan(&categories).Error; err != nil {
				status, message := sqlerr.HTTPStatus(err)
				c.JSON(status, gin.H{"message": message})
				return
			}
		}
		if categories == nil {
			categories = []categoryCount{}
		}

		methods := make([]gin.H, 0)
		for _, entry := range sortedCounts(paymentMethods) {
			methods = append(methods, gin.H{"paymentMethod": entry.Label, "count": entry.Count})
		}
		countries := make([]gin.H, 0)
		for _, entry := range sortedCounts(deliveryCountries) {
			countries = append(countries, gin.H{"country": entry.Label, "count": entry.Count})
		}

		c.JSON(http.StatusOK, gin.H{
			"interval":                 interval,
			"startDate":                start,
			"endDate":                  end,
			"orders":                   orders,
			"totalOrders":              len(orders),
			"totalRevenue":             fmt.Sprintf("%.2f", totalRevenue),
			"averageCheckout":          fmt.Sprintf("%.2f", averageCheckout),
			"popularCategories":        categories,
			"popularPaymentMethods":    methods,
			"popularDeliveryCountries": countries,
		})
	}
}
