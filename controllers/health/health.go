package healthControllers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/threadline/storefront-api/store"
)

// GET /
func HomeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "E-Commerce API running"})
	}
}

// GET /test
//
// Operational convenience, not part of the core contract: reports
// store connectivity and a sample of collection names.
func DiagnosticsHandler(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := gin.H{
			"backend":           "✅ Running",
			"database":          "❌ Not Available",
			"database_url":      nil,
			"database_name":     nil,
			"connection_status": "Not Connected",
			"collections":       []string{},
		}

		if s != nil {
			resp["database"] = "✅ Available"
			if os.Getenv("DATABASE_URL") != "" {
				resp["database_url"] = "✅ Set"
			} else {
				resp["database_url"] = "❌ Not Set"
			}
			resp["database_name"] = s.Name()
			resp["connection_status"] = "Connected"

			names, err := s.Collections(c.Request.Context())
			if err != nil {
				msg := err.Error()
				if len(msg) > 80 {
					msg = msg[:80]
				}
				resp["database"] = "⚠️ Connected but Error: " + msg
			} else {
				if len(names) > 10 {
					names = names[:10]
				}
				resp["collections"] = names
				resp["database"] = "✅ Connected & Working"
			}
		}

		c.JSON(http.StatusOK, resp)
	}
}
