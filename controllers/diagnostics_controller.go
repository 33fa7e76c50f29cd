package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/otakuwear/shopbackend/config"
	"github.com/otakuwear/shopbackend/database"
)

// TestDatabase serves GET /test. It never fails: every store problem is
// rendered as text in the response body. Configuration flags report presence
// only, never the values themselves.
func TestDatabase(cfg *config.AppConfig, store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := gin.H{
			"backend":           "Running",
			"database":          "Not Available",
			"connection_status": "Not Connected",
			"collections":       []string{},
		}

		if store.Available() {
			response["connection_status"] = "Connected"
			names, err := store.ListCollectionNames(c.Request.Context())
			switch {
			case err != nil:
				response["database"] = fmt.Sprintf("Connected but Error: %s", truncate(err.Error(), 50))
			default:
				if names == nil {
					names = []string{}
				}
				if len(names) > 10 {
					names = names[:10]
				}
				response["collections"] = names
				response["database"] = "Connected & Working"
			}
		} else {
			response["database"] = "Available but not initialized"
		}

		response["database_url"] = setFlag(cfg.DatabaseURL != "")
		response["database_name"] = setFlag(cfg.DatabaseName != "")

		c.JSON(http.StatusOK, response)
	}
}

func setFlag(set bool) string {
	if set {
		return "Set"
	}
	return "Not Set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
