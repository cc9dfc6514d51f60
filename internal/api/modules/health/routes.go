package health

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the routes for the health module. statesLoaded and
// store describe the running service in the status payload.
func RegisterRoutes(g *gin.RouterGroup, statesLoaded int, store string) {
	status := gin.H{
		"states_loaded": statesLoaded,
		"funfact_store": store,
	}

	g.GET("/health", func(c *gin.Context) {
		getStatus(c, status)
	})
}
