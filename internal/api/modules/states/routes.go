package states_module

import "github.com/gin-gonic/gin"

// Register routes for the states module, served by service
func RegisterRoutes(g *gin.RouterGroup, service *StatesService) {
	// Create base group for states routes
	group := g.Group("/states")

	// Reads
	group.GET("", service.GetAllStates)
	group.GET("/:state", service.GetStateHandler)
	group.GET("/:state/funfact", service.GetRandomFunFact)
	group.GET("/:state/capital", service.GetCapital)
	group.GET("/:state/nickname", service.GetNickname)
	group.GET("/:state/population", service.GetPopulation)
	group.GET("/:state/admission", service.GetAdmission)

	// Fun fact mutations
	group.POST("/:state/funfact", service.AddFunFacts)
	group.PATCH("/:state/funfact", service.UpdateFunFact)
	group.DELETE("/:state/funfact", service.DeleteFunFact)
}
