package internal

import (
	"net/http"
	"presence/internal/controllers"
	"presence/internal/providers"
)

const apiPrefix = "/api/v1"

func InitRoutes(apiController *controllers.ApiController, pageController *controllers.PageController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get(apiPrefix+"/users", http.HandlerFunc(apiController.Users))

	views := map[string]http.HandlerFunc{
		"mean_time_weekday":  apiController.MeanTimeWeekday,
		"presence_weekday":   apiController.PresenceWeekday,
		"presence_start_end": apiController.PresenceStartEnd,
	}
	for name, handler := range views {
		routers.Get(apiPrefix+"/"+name+"/{user_id}", handler)
		// bare prefix without an id answers like an unknown user
		routers.Get(apiPrefix+"/"+name+"/{$}", handler)
		routers.Get("/"+name, pageController.Page(name))
	}

	routers.Get("/", http.HandlerFunc(pageController.Index))
	return routers
}
