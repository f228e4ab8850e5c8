package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/aoc2022/internal/api/middleware"
	"github.com/povarna/aoc2022/internal/models"
)

func RegisterRoutes(container *restful.Container, handler *Handler) *restful.WebService {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.GET("/days").
			To(handler.ListDays).
			Doc("List implemented days").
			Metadata(restfulspec.KeyOpenAPITags, []string{"days"}).
			Writes([]models.DayInfo{}).
			Returns(200, "OK", []models.DayInfo{}))

	ws.
		Route(ws.POST("/days/{day}/parts/{part}").
			To(handler.Solve).
			Doc("Solve one part of a day's puzzle").
			Metadata(restfulspec.KeyOpenAPITags, []string{"days"}).
			Param(ws.PathParameter("day", "Puzzle day (1-25)").DataType("integer")).
			Param(ws.PathParameter("part", "Puzzle part (1 or 2)").DataType("integer")).
			Reads(SolveBody{}).
			Writes(models.SolveResult{}).
			Returns(200, "OK", models.SolveResult{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(404, "Day Not Implemented", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	container.Add(ws)
	return ws
}
