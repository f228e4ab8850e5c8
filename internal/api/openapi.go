package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/go-openapi/spec"
)

const OpenAPIPath = "/api/v1/openapi.json"

// RegisterOpenAPI serves the OpenAPI document for the given web services.
func RegisterOpenAPI(container *restful.Container, services ...*restful.WebService) {
	config := restfulspec.Config{
		WebServices:                   services,
		APIPath:                       OpenAPIPath,
		PostBuildSwaggerObjectHandler: enrichSwaggerObject,
	}
	container.Add(restfulspec.NewOpenAPIService(config))
}

func enrichSwaggerObject(swo *spec.Swagger) {
	swo.Info = &spec.Info{
		InfoProps: spec.InfoProps{
			Title:       "Advent of Code 2022 API",
			Description: "Solve Advent of Code 2022 puzzles over HTTP",
			Version:     Version,
		},
	}
	swo.Tags = []spec.Tag{
		{TagProps: spec.TagProps{Name: "health", Description: "Service health"}},
		{TagProps: spec.TagProps{Name: "days", Description: "Puzzle days and solving"}},
	}
}
