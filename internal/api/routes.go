package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"

	"github.com/jmbenitez/jurischat/internal/api/middleware"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1/chat").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	ws.
		Route(ws.GET("/health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.POST("/query").
			To(handler.Query).
			Doc("Answer a free-text query against the loaded dataset").
			Metadata(restfulspec.KeyOpenAPITags, []string{"query"}).
			Reads(QueryRequest{}).
			Writes(QueryResponse{}).
			Returns(200, "OK", QueryResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(404, "No Data Loaded", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/upload").
			To(handler.Upload).
			Doc("Upload a spreadsheet and replace the dataset").
			Metadata(restfulspec.KeyOpenAPITags, []string{"admin"}).
			Consumes("multipart/form-data").
			Writes(UploadResponse{}).
			Returns(200, "OK", UploadResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/status").
			To(handler.Status).
			Doc("Dataset availability and supported query examples").
			Metadata(restfulspec.KeyOpenAPITags, []string{"admin"}).
			Writes(StatusResponse{}).
			Returns(200, "OK", StatusResponse{}))

	container.Add(ws)
}
