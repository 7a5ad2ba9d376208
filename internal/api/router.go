// api/router.go
package api

import (
	"github.com/gin-gonic/gin"
)

func NewRouter(svc *Service) *gin.Engine {
	r := gin.Default()
	r.Use(RequestID(svc))

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/meta", MetaListHandler(svc))
		apiGroup.GET("/meta/:catalog", MetaCatalogHandler(svc))

		apiGroup.GET("/enums/:catalog/abbr/:abbr", AbbreviationHandler(svc))
		apiGroup.GET("/enums/:catalog/name/:name", NameHandler(svc))
		apiGroup.GET("/enums/:catalog/value/:value", ValueHandler(svc))
	}
	return r
}

func RunServer(addr string, svc *Service) error {
	return NewRouter(svc).Run(addr)
}
