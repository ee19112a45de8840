// Package ginbind adapts the payload binder to the gin web framework.
//
// It wires the two host-boundary operations — request extraction and
// response generation — into gin's handler model:
//
//	binder, _ := payload.NewBinderFromConfig[Order](cfg, logger)
//	router.POST("/orders", ginbind.Handler(binder, func(c *gin.Context, req *payload.Payload[Order]) (*payload.Payload[Order], error) {
//		return req, nil
//	}))
package ginbind

import (
	"github.com/gin-gonic/gin"

	"github.com/vyrodovalexey/multipayload/payload"
)

// Bind extracts the request payload. On failure it aborts the request with
// the mapped status code and a JSON error body, and returns false.
func Bind[T any](c *gin.Context, binder *payload.Binder[T]) (*payload.Payload[T], bool) {
	p, err := binder.Extract(c.Request.Context(), c.Request.Header, c.Request.Body)
	if err != nil {
		c.AbortWithStatusJSON(payload.HTTPStatus(err), gin.H{"error": err.Error()})
		return nil, false
	}
	return p, true
}

// Render negotiates the response format from the request headers and
// writes the serialized payload. On failure it aborts with the mapped
// status code.
func Render[T any](c *gin.Context, binder *payload.Binder[T], p *payload.Payload[T]) {
	resp, err := binder.BuildResponse(p, c.Request.Header)
	if err != nil {
		c.AbortWithStatusJSON(payload.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Data(resp.Status, resp.ContentType, resp.Body)
}

// Handler wraps a typed payload handler into a gin.HandlerFunc. The
// request payload is extracted before the handler runs and the returned
// payload is rendered with the negotiated format.
func Handler[T any](binder *payload.Binder[T], handle func(*gin.Context, *payload.Payload[T]) (*payload.Payload[T], error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := Bind(c, binder)
		if !ok {
			return
		}

		resp, err := handle(c, req)
		if err != nil {
			c.AbortWithStatusJSON(payload.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}

		Render(c, binder, resp)
	}
}
