package api

import (
	"io"

	"kucukaslan/hello/domain"

	"github.com/gofiber/fiber/v2"
)

var _ HelloHandler = &helloHandler{}

type helloHandler struct{}

// Hello answers any request with the fixed greeting.
// The request is never validated, and no status or headers are set here: the
// platform defaults apply. A streamed body is discarded so the connection can
// carry the next request.
func (h helloHandler) Hello(ctx *fiber.Ctx) error {
	if stream := ctx.Context().RequestBodyStream(); stream != nil {
		_, _ = io.Copy(io.Discard, stream)
	}
	return ctx.SendString(domain.Greeting)
}

func NewHelloHandler() HelloHandler {
	return &helloHandler{}
}
