package api

import (
	"github.com/gofiber/fiber/v2"
)

type HelloHandler interface {
	Hello(ctx *fiber.Ctx) error
}
