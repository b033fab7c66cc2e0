//go:build tools

package main

// Dependencias de herramientas: swag genera docs/swagger.json a partir de las
// anotaciones godoc de los handlers (go generate ./...).
import (
	_ "github.com/swaggo/swag/cmd/swag"
)
