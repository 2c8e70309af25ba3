// Comando admincli opera la consola desde la terminal: login, logout y consulta de pedidos.
// La sesión se guarda en el mismo almacén que usa el BFF; en disco solo queda su ID.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := nuevoRaiz(os.Stdout).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
