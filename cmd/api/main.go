// Package main Spin Rewards API
//
// Spin Rewards runs a spin-for-rewards economy: users sign in with a local
// password, spend credits on weighted spins, keep up to eight outcomes and
// wager credits on blackjack and plinko.
//
//  1. Credits are bought with XRP through a rippled JSON-RPC node.
//
//  2. Each signed-in client gets its own session, restored after restarts.
//
//     Schemes: http, https
//     Host: localhost:8080
//     BasePath: /api/v1
//     Version: 1.0.0
//
//     Consumes:
//     - application/json
//
//     Produces:
//     - application/json
//
//     Security:
//     - bearer
package main

import (
	"context"

	_ "github.com/unmined/spinrewards/docs"
	"github.com/unmined/spinrewards/internal/app"
)

// @title Spin Rewards API Service
// @version 1.0
// @description Spin Rewards runs a spin-for-rewards economy with blackjack and plinko side games, backed by an XRP ledger for buying spins.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	ctx := context.Background()
	application := app.NewApplication(ctx)
	application.Setup()
}
